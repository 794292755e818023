package approvals

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"greenbar/pkg/approvaltypes"
	"greenbar/pkg/scrubbers"
)

func TestOptions_CopyOnCustomize(t *testing.T) {
	base := NewOptions()
	derived := base.WithScrubber(scrubbers.None()).
		WithExtension(".json").
		WithReporter(approvaltypes.ReporterFunc(func(_, _ string) bool { return true }))

	// The original is unaffected by deriving from it.
	assert.Nil(t, base.scrubber)
	assert.Nil(t, base.reporter)
	assert.Equal(t, ".txt", base.ext())

	assert.NotNil(t, derived.scrubber)
	assert.NotNil(t, derived.reporter)
	assert.Equal(t, ".json", derived.ext())
}

func TestOptions_WithExtensionNormalizesDot(t *testing.T) {
	assert.Equal(t, ".json", NewOptions().WithExtension("json").ext())
	assert.Equal(t, ".json", NewOptions().WithExtension(".json").ext())
	assert.Equal(t, ".txt", NewOptions().WithExtension("").ext())
}

func TestOptions_ConvertDefaultsToAsText(t *testing.T) {
	assert.Equal(t, "42", NewOptions().convert(42))
	assert.Equal(t, "hi", NewOptions().convert("hi"))
}

func TestOneOption(t *testing.T) {
	assert.Equal(t, Options{}, oneOption(nil))

	custom := NewOptions().WithExtension(".xml")
	assert.Equal(t, custom, oneOption([]Options{custom}))

	assert.Panics(t, func() { oneOption([]Options{custom, custom}) })
}

func TestAsText(t *testing.T) {
	assert.Equal(t, "42", AsText(42))
	assert.Equal(t, "[1 2]", AsText([]int{1, 2}))
	assert.Equal(t, "true", AsText(true))
}
