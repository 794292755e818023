package reporters

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExternalTool_LaunchesWithBothPaths(t *testing.T) {
	var gotName string
	var gotArgs []string
	launchCommand = func(name string, argv ...string) error {
		gotName = name
		gotArgs = argv
		return nil
	}
	defer func() { launchCommand = defaultLaunch }()

	dir := t.TempDir()
	received := filepath.Join(dir, "x.received.txt")
	approved := filepath.Join(dir, "x.approved.txt")
	require.NoError(t, os.WriteFile(received, []byte("new\n"), 0644))

	handled := ExternalTool("code", "--diff").Report(received, approved)

	assert.True(t, handled)
	assert.Equal(t, "code", gotName)
	assert.Equal(t, []string{"--diff", received, approved}, gotArgs)
}

func TestExternalTool_CreatesEmptyApprovedFile(t *testing.T) {
	launchCommand = func(_ string, _ ...string) error { return nil }
	defer func() { launchCommand = defaultLaunch }()

	approved := filepath.Join(t.TempDir(), "sub", "x.approved.txt")
	ExternalTool("meld").Report("whatever.received.txt", approved)

	data, err := os.ReadFile(approved)
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestExternalTool_LaunchFailureNotHandled(t *testing.T) {
	launchCommand = func(_ string, _ ...string) error { return errors.New("no such binary") }
	defer func() { launchCommand = defaultLaunch }()

	approved := filepath.Join(t.TempDir(), "x.approved.txt")
	assert.False(t, ExternalTool("nope").Report("r.txt", approved))
}

func TestAuto_NonInteractiveReturnsReporter(t *testing.T) {
	t.Setenv("CI", "true")
	r := Auto()
	require.NotNil(t, r)
}
