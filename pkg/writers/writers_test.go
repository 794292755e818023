package writers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForString(t *testing.T) {
	w := ForString("hello\n", ".json")
	text, err := w.Text()
	require.NoError(t, err)
	assert.Equal(t, "hello\n", text)
	assert.Equal(t, ".json", w.Extension())
}

func TestForString_DefaultExtension(t *testing.T) {
	w := ForString("", "")
	assert.Equal(t, ".txt", w.Extension())

	text, err := w.Text()
	require.NoError(t, err)
	assert.Empty(t, text)
}

func TestForBytes_BinarySafe(t *testing.T) {
	data := []byte{0x00, 0xff, 0x10, 0x00}
	w := ForBytes(data, ".bin")

	text, err := w.Text()
	require.NoError(t, err)
	assert.Equal(t, data, []byte(text))
	assert.Equal(t, ".bin", w.Extension())
}

func TestFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "payload.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"a":1}`), 0644))

	w, err := FromFile(path)
	require.NoError(t, err)

	text, err := w.Text()
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, text)
	assert.Equal(t, ".json", w.Extension())
}

func TestFromFile_ReadsEagerly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "payload.txt")
	require.NoError(t, os.WriteFile(path, []byte("before"), 0644))

	w, err := FromFile(path)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, []byte("after"), 0644))

	text, err := w.Text()
	require.NoError(t, err)
	assert.Equal(t, "before", text)
}

func TestFromFile_Missing(t *testing.T) {
	_, err := FromFile(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}
