// Package writers provides the built-in payload sources for verification
// calls. A writer pairs the payload text with the file extension the on-disk
// artifacts should carry.
package writers

import (
	"fmt"
	"os"
	"path/filepath"

	"greenbar/pkg/approvaltypes"
)

// DefaultExtension is used when a writer is constructed without one.
const DefaultExtension = ".txt"

type stringWriter struct {
	text string
	ext  string
}

// ForString wraps already-final text. An empty ext defaults to ".txt".
func ForString(text string, ext string) approvaltypes.Writer {
	if ext == "" {
		ext = DefaultExtension
	}
	return stringWriter{text: text, ext: ext}
}

func (w stringWriter) Text() (string, error) { return w.text, nil }
func (w stringWriter) Extension() string     { return w.ext }

// ForBytes wraps a raw byte payload. The bytes pass through untouched, so
// binary content survives comparison byte for byte.
func ForBytes(data []byte, ext string) approvaltypes.Writer {
	return ForString(string(data), ext)
}

// FromFile reads path's current content into a writer carrying the file's
// own extension. The read happens eagerly so later changes to the file do not
// leak into the verification.
func FromFile(path string) (approvaltypes.Writer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	ext := filepath.Ext(path)
	if ext == "" {
		ext = DefaultExtension
	}
	return ForBytes(data, ext), nil
}
