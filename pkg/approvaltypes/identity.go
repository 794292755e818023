package approvaltypes

import (
	"fmt"
	"path/filepath"
	"strings"
)

// TestID identifies one verification call within a process run. It is
// captured once at the facade boundary and never persisted; its only use is
// deriving artifact file names.
type TestID struct {
	// SourcePath is the source file of the calling test.
	SourcePath string

	// TestName is the host framework's test name, including subtest segments.
	TestName string

	// Sequence discriminates multiple verifications inside one test, in call
	// order. The first verification is 0 and renders without a suffix.
	Sequence int
}

// Dir returns the directory artifacts are placed in by default: the directory
// containing the calling test's source file.
func (id TestID) Dir() string {
	return filepath.Dir(id.SourcePath)
}

// String renders the artifact basename:
// <sourceStem>.<testName>[.<sequence>], with the test name sanitized for use
// in file names.
func (id TestID) String() string {
	stem := strings.TrimSuffix(filepath.Base(id.SourcePath), filepath.Ext(id.SourcePath))
	base := stem + "." + SanitizeName(id.TestName)
	if id.Sequence > 0 {
		base = fmt.Sprintf("%s.%d", base, id.Sequence)
	}
	return base
}

// SanitizeName makes a test name safe for file names. Subtest separators
// become dots; anything outside [A-Za-z0-9._-] becomes an underscore.
func SanitizeName(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		switch {
		case r == '/':
			b.WriteByte('.')
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '.', r == '_', r == '-':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
