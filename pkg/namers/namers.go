// Package namers derives approved and received artifact paths from a test's
// identity. Path derivation is pure: nothing here touches the filesystem, the
// engine creates directories when it writes.
package namers

import (
	"path/filepath"
	"strings"

	"greenbar/pkg/approvaltypes"
)

// TestNamer implements the default naming policy:
// <dir>[/<subdirectory>]/<basename>.approved<ext> and .received<ext>, where
// dir is the directory of the calling test's source file and basename encodes
// the test identity.
type TestNamer struct {
	dir      string
	basename string
}

// New creates a TestNamer for the given identity. An empty subdirectory keeps
// artifacts next to the test source.
func New(id approvaltypes.TestID, subdirectory string) *TestNamer {
	dir := id.Dir()
	if subdirectory != "" {
		dir = filepath.Join(dir, subdirectory)
	}
	return &TestNamer{dir: dir, basename: id.String()}
}

// ApprovedPath returns <dir>/<basename>.approved<ext>.
func (n *TestNamer) ApprovedPath(ext string) string {
	return filepath.Join(n.dir, n.basename+".approved"+ext)
}

// ReceivedPath returns <dir>/<basename>.received<ext>.
func (n *TestNamer) ReceivedPath(ext string) string {
	return filepath.Join(n.dir, n.basename+".received"+ext)
}

// ExistingFileNamer wraps an arbitrary user-supplied file as the received
// side of a verification. The approved counterpart sits next to it as
// <stem>.approved<ext>. The extension arguments are ignored; the wrapped
// file's own extension wins.
type ExistingFileNamer struct {
	path         string
	scrubbedCopy bool
}

// ForExistingFile wraps path as the received artifact. The file itself is
// compared in place; the engine must not write or delete it.
func ForExistingFile(path string) *ExistingFileNamer {
	return &ExistingFileNamer{path: path}
}

// ScrubbedCopy returns a variant whose received path is an engine-owned
// <stem>.received<ext> next to the original, used when a scrubber has to
// rewrite the content before comparison.
func (n *ExistingFileNamer) ScrubbedCopy() *ExistingFileNamer {
	return &ExistingFileNamer{path: n.path, scrubbedCopy: true}
}

// Extension returns the wrapped file's extension, ".txt" when it has none.
func (n *ExistingFileNamer) Extension() string {
	if ext := filepath.Ext(n.path); ext != "" {
		return ext
	}
	return ".txt"
}

func (n *ExistingFileNamer) stem() string {
	return strings.TrimSuffix(n.path, filepath.Ext(n.path))
}

// ApprovedPath returns <stem>.approved<ext> next to the wrapped file.
func (n *ExistingFileNamer) ApprovedPath(_ string) string {
	return n.stem() + ".approved" + n.Extension()
}

// ReceivedPath returns the wrapped file itself, or the engine-owned scrubbed
// copy for the ScrubbedCopy variant.
func (n *ExistingFileNamer) ReceivedPath(_ string) string {
	if n.scrubbedCopy {
		return n.stem() + ".received" + n.Extension()
	}
	return n.path
}
