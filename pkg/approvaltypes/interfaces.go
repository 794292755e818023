// Package approvaltypes contains the shared contracts between the approval
// engine and its pluggable components. It has no dependencies on the rest of
// greenbar so that namers, reporters, scrubbers and writers can be implemented
// outside this module.
package approvaltypes

// TestingT is the subset of *testing.T the approval engine needs. Any host
// framework that can fail a test and run cleanup callbacks can satisfy it.
type TestingT interface {
	Helper()
	Name() string
	Logf(format string, args ...any)
	Fatalf(format string, args ...any)
	Cleanup(func())
}

// Namer derives the approved and received artifact paths for one
// verification. Implementations must be deterministic: the same namer asked
// twice for the same extension returns the same paths.
type Namer interface {
	// ApprovedPath returns the path of the accepted baseline for the given
	// extension. The extension carries its leading dot (".txt", ".json").
	ApprovedPath(ext string) string

	// ReceivedPath returns the path the freshly produced output is written to.
	ReceivedPath(ext string) string
}

// NamerFactory builds a Namer for a captured test identity. The configuration
// stack stores factories rather than namers so that the default naming policy
// can be swapped without knowing identities in advance.
type NamerFactory func(id TestID) Namer

// Reporter is invoked when received and approved content differ. The return
// value reports whether this reporter handled the discrepancy (launched a
// tool, recorded the failure); composite reporters use it to stop trying
// alternatives. It never changes the test outcome, which is always failure on
// mismatch.
type Reporter interface {
	Report(receivedPath, approvedPath string) bool
}

// ReporterFunc adapts a plain function to the Reporter interface.
type ReporterFunc func(receivedPath, approvedPath string) bool

// Report calls f.
func (f ReporterFunc) Report(receivedPath, approvedPath string) bool {
	return f(receivedPath, approvedPath)
}

// Scrubber normalizes volatile content before comparison. Implementations
// must be pure and idempotent: scrub(scrub(s)) == scrub(s).
type Scrubber func(string) string

// Writer produces the payload for a single verification together with the
// file extension the artifacts should carry.
type Writer interface {
	// Text returns the payload. It is called exactly once per verification.
	Text() (string, error)

	// Extension returns the artifact extension including the leading dot.
	Extension() string
}
