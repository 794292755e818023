// Package testutils provides test doubles shared by greenbar's own test
// suites.
package testutils

import "fmt"

// RecordingT implements approvaltypes.TestingT and records failures instead
// of stopping the test, so the engine's failure path can itself be asserted
// on. Fatalf records and returns instead of aborting the goroutine; callers
// must check Failed after the call under test.
type RecordingT struct {
	TestName string

	FatalMessages []string
	LogMessages   []string
	cleanups      []func()
}

// NewRecordingT creates a recorder reporting the given test name.
func NewRecordingT(name string) *RecordingT {
	return &RecordingT{TestName: name}
}

// Helper is a no-op.
func (r *RecordingT) Helper() {}

// Name returns the configured test name.
func (r *RecordingT) Name() string { return r.TestName }

// Logf records the formatted message.
func (r *RecordingT) Logf(format string, args ...any) {
	r.LogMessages = append(r.LogMessages, fmt.Sprintf(format, args...))
}

// Fatalf records the formatted message. Unlike *testing.T it returns,
// letting the test inspect what the engine reported.
func (r *RecordingT) Fatalf(format string, args ...any) {
	r.FatalMessages = append(r.FatalMessages, fmt.Sprintf(format, args...))
}

// Cleanup registers a function for RunCleanups.
func (r *RecordingT) Cleanup(f func()) {
	r.cleanups = append(r.cleanups, f)
}

// Failed reports whether Fatalf was called.
func (r *RecordingT) Failed() bool { return len(r.FatalMessages) > 0 }

// RunCleanups runs registered cleanup functions in reverse order, matching
// the host framework's behavior.
func (r *RecordingT) RunCleanups() {
	for i := len(r.cleanups) - 1; i >= 0; i-- {
		r.cleanups[i]()
	}
	r.cleanups = nil
}
