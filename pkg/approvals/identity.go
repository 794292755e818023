package approvals

import (
	"runtime"
	"strings"
	"sync"

	"greenbar/pkg/approvaltypes"
)

// seqCounters discriminates multiple verifications inside one test, keyed by
// source path and test name. Call order, not goroutine identity, determines
// the sequence, and each test's counter is removed by t.Cleanup so repeated
// runs (go test -count=N) derive identical artifact names.
var (
	seqMu       sync.Mutex
	seqCounters = make(map[string]int)
)

// captureID derives the identity of the current verification call: the
// calling test's source file, the host framework's test name and the
// per-test sequence number.
func captureID(t approvaltypes.TestingT) approvaltypes.TestID {
	source := callerSourceFile()
	name := t.Name()

	key := source + "\x00" + name
	seqMu.Lock()
	seq := seqCounters[key]
	seqCounters[key] = seq + 1
	seqMu.Unlock()
	if seq == 0 {
		t.Cleanup(func() {
			seqMu.Lock()
			delete(seqCounters, key)
			seqMu.Unlock()
		})
	}

	return approvaltypes.TestID{
		SourcePath: source,
		TestName:   name,
		Sequence:   seq,
	}
}

// callerSourceFile walks the call stack for the innermost _test.go frame.
// When the facade is driven from non-test code (a custom harness), the first
// frame outside this module is used instead.
func callerSourceFile() string {
	pcs := make([]uintptr, 32)
	n := runtime.Callers(3, pcs)
	frames := runtime.CallersFrames(pcs[:n])

	fallback := ""
	for {
		frame, more := frames.Next()
		if strings.HasSuffix(frame.File, "_test.go") {
			return frame.File
		}
		if fallback == "" && !strings.HasPrefix(frame.Function, "greenbar/") {
			fallback = frame.File
		}
		if !more {
			break
		}
	}
	if fallback != "" {
		return fallback
	}
	return "unknown_test.go"
}
