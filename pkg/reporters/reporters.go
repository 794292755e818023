// Package reporters provides the built-in mismatch reporters: composites,
// non-interactive recorders, inline diff rendering and external diff tool
// launchers. A reporter never decides pass/fail; it only surfaces or records
// a mismatch the engine has already established.
package reporters

import (
	"greenbar/internal/logger"
	"greenbar/pkg/approvaltypes"
)

// FirstMatch tries each reporter in order and stops at the first one that
// reports it handled the mismatch.
func FirstMatch(rs ...approvaltypes.Reporter) approvaltypes.Reporter {
	return approvaltypes.ReporterFunc(func(received, approved string) bool {
		for _, r := range rs {
			if r.Report(received, approved) {
				return true
			}
		}
		return false
	})
}

// Quiet is the no-op placeholder used when no environment-appropriate tool
// exists. It never handles anything, so composites keep trying.
func Quiet() approvaltypes.Reporter {
	return approvaltypes.ReporterFunc(func(_, _ string) bool {
		return false
	})
}

// Log records the mismatch through the structured logger and always handles.
// This is the non-interactive default for CI runs.
func Log() approvaltypes.Reporter {
	return approvaltypes.ReporterFunc(func(received, approved string) bool {
		logger.Error("Approval mismatch",
			"received", received,
			"approved", approved)
		return true
	})
}
