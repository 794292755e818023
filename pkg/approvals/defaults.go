package approvals

import (
	"greenbar/internal/config"
	"greenbar/pkg/approvaltypes"
)

// Disposer restores the previous process-wide default when released.
// Disposers for the same axis must be released in reverse order of creation;
// releasing out of order or twice panics rather than corrupting the
// configuration seen by later tests.
type Disposer = config.Disposer

// UseAsDefaultReporter makes r the default reporter until the disposer is
// released. Scoped defaults are process-wide; do not interleave overrides
// from concurrently running tests.
func UseAsDefaultReporter(r approvaltypes.Reporter) *Disposer {
	return config.PushDefaultReporter(r)
}

// UseAsDefaultNamer makes f the default naming policy until the disposer is
// released.
func UseAsDefaultNamer(f approvaltypes.NamerFactory) *Disposer {
	return config.PushDefaultNamer(f)
}

// UseSubdirectory relocates artifacts produced by the default naming policy
// into dir until the disposer is released. An empty dir selects the
// conventional "approval_tests" subdirectory.
func UseSubdirectory(dir string) *Disposer {
	if dir == "" {
		dir = config.DefaultSubdirectoryName
	}
	return config.PushSubdirectory(dir)
}

// UseAsFrontLoadedReporter registers r as a front-loaded reporter until the
// disposer is released. Front-loaded reporters run before the primary
// reporter on every mismatch and never consume the failure.
func UseAsFrontLoadedReporter(r approvaltypes.Reporter) *Disposer {
	return config.PushFrontLoadedReporter(r)
}
