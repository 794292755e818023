// Package config holds greenbar's process-wide default configuration: the
// default namer factory, the default reporter, the front-loaded reporter list
// and the artifact subdirectory. Each axis is a stack; scoped overrides push
// a value and return a Disposer that restores the previous one. All access
// goes through the accessors here, there is no unscoped mutation.
package config

import (
	"sync"

	"greenbar/pkg/approvaltypes"
)

// axis identifies one independently overridable configuration dimension.
type axis int

const (
	axisNamer axis = iota
	axisReporter
	axisFrontLoaded
	axisSubdirectory
)

func (a axis) String() string {
	switch a {
	case axisNamer:
		return "default namer"
	case axisReporter:
		return "default reporter"
	case axisFrontLoaded:
		return "front-loaded reporter"
	case axisSubdirectory:
		return "subdirectory"
	}
	return "unknown"
}

// Disposer is a scoped handle over one pushed configuration value. Releasing
// it restores the previous value for its axis. Disposers must be released in
// strict reverse order of creation, across all axes; violating that order,
// or releasing twice, panics because silently tolerating it would corrupt
// the configuration seen by later tests.
type Disposer struct {
	axis     axis
	depth    int
	released bool
}

// Release pops this disposer's value and restores the previous one.
func (d *Disposer) Release() {
	globalMu.Lock()
	defer globalMu.Unlock()

	if d.released {
		panic("greenbar: " + d.axis.String() + " disposer released twice")
	}
	if len(disposerStack) == 0 || disposerStack[len(disposerStack)-1] != d {
		panic("greenbar: " + d.axis.String() + " disposer released out of order")
	}
	d.released = true
	disposerStack = disposerStack[:len(disposerStack)-1]

	switch d.axis {
	case axisNamer:
		namerStack = namerStack[:d.depth]
	case axisReporter:
		reporterStack = reporterStack[:d.depth]
	case axisFrontLoaded:
		frontLoadedStack = frontLoadedStack[:d.depth]
	case axisSubdirectory:
		subdirectoryStack = subdirectoryStack[:d.depth]
	}
}

// globalMu protects every stack below. Scoped overrides are still documented
// as single-goroutine-only: the mutex keeps concurrent pushes from corrupting
// the slices, not from interleaving semantically.
var globalMu sync.RWMutex

var (
	namerStack        []approvaltypes.NamerFactory
	reporterStack     []approvaltypes.Reporter
	frontLoadedStack  []approvaltypes.Reporter
	subdirectoryStack []string

	// disposerStack records outstanding scoped overrides in creation order,
	// across all axes, to enforce strict reverse-order release.
	disposerStack []*Disposer
)

// PushDefaultNamer overrides the default namer factory until the returned
// disposer is released.
func PushDefaultNamer(f approvaltypes.NamerFactory) *Disposer {
	ensureInit()
	globalMu.Lock()
	defer globalMu.Unlock()
	d := &Disposer{axis: axisNamer, depth: len(namerStack)}
	namerStack = append(namerStack, f)
	disposerStack = append(disposerStack, d)
	return d
}

// PushDefaultReporter overrides the default reporter until the returned
// disposer is released.
func PushDefaultReporter(r approvaltypes.Reporter) *Disposer {
	ensureInit()
	globalMu.Lock()
	defer globalMu.Unlock()
	d := &Disposer{axis: axisReporter, depth: len(reporterStack)}
	reporterStack = append(reporterStack, r)
	disposerStack = append(disposerStack, d)
	return d
}

// PushFrontLoadedReporter adds a reporter to the front-loaded list until the
// returned disposer is released. Unlike the other axes the whole list is
// active at once; releasing removes only this entry.
func PushFrontLoadedReporter(r approvaltypes.Reporter) *Disposer {
	ensureInit()
	globalMu.Lock()
	defer globalMu.Unlock()
	d := &Disposer{axis: axisFrontLoaded, depth: len(frontLoadedStack)}
	frontLoadedStack = append(frontLoadedStack, r)
	disposerStack = append(disposerStack, d)
	return d
}

// PushSubdirectory relocates artifacts produced by the default namer into the
// named subdirectory until the returned disposer is released.
func PushSubdirectory(dir string) *Disposer {
	ensureInit()
	globalMu.Lock()
	defer globalMu.Unlock()
	d := &Disposer{axis: axisSubdirectory, depth: len(subdirectoryStack)}
	subdirectoryStack = append(subdirectoryStack, dir)
	disposerStack = append(disposerStack, d)
	return d
}

// DefaultNamerFactory returns the currently active namer factory.
func DefaultNamerFactory() approvaltypes.NamerFactory {
	ensureInit()
	globalMu.RLock()
	defer globalMu.RUnlock()
	return namerStack[len(namerStack)-1]
}

// DefaultReporter returns the currently active primary reporter.
func DefaultReporter() approvaltypes.Reporter {
	ensureInit()
	globalMu.RLock()
	defer globalMu.RUnlock()
	return reporterStack[len(reporterStack)-1]
}

// FrontLoadedReporters returns a copy of the active front-loaded reporter
// list, in registration order.
func FrontLoadedReporters() []approvaltypes.Reporter {
	ensureInit()
	globalMu.RLock()
	defer globalMu.RUnlock()
	out := make([]approvaltypes.Reporter, len(frontLoadedStack))
	copy(out, frontLoadedStack)
	return out
}

// Subdirectory returns the currently active artifact subdirectory. Empty
// means artifacts sit next to the test source file.
func Subdirectory() string {
	ensureInit()
	globalMu.RLock()
	defer globalMu.RUnlock()
	return subdirectoryStack[len(subdirectoryStack)-1]
}

// ResetForTesting discards every override and re-derives the bootstrap
// defaults. Outstanding disposers become invalid. Only tests call this.
func ResetForTesting() {
	ensureInit()
	globalMu.Lock()
	defer globalMu.Unlock()
	resetLocked()
}
