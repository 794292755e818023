package approvals

import (
	"fmt"
	"strings"

	"greenbar/pkg/approvaltypes"
)

// AsText is the default string conversion: fmt's %v formatting. It is called
// exactly once per verified value.
func AsText(v any) string {
	return fmt.Sprintf("%v", v)
}

// Options aggregates the per-call customizations of a verification: an
// optional scrubber, an explicit reporter or namer, a file extension and a
// string converter. Options is immutable; every With method returns a derived
// copy and leaves the receiver untouched, so an Options value can be shared
// between tests safely. The zero value is usable as-is.
type Options struct {
	scrubber  approvaltypes.Scrubber
	reporter  approvaltypes.Reporter
	namer     approvaltypes.Namer
	extension string
	converter func(any) string
}

// NewOptions returns an empty Options value to chain With calls on.
func NewOptions() Options {
	return Options{}
}

// WithScrubber returns a copy using scrub to normalize output before
// comparison.
func (o Options) WithScrubber(scrub approvaltypes.Scrubber) Options {
	o.scrubber = scrub
	return o
}

// WithReporter returns a copy using r instead of the current default
// reporter.
func (o Options) WithReporter(r approvaltypes.Reporter) Options {
	o.reporter = r
	return o
}

// WithNamer returns a copy using n instead of the current default naming
// policy.
func (o Options) WithNamer(n approvaltypes.Namer) Options {
	o.namer = n
	return o
}

// WithExtension returns a copy whose artifacts carry ext (with or without
// the leading dot). Writers passed directly to Verify keep their own
// extension.
func (o Options) WithExtension(ext string) Options {
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	o.extension = ext
	return o
}

// WithConverter returns a copy using convert instead of AsText for values
// that are not strings, writers, errors or Stringers.
func (o Options) WithConverter(convert func(any) string) Options {
	o.converter = convert
	return o
}

func (o Options) ext() string {
	if o.extension == "" {
		return ".txt"
	}
	return o.extension
}

func (o Options) convert(v any) string {
	if o.converter != nil {
		return o.converter(v)
	}
	return AsText(v)
}

// oneOption enforces the facade's at-most-one-Options rule.
func oneOption(opts []Options) Options {
	switch len(opts) {
	case 0:
		return Options{}
	case 1:
		return opts[0]
	default:
		panic("greenbar: at most one Options value may be passed per verification")
	}
}
