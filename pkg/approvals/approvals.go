// Package approvals is greenbar's public facade. A test hands it a value;
// the facade materializes the value as a received file, compares it against
// the committed approved file and fails the test on any difference, invoking
// a reporter to surface the diff. Pass/fail is decided entirely by file
// content, so accepting a change is approving a file, not editing an
// assertion.
//
//	func TestGreeting(t *testing.T) {
//		approvals.VerifyString(t, Greeting("World"))
//	}
package approvals

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"greenbar/internal/approver"
	"greenbar/internal/config"
	"greenbar/pkg/approvaltypes"
	"greenbar/pkg/namers"
	"greenbar/pkg/writers"
)

// NoExceptionMessage is verified by VerifyError and VerifyPanic when the
// operation completes without failing.
const NoExceptionMessage = "*** no exception thrown ***"

// Verify verifies any value against the test's approved file. The value is
// turned into a payload once, at this boundary: a Writer is used as-is, a
// string or []byte is used raw, an error contributes its message, a
// fmt.Stringer its String(), and anything else goes through the Options
// converter (AsText by default).
func Verify(t approvaltypes.TestingT, value any, opts ...Options) {
	t.Helper()
	opt := oneOption(opts)

	var w approvaltypes.Writer
	switch val := value.(type) {
	case approvaltypes.Writer:
		w = val
	case string:
		w = writers.ForString(val, opt.ext())
	case []byte:
		w = writers.ForBytes(val, opt.ext())
	case error:
		w = writers.ForString(val.Error(), opt.ext())
	case fmt.Stringer:
		w = writers.ForString(val.String(), opt.ext())
	default:
		w = writers.ForString(opt.convert(value), opt.ext())
	}

	run(t, w, opt)
}

// VerifyString verifies already-final text.
func VerifyString(t approvaltypes.TestingT, s string, opts ...Options) {
	t.Helper()
	opt := oneOption(opts)
	run(t, writers.ForString(s, opt.ext()), opt)
}

// VerifyBinary verifies a raw byte payload under the given extension. The
// comparison is byte-wise, so any content is safe.
func VerifyBinary(t approvaltypes.TestingT, data []byte, ext string, opts ...Options) {
	t.Helper()
	opt := oneOption(opts).WithExtension(ext)
	run(t, writers.ForBytes(data, opt.ext()), opt)
}

// VerifyAll verifies an ordered collection as a single artifact of the form
//
//	<header>
//
//	[0] = <converted0>
//	[1] = <converted1>
//
// An empty header is omitted. A nil convert falls back to AsText.
func VerifyAll[T any](t approvaltypes.TestingT, header string, items []T, convert func(T) string, opts ...Options) {
	t.Helper()
	VerifySeq(t, header, slices.Values(items), convert, opts...)
}

// VerifySeq is VerifyAll for any finite sequence. The sequence is consumed
// exactly once.
func VerifySeq[T any](t approvaltypes.TestingT, header string, seq iter.Seq[T], convert func(T) string, opts ...Options) {
	t.Helper()
	opt := oneOption(opts)
	if convert == nil {
		convert = func(v T) string { return opt.convert(v) }
	}

	var b strings.Builder
	if header != "" {
		b.WriteString(header)
		b.WriteString("\n\n\n")
	}
	i := 0
	for v := range seq {
		fmt.Fprintf(&b, "[%d] = %s\n", i, convert(v))
		i++
	}

	run(t, writers.ForString(b.String(), opt.ext()), opt)
}

// VerifyError runs f and verifies the returned error's message, or
// NoExceptionMessage when f returns nil. Both outcomes are ordinary text, so
// an expected failure is approved like any other output.
func VerifyError(t approvaltypes.TestingT, f func() error, opts ...Options) {
	t.Helper()
	text := NoExceptionMessage
	if err := f(); err != nil {
		text = err.Error()
	}
	VerifyString(t, text, opts...)
}

// VerifyPanic runs f, recovers any panic and verifies the panic text, or
// NoExceptionMessage when f returns normally.
func VerifyPanic(t approvaltypes.TestingT, f func(), opts ...Options) {
	t.Helper()
	text := NoExceptionMessage
	func() {
		defer func() {
			if r := recover(); r != nil {
				text = fmt.Sprintf("%v", r)
			}
		}()
		f()
	}()
	VerifyString(t, text, opts...)
}

// VerifyExistingFile verifies a file the test produced through some other
// channel. The approved counterpart lives next to it as <stem>.approved<ext>.
// Without a scrubber the file is compared in place and never written or
// deleted by the engine. With a scrubber, a scrubbed engine-owned copy
// <stem>.received<ext> goes through the standard flow instead.
func VerifyExistingFile(t approvaltypes.TestingT, path string, opts ...Options) {
	t.Helper()
	opt := oneOption(opts)

	n := namers.ForExistingFile(path)
	if opt.scrubber == nil {
		approver.VerifyExisting(t, approver.Verification{
			Namer:       n,
			Writer:      writers.ForString("", n.Extension()),
			Reporter:    resolveReporter(opt),
			FrontLoaded: config.FrontLoadedReporters(),
		})
		return
	}

	w, err := writers.FromFile(path)
	if err != nil {
		t.Fatalf("approval aborted: %v", err)
		return
	}
	approver.Verify(t, approver.Verification{
		Namer:       n.ScrubbedCopy(),
		Writer:      w,
		Reporter:    resolveReporter(opt),
		FrontLoaded: config.FrontLoadedReporters(),
		Scrubber:    opt.scrubber,
	})
}

// run resolves the namer and reporter against the configuration stack and
// hands off to the engine.
func run(t approvaltypes.TestingT, w approvaltypes.Writer, opt Options) {
	t.Helper()

	n := opt.namer
	if n == nil {
		n = config.DefaultNamerFactory()(captureID(t))
	}

	approver.Verify(t, approver.Verification{
		Namer:       n,
		Writer:      w,
		Reporter:    resolveReporter(opt),
		FrontLoaded: config.FrontLoadedReporters(),
		Scrubber:    opt.scrubber,
	})
}

func resolveReporter(opt Options) approvaltypes.Reporter {
	if opt.reporter != nil {
		return opt.reporter
	}
	return config.DefaultReporter()
}
