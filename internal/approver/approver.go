// Package approver implements the verification engine: it materializes the
// received artifact, compares it against the approved baseline and drives the
// reporters on mismatch. Everything it needs is resolved by the caller and
// passed in, so this package holds no state of its own.
package approver

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"greenbar/internal/logger"
	"greenbar/pkg/approvaltypes"
)

// Verification carries everything one verify call needs, fully resolved: no
// defaults are consulted past this point.
type Verification struct {
	Namer       approvaltypes.Namer
	Writer      approvaltypes.Writer
	Reporter    approvaltypes.Reporter
	FrontLoaded []approvaltypes.Reporter

	// Scrubber is applied to the writer's payload before it is written. Nil
	// means no scrubbing. Approved files are assumed pre-scrubbed and are
	// never scrubbed again at compare time.
	Scrubber approvaltypes.Scrubber
}

// Verify writes the scrubbed payload to the received path, compares it
// byte for byte against the approved file and fails t on mismatch. On a
// match the received file is deleted; on a mismatch it is left on disk for
// the reporters and the user. A missing approved file is a mismatch against
// an empty baseline, so first runs report uniformly.
func Verify(t approvaltypes.TestingT, v Verification) {
	t.Helper()

	ext := v.Writer.Extension()
	approvedPath := v.Namer.ApprovedPath(ext)
	receivedPath := v.Namer.ReceivedPath(ext)

	text, err := v.Writer.Text()
	if err != nil {
		// Not a mismatch: the payload could not even be produced.
		t.Fatalf("approval aborted: failed to produce output: %v", err)
		return
	}
	if v.Scrubber != nil {
		text = v.Scrubber(text)
	}

	if err := os.MkdirAll(filepath.Dir(receivedPath), 0755); err != nil {
		t.Fatalf("approval aborted: cannot create artifact directory: %v", err)
		return
	}
	if err := os.WriteFile(receivedPath, []byte(text), 0644); err != nil {
		t.Fatalf("approval aborted: cannot write received file %s: %v", receivedPath, err)
		return
	}
	logger.Debug("Wrote received file", "path", receivedPath, "bytes", len(text))

	compare(t, []byte(text), receivedPath, approvedPath, v, true)
}

// VerifyExisting compares a pre-existing user-owned received file against
// its approved counterpart. The engine writes nothing and never deletes the
// user's file, even on a match.
func VerifyExisting(t approvaltypes.TestingT, v Verification) {
	t.Helper()

	ext := v.Writer.Extension()
	approvedPath := v.Namer.ApprovedPath(ext)
	receivedPath := v.Namer.ReceivedPath(ext)

	received, err := os.ReadFile(receivedPath)
	if err != nil {
		t.Fatalf("approval aborted: cannot read received file %s: %v", receivedPath, err)
		return
	}

	compare(t, received, receivedPath, approvedPath, v, false)
}

// compare holds the shared tail of both flows: baseline read, byte
// comparison, cleanup or reporting. ownsReceived controls whether a match
// deletes the received file.
func compare(t approvaltypes.TestingT, received []byte, receivedPath, approvedPath string, v Verification, ownsReceived bool) {
	t.Helper()

	approved, err := os.ReadFile(approvedPath)
	firstRun := false
	if err != nil {
		if !os.IsNotExist(err) {
			t.Fatalf("approval aborted: cannot read approved file %s: %v", approvedPath, err)
			return
		}
		// First run: compare against an empty baseline so the reporter
		// shows the entire new output.
		firstRun = true
		approved = nil
	}

	if !firstRun && bytes.Equal(received, approved) {
		logger.Debug("Approval matched", "approved", approvedPath)
		if ownsReceived {
			if err := os.Remove(receivedPath); err != nil {
				t.Fatalf("approval aborted: cannot remove received file %s: %v", receivedPath, err)
			}
		}
		return
	}

	logger.Debug("Approval mismatch", "received", receivedPath, "approved", approvedPath, "first_run", firstRun)

	// Front-loaded reporters are diagnostic; they all run and never consume
	// the failure.
	for _, fr := range v.FrontLoaded {
		fr.Report(receivedPath, approvedPath)
	}

	handled := false
	if v.Reporter != nil {
		handled = v.Reporter.Report(receivedPath, approvedPath)
	}

	t.Fatalf("%s", failureMessage(receivedPath, approvedPath, firstRun, handled))
}

func failureMessage(receivedPath, approvedPath string, firstRun, handled bool) string {
	var b bytes.Buffer
	if firstRun {
		fmt.Fprintf(&b, "approval failed: no approved baseline exists yet\n")
	} else {
		fmt.Fprintf(&b, "approval failed: received output does not match approved baseline\n")
	}
	fmt.Fprintf(&b, "  received: %s\n", receivedPath)
	fmt.Fprintf(&b, "  approved: %s\n", approvedPath)
	fmt.Fprintf(&b, "  reporter handled: %t\n", handled)
	fmt.Fprintf(&b, "  to approve: mv %q %q", receivedPath, approvedPath)
	return b.String()
}
