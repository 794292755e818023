package reporters

import (
	"fmt"
	"sync"

	"greenbar/internal/logger"
	"greenbar/pkg/approvaltypes"
)

var clipboardInitOnce sync.Once
var clipboardInitErr error

// Clipboard copies the shell command that would approve the received output
// to the system clipboard, so fixing an expected change is a single paste.
// Reports not handled on platforms without clipboard support, letting
// composites fall through to another reporter.
func Clipboard() approvaltypes.Reporter {
	return approvaltypes.ReporterFunc(func(received, approved string) bool {
		if !clipboardAvailable {
			return false
		}
		clipboardInitOnce.Do(func() {
			clipboardInitErr = initClipboard()
		})
		if clipboardInitErr != nil {
			logger.Debug("Clipboard unavailable", "error", clipboardInitErr)
			return false
		}

		cmd := fmt.Sprintf("mv %q %q", received, approved)
		if err := writeToClipboard(cmd); err != nil {
			logger.Debug("Clipboard write failed", "error", err)
			return false
		}
		logger.Info("Approve command copied to clipboard", "command", cmd)
		return true
	})
}
