package reporters

import (
	"os"
	"os/exec"
	"path/filepath"

	"github.com/muesli/termenv"

	"greenbar/internal/logger"
	"greenbar/pkg/approvaltypes"
)

// launchCommand starts an external program without waiting for it. Tests
// override it to capture launches instead of spawning processes.
var launchCommand = defaultLaunch

func defaultLaunch(name string, argv ...string) error {
	return exec.Command(name, argv...).Start()
}

// ExternalTool launches a diff/merge tool with the received and approved
// paths appended to argv. The approved file is created empty first if it
// does not exist, so two-pane tools have something to open on first runs.
// The tool's exit status is not inspected: any successful launch counts as
// handled. A failed launch is logged at debug level and counts as not
// handled, so composites can continue.
func ExternalTool(name string, argv ...string) approvaltypes.Reporter {
	return approvaltypes.ReporterFunc(func(received, approved string) bool {
		if err := ensureExists(approved); err != nil {
			logger.Debug("Could not create empty approved file", "path", approved, "error", err)
			return false
		}
		args := append(append([]string{}, argv...), received, approved)
		if err := launchCommand(name, args...); err != nil {
			logger.Debug("External tool launch failed", "tool", name, "error", err)
			return false
		}
		logger.Info("Launched external diff tool", "tool", name)
		return true
	})
}

// ensureExists creates an empty file at path if none exists, including its
// parent directory.
func ensureExists(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	return f.Close()
}

// knownTools lists external diff tools in preference order.
var knownTools = []struct {
	binary string
	argv   []string
}{
	{"code", []string{"--diff"}},
	{"meld", nil},
	{"kdiff3", nil},
	{"opendiff", nil},
	{"vimdiff", nil},
}

// FirstDetectedTool returns an ExternalTool reporter for the first known
// diff tool present on PATH, or false when none is installed.
func FirstDetectedTool() (approvaltypes.Reporter, bool) {
	for _, tool := range knownTools {
		if _, err := exec.LookPath(tool.binary); err == nil {
			return ExternalTool(tool.binary, tool.argv...), true
		}
	}
	return nil, false
}

// Auto picks the environment-appropriate reporter: an installed external
// diff tool when running interactively, otherwise an inline diff with a log
// fallback. CI environments never get an external tool.
func Auto() approvaltypes.Reporter {
	if interactive() {
		if tool, ok := FirstDetectedTool(); ok {
			return FirstMatch(tool, Diff(), Log())
		}
	}
	return FirstMatch(Diff(), Log())
}

func interactive() bool {
	if os.Getenv("CI") != "" {
		return false
	}
	return termenv.ColorProfile() != termenv.Ascii
}
