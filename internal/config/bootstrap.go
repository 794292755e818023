package config

import (
	"os"
	"sync"

	"github.com/joho/godotenv"

	"greenbar/internal/logger"
	"greenbar/pkg/approvaltypes"
	"greenbar/pkg/namers"
	"greenbar/pkg/reporters"
)

// DefaultSubdirectoryName is the subdirectory used when a caller opts into
// subdirectory placement without naming one.
const DefaultSubdirectoryName = "approval_tests"

var initOnce sync.Once

// ensureInit lazily derives the bottom-of-stack defaults the first time any
// configuration is read or pushed.
func ensureInit() {
	initOnce.Do(func() {
		// Values already present in the environment win over the file.
		if err := godotenv.Load(".greenbar.env"); err == nil {
			logger.Debug("Loaded .greenbar.env")
			if level := os.Getenv("GREENBAR_LOG_LEVEL"); level != "" {
				logger.SetLevel(level)
			}
		}

		globalMu.Lock()
		defer globalMu.Unlock()
		resetLocked()
	})
}

// resetLocked installs the bootstrap entry for each axis. Caller holds
// globalMu.
func resetLocked() {
	namerStack = []approvaltypes.NamerFactory{defaultNamerFactory}
	reporterStack = []approvaltypes.Reporter{reporterFromEnv()}
	frontLoadedStack = nil
	subdirectoryStack = []string{os.Getenv("GREENBAR_SUBDIR")}
	disposerStack = nil
}

// defaultNamerFactory consults the subdirectory axis at call time, so a
// subdirectory override changes where the default policy places artifacts
// without replacing the namer itself.
func defaultNamerFactory(id approvaltypes.TestID) approvaltypes.Namer {
	globalMu.RLock()
	subdir := subdirectoryStack[len(subdirectoryStack)-1]
	globalMu.RUnlock()
	return namers.New(id, subdir)
}

func reporterFromEnv() approvaltypes.Reporter {
	name := os.Getenv("GREENBAR_REPORTER")
	switch name {
	case "quiet":
		return reporters.Quiet()
	case "log":
		return reporters.Log()
	case "diff":
		return reporters.Diff()
	case "auto", "":
		return reporters.Auto()
	default:
		logger.Warn("Unknown GREENBAR_REPORTER value, using auto", "value", name)
		return reporters.Auto()
	}
}
