package reporters

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"greenbar/internal/logger"
	"greenbar/pkg/approvaltypes"
)

// now is replaced in tests for deterministic records.
var now = time.Now

// mismatchRecord is one YAML document in a File reporter's output.
type mismatchRecord struct {
	Received   string `yaml:"received"`
	Approved   string `yaml:"approved"`
	FirstRun   bool   `yaml:"first_run"`
	DetectedAt string `yaml:"detected_at"`
}

// File appends a YAML record of each mismatch to path, one document per
// mismatch. This is the machine-readable "record the failure" reporter;
// tooling can replay the records to review or approve in bulk. Always
// handles once the record is written.
func File(path string) approvaltypes.Reporter {
	return approvaltypes.ReporterFunc(func(received, approved string) bool {
		record := mismatchRecord{
			Received:   received,
			Approved:   approved,
			FirstRun:   !fileExists(approved),
			DetectedAt: now().UTC().Format(time.RFC3339),
		}

		data, err := yaml.Marshal(record)
		if err != nil {
			logger.Error("Failed to marshal mismatch record", "error", err)
			return false
		}

		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			logger.Error("Failed to open mismatch record file", "path", path, "error", err)
			return false
		}
		defer func() { _ = f.Close() }()

		if _, err := f.WriteString("---\n" + string(data)); err != nil {
			logger.Error("Failed to append mismatch record", "path", path, "error", err)
			return false
		}
		return true
	})
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
