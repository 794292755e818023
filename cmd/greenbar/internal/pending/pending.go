// Package pending locates and resolves pending approval artifacts: received
// files waiting for a human to accept or discard them.
package pending

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"greenbar/internal/logger"
	"greenbar/pkg/reporters"
)

// Pair is one pending verification outcome: a received file and the approved
// counterpart it was compared against. FirstRun marks pairs whose approved
// file does not exist yet.
type Pair struct {
	Received string
	Approved string
	FirstRun bool
}

// Name returns the pair's display name: the received path without the
// ".received" marker.
func (p Pair) Name() string {
	return strings.Replace(filepath.Base(p.Received), ".received.", ".", 1)
}

// Scan walks root for *.received.* artifacts and derives their approved
// counterparts. Results are sorted by received path for stable output.
func Scan(root string) ([]Pair, error) {
	var pairs []Pair
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.Contains(d.Name(), ".received.") {
			return nil
		}
		approved := strings.Replace(path, ".received.", ".approved.", 1)
		_, statErr := os.Stat(approved)
		pairs = append(pairs, Pair{
			Received: path,
			Approved: approved,
			FirstRun: os.IsNotExist(statErr),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", root, err)
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].Received < pairs[j].Received })
	return pairs, nil
}

// Find resolves a received path argument to a Pair.
func Find(receivedPath string) (Pair, error) {
	if !strings.Contains(filepath.Base(receivedPath), ".received.") {
		return Pair{}, fmt.Errorf("%s is not a received artifact", receivedPath)
	}
	if _, err := os.Stat(receivedPath); err != nil {
		return Pair{}, fmt.Errorf("received artifact not found: %w", err)
	}
	approved := strings.Replace(receivedPath, ".received.", ".approved.", 1)
	_, statErr := os.Stat(approved)
	return Pair{
		Received: receivedPath,
		Approved: approved,
		FirstRun: os.IsNotExist(statErr),
	}, nil
}

// Approve moves the received file over the approved file, creating the
// approved file on a first approval.
func Approve(p Pair) error {
	if err := os.Rename(p.Received, p.Approved); err != nil {
		return fmt.Errorf("failed to approve %s: %w", p.Received, err)
	}
	logger.Info("Approved", "approved", p.Approved)
	return nil
}

// Reject deletes the received file, keeping the current approved baseline.
func Reject(p Pair) error {
	if err := os.Remove(p.Received); err != nil {
		return fmt.Errorf("failed to reject %s: %w", p.Received, err)
	}
	logger.Info("Rejected", "received", p.Received)
	return nil
}

// RenderDiff writes the colored line diff between the pair's approved and
// received content to w.
func RenderDiff(w io.Writer, p Pair) {
	reporters.DiffTo(w).Report(p.Received, p.Approved)
}
