package reporters

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sergi/go-diff/diffmatchpatch"

	"greenbar/pkg/approvaltypes"
)

var (
	diffHeaderStyle = lipgloss.NewStyle().Bold(true)
	diffDeleteStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")) // Red
	diffInsertStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))  // Green
)

// Diff prints an inline colored diff between the approved and received
// content to stderr and always handles. A missing approved file diffs
// against an empty baseline, so first runs show the whole new output as
// additions.
func Diff() approvaltypes.Reporter {
	return DiffTo(os.Stderr)
}

// DiffTo is Diff writing to w instead of stderr.
func DiffTo(w io.Writer) approvaltypes.Reporter {
	return approvaltypes.ReporterFunc(func(received, approved string) bool {
		approvedText := readOrEmpty(approved)
		receivedText := readOrEmpty(received)

		fmt.Fprintln(w, diffHeaderStyle.Render(fmt.Sprintf("=== Approval mismatch: %s ===", approved)))

		fmt.Fprintln(w, "\n--- Approved ---")
		printNumberedLines(w, approvedText)

		fmt.Fprintln(w, "\n--- Received ---")
		printNumberedLines(w, receivedText)

		fmt.Fprintln(w, "\n--- Diff ---")
		dmp := diffmatchpatch.New()
		diffs := dmp.DiffMain(approvedText, receivedText, false)
		for _, diff := range diffs {
			switch diff.Type {
			case diffmatchpatch.DiffDelete:
				fmt.Fprintln(w, diffDeleteStyle.Render(fmt.Sprintf("- %q", diff.Text)))
			case diffmatchpatch.DiffInsert:
				fmt.Fprintln(w, diffInsertStyle.Render(fmt.Sprintf("+ %q", diff.Text)))
			case diffmatchpatch.DiffEqual:
				// Trim unchanged runs for brevity
				if len(diff.Text) > 50 {
					fmt.Fprintf(w, "  %q...\n", diff.Text[:47])
				} else {
					fmt.Fprintf(w, "  %q\n", diff.Text)
				}
			}
		}

		fmt.Fprintf(w, "\nTo approve:\n  mv %q %q\n", received, approved)
		return true
	})
}

func printNumberedLines(w io.Writer, content string) {
	for i, line := range strings.Split(content, "\n") {
		fmt.Fprintf(w, "%4d| %s\n", i+1, line)
	}
}

func readOrEmpty(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return string(data)
}
