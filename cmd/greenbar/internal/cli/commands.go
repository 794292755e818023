package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"greenbar/cmd/greenbar/internal/pending"
)

var (
	firstRunStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214")) // Orange
	pendingStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")) // Red
)

// addReviewCommands adds the artifact review commands
func (app *App) addReviewCommands(rootCmd *cobra.Command) {
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List pending received artifacts",
		Long: `Walk the artifact directory for received files waiting for review and
print each one alongside its approved counterpart.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return app.runList()
		},
	}

	diffCmd := &cobra.Command{
		Use:   "diff <received>",
		Short: "Show differences against the approved baseline",
		Long: `Show a detailed diff between a received artifact and the approved file
it was compared against.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			p, err := pending.Find(args[0])
			if err != nil {
				return err
			}
			pending.RenderDiff(app.Out, p)
			return nil
		},
	}

	approveCmd := &cobra.Command{
		Use:   "approve [<received>...]",
		Short: "Accept received output as the new baseline",
		Long: `Move received artifacts over their approved counterparts. Use this after
verifying that the new output is correct. With --all, every pending
artifact under the directory is approved.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			all, _ := cmd.Flags().GetBool("all")
			return app.runResolve(args, all, "approve", pending.Approve)
		},
	}
	approveCmd.Flags().Bool("all", false, "Approve every pending artifact")
	approveCmd.Flags().BoolVarP(&app.Config.Yes, "yes", "y", false, "Skip confirmation prompts")

	rejectCmd := &cobra.Command{
		Use:   "reject [<received>...]",
		Short: "Discard received output",
		Long: `Delete received artifacts, keeping the current approved baselines.
With --all, every pending artifact under the directory is rejected.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			all, _ := cmd.Flags().GetBool("all")
			return app.runResolve(args, all, "reject", pending.Reject)
		},
	}
	rejectCmd.Flags().Bool("all", false, "Reject every pending artifact")
	rejectCmd.Flags().BoolVarP(&app.Config.Yes, "yes", "y", false, "Skip confirmation prompts")

	reviewCmd := &cobra.Command{
		Use:   "review",
		Short: "Interactively review pending artifacts",
		Long: `Walk every pending artifact, show its diff and prompt to approve, reject,
skip or quit.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return app.runReview()
		},
	}

	rootCmd.AddCommand(listCmd, diffCmd, approveCmd, rejectCmd, reviewCmd)
}

func (app *App) runList() error {
	pairs, err := pending.Scan(app.Config.Dir)
	if err != nil {
		return err
	}
	if len(pairs) == 0 {
		fmt.Fprintln(app.Out, "No pending artifacts.")
		return nil
	}
	for _, p := range pairs {
		marker := pendingStyle.Render("pending")
		if p.FirstRun {
			marker = firstRunStyle.Render("new")
		}
		fmt.Fprintf(app.Out, "%s  %s\n", marker, p.Received)
	}
	fmt.Fprintf(app.Out, "\n%d pending artifact(s)\n", len(pairs))
	return nil
}

// runResolve approves or rejects the named artifacts, or all pending ones.
func (app *App) runResolve(args []string, all bool, verb string, resolve func(pending.Pair) error) error {
	var pairs []pending.Pair
	switch {
	case all:
		scanned, err := pending.Scan(app.Config.Dir)
		if err != nil {
			return err
		}
		pairs = scanned
	case len(args) > 0:
		for _, arg := range args {
			p, err := pending.Find(arg)
			if err != nil {
				return err
			}
			pairs = append(pairs, p)
		}
	default:
		return fmt.Errorf("nothing to %s: pass received files or --all", verb)
	}

	for _, p := range pairs {
		if !app.Config.Yes && !app.confirm(fmt.Sprintf("%s %s?", verb, p.Received)) {
			fmt.Fprintf(app.Out, "skipped %s\n", p.Received)
			continue
		}
		if err := resolve(p); err != nil {
			return err
		}
		fmt.Fprintf(app.Out, "%s %s\n", pastTense(verb), p.Received)
	}
	return nil
}

func pastTense(verb string) string {
	if strings.HasSuffix(verb, "e") {
		return verb + "d"
	}
	return verb + "ed"
}

func (app *App) runReview() error {
	pairs, err := pending.Scan(app.Config.Dir)
	if err != nil {
		return err
	}
	if len(pairs) == 0 {
		fmt.Fprintln(app.Out, "No pending artifacts.")
		return nil
	}

	reader := bufio.NewReader(app.In)
	for i, p := range pairs {
		fmt.Fprintf(app.Out, "\n[%d/%d] %s\n", i+1, len(pairs), p.Name())
		pending.RenderDiff(app.Out, p)

		fmt.Fprint(app.Out, "\n[a]pprove / [r]eject / [s]kip / [q]uit: ")
		line, readErr := reader.ReadString('\n')
		if readErr != nil {
			return nil
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "a", "approve":
			if err := pending.Approve(p); err != nil {
				return err
			}
			fmt.Fprintln(app.Out, "approved")
		case "r", "reject":
			if err := pending.Reject(p); err != nil {
				return err
			}
			fmt.Fprintln(app.Out, "rejected")
		case "q", "quit":
			return nil
		default:
			fmt.Fprintln(app.Out, "skipped")
		}
	}
	return nil
}

// confirm asks a y/n question on the app's input stream.
func (app *App) confirm(prompt string) bool {
	fmt.Fprintf(app.Out, "%s [y/N]: ", prompt)
	reader := bufio.NewReader(app.In)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
