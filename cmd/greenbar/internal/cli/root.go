// Package cli provides command-line interface setup for the greenbar review
// tool.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"greenbar/internal/logger"
)

// Config holds the global CLI settings shared by all subcommands.
type Config struct {
	Dir     string
	Verbose bool
	NoColor bool
	Yes     bool
}

// App represents the greenbar CLI application
type App struct {
	Config *Config
	In     io.Reader
	Out    io.Writer
}

// NewApp creates a new greenbar CLI application
func NewApp() *App {
	return &App{
		Config: &Config{Dir: "."},
		In:     os.Stdin,
		Out:    os.Stdout,
	}
}

// CreateRootCommand creates and configures the root command
func (app *App) CreateRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "greenbar",
		Short: "Review and approve pending test outputs",
		Long: `greenbar reviews the received files that approval tests leave behind on
mismatch. It can list pending outputs, show diffs against the approved
baselines, and approve or reject them.`,
	}

	rootCmd.PersistentFlags().StringVar(&app.Config.Dir, "dir", ".", "Root directory to scan for artifacts")
	rootCmd.PersistentFlags().BoolVarP(&app.Config.Verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().BoolVar(&app.Config.NoColor, "no-color", false, "Disable colored output")

	for _, flag := range []string{"dir", "verbose", "no-color"} {
		if err := viper.BindPFlag(flag, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
			fmt.Fprintf(os.Stderr, "Error binding %s flag: %v\n", flag, err)
			os.Exit(1)
		}
	}
	viper.SetEnvPrefix("GREENBAR")
	viper.AutomaticEnv()

	app.addReviewCommands(rootCmd)
	app.addVersionCommand(rootCmd)

	cobra.OnInitialize(app.initConfig)
	return rootCmd
}

func (app *App) initConfig() {
	if app.Config.Verbose {
		logger.SetLevel("debug")
	}
	if app.Config.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}
