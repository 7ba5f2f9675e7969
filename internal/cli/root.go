// Package cli defines the tmuxpilot command tree.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/tmuxpilot/tmuxpilot/internal/config"
	"github.com/tmuxpilot/tmuxpilot/internal/monitor"
	"github.com/tmuxpilot/tmuxpilot/internal/sweep"
	"github.com/tmuxpilot/tmuxpilot/internal/tmux"
)

var (
	cfgPath    string
	cfg        config.Config
	rules      *monitor.Ruleset
	jsonOutput bool
	noColor    bool
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "tmuxpilot",
	Short: "Supervise coding agents running in tmux panes",
	Long: `tmuxpilot spawns coding agents (claude, gemini, aider, codex, goose,
interpreter) in detached tmux sessions and monitors their panes for
permission prompts and lifecycle events.

Quick start:
  tmuxpilot spawn claude "fix the failing tests" --dir ~/src/app
  tmuxpilot monitor          # one sweep, human-readable report
  tmuxpilot watch            # live dashboard`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		})))

		if cfgPath == "" {
			cfgPath = config.Path()
		}
		var err error
		cfg, err = config.Load(cfgPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		rules, err = cfg.Ruleset()
		if err != nil {
			return fmt.Errorf("config: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "config file (default "+config.Path()+")")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "machine-readable JSON output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable styled output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
}

// exitCode is set by commands that mirror a child process exit status
// (run). Execute is the single place the process exits from.
var exitCode int

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if exitCode != 0 {
		os.Exit(exitCode)
	}
}

// requireTmux warns once when the installed tmux is missing or too old.
// Commands still run: the tmux call itself surfaces the real error.
func requireTmux() {
	if ver, err := tmux.CheckVersion(); err != nil {
		slog.Warn("tmux version check failed", "version", ver, "error", err)
	}
}

// styled reports whether stdout should get lipgloss-styled output.
func styled() bool {
	if noColor || jsonOutput {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// termWidth returns the stdout terminal width, or 80 when stdout is
// not a terminal.
func termWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return 80
	}
	return w
}

func captureLines() int {
	if cfg.Monitor.CaptureLines > 0 {
		return cfg.Monitor.CaptureLines
	}
	return sweep.DefaultCaptureLines
}
