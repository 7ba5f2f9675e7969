package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tmuxpilot/tmuxpilot/internal/monitor"
	"github.com/tmuxpilot/tmuxpilot/internal/pause"
	"github.com/tmuxpilot/tmuxpilot/internal/sweep"
	"github.com/tmuxpilot/tmuxpilot/internal/tmux"
	"github.com/tmuxpilot/tmuxpilot/internal/ui"
)

var monitorLines int

var monitorCmd = &cobra.Command{
	Use:   "monitor",
	Short: "Run one monitoring sweep over all agent panes",
	Long: `Captures recent output from every agent pane and reports detected
permission prompts, lifecycle events, and inferred status. Quiet panes
collapse into a one-line summary.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		requireTmux()
		reports, err := runSweep()
		if err != nil {
			return err
		}

		if jsonOutput {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(reports)
		}
		if styled() {
			fmt.Println(ui.RenderReport(reports, ui.NewStyles(cfg.Colors), termWidth()))
			return nil
		}
		fmt.Println(monitor.FormatReport(reports))
		return nil
	},
}

func runSweep() ([]monitor.PaneReport, error) {
	lines := captureLines()
	if monitorLines > 0 {
		lines = monitorLines
	}
	store := pause.NewStore()
	sw := sweep.New(tmux.Real{}, rules,
		sweep.WithCaptureLines(lines),
		sweep.WithPausedCheck(store.IsPaused))
	return sw.Run()
}

func init() {
	monitorCmd.Flags().IntVar(&monitorLines, "lines", 0, "scrollback lines to examine per pane")
	rootCmd.AddCommand(monitorCmd)
}
