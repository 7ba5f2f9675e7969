package cli

import (
	"github.com/spf13/cobra"

	"github.com/tmuxpilot/tmuxpilot/internal/pause"
	"github.com/tmuxpilot/tmuxpilot/internal/sweep"
	"github.com/tmuxpilot/tmuxpilot/internal/tmux"
	"github.com/tmuxpilot/tmuxpilot/internal/ui"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Live dashboard over all agent panes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		requireTmux()
		store := pause.NewStore()
		sw := sweep.New(tmux.Real{}, rules,
			sweep.WithCaptureLines(captureLines()),
			sweep.WithPausedCheck(store.IsPaused))
		return ui.RunWatch(sw, ui.NewStyles(cfg.Colors), cfg.PollInterval(), store.Dir())
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
