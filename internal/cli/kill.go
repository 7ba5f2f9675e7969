package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tmuxpilot/tmuxpilot/internal/pause"
	"github.com/tmuxpilot/tmuxpilot/internal/tmux"
)

var killCmd = &cobra.Command{
	Use:   "kill <target>",
	Short: "Kill an agent pane's session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		requireTmux()
		target := args[0]
		if err := tmux.KillSession(target); err != nil {
			return err
		}
		// A dead pane no longer counts as paused.
		if err := pause.NewStore().Clear(target); err != nil {
			return err
		}
		fmt.Printf("killed %s\n", target)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(killCmd)
}
