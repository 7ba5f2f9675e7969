package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tmuxpilot/tmuxpilot/internal/tmux"
)

var sendCmd = &cobra.Command{
	Use:   "send <target> <keys>...",
	Short: "Send keys or text to a pane",
	Long: `Delivers each argument to the pane in order. tmux key names (Enter,
Escape, C-c, BTab, F1...) go through send-keys; anything else is pasted
as literal text, which survives agent TUI key interception.

  tmuxpilot send claude-fix-tests:0.0 "looks good, continue" Enter
  tmuxpilot send claude-fix-tests:0.0 C-c`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		requireTmux()
		target := args[0]
		if !tmux.PaneExists(target) {
			return fmt.Errorf("no pane %s", target)
		}
		for _, keys := range args[1:] {
			if err := tmux.SendKeys(target, keys); err != nil {
				return fmt.Errorf("send %q: %w", keys, err)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sendCmd)
}
