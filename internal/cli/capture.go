package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tmuxpilot/tmuxpilot/internal/tmux"
)

var captureLinesFlag int

var captureCmd = &cobra.Command{
	Use:   "capture <target>",
	Short: "Print the recent output of a pane",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		requireTmux()
		out, err := tmux.CapturePane(args[0], captureLinesFlag)
		if err != nil {
			return err
		}
		fmt.Print(out)
		return nil
	},
}

func init() {
	captureCmd.Flags().IntVar(&captureLinesFlag, "lines", 50, "scrollback lines to capture")
	rootCmd.AddCommand(captureCmd)
}
