package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/tmuxpilot/tmuxpilot/internal/runner"
	"github.com/tmuxpilot/tmuxpilot/internal/tmux"
)

var (
	runDir     string
	runTarget  string
	runTimeout time.Duration
)

var runCmd = &cobra.Command{
	Use:   "run <command>",
	Short: "Run a shell command silently, logging output to a file",
	Long: `Runs the command through sh -c with stdout and stderr redirected to a
log file under the system temp directory. Prints the exit code and log
path; on failure the tail of the log is included.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := runDir
		if runTarget != "" {
			var err error
			dir, err = tmux.PaneWorkdir(runTarget)
			if err != nil {
				return fmt.Errorf("resolve workdir of %s: %w", runTarget, err)
			}
		}
		res, err := runner.Run(cmd.Context(), args[0], dir, runTimeout)
		if err != nil {
			return err
		}

		switch {
		case res.ExitCode > 0:
			exitCode = res.ExitCode
		case res.ExitCode < 0:
			exitCode = 1
		}

		if jsonOutput {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(res)
		}

		fmt.Printf("exit %d, log %s\n", res.ExitCode, res.LogFile)
		if res.Tail != "" {
			fmt.Println(res.Tail)
		}
		return nil
	},
}

func init() {
	runCmd.Flags().StringVar(&runDir, "dir", "", "working directory (default: current directory)")
	runCmd.Flags().StringVar(&runTarget, "target", "", "run in an agent pane's working directory instead of --dir")
	runCmd.Flags().DurationVar(&runTimeout, "timeout", runner.DefaultTimeout, "kill the command after this long")
	rootCmd.AddCommand(runCmd)
}
