package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/tmuxpilot/tmuxpilot/internal/agent"
	"github.com/tmuxpilot/tmuxpilot/internal/tmux"
)

var (
	spawnDir         string
	spawnName        string
	spawnNoSend      bool
	spawnStartupWait time.Duration
)

var spawnCmd = &cobra.Command{
	Use:   "spawn <agent> <task...>",
	Short: "Start an agent in a new detached tmux session",
	Long: fmt.Sprintf(`Creates a detached tmux session running the given agent, tags the pane
so later sweeps recognize it, and delivers the task description as the
agent's first prompt.

Known agents: %s`, strings.Join(agent.Names(), ", ")),
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		requireTmux()

		def, ok := agent.Lookup(args[0])
		if !ok {
			return fmt.Errorf("unknown agent %q (known: %s)", args[0], strings.Join(agent.Names(), ", "))
		}
		task := strings.Join(args[1:], " ")

		dir := spawnDir
		if dir == "" {
			var err error
			dir, err = os.Getwd()
			if err != nil {
				return err
			}
		}

		name := spawnName
		if name == "" {
			name = agent.SessionName(def.Name, task)
		}
		if tmux.SessionExists(name) {
			return fmt.Errorf("session %q already exists", name)
		}

		target, err := tmux.SpawnSession(name, dir, def.Name, task, def.Command)
		if err != nil {
			return fmt.Errorf("spawn %s: %w", def.Name, err)
		}

		if !spawnNoSend {
			// Give the agent TUI time to come up before the prompt lands.
			time.Sleep(spawnStartupWait)
			if err := tmux.SendKeys(target, task); err != nil {
				return fmt.Errorf("send task to %s: %w", target, err)
			}
			if err := tmux.SendKeys(target, "Enter"); err != nil {
				return fmt.Errorf("submit task to %s: %w", target, err)
			}
		}

		fmt.Printf("spawned %s in %s (%s)\n", def.Name, target, dir)
		return nil
	},
}

func init() {
	spawnCmd.Flags().StringVar(&spawnDir, "dir", "", "working directory (default: current directory)")
	spawnCmd.Flags().StringVar(&spawnName, "name", "", "session name (default: derived from the task)")
	spawnCmd.Flags().BoolVar(&spawnNoSend, "no-send", false, "spawn only, do not deliver the task prompt")
	spawnCmd.Flags().DurationVar(&spawnStartupWait, "startup-wait", 3*time.Second, "delay before the task prompt is sent")
	rootCmd.AddCommand(spawnCmd)
}
