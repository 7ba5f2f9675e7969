package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/tmuxpilot/tmuxpilot/internal/agent"
	"github.com/tmuxpilot/tmuxpilot/internal/pause"
	"github.com/tmuxpilot/tmuxpilot/internal/tmux"
)

// keyDelay spaces out pause/resume key sequences so agent TUIs see
// each keypress separately.
const keyDelay = 300 * time.Millisecond

var pauseCmd = &cobra.Command{
	Use:   "pause <target>",
	Short: "Pause the agent in a pane",
	Long: `Sends the agent's interrupt/quit key sequence and records a pause
marker. The pane stays alive and reports status "paused" in sweeps
until resumed.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		requireTmux()
		target := args[0]

		def, err := paneAgent(target)
		if err != nil {
			return err
		}
		if err := sendSequence(target, def.PauseKeys); err != nil {
			return err
		}
		if err := pause.NewStore().Mark(target, def.Name); err != nil {
			return fmt.Errorf("record pause: %w", err)
		}
		fmt.Printf("paused %s (%s)\n", target, def.Name)
		return nil
	},
}

var resumeCmd = &cobra.Command{
	Use:   "resume <target>",
	Short: "Resume a paused agent",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		requireTmux()
		target := args[0]

		def, err := paneAgent(target)
		if err != nil {
			return err
		}
		if err := sendSequence(target, def.ResumeKeys); err != nil {
			return err
		}
		if err := pause.NewStore().Clear(target); err != nil {
			return fmt.Errorf("clear pause marker: %w", err)
		}
		fmt.Printf("resumed %s (%s)\n", target, def.Name)
		return nil
	},
}

// paneAgent resolves the agent definition recorded on a pane.
func paneAgent(target string) (agent.Definition, error) {
	panes, err := tmux.ListAgentPanes()
	if err != nil {
		return agent.Definition{}, err
	}
	for _, p := range panes {
		if p.Target != target {
			continue
		}
		def, ok := agent.Lookup(p.Agent)
		if !ok {
			return agent.Definition{}, fmt.Errorf("pane %s runs unknown agent %q", target, p.Agent)
		}
		return def, nil
	}
	return agent.Definition{}, fmt.Errorf("no agent pane %s", target)
}

func sendSequence(target string, keys []string) error {
	for i, k := range keys {
		if i > 0 {
			time.Sleep(keyDelay)
		}
		if err := tmux.SendKeys(target, k); err != nil {
			return fmt.Errorf("send %q: %w", k, err)
		}
	}
	return nil
}

func init() {
	rootCmd.AddCommand(pauseCmd)
	rootCmd.AddCommand(resumeCmd)
}
