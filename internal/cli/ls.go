package cli

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/tmuxpilot/tmuxpilot/internal/pause"
	"github.com/tmuxpilot/tmuxpilot/internal/proc"
	"github.com/tmuxpilot/tmuxpilot/internal/tmux"
)

// paneInfo is the ls row, also the JSON shape.
type paneInfo struct {
	Target string  `json:"target"`
	Agent  string  `json:"agent"`
	Desc   string  `json:"desc,omitempty"`
	Dir    string  `json:"dir"`
	Age    string  `json:"age"`
	Paused bool    `json:"paused"`
	CPU    float64 `json:"cpu_percent"`
	MemKB  int     `json:"mem_kb"`
}

var lsCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List running agent panes with resource usage",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		requireTmux()

		panes, err := tmux.ListAgentPanes()
		if err != nil {
			return err
		}

		// One ps snapshot covers every pane's process tree.
		table, err := proc.Snapshot()
		if err != nil {
			slog.Warn("process stats unavailable", "error", err)
			table = proc.Table{}
		}
		store := pause.NewStore()

		infos := make([]paneInfo, 0, len(panes))
		for _, p := range panes {
			rss, cpu := table.TreeStats(p.PID)
			infos = append(infos, paneInfo{
				Target: p.Target,
				Agent:  p.Agent,
				Desc:   p.Desc,
				Dir:    p.Dir(),
				Age:    proc.FormatAge(time.Since(p.Activity)),
				Paused: store.IsPaused(p.Target),
				CPU:    cpu,
				MemKB:  rss,
			})
		}

		if jsonOutput {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(infos)
		}

		if len(infos) == 0 {
			fmt.Println("No agent panes found.")
			return nil
		}
		w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
		fmt.Fprintln(w, "TARGET\tAGENT\tAGE\tCPU\tMEM\tDIR\tTASK")
		for _, info := range infos {
			agent := info.Agent
			if info.Paused {
				agent += " (paused)"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%.1f%%\t%s\t%s\t%s\n",
				info.Target, agent, info.Age, info.CPU,
				proc.FormatMem(info.MemKB), info.Dir, info.Desc)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(lsCmd)
}
