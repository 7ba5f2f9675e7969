package monitor

import (
	"fmt"
	"strings"
)

// PaneReport is the monitoring result for a single pane within one
// sweep. It owns its prompts and events and is not retained across
// sweeps.
type PaneReport struct {
	Target  string   `json:"target"`
	Agent   string   `json:"agent"`
	Status  Status   `json:"status"`
	Prompts []Prompt `json:"prompts"`
	Events  []Event  `json:"events"`
}

// Actionable reports whether the pane needs attention: it detected at
// least one prompt or event.
func (r PaneReport) Actionable() bool {
	return len(r.Prompts) > 0 || len(r.Events) > 0
}

// FormatReport renders pane reports into a human-readable string: a
// compact one-line summary when nothing is actionable, or a block per
// pane otherwise.
func FormatReport(reports []PaneReport) string {
	if len(reports) == 0 {
		return "No agent panes found."
	}

	actionable := 0
	for _, r := range reports {
		if r.Actionable() {
			actionable++
		}
	}

	if actionable == 0 {
		working := 0
		done := 0
		for _, r := range reports {
			switch r.Status {
			case StatusWorking:
				working++
			case StatusDone:
				done++
			}
		}
		var parts []string
		if working > 0 {
			parts = append(parts, fmt.Sprintf("%d working", working))
		}
		if done > 0 {
			parts = append(parts, fmt.Sprintf("%d done", done))
		}
		if len(parts) == 0 {
			parts = []string{"all idle"}
		}
		return fmt.Sprintf("%d agent(s): %s. 0 prompts, 0 events.",
			len(reports), strings.Join(parts, ", "))
	}

	var b strings.Builder
	for _, r := range reports {
		agent := r.Agent
		if agent == "" {
			agent = "?"
		}
		fmt.Fprintf(&b, "=== %s (%s) ===\n", r.Target, agent)
		fmt.Fprintf(&b, "status: %s\n", r.Status)

		for _, ev := range r.Events {
			fmt.Fprintf(&b, "event: %s — %s\n", ev.Kind, ev.Detail)
		}

		for _, p := range r.Prompts {
			b.WriteString("prompt:\n")
			fmt.Fprintf(&b, "  raw: %q\n", p.Raw)
			fmt.Fprintf(&b, "  tool: %s\n", p.Tool)
			fmt.Fprintf(&b, "  action: %s\n", p.Action)
			fmt.Fprintf(&b, "  risk: %s\n", p.Risk)
			fmt.Fprintf(&b, "  suggestion: %s\n", p.Suggestion)
		}

		b.WriteString("\n")
	}

	if quiet := len(reports) - actionable; quiet > 0 {
		fmt.Fprintf(&b, "(%d other agent(s) working quietly)\n", quiet)
	}

	return strings.TrimRight(b.String(), "\n")
}
