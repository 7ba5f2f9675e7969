package ui

import (
	"fmt"
	"strings"

	"github.com/muesli/reflow/wordwrap"

	"github.com/tmuxpilot/tmuxpilot/internal/monitor"
)

// RenderReport is the styled counterpart of monitor.FormatReport for
// TTY output. Shapes match the plain formatter so scripts that parse
// either see the same structure.
func RenderReport(reports []monitor.PaneReport, st Styles, width int) string {
	if width < 20 {
		width = 80
	}

	if len(reports) == 0 {
		return st.Dim.Render("No agent panes found.")
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
			case monitor.StatusWorking:
				working++
			case monitor.StatusDone:
				done++
			}
		}
		var parts []string
		if working > 0 {
			parts = append(parts, st.Working.Render(fmt.Sprintf("%d working", working)))
		}
		if done > 0 {
			parts = append(parts, st.Done.Render(fmt.Sprintf("%d done", done)))
		}
		if len(parts) == 0 {
			parts = []string{st.Dim.Render("all idle")}
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
		b.WriteString(st.Header.Render(fmt.Sprintf("=== %s (%s) ===", r.Target, agent)))
		b.WriteString("\n")
		fmt.Fprintf(&b, "status: %s\n", st.Status(r.Status).Render(string(r.Status)))

		for _, ev := range r.Events {
			fmt.Fprintf(&b, "event: %s — %s\n", st.Waiting.Render(string(ev.Kind)), ev.Detail)
		}

		for _, p := range r.Prompts {
			b.WriteString("prompt:\n")
			// Raw prompt text can span many columns; wrap it under the
			// label instead of letting the terminal break mid-word.
			raw := wordwrap.String(p.Raw, width-7)
			b.WriteString("  raw: " + strings.ReplaceAll(raw, "\n", "\n       ") + "\n")
			fmt.Fprintf(&b, "  tool: %s\n", p.Tool)
			fmt.Fprintf(&b, "  action: %s\n", p.Action)
			fmt.Fprintf(&b, "  risk: %s\n", st.Risk(p.Risk).Render(string(p.Risk)))
			fmt.Fprintf(&b, "  suggestion: %s\n", p.Suggestion)
		}

		b.WriteString("\n")
	}

	if quiet := len(reports) - actionable; quiet > 0 {
		b.WriteString(st.Dim.Render(fmt.Sprintf("(%d other agent(s) working quietly)", quiet)))
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}
