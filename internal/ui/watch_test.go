package ui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tmuxpilot/tmuxpilot/internal/monitor"
	"github.com/tmuxpilot/tmuxpilot/internal/sweep"
	"github.com/tmuxpilot/tmuxpilot/internal/tmux"
)

type stubTmux struct {
	panes   []tmux.Pane
	capture string
}

func (s stubTmux) ListAgentPanes() ([]tmux.Pane, error)    { return s.panes, nil }
func (s stubTmux) CapturePane(string, int) (string, error) { return s.capture, nil }
func (s stubTmux) SendKeys(string, string) error           { return nil }
func (s stubTmux) KillSession(string) error                { return nil }
func (s stubTmux) PaneWorkdir(string) (string, error)      { return "", nil }
func (s stubTmux) SpawnSession(string, string, string, string, []string) (string, error) {
	return "", nil
}

func newTestWatch(t *testing.T) WatchModel {
	t.Helper()
	sw := sweep.New(stubTmux{}, monitor.MustCompile(monitor.DefaultPatterns))
	return NewWatch(sw, testStyles(), time.Second, t.TempDir())
}

func TestWatchQuitKey(t *testing.T) {
	m := newTestWatch(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if msg := cmd(); msg != tea.Quit() {
		t.Errorf("q produced %v, want tea.QuitMsg", msg)
	}
}

func TestWatchSweepResultRendered(t *testing.T) {
	m := newTestWatch(t)
	updated, _ := m.Update(sweepMsg{reports: []monitor.PaneReport{
		{Target: "fix:0.0", Agent: "claude", Status: monitor.StatusWorking},
		{
			Target: "auth:0.0",
			Agent:  "aider",
			Status: monitor.StatusWaiting,
			Prompts: []monitor.Prompt{{
				Raw: "git push", Tool: monitor.ToolBash, Action: "git push",
				Risk: monitor.RiskLow, Suggestion: monitor.Review,
			}},
		},
	}})
	view := updated.(WatchModel).View()

	for _, want := range []string{"fix:0.0", "auth:0.0", "1 prompt(s) pending", "=== auth:0.0 (aider) ==="} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestWatchSweepErrorShown(t *testing.T) {
	m := newTestWatch(t)
	updated, _ := m.Update(sweepMsg{err: errFake})
	view := updated.(WatchModel).View()
	if !strings.Contains(view, "sweep failed") {
		t.Errorf("view missing sweep error:\n%s", view)
	}
}

func TestWatchRowTruncated(t *testing.T) {
	m := newTestWatch(t)
	m.width = 30
	row := m.row(monitor.PaneReport{
		Target: "a-very-long-session-name-here:0.0",
		Agent:  "interpreter",
		Status: monitor.StatusWorking,
	})
	for _, line := range strings.Split(row, "\n") {
		if len([]rune(stripANSI(line))) > 30 {
			t.Errorf("row wider than terminal: %q", line)
		}
	}
}

var errFake = fakeErr{}

type fakeErr struct{}

func (fakeErr) Error() string { return "tmux gone" }

// stripANSI removes escape sequences so width assertions see only
// printable cells.
func stripANSI(s string) string {
	var b strings.Builder
	inEsc := false
	for _, r := range s {
		switch {
		case inEsc:
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
				inEsc = false
			}
		case r == '\x1b':
			inEsc = true
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
