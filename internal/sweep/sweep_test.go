package sweep

import (
	"errors"
	"strings"
	"testing"

	"github.com/tmuxpilot/tmuxpilot/internal/monitor"
	"github.com/tmuxpilot/tmuxpilot/internal/tmux"
)

// fakeTmux serves canned pane lists and capture text.
type fakeTmux struct {
	panes      []tmux.Pane
	listErr    error
	captures   map[string]string
	captureErr map[string]error
}

func (f *fakeTmux) ListAgentPanes() ([]tmux.Pane, error) {
	return f.panes, f.listErr
}

func (f *fakeTmux) CapturePane(target string, lines int) (string, error) {
	if err := f.captureErr[target]; err != nil {
		return "", err
	}
	return f.captures[target], nil
}

func (f *fakeTmux) SendKeys(target, keys string) error { return nil }
func (f *fakeTmux) SpawnSession(name, dir, agent, desc string, command []string) (string, error) {
	return "", nil
}
func (f *fakeTmux) KillSession(target string) error           { return nil }
func (f *fakeTmux) PaneWorkdir(target string) (string, error) { return "", nil }

var rules = monitor.MustCompile(monitor.DefaultPatterns)

func TestRunClassifiesEachPane(t *testing.T) {
	fake := &fakeTmux{
		panes: []tmux.Pane{
			{Target: "fix-auth:0.0", Agent: "claude"},
			{Target: "docs:0.0", Agent: "aider"},
			{Target: "done:0.0", Agent: "claude"},
		},
		captures: map[string]string{
			"fix-auth:0.0": "Allow Bash command?\n  $ git push origin main\n",
			"docs:0.0":     "Writing documentation...\n",
			"done:0.0":     "═══ Work Complete ═══\n",
		},
	}

	reports, err := New(fake, rules).Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(reports) != 3 {
		t.Fatalf("got %d reports, want 3", len(reports))
	}

	if reports[0].Status != monitor.StatusWaiting {
		t.Errorf("pane with prompt: status = %q, want waiting", reports[0].Status)
	}
	if len(reports[0].Prompts) != 1 || reports[0].Prompts[0].Risk != monitor.RiskHigh {
		t.Errorf("pane with prompt: prompts = %+v", reports[0].Prompts)
	}
	if reports[1].Status != monitor.StatusWorking {
		t.Errorf("quiet pane: status = %q, want working", reports[1].Status)
	}
	if reports[2].Status != monitor.StatusDone {
		t.Errorf("finished pane: status = %q, want done", reports[2].Status)
	}
}

func TestRunSkipsFailedCaptures(t *testing.T) {
	fake := &fakeTmux{
		panes: []tmux.Pane{
			{Target: "alive:0.0", Agent: "claude"},
			{Target: "gone:0.0", Agent: "claude"},
		},
		captures:   map[string]string{"alive:0.0": "working...\n"},
		captureErr: map[string]error{"gone:0.0": errors.New("pane not found")},
	}

	reports, err := New(fake, rules).Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(reports) != 1 || reports[0].Target != "alive:0.0" {
		t.Errorf("reports = %+v, want only the live pane", reports)
	}
}

func TestRunListFailure(t *testing.T) {
	fake := &fakeTmux{listErr: errors.New("no tmux server")}
	if _, err := New(fake, rules).Run(); err == nil {
		t.Error("Run should fail when pane enumeration fails")
	}
}

func TestRunPausedOverride(t *testing.T) {
	fake := &fakeTmux{
		panes: []tmux.Pane{
			{Target: "paused:0.0", Agent: "claude"},
			{Target: "asking:0.0", Agent: "claude"},
		},
		captures: map[string]string{
			"paused:0.0": "idle output\n",
			"asking:0.0": "Allow Edit to main.go?\n",
		},
	}
	pausedTargets := map[string]bool{"paused:0.0": true, "asking:0.0": true}

	reports, err := New(fake, rules, WithPausedCheck(func(target string) bool {
		return pausedTargets[target]
	})).Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if reports[0].Status != monitor.StatusPaused {
		t.Errorf("idle paused pane: status = %q, want paused", reports[0].Status)
	}
	// A visible prompt still dominates the pause marker.
	if reports[1].Status != monitor.StatusWaiting {
		t.Errorf("prompting paused pane: status = %q, want waiting", reports[1].Status)
	}
}

func TestRunEmptyPaneList(t *testing.T) {
	reports, err := New(&fakeTmux{}, rules).Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(reports) != 0 {
		t.Errorf("got %d reports, want 0", len(reports))
	}
	if got := monitor.FormatReport(reports); !strings.Contains(got, "No agent panes found") {
		t.Errorf("FormatReport on empty sweep = %q", got)
	}
}
