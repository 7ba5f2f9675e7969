package tmux

import (
	"strings"
	"testing"
)

func TestValidateTarget(t *testing.T) {
	tests := []struct {
		target  string
		wantErr bool
	}{
		{"fix-auth:0.0", false},
		{"session", false},
		{"my_session:1.2", false},
		{"a.b-c:0", false},
		{"", true},
		{"bad target", true},
		{"inject; rm -rf /", true},
		{"$(whoami)", true},
	}

	for _, tt := range tests {
		err := ValidateTarget(tt.target)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateTarget(%q) error = %v, wantErr %v", tt.target, err, tt.wantErr)
		}
	}
}

func TestParsePaneList(t *testing.T) {
	sep := unitSep
	out := strings.Join([]string{
		"fix-auth:0.0" + sep + "claude" + sep + "fix login bug" + sep + "/work/app" + sep + "/work/app" + sep + "1700000000" + sep + "4242" + sep + sep,
		"plain:0.0" + sep + sep + sep + sep + "/home/dev" + sep + "1700000100" + sep + "4243" + sep + sep,
	}, "\n")

	panes := parsePaneList(out)
	if len(panes) != 2 {
		t.Fatalf("got %d panes, want 2", len(panes))
	}

	p := panes[0]
	if p.Target != "fix-auth:0.0" || p.Agent != "claude" || p.Desc != "fix login bug" {
		t.Errorf("unexpected first pane: %+v", p)
	}
	if p.PID != 4242 {
		t.Errorf("PID = %d, want 4242", p.PID)
	}
	if p.Dir() != "/work/app" {
		t.Errorf("Dir() = %q, want /work/app", p.Dir())
	}

	if panes[1].Agent != "" {
		t.Errorf("plain pane should have empty agent, got %q", panes[1].Agent)
	}
	if panes[1].Dir() != "/home/dev" {
		t.Errorf("Dir() should fall back to pane path, got %q", panes[1].Dir())
	}
}

// tmux before 3.5 escapes the 0x1f separator to a literal \037.
func TestParsePaneListEscapedSeparator(t *testing.T) {
	out := `wt:0.0\037claude\037desc\037/w\037/w\0371700000000\0371\037\037`
	panes := parsePaneList(out)
	if len(panes) != 1 {
		t.Fatalf("got %d panes, want 1", len(panes))
	}
	if panes[0].Agent != "claude" {
		t.Errorf("Agent = %q, want claude", panes[0].Agent)
	}
}

func TestParsePaneListSkipsMalformedLines(t *testing.T) {
	out := "too" + unitSep + "few" + unitSep + "fields\n"
	if panes := parsePaneList(out); len(panes) != 0 {
		t.Errorf("got %d panes from malformed input, want 0", len(panes))
	}
	if panes := parsePaneList(""); len(panes) != 0 {
		t.Errorf("got %d panes from empty input, want 0", len(panes))
	}
}

func TestIsSpecialKey(t *testing.T) {
	special := []string{"Enter", "Escape", "BTab", "C-c", "M-x", "S-Left", "F1", "F12", "Up", "DC"}
	for _, k := range special {
		if !IsSpecialKey(k) {
			t.Errorf("IsSpecialKey(%q) = false, want true", k)
		}
	}

	text := []string{"hello", "git status", "enter", "F123", "continue with the plan", ""}
	for _, k := range text {
		if IsSpecialKey(k) {
			t.Errorf("IsSpecialKey(%q) = true, want false", k)
		}
	}
}
