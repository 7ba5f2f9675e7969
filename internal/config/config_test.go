package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tmuxpilot/tmuxpilot/internal/monitor"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.conf"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := Default()
	if cfg.Monitor.CaptureLines != want.Monitor.CaptureLines {
		t.Errorf("CaptureLines = %d, want %d", cfg.Monitor.CaptureLines, want.Monitor.CaptureLines)
	}
	if cfg.Colors.High != want.Colors.High {
		t.Errorf("Colors.High = %q, want %q", cfg.Colors.High, want.Colors.High)
	}
}

func TestLoadPartialFileOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tmuxpilot.conf")
	content := `
[monitor]
capture_lines = 120
extra_high_shell = ["^terraform\\s+apply\\b"]

[colors]
high = "#ff0000"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Monitor.CaptureLines != 120 {
		t.Errorf("CaptureLines = %d, want 120", cfg.Monitor.CaptureLines)
	}
	if cfg.Monitor.PollIntervalMS != Default().Monitor.PollIntervalMS {
		t.Errorf("PollIntervalMS = %d, want default %d", cfg.Monitor.PollIntervalMS, Default().Monitor.PollIntervalMS)
	}
	if cfg.Colors.High != "#ff0000" {
		t.Errorf("Colors.High = %q, want #ff0000", cfg.Colors.High)
	}
	if cfg.Colors.Working != Default().Colors.Working {
		t.Errorf("Colors.Working = %q, want default", cfg.Colors.Working)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.conf")
	if err := os.WriteFile(path, []byte("[monitor\ncapture_lines = x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error for malformed file")
	}
}

func TestRulesetAppliesExtras(t *testing.T) {
	cfg := Default()
	cfg.Monitor.ExtraHighShell = []string{`^terraform\s+apply\b`}
	cfg.Monitor.ExtraSafeShell = []string{`^kubectl\s+get\b`}

	rs, err := cfg.Ruleset()
	if err != nil {
		t.Fatalf("Ruleset: %v", err)
	}

	cases := []struct {
		cmd  string
		want monitor.Risk
	}{
		{"terraform apply -auto-approve", monitor.RiskHigh},
		{"kubectl get pods", monitor.RiskSafe},
		{"git status", monitor.RiskSafe},
		{"rm -rf build", monitor.RiskHigh},
		// Extra-safe never downgrades a chained command.
		{"kubectl get pods && rm -rf /", monitor.RiskHigh},
	}
	for _, tc := range cases {
		risk, _ := rs.Classify(monitor.ToolBash, tc.cmd)
		if risk != tc.want {
			t.Errorf("Classify(%q) = %s, want %s", tc.cmd, risk, tc.want)
		}
	}
}

func TestRulesetBadExtraPattern(t *testing.T) {
	cfg := Default()
	cfg.Monitor.ExtraLowShell = []string{"("}
	if _, err := cfg.Ruleset(); err == nil {
		t.Error("expected error for invalid extra pattern")
	}
}

func TestWriteDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "tmuxpilot.conf")
	if err := WriteDefault(path); err != nil {
		t.Fatalf("WriteDefault: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "[monitor]") {
		t.Error("default file missing [monitor] section")
	}

	// Existing file is left untouched.
	if err := os.WriteFile(path, []byte("custom"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := WriteDefault(path); err != nil {
		t.Fatalf("WriteDefault second call: %v", err)
	}
	data, _ = os.ReadFile(path)
	if string(data) != "custom" {
		t.Error("WriteDefault overwrote existing file")
	}
}
