package tmux

import "testing"

func TestParseVersion(t *testing.T) {
	tests := []struct {
		banner    string
		wantMajor int
		wantMinor int
		wantOK    bool
	}{
		{"tmux 3.4", 3, 4, true},
		{"tmux 3.3a", 3, 3, true},
		{"tmux 3.10", 3, 10, true},
		{"tmux 2.9a", 2, 9, true},
		{"tmux 3", 3, 0, true},
		{"tmux next-3.4", 0, 0, false},
		{"tmux", 0, 0, false},
		{"", 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.banner, func(t *testing.T) {
			major, minor, ok := parseVersion(tt.banner)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if major != tt.wantMajor || minor != tt.wantMinor {
				t.Errorf("version = %d.%d, want %d.%d", major, minor, tt.wantMajor, tt.wantMinor)
			}
		})
	}
}

// Double-digit minors must not order below single-digit ones.
func TestVersionOrdering(t *testing.T) {
	major, minor, ok := parseVersion("tmux 3.10")
	if !ok {
		t.Fatal("parseVersion failed")
	}
	if major < minMajor || (major == minMajor && minor < minMinor) {
		t.Errorf("3.10 flagged below minimum %d.%d", minMajor, minMinor)
	}
}
