// Package config loads the pilot configuration file. Omitted fields
// keep their defaults, so an empty or missing file is always valid.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/tmuxpilot/tmuxpilot/internal/monitor"
)

// Monitor holds detection and sweep settings.
type Monitor struct {
	// CaptureLines is how much pane scrollback each sweep examines.
	CaptureLines int `toml:"capture_lines"`

	// PollIntervalMS is the watch-dashboard refresh interval.
	PollIntervalMS int `toml:"poll_interval_ms"`

	// ContextLowPercent is the remaining-context threshold below which
	// a context_low event fires.
	ContextLowPercent int `toml:"context_low_percent"`

	// ExtraHighShell, ExtraSafeShell and ExtraLowShell are additional
	// shell command regexes appended to the built-in tables. Extra high
	// patterns keep high precedence; extra safe and low patterns are
	// consulted after the built-ins of their tier.
	ExtraHighShell []string `toml:"extra_high_shell"`
	ExtraSafeShell []string `toml:"extra_safe_shell"`
	ExtraLowShell  []string `toml:"extra_low_shell"`
}

// Colors holds watch-dashboard color values: xterm-256 codes (0-255)
// or hex colors (#rrggbb).
type Colors struct {
	Header  string `toml:"header"`
	Working string `toml:"working"`
	Waiting string `toml:"waiting"`
	Paused  string `toml:"paused"`
	Done    string `toml:"done"`
	Safe    string `toml:"safe"`
	Low     string `toml:"low"`
	High    string `toml:"high"`
	Dim     string `toml:"dim"`
}

// Config is the top-level configuration.
type Config struct {
	Monitor Monitor `toml:"monitor"`
	Colors  Colors  `toml:"colors"`
}

// Default returns a Config populated with the built-in defaults.
func Default() Config {
	return Config{
		Monitor: Monitor{
			CaptureLines:      50,
			PollIntervalMS:    2000,
			ContextLowPercent: monitor.DefaultPatterns.ContextLowPercent,
		},
		Colors: Colors{
			Header:  "#89b4fa", // Blue
			Working: "#89b4fa", // Blue
			Waiting: "#f9e2af", // Yellow
			Paused:  "#7f849c", // Overlay 1
			Done:    "#a6e3a1", // Green
			Safe:    "#94e2d5", // Teal
			Low:     "#fab387", // Peach
			High:    "#f38ba8", // Red
			Dim:     "#585b70", // Surface 2
		},
	}
}

// PollInterval returns the watch refresh interval as a duration.
func (c Config) PollInterval() time.Duration {
	return time.Duration(c.Monitor.PollIntervalMS) * time.Millisecond
}

// Ruleset compiles the built-in pattern tables plus any extra shell
// patterns from the config into an immutable monitor ruleset.
func (c Config) Ruleset() (*monitor.Ruleset, error) {
	p := monitor.DefaultPatterns
	p.HighShell = append(append([]string{}, p.HighShell...), c.Monitor.ExtraHighShell...)
	p.SafeShell = append(append([]string{}, p.SafeShell...), c.Monitor.ExtraSafeShell...)
	p.LowShell = append(append([]string{}, p.LowShell...), c.Monitor.ExtraLowShell...)
	if c.Monitor.ContextLowPercent > 0 {
		p.ContextLowPercent = c.Monitor.ContextLowPercent
	}

	rs, err := monitor.Compile(p)
	if err != nil {
		return nil, fmt.Errorf("compile configured patterns: %w", err)
	}
	return rs, nil
}

// Path returns the config file path, respecting XDG_CONFIG_HOME.
func Path() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "tmuxpilot", "tmuxpilot.conf")
}

// Load reads the config file at path. A missing file yields defaults
// with no error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

const defaultFileContent = `# tmuxpilot configuration
# Uncomment and modify values to customize. All values are optional.

[monitor]
# capture_lines       = 50    # pane scrollback lines examined per sweep
# poll_interval_ms    = 2000  # watch dashboard refresh interval
# context_low_percent = 15    # context_low fires below this percentage

# Extra shell command patterns (RE2 regexes, matched against the
# trimmed command). High-risk extras can never be downgraded by the
# built-in safe/low tables.
# extra_high_shell = ["^terraform\\s+apply\\b"]
# extra_safe_shell = ["^kubectl\\s+get\\b"]
# extra_low_shell  = ["^poetry\\s+install\\b"]

[colors]
# Colors can be hex (#rrggbb) or xterm-256 codes (0-255).
# header  = "#89b4fa"
# working = "#89b4fa"
# waiting = "#f9e2af"
# paused  = "#7f849c"
# done    = "#a6e3a1"
# safe    = "#94e2d5"
# low     = "#fab387"
# high    = "#f38ba8"
# dim     = "#585b70"
`

// WriteDefault writes the commented default config file. It no-ops if
// the file already exists.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(defaultFileContent), 0o644)
}
