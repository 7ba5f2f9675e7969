// Package pause persists pause markers for agent panes. A marker is a
// small JSON sidecar file named after the pane target; its presence is
// the external pause signal the sweep layer folds into pane status.
package pause

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Marker is the JSON written for a paused pane.
type Marker struct {
	Target   string    `json:"target"`
	Agent    string    `json:"agent"`
	PausedAt time.Time `json:"paused_at"`
}

// Store reads and writes pause markers in one directory.
type Store struct {
	dir string
}

// NewStore returns a Store rooted at the XDG state directory
// (~/.local/state/tmuxpilot/paused by default).
func NewStore() *Store {
	dir := os.Getenv("XDG_STATE_HOME")
	if dir == "" {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".local", "state")
	}
	return &Store{dir: filepath.Join(dir, "tmuxpilot", "paused")}
}

// NewStoreAt returns a Store rooted at a custom directory (for tests).
func NewStoreAt(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the marker directory so callers can watch it.
func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) path(target string) string {
	name := strings.ReplaceAll(target, ":", "_") + ".json"
	return filepath.Join(s.dir, name)
}

// Mark records a pane as paused.
func (s *Store) Mark(target, agent string) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create marker dir: %w", err)
	}
	data, err := json.Marshal(Marker{Target: target, Agent: agent, PausedAt: time.Now().UTC()})
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.path(target), data, 0o644); err != nil {
		return fmt.Errorf("write pause marker for %s: %w", target, err)
	}
	return nil
}

// Clear removes a pane's pause marker. Clearing an unmarked pane is
// not an error.
func (s *Store) Clear(target string) error {
	err := os.Remove(s.path(target))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove pause marker for %s: %w", target, err)
	}
	return nil
}

// IsPaused reports whether a pause marker exists for the target.
func (s *Store) IsPaused(target string) bool {
	_, err := os.Stat(s.path(target))
	return err == nil
}

// List returns all current markers, skipping unreadable files.
func (s *Store) List() ([]Marker, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read marker dir: %w", err)
	}

	var markers []Marker
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.dir, e.Name()))
		if err != nil {
			continue
		}
		var m Marker
		if err := json.Unmarshal(data, &m); err != nil {
			continue
		}
		markers = append(markers, m)
	}
	return markers, nil
}
