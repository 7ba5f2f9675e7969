// Package sweep runs one monitoring pass over all agent panes:
// enumerate, capture, detect, classify, report. Each sweep is a fresh
// computation; nothing is carried between runs.
package sweep

import (
	"fmt"
	"log/slog"

	"github.com/tmuxpilot/tmuxpilot/internal/monitor"
	"github.com/tmuxpilot/tmuxpilot/internal/tmux"
)

// DefaultCaptureLines is how much pane scrollback one sweep examines.
const DefaultCaptureLines = 50

// Sweeper captures and classifies agent pane text.
type Sweeper struct {
	tmux         tmux.Ops
	rules        *monitor.Ruleset
	captureLines int
	paused       func(target string) bool
}

// Option configures a Sweeper.
type Option func(*Sweeper)

// WithCaptureLines overrides how many lines each sweep captures.
func WithCaptureLines(n int) Option {
	return func(s *Sweeper) {
		if n > 0 {
			s.captureLines = n
		}
	}
}

// WithPausedCheck installs the external pause signal. A pane the check
// reports paused is shown as paused instead of working; a pending
// prompt or a finished banner still wins.
func WithPausedCheck(fn func(target string) bool) Option {
	return func(s *Sweeper) { s.paused = fn }
}

// New builds a Sweeper over the given tmux operations and ruleset.
func New(ops tmux.Ops, rules *monitor.Ruleset, opts ...Option) *Sweeper {
	s := &Sweeper{
		tmux:         ops,
		rules:        rules,
		captureLines: DefaultCaptureLines,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run performs one sweep and returns a report per agent pane. Panes
// whose capture fails are skipped with a warning; pane enumeration
// failing fails the sweep.
func (s *Sweeper) Run() ([]monitor.PaneReport, error) {
	panes, err := s.tmux.ListAgentPanes()
	if err != nil {
		return nil, fmt.Errorf("enumerate agent panes: %w", err)
	}

	reports := make([]monitor.PaneReport, 0, len(panes))
	for _, pane := range panes {
		text, err := s.tmux.CapturePane(pane.Target, s.captureLines)
		if err != nil {
			slog.Warn("capture failed, skipping pane", "target", pane.Target, "error", err)
			continue
		}

		prompts := s.rules.DetectPrompts(text)
		events := s.rules.DetectEvents(text)
		status := monitor.InferStatus(prompts, events)
		if status == monitor.StatusWorking && s.paused != nil && s.paused(pane.Target) {
			status = monitor.StatusPaused
		}

		reports = append(reports, monitor.PaneReport{
			Target:  pane.Target,
			Agent:   pane.Agent,
			Status:  status,
			Prompts: prompts,
			Events:  events,
		})
	}
	return reports, nil
}
