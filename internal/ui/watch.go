// Package ui renders monitoring output: a styled one-shot report and
// the live watch dashboard.
package ui

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
	"github.com/mattn/go-runewidth"

	"github.com/tmuxpilot/tmuxpilot/internal/monitor"
	"github.com/tmuxpilot/tmuxpilot/internal/sweep"
)

type tickMsg time.Time

type pauseChangedMsg struct{}

type sweepMsg struct {
	reports []monitor.PaneReport
	err     error
}

// WatchModel is the live dashboard: it re-sweeps on a timer and
// immediately when a pause marker appears or disappears.
type WatchModel struct {
	sweeper  *sweep.Sweeper
	interval time.Duration
	styles   Styles
	spin     spinner.Model
	watcher  *fsnotify.Watcher

	reports    []monitor.PaneReport
	err        string
	width      int
	height     int
	refreshing bool
	last       time.Time
}

// NewWatch builds the dashboard model. pauseDir is watched with
// fsnotify so pause/resume from another terminal shows up without
// waiting for the next tick; watching is best-effort.
func NewWatch(sw *sweep.Sweeper, st Styles, interval time.Duration, pauseDir string) WatchModel {
	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = st.Header

	m := WatchModel{
		sweeper:    sw,
		interval:   interval,
		styles:     st,
		spin:       sp,
		width:      80,
		refreshing: true,
	}
	if w, err := fsnotify.NewWatcher(); err == nil {
		os.MkdirAll(pauseDir, 0o755)
		if err := w.Add(pauseDir); err == nil {
			m.watcher = w
		} else {
			w.Close()
		}
	}
	return m
}

func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m WatchModel) sweepCmd() tea.Cmd {
	sw := m.sweeper
	return func() tea.Msg {
		reports, err := sw.Run()
		return sweepMsg{reports: reports, err: err}
	}
}

// waitForPauseChange blocks on the fsnotify event stream until a
// marker file changes.
func waitForPauseChange(w *fsnotify.Watcher) tea.Cmd {
	return func() tea.Msg {
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return nil
				}
				if ev.Op&(fsnotify.Create|fsnotify.Remove|fsnotify.Write|fsnotify.Rename) != 0 {
					return pauseChangedMsg{}
				}
			case _, ok := <-w.Errors:
				if !ok {
					return nil
				}
			}
		}
	}
}

func (m WatchModel) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spin.Tick, m.sweepCmd(), tickCmd(m.interval)}
	if m.watcher != nil {
		cmds = append(cmds, waitForPauseChange(m.watcher))
	}
	return tea.Batch(cmds...)
}

func (m WatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			if m.watcher != nil {
				m.watcher.Close()
			}
			return m, tea.Quit
		case "r":
			if !m.refreshing {
				m.refreshing = true
				return m, m.sweepCmd()
			}
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		if m.refreshing {
			return m, tickCmd(m.interval)
		}
		m.refreshing = true
		return m, tea.Batch(m.sweepCmd(), tickCmd(m.interval))

	case pauseChangedMsg:
		cmds := []tea.Cmd{waitForPauseChange(m.watcher)}
		if !m.refreshing {
			m.refreshing = true
			cmds = append(cmds, m.sweepCmd())
		}
		return m, tea.Batch(cmds...)

	case sweepMsg:
		m.refreshing = false
		m.last = time.Now()
		if msg.err != nil {
			m.err = msg.err.Error()
		} else {
			m.err = ""
			m.reports = msg.reports
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m WatchModel) View() string {
	var b strings.Builder

	title := m.styles.Header.Render("tmuxpilot watch")
	if m.refreshing {
		title += " " + m.spin.View()
	} else if !m.last.IsZero() {
		title += m.styles.Dim.Render(fmt.Sprintf("  refreshed %s", m.last.Format("15:04:05")))
	}
	b.WriteString(title + "\n\n")

	if m.err != "" {
		b.WriteString(m.styles.Error.Render("sweep failed: "+m.err) + "\n")
	}

	if len(m.reports) == 0 {
		b.WriteString(m.styles.Dim.Render("No agent panes found.") + "\n")
	}

	for _, r := range m.reports {
		b.WriteString(m.row(r) + "\n")
	}

	// Actionable panes get their prompt and event details below the
	// table, reusing the one-shot report renderer.
	var actionable []monitor.PaneReport
	for _, r := range m.reports {
		if r.Actionable() {
			actionable = append(actionable, r)
		}
	}
	if len(actionable) > 0 {
		b.WriteString("\n")
		b.WriteString(RenderReport(actionable, m.styles, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n" + m.styles.Help.Render("q quit · r refresh"))
	return b.String()
}

// row renders one pane line, truncated to the terminal width.
func (m WatchModel) row(r monitor.PaneReport) string {
	agent := r.Agent
	if agent == "" {
		agent = "?"
	}

	var summary string
	switch {
	case len(r.Prompts) > 0:
		summary = fmt.Sprintf("%d prompt(s) pending", len(r.Prompts))
	case len(r.Events) > 0:
		summary = string(r.Events[0].Kind)
	}

	line := fmt.Sprintf("  %-8s %-28s %-12s %s", r.Status, r.Target, agent, summary)
	line = runewidth.Truncate(line, m.width, "…")
	return m.styles.Status(r.Status).Render(line)
}

// RunWatch starts the dashboard and blocks until the user quits.
func RunWatch(sw *sweep.Sweeper, st Styles, interval time.Duration, pauseDir string) error {
	p := tea.NewProgram(NewWatch(sw, st, interval, pauseDir), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
