package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/tmuxpilot/tmuxpilot/internal/config"
	"github.com/tmuxpilot/tmuxpilot/internal/monitor"
)

// Styles holds every lipgloss style the ui package renders with,
// built once from the configured colors.
type Styles struct {
	Header  lipgloss.Style
	Working lipgloss.Style
	Waiting lipgloss.Style
	Paused  lipgloss.Style
	Done    lipgloss.Style
	Safe    lipgloss.Style
	Low     lipgloss.Style
	High    lipgloss.Style
	Dim     lipgloss.Style
	Help    lipgloss.Style
	Error   lipgloss.Style
}

// NewStyles builds the style set from configured colors.
func NewStyles(c config.Colors) Styles {
	return Styles{
		Header:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(c.Header)),
		Working: lipgloss.NewStyle().Foreground(lipgloss.Color(c.Working)),
		Waiting: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(c.Waiting)),
		Paused:  lipgloss.NewStyle().Foreground(lipgloss.Color(c.Paused)),
		Done:    lipgloss.NewStyle().Foreground(lipgloss.Color(c.Done)),
		Safe:    lipgloss.NewStyle().Foreground(lipgloss.Color(c.Safe)),
		Low:     lipgloss.NewStyle().Foreground(lipgloss.Color(c.Low)),
		High:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(c.High)),
		Dim:     lipgloss.NewStyle().Foreground(lipgloss.Color(c.Dim)),
		Help:    lipgloss.NewStyle().Foreground(lipgloss.Color(c.Dim)),
		Error:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(c.High)),
	}
}

// Status returns the style for a pane status.
func (s Styles) Status(st monitor.Status) lipgloss.Style {
	switch st {
	case monitor.StatusWaiting:
		return s.Waiting
	case monitor.StatusPaused:
		return s.Paused
	case monitor.StatusDone:
		return s.Done
	default:
		return s.Working
	}
}

// Risk returns the style for a prompt risk level.
func (s Styles) Risk(r monitor.Risk) lipgloss.Style {
	switch r {
	case monitor.RiskSafe:
		return s.Safe
	case monitor.RiskLow:
		return s.Low
	default:
		return s.High
	}
}
