// Package tmux wraps the tmux commands the monitor depends on: pane
// enumeration, text capture, key delivery, and session lifecycle.
// Pane metadata travels in @pilot-* pane options set at spawn time.
package tmux

import (
	"fmt"
	"os/exec"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// unitSep separates fields in list-panes format output. tmux older than
// 3.5 escapes it to a literal \037 in format output; ListAgentPanes
// decodes both forms.
const unitSep = "\x1f"

// targetRE validates the session:window.pane target syntax before it is
// passed to tmux (window/pane parts optional).
var targetRE = regexp.MustCompile(`^[\w.:-]+$`)

// ValidateTarget returns an error if target does not look like a tmux
// target specifier.
func ValidateTarget(target string) error {
	if target == "" || !targetRE.MatchString(target) {
		return fmt.Errorf("invalid target format: %q", target)
	}
	return nil
}

// Pane describes one tmux pane and its pilot metadata.
type Pane struct {
	Target   string // session:window.pane
	Agent    string // @pilot-agent, empty for non-agent panes
	Desc     string // @pilot-desc
	Workdir  string // @pilot-workdir
	Path     string // pane_current_path
	Activity time.Time
	PID      int // pane_pid
	Host     string
	Mode     string
}

// Dir returns the pane's working directory, preferring the recorded
// spawn directory over the live pane path.
func (p Pane) Dir() string {
	if p.Workdir != "" {
		return p.Workdir
	}
	return p.Path
}

var listPanesFormat = strings.Join([]string{
	"#{session_name}:#{window_index}.#{pane_index}",
	"#{@pilot-agent}",
	"#{@pilot-desc}",
	"#{@pilot-workdir}",
	"#{pane_current_path}",
	"#{window_activity}",
	"#{pane_pid}",
	"#{@pilot-host}",
	"#{@pilot-mode}",
}, unitSep)

// ListPanes returns every pane on the server with its pilot metadata.
// Panes without an @pilot-agent option are included with Agent == "".
func ListPanes() ([]Pane, error) {
	out, err := exec.Command("tmux", "list-panes", "-a", "-F", listPanesFormat).Output()
	if err != nil {
		return nil, fmt.Errorf("list panes: %w", err)
	}
	return parsePaneList(string(out)), nil
}

// ListAgentPanes returns only panes spawned by pilot.
func ListAgentPanes() ([]Pane, error) {
	panes, err := ListPanes()
	if err != nil {
		return nil, err
	}
	agents := panes[:0]
	for _, p := range panes {
		if p.Agent != "" {
			agents = append(agents, p)
		}
	}
	return agents, nil
}

func parsePaneList(out string) []Pane {
	var panes []Pane
	for _, raw := range strings.Split(strings.TrimSpace(out), "\n") {
		if raw == "" {
			continue
		}
		raw = strings.ReplaceAll(raw, `\037`, unitSep)
		parts := strings.Split(raw, unitSep)
		if len(parts) < 7 {
			continue
		}
		for len(parts) < 9 {
			parts = append(parts, "")
		}

		p := Pane{
			Target:  parts[0],
			Agent:   parts[1],
			Desc:    parts[2],
			Workdir: parts[3],
			Path:    parts[4],
			Host:    parts[7],
			Mode:    parts[8],
		}
		if ts, err := strconv.ParseInt(parts[5], 10, 64); err == nil {
			p.Activity = time.Unix(ts, 0)
		}
		if pid, err := strconv.Atoi(parts[6]); err == nil {
			p.PID = pid
		}
		panes = append(panes, p)
	}
	return panes
}

// SpawnSession creates a detached session named name running command in
// dir, tags the pane with pilot metadata, and returns the pane target.
func SpawnSession(name, dir, agent, desc string, command []string) (string, error) {
	args := []string{"new-session", "-d", "-s", name, "-c", dir}
	args = append(args, command...)
	if out, err := exec.Command("tmux", args...).CombinedOutput(); err != nil {
		return "", fmt.Errorf("create session %s: %s (%w)", name, strings.TrimSpace(string(out)), err)
	}

	target := name + ":0.0"
	options := map[string]string{
		"@pilot-agent":   agent,
		"@pilot-desc":    desc,
		"@pilot-workdir": dir,
	}
	for opt, value := range options {
		if err := exec.Command("tmux", "set-option", "-p", "-t", target, opt, value).Run(); err != nil {
			return "", fmt.Errorf("set %s on %s: %w", opt, target, err)
		}
	}
	return target, nil
}

// KillSession kills the session owning the target pane.
func KillSession(target string) error {
	session, _, _ := strings.Cut(target, ":")
	if err := exec.Command("tmux", "kill-session", "-t", session).Run(); err != nil {
		return fmt.Errorf("kill session %s: %w", session, err)
	}
	return nil
}

// SessionExists reports whether a session with the given name exists.
func SessionExists(name string) bool {
	return exec.Command("tmux", "has-session", "-t", name).Run() == nil
}

// DisplayMessage expands a tmux format string for the target pane.
func DisplayMessage(target, format string) (string, error) {
	out, err := exec.Command("tmux", "display-message", "-t", target, "-p", format).Output()
	if err != nil {
		return "", fmt.Errorf("display-message for %s: %w", target, err)
	}
	return strings.TrimSpace(string(out)), nil
}

// PaneWorkdir returns the working directory for a pane: the recorded
// @pilot-workdir when set, otherwise the live pane path.
func PaneWorkdir(target string) (string, error) {
	dir, err := DisplayMessage(target, "#{@pilot-workdir}")
	if err != nil {
		return "", err
	}
	if dir != "" {
		return dir, nil
	}
	return DisplayMessage(target, "#{pane_current_path}")
}
