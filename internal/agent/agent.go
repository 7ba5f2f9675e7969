// Package agent holds the fixed table of coding agents pilot knows how
// to spawn, pause, and resume inside tmux panes.
package agent

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// Definition describes one supported agent: how to launch it and which
// key sequences pause and resume it gracefully.
type Definition struct {
	Name    string
	Command []string

	// PauseKeys are sent in order to interrupt the agent while keeping
	// the pane alive for a later resume.
	PauseKeys []string

	// ResumeKeys are sent in order to bring a paused agent back.
	ResumeKeys []string
}

// known is the fixed agent table. Pause behavior differs per agent:
// Claude-style TUIs survive an interrupt and resume via their CLI,
// plain REPL agents just get an interrupt and a fresh launch line.
var known = map[string]Definition{
	"claude": {
		Name:       "claude",
		Command:    []string{"claude"},
		PauseKeys:  []string{"Escape", "C-c", "/exit", "Enter"},
		ResumeKeys: []string{"claude --continue", "Enter"},
	},
	"gemini": {
		Name:       "gemini",
		Command:    []string{"gemini"},
		PauseKeys:  []string{"C-c", "C-c"},
		ResumeKeys: []string{"gemini", "Enter"},
	},
	"aider": {
		Name:       "aider",
		Command:    []string{"aider"},
		PauseKeys:  []string{"C-c", "C-c"},
		ResumeKeys: []string{"aider", "Enter"},
	},
	"codex": {
		Name:       "codex",
		Command:    []string{"codex"},
		PauseKeys:  []string{"C-c"},
		ResumeKeys: []string{"codex resume", "Enter"},
	},
	"goose": {
		Name:       "goose",
		Command:    []string{"goose", "session"},
		PauseKeys:  []string{"C-c"},
		ResumeKeys: []string{"goose session -r", "Enter"},
	},
	"interpreter": {
		Name:       "interpreter",
		Command:    []string{"interpreter"},
		PauseKeys:  []string{"C-c"},
		ResumeKeys: []string{"interpreter", "Enter"},
	},
}

// Lookup returns the definition for an agent name.
func Lookup(name string) (Definition, bool) {
	def, ok := known[name]
	return def, ok
}

// Names returns the supported agent names, sorted.
func Names() []string {
	names := make([]string, 0, len(known))
	for name := range known {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var slugRE = regexp.MustCompile(`[^a-z0-9]+`)

// SessionName derives a tmux session name from a task prompt: the
// first few words, lowercased and slugged. Used when the caller did
// not name the session.
func SessionName(agentName, prompt string) string {
	slug := slugRE.ReplaceAllString(strings.ToLower(prompt), "-")
	slug = strings.Trim(slug, "-")

	const maxSlug = 24
	if len(slug) > maxSlug {
		slug = slug[:maxSlug]
		if i := strings.LastIndex(slug, "-"); i > 0 {
			slug = slug[:i]
		}
	}
	if slug == "" {
		slug = "task"
	}
	return fmt.Sprintf("%s-%s", agentName, slug)
}
