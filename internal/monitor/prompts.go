package monitor

import (
	"regexp"
	"strings"
)

// Prompt is a permission prompt found in pane output. Constructed once
// per detection pass and never mutated.
type Prompt struct {
	Raw        string      `json:"raw"`
	Tool       Tool        `json:"tool"`
	Action     string      `json:"action"`
	Risk       Risk        `json:"risk"`
	Suggestion Disposition `json:"suggestion"`
}

// Bash prompt: an "Allow Bash" header followed by a "$ command" line,
// possibly with lines in between.
var bashPromptRE = regexp.MustCompile(`Allow Bash[^\n]*\n(?:[^\n]*\n)*?\s*\$\s+(.+)`)

// Non-Bash tool prompts: "Allow <Tool> to <target>?". The target ends
// at a question mark, a line break, or end of text; captures always
// end with a newline, so a bare "$" anchor would miss a terminal
// prompt on the last line.
var toolPromptRE = regexp.MustCompile(
	`Allow (Edit|Write|Read|Glob|Grep|NotebookEdit|WebFetch|WebSearch)(?:\s+to)?\s+(.+?)(?:\?|\n|$)`)

// Generic yes/no fallback, only consulted when nothing else matched.
var genericPromptRE = regexp.MustCompile(`Do you want to (?:allow|proceed|continue)`)

// DetectPrompts scans pane text using the default ruleset.
func DetectPrompts(text string) []Prompt {
	return defaultRuleset.DetectPrompts(text)
}

// DetectPrompts scans pane text for permission prompts and classifies
// each one. It never fails; text with no prompts yields a nil slice.
func (rs *Ruleset) DetectPrompts(text string) []Prompt {
	var prompts []Prompt

	// 1. Bash prompts, extracting the actual command.
	for _, m := range bashPromptRE.FindAllStringSubmatch(text, -1) {
		cmd := strings.TrimSpace(m[1])
		risk, suggestion := rs.Classify(ToolBash, cmd)
		prompts = append(prompts, Prompt{
			Raw:        strings.TrimSpace(m[0]),
			Tool:       ToolBash,
			Action:     cmd,
			Risk:       risk,
			Suggestion: suggestion,
		})
	}

	// 2. Named tool prompts.
	for _, m := range toolPromptRE.FindAllStringSubmatch(text, -1) {
		tool := Tool(m[1])
		action := strings.TrimSpace(m[2])
		risk, suggestion := rs.Classify(tool, action)
		prompts = append(prompts, Prompt{
			Raw:        strings.TrimSpace(m[0]),
			Tool:       tool,
			Action:     action,
			Risk:       risk,
			Suggestion: suggestion,
		})
	}

	// 3. Generic fallback. An unrecognized prompt shape is inherently
	// suspect, so risk is hard-wired high with no classification lookup.
	if len(prompts) == 0 {
		for _, m := range genericPromptRE.FindAllString(text, -1) {
			prompts = append(prompts, Prompt{
				Raw:        strings.TrimSpace(m),
				Tool:       ToolUnknown,
				Action:     m,
				Risk:       RiskHigh,
				Suggestion: Escalate,
			})
		}
	}

	return prompts
}
