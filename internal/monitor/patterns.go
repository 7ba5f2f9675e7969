// Package monitor detects permission prompts and lifecycle events in
// captured tmux pane text, classifies prompts by risk, infers pane
// status, and formats sweep reports.
//
// All functions are pure and operate on captured pane text strings.
// No tmux interaction happens here.
package monitor

import "regexp"

// Tool identifies which agent tool a permission prompt asks about.
type Tool string

const (
	ToolBash         Tool = "Bash"
	ToolEdit         Tool = "Edit"
	ToolWrite        Tool = "Write"
	ToolRead         Tool = "Read"
	ToolGlob         Tool = "Glob"
	ToolGrep         Tool = "Grep"
	ToolNotebookEdit Tool = "NotebookEdit"
	ToolWebFetch     Tool = "WebFetch"
	ToolWebSearch    Tool = "WebSearch"

	// ToolUnknown marks prompts matched only by the generic fallback.
	ToolUnknown Tool = "unknown"
)

// Risk is the coarse danger classification of a prompt.
type Risk string

const (
	RiskSafe Risk = "safe"
	RiskLow  Risk = "low"
	RiskHigh Risk = "high"
)

// Disposition is the recommended human response to a prompt.
type Disposition string

const (
	Approve  Disposition = "approve"
	Review   Disposition = "review"
	Escalate Disposition = "escalate"
)

// Suggestion returns the disposition implied by a risk tier. The mapping
// is fixed: a prompt's suggestion is never set independently of its risk.
func (r Risk) Suggestion() Disposition {
	switch r {
	case RiskSafe:
		return Approve
	case RiskLow:
		return Review
	default:
		return Escalate
	}
}

// Patterns is the raw pattern data a Ruleset is compiled from. It is
// plain data so alternate tables can be declared in tests or loaded
// from configuration.
type Patterns struct {
	// SafeTools are read-only tools approved regardless of action text.
	SafeTools []Tool

	// LowRiskTools are local-mutation tools that warrant a review.
	LowRiskTools []Tool

	// HighShell, SafeShell and LowShell are regexp sources matched
	// against trimmed shell commands. High patterns are checked before
	// everything else so no later rule can downgrade a dangerous
	// command; a chaining construct check sits between high and safe.
	HighShell []string
	SafeShell []string
	LowShell  []string

	// ContextLowPercent is the remaining-context percentage below which
	// a context_low event fires.
	ContextLowPercent int
}

// DefaultPatterns contains the default classification tables for
// Claude Code style permission prompts.
var DefaultPatterns = Patterns{
	SafeTools: []Tool{ToolRead, ToolGlob, ToolGrep, ToolWebSearch, ToolWebFetch},

	LowRiskTools: []Tool{ToolEdit, ToolWrite, ToolNotebookEdit},

	HighShell: []string{
		`^git\s+push\b`,
		`^git\s+(reset|rebase|merge|cherry-pick)\b`,
		`git\s+.*--force`,
		`git\s+.*--no-verify`,
		`^gh\s+pr\s+(create|merge|close|edit)\b`,
		`^gh\s+issue\s+(close|delete|edit)\b`,
		`^(rm|rmdir|unlink)\b`,
		`^(sudo|doas)\b`,
		`^(curl|wget)\s+.+(POST|PUT|DELETE|PATCH)`,
		`^docker\s+(rm|rmi|system\s+prune)\b`,
	},

	SafeShell: []string{
		`^git\s+(status|diff|log|branch|show)`,
		`^git\s+(fetch|rev-parse|rev-list|remote)`,
		`^(cat|head|tail|less|wc|file|ls)\b`,
		`^(find|fd)\b`,
		`^(grep|rg|ag|ack)\b`,
		`^(bazel|bazelw|\./bazelw)\s+(build|test|query|info)`,
		`^(gradle|gradlew|\./gradlew)\s+(build|test|check)\b`,
		`^(buildifier|ktfmt)\b`,
		`^(python3?|node)\s+.+\.(py|js|ts|bzl)$`,
		`^(npm|yarn|pnpm)\s+(run\s+)?(build|test|lint)\b`,
		`^(cargo|go|make)\s+(build|test|check)\b`,
		`^gh\s+(issue|pr)\s+(view|list|diff)\b`,
		`^(pwd|whoami|date|uname|which|type|printenv|env)\b`,
	},

	LowShell: []string{
		`^git\s+(add|commit|stash|checkout|switch|branch)\b`,
		`^git\s+worktree\s+(add|remove)\b`,
		`^(bazel|bazelw|\./bazelw)\s+run\b`,
		`^(gradle|gradlew|\./gradlew)\b`,
		`^(mkdir|cp|mv|touch|chmod)\b`,
		`^(npm|yarn|pnpm)\s+install\b`,
		`^(pip|uv)\s+install\b`,
		`^(cargo|go)\s+(install|get)\b`,
	},

	ContextLowPercent: 15,
}

// chainingRE matches shell chaining and substitution constructs:
// sequencing, conjunction/disjunction, pipes, and command substitution
// in either syntax. Any of these turns a single "safe" command into a
// multi-command pipeline, so the command is high-risk regardless of the
// leading token.
var chainingRE = regexp.MustCompile("&&|\\|\\||[;|]|\\$\\(|`")

// ShellRule is one compiled entry of the ordered shell classification
// walk. The first rule whose pattern matches decides the risk.
type ShellRule struct {
	Pattern *regexp.Regexp
	Risk    Risk
}

// Ruleset is an immutable, compiled pattern table. One Ruleset is built
// at process start and passed explicitly wherever classification
// happens; it is never mutated afterwards.
type Ruleset struct {
	safeTools map[Tool]bool
	lowTools  map[Tool]bool

	// shell is evaluated in order, first match wins. It is laid out as
	// high rules, then the chaining rule, then safe rules, then low
	// rules, so precedence is a property of the list itself.
	shell []ShellRule

	contextLowPercent int
}

// Compile builds a Ruleset from raw pattern data. It fails only on an
// invalid regexp source (user-supplied patterns from configuration).
func Compile(p Patterns) (*Ruleset, error) {
	rs := &Ruleset{
		safeTools:         make(map[Tool]bool, len(p.SafeTools)),
		lowTools:          make(map[Tool]bool, len(p.LowRiskTools)),
		contextLowPercent: p.ContextLowPercent,
	}
	for _, t := range p.SafeTools {
		rs.safeTools[t] = true
	}
	for _, t := range p.LowRiskTools {
		rs.lowTools[t] = true
	}

	add := func(sources []string, risk Risk) error {
		for _, src := range sources {
			re, err := regexp.Compile(src)
			if err != nil {
				return err
			}
			rs.shell = append(rs.shell, ShellRule{Pattern: re, Risk: risk})
		}
		return nil
	}

	if err := add(p.HighShell, RiskHigh); err != nil {
		return nil, err
	}
	rs.shell = append(rs.shell, ShellRule{Pattern: chainingRE, Risk: RiskHigh})
	if err := add(p.SafeShell, RiskSafe); err != nil {
		return nil, err
	}
	if err := add(p.LowShell, RiskLow); err != nil {
		return nil, err
	}
	return rs, nil
}

// MustCompile is Compile for known-good pattern tables.
func MustCompile(p Patterns) *Ruleset {
	rs, err := Compile(p)
	if err != nil {
		panic(err)
	}
	return rs
}

// ShellRules exposes the ordered shell rule list for inspection.
func (rs *Ruleset) ShellRules() []ShellRule {
	out := make([]ShellRule, len(rs.shell))
	copy(out, rs.shell)
	return out
}

// defaultRuleset backs the package-level convenience functions.
var defaultRuleset = MustCompile(DefaultPatterns)
