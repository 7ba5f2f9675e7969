package monitor

import "strings"

// ClassifyRisk classifies a prompt using the default ruleset.
func ClassifyRisk(tool Tool, action string) (Risk, Disposition) {
	return defaultRuleset.Classify(tool, action)
}

// Classify returns the risk tier and suggested disposition for a prompt.
// It is total: every (tool, action) pair resolves to a defined outcome,
// and anything unrecognized escalates.
//
// Precedence, first applicable rule wins:
//  1. safe tool (read-only) regardless of action
//  2. low-risk tool (local file mutation) regardless of action
//  3. Bash delegates to the ordered shell rule walk
//  4. everything else, including the generic-fallback "unknown" tool,
//     is high/escalate
func (rs *Ruleset) Classify(tool Tool, action string) (Risk, Disposition) {
	switch {
	case rs.safeTools[tool]:
		return RiskSafe, Approve
	case rs.lowTools[tool]:
		return RiskLow, Review
	case tool == ToolBash:
		return rs.classifyShell(action)
	default:
		return RiskHigh, Escalate
	}
}

// classifyShell walks the ordered shell rule list. An unmatched command
// defaults to high: an unknown binary invocation is the least trusted
// outcome, not the most convenient one.
func (rs *Ruleset) classifyShell(command string) (Risk, Disposition) {
	cmd := strings.TrimSpace(command)
	for _, rule := range rs.shell {
		if rule.Pattern.MatchString(cmd) {
			return rule.Risk, rule.Risk.Suggestion()
		}
	}
	return RiskHigh, Escalate
}
