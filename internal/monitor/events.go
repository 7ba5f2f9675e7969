package monitor

import (
	"fmt"
	"regexp"
	"strconv"
)

// EventKind enumerates the lifecycle milestones the monitor recognizes.
type EventKind string

const (
	EventPRCreated        EventKind = "pr_created"
	EventFinished         EventKind = "finished"
	EventContextLow       EventKind = "context_low"
	EventContextExhausted EventKind = "context_exhausted"
)

// Event is a lifecycle milestone detected in pane output.
type Event struct {
	Kind   EventKind `json:"kind"`
	Detail string    `json:"detail"`
}

// eventPatterns is scanned in order against the full text. At most one
// event is emitted per kind per scan.
var eventPatterns = []struct {
	kind EventKind
	re   *regexp.Regexp
}{
	{EventPRCreated, regexp.MustCompile(`https?://github\.com/[^\s]+/pull/\d+`)},
	{EventFinished, regexp.MustCompile(`═+\s*Work Complete\s*═+`)},
	{EventContextLow, regexp.MustCompile(`Context left until auto-compact:\s*(\d+)%`)},
	{EventContextExhausted, regexp.MustCompile(`(?i)auto-compact`)},
}

// DetectEvents scans pane text using the default ruleset.
func DetectEvents(text string) []Event {
	return defaultRuleset.DetectEvents(text)
}

// DetectEvents scans pane text for lifecycle events. Per kind, the
// first match wins and duplicates are suppressed. A context_low match
// at or above the threshold, or with an unparsable percentage, is
// discarded rather than reported.
func (rs *Ruleset) DetectEvents(text string) []Event {
	var events []Event
	seen := make(map[EventKind]bool)

	for _, ep := range eventPatterns {
		m := ep.re.FindStringSubmatch(text)
		if m == nil || seen[ep.kind] {
			continue
		}
		seen[ep.kind] = true

		detail := m[0]
		if ep.kind == EventContextLow {
			pct, err := strconv.Atoi(m[1])
			if err != nil || pct >= rs.contextLowPercent {
				continue
			}
			detail = fmt.Sprintf("%d%% remaining", pct)
		}

		events = append(events, Event{Kind: ep.kind, Detail: detail})
	}

	return events
}
