package monitor

// Status is the coarse state of one monitored pane.
type Status string

const (
	StatusWorking Status = "working"
	StatusWaiting Status = "waiting"
	StatusDone    Status = "done"

	// StatusWatching is reserved; no inference rule produces it.
	StatusWatching Status = "watching"

	// StatusPaused is set by the sweep layer when an external pause
	// marker exists for the pane. InferStatus never returns it.
	StatusPaused Status = "paused"
)

// InferStatus reduces one scan's detections to a single pane status.
// A pending prompt always dominates: an agent that is asking for
// permission is waiting even if a completion banner is also visible.
func InferStatus(prompts []Prompt, events []Event) Status {
	if len(prompts) > 0 {
		return StatusWaiting
	}
	for _, ev := range events {
		if ev.Kind == EventFinished {
			return StatusDone
		}
	}
	return StatusWorking
}
