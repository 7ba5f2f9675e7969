package tmux

import (
	"fmt"
	"os/exec"
)

// CapturePane returns the last lines of visible pane text.
func CapturePane(target string, lines int) (string, error) {
	if err := ValidateTarget(target); err != nil {
		return "", err
	}
	if lines < 1 {
		return "", fmt.Errorf("lines must be >= 1, got %d", lines)
	}
	out, err := exec.Command("tmux", "capture-pane", "-t", target, "-p",
		"-S", fmt.Sprintf("-%d", lines)).Output()
	if err != nil {
		return "", fmt.Errorf("capture pane %s: %w", target, err)
	}
	return string(out), nil
}
