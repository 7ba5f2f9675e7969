package tmux

import (
	"fmt"
	"os/exec"
	"regexp"
	"strings"
)

// specialKeyRE matches tmux key names that must go through send-keys:
// they name keys, not text, and cannot be pasted.
var specialKeyRE = regexp.MustCompile(
	`^(Enter|Escape|Tab|BTab|Space|BSpace|NPage|PPage|` +
		`Up|Down|Left|Right|Home|End|IC|DC|` +
		`F[0-9]{1,2}|` +
		`[CMS]-.+)$`)

// IsSpecialKey reports whether keys names a tmux special key.
func IsSpecialKey(keys string) bool {
	return specialKeyRE.MatchString(keys)
}

// SendKeys delivers keys to a pane. Special key names (Enter, C-c, …)
// go through send-keys; arbitrary text goes through load-buffer plus
// paste-buffer so it lands on the pane PTY even when a tmux popup or
// overlay would intercept send-keys.
func SendKeys(target, keys string) error {
	if err := ValidateTarget(target); err != nil {
		return err
	}
	if keys == "" {
		return fmt.Errorf("keys must not be empty")
	}

	if IsSpecialKey(keys) {
		if out, err := exec.Command("tmux", "send-keys", "-t", target, keys).CombinedOutput(); err != nil {
			return fmt.Errorf("send-keys to %s: %s (%w)", target, strings.TrimSpace(string(out)), err)
		}
		return nil
	}

	load := exec.Command("tmux", "load-buffer", "-")
	load.Stdin = strings.NewReader(keys)
	if out, err := load.CombinedOutput(); err != nil {
		return fmt.Errorf("load buffer: %s (%w)", strings.TrimSpace(string(out)), err)
	}
	if out, err := exec.Command("tmux", "paste-buffer", "-d", "-p", "-t", target).CombinedOutput(); err != nil {
		return fmt.Errorf("paste buffer to %s: %s (%w)", target, strings.TrimSpace(string(out)), err)
	}
	return nil
}
