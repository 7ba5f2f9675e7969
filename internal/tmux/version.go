package tmux

import (
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// Oldest tmux the pilot pane options are known to work with.
const (
	minMajor = 3
	minMinor = 0
)

// CheckVersion returns the tmux version string. It errors when tmux is
// missing entirely; when the version is below the supported minimum it
// returns the version alongside the error so callers can warn and
// continue.
func CheckVersion() (string, error) {
	out, err := exec.Command("tmux", "-V").Output()
	if err != nil {
		return "", fmt.Errorf("get tmux version: %w", err)
	}

	version := strings.TrimSpace(string(out))
	major, minor, ok := parseVersion(version)
	if !ok {
		// Unrecognized banner (dev builds like "tmux next-3.4"); let
		// the caller proceed.
		return version, nil
	}

	if major < minMajor || (major == minMajor && minor < minMinor) {
		return version, fmt.Errorf("tmux version %s is below %d.%d; pane options may not work", version, minMajor, minMinor)
	}
	return version, nil
}

// parseVersion extracts major and minor from a "tmux 3.3a" banner.
// Major and minor are compared as integers so "3.10" orders after
// "3.9".
func parseVersion(banner string) (major, minor int, ok bool) {
	parts := strings.Fields(banner)
	if len(parts) < 2 {
		return 0, 0, false
	}

	// Strip patch-letter suffixes like the "a" in "3.3a".
	num := strings.TrimRight(parts[1], "abcdefghijklmnopqrstuvwxyz")
	majorStr, minorStr, found := strings.Cut(num, ".")

	major, err := strconv.Atoi(majorStr)
	if err != nil {
		return 0, 0, false
	}
	if found {
		minor, err = strconv.Atoi(minorStr)
		if err != nil {
			return 0, 0, false
		}
	}
	return major, minor, true
}

// PaneExists reports whether the target pane is still alive.
func PaneExists(target string) bool {
	return exec.Command("tmux", "display-message", "-t", target, "-p", "").Run() == nil
}
