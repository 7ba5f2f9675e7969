// Package proc aggregates process statistics for the full process tree
// under a tmux pane, using a single ps invocation per sweep.
package proc

import (
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// Entry is one process row from ps.
type Entry struct {
	PID  int
	PPID int
	RSS  int // kilobytes
	CPU  float64
}

// Table indexes processes by PID for tree roll-ups.
type Table map[int]Entry

// Snapshot captures the current process table in one ps call.
func Snapshot() (Table, error) {
	out, err := exec.Command("ps", "-ax", "-o", "pid=,ppid=,rss=,%cpu=").Output()
	if err != nil {
		return nil, fmt.Errorf("ps snapshot: %w", err)
	}
	return ParsePS(string(out)), nil
}

// ParsePS parses ps output into a Table, skipping malformed rows.
func ParsePS(out string) Table {
	table := make(Table)
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		fields := strings.Fields(line)
		if len(fields) < 4 {
			continue
		}
		pid, err1 := strconv.Atoi(fields[0])
		ppid, err2 := strconv.Atoi(fields[1])
		rss, err3 := strconv.Atoi(fields[2])
		cpu, err4 := strconv.ParseFloat(fields[3], 64)
		if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
			continue
		}
		table[pid] = Entry{PID: pid, PPID: ppid, RSS: rss, CPU: cpu}
	}
	return table
}

// TreeStats sums RSS (KB) and CPU% over root and every descendant.
func (t Table) TreeStats(root int) (rssKB int, cpuPercent float64) {
	tree := map[int]bool{root: true}
	for changed := true; changed; {
		changed = false
		for pid, e := range t {
			if !tree[pid] && tree[e.PPID] {
				tree[pid] = true
				changed = true
			}
		}
	}
	for pid := range tree {
		if e, ok := t[pid]; ok {
			rssKB += e.RSS
			cpuPercent += e.CPU
		}
	}
	return rssKB, cpuPercent
}

// FormatMem renders kilobytes the way top does: 512K, 48M, 1.2G.
func FormatMem(kb int) string {
	switch {
	case kb >= 1048576:
		return fmt.Sprintf("%.1fG", float64(kb)/1048576)
	case kb >= 1024:
		return fmt.Sprintf("%dM", kb/1024)
	default:
		return fmt.Sprintf("%dK", kb)
	}
}

// FormatAge humanizes how long ago a pane last saw activity.
func FormatAge(since time.Duration) string {
	switch {
	case since < time.Minute:
		return "active"
	case since < time.Hour:
		return fmt.Sprintf("%dm ago", int(since.Minutes()))
	case since < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(since.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(since.Hours())/24)
	}
}
