// Package runner executes shell commands with their output redirected
// to a log file, so long or noisy command output never lands in an
// agent's context. Callers get the exit code and a short tail.
package runner

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultTimeout bounds a silent run when the caller does not.
const DefaultTimeout = 15 * time.Minute

// tailLineCount is how many trailing log lines are reported on failure.
const tailLineCount = 30

// Result describes one finished (or timed-out) silent run.
type Result struct {
	ExitCode int    `json:"exit_code"`
	LogFile  string `json:"log_file"`
	Tail     string `json:"tail"`
	TimedOut bool   `json:"timed_out,omitempty"`
}

// Run executes command through the shell in dir, streaming all output
// to a fresh log file. On a non-zero exit the result carries the last
// lines of the log; on timeout the process is killed and the result
// says so. The error return is reserved for setup failures; a failing
// command is a normal Result.
func Run(ctx context.Context, command, dir string, timeout time.Duration) (Result, error) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	logFile := filepath.Join(os.TempDir(), fmt.Sprintf("pilot-cmd-%s.log", uuid.NewString()))
	f, err := os.Create(logFile)
	if err != nil {
		return Result{}, fmt.Errorf("create log file: %w", err)
	}
	defer f.Close()

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "sh", "-c", command)
	cmd.Dir = dir
	cmd.Stdout = f
	cmd.Stderr = f

	runErr := cmd.Run()

	res := Result{LogFile: logFile}
	if ctx.Err() == context.DeadlineExceeded {
		res.ExitCode = -1
		res.TimedOut = true
		res.Tail = fmt.Sprintf("TIMEOUT after %s", timeout)
		return res, nil
	}
	if runErr != nil {
		if exitErr, ok := runErr.(*exec.ExitError); ok {
			res.ExitCode = exitErr.ExitCode()
		} else {
			return Result{}, fmt.Errorf("run command: %w", runErr)
		}
	}

	if res.ExitCode != 0 {
		res.Tail = tailLines(logFile, tailLineCount)
	}
	return res, nil
}

// tailLines returns the last n lines of a file, best-effort.
func tailLines(path string, n int) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.Join(lines, "\n")
}
