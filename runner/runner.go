// Package runner executes the watched command and captures its output.
package runner

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// LaunchFailureCode is the synthetic exit code reported when the command
// could not be started at all, mirroring the shell's command-not-found code.
const LaunchFailureCode = 127

// Result is the outcome of one command run.
type Result struct {
	// ExitCode is the process exit code, or LaunchFailureCode when the
	// process never started.
	ExitCode int

	// Lines is the combined stdout and stderr, split on newlines.
	Lines []string

	StartedAt time.Time
	Elapsed   time.Duration
}

// ElapsedMs returns the run duration in whole milliseconds.
func (r *Result) ElapsedMs() int64 {
	return r.Elapsed.Milliseconds()
}

// Runner invokes the configured command once per call.
type Runner struct {
	// Command is the argv to execute.
	Command []string

	// ExecMode runs Command[0] directly with the remaining tokens as
	// arguments. When false the tokens are joined with single spaces and
	// handed to `sh -c` unmodified; watchcmd never adds or rewrites
	// quoting, so whatever quoting survived the invoking shell is what
	// the inner shell sees.
	ExecMode bool
}

// Run executes the command and blocks until it exits. A failure to launch is
// not an error: it is reported as a Result with LaunchFailureCode and an
// explanatory line, so the session loop keeps going and the user can read
// what went wrong.
func (r *Runner) Run() *Result {
	started := time.Now()

	var cmd *exec.Cmd
	if r.ExecMode {
		cmd = exec.Command(r.Command[0], r.Command[1:]...)
	} else {
		cmd = exec.Command("sh", "-c", strings.Join(r.Command, " "))
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	elapsed := time.Since(started)

	exitCode := 0
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		} else {
			// Spawn failed: executable missing, permission denied, etc.
			return &Result{
				ExitCode:  LaunchFailureCode,
				Lines:     []string{fmt.Sprintf("watchcmd: %v", err)},
				StartedAt: started,
				Elapsed:   elapsed,
			}
		}
	}

	return &Result{
		ExitCode:  exitCode,
		Lines:     combineOutput(stdout.Bytes(), stderr.Bytes()),
		StartedAt: started,
		Elapsed:   elapsed,
	}
}

// combineOutput concatenates stdout and stderr (stderr after a line break
// when non-empty) and splits into lines, trimming a single trailing newline.
func combineOutput(stdout, stderr []byte) []string {
	combined := stdout
	if len(stderr) > 0 {
		if len(combined) > 0 && combined[len(combined)-1] != '\n' {
			combined = append(combined, '\n')
		}
		combined = append(combined, stderr...)
	}

	text := strings.TrimSuffix(string(combined), "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}
