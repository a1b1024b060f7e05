package applescript

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
)

var ErrExecution = errors.New("failed to execute AppleScript")

// Output is what osascript printed and how it exited.
type Output struct {
	Status int
	Stdout string
	Stderr string
}

func (o Output) Success() bool {
	return o.Status == 0
}

// Runner runs an AppleScript. A non-zero exit is reported through
// Output.Status; the error is for failing to start the script at all.
type Runner interface {
	Run(ctx context.Context, script string) (Output, error)
}

// OSAScript runs scripts with `osascript -e`.
type OSAScript struct {
	Path string
}

func NewOSAScript() *OSAScript {
	return &OSAScript{Path: "osascript"}
}

func (o *OSAScript) Run(ctx context.Context, script string) (Output, error) {
	cmd := exec.CommandContext(ctx, o.Path, "-e", script)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	out := Output{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	var exitErr *exec.ExitError
	switch {
	case err == nil:
	case errors.As(err, &exitErr):
		out.Status = exitErr.ExitCode()
		if out.Status < 0 {
			out.Status = 1
		}
	default:
		return out, fmt.Errorf("%w: %w", ErrExecution, err)
	}

	slog.Debug("osascript finished", slog.Int("status", out.Status), slog.Int("stdout", len(out.Stdout)))
	return out, nil
}
