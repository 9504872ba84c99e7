package runner

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"time"
)

// waitDelay bounds how long Wait blocks on inherited pipes after the
// analyzer is killed.
const waitDelay = 5 * time.Second

// ExecResult is what an analyzer process left behind.
type ExecResult struct {
	ExitCode int
	Stdout   []byte
	Stderr   []byte
}

// Executor runs an external program to completion.
// A non-nil error means the program could not be run at all; a program that
// ran and exited non-zero is reported through ExitCode.
type Executor interface {
	Execute(ctx context.Context, name string, args ...string) (ExecResult, error)
}

// ExecFunc adapts a plain function to Executor.
type ExecFunc func(ctx context.Context, name string, args ...string) (ExecResult, error)

// Execute calls f.
func (f ExecFunc) Execute(ctx context.Context, name string, args ...string) (ExecResult, error) {
	return f(ctx, name, args...)
}

// OSExecutor runs programs with os/exec.
type OSExecutor struct{}

// Execute starts the program, waits for it and captures both streams.
func (OSExecutor) Execute(ctx context.Context, name string, args ...string) (ExecResult, error) {
	var stdout, stderr bytes.Buffer

	c := exec.CommandContext(ctx, name, args...)
	c.Stdout = &stdout
	c.Stderr = &stderr
	c.WaitDelay = waitDelay

	err := c.Run()
	res := ExecResult{
		Stdout: stdout.Bytes(),
		Stderr: stderr.Bytes(),
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		res.ExitCode = exitErr.ExitCode()
		return res, nil
	}
	if err != nil {
		return res, err
	}
	return res, nil
}
