package adapter

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	m "plate.dev/pkg/plate/internal/model"
)

// CommandRunner abstracts execution of post-scaffold commands declared by a
// template (dependency-manager invocations, `git init`, and the like).
type CommandRunner interface {
	// Run executes a command line in workDir and returns the combined
	// stdout/stderr output. Commands are split on whitespace; no shell is
	// involved.
	Run(ctx context.Context, workDir m.Path, command string) (output string, err error)
}

// LocalCommandRunner provides a concrete implementation using os/exec.
type LocalCommandRunner struct {
	timeout time.Duration
}

// NewLocalCommandRunner constructs a LocalCommandRunner with the given
// per-command timeout.
func NewLocalCommandRunner(timeout time.Duration) *LocalCommandRunner {
	return &LocalCommandRunner{
		timeout: timeout,
	}
}

// Run executes a single post-scaffold command in workDir.
func (a *LocalCommandRunner) Run(ctx context.Context, workDir m.Path, command string) (string, error) {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return "", fmt.Errorf("empty command")
	}

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	// #nosec G204 - the command comes from the template manifest the user chose to scaffold from
	cmd := exec.CommandContext(ctx, fields[0], fields[1:]...)
	cmd.Dir = string(workDir)

	var stdout, stderr bytes.Buffer

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	output := stdout.String() + stderr.String()

	return output, err
}

var _ CommandRunner = (*LocalCommandRunner)(nil)
