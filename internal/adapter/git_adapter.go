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

// GitAdapter abstracts the version-control client used to obtain template
// trees. The network protocol itself is the client's problem; this adapter
// only orchestrates the subprocess.
type GitAdapter interface {
	// Clone performs a shallow clone of url into dest.
	Clone(ctx context.Context, url string, dest m.Path) error

	// UserName returns the client's configured user name, or an empty
	// string when none is set.
	UserName(ctx context.Context) (string, error)
}

// LocalGitAdapter provides a concrete implementation using os/exec.
type LocalGitAdapter struct {
	timeout time.Duration
}

// NewLocalGitAdapter constructs a LocalGitAdapter with a default 2m timeout
// for clones.
func NewLocalGitAdapter() *LocalGitAdapter {
	return &LocalGitAdapter{
		timeout: 2 * time.Minute,
	}
}

// Clone performs a shallow clone of url into dest.
func (a *LocalGitAdapter) Clone(ctx context.Context, url string, dest m.Path) error {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "git", "clone", "--depth", "1", url, string(dest))

	var stderr bytes.Buffer

	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("git clone %s: %w: %s", url, err, strings.TrimSpace(stderr.String()))
	}

	return nil
}

// UserName returns the git-configured user name.
func (a *LocalGitAdapter) UserName(ctx context.Context) (string, error) {
	cmd := exec.CommandContext(ctx, "git", "config", "user.name")

	var stdout bytes.Buffer

	cmd.Stdout = &stdout

	// git exits non-zero when the key is unset; treat that as "no name".
	if err := cmd.Run(); err != nil {
		return "", nil
	}

	return strings.TrimSpace(stdout.String()), nil
}

var _ GitAdapter = (*LocalGitAdapter)(nil)
