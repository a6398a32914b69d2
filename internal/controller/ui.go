// Package controller provides output and prompt adapters for the plate CLI.
package controller

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "plate.dev/pkg/plate/internal/model"
)

// UI defines the interface for reporting scaffold progress and results.
// Implementations can use different output methods (plain text, styled).
type UI interface {
	DisplayStep(ctx context.Context, format string, args ...any)
	DisplayPostCommand(ctx context.Context, command string, output string, err error)
	DisplayTokens(ctx context.Context, set m.Substitutions) error
	DisplaySummary(ctx context.Context, summary m.Summary)
}

// NewUI creates the UI implementation for the given command.
func NewUI(cmd *cobra.Command) UI {
	return NewSimpleUI(cmd)
}

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
