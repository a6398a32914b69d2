package controller

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "plate.dev/pkg/plate/internal/model"
)

var (
	summaryTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	summaryBoxStyle   = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("42")).
				Padding(0, 1)
	stepStyle = lipgloss.NewStyle().Faint(true)
)

// SimpleUI implements UI using cobra Command's output stream.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayStep prints a progress line for one workflow step.
func (s *SimpleUI) DisplayStep(ctx context.Context, format string, args ...any) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("%s\n", stepStyle.Render(fmt.Sprintf(format, args...)))
}

// DisplayPostCommand reports the outcome of a post-scaffold command.
func (s *SimpleUI) DisplayPostCommand(ctx context.Context, command string, output string, err error) {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return
	}

	if err != nil {
		s.printf("post command %q failed: %v\n", command, err)
	} else {
		s.printf("post command %q completed\n", command)
	}

	if trimmed := strings.TrimSpace(output); trimmed != "" {
		s.printf("%s\n", trimmed)
	}
}

// DisplayTokens prints the recognized tokens and their resolved values.
func (s *SimpleUI) DisplayTokens(ctx context.Context, set m.Substitutions) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("\n%s", renderTokenTable(set))

	return nil
}

func renderTokenTable(set m.Substitutions) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Token", "Value"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, sub := range set {
		value := sub.Value
		if value == "" {
			value = "(unset)"
		}

		table.Append([]string{string(sub.Token), value})
	}

	table.Render()

	return tableBuffer.String()
}

// DisplaySummary prints the completed scaffold summary.
func (s *SimpleUI) DisplaySummary(ctx context.Context, summary m.Summary) {
	if err := ctx.Err(); err != nil {
		return
	}

	lines := []string{
		summaryTitleStyle.Render(fmt.Sprintf("%s is ready", summary.Project)),
		fmt.Sprintf("destination  %s", summary.Destination),
		fmt.Sprintf("template     %s", summary.Template),
	}

	if summary.Platform != "" {
		lines = append(lines, fmt.Sprintf("platform     %s", summary.Platform))
	}

	s.printf("%s\n", summaryBoxStyle.Render(strings.Join(lines, "\n")))
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

var _ UI = (*SimpleUI)(nil)
