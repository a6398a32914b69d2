package controller

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ErrPromptCanceled is returned when the user aborts an interactive prompt.
var ErrPromptCanceled = errors.New("prompt canceled")

// Prompter asks the user for a missing substitution value. Implementations
// are only consulted on an interactive terminal; non-interactive runs treat
// missing values as errors instead.
type Prompter interface {
	// Ask poses a question and returns the trimmed answer. An empty answer
	// yields fallback.
	Ask(ctx context.Context, question string, fallback string) (string, error)
}

// TextPrompter implements Prompter with a Bubble Tea text input.
type TextPrompter struct {
	input  io.Reader
	output io.Writer
}

// NewTextPrompter creates a TextPrompter reading from input and rendering to
// output (usually stdin/stdout).
func NewTextPrompter(input io.Reader, output io.Writer) *TextPrompter {
	return &TextPrompter{input: input, output: output}
}

// Ask runs a single-question prompt program.
func (p *TextPrompter) Ask(ctx context.Context, question string, fallback string) (string, error) {
	program := tea.NewProgram(
		newAskModel(question, fallback),
		tea.WithContext(ctx),
		tea.WithInput(p.input),
		tea.WithOutput(p.output),
	)

	final, err := program.Run()
	if err != nil {
		return "", err
	}

	model, ok := final.(askModel)
	if !ok || model.canceled {
		return "", ErrPromptCanceled
	}

	answer := strings.TrimSpace(model.input.Value())
	if answer == "" {
		return fallback, nil
	}

	return answer, nil
}

var questionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("36"))

type askModel struct {
	question string
	input    textinput.Model
	done     bool
	canceled bool
}

func newAskModel(question string, fallback string) askModel {
	input := textinput.New()
	input.Placeholder = fallback
	input.Focus()

	return askModel{question: question, input: input}
}

func (m askModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m askModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEnter:
			m.done = true
			return m, tea.Quit
		case tea.KeyCtrlC, tea.KeyEsc:
			m.canceled = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd

	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

func (m askModel) View() string {
	if m.done || m.canceled {
		return ""
	}

	return questionStyle.Render(m.question) + "\n" + m.input.View() + "\n"
}

var _ Prompter = (*TextPrompter)(nil)
