package components

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathpaper/internal/ui/theme"
)

// answerRunes are the characters an answer can contain: digits, signs,
// decimal points, fraction bars and the letters of yes/no.
const answerRunes = "0123456789-./yesnoYESNO"

// AnswerInput wraps bubbles/textinput for typing worksheet answers.
type AnswerInput struct {
	Model     textinput.Model
	submitted bool
	valid     bool
}

// NewAnswerInput creates a new focused answer input.
func NewAnswerInput(placeholder string, maxWidth int) AnswerInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()

	if maxWidth > 0 {
		ti.CharLimit = maxWidth
	}

	return AnswerInput{Model: ti}
}

// Init returns the initial command.
func (t AnswerInput) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update handles messages. Printable keys outside the answer alphabet are
// dropped.
func (t AnswerInput) Update(msg tea.Msg) (AnswerInput, tea.Cmd) {
	if t.submitted {
		return t, nil
	}
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		if text := kmsg.Text; text != "" && strings.Trim(text, answerRunes) != "" {
			return t, nil
		}
	}

	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the text input.
func (t AnswerInput) View() string {
	view := t.Model.View()
	if t.submitted {
		if t.valid {
			view += " " + lipgloss.NewStyle().Foreground(theme.Right).Render("✓")
		} else {
			view += " " + lipgloss.NewStyle().Foreground(theme.Wrong).Render("✗")
		}
	}
	return view
}

// Value returns the current input value.
func (t AnswerInput) Value() string {
	return t.Model.Value()
}

// Submitted reports whether Submit has been called since the last Reset.
func (t AnswerInput) Submitted() bool {
	return t.submitted
}

// Submit marks the input as submitted with a validation result.
func (t *AnswerInput) Submit(valid bool) {
	t.submitted = true
	t.valid = valid
}

// Reset clears the value and the submitted state.
func (t *AnswerInput) Reset() {
	t.Model.Reset()
	t.submitted = false
	t.valid = false
}
