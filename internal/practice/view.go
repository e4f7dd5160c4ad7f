package practice

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathpaper/internal/problemgen"
	"github.com/abhisek/mathpaper/internal/ui/components"
	"github.com/abhisek/mathpaper/internal/ui/layout"
	"github.com/abhisek/mathpaper/internal/ui/theme"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	width, height := m.width, m.height
	if width == 0 || height == 0 {
		width, height = defaultWidth, defaultHeight
	}
	if layout.IsTooSmall(width, height) {
		v.SetContent(layout.RenderMinSizeMessage(width, height))
		return v
	}

	s := m.Summary()
	h := layout.Header{Title: m.title, Correct: s.Correct, Total: s.Total}
	if m.phase != phaseSummary {
		h.Block = m.items[m.idx].block
	}
	header := layout.RenderHeader(h, width)
	footer := layout.RenderFooter(m.keyHints(), width)

	var content string
	switch m.phase {
	case phaseSummary:
		content = m.renderSummary(width)
	default:
		content = m.renderQuestion(width)
	}

	v.SetContent(layout.RenderFrame(header, content, footer, width, height))
	return v
}

func (m Model) keyHints() []layout.KeyHint {
	switch m.phase {
	case phaseFeedback:
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
			{Key: "Esc", Description: "Finish"},
		}
	case phaseSummary:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Exit"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Finish"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (m Model) renderQuestion(width int) string {
	it := m.items[m.idx]
	s := m.Summary()

	var b strings.Builder
	bar := components.ProgressBar{Done: m.idx, Total: s.Total, Correct: s.Correct, Width: width - 4}
	b.WriteString("  " + bar.View())
	b.WriteString("\n")
	if it.block != "" {
		b.WriteString("  " + theme.Default.BlockHeading(it.q.Type.Family(), it.block))
	}
	b.WriteString("\n\n")

	questionStyle := theme.Default.Text.
		Width(width).
		Align(lipgloss.Center).
		Bold(true)
	b.WriteString(questionStyle.Render(questionText(it.q)))
	b.WriteString("\n\n")

	inputStyle := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
	b.WriteString(inputStyle.Render(m.input.View()))

	if m.phase == phaseFeedback {
		b.WriteString("\n\n")
		b.WriteString(inputStyle.Render(m.renderFeedback()))
	}
	return b.String()
}

// questionText draws a rule under stacked operands so the sum reads like
// the printed worksheet.
func questionText(q problemgen.Question) string {
	if q.Orientation != problemgen.Vertical {
		return q.Text
	}
	lines := strings.Split(q.Text, "\n")
	w := 0
	for _, l := range lines {
		w = max(w, lipgloss.Width(l))
	}
	for i, l := range lines {
		lines[i] = fmt.Sprintf("%*s", w, l)
	}
	return strings.Join(append(lines, strings.Repeat("─", w)), "\n")
}

func (m Model) renderFeedback() string {
	last := m.results[len(m.results)-1]
	st := theme.Default
	if last.Correct {
		return st.Right.Render("Correct!")
	}
	return st.Wrong.Render("Not quite.") + " " +
		st.Text.Render("The answer is ") + st.Key.Render(last.Question.Answer.String())
}

func (m Model) renderSummary(width int) string {
	s := m.Summary()
	st := theme.Default

	lines := []string{
		st.Title.Render("Session complete"),
		"",
		st.Text.Render(fmt.Sprintf("Answered %d of %d", s.Answered, s.Total)),
		st.Right.Render(fmt.Sprintf("Correct %d", s.Correct)),
	}
	if s.Answered > 0 {
		lines = append(lines, st.Text.Render(fmt.Sprintf("Accuracy %.0f%%", s.Accuracy()*100)))
	}
	if s.Duration > 0 {
		lines = append(lines, st.Hint.Render("Time "+s.Duration.Round(time.Second).String()))
	}

	var missed []string
	for _, r := range m.results {
		if !r.Correct {
			missed = append(missed, fmt.Sprintf("%d) %s  you: %s  answer: %s",
				r.Question.ID, strings.ReplaceAll(r.Question.Text, "\n", " "), r.Given, r.Question.Answer))
		}
	}
	if len(missed) > 0 {
		lines = append(lines, "", st.Heading.Render("To review"))
		for _, l := range missed {
			lines = append(lines, st.Wrong.Render(l))
		}
	}
	return "\n" + layout.Center(strings.Join(lines, "\n"), width)
}
