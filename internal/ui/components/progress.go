package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathpaper/internal/ui/theme"
)

// ProgressBar shows how far through a run of questions the learner is,
// e.g. "Q 7/30 ███████░░░░ 3 ✓".
type ProgressBar struct {
	Done    int
	Total   int
	Correct int
	Width   int
}

// Percent returns the completed fraction in [0, 1].
func (p ProgressBar) Percent() float64 {
	if p.Total <= 0 {
		return 0
	}
	return min(max(float64(p.Done)/float64(p.Total), 0), 1)
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	label := lipgloss.NewStyle().Foreground(theme.Ink).
		Render(fmt.Sprintf("Q %d/%d", min(p.Done+1, p.Total), p.Total))
	score := lipgloss.NewStyle().Foreground(theme.Right).
		Render(fmt.Sprintf("%d ✓", p.Correct))

	barWidth := max(p.Width-lipgloss.Width(label)-lipgloss.Width(score)-4, 4)
	filled := int(float64(barWidth) * p.Percent())

	bar := lipgloss.NewStyle().Background(theme.Progress).Render(strings.Repeat(" ", filled)) +
		lipgloss.NewStyle().Background(theme.Ruling).Render(strings.Repeat(" ", barWidth-filled))

	return label + "  " + bar + "  " + score
}
