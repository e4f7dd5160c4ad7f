// Package layout arranges the practice screen and printed worksheet pages.
package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathpaper/internal/ui/theme"
)

// Smallest terminal the practice screen draws in.
const (
	MinWidth  = 60
	MinHeight = 16
)

// Printed page widths in columns.
const (
	PortraitWidth  = 80
	LandscapeWidth = 120
)

// KeyHint is one key binding shown in the practice footer.
type KeyHint struct {
	Key         string
	Description string
}

// IsTooSmall reports whether the terminal is below MinWidth x MinHeight.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage asks for a larger terminal.
func RenderMinSizeMessage(width, height int) string {
	return lipgloss.NewStyle().
		Align(lipgloss.Center).
		Foreground(theme.Ink).
		Width(width).
		Height(height).
		Render(fmt.Sprintf(
			"Practice needs at least %d x %d\n(now %d x %d)\n\nResize the terminal or press Ctrl+C.",
			MinWidth, MinHeight, width, height,
		))
}

// Header is the practice title bar: paper title, current block and score.
type Header struct {
	Title   string
	Block   string
	Correct int
	Total   int
}

// Score formats the running score shown at the right of the header.
func (h Header) Score() string {
	return fmt.Sprintf("✓ %d/%d", h.Correct, h.Total)
}

// RenderHeader renders h inside a bordered bar.
func RenderHeader(h Header, width int) string {
	left := lipgloss.NewStyle().Foreground(theme.Brand).Bold(true).Render("  mathpaper")

	title := h.Title
	if h.Block != "" {
		title += " · " + h.Block
	}
	center := lipgloss.NewStyle().Foreground(theme.Ink).Render(title)
	right := lipgloss.NewStyle().Foreground(theme.KeyInk).Render(h.Score() + "  ")

	inner := max(width-4, 0)
	leftGap := max((inner-lipgloss.Width(center))/2-lipgloss.Width(left), 1)
	rightGap := max(inner-lipgloss.Width(left)-leftGap-lipgloss.Width(center)-lipgloss.Width(right), 1)

	return bar(width).Render(left + strings.Repeat(" ", leftGap) + center + strings.Repeat(" ", rightGap) + right)
}

// RenderFooter renders the key hints of the current phase.
func RenderFooter(hints []KeyHint, width int) string {
	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts,
			lipgloss.NewStyle().Foreground(theme.Ink).Bold(true).Render(h.Key)+" "+
				lipgloss.NewStyle().Foreground(theme.Pencil).Render(h.Description))
	}
	return bar(width).Render("  " + strings.Join(parts, "   "))
}

func bar(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Width(width).
		Background(theme.Panel).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Ruling)
}

// RenderFrame stacks header, content and footer, stretching the content
// to fill height.
func RenderFrame(header, content, footer string, width, height int) string {
	contentHeight := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	body := lipgloss.NewStyle().Width(width).Height(contentHeight).Render(content)
	return header + "\n" + body + "\n" + footer
}

// PageWidth returns the printed width of a page.
func PageWidth(landscape bool) int {
	if landscape {
		return LandscapeWidth
	}
	return PortraitWidth
}

// Columns returns how many cells of cellWidth fit across width: at least
// one, and no more than limit when limit is positive.
func Columns(width, cellWidth, limit int) int {
	n := 1
	if cellWidth > 0 {
		n = max(width/cellWidth, 1)
	}
	if limit > 0 {
		n = min(n, limit)
	}
	return n
}

// Grid lays cells out perRow to a line, top aligned, with a blank line
// between rows.
func Grid(cells []string, perRow int) string {
	perRow = max(perRow, 1)
	var rows []string
	for start := 0; start < len(cells); start += perRow {
		end := min(start+perRow, len(cells))
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells[start:end]...))
	}
	return strings.Join(rows, "\n\n")
}

// Center centers s across width.
func Center(s string, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, s)
}

// Rule returns a horizontal rule of width columns.
func Rule(width int) string {
	return strings.Repeat("─", max(width, 0))
}
