// Package worksheet renders generated papers as printable text.
package worksheet

import (
	"fmt"
	"io"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathpaper/internal/paper"
	"github.com/abhisek/mathpaper/internal/problemgen"
	"github.com/abhisek/mathpaper/internal/ui/layout"
	"github.com/abhisek/mathpaper/internal/ui/theme"
)

const (
	minCellWidth = 10
	keyColumns   = 5
)

// Options controls rendering.
type Options struct {
	// Answers appends the answer key after the questions.
	Answers bool
	// Plain disables colors and text attributes.
	Plain bool
	// Width overrides the page width picked from the paper orientation.
	Width int
}

// Render writes the worksheet of p to w.
func Render(w io.Writer, p *paper.Preview, opts Options) error {
	_, err := io.WriteString(w, String(p, opts))
	return err
}

// String renders the worksheet of p.
func String(p *paper.Preview, opts Options) string {
	width := opts.Width
	if width <= 0 {
		width = layout.PageWidth(p.Config.Orientation == paper.Landscape)
	}
	st := theme.New(opts.Plain)

	var b strings.Builder
	b.WriteString(layout.Center(st.Title.Render(p.Config.Title), width))
	b.WriteString("\n")
	b.WriteString(layout.Center(st.Meta.Render(fmt.Sprintf("%s · %d questions · seed %d",
		p.Config.Level, p.QuestionCount(), p.Seed)), width))
	b.WriteString("\n")
	b.WriteString(layout.Center(st.Meta.Render("Name: ____________________   Date: __________"), width))
	b.WriteString("\n")

	for i, block := range p.Blocks {
		b.WriteString("\n")
		b.WriteString(st.BlockHeading(block.Config.Type.Family(), blockHeading(i, block)))
		b.WriteString("\n")
		b.WriteString(st.Rule.Render(layout.Rule(width)))
		b.WriteString("\n")
		b.WriteString(renderBlock(block.Questions, width, st))
	}

	if opts.Answers {
		b.WriteString("\n")
		b.WriteString(AnswerKey(p.Blocks, width, opts.Plain))
	}
	return b.String()
}

// AnswerKey renders the answers of every question in ID order.
func AnswerKey(blocks []problemgen.GeneratedBlock, width int, plain bool) string {
	st := theme.New(plain)

	var entries []string
	cellWidth := minCellWidth
	for _, block := range blocks {
		for _, q := range block.Questions {
			e := fmt.Sprintf("%d) %s", q.ID, q.Answer)
			entries = append(entries, e)
			cellWidth = max(cellWidth, lipgloss.Width(e)+3)
		}
	}

	cols := layout.Columns(width, cellWidth, keyColumns)

	var b strings.Builder
	b.WriteString(st.Heading.Render("Answer Key"))
	b.WriteString("\n")
	b.WriteString(st.Rule.Render(layout.Rule(width)))
	b.WriteString("\n")
	for i, e := range entries {
		b.WriteString(st.Key.Render(fmt.Sprintf("%-*s", cellWidth, e)))
		if (i+1)%cols == 0 || i == len(entries)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func blockHeading(i int, block problemgen.GeneratedBlock) string {
	title := block.Config.Title
	if title == "" {
		title = paper.TypeTitle(block.Config.Type)
	}
	return fmt.Sprintf("Block %d · %s (%d)", i+1, title, len(block.Questions))
}

func renderBlock(questions []problemgen.Question, width int, st theme.Styles) string {
	var b strings.Builder
	var vertical []problemgen.Question
	flush := func() {
		if len(vertical) > 0 {
			b.WriteString(renderGrid(vertical, width, st))
			vertical = nil
		}
	}
	for _, q := range questions {
		if q.Orientation == problemgen.Vertical {
			vertical = append(vertical, q)
			continue
		}
		flush()
		b.WriteString(renderInline(q, st))
		b.WriteString("\n")
	}
	flush()
	return b.String()
}

// renderInline renders a horizontal question with an answer blank.
func renderInline(q problemgen.Question, st theme.Styles) string {
	return st.Number.Render(fmt.Sprintf("%3d.", q.ID)) + " " +
		st.Text.Render(q.Text) + " " +
		st.Rule.Render("__________")
}

// renderGrid lays vertical questions out in columns, each operand right
// aligned above an answer rule.
func renderGrid(questions []problemgen.Question, width int, st theme.Styles) string {
	cellWidth := minCellWidth
	for _, q := range questions {
		for _, line := range strings.Split(q.Text, "\n") {
			cellWidth = max(cellWidth, lipgloss.Width(line)+4)
		}
	}

	cells := make([]string, len(questions))
	for i, q := range questions {
		cells[i] = renderCell(q, cellWidth, st)
	}
	return layout.Grid(cells, layout.Columns(width, cellWidth, 0)) + "\n"
}

func renderCell(q problemgen.Question, width int, st theme.Styles) string {
	inner := width - 2
	lines := []string{st.Number.Render(fmt.Sprintf("%d.", q.ID))}
	for _, line := range strings.Split(q.Text, "\n") {
		lines = append(lines, st.Text.Render(fmt.Sprintf("%*s", inner, line)))
	}
	lines = append(lines, st.Rule.Render(layout.Rule(inner)), "")
	return lipgloss.NewStyle().Width(width).Render(strings.Join(lines, "\n"))
}
