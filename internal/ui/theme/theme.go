// Package theme holds the colors and text roles shared by the printed
// worksheet and the practice screen.
package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathpaper/internal/problemgen"
)

// Light ink on a dark slate page.
var (
	Ink      = lipgloss.Color("#F8FAFC")
	Pencil   = lipgloss.Color("#94A3B8")
	Ruling   = lipgloss.Color("#334155")
	Panel    = lipgloss.Color("#1E293B")
	Brand    = lipgloss.Color("#8B5CF6")
	Progress = lipgloss.Color("#14B8A6")
	KeyInk   = lipgloss.Color("#F97316")
	Right    = lipgloss.Color("#22C55E")
	Wrong    = lipgloss.Color("#F43F5E")

	sky    = lipgloss.Color("#38BDF8")
	violet = lipgloss.Color("#A78BFA")
	amber  = lipgloss.Color("#FACC15")
	pink   = lipgloss.Color("#F472B6")
)

// FamilyColor returns the tint of block headings for a question family.
func FamilyColor(f problemgen.Family) color.Color {
	switch f {
	case problemgen.FamilyChained:
		return Progress
	case problemgen.FamilyMultiplyDivide:
		return sky
	case problemgen.FamilyRoots:
		return violet
	case problemgen.FamilyNumberTheory:
		return amber
	case problemgen.FamilyJunior:
		return pink
	case problemgen.FamilyVedic:
		return KeyInk
	default:
		return Ink
	}
}

// Styles is one set of text roles. The zero-attribute set from New(true)
// is used for files and pipes.
type Styles struct {
	Title   lipgloss.Style // paper title
	Meta    lipgloss.Style // level, seed and name/date lines
	Heading lipgloss.Style // block and answer key headings
	Number  lipgloss.Style // question numbers
	Text    lipgloss.Style // operands and body text
	Rule    lipgloss.Style // answer rules and separators
	Key     lipgloss.Style // answer key entries and revealed answers
	Right   lipgloss.Style
	Wrong   lipgloss.Style
	Hint    lipgloss.Style

	plain bool
}

// Default is the colored set used on a terminal.
var Default = New(false)

// New returns the colored styles, or unstyled ones when plain is set.
func New(plain bool) Styles {
	if plain {
		s := lipgloss.NewStyle()
		return Styles{
			Title: s, Meta: s, Heading: s, Number: s, Text: s,
			Rule: s, Key: s, Right: s, Wrong: s, Hint: s,
			plain: true,
		}
	}
	return Styles{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(Brand),
		Meta:    lipgloss.NewStyle().Foreground(Pencil),
		Heading: lipgloss.NewStyle().Bold(true).Foreground(Progress),
		Number:  lipgloss.NewStyle().Foreground(Pencil).Italic(true),
		Text:    lipgloss.NewStyle().Foreground(Ink),
		Rule:    lipgloss.NewStyle().Foreground(Ruling),
		Key:     lipgloss.NewStyle().Foreground(KeyInk),
		Right:   lipgloss.NewStyle().Foreground(Right).Bold(true),
		Wrong:   lipgloss.NewStyle().Foreground(Wrong).Bold(true),
		Hint:    lipgloss.NewStyle().Foreground(Pencil).Italic(true),
	}
}

// Plain reports whether s renders bare text.
func (s Styles) Plain() bool { return s.plain }

// BlockHeading renders a block heading tinted by the family of its
// questions.
func (s Styles) BlockHeading(f problemgen.Family, text string) string {
	if s.plain {
		return text
	}
	return s.Heading.Foreground(FamilyColor(f)).Render(text)
}
