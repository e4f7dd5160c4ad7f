// Package practice runs an interactive answering session over a generated
// paper.
package practice

import (
	"context"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathpaper/internal/problemgen"
	"github.com/abhisek/mathpaper/internal/ui/components"
)

type phase int

const (
	phaseAnswering phase = iota
	phaseFeedback
	phaseSummary
)

// Result is the outcome of one answered question.
type Result struct {
	Question problemgen.Question
	Given    string
	Correct  bool
	Elapsed  time.Duration
}

// Summary totals a session.
type Summary struct {
	Total    int
	Answered int
	Correct  int
	Duration time.Duration
}

// Accuracy returns the share of answered questions that were correct.
func (s Summary) Accuracy() float64 {
	if s.Answered == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Answered)
}

type item struct {
	q     problemgen.Question
	block string
}

// Model is the Bubble Tea model of a practice session.
type Model struct {
	title   string
	items   []item
	idx     int
	phase   phase
	input   components.AnswerInput
	results []Result

	started  time.Time
	asked    time.Time
	finished time.Time
	now      func() time.Time

	width  int
	height int
}

var _ tea.Model = Model{}

// New creates a session over every question of blocks, in paper order.
func New(title string, blocks []problemgen.GeneratedBlock) Model {
	var items []item
	for _, b := range blocks {
		for _, q := range b.Questions {
			items = append(items, item{q: q, block: b.Config.Title})
		}
	}
	m := Model{
		title: title,
		items: items,
		input: components.NewAnswerInput("Type your answer...", 24),
		now:   time.Now,
	}
	if len(items) == 0 {
		m.phase = phaseSummary
	}
	return m
}

func (m Model) Init() tea.Cmd {
	return m.input.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			return m.finish(), tea.Quit
		}
		return m.handleKey(msg)
	}

	if m.phase == phaseAnswering {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	m = m.start()

	switch m.phase {
	case phaseAnswering:
		switch msg.String() {
		case "enter":
			return m.submit(), nil
		case "esc":
			return m.finish(), nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd

	case phaseFeedback:
		if msg.String() == "esc" {
			return m.finish(), nil
		}
		return m.advance(), nil

	default:
		switch msg.String() {
		case "enter", "esc", "q":
			return m, tea.Quit
		}
	}
	return m, nil
}

// start stamps the session and first question on the first key press.
func (m Model) start() Model {
	if m.started.IsZero() {
		m.started = m.now()
		m.asked = m.started
	}
	return m
}

func (m Model) submit() Model {
	given := m.input.Value()
	if given == "" {
		return m
	}
	q := m.items[m.idx].q
	ok := problemgen.CheckAnswer(given, q.Answer)
	now := m.now()
	m.results = append(m.results, Result{
		Question: q,
		Given:    given,
		Correct:  ok,
		Elapsed:  now.Sub(m.asked),
	})
	m.input.Submit(ok)
	m.phase = phaseFeedback
	return m
}

func (m Model) advance() Model {
	m.idx++
	if m.idx >= len(m.items) {
		return m.finish()
	}
	m.input.Reset()
	m.asked = m.now()
	m.phase = phaseAnswering
	return m
}

func (m Model) finish() Model {
	if m.phase != phaseSummary {
		m.finished = m.now()
		m.phase = phaseSummary
	}
	return m
}

// Results returns the answered questions in order.
func (m Model) Results() []Result {
	return m.results
}

// Summary totals the session so far.
func (m Model) Summary() Summary {
	s := Summary{Total: len(m.items), Answered: len(m.results)}
	for _, r := range m.results {
		if r.Correct {
			s.Correct++
		}
	}
	if !m.started.IsZero() {
		end := m.finished
		if end.IsZero() {
			end = m.now()
		}
		s.Duration = end.Sub(m.started)
	}
	return s
}

// Done reports whether the session reached its summary.
func (m Model) Done() bool {
	return m.phase == phaseSummary
}

// Run starts the session in the terminal and returns its summary.
func Run(ctx context.Context, title string, blocks []problemgen.GeneratedBlock) (Summary, error) {
	p := tea.NewProgram(New(title, blocks), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		return Summary{}, fmt.Errorf("run practice: %w", err)
	}
	return final.(Model).Summary(), nil
}
