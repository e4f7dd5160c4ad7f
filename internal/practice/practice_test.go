package practice

import (
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mathpaper/internal/problemgen"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func typeString(m Model, s string) Model {
	for _, r := range s {
		next, _ := m.Update(keyPress(r))
		m = next.(Model)
	}
	return m
}

func press(m Model, msg tea.KeyPressMsg) (Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func testBlocks() []problemgen.GeneratedBlock {
	return []problemgen.GeneratedBlock{
		{
			Config: problemgen.BlockConfig{Title: "Addition"},
			Questions: []problemgen.Question{
				{ID: 1, Text: "3\n+ 4", Operator: "+", Answer: problemgen.IntAnswer(7), Orientation: problemgen.Vertical},
			},
		},
		{
			Config: problemgen.BlockConfig{Title: "Multiplication"},
			Questions: []problemgen.Question{
				{ID: 2, Text: "6 × 7 =", Operator: "×", Answer: problemgen.IntAnswer(42), Orientation: problemgen.Horizontal},
			},
		},
	}
}

func testModel() (Model, *fakeClock) {
	clock := &fakeClock{t: time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)}
	m := New("AB-1 Practice Paper", testBlocks())
	m.now = clock.now
	return m, clock
}

func TestNew_FlattensBlocks(t *testing.T) {
	m, _ := testModel()
	require.Len(t, m.items, 2)
	assert.Equal(t, "Addition", m.items[0].block)
	assert.Equal(t, 2, m.items[1].q.ID)
	assert.False(t, m.Done())
	assert.Equal(t, 2, m.Summary().Total)
}

func TestNew_EmptyIsDone(t *testing.T) {
	m := New("Empty", nil)
	assert.True(t, m.Done())
	assert.Equal(t, Summary{}, m.Summary())
}

func TestSession_FullRun(t *testing.T) {
	m, clock := testModel()

	m = typeString(m, "7")
	clock.advance(3 * time.Second)
	m, _ = press(m, specialKey(tea.KeyEnter))

	require.Len(t, m.Results(), 1)
	assert.True(t, m.Results()[0].Correct)
	assert.Equal(t, "7", m.Results()[0].Given)
	assert.Equal(t, 3*time.Second, m.Results()[0].Elapsed)
	assert.Equal(t, phaseFeedback, m.phase)

	// Any key moves on from feedback.
	m, _ = press(m, keyPress(' '))
	assert.Equal(t, phaseAnswering, m.phase)
	assert.Equal(t, 1, m.idx)
	assert.Empty(t, m.input.Value())

	m = typeString(m, "41")
	clock.advance(2 * time.Second)
	m, _ = press(m, specialKey(tea.KeyEnter))
	require.Len(t, m.Results(), 2)
	assert.False(t, m.Results()[1].Correct)
	assert.Equal(t, 2*time.Second, m.Results()[1].Elapsed)

	m, _ = press(m, specialKey(tea.KeyEnter))
	assert.True(t, m.Done())

	s := m.Summary()
	assert.Equal(t, Summary{Total: 2, Answered: 2, Correct: 1, Duration: 5 * time.Second}, s)
	assert.InDelta(t, 0.5, s.Accuracy(), 1e-9)

	_, cmd := press(m, specialKey(tea.KeyEnter))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestSession_EmptySubmitIgnored(t *testing.T) {
	m, _ := testModel()
	m, _ = press(m, specialKey(tea.KeyEnter))
	assert.Empty(t, m.Results())
	assert.Equal(t, phaseAnswering, m.phase)
}

func TestSession_FiltersNonAnswerKeys(t *testing.T) {
	m, _ := testModel()
	m = typeString(m, "x7z")
	assert.Equal(t, "7", m.input.Value())
}

func TestSession_YesNoAnswers(t *testing.T) {
	m := New("Checks", []problemgen.GeneratedBlock{{
		Questions: []problemgen.Question{
			{ID: 1, Text: "Is 12 divisible by 3?", Answer: problemgen.Answer{Type: problemgen.AnswerTypeYesNo, Num: 1, Den: 1}, Orientation: problemgen.Horizontal},
		},
	}})
	m = typeString(m, "yes")
	m, _ = press(m, specialKey(tea.KeyEnter))
	require.Len(t, m.Results(), 1)
	assert.True(t, m.Results()[0].Correct)
}

func TestSession_EscFinishesEarly(t *testing.T) {
	m, clock := testModel()
	m = typeString(m, "7")
	clock.advance(time.Second)
	m, _ = press(m, specialKey(tea.KeyEnter))
	m, _ = press(m, specialKey(tea.KeyEscape))

	assert.True(t, m.Done())
	s := m.Summary()
	assert.Equal(t, 2, s.Total)
	assert.Equal(t, 1, s.Answered)
	assert.Equal(t, 1, s.Correct)
	assert.Equal(t, time.Second, s.Duration)

	// Duration is frozen once finished.
	clock.advance(time.Minute)
	assert.Equal(t, time.Second, m.Summary().Duration)
}

func TestSession_CtrlCQuits(t *testing.T) {
	m, _ := testModel()
	m, cmd := press(m, tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	assert.True(t, m.Done())
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestSession_WindowSize(t *testing.T) {
	m, _ := testModel()
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = next.(Model)
	assert.Equal(t, 100, m.width)
	assert.Equal(t, 30, m.height)
}

func TestRenderQuestion(t *testing.T) {
	m, _ := testModel()
	out := m.renderQuestion(80)
	assert.Contains(t, out, "Q 1/2")
	assert.Contains(t, out, "Addition")
	assert.Contains(t, out, "+ 4")
	assert.NotContains(t, out, "The answer is")

	m = typeString(m, "8")
	m, _ = press(m, specialKey(tea.KeyEnter))
	out = m.renderQuestion(80)
	assert.Contains(t, out, "Not quite.")
	assert.Contains(t, out, "The answer is")
}

func TestQuestionText_Vertical(t *testing.T) {
	q := problemgen.Question{Text: "12\n+ 345", Orientation: problemgen.Vertical}
	assert.Equal(t, "   12\n+ 345\n─────", questionText(q))

	h := problemgen.Question{Text: "6 × 7 =", Orientation: problemgen.Horizontal}
	assert.Equal(t, "6 × 7 =", questionText(h))
}

func TestRenderSummary_ListsMissed(t *testing.T) {
	m, _ := testModel()
	m = typeString(m, "9")
	m, _ = press(m, specialKey(tea.KeyEnter))
	m, _ = press(m, specialKey(tea.KeyEscape))

	out := m.renderSummary(80)
	assert.Contains(t, out, "Session complete")
	assert.Contains(t, out, "Answered 1 of 2")
	assert.Contains(t, out, "To review")
	assert.Contains(t, out, "you: 9")
	assert.Contains(t, out, "answer: 7")
}

func TestKeyHints_PerPhase(t *testing.T) {
	m, _ := testModel()
	assert.Equal(t, "Submit", m.keyHints()[0].Description)
	m.phase = phaseFeedback
	assert.Equal(t, "Continue", m.keyHints()[0].Description)
	m.phase = phaseSummary
	assert.Equal(t, "Exit", m.keyHints()[0].Description)
}
