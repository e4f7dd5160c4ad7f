package problemgen

import (
	"errors"
	"fmt"
)

// errUnsatisfiable is returned by synthesis functions whose draw cannot
// meet the type's rules. It never leaves the package.
var errUnsatisfiable = errors.New("problemgen: draw not satisfiable")

// retryStride separates the streams of consecutive synthesis attempts.
const retryStride = 104729

// Synthesize builds the question for one slot using the default config.
// It is total for every valid type and representable width; errors are an
// *UnsupportedTypeError or a *WidthError.
func Synthesize(slot int, t QuestionType, c Constraints, seed int64) (Question, error) {
	return New(DefaultConfig()).Synthesize(slot, t, c, seed)
}

// SynthesizeWithStream is Synthesize over a caller-supplied stream. Every
// attempt reads from the same stream.
func SynthesizeWithStream(slot int, t QuestionType, c Constraints, s Stream) (Question, error) {
	return New(DefaultConfig()).SynthesizeWithStream(slot, t, c, s)
}

// Synthesize builds the question for one slot. Attempt k reads from the
// stream seeded with seed + k·104729.
func (a *Assembler) Synthesize(slot int, t QuestionType, c Constraints, seed int64) (Question, error) {
	streams := func(k int) Stream {
		return NewSeededStream(seed+int64(k)*retryStride, int64(slot))
	}
	return a.synthesizeType(slot, t, c, seed, streams)
}

func (a *Assembler) SynthesizeWithStream(slot int, t QuestionType, c Constraints, s Stream) (Question, error) {
	if s == nil {
		s = AmbientStream()
	}
	return a.synthesizeType(slot, t, c, 0, func(int) Stream { return s })
}

func (a *Assembler) synthesizeType(slot int, t QuestionType, c Constraints, seed int64, streams func(int) Stream) (Question, error) {
	s, err := lookup(t)
	if err != nil {
		return Question{}, err
	}
	p, err := Resolve(t, c)
	if err != nil {
		return Question{}, err
	}
	return a.synthesizeTotal(slot, slot, t, s, p, seed, streams), nil
}

// synthesizeTotal substitutes a minimal question, keyed by index, when even
// the fallback fails.
func (a *Assembler) synthesizeTotal(slot, index int, t QuestionType, s strategy, p Params, seed int64, streams func(int) Stream) Question {
	q, ok := a.synthesize(slot, t, s, p, seed, streams)
	if !ok {
		a.log.Warn().
			Str("type", t.String()).
			Int("slot", slot).
			Msg("fallback failed, substituting minimal question")
		q = minimalQuestion(s.minimal, index)
		q.ID, q.Type = slot, t
	}
	return q
}

// synthesize runs the bounded attempt loop. It reports false only when
// the final fallback attempt also fails.
func (a *Assembler) synthesize(slot int, t QuestionType, s strategy, p Params, seed int64, streams func(int) Stream) (Question, bool) {
	in := Input{Type: t, Params: p}
	for k := 0; k <= a.cfg.MaxSynthRetries; k++ {
		g := &gen{Stream: streams(k), slot: slot, seed: seed, p: p}
		q, err := attempt(s.synth, g)
		if err != nil {
			continue
		}
		q.ID, q.Type = slot, t
		if verr := a.validate(&q, in); verr != nil {
			a.log.Trace().
				Str("type", t.String()).
				Int("slot", slot).
				Int("attempt", k).
				Str("validator", verr.Validator).
				Msg(verr.Message)
			continue
		}
		return q, true
	}

	fb := s.fallback
	if fb == nil {
		fb = s.synth
	}
	g := &gen{Stream: streams(a.cfg.MaxSynthRetries + 1), slot: slot, seed: seed, p: p}
	q, err := attempt(fb, g)
	if err != nil {
		return Question{}, false
	}
	a.log.Debug().Str("type", t.String()).Int("slot", slot).Msg("using fallback")
	q.ID, q.Type = slot, t
	return q, true
}

// validate runs the validator chain; the first failure stops it.
func (a *Assembler) validate(q *Question, in Input) *ValidationError {
	for _, v := range a.cfg.Validators {
		if verr := v.Validate(q, in); verr != nil {
			return verr
		}
	}
	return nil
}

// attempt runs one synthesis function, turning a panic into an error.
func attempt(f synthFunc, g *gen) (q Question, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("problemgen: synthesis panicked: %v", r)
		}
	}()
	return f(g)
}

// minimalQuestion is the last-resort question of the same operator family.
func minimalQuestion(kind minimalKind, i int) Question {
	n := int64(i)
	switch kind {
	case minimalMultiply:
		return times(2+mod(n, 8), 1+mod(n, 9))
	case minimalDivide:
		b, q := 2+mod(n, 8), 1+mod(n, 9)
		return inline("÷", IntAnswer(q), ints(b*q, b))
	default:
		a, b := 1+mod(n, 9), 1+mod(n*3, 9)
		return stacked("+", IntAnswer(a+b), ints(a, b))
	}
}
