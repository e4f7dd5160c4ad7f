package problemgen

// StructuralValidator checks that the rendered text, operands, operator
// and answer are present and consistent with each other.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(q *Question, _ Input) *ValidationError {
	if q.Text == "" {
		return retryable(v.Name(), "text is empty")
	}
	if len(q.Text) > 500 {
		return retryable(v.Name(), "text exceeds 500 characters")
	}
	if len(q.Operands) == 0 {
		return retryable(v.Name(), "question has no operands")
	}
	if q.Operator == "" {
		return retryable(v.Name(), "operator is empty")
	}
	if q.Orientation != Vertical && q.Orientation != Horizontal {
		return retryable(v.Name(), "orientation must be %q or %q", Vertical, Horizontal)
	}
	if q.Orientation == Vertical && len(q.Operators) > 0 && len(q.Operators) != len(q.Operands)-1 {
		return retryable(v.Name(), "%d operators for %d operands", len(q.Operators), len(q.Operands))
	}
	switch q.Answer.Type {
	case AnswerTypeInteger, AnswerTypeDecimal, AnswerTypeFraction, AnswerTypeYesNo:
	default:
		return retryable(v.Name(), "unknown answer type %q", q.Answer.Type)
	}
	if q.Answer.Den <= 0 {
		return retryable(v.Name(), "answer denominator must be positive")
	}
	return nil
}

// DigitCountValidator checks that every digit-constrained operand has the
// configured number of digits. Decimal operands are checked on their
// whole part.
type DigitCountValidator struct{}

func (v *DigitCountValidator) Name() string { return "digit-count" }

func (v *DigitCountValidator) Validate(q *Question, in Input) *ValidationError {
	s, ok := registry[in.Type]
	if !ok || s.digits == nil {
		return nil
	}
	want := s.digits(in.Params)
	for i, o := range q.Operands {
		var d int
		switch {
		case len(want) == 1:
			d = want[0]
		case i < len(want):
			d = want[i]
		}
		if d <= 0 {
			continue
		}
		if o.Units < 0 {
			return retryable(v.Name(), "operand %d (%s) is negative", i, o)
		}
		if got := digitCount(o.Whole()); got != d {
			return retryable(v.Name(), "operand %d (%s) has %d digits, want %d", i, o, got, d)
		}
	}
	return nil
}
