package problemgen

import "testing"

func TestAnswerBounds(t *testing.T) {
	v := &AnswerBoundsValidator{}
	in := Input{Type: TypeAddition, Params: Params{MinAnswer: Ptr[int64](50), MaxAnswer: Ptr[int64](100)}}

	tests := []struct {
		answer int64
		ok     bool
	}{
		{50, true},
		{75, true},
		{100, true},
		{49, false},
		{101, false},
	}
	for _, tc := range tests {
		q := validQuestion()
		q.Answer = IntAnswer(tc.answer)
		err := v.Validate(q, in)
		if (err == nil) != tc.ok {
			t.Errorf("answer %d: err = %v, want ok=%v", tc.answer, err, tc.ok)
		}
	}
}

func TestAnswerBounds_SkippedTypes(t *testing.T) {
	v := &AnswerBoundsValidator{}
	bounds := Params{MaxAnswer: Ptr[int64](10)}

	q := custom("√144 =", "√", IntAnswer(12), ints(144))
	if err := v.Validate(&q, Input{Type: TypeSquareRoot, Params: bounds}); err != nil {
		t.Errorf("square_root is unbounded, got %v", err)
	}

	q = inline("÷", DecimalAnswer(125, 1), ints(25, 2))
	if err := v.Validate(&q, Input{Type: TypeVedicDivideBy2, Params: bounds}); err != nil {
		t.Errorf("vedic division is unbounded, got %v", err)
	}
}

func TestAnswerBounds_NonInteger(t *testing.T) {
	v := &AnswerBoundsValidator{}
	q := custom("1/2 + 1/3 =", "+", FractionAnswer(5, 6), ints(1, 2, 1, 3))
	in := Input{Type: TypeVedicFractionAddition, Params: Params{MinAnswer: Ptr[int64](10)}}
	if err := v.Validate(&q, in); err != nil {
		t.Errorf("fraction answers are never bounded, got %v", err)
	}
}
