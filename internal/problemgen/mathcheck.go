package problemgen

// Arithmetic invariants recomputed from the operands rather than trusted
// from the synthesizer.

// NonNegativeValidator checks that every running total of a chained
// add/sub question, and its final answer, is at least zero.
type NonNegativeValidator struct{}

func (v *NonNegativeValidator) Name() string { return "non-negative" }

func (v *NonNegativeValidator) Validate(q *Question, in Input) *ValidationError {
	if !registry[in.Type].nonNegative {
		return nil
	}
	totals := runningTotals(q)
	for i, t := range totals {
		if t < 0 {
			return retryable(v.Name(), "running total after row %d is negative", i+1)
		}
	}
	if q.Answer.Num < 0 {
		return retryable(v.Name(), "answer %s is negative", q.Answer)
	}
	if n := len(totals); n > 0 && q.Answer.Type == AnswerTypeInteger && totals[n-1] != q.Answer.Num {
		return retryable(v.Name(), "answer %s does not match the rows", q.Answer)
	}
	return nil
}

// runningTotals folds the operands of a vertical question in units of
// the widest operand scale. Stacked questions without an operator list
// apply their single operator to every row after the first.
func runningTotals(q *Question) []int64 {
	if len(q.Operands) == 0 {
		return nil
	}
	places := 0
	for _, o := range q.Operands {
		places = max(places, o.Places)
	}
	scaled := func(d Decimal) int64 { return d.Units * pow10(places-d.Places) }

	totals := make([]int64, len(q.Operands))
	totals[0] = scaled(q.Operands[0])
	for i := 1; i < len(q.Operands); i++ {
		op := q.Operator
		if len(q.Operators) >= i {
			op = q.Operators[i-1]
		}
		if op == "-" {
			totals[i] = totals[i-1] - scaled(q.Operands[i])
		} else {
			totals[i] = totals[i-1] + scaled(q.Operands[i])
		}
	}
	return totals
}

// ExactDivisionValidator checks that integer division questions divide
// evenly and that the answer is the quotient.
type ExactDivisionValidator struct{}

func (v *ExactDivisionValidator) Name() string { return "exact-division" }

func (v *ExactDivisionValidator) Validate(q *Question, in Input) *ValidationError {
	if !registry[in.Type].exactDivision {
		return nil
	}
	if len(q.Operands) != 2 {
		return retryable(v.Name(), "want 2 operands, got %d", len(q.Operands))
	}
	a, b := q.Operands[0].Units, q.Operands[1].Units
	if b == 0 {
		return retryable(v.Name(), "division by zero")
	}
	if a%b != 0 {
		return retryable(v.Name(), "%d is not divisible by %d", a, b)
	}
	if n, ok := q.Answer.Int(); !ok || n != a/b {
		return retryable(v.Name(), "answer %s, want %d", q.Answer, a/b)
	}
	return nil
}

// PerfectPowerValidator checks that root questions ask for the root of an
// exact square or cube, and that the answer is that root.
type PerfectPowerValidator struct{}

func (v *PerfectPowerValidator) Name() string { return "perfect-power" }

func (v *PerfectPowerValidator) Validate(q *Question, in Input) *ValidationError {
	k := registry[in.Type].power
	if k == 0 {
		return nil
	}
	if len(q.Operands) == 0 {
		return retryable(v.Name(), "question has no operands")
	}
	r, ok := q.Answer.Int()
	if !ok || r <= 0 {
		return retryable(v.Name(), "root %s is not a positive integer", q.Answer)
	}
	p := int64(1)
	for range k {
		p *= r
	}
	if n := q.Operands[0].Units; n != p {
		return retryable(v.Name(), "%d is not %d^%d", n, r, k)
	}
	return nil
}
