package problemgen

// AnswerBoundsValidator enforces the block's minAnswer/maxAnswer on types
// whose answer policy is bounded. Non-integer answers are never bounded.
type AnswerBoundsValidator struct{}

func (v *AnswerBoundsValidator) Name() string { return "answer-bounds" }

func (v *AnswerBoundsValidator) Validate(q *Question, in Input) *ValidationError {
	if !registry[in.Type].bounded || q.Answer.Type != AnswerTypeInteger {
		return nil
	}
	n := q.Answer.Num
	if lo := in.Params.MinAnswer; lo != nil && n < *lo {
		return retryable(v.Name(), "answer %d below minimum %d", n, *lo)
	}
	if hi := in.Params.MaxAnswer; hi != nil && n > *hi {
		return retryable(v.Name(), "answer %d above maximum %d", n, *hi)
	}
	return nil
}
