package problemgen

import "fmt"

// Validator checks a synthesized question against its type's invariants.
// Implementations should be stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier for this validator (for error messages
	// and logging), e.g. "structural", "digit-count", "non-negative".
	Name() string

	// Validate checks the question and returns nil if it passes.
	// Returns a ValidationError if the question fails the check.
	Validate(q *Question, in Input) *ValidationError
}

// Input is the context a question was synthesized for.
type Input struct {
	Type   QuestionType
	Params Params
}

// ValidationError describes why a question failed validation.
type ValidationError struct {
	Validator string // Name of the validator that failed
	Message   string // Human-readable description of the failure
	Retryable bool   // Whether resynthesis is likely to fix this
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}

func retryable(name, format string, args ...any) *ValidationError {
	return &ValidationError{Validator: name, Message: fmt.Sprintf(format, args...), Retryable: true}
}
