package problemgen

import (
	"errors"
	"fmt"
)

// ErrUnsupportedType is matched by every UnsupportedTypeError.
var ErrUnsupportedType = errors.New("unsupported question type")

// ErrWidth is matched by every WidthError.
var ErrWidth = errors.New("width exceeds engine limit")

// UnsupportedTypeError reports a type tag outside the known set.
type UnsupportedTypeError struct {
	Tag string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported question type %q", e.Tag)
}

func (e *UnsupportedTypeError) Is(target error) bool {
	return target == ErrUnsupportedType
}

// WidthError reports a constraint that sits inside its documented bounds
// but past what int64 arithmetic can carry for Type. Field names the
// constraint as it appears in a paper file.
type WidthError struct {
	Type      QuestionType
	Field     string
	Requested int
	Max       int
}

func (e *WidthError) Error() string {
	return fmt.Sprintf("%s: %s %d exceeds the limit of %d", e.Type, e.Field, e.Requested, e.Max)
}

func (e *WidthError) Is(target error) bool {
	return target == ErrWidth
}
