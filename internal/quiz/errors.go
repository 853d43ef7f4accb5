package quiz

import (
	"errors"
	"fmt"
)

// ErrorCode classifies a parse or validation failure.
type ErrorCode int

const (
	// ErrMissingField means a field required for the question's kind was absent.
	ErrMissingField ErrorCode = iota
	// ErrUnknownKind means the kind string is not one of the five variants.
	ErrUnknownKind
	// ErrTypeMismatch means a field had the wrong shape, e.g. depends given
	// as a list.
	ErrTypeMismatch
	// ErrDuplicateID means two questions share a non-empty id.
	ErrDuplicateID
	// ErrDanglingDependency means a depends value references no existing id.
	ErrDanglingDependency
)

func (c ErrorCode) String() string {
	switch c {
	case ErrMissingField:
		return "missing field"
	case ErrUnknownKind:
		return "unknown kind"
	case ErrTypeMismatch:
		return "type mismatch"
	case ErrDuplicateID:
		return "duplicate id"
	case ErrDanglingDependency:
		return "dangling dependency"
	}
	return "parse error"
}

// ParseError describes why a quiz document was rejected. Parse errors are
// fatal to loading the quiz and always name the offending question and field.
type ParseError struct {
	Code     ErrorCode
	Question string // question id, or "question N" when no id is set
	Field    string
	Detail   string
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Question, e.Code)
	if e.Field != "" {
		msg += fmt.Sprintf(" (field %q)", e.Field)
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

// AsParseError unwraps err into a *ParseError, or returns nil.
func AsParseError(err error) *ParseError {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe
	}
	return nil
}

// questionRef names a question for error messages: its id when it has one,
// otherwise its 1-based position in the document.
func questionRef(index int, id string) string {
	if id != "" {
		return fmt.Sprintf("question %q", id)
	}
	return fmt.Sprintf("question %d", index+1)
}
