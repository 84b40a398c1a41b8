package domain

import "errors"

var (
	ErrNotFound             = errors.New("contact not found")
	ErrDuplicatePhoneNumber = errors.New("phone_number already in use")
	ErrDuplicateEmail       = errors.New("email already in use")
)

// ValidationError carries per-field messages for a rejected input.
type ValidationError struct {
	Fields map[string][]string
}

func (e *ValidationError) Error() string {
	for _, msgs := range e.Fields {
		if len(msgs) > 0 {
			return msgs[0]
		}
	}
	return "validation failed"
}

func NewValidationError() *ValidationError {
	return &ValidationError{Fields: map[string][]string{}}
}

func (e *ValidationError) Add(field, msg string) {
	e.Fields[field] = append(e.Fields[field], msg)
}

func (e *ValidationError) Empty() bool { return len(e.Fields) == 0 }
