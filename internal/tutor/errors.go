package tutor

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is returned before any upstream call when the
	// capability's input is missing or empty.
	ErrInvalidInput = errors.New("invalid input")

	// ErrEmptyCompletion means the upstream answered but with no text.
	ErrEmptyCompletion = errors.New("empty completion")
)

// ErrMalformed means the completion of a JSON capability had no parsable
// JSON or lacked the result key.
type ErrMalformed struct {
	Capability Capability
	Text       string
	Err        error
}

func (e *ErrMalformed) Error() string {
	return fmt.Sprintf("%s: malformed completion: %v", e.Capability, e.Err)
}

func (e *ErrMalformed) Unwrap() error { return e.Err }
