package number

import (
	"errors"
	"fmt"
)

var (
	ErrMalformed = errors.New("malformed number")
	ErrNonFinite = errors.New("non-finite number")
)

// SyntaxError reports text which is not a JSON decimal literal.
type SyntaxError struct {
	Text string
	Err  error
}

func (e *SyntaxError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s %q: %v", ErrMalformed, e.Text, e.Err)
	}
	return fmt.Sprintf("%s %q", ErrMalformed, e.Text)
}

func (e *SyntaxError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrMalformed}
	}
	return []error{ErrMalformed, e.Err}
}
