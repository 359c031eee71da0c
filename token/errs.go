package token

import (
	"errors"
	"fmt"
)

var (
	ErrBadEscape         = errors.New("invalid escape sequence")
	ErrEscapeAtEnd       = errors.New("escape at end of input")
	ErrBadUnicode        = errors.New("bad unicode escape")
	ErrNumber            = errors.New("number")
	ErrNumberLeadingZero = errors.New("leading zero")
)

// EscapeError reports the offending escape sequence, including its leading
// backslash.
type EscapeError struct {
	Seq    string
	Offset int
	Err    error
}

func (e *EscapeError) Error() string {
	return fmt.Sprintf("%s %q at offset %d", e.Err, e.Seq, e.Offset)
}

func (e *EscapeError) Unwrap() error {
	return e.Err
}
