package kpath

import (
	"errors"
	"fmt"
)

var (
	ErrSyntax      = errors.New("kpath syntax")
	ErrUnsupported = errors.New("unsupported path part")
)

// SyntaxError reports where a path string could not be parsed.
type SyntaxError struct {
	Path   string
	Offset int
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s: %s at offset %d in %q", ErrSyntax, e.Msg, e.Offset, e.Path)
}

func (e *SyntaxError) Unwrap() error {
	return ErrSyntax
}
