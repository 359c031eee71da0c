package ir

import (
	"errors"
	"fmt"

	"github.com/signadot/jvalue/ir/kpath"
	"github.com/signadot/jvalue/number"
)

var (
	// ErrTypeMismatch is the class of errors which Attempt skips over.
	ErrTypeMismatch      = errors.New("type mismatch")
	ErrUnrecognizedShape = errors.New("unrecognized shape")
	ErrPathTypeConflict  = errors.New("path type conflict")
	ErrIndex             = errors.New("index error")
	ErrNegativeIndex     = errors.New("negative index")
	ErrIndexLimit        = errors.New("index beyond extension limit")
	ErrParse             = errors.New("parse error")
	ErrNonFinite         = number.ErrNonFinite
)

// ShapeError reports a dynamic value FromDynamic does not recognize.
type ShapeError struct {
	Value any
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: %T", ErrUnrecognizedShape, e.Value)
}

func (e *ShapeError) Unwrap() error {
	return ErrUnrecognizedShape
}

// PathConflictError reports that Set found an existing node of the wrong
// container kind at Path.
type PathConflictError struct {
	Path kpath.Path
	Want Type
	Got  Type
}

func (e *PathConflictError) Error() string {
	return fmt.Sprintf("%s at %q: want %s, got %s", ErrPathTypeConflict, e.Path, e.Want, e.Got)
}

func (e *PathConflictError) Unwrap() error {
	return ErrPathTypeConflict
}

type IndexError struct {
	Path  kpath.Path
	Index int
	Err   error
}

func (e *IndexError) Error() string {
	if len(e.Path) == 0 {
		return fmt.Sprintf("%s %d", e.Err, e.Index)
	}
	return fmt.Sprintf("%s %d at %q", e.Err, e.Index, e.Path)
}

func (e *IndexError) Unwrap() []error {
	return []error{ErrIndex, e.Err}
}

// MismatchError is returned by decode attempts whose input is not of the
// wanted type.
type MismatchError struct {
	Want Type
	Text string
}

func (e *MismatchError) Error() string {
	const max = 32
	text := e.Text
	if len(text) > max {
		text = text[:max] + "..."
	}
	return fmt.Sprintf("%s: want %s, got %q", ErrTypeMismatch, e.Want, text)
}

func (e *MismatchError) Unwrap() error {
	return ErrTypeMismatch
}
