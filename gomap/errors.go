package gomap

import (
	"errors"
	"fmt"
	"strings"

	"github.com/signadot/jvalue/ir"
)

var (
	ErrUnexpectedContext = errors.New("unexpected context")
	ErrMissing           = errors.New("missing value")
)

// MarshalError represents an error during marshaling
type MarshalError struct {
	FieldPath string // Field path (e.g., "person.address.street")
	Message   string
	Err       error
}

func (e *MarshalError) Error() string {
	if e.FieldPath != "" {
		return fmt.Sprintf("marshal error at %s: %s", e.FieldPath, e.Message)
	}
	return fmt.Sprintf("marshal error: %s", e.Message)
}

func (e *MarshalError) Unwrap() error {
	return e.Err
}

// UnmarshalError represents an error during unmarshaling
type UnmarshalError struct {
	FieldPath string // Field path (e.g., "person.address.street")
	Message   string
	Err       error
}

func (e *UnmarshalError) Error() string {
	if e.FieldPath != "" {
		return fmt.Sprintf("unmarshal error at %s: %s", e.FieldPath, e.Message)
	}
	return fmt.Sprintf("unmarshal error: %s", e.Message)
}

func (e *UnmarshalError) Unwrap() error {
	return e.Err
}

// TypeError represents a type mismatch error. It matches
// ir.ErrTypeMismatch.
type TypeError struct {
	FieldPath string
	Expected  string
	Actual    string
	Message   string
	Value     ir.Value // the offending value
}

func (e *TypeError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = fmt.Sprintf("expected %s, got %s", e.Expected, e.Actual)
	}
	if e.FieldPath != "" {
		return fmt.Sprintf("type error at %s: %s", e.FieldPath, msg)
	}
	return fmt.Sprintf("type error: %s", msg)
}

func (e *TypeError) Unwrap() error {
	return ir.ErrTypeMismatch
}

func typeError(expected string, v ir.Value) *TypeError {
	actual := v.Type().String()
	if v.Type().IsLeaf() {
		actual += " " + v.String()
	}
	return &TypeError{Expected: expected, Actual: actual, Value: v}
}

// ContextError reports a context argument of the wrong type.
type ContextError struct {
	Want string
	Got  string
}

func (e *ContextError) Error() string {
	return fmt.Sprintf("%s: want %s, got %s", ErrUnexpectedContext, e.Want, e.Got)
}

func (e *ContextError) Unwrap() error {
	return ErrUnexpectedContext
}

// atPath prefixes the field path of err with seg.
func atPath(err error, seg string) error {
	var te *TypeError
	if errors.As(err, &te) {
		te.FieldPath = joinPath(seg, te.FieldPath)
		return err
	}
	var ue *UnmarshalError
	if errors.As(err, &ue) {
		ue.FieldPath = joinPath(seg, ue.FieldPath)
		return err
	}
	return &UnmarshalError{FieldPath: seg, Message: err.Error(), Err: err}
}

func marshalAtPath(err error, seg string) error {
	var me *MarshalError
	if errors.As(err, &me) {
		me.FieldPath = joinPath(seg, me.FieldPath)
		return err
	}
	return &MarshalError{FieldPath: seg, Message: err.Error(), Err: err}
}

func joinPath(seg, rest string) string {
	if rest == "" {
		return seg
	}
	if strings.HasPrefix(rest, "[") {
		return seg + rest
	}
	return seg + "." + rest
}
