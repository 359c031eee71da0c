package ir

import (
	"errors"

	"github.com/signadot/jvalue/debug"
)

// Attempt runs attempts in order and returns the result of the first one
// that succeeds. An attempt failing with an error matching ErrTypeMismatch
// passes control to the next; any other error is returned immediately.
// If every attempt mismatches, the last mismatch is returned.
//
// The first success wins even when a later attempt would also succeed.
func Attempt[T any](attempts ...func() (T, error)) (T, error) {
	var (
		zero T
		last error = ErrTypeMismatch
	)
	for i, attempt := range attempts {
		res, err := attempt()
		if err == nil {
			return res, nil
		}
		if !errors.Is(err, ErrTypeMismatch) {
			if debug.Decode() {
				debug.Logf("attempt %d aborted: %v\n", i, err)
			}
			return zero, err
		}
		if debug.Decode() {
			debug.Logf("attempt %d mismatched: %v\n", i, err)
		}
		last = err
	}
	return zero, last
}
