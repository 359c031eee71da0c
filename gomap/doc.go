// Package gomap maps between ir.Values and Go values.
//
// # Protocol
//
// Types take part by implementing Decoder and Encoder:
//
//	type Point struct{ X, Y int }
//
//	func (p *Point) DecodeValue(v ir.Value, ctx any) (bool, error) {
//	    if v.IsNull() {
//	        return false, nil
//	    }
//	    x, err := gomap.Field(v, "x", gomap.Require(gomap.Int), ctx)
//	    ...
//	}
//
// A decode reports false with a nil error when the JSON was null, and an
// error when the JSON was present but of the wrong shape. Type mismatches
// are *TypeErrors and match ir.ErrTypeMismatch, so decoders compose with
// ir.Attempt.
//
// The ctx argument carries caller state, such as a version or resolver,
// through nested calls; ContextAs recovers it.
//
// # Decode functions
//
// A DecodeFunc[T] returns a *T, nil meaning null. The package provides
// them for primitives (String, Int, Float64, ...) and builds container
// decoders from element decoders:
//
//	ints, err := gomap.OptionalSlice(gomap.Int)(v.Key("ints"), nil)
//	// [1, 2.0, "3", null] decodes to []*int{1, 2, 3, nil}
//
// Slice and Map drop elements which decode to nil; OptionalSlice and
// OptionalMap keep them.
//
// # Reflection
//
// FromValue and ToValue map structs, slices, maps and primitives by
// reflection, honoring Decoder, Encoder and `json` struct tags.
//
//	var user User
//	err := gomap.FromValue(v, &user)
//	v, err := gomap.ToValue(user, gomap.OmitNull(true))
//
// # Related Packages
//
//   - github.com/signadot/jvalue/ir - Value representation
package gomap
