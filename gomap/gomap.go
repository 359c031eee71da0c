package gomap

import (
	"fmt"
	"reflect"

	"github.com/signadot/jvalue/ir"
)

// Decoder is implemented by types which decode themselves from a Value.
// DecodeValue returns false and no error when v is null, true when the
// receiver was set, and an error when v has the wrong shape.
type Decoder interface {
	DecodeValue(v ir.Value, ctx any) (bool, error)
}

// Encoder is implemented by types which encode themselves as a Value.
// Encoding fails only when ctx is unusable.
type Encoder interface {
	EncodeValue(ctx any) (ir.Value, error)
}

// DecodeFunc decodes a T from v. A nil result with a nil error means v
// was null.
type DecodeFunc[T any] func(v ir.Value, ctx any) (*T, error)

// EncodeFunc encodes a T.
type EncodeFunc[T any] func(x T, ctx any) (ir.Value, error)

// Of returns the DecodeFunc of a Decoder type.
//
//	points := gomap.Slice(gomap.Of[Point]())
func Of[T any, PT interface {
	*T
	Decoder
}]() DecodeFunc[T] {
	return func(v ir.Value, ctx any) (*T, error) {
		var x T
		ok, err := PT(&x).DecodeValue(v, ctx)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, nil
		}
		return &x, nil
	}
}

// EncodeOf returns the EncodeFunc of an Encoder type.
func EncodeOf[T Encoder]() EncodeFunc[T] {
	return func(x T, ctx any) (ir.Value, error) {
		return x.EncodeValue(ctx)
	}
}

// Require turns a null result of dec into an error matching ErrMissing.
func Require[T any](dec DecodeFunc[T]) DecodeFunc[T] {
	return func(v ir.Value, ctx any) (*T, error) {
		res, err := dec(v, ctx)
		if err != nil {
			return nil, err
		}
		if res == nil {
			return nil, &UnmarshalError{Message: ErrMissing.Error(), Err: ErrMissing}
		}
		return res, nil
	}
}

// Field decodes member key of obj. Errors carry key in their field path.
// A missing member decodes like null.
func Field[T any](obj ir.Value, key string, dec DecodeFunc[T], ctx any) (*T, error) {
	if !obj.IsNull() && obj.Type() != ir.ObjectType {
		return nil, typeError("object", obj)
	}
	res, err := dec(obj.Key(key), ctx)
	if err != nil {
		return nil, atPath(err, key)
	}
	return res, nil
}

// ContextAs returns ctx as a T or a *ContextError.
func ContextAs[T any](ctx any) (T, error) {
	x, ok := ctx.(T)
	if !ok {
		var zero T
		return zero, &ContextError{
			Want: reflect.TypeFor[T]().String(),
			Got:  fmt.Sprintf("%T", ctx),
		}
	}
	return x, nil
}

// DecodeJSON parses data and decodes it with dec.
func DecodeJSON[T any](data []byte, dec DecodeFunc[T], ctx any, opts ...ir.ParseOption) (*T, error) {
	v, err := ir.Parse(data, opts...)
	if err != nil {
		return nil, err
	}
	return dec(v, ctx)
}

// EncodeJSON encodes x with enc and serializes the result.
func EncodeJSON[T any](x T, enc EncodeFunc[T], ctx any, opts ...ir.SerializeOption) ([]byte, error) {
	v, err := enc(x, ctx)
	if err != nil {
		return nil, err
	}
	return ir.Serialize(v, opts...)
}
