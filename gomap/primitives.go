package gomap

import (
	"errors"
	"slices"

	"github.com/signadot/jvalue/ir"
	"github.com/signadot/jvalue/number"
)

// String decodes a string. Numbers decode to their decimal text.
func String(v ir.Value, _ any) (*string, error) {
	switch v.Type() {
	case ir.NullType:
		return nil, nil
	case ir.StringType:
		s, _ := v.Str()
		return &s, nil
	case ir.NumberType:
		n, _ := v.Number()
		s := n.String()
		return &s, nil
	}
	return nil, typeError("string", v)
}

func Bool(v ir.Value, _ any) (*bool, error) {
	if v.IsNull() {
		return nil, nil
	}
	b, ok := v.Bool()
	if !ok {
		return nil, typeError("bool", v)
	}
	return &b, nil
}

// Number decodes a number or a string holding a number literal. A string
// which is not a number literal is an error matching number.ErrMalformed.
func Number(v ir.Value, _ any) (*number.Number, error) {
	if v.IsNull() {
		return nil, nil
	}
	return ir.Attempt(
		func() (*number.Number, error) {
			n, ok := v.Number()
			if !ok {
				return nil, typeError("number", v)
			}
			return &n, nil
		},
		func() (*number.Number, error) {
			s, ok := v.Str()
			if !ok {
				return nil, typeError("number", v)
			}
			n, err := number.Parse(s)
			if err != nil {
				return nil, err
			}
			return &n, nil
		},
	)
}

func narrow[T any](v ir.Value, expected string, f func(number.Number) (T, bool)) (*T, error) {
	n, err := Number(v, nil)
	if err != nil {
		var te *TypeError
		if errors.As(err, &te) {
			te.Expected = expected
		}
		return nil, err
	}
	if n == nil {
		return nil, nil
	}
	x, ok := f(*n)
	if !ok {
		return nil, &TypeError{Expected: expected, Actual: "number " + n.String(), Value: v}
	}
	return &x, nil
}

// Int decodes a whole number, or a string holding one, which fits an int.
func Int(v ir.Value, _ any) (*int, error) {
	return narrow(v, "int", number.Number.Int)
}

func Int32(v ir.Value, _ any) (*int32, error) {
	return narrow(v, "int32", number.Number.Int32)
}

func Int64(v ir.Value, _ any) (*int64, error) {
	return narrow(v, "int64", number.Number.Int64)
}

func Uint64(v ir.Value, _ any) (*uint64, error) {
	return narrow(v, "uint64", number.Number.Uint64)
}

// Float32 decodes a number, or a string holding one, with possible loss of
// precision.
func Float32(v ir.Value, _ any) (*float32, error) {
	return narrow(v, "float32", func(n number.Number) (float32, bool) {
		return n.Float32(), true
	})
}

// Float64 decodes a number, or a string holding one, with possible loss of
// precision.
func Float64(v ir.Value, _ any) (*float64, error) {
	return narrow(v, "float64", func(n number.Number) (float64, bool) {
		return n.Float64(), true
	})
}

// Value decodes v as itself. Null is a present Value, so the result is
// never nil.
func Value(v ir.Value, _ any) (*ir.Value, error) {
	return &v, nil
}

// StringKind decodes a string into a named string type.
func StringKind[T ~string](v ir.Value, ctx any) (*T, error) {
	s, err := String(v, ctx)
	if s == nil || err != nil {
		return nil, err
	}
	x := T(*s)
	return &x, nil
}

type integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// IntKind decodes a whole number into a named integer type, failing when
// it does not fit.
func IntKind[T integer](v ir.Value, ctx any) (*T, error) {
	i, err := Int64(v, ctx)
	if i == nil || err != nil {
		return nil, err
	}
	x := T(*i)
	if int64(x) != *i {
		return nil, &TypeError{Expected: "integer in range", Actual: "number " + v.String(), Value: v}
	}
	return &x, nil
}

// Enum decodes with dec and accepts only the given values.
//
//	color := gomap.Enum(gomap.StringKind[Color], Red, Green)
func Enum[T comparable](dec DecodeFunc[T], allowed ...T) DecodeFunc[T] {
	return func(v ir.Value, ctx any) (*T, error) {
		x, err := dec(v, ctx)
		if x == nil || err != nil {
			return nil, err
		}
		if !slices.Contains(allowed, *x) {
			return nil, &TypeError{Expected: "one of the enumerated values", Actual: v.String(), Value: v}
		}
		return x, nil
	}
}

func EncodeString[T ~string](x T, _ any) (ir.Value, error) {
	return ir.FromString(string(x)), nil
}

func EncodeBool(x bool, _ any) (ir.Value, error) {
	return ir.FromBool(x), nil
}

func EncodeInt[T integer](x T, _ any) (ir.Value, error) {
	return ir.FromInt(int64(x)), nil
}

func EncodeUint64(x uint64, _ any) (ir.Value, error) {
	return ir.FromNumber(number.FromUint64(x)), nil
}

// EncodeFloat32 stores the exact value of x.
func EncodeFloat32(x float32, _ any) (ir.Value, error) {
	return ir.FromFloat(float64(x)), nil
}

// EncodeFloat64 stores the exact value of x.
func EncodeFloat64(x float64, _ any) (ir.Value, error) {
	return ir.FromFloat(x), nil
}

func EncodeNumber(x number.Number, _ any) (ir.Value, error) {
	return ir.FromNumber(x), nil
}

func EncodeValue(x ir.Value, _ any) (ir.Value, error) {
	return x, nil
}
