package ir

import (
	"maps"
	"slices"

	"github.com/signadot/jvalue/number"
)

// Getters report false when v holds another variant. Numeric getters also
// report false when the number does not narrow exactly.

func (v Value) Str() (string, bool) {
	if v.typ != StringType {
		return "", false
	}
	return v.s, true
}

func (v Value) Bool() (bool, bool) {
	if v.typ != BoolType {
		return false, false
	}
	return v.b, true
}

func (v Value) Number() (number.Number, bool) {
	if v.typ != NumberType {
		return number.Number{}, false
	}
	return v.n, true
}

func (v Value) Int() (int, bool) {
	if v.typ != NumberType {
		return 0, false
	}
	return v.n.Int()
}

func (v Value) Int32() (int32, bool) {
	if v.typ != NumberType {
		return 0, false
	}
	return v.n.Int32()
}

func (v Value) Int64() (int64, bool) {
	if v.typ != NumberType {
		return 0, false
	}
	return v.n.Int64()
}

// Float32 narrows with possible loss of precision.
func (v Value) Float32() (float32, bool) {
	if v.typ != NumberType {
		return 0, false
	}
	return v.n.Float32(), true
}

// Float64 narrows with possible loss of precision.
func (v Value) Float64() (float64, bool) {
	if v.typ != NumberType {
		return 0, false
	}
	return v.n.Float64(), true
}

// Array returns a copy of the elements.
func (v Value) Array() ([]Value, bool) {
	if v.typ != ArrayType {
		return nil, false
	}
	return slices.Clone(v.items), true
}

// Object returns the members as a new map.
func (v Value) Object() (map[string]Value, bool) {
	if v.typ != ObjectType {
		return nil, false
	}
	res := make(map[string]Value, len(v.fields))
	for i, k := range v.fields {
		res[k] = v.values[i]
	}
	return res, true
}

// Setters replace v wholesale: v.SetString("x") on an array discards the
// array and leaves a string.

func (v *Value) SetNull() {
	*v = Value{}
}

func (v *Value) SetString(s string) {
	*v = FromString(s)
}

func (v *Value) SetBool(b bool) {
	*v = FromBool(b)
}

func (v *Value) SetNumber(n number.Number) {
	*v = FromNumber(n)
}

func (v *Value) SetInt(i int) {
	*v = FromInt(int64(i))
}

func (v *Value) SetInt32(i int32) {
	*v = FromInt(int64(i))
}

func (v *Value) SetInt64(i int64) {
	*v = FromInt(i)
}

func (v *Value) SetFloat32(f float32) {
	*v = FromFloat(float64(f))
}

func (v *Value) SetFloat64(f float64) {
	*v = FromFloat(f)
}

func (v *Value) SetArray(items []Value) {
	*v = FromSlice(items)
}

// SetObject replaces v with an object holding m's members in sorted key
// order.
func (v *Value) SetObject(m map[string]Value) {
	*v = FromMap(maps.Clone(m))
}

// Scalar lists the types accepted by SetOpt.
type Scalar interface {
	string | bool | int | int32 | int64 | float32 | float64 | number.Number | []Value | map[string]Value
}

// SetOpt sets v from *p, or to null when p is nil.
func SetOpt[T Scalar](v *Value, p *T) {
	if p == nil {
		v.SetNull()
		return
	}
	switch x := any(*p).(type) {
	case string:
		v.SetString(x)
	case bool:
		v.SetBool(x)
	case int:
		v.SetInt(x)
	case int32:
		v.SetInt32(x)
	case int64:
		v.SetInt64(x)
	case float32:
		v.SetFloat32(x)
	case float64:
		v.SetFloat64(x)
	case number.Number:
		v.SetNumber(x)
	case []Value:
		v.SetArray(x)
	case map[string]Value:
		v.SetObject(x)
	}
}
