package ir

import (
	"iter"
	"maps"
	"slices"

	"github.com/signadot/jvalue/number"
)

// Value is a JSON value: null, bool, number, string, array or object.
//
// The zero Value is null. Values have value semantics: copying a Value
// and then mutating the copy, through a setter, SetKey, SetIndex or Set,
// never changes the original. Mutations copy the containers along the
// path they modify and share everything else.
//
// Objects keep their keys in insertion order for rendering, but equality
// ignores key order.
type Value struct {
	typ Type

	b     bool
	s     string
	n     number.Number
	items []Value

	// object members as parallel slices
	fields []string
	values []Value
}

type KeyVal struct {
	Key string
	Val Value
}

func KV(k string, v Value) KeyVal {
	return KeyVal{Key: k, Val: v}
}

func Null() Value {
	return Value{}
}

func FromBool(b bool) Value {
	return Value{typ: BoolType, b: b}
}

func FromString(s string) Value {
	return Value{typ: StringType, s: s}
}

func FromNumber(n number.Number) Value {
	return Value{typ: NumberType, n: n}
}

func FromInt(i int64) Value {
	return FromNumber(number.FromInt64(i))
}

// FromFloat stores the exact decimal value of f.
func FromFloat(f float64) Value {
	return FromNumber(number.FromFloat64(f))
}

// FromSlice returns an array holding a copy of items.
func FromSlice(items []Value) Value {
	return Value{typ: ArrayType, items: slices.Clone(items)}
}

// FromMap returns an object with the keys of m in sorted order.
func FromMap(m map[string]Value) Value {
	res := Value{typ: ObjectType}
	res.fields = slices.Sorted(maps.Keys(m))
	res.values = make([]Value, len(res.fields))
	for i, k := range res.fields {
		res.values[i] = m[k]
	}
	return res
}

// FromKeyVals returns an object with keys in the order given. A repeated
// key replaces the earlier value in place.
func FromKeyVals(kvs []KeyVal) Value {
	res := Value{typ: ObjectType}
	res.fields = make([]string, 0, len(kvs))
	res.values = make([]Value, 0, len(kvs))
	for _, kv := range kvs {
		if i := slices.Index(res.fields, kv.Key); i != -1 {
			res.values[i] = kv.Val
			continue
		}
		res.fields = append(res.fields, kv.Key)
		res.values = append(res.values, kv.Val)
	}
	return res
}

// Arr builds an array literal.
func Arr(items ...Value) Value {
	return FromSlice(items)
}

// Obj builds an object literal, keeping key order.
//
//	ir.Obj(ir.KV("a", ir.Arr(ir.FromInt(1))), ir.KV("b", ir.Null()))
func Obj(kvs ...KeyVal) Value {
	return FromKeyVals(kvs)
}

func (v Value) Type() Type {
	return v.typ
}

func (v Value) IsNull() bool {
	return v.typ == NullType
}

// Len returns the number of array elements or object members, and 0 for
// anything else.
func (v Value) Len() int {
	switch v.typ {
	case ArrayType:
		return len(v.items)
	case ObjectType:
		return len(v.fields)
	}
	return 0
}

// Keys returns the object's keys in insertion order, or nil.
func (v Value) Keys() []string {
	if v.typ != ObjectType {
		return nil
	}
	return slices.Clone(v.fields)
}

// Members yields the object's members in insertion order, and nothing for
// other types.
func (v Value) Members() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		if v.typ != ObjectType {
			return
		}
		for i, k := range v.fields {
			if !yield(k, v.values[i]) {
				return
			}
		}
	}
}

func (v Value) Has(k string) bool {
	return v.typ == ObjectType && slices.Contains(v.fields, k)
}

// Clone returns a deep copy of v.
func (v Value) Clone() Value {
	res := v
	switch v.typ {
	case ArrayType:
		res.items = make([]Value, len(v.items))
		for i := range v.items {
			res.items[i] = v.items[i].Clone()
		}
	case ObjectType:
		res.fields = slices.Clone(v.fields)
		res.values = make([]Value, len(v.values))
		for i := range v.values {
			res.values[i] = v.values[i].Clone()
		}
	}
	return res
}

func (v Value) lookup(k string) (Value, int) {
	if v.typ != ObjectType {
		return Value{}, -1
	}
	i := slices.Index(v.fields, k)
	if i == -1 {
		return Value{}, -1
	}
	return v.values[i], i
}

// withKey returns a copy of object v with k set to x.
func (v Value) withKey(k string, x Value) Value {
	res := Value{typ: ObjectType}
	i := slices.Index(v.fields, k)
	if i == -1 {
		res.fields = append(slices.Clip(v.fields), k)
		res.values = append(slices.Clip(v.values), x)
		return res
	}
	res.fields = v.fields
	res.values = slices.Clone(v.values)
	res.values[i] = x
	return res
}

// withIndex returns a copy of array v with position i set to x, padding
// with nulls as needed.
func (v Value) withIndex(i int, x Value) Value {
	res := Value{typ: ArrayType}
	n := max(len(v.items), i+1)
	res.items = make([]Value, n)
	copy(res.items, v.items)
	res.items[i] = x
	return res
}
