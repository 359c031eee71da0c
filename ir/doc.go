// Package ir provides Value, a self-describing JSON value.
//
// # Overview
//
// A Value is one of six variants, reported by Type:
//
//   - NullType: null, also the zero Value
//   - BoolType: true or false
//   - NumberType: an exact decimal, see package number
//   - StringType: a string
//   - ArrayType: an ordered list of Values
//   - ObjectType: string keys mapped to Values, kept in insertion order
//
// Values behave like plain Go values: assigning one Value to another and
// mutating either leaves the other untouched.
//
// # Creating Values
//
//	v := ir.Obj(
//	    ir.KV("name", ir.FromString("x")),
//	    ir.KV("ints", ir.Arr(ir.FromInt(1), ir.FromInt(2))),
//	)
//	w, err := ir.Parse([]byte(`{"a": [1, 2.0]}`))
//	x, err := ir.FromDynamic(map[string]any{"a": 1})
//
// # Reading
//
// Getters such as Str, Int64 and Array report false instead of failing, and
// subscripts read null when the shape does not match:
//
//	v.Key("ints").Key("nope")   // null, ints is an array
//	v.Get(kpath.MustParse("ints[$]")) // 2
//
// # Writing
//
// Set creates the containers a path needs:
//
//	var v ir.Value
//	v.Set(kpath.MustOf("a", 2), ir.FromString("x")) // {"a":[null,null,"x"]}
//
// Setting through a node of the wrong kind fails with a *PathConflictError
// instead of overwriting it.
//
// # Text
//
// Serialize and Parse delegate to a Codec, goccy/go-json by default.
// Value also implements json.Marshaler and json.Unmarshaler.
//
// # Related Packages
//
//   - github.com/signadot/jvalue/ir/kpath - paths
//   - github.com/signadot/jvalue/gomap - mapping between Values and Go types
//   - github.com/signadot/jvalue/encode - colored and indented output
package ir
