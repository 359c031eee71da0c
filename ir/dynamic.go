package ir

import (
	"encoding/json"
	"reflect"
	"slices"

	"github.com/signadot/jvalue/number"

	"github.com/cockroachdb/apd/v2"
)

// numberLiteral matches number types of JSON libraries decoding with
// UseNumber, such as json.Number and jsoniter.Number.
type numberLiteral interface {
	String() string
	Int64() (int64, error)
	Float64() (float64, error)
}

// FromDynamic converts the loosely typed output of a JSON library into a
// Value. It accepts nil, bool, string, every integer and float kind,
// json.Number and similar literal types, number.Number, *apd.Decimal,
// Value, slices and arrays, and maps with string keys. Map members are
// sorted by key. Nil slices and maps of any element type become null,
// while empty non-nil ones become empty containers. Anything else is a
// *ShapeError.
//
// Number literals which are not valid JSON numbers are reported with the
// error from number.Parse.
func FromDynamic(x any) (Value, error) {
	switch x := x.(type) {
	case nil:
		return Value{}, nil
	case Value:
		return x, nil
	case *Value:
		if x == nil {
			return Value{}, nil
		}
		return *x, nil
	case bool:
		return FromBool(x), nil
	case string:
		return FromString(x), nil
	case int:
		return FromInt(int64(x)), nil
	case int8:
		return FromInt(int64(x)), nil
	case int16:
		return FromInt(int64(x)), nil
	case int32:
		return FromInt(int64(x)), nil
	case int64:
		return FromInt(x), nil
	case uint:
		return FromNumber(number.FromUint64(uint64(x))), nil
	case uint8:
		return FromNumber(number.FromUint64(uint64(x))), nil
	case uint16:
		return FromNumber(number.FromUint64(uint64(x))), nil
	case uint32:
		return FromNumber(number.FromUint64(uint64(x))), nil
	case uint64:
		return FromNumber(number.FromUint64(x)), nil
	case float32:
		return FromFloat(float64(x)), nil
	case float64:
		return FromFloat(x), nil
	case number.Number:
		return FromNumber(x), nil
	case *apd.Decimal:
		return FromNumber(number.FromDecimal(x)), nil
	case json.Number:
		return fromLiteral(string(x))
	case numberLiteral:
		return fromLiteral(x.String())
	case []any:
		if x == nil {
			return Value{}, nil
		}
		res := Value{typ: ArrayType, items: make([]Value, len(x))}
		for i, item := range x {
			v, err := FromDynamic(item)
			if err != nil {
				return Value{}, err
			}
			res.items[i] = v
		}
		return res, nil
	case []Value:
		if x == nil {
			return Value{}, nil
		}
		return FromSlice(x), nil
	case map[string]any:
		if x == nil {
			return Value{}, nil
		}
		m := make(map[string]Value, len(x))
		for k, item := range x {
			v, err := FromDynamic(item)
			if err != nil {
				return Value{}, err
			}
			m[k] = v
		}
		return FromMap(m), nil
	case map[string]Value:
		if x == nil {
			return Value{}, nil
		}
		return FromMap(x), nil
	}
	return fromReflect(reflect.ValueOf(x))
}

func fromLiteral(s string) (Value, error) {
	n, err := number.Parse(s)
	if err != nil {
		return Value{}, err
	}
	return FromNumber(n), nil
}

func fromReflect(rv reflect.Value) (Value, error) {
	switch rv.Kind() {
	case reflect.Bool:
		return FromBool(rv.Bool()), nil
	case reflect.String:
		return FromString(rv.String()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return FromInt(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return FromNumber(number.FromUint64(rv.Uint())), nil
	case reflect.Float32, reflect.Float64:
		return FromFloat(rv.Float()), nil
	case reflect.Pointer:
		if rv.IsNil() {
			return Value{}, nil
		}
		return FromDynamic(rv.Elem().Interface())
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return Value{}, nil
		}
		res := Value{typ: ArrayType, items: make([]Value, rv.Len())}
		for i := range res.items {
			v, err := FromDynamic(rv.Index(i).Interface())
			if err != nil {
				return Value{}, err
			}
			res.items[i] = v
		}
		return res, nil
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			break
		}
		if rv.IsNil() {
			return Value{}, nil
		}
		keys := make([]string, 0, rv.Len())
		byKey := make(map[string]reflect.Value, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			k := iter.Key().String()
			keys = append(keys, k)
			byKey[k] = iter.Value()
		}
		slices.Sort(keys)
		res := Value{typ: ObjectType, fields: keys, values: make([]Value, len(keys))}
		for i, k := range keys {
			v, err := FromDynamic(byKey[k].Interface())
			if err != nil {
				return Value{}, err
			}
			res.values[i] = v
		}
		return res, nil
	}
	if !rv.IsValid() {
		return Value{}, nil
	}
	return Value{}, &ShapeError{Value: rv.Interface()}
}

// ToDynamic converts v to the shapes JSON libraries marshal: nil, bool,
// string, json.Number, []any and map[string]any.
func (v Value) ToDynamic() any {
	switch v.typ {
	case BoolType:
		return v.b
	case StringType:
		return v.s
	case NumberType:
		return json.Number(v.n.String())
	case ArrayType:
		res := make([]any, len(v.items))
		for i := range v.items {
			res[i] = v.items[i].ToDynamic()
		}
		return res
	case ObjectType:
		res := make(map[string]any, len(v.fields))
		for i, k := range v.fields {
			res[k] = v.values[i].ToDynamic()
		}
		return res
	}
	return nil
}
