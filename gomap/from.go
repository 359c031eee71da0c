package gomap

import (
	"fmt"
	"reflect"

	"github.com/signadot/jvalue/ir"
	"github.com/signadot/jvalue/number"
)

var (
	decoderType = reflect.TypeFor[Decoder]()
	encoderType = reflect.TypeFor[Encoder]()
	valueType   = reflect.TypeFor[ir.Value]()
	numberType  = reflect.TypeFor[number.Number]()
)

// FromValue stores v into the Go value p points to. Types implementing
// Decoder decode themselves; other types are filled by reflection, with
// object members matched to struct fields by tag name.
//
// Null sets the target to its zero value. Object members without a
// matching field are ignored.
func FromValue(v ir.Value, p any, opts ...Option) error {
	if p == nil {
		return &UnmarshalError{Message: "destination value cannot be nil"}
	}
	val := reflect.ValueOf(p)
	if val.Kind() != reflect.Pointer {
		return &UnmarshalError{Message: "destination value must be a pointer"}
	}
	if val.IsNil() {
		return &UnmarshalError{Message: "destination pointer cannot be nil"}
	}
	return fromValue(v, val.Elem(), newConfig(opts))
}

func fromValue(v ir.Value, val reflect.Value, cfg *config) error {
	typ := val.Type()
	if val.CanAddr() && reflect.PointerTo(typ).Implements(decoderType) {
		ok, err := val.Addr().Interface().(Decoder).DecodeValue(v, cfg.ctx)
		if err != nil {
			return err
		}
		if !ok {
			val.SetZero()
		}
		return nil
	}
	switch typ {
	case valueType:
		val.Set(reflect.ValueOf(v))
		return nil
	case numberType:
		n, err := Number(v, cfg.ctx)
		if err != nil {
			return err
		}
		if n == nil {
			val.SetZero()
			return nil
		}
		val.Set(reflect.ValueOf(*n))
		return nil
	}
	if v.IsNull() {
		val.SetZero()
		return nil
	}

	switch typ.Kind() {
	case reflect.Pointer:
		if val.IsNil() {
			val.Set(reflect.New(typ.Elem()))
		}
		return fromValue(v, val.Elem(), cfg)

	case reflect.String:
		s, err := String(v, cfg.ctx)
		if err != nil {
			return err
		}
		val.SetString(*s)

	case reflect.Bool:
		b, err := Bool(v, cfg.ctx)
		if err != nil {
			return err
		}
		val.SetBool(*b)

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := Int64(v, cfg.ctx)
		if err != nil {
			return err
		}
		if val.OverflowInt(*i) {
			return &TypeError{Expected: typ.String(), Actual: "number " + v.String(), Message: fmt.Sprintf("value %d overflows %s", *i, typ), Value: v}
		}
		val.SetInt(*i)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u, err := Uint64(v, cfg.ctx)
		if err != nil {
			return err
		}
		if val.OverflowUint(*u) {
			return &TypeError{Expected: typ.String(), Actual: "number " + v.String(), Message: fmt.Sprintf("value %d overflows %s", *u, typ), Value: v}
		}
		val.SetUint(*u)

	case reflect.Float32, reflect.Float64:
		f, err := Float64(v, cfg.ctx)
		if err != nil {
			return err
		}
		val.SetFloat(*f)

	case reflect.Slice:
		items, ok := v.Array()
		if !ok {
			return typeError("array", v)
		}
		s := reflect.MakeSlice(typ, len(items), len(items))
		for i, item := range items {
			if err := fromValue(item, s.Index(i), cfg); err != nil {
				return atPath(err, fmt.Sprintf("[%d]", i))
			}
		}
		val.Set(s)

	case reflect.Array:
		items, ok := v.Array()
		if !ok {
			return typeError("array", v)
		}
		for i := 0; i < val.Len(); i++ {
			if i >= len(items) {
				val.Index(i).SetZero()
				continue
			}
			if err := fromValue(items[i], val.Index(i), cfg); err != nil {
				return atPath(err, fmt.Sprintf("[%d]", i))
			}
		}

	case reflect.Map:
		if typ.Key().Kind() != reflect.String {
			return &UnmarshalError{Message: fmt.Sprintf("unsupported map key type: %s", typ.Key())}
		}
		if v.Type() != ir.ObjectType {
			return typeError("object", v)
		}
		m := reflect.MakeMapWithSize(typ, v.Len())
		for k, item := range v.Members() {
			ev := reflect.New(typ.Elem()).Elem()
			if err := fromValue(item, ev, cfg); err != nil {
				return atPath(err, k)
			}
			m.SetMapIndex(reflect.ValueOf(k).Convert(typ.Key()), ev)
		}
		val.Set(m)

	case reflect.Struct:
		if v.Type() != ir.ObjectType {
			return typeError("object", v)
		}
		fields, err := structFields(typ, cfg.tag)
		if err != nil {
			return &UnmarshalError{Message: err.Error(), Err: err}
		}
		for _, f := range fields {
			if !v.Has(f.name) {
				continue
			}
			if err := fromValue(v.Key(f.name), val.FieldByIndex(f.index), cfg); err != nil {
				return atPath(err, f.name)
			}
		}

	case reflect.Interface:
		if typ.NumMethod() != 0 {
			return &UnmarshalError{Message: fmt.Sprintf("unsupported interface type: %s", typ)}
		}
		val.Set(reflect.ValueOf(v.ToDynamic()))

	default:
		return &UnmarshalError{Message: fmt.Sprintf("unsupported type: %s", typ)}
	}
	return nil
}
