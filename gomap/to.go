package gomap

import (
	"fmt"
	"maps"
	"reflect"
	"slices"

	"github.com/signadot/jvalue/ir"
	"github.com/signadot/jvalue/number"
)

// ToValue converts a Go value to a Value. Types implementing Encoder
// encode themselves; other types are mapped by reflection. Nil pointers,
// slices and maps map to null, and maps are rendered with sorted keys.
func ToValue(x any, opts ...Option) (ir.Value, error) {
	if x == nil {
		return ir.Null(), nil
	}
	return toValue(reflect.ValueOf(x), newConfig(opts))
}

func toValue(val reflect.Value, cfg *config) (ir.Value, error) {
	if !val.IsValid() {
		return ir.Null(), nil
	}
	typ := val.Type()
	if typ.Implements(encoderType) {
		if (typ.Kind() == reflect.Pointer || typ.Kind() == reflect.Interface) && val.IsNil() {
			return ir.Null(), nil
		}
		return val.Interface().(Encoder).EncodeValue(cfg.ctx)
	}
	if typ.Kind() != reflect.Pointer && reflect.PointerTo(typ).Implements(encoderType) {
		ptr := reflect.New(typ)
		ptr.Elem().Set(val)
		return ptr.Interface().(Encoder).EncodeValue(cfg.ctx)
	}
	switch typ {
	case valueType:
		return val.Interface().(ir.Value), nil
	case numberType:
		return ir.FromNumber(val.Interface().(number.Number)), nil
	}

	switch typ.Kind() {
	case reflect.Pointer, reflect.Interface:
		if val.IsNil() {
			return ir.Null(), nil
		}
		return toValue(val.Elem(), cfg)

	case reflect.String:
		return ir.FromString(val.String()), nil

	case reflect.Bool:
		return ir.FromBool(val.Bool()), nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return ir.FromInt(val.Int()), nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return ir.FromNumber(number.FromUint64(val.Uint())), nil

	case reflect.Float32, reflect.Float64:
		return ir.FromFloat(val.Float()), nil

	case reflect.Slice, reflect.Array:
		if typ.Kind() == reflect.Slice && val.IsNil() {
			return ir.Null(), nil
		}
		items := make([]ir.Value, val.Len())
		for i := range items {
			item, err := toValue(val.Index(i), cfg)
			if err != nil {
				return ir.Null(), marshalAtPath(err, fmt.Sprintf("[%d]", i))
			}
			items[i] = item
		}
		return ir.FromSlice(items), nil

	case reflect.Map:
		if typ.Key().Kind() != reflect.String {
			return ir.Null(), &MarshalError{Message: fmt.Sprintf("unsupported map key type: %s", typ.Key())}
		}
		if val.IsNil() {
			return ir.Null(), nil
		}
		byKey := make(map[string]reflect.Value, val.Len())
		iter := val.MapRange()
		for iter.Next() {
			byKey[iter.Key().String()] = iter.Value()
		}
		kvs := make([]ir.KeyVal, 0, len(byKey))
		for _, k := range slices.Sorted(maps.Keys(byKey)) {
			item, err := toValue(byKey[k], cfg)
			if err != nil {
				return ir.Null(), marshalAtPath(err, k)
			}
			if cfg.omitNull && item.IsNull() {
				continue
			}
			kvs = append(kvs, ir.KV(k, item))
		}
		return ir.FromKeyVals(kvs), nil

	case reflect.Struct:
		fields, err := structFields(typ, cfg.tag)
		if err != nil {
			return ir.Null(), &MarshalError{Message: err.Error(), Err: err}
		}
		kvs := make([]ir.KeyVal, 0, len(fields))
		for _, f := range fields {
			fv := val.FieldByIndex(f.index)
			if f.omitEmpty && fv.IsZero() {
				continue
			}
			item, err := toValue(fv, cfg)
			if err != nil {
				return ir.Null(), marshalAtPath(err, f.name)
			}
			if cfg.omitNull && item.IsNull() {
				continue
			}
			kvs = append(kvs, ir.KV(f.name, item))
		}
		return ir.FromKeyVals(kvs), nil
	}
	return ir.Null(), &MarshalError{Message: fmt.Sprintf("unsupported type: %s", typ)}
}
