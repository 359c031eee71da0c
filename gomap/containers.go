package gomap

import (
	"cmp"
	"maps"
	"slices"
	"strconv"

	"github.com/signadot/jvalue/debug"
	"github.com/signadot/jvalue/ir"
)

// Optional wraps dec so that null decodes to a present nil *T. Combined
// with Slice or Map it keeps null elements instead of dropping them.
func Optional[T any](dec DecodeFunc[T]) DecodeFunc[*T] {
	return func(v ir.Value, ctx any) (**T, error) {
		x, err := dec(v, ctx)
		if err != nil {
			return nil, err
		}
		return &x, nil
	}
}

// Slice decodes an array, dropping elements which decode to nil. Null
// decodes to nil and any other non-array is a *TypeError.
func Slice[T any](dec DecodeFunc[T]) DecodeFunc[[]T] {
	return func(v ir.Value, ctx any) (*[]T, error) {
		if v.IsNull() {
			return nil, nil
		}
		items, ok := v.Array()
		if !ok {
			return nil, typeError("array", v)
		}
		res := make([]T, 0, len(items))
		for i, item := range items {
			x, err := dec(item, ctx)
			if err != nil {
				return nil, atPath(err, "["+strconv.Itoa(i)+"]")
			}
			if x == nil {
				if debug.Decode() {
					debug.Logf("slice: dropping null element %d\n", i)
				}
				continue
			}
			res = append(res, *x)
		}
		return &res, nil
	}
}

// OptionalSlice decodes an array keeping null elements as nil.
func OptionalSlice[T any](dec DecodeFunc[T]) DecodeFunc[[]*T] {
	return Slice(Optional(dec))
}

// Map decodes an object, dropping members which decode to nil.
func Map[T any](dec DecodeFunc[T]) DecodeFunc[map[string]T] {
	return func(v ir.Value, ctx any) (*map[string]T, error) {
		if v.IsNull() {
			return nil, nil
		}
		if v.Type() != ir.ObjectType {
			return nil, typeError("object", v)
		}
		res := make(map[string]T, v.Len())
		for k, item := range v.Members() {
			x, err := dec(item, ctx)
			if err != nil {
				return nil, atPath(err, k)
			}
			if x == nil {
				continue
			}
			res[k] = *x
		}
		return &res, nil
	}
}

// OptionalMap decodes an object keeping null members as nil.
func OptionalMap[T any](dec DecodeFunc[T]) DecodeFunc[map[string]*T] {
	return Map(Optional(dec))
}

// Set decodes an array into a set, dropping elements which decode to nil.
func Set[T comparable](dec DecodeFunc[T]) DecodeFunc[map[T]struct{}] {
	return func(v ir.Value, ctx any) (*map[T]struct{}, error) {
		xs, err := Slice(dec)(v, ctx)
		if xs == nil || err != nil {
			return nil, err
		}
		res := make(map[T]struct{}, len(*xs))
		for _, x := range *xs {
			res[x] = struct{}{}
		}
		return &res, nil
	}
}

// EncodeOptional encodes nil as null.
func EncodeOptional[T any](enc EncodeFunc[T]) EncodeFunc[*T] {
	return func(x *T, ctx any) (ir.Value, error) {
		if x == nil {
			return ir.Null(), nil
		}
		return enc(*x, ctx)
	}
}

// EncodeSlice encodes a slice as an array. A nil slice encodes as null.
func EncodeSlice[T any](enc EncodeFunc[T]) EncodeFunc[[]T] {
	return func(xs []T, ctx any) (ir.Value, error) {
		if xs == nil {
			return ir.Null(), nil
		}
		items := make([]ir.Value, len(xs))
		for i, x := range xs {
			v, err := enc(x, ctx)
			if err != nil {
				return ir.Null(), marshalAtPath(err, "["+strconv.Itoa(i)+"]")
			}
			items[i] = v
		}
		return ir.FromSlice(items), nil
	}
}

// EncodeMap encodes a map as an object with sorted keys. A nil map
// encodes as null.
func EncodeMap[T any](enc EncodeFunc[T]) EncodeFunc[map[string]T] {
	return func(m map[string]T, ctx any) (ir.Value, error) {
		if m == nil {
			return ir.Null(), nil
		}
		kvs := make([]ir.KeyVal, 0, len(m))
		for _, k := range slices.Sorted(maps.Keys(m)) {
			v, err := enc(m[k], ctx)
			if err != nil {
				return ir.Null(), marshalAtPath(err, k)
			}
			kvs = append(kvs, ir.KV(k, v))
		}
		return ir.FromKeyVals(kvs), nil
	}
}

// EncodeSet encodes a set as a sorted array.
func EncodeSet[T cmp.Ordered](enc EncodeFunc[T]) EncodeFunc[map[T]struct{}] {
	return func(s map[T]struct{}, ctx any) (ir.Value, error) {
		if s == nil {
			return ir.Null(), nil
		}
		xs := slices.Sorted(maps.Keys(s))
		if xs == nil {
			xs = []T{}
		}
		return EncodeSlice(enc)(xs, ctx)
	}
}
