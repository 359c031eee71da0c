package ir

import (
	"slices"

	"github.com/signadot/jvalue/debug"
	"github.com/signadot/jvalue/ir/kpath"
)

// DefaultMaxExtend is the largest number of slots a single index write may
// append to an array unless overridden with MaxExtend.
const DefaultMaxExtend = 10000

type setConfig struct {
	maxExtend int
}

type SetOption func(*setConfig)

// MaxExtend bounds how many slots a single index write may append to an
// array. A negative n removes the bound.
func MaxExtend(n int) SetOption {
	return func(c *setConfig) { c.maxExtend = n }
}

// Key returns the member k of an object, or null when v is not an object
// or has no such member.
func (v Value) Key(k string) Value {
	x, _ := v.lookup(k)
	return x
}

// Index returns element i of an array, or null when v is not an array or
// i is out of range. Negative i is an *IndexError.
func (v Value) Index(i int) (Value, error) {
	if i < 0 {
		return Value{}, &IndexError{Index: i, Err: ErrNegativeIndex}
	}
	if v.typ != ArrayType || i >= len(v.items) {
		return Value{}, nil
	}
	return v.items[i], nil
}

// SetKey upserts member k. A null v becomes an empty object first; any
// other non-object is a *PathConflictError.
func (v *Value) SetKey(k string, x Value) error {
	return v.Set(kpath.Path{kpath.Key(k)}, x)
}

// SetIndex assigns element i, padding the array with nulls when i is past
// the end. A null v becomes an empty array first.
func (v *Value) SetIndex(i int, x Value, opts ...SetOption) error {
	return v.Set(kpath.Path{kpath.Index(i)}, x, opts...)
}

// Get evaluates p against v. Any segment that does not match the node it
// is applied to makes the result null:
//   - a key on a non-object or a missing key
//   - an index on a non-array, out of range or negative
//   - last on a non-array or an empty array
func (v Value) Get(p kpath.Path) Value {
	cur := v
	for _, seg := range p {
		switch seg.Kind {
		case kpath.KeyKind:
			cur = cur.Key(seg.Key)
		case kpath.IndexKind:
			if seg.Index < 0 {
				return Value{}
			}
			cur, _ = cur.Index(seg.Index)
		case kpath.LastKind:
			if cur.typ != ArrayType || len(cur.items) == 0 {
				return Value{}
			}
			cur = cur.items[len(cur.items)-1]
		}
		if cur.typ == NullType {
			return Value{}
		}
	}
	return cur
}

// GetKPath is Get with a path in text form.
func (v Value) GetKPath(s string) (Value, error) {
	p, err := kpath.Parse(s)
	if err != nil {
		return Value{}, err
	}
	return v.Get(p), nil
}

// Set assigns x at p, creating containers along the way: a null node
// followed by a key becomes an object, and one followed by an index or
// last becomes an array. Arrays are padded with nulls up to the index
// written. Last on an empty array writes index 0.
//
// A node of the wrong container kind is a *PathConflictError and a
// negative index or one past the MaxExtend bound is an *IndexError; v is
// unchanged on error.
func (v *Value) Set(p kpath.Path, x Value, opts ...SetOption) error {
	cfg := &setConfig{maxExtend: DefaultMaxExtend}
	for _, opt := range opts {
		opt(cfg)
	}
	res, err := setAt(*v, p, 0, x, cfg)
	if err != nil {
		return err
	}
	*v = res
	return nil
}

// SetKPath is Set with a path in text form.
func (v *Value) SetKPath(s string, x Value, opts ...SetOption) error {
	p, err := kpath.Parse(s)
	if err != nil {
		return err
	}
	return v.Set(p, x, opts...)
}

func setAt(cur Value, p kpath.Path, i int, x Value, cfg *setConfig) (Value, error) {
	if i == len(p) {
		return x, nil
	}
	seg := p[i]
	if seg.Kind == kpath.KeyKind {
		switch cur.typ {
		case NullType:
			if debug.Path() {
				debug.Logf("set %q: null becomes object\n", p[:i])
			}
			cur = Value{typ: ObjectType}
		case ObjectType:
		default:
			return Value{}, &PathConflictError{Path: slices.Clone(p[:i+1]), Want: ObjectType, Got: cur.typ}
		}
		child, _ := cur.lookup(seg.Key)
		child, err := setAt(child, p, i+1, x, cfg)
		if err != nil {
			return Value{}, err
		}
		return cur.withKey(seg.Key, child), nil
	}

	switch cur.typ {
	case NullType:
		if debug.Path() {
			debug.Logf("set %q: null becomes array\n", p[:i])
		}
		cur = Value{typ: ArrayType}
	case ArrayType:
	default:
		return Value{}, &PathConflictError{Path: slices.Clone(p[:i+1]), Want: ArrayType, Got: cur.typ}
	}
	idx := seg.Index
	if seg.Kind == kpath.LastKind {
		idx = max(len(cur.items)-1, 0)
	}
	if idx < 0 {
		return Value{}, &IndexError{Path: slices.Clone(p[:i+1]), Index: idx, Err: ErrNegativeIndex}
	}
	if ext := idx + 1 - len(cur.items); ext > 0 {
		if cfg.maxExtend >= 0 && ext > cfg.maxExtend {
			return Value{}, &IndexError{Path: slices.Clone(p[:i+1]), Index: idx, Err: ErrIndexLimit}
		}
		if debug.Path() {
			debug.Logf("set %q: extending array by %d\n", p[:i+1], ext)
		}
	}
	var child Value
	if idx < len(cur.items) {
		child = cur.items[idx]
	}
	child, err := setAt(child, p, i+1, x, cfg)
	if err != nil {
		return Value{}, err
	}
	return cur.withIndex(idx, child), nil
}

// Filter returns an array of the elements of the array at p for which
// keep returns true, or null when p does not address an array.
func (v Value) Filter(p kpath.Path, keep func(Value) bool) Value {
	arr := v.Get(p)
	if arr.typ != ArrayType {
		return Value{}
	}
	res := Value{typ: ArrayType, items: []Value{}}
	for _, item := range arr.items {
		if keep(item) {
			res.items = append(res.items, item)
		}
	}
	return res
}

// Map returns an array of f applied to each element of the array at p,
// or null when p does not address an array. The first error from f is
// returned.
func (v Value) Map(p kpath.Path, f func(Value) (Value, error)) (Value, error) {
	arr := v.Get(p)
	if arr.typ != ArrayType {
		return Value{}, nil
	}
	res := Value{typ: ArrayType, items: make([]Value, len(arr.items))}
	for i, item := range arr.items {
		y, err := f(item)
		if err != nil {
			return Value{}, err
		}
		res.items[i] = y
	}
	return res, nil
}
