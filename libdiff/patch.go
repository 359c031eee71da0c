package libdiff

import (
	"fmt"
	"slices"

	"github.com/signadot/jvalue/debug"
	"github.com/signadot/jvalue/ir"
	"github.com/signadot/jvalue/ir/kpath"
)

// Apply applies changes to v in order. Each change must find From at its
// path, and inserts must address a missing key or the end of an array.
// Otherwise an error wrapping ErrConflict is returned and v is unchanged.
func Apply(v ir.Value, changes []Change) (ir.Value, error) {
	res := v
	for _, c := range changes {
		var err error
		res, err = apply(res, c)
		if err != nil {
			return v, err
		}
		if debug.Diff() {
			debug.Logf("applied %s\n", c)
		}
	}
	return res, nil
}

func apply(v ir.Value, c Change) (ir.Value, error) {
	if len(c.Path) == 0 {
		if c.Op != Insert && !v.Equal(c.From) {
			return v, conflict(c, v)
		}
		return c.To, nil
	}
	pp := c.Path.Parent()
	parent := v.Get(pp)
	last := c.Path[len(c.Path)-1]
	var (
		present bool
		cur     ir.Value
	)
	switch last.Kind {
	case kpath.KeyKind:
		if parent.Type() != ir.ObjectType {
			return v, conflict(c, parent)
		}
		present = parent.Has(last.Key)
		cur = parent.Key(last.Key)
	default:
		if parent.Type() != ir.ArrayType {
			return v, conflict(c, parent)
		}
		i := last.Index
		if last.Kind == kpath.LastKind {
			i = parent.Len() - 1
			if c.Op == Insert {
				i = parent.Len()
			}
		}
		present = i >= 0 && i < parent.Len()
		if c.Op == Insert && i != parent.Len() {
			return v, conflict(c, parent)
		}
		last = kpath.Index(i)
		cur, _ = parent.Index(i)
	}
	switch c.Op {
	case Insert:
		if present {
			return v, conflict(c, cur)
		}
	default:
		if !present || !cur.Equal(c.From) {
			return v, conflict(c, cur)
		}
	}
	if c.Op == Delete {
		parent = without(parent, last)
		if len(pp) == 0 {
			return parent, nil
		}
		if err := v.Set(pp, parent); err != nil {
			return v, err
		}
		return v, nil
	}
	if err := v.Set(kpath.Append(pp, last), c.To); err != nil {
		return v, err
	}
	return v, nil
}

func without(parent ir.Value, seg kpath.Segment) ir.Value {
	if seg.Kind == kpath.KeyKind {
		kvs := make([]ir.KeyVal, 0, parent.Len())
		for k, item := range parent.Members() {
			if k == seg.Key {
				continue
			}
			kvs = append(kvs, ir.KV(k, item))
		}
		return ir.FromKeyVals(kvs)
	}
	items, _ := parent.Array()
	return ir.FromSlice(slices.Delete(items, seg.Index, seg.Index+1))
}

func conflict(c Change, got ir.Value) error {
	return fmt.Errorf("%w: %s %s, found %s", ErrConflict, c.Op, c.Path, got)
}
