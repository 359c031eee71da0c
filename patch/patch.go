package patch

import (
	"fmt"

	"github.com/signadot/jvalue/debug"
	"github.com/signadot/jvalue/ir"

	jsonpatch "github.com/evanphx/json-patch"
)

// Apply applies the JSON Patch operations ops to doc.
func Apply(doc, ops ir.Value) (ir.Value, error) {
	if ops.Type() != ir.ArrayType {
		return ir.Null(), fmt.Errorf("%w: operations must be an array, got %s", ErrPatch, ops.Type())
	}
	o, err := ops.MarshalJSON()
	if err != nil {
		return ir.Null(), err
	}
	jp, err := jsonpatch.DecodePatch(o)
	if err != nil {
		return ir.Null(), fmt.Errorf("%w: %w", ErrPatch, err)
	}
	d, err := doc.MarshalJSON()
	if err != nil {
		return ir.Null(), err
	}
	if debug.Patch() {
		debug.Logf("json-patch %s on %s\n", o, d)
	}
	out, err := jp.Apply(d)
	if err != nil {
		return ir.Null(), fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return ir.Parse(out)
}

// Merge applies the merge patch mp to doc. Null members of mp remove the
// corresponding members of doc.
func Merge(doc, mp ir.Value) (ir.Value, error) {
	d, err := doc.MarshalJSON()
	if err != nil {
		return ir.Null(), err
	}
	m, err := mp.MarshalJSON()
	if err != nil {
		return ir.Null(), err
	}
	if debug.Patch() {
		debug.Logf("merge-patch %s on %s\n", m, d)
	}
	out, err := jsonpatch.MergePatch(d, m)
	if err != nil {
		return ir.Null(), fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return ir.Parse(out)
}

// CreateMerge returns a merge patch turning from into to. Both must be
// objects.
func CreateMerge(from, to ir.Value) (ir.Value, error) {
	f, err := from.MarshalJSON()
	if err != nil {
		return ir.Null(), err
	}
	t, err := to.MarshalJSON()
	if err != nil {
		return ir.Null(), err
	}
	out, err := jsonpatch.CreateMergePatch(f, t)
	if err != nil {
		return ir.Null(), fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return ir.Parse(out)
}
