package patch

import (
	"strconv"
	"strings"

	"github.com/signadot/jvalue/ir"
	"github.com/signadot/jvalue/ir/kpath"
	"github.com/signadot/jvalue/libdiff"
)

var pointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")

// Pointer renders p as an RFC 6901 JSON Pointer. A last segment becomes
// "-", which JSON Patch reads as the end of the array.
func Pointer(p kpath.Path) string {
	buf := &strings.Builder{}
	for _, seg := range p {
		buf.WriteByte('/')
		switch seg.Kind {
		case kpath.KeyKind:
			buf.WriteString(pointerEscaper.Replace(seg.Key))
		case kpath.IndexKind:
			buf.WriteString(strconv.Itoa(seg.Index))
		case kpath.LastKind:
			buf.WriteByte('-')
		}
	}
	return buf.String()
}

// Create returns JSON Patch operations turning from into to.
func Create(from, to ir.Value) ir.Value {
	changes := libdiff.Diff(from, to)
	ops := make([]ir.Value, len(changes))
	for i, c := range changes {
		path := ir.KV("path", ir.FromString(Pointer(c.Path)))
		switch c.Op {
		case libdiff.Insert:
			ops[i] = ir.Obj(ir.KV("op", ir.FromString("add")), path, ir.KV("value", c.To))
		case libdiff.Delete:
			ops[i] = ir.Obj(ir.KV("op", ir.FromString("remove")), path)
		default:
			ops[i] = ir.Obj(ir.KV("op", ir.FromString("replace")), path, ir.KV("value", c.To))
		}
	}
	return ir.FromSlice(ops)
}
