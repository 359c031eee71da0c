// Package patch applies RFC 6902 JSON Patch and RFC 7386 JSON Merge Patch
// documents to Values.
//
//	ops := ir.Arr(ir.Obj(
//	    ir.KV("op", ir.FromString("replace")),
//	    ir.KV("path", ir.FromString("/a")),
//	    ir.KV("value", ir.FromInt(2)),
//	))
//	v, err := patch.Apply(doc, ops)
//
// Create goes the other way, deriving a JSON Patch from a libdiff diff.
package patch
