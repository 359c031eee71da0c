// Package eval runs expr-lang programs over Values.
//
// Programs see the variables it (the current element), index (its
// position, or -1 outside an array), root (the whole document) and path
// (the kpath text of it), plus every registered Symbol as a function.
//
//	kept, err := eval.Filter(doc, kpath.MustParse("items"), "it.n > 2 && index < 10")
//	doubled, err := eval.Map(doc, kpath.MustParse("items"), "it.n * 2")
//	total, err := eval.Eval(doc, "len(root.items)")
package eval
