package libdiff

import (
	"github.com/signadot/jvalue/debug"
	"github.com/signadot/jvalue/ir"
	"github.com/signadot/jvalue/ir/kpath"
)

// Diff returns the changes which turn from into to. Numbers are compared
// by value, so 1 and 1.0 do not differ. Object changes follow the key
// order of from, then keys only in to. Trailing array deletes are listed
// from the last index down so that applying them in order stays valid.
func Diff(from, to ir.Value) []Change {
	res := diff(nil, from, to, nil)
	if debug.Diff() {
		for _, c := range res {
			debug.Logf("diff %s\n", c)
		}
	}
	return res
}

func diff(p kpath.Path, from, to ir.Value, res []Change) []Change {
	if from.Type() != to.Type() {
		return append(res, MakeChange(p, &from, &to))
	}
	switch from.Type() {
	case ir.ObjectType:
		return diffObject(p, from, to, res)
	case ir.ArrayType:
		return DiffArrayByIndex(p, from, to, res)
	}
	if from.Equal(to) {
		return res
	}
	return append(res, MakeChange(p, &from, &to))
}

func diffObject(p kpath.Path, from, to ir.Value, res []Change) []Change {
	fromMembers, _ := from.Object()
	toMembers, _ := to.Object()
	for k, fv := range from.Members() {
		kp := kpath.Append(p, kpath.Key(k))
		tv, ok := toMembers[k]
		if !ok {
			res = append(res, MakeChange(kp, &fv, nil))
			continue
		}
		res = diff(kp, fv, tv, res)
	}
	for k, tv := range to.Members() {
		if _, ok := fromMembers[k]; ok {
			continue
		}
		res = append(res, MakeChange(kpath.Append(p, kpath.Key(k)), nil, &tv))
	}
	return res
}
