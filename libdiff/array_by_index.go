package libdiff

import (
	"github.com/signadot/jvalue/ir"
	"github.com/signadot/jvalue/ir/kpath"
)

// DiffArrayByIndex compares the elements shared by from and to pairwise,
// then deletes or inserts the tail.
func DiffArrayByIndex(p kpath.Path, from, to ir.Value, res []Change) []Change {
	fromItems, _ := from.Array()
	toItems, _ := to.Array()
	n := min(len(fromItems), len(toItems))
	for i := 0; i < n; i++ {
		res = diff(kpath.Append(p, kpath.Index(i)), fromItems[i], toItems[i], res)
	}
	for i := len(fromItems) - 1; i >= n; i-- {
		res = append(res, MakeChange(kpath.Append(p, kpath.Index(i)), &fromItems[i], nil))
	}
	for i := n; i < len(toItems); i++ {
		res = append(res, MakeChange(kpath.Append(p, kpath.Index(i)), nil, &toItems[i]))
	}
	return res
}
