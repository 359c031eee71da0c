package libdiff

import "slices"

// Reverse returns the changes which undo changes, in reverse order.
func Reverse(changes []Change) []Change {
	res := make([]Change, len(changes))
	for i, c := range changes {
		r := Change{Path: c.Path, From: c.To, To: c.From}
		switch c.Op {
		case Insert:
			r.Op = Delete
		case Delete:
			r.Op = Insert
		default:
			r = MakeChange(c.Path, &c.To, &c.From)
		}
		res[i] = r
	}
	slices.Reverse(res)
	return res
}
