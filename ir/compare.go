package ir

import (
	"cmp"
	"slices"
	"strings"
)

// Compare returns an integer comparing two values.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
//
// Values of different types order as
// Null < Bool < Number < String < Array < Object. Numbers compare
// numerically, arrays element-wise, and objects by their sorted members so
// that key order does not matter.
func Compare(a, b Value) int {
	if a.typ != b.typ {
		return cmp.Compare(a.typ, b.typ)
	}
	switch a.typ {
	case NumberType:
		return a.n.Cmp(b.n)
	case StringType:
		return strings.Compare(a.s, b.s)
	case BoolType:
		if a.b == b.b {
			return 0
		}
		if !a.b {
			return -1
		}
		return 1
	case ArrayType:
		return compareArrays(a, b)
	case ObjectType:
		return compareObjects(a, b)
	}
	return 0
}

func (v Value) Equal(o Value) bool {
	return Compare(v, o) == 0
}

func compareArrays(a, b Value) int {
	minLen := min(len(a.items), len(b.items))
	for i := 0; i < minLen; i++ {
		if c := Compare(a.items[i], b.items[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a.items), len(b.items))
}

func compareObjects(a, b Value) int {
	ia, ib := sortedOrder(a.fields), sortedOrder(b.fields)
	minLen := min(len(ia), len(ib))
	for i := 0; i < minLen; i++ {
		if c := strings.Compare(a.fields[ia[i]], b.fields[ib[i]]); c != 0 {
			return c
		}
		if c := Compare(a.values[ia[i]], b.values[ib[i]]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(ia), len(ib))
}

// sortedOrder returns the indices of fields in key order.
func sortedOrder(fields []string) []int {
	res := make([]int, len(fields))
	for i := range res {
		res[i] = i
	}
	slices.SortFunc(res, func(i, j int) int {
		return strings.Compare(fields[i], fields[j])
	})
	return res
}
