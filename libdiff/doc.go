// Package libdiff computes structural differences between Values.
//
// Objects are compared by key and arrays by index. String leaves which
// differ carry a character level diff text.
//
//	changes := libdiff.Diff(from, to)
//	for _, c := range changes {
//	    fmt.Println(c)
//	}
//	v, err := libdiff.Apply(from, changes) // v equals to
package libdiff
