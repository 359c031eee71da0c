// Package kpath provides key paths: flat addresses into a JSON value.
//
// A path is an ordered list of segments. Each segment is one of
//   - a key, addressing an object member: .name
//   - an index, addressing an array element: [3]
//   - last, addressing an array's final element, resolved when the path
//     is evaluated: [$]
//
// # Usage
//
//	p := kpath.Append(kpath.Key("content"), kpath.Append(kpath.Last(), kpath.Key("elem")))
//	p.String() // "content[$].elem"
//
//	q, err := kpath.Parse(`users[0]."display name"`)
//
// Append is associative: Append(Append(a, b), c) and Append(a, Append(b, c))
// produce the same segments. There is no nested form to evaluate; every Path
// is already flat.
//
// # Related Packages
//
//   - github.com/signadot/jvalue/ir - evaluates paths with Value.Get and Value.Set
package kpath
