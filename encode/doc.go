// Package encode renders Values as JSON text, keeping object members in
// insertion order.
//
// # Usage
//
//	v := ir.Obj(ir.KV("name", ir.FromString("alice")), ir.KV("age", ir.FromInt(30)))
//	err := encode.Encode(v, os.Stdout, encode.EncodePretty(true))
//
//	// colors only when stdout is a terminal
//	err = encode.Encode(v, os.Stdout, encode.AutoColors(os.Stdout))
//
// # Related Packages
//
//   - github.com/signadot/jvalue/ir - Value representation
//   - github.com/signadot/jvalue/codec - alternative text codecs
package encode
