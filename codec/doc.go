// Package codec provides ir.Codec implementations beyond the default
// goccy/go-json one.
//
//	v, err := ir.Parse(data, ir.ParseCodec(codec.JSONIter()))
//	out, err := ir.Serialize(v, ir.WithCodec(codec.YAML()))
package codec
