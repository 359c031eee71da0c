package ir

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/signadot/jvalue/number"
	"github.com/signadot/jvalue/token"

	gojson "github.com/goccy/go-json"
)

// Codec is a text codec for the dynamic shapes produced by ToDynamic and
// accepted by FromDynamic. Unmarshal may return a Value; otherwise it must
// return numbers as number literals (such as json.Number) rather than
// floats, so that finite numbers beyond float64 range survive.
type Codec interface {
	Marshal(v any, pretty bool) ([]byte, error)
	Unmarshal(data []byte) (any, error)
}

// DefaultCodec is the goccy/go-json codec used when no other is given.
func DefaultCodec() Codec {
	return goccyCodec{}
}

type goccyCodec struct{}

func (goccyCodec) Marshal(v any, pretty bool) ([]byte, error) {
	if pretty {
		return gojson.MarshalIndent(v, "", "  ")
	}
	return gojson.Marshal(v)
}

// Unmarshal decodes straight into a Value so numbers never pass through
// float64. The syntax check is encoding/json's, which unlike goccy's does
// not reject finite numbers outside float64 range.
func (goccyCodec) Unmarshal(data []byte) (any, error) {
	if !json.Valid(data) {
		return nil, fmt.Errorf("%w: invalid JSON", ErrParse)
	}
	var res Value
	if err := gojson.Unmarshal(data, &res); err != nil {
		if errors.Is(err, ErrParse) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return res, nil
}

type codecConfig struct {
	pretty bool
	codec  Codec
}

type SerializeOption func(*codecConfig)

func Pretty(v bool) SerializeOption {
	return func(c *codecConfig) { c.pretty = v }
}

func WithCodec(codec Codec) SerializeOption {
	return func(c *codecConfig) { c.codec = codec }
}

type ParseOption func(*codecConfig)

func ParseCodec(codec Codec) ParseOption {
	return func(c *codecConfig) { c.codec = codec }
}

// Serialize renders v as JSON text with the configured codec. Values
// holding NaN or infinite numbers cannot be serialized.
func Serialize(v Value, opts ...SerializeOption) ([]byte, error) {
	cfg := &codecConfig{codec: DefaultCodec()}
	for _, opt := range opts {
		opt(cfg)
	}
	if err := checkFinite(v); err != nil {
		return nil, err
	}
	return cfg.codec.Marshal(v.ToDynamic(), cfg.pretty)
}

// Parse reads JSON text with the configured codec.
func Parse(data []byte, opts ...ParseOption) (Value, error) {
	cfg := &codecConfig{codec: DefaultCodec()}
	for _, opt := range opts {
		opt(cfg)
	}
	x, err := cfg.codec.Unmarshal(data)
	if err != nil {
		return Value{}, err
	}
	return FromDynamic(x)
}

func checkFinite(v Value) error {
	switch v.typ {
	case NumberType:
		if !v.n.IsFinite() {
			return fmt.Errorf("%w: %s", ErrNonFinite, v.n)
		}
	case ArrayType:
		for i := range v.items {
			if err := checkFinite(v.items[i]); err != nil {
				return err
			}
		}
	case ObjectType:
		for i := range v.values {
			if err := checkFinite(v.values[i]); err != nil {
				return err
			}
		}
	}
	return nil
}

// String renders v as compact JSON with object keys in insertion order.
// Non-finite numbers appear as NaN, Infinity or -Infinity, which is not
// valid JSON.
func (v Value) String() string {
	return string(v.appendText(nil))
}

func (v Value) appendText(d []byte) []byte {
	switch v.typ {
	case NullType:
		return append(d, "null"...)
	case BoolType:
		if v.b {
			return append(d, "true"...)
		}
		return append(d, "false"...)
	case NumberType:
		return append(d, v.n.String()...)
	case StringType:
		return append(d, token.Quote(v.s)...)
	case ArrayType:
		d = append(d, '[')
		for i := range v.items {
			if i > 0 {
				d = append(d, ',')
			}
			d = v.items[i].appendText(d)
		}
		return append(d, ']')
	case ObjectType:
		d = append(d, '{')
		for i, k := range v.fields {
			if i > 0 {
				d = append(d, ',')
			}
			d = append(d, token.Quote(k)...)
			d = append(d, ':')
			d = v.values[i].appendText(d)
		}
		return append(d, '}')
	}
	return d
}

func (v Value) MarshalJSON() ([]byte, error) {
	if err := checkFinite(v); err != nil {
		return nil, err
	}
	return v.appendText(nil), nil
}

// UnmarshalJSON decodes d by trying, in order, null, string, number, bool,
// array and object. A malformed number aborts rather than falling through.
func (v *Value) UnmarshalJSON(d []byte) error {
	d = bytes.TrimSpace(d)
	res, err := Attempt(
		func() (Value, error) { return decodeNull(d) },
		func() (Value, error) { return decodeString(d) },
		func() (Value, error) { return decodeNumber(d) },
		func() (Value, error) { return decodeBool(d) },
		func() (Value, error) { return decodeArray(d) },
		func() (Value, error) { return decodeObject(d) },
	)
	if err != nil {
		return err
	}
	*v = res
	return nil
}

func decodeNull(d []byte) (Value, error) {
	if string(d) != "null" {
		return Value{}, &MismatchError{Want: NullType, Text: string(d)}
	}
	return Value{}, nil
}

func decodeString(d []byte) (Value, error) {
	if len(d) == 0 || d[0] != '"' {
		return Value{}, &MismatchError{Want: StringType, Text: string(d)}
	}
	var s string
	if err := gojson.Unmarshal(d, &s); err != nil {
		return Value{}, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return FromString(s), nil
}

func decodeNumber(d []byte) (Value, error) {
	if len(d) == 0 || (d[0] != '-' && (d[0] < '0' || d[0] > '9')) {
		return Value{}, &MismatchError{Want: NumberType, Text: string(d)}
	}
	n, err := number.Parse(string(d))
	if err != nil {
		return Value{}, err
	}
	return FromNumber(n), nil
}

func decodeBool(d []byte) (Value, error) {
	switch string(d) {
	case "true":
		return FromBool(true), nil
	case "false":
		return FromBool(false), nil
	}
	return Value{}, &MismatchError{Want: BoolType, Text: string(d)}
}

func decodeArray(d []byte) (Value, error) {
	if len(d) == 0 || d[0] != '[' {
		return Value{}, &MismatchError{Want: ArrayType, Text: string(d)}
	}
	var items []Value
	if err := gojson.Unmarshal(d, &items); err != nil {
		return Value{}, fmt.Errorf("%w: %w", ErrParse, err)
	}
	if items == nil {
		items = []Value{}
	}
	return Value{typ: ArrayType, items: items}, nil
}

func decodeObject(d []byte) (Value, error) {
	if len(d) == 0 || d[0] != '{' {
		return Value{}, &MismatchError{Want: ObjectType, Text: string(d)}
	}
	var m map[string]Value
	if err := gojson.Unmarshal(d, &m); err != nil {
		return Value{}, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return FromMap(m), nil
}
