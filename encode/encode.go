package encode

import (
	"fmt"
	"io"
	"strings"

	"github.com/signadot/jvalue/ir"
	"github.com/signadot/jvalue/token"
)

type EncState struct {
	depth, indent int
	pretty        bool

	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes v to w as JSON text followed by a newline. Object members
// appear in insertion order. NaN and infinite numbers have no JSON form and
// are reported as ir.ErrNonFinite.
func Encode(v ir.Value, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	if err := encode(v, w, es); err != nil {
		return err
	}
	return writeString(w, "\n")
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}

func writeNL(w io.Writer, es *EncState) error {
	if !es.pretty {
		return nil
	}
	return writeString(w, "\n"+strings.Repeat(" ", es.indent*es.depth))
}

func applyColor(es *EncState, t ir.Type, attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(t, attr, v)
}

func writeSep(w io.Writer, es *EncState, t ir.Type, sep string) error {
	return writeString(w, applyColor(es, t, SepColor, sep))
}

func encode(v ir.Value, w io.Writer, es *EncState) error {
	switch v.Type() {
	case ir.ObjectType:
		return encodeObject(v, w, es)
	case ir.ArrayType:
		return encodeArray(v, w, es)
	case ir.StringType:
		s, _ := v.Str()
		return writeString(w, applyColor(es, ir.StringType, ValueColor, token.Quote(s)))
	case ir.NumberType:
		return encodeNumber(v, w, es)
	case ir.BoolType:
		b, _ := v.Bool()
		s := "false"
		if b {
			s = "true"
		}
		return writeString(w, applyColor(es, ir.BoolType, ValueColor, s))
	case ir.NullType:
		return writeString(w, applyColor(es, ir.NullType, ValueColor, "null"))
	default:
		panic("type")
	}
}

func encodeNumber(v ir.Value, w io.Writer, es *EncState) error {
	n, _ := v.Number()
	if !n.IsFinite() {
		return fmt.Errorf("%w: %w: %s", ErrEncoding, ir.ErrNonFinite, n)
	}
	return writeString(w, applyColor(es, ir.NumberType, ValueColor, n.String()))
}

func encodeObject(v ir.Value, w io.Writer, es *EncState) error {
	if v.Len() == 0 {
		return writeSep(w, es, ir.ObjectType, "{}")
	}
	if err := writeSep(w, es, ir.ObjectType, "{"); err != nil {
		return err
	}
	colon := ":"
	if es.pretty {
		colon = ": "
	}
	es.depth++
	i := 0
	for k, item := range v.Members() {
		if i > 0 {
			if err := writeSep(w, es, ir.ObjectType, ","); err != nil {
				return err
			}
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := writeString(w, applyColor(es, ir.ObjectType, FieldColor, token.Quote(k))); err != nil {
			return err
		}
		if err := writeSep(w, es, ir.ObjectType, colon); err != nil {
			return err
		}
		if err := encode(item, w, es); err != nil {
			return err
		}
		i++
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeSep(w, es, ir.ObjectType, "}")
}

func encodeArray(v ir.Value, w io.Writer, es *EncState) error {
	items, _ := v.Array()
	if len(items) == 0 {
		return writeSep(w, es, ir.ArrayType, "[]")
	}
	if err := writeSep(w, es, ir.ArrayType, "["); err != nil {
		return err
	}
	es.depth++
	for i, item := range items {
		if i > 0 {
			if err := writeSep(w, es, ir.ArrayType, ","); err != nil {
				return err
			}
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := encode(item, w, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeSep(w, es, ir.ArrayType, "]")
}
