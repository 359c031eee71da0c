package libdiff

import (
	"strings"

	"github.com/signadot/jvalue/ir"
	"github.com/signadot/jvalue/ir/kpath"
)

// Change is a single difference at Path. From is null for inserts and To
// is null for deletes. Text holds a character diff when both sides are
// strings.
type Change struct {
	Op   Op
	Path kpath.Path
	From ir.Value
	To   ir.Value
	Text string
}

func MakeChange(p kpath.Path, from, to *ir.Value) Change {
	c := Change{Path: p}
	switch {
	case from == nil:
		c.Op = Insert
		c.To = *to
	case to == nil:
		c.Op = Delete
		c.From = *from
	default:
		c.Op = Replace
		c.From, c.To = *from, *to
		fs, fok := from.Str()
		ts, tok := to.Str()
		if fok && tok {
			c.Text = DiffString(fs, ts)
		}
	}
	return c
}

func (c Change) String() string {
	buf := &strings.Builder{}
	buf.WriteString(c.Op.sigil())
	buf.WriteByte(' ')
	if len(c.Path) == 0 {
		buf.WriteByte('.')
	} else {
		buf.WriteString(c.Path.String())
	}
	buf.WriteString(": ")
	switch c.Op {
	case Insert:
		buf.WriteString(c.To.String())
	case Delete:
		buf.WriteString(c.From.String())
	default:
		if c.Text != "" {
			buf.WriteString(c.Text)
			break
		}
		buf.WriteString(c.From.String())
		buf.WriteString(" -> ")
		buf.WriteString(c.To.String())
	}
	return buf.String()
}
