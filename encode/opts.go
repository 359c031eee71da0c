package encode

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

type EncodeOption func(*EncState)

// EncodePretty puts every array item and object member on its own line.
func EncodePretty(v bool) EncodeOption {
	return func(es *EncState) { es.pretty = v }
}

// EncodeIndent sets the number of spaces per level in pretty output and
// implies EncodePretty(true). The default is 2.
func EncodeIndent(n int) EncodeOption {
	return func(es *EncState) {
		es.pretty = true
		es.indent = max(n, 0)
	}
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) {
		if c == nil {
			es.Color = nil
			return
		}
		es.Color = c.Color
	}
}

// AutoColors enables NewColors when w is a terminal.
func AutoColors(w io.Writer) EncodeOption {
	return func(es *EncState) {
		f, ok := w.(*os.File)
		if !ok {
			return
		}
		if isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()) {
			es.Color = NewColors().Color
		}
	}
}
