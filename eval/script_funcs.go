package eval

import (
	"os"
	"strings"

	"github.com/expr-lang/expr"
)

var (
	whereamiSym = &funcSymbol{name: "whereami"}
	getpathSym  = &funcSymbol{name: "getpath"}
	getenvSym   = &funcSymbol{name: "getenv"}
)

type funcSymbol struct {
	name
}

// WhereAmI returns the symbol whereami() string, the kpath of it.
func WhereAmI() Symbol {
	return whereamiSym
}

// GetPath returns the symbol getpath(p string) any, which reads kpath p
// from root.
func GetPath() Symbol {
	return getpathSym
}

// GetEnv returns the symbol getenv(name string) string.
func GetEnv() Symbol {
	return getenvSym
}

func (s *funcSymbol) Option(c *Context) expr.Option {
	switch s.name {
	case "whereami":
		return expr.Function(s.String(), func(params ...any) (any, error) {
			return c.Path.String(), nil
		},
			new(func() string))
	case "getpath":
		return expr.Function(s.String(), func(params ...any) (any, error) {
			res, err := c.Root.GetKPath(params[0].(string))
			if err != nil {
				return nil, err
			}
			return ToAny(res), nil
		},
			new(func(string) any))
	case "getenv":
		return expr.Function(s.String(), func(params ...any) (any, error) {
			return os.Getenv(strings.TrimSpace(params[0].(string))), nil
		},
			new(func(string) string))
	}
	panic("symbol")
}
