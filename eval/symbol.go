package eval

import "github.com/expr-lang/expr"

// Symbol is a function made available to programs under its name.
type Symbol interface {
	String() string
	Option(c *Context) expr.Option
}

type name string

func (s name) String() string {
	return string(s)
}
