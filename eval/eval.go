package eval

import (
	"fmt"

	"github.com/signadot/jvalue/debug"
	"github.com/signadot/jvalue/ir"
	"github.com/signadot/jvalue/ir/kpath"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Context is the state a program runs against. Symbols read it when
// called, so it changes from one element to the next.
type Context struct {
	Root  ir.Value
	It    ir.Value
	Index int
	Path  kpath.Path
}

// Program is a compiled expression bound to a document.
type Program struct {
	src  string
	prg  *vm.Program
	ctx  *Context
	root any
}

// Compile compiles src for running against elements of root.
func Compile(root ir.Value, src string) (*Program, error) {
	ctx := &Context{Root: root, Index: -1}
	var opts []expr.Option
	for _, sym := range Symbols() {
		opts = append(opts, sym.Option(ctx))
	}
	prg, err := expr.Compile(src, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrCompile, src, err)
	}
	return &Program{src: src, prg: prg, ctx: ctx, root: ToAny(root)}, nil
}

// Run evaluates the program with it bound to the element at path p, which
// is the index'th element of its array or -1.
func (p *Program) Run(it ir.Value, index int, at kpath.Path) (any, error) {
	p.ctx.It, p.ctx.Index, p.ctx.Path = it, index, at
	env := map[string]any{
		"it":    ToAny(it),
		"index": index,
		"root":  p.root,
		"path":  at.String(),
	}
	res, err := expr.Run(p.prg, env)
	if debug.Eval() {
		debug.Logf("eval %q at %q: %v %v\n", p.src, at.String(), res, err)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %q at %q: %w", ErrRun, p.src, at.String(), err)
	}
	return res, nil
}

// Filter returns the elements of the array at p for which src is truthy,
// or null when p does not address an array.
func Filter(v ir.Value, p kpath.Path, src string) (ir.Value, error) {
	arr, ok := v.Get(p).Array()
	if !ok {
		return ir.Null(), nil
	}
	prg, err := Compile(v, src)
	if err != nil {
		return ir.Null(), err
	}
	res := []ir.Value{}
	for i, item := range arr {
		x, err := prg.Run(item, i, kpath.Append(p, kpath.Index(i)))
		if err != nil {
			return ir.Null(), err
		}
		keep, err := FromAny(x)
		if err != nil {
			return ir.Null(), err
		}
		if ir.Truth(keep) {
			res = append(res, item)
		}
	}
	return ir.FromSlice(res), nil
}

// Map returns src applied to each element of the array at p, or null
// when p does not address an array.
func Map(v ir.Value, p kpath.Path, src string) (ir.Value, error) {
	if v.Get(p).Type() != ir.ArrayType {
		return ir.Null(), nil
	}
	prg, err := Compile(v, src)
	if err != nil {
		return ir.Null(), err
	}
	i := 0
	return v.Map(p, func(item ir.Value) (ir.Value, error) {
		x, err := prg.Run(item, i, kpath.Append(p, kpath.Index(i)))
		i++
		if err != nil {
			return ir.Null(), err
		}
		return FromAny(x)
	})
}

// Eval runs src once with both it and root bound to v.
func Eval(v ir.Value, src string) (ir.Value, error) {
	prg, err := Compile(v, src)
	if err != nil {
		return ir.Null(), err
	}
	x, err := prg.Run(v, -1, nil)
	if err != nil {
		return ir.Null(), err
	}
	return FromAny(x)
}
