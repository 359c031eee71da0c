package eval

import "errors"

var (
	ErrCompile      = errors.New("expression compile error")
	ErrRun          = errors.New("expression run error")
	ErrSymbolExists = errors.New("symbol exists")
)
