package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Path   bool
	Decode bool
	Eval   bool
	Patch  bool
	Diff   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Path = boolEnv("JV_DEBUG_PATH")
	d.Decode = boolEnv("JV_DEBUG_DECODE")
	d.Eval = boolEnv("JV_DEBUG_EVAL")
	d.Patch = boolEnv("JV_DEBUG_PATCH")
	d.Diff = boolEnv("JV_DEBUG_DIFF")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Path() bool {
	return d.Path
}
func Decode() bool {
	return d.Decode
}
func Eval() bool {
	return d.Eval
}
func Patch() bool {
	return d.Patch
}
func Diff() bool {
	return d.Diff
}
