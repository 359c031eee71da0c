package eval

import (
	"encoding/json"
	"math"
	"strconv"

	"github.com/signadot/jvalue/ir"
)

// ToAny converts v to the shapes expr programs compute with: nil, bool,
// string, int, float64, []any and map[string]any. Numbers which are
// whole and fit an int become ints.
func ToAny(v ir.Value) any {
	switch v.Type() {
	case ir.BoolType:
		b, _ := v.Bool()
		return b
	case ir.StringType:
		s, _ := v.Str()
		return s
	case ir.NumberType:
		if i, ok := v.Int(); ok {
			return i
		}
		f, _ := v.Float64()
		return f
	case ir.ArrayType:
		items, _ := v.Array()
		res := make([]any, len(items))
		for i := range items {
			res[i] = ToAny(items[i])
		}
		return res
	case ir.ObjectType:
		res := make(map[string]any, v.Len())
		for k, item := range v.Members() {
			res[k] = ToAny(item)
		}
		return res
	}
	return nil
}

// FromAny converts a program result to a Value. Finite floats become
// their shortest decimal text, so 0.1+0.2 yields 0.30000000000000004
// rather than its exact binary expansion.
func FromAny(x any) (ir.Value, error) {
	return ir.FromDynamic(shortFloats(x))
}

func shortFloats(x any) any {
	switch x := x.(type) {
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return x
		}
		return json.Number(strconv.FormatFloat(x, 'g', -1, 64))
	case float32:
		f := float64(x)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return f
		}
		return json.Number(strconv.FormatFloat(f, 'g', -1, 32))
	case []any:
		res := make([]any, len(x))
		for i := range x {
			res[i] = shortFloats(x[i])
		}
		return res
	case map[string]any:
		res := make(map[string]any, len(x))
		for k, item := range x {
			res[k] = shortFloats(item)
		}
		return res
	}
	return x
}
