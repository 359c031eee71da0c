package debug

import (
	"fmt"
	"io"
	"os"

	json "github.com/goccy/go-json"
)

var out io.Writer = os.Stderr

// Logf writes a debug line to stderr. Dynamic JSON arguments are rendered
// as indented JSON and Stringers (such as ir.Value) via String.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case fmt.Stringer:
			args[i] = x.String()
		}
	}
	fmt.Fprintf(out, msg, args...)
}
