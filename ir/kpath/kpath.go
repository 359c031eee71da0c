package kpath

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/signadot/jvalue/token"
)

// Pather is implemented by Segment and Path.
type Pather interface {
	Path() Path
}

// Path is a flat sequence of segments. The empty path addresses the root.
type Path []Segment

func (p Path) Path() Path {
	return p
}

// Append returns the segments of a followed by those of b in a new Path.
// Neither argument is modified.
func Append(a, b Pather) Path {
	pa, pb := pathOf(a), pathOf(b)
	res := make(Path, 0, len(pa)+len(pb))
	res = append(res, pa...)
	return append(res, pb...)
}

// Flatten concatenates parts, left to right, into a single Path.
func Flatten(parts ...Pather) Path {
	var res Path
	for _, part := range parts {
		res = append(res, pathOf(part)...)
	}
	return res
}

func pathOf(p Pather) Path {
	if p == nil {
		return nil
	}
	return p.Path()
}

// Of builds a Path from strings (keys), ints (indices), Segments and Paths.
func Of(parts ...any) (Path, error) {
	res := make(Path, 0, len(parts))
	for i, part := range parts {
		switch x := part.(type) {
		case string:
			res = append(res, Key(x))
		case int:
			res = append(res, Index(x))
		case Segment:
			res = append(res, x)
		case Path:
			res = append(res, x...)
		case []Segment:
			res = append(res, x...)
		default:
			return nil, fmt.Errorf("%w: part %d has type %T", ErrUnsupported, i, part)
		}
	}
	return res, nil
}

// MustOf is like Of but panics on an unsupported part.
func MustOf(parts ...any) Path {
	p, err := Of(parts...)
	if err != nil {
		panic(err)
	}
	return p
}

func (p Path) Equal(o Path) bool {
	if len(p) != len(o) {
		return false
	}
	for i := range p {
		if !p[i].Equal(o[i]) {
			return false
		}
	}
	return true
}

// Parent returns all segments but the last, or nil for paths of length < 2.
func (p Path) Parent() Path {
	if len(p) < 2 {
		return nil
	}
	return p[:len(p)-1:len(p)-1]
}

// String returns the path text, for example
//
//	Path{Key("a"), Key("b"), Index(0), Last()} → "a.b[0][$]"
//	Path{Key("x y")} → `"x y"`
func (p Path) String() string {
	var buf strings.Builder
	for i, seg := range p {
		if seg.Kind == KeyKind && i > 0 {
			buf.WriteByte('.')
		}
		buf.WriteString(seg.String())
	}
	return buf.String()
}

func (p Path) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Path) UnmarshalText(d []byte) error {
	pp, err := Parse(string(d))
	if err != nil {
		return err
	}
	*p = pp
	return nil
}

// Parse parses path text as produced by Path.String.
//
//	"a.b[0]"       → Key("a"), Key("b"), Index(0)
//	"[0][$]"       → Index(0), Last()
//	`a."x.y".b`    → Key("a"), Key("x.y"), Key("b")
//	""             → the root path (nil)
func Parse(s string) (Path, error) {
	var res Path
	i := 0
	for i < len(s) {
		switch s[i] {
		case '[':
			j := strings.IndexByte(s[i+1:], ']')
			if j == -1 {
				return nil, &SyntaxError{Path: s, Offset: i, Msg: "expected '[' <index> ']'"}
			}
			seg, err := parseIndex(s[i+1 : i+1+j])
			if err != nil {
				return nil, &SyntaxError{Path: s, Offset: i + 1, Msg: err.Error()}
			}
			res = append(res, seg)
			i += j + 2
			continue
		case '.':
			if i == 0 {
				return nil, &SyntaxError{Path: s, Offset: i, Msg: "unexpected '.'"}
			}
			i++
		default:
			if i > 0 {
				return nil, &SyntaxError{Path: s, Offset: i, Msg: "expected '.' or '['"}
			}
		}
		key, n, err := parseKey(s[i:])
		if err != nil {
			return nil, &SyntaxError{Path: s, Offset: i, Msg: err.Error()}
		}
		res = append(res, Key(key))
		i += n
	}
	return res, nil
}

// MustParse is like Parse but panics on a syntax error.
func MustParse(s string) Path {
	p, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return p
}

func parseIndex(is string) (Segment, error) {
	if is == "$" {
		return Last(), nil
	}
	u, err := strconv.ParseUint(is, 10, 31)
	if err != nil {
		return Segment{}, fmt.Errorf("invalid array index %q", is)
	}
	return Index(int(u)), nil
}

// parseKey parses a bare or double quoted key at the start of frag and
// returns the key and the number of bytes consumed.
func parseKey(frag string) (string, int, error) {
	if frag == "" {
		return "", 0, fmt.Errorf("expected key at end of path")
	}
	if frag[0] != '"' {
		i := strings.IndexAny(frag, ".[")
		if i == -1 {
			i = len(frag)
		}
		if i == 0 {
			return "", 0, fmt.Errorf("empty key")
		}
		return frag[:i], i, nil
	}
	escaped := false
	for i := 1; i < len(frag); i++ {
		switch {
		case escaped:
			escaped = false
		case frag[i] == '\\':
			escaped = true
		case frag[i] == '"':
			key, err := token.Unescape(frag[1:i])
			if err != nil {
				return "", 0, err
			}
			return key, i + 1, nil
		}
	}
	return "", 0, fmt.Errorf("unterminated quoted key")
}
