package kpath

import (
	"strconv"

	"github.com/signadot/jvalue/token"
)

type Kind int

const (
	KeyKind Kind = iota
	IndexKind
	LastKind
)

func (k Kind) String() string {
	switch k {
	case KeyKind:
		return "key"
	case IndexKind:
		return "index"
	case LastKind:
		return "last"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Segment is a single path atom. Key is set for KeyKind and Index for
// IndexKind; LastKind uses neither.
type Segment struct {
	Kind  Kind
	Key   string
	Index int
}

func Key(k string) Segment {
	return Segment{Kind: KeyKind, Key: k}
}

// Index addresses array position i. Negative positions are representable
// but rejected when the path is evaluated.
func Index(i int) Segment {
	return Segment{Kind: IndexKind, Index: i}
}

// Last addresses the final element of whichever array it is applied to.
func Last() Segment {
	return Segment{Kind: LastKind}
}

func (s Segment) Path() Path {
	return Path{s}
}

func (s Segment) Equal(o Segment) bool {
	if s.Kind != o.Kind {
		return false
	}
	switch s.Kind {
	case KeyKind:
		return s.Key == o.Key
	case IndexKind:
		return s.Index == o.Index
	}
	return true
}

// String returns the segment as it appears in path text, without a leading
// dot for keys.
func (s Segment) String() string {
	switch s.Kind {
	case KeyKind:
		if token.KPathQuoteField(s.Key) {
			return token.Quote(s.Key)
		}
		return s.Key
	case IndexKind:
		return "[" + strconv.Itoa(s.Index) + "]"
	case LastKind:
		return "[$]"
	}
	return ""
}
