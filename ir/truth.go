package ir

// Truth reports whether v is truthy: true, a non-zero number, a non-empty
// string or a non-empty container.
func Truth(v Value) bool {
	switch v.typ {
	case ObjectType:
		return len(v.fields) != 0
	case ArrayType:
		return len(v.items) != 0
	case StringType:
		return v.s != ""
	case NumberType:
		return v.n.Sign() != 0
	case BoolType:
		return v.b
	case NullType:
		return false
	default:
		panic("type")
	}
}
