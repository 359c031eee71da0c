// Package number provides Number, the exact decimal leaf behind JSON numbers.
//
// A Number stores a base-10 coefficient and exponent (an [apd.Decimal]) rather
// than a binary float, so text such as "0.1" or "9007199254740993" survives a
// Parse/String round trip unchanged. Conversions to native floats and
// fixed-width integers are explicit:
//
//	n, _ := number.Parse("33.0")
//	i, ok := n.Int64()   // 33, true
//	f := n.Float64()     // 33, always succeeds, may lose precision
//
// Equality and ordering are numeric: "33" and "33.0" are equal.
//
// Numbers are immutable; the zero Number is 0.
package number
