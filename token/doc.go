// Package token provides the small lexical pieces shared by the value and
// path packages.
//
// [ScanNumber] recognizes the JSON number grammar, [Unescape] turns a
// backslash-escaped string fragment into its literal form and [Quote] is its
// inverse. [KPathQuoteField] reports whether an object key must be quoted
// when rendered in a kinded path.
package token
