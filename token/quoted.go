package token

import (
	"encoding/hex"
	"strings"
	"unicode"
	"unicode/utf16"
	"unicode/utf8"
)

// Unescape returns the literal form of a backslash-escaped string fragment.
// The fragment carries no surrounding quotes.
//
// The recognized escapes are \" \\ \/ \n \t \r \f \b and \uXXXX. A \uXXXX
// high surrogate immediately followed by a \uXXXX low surrogate yields the
// combined scalar; any other surrogate yields U+FFFD.
func Unescape(v string) (string, error) {
	i := strings.IndexByte(v, '\\')
	if i == -1 {
		return v, nil
	}
	b := make([]byte, i, len(v))
	copy(b, v[:i])
	for i < len(v) {
		c := v[i]
		if c != '\\' {
			b = append(b, c)
			i++
			continue
		}
		if i+1 == len(v) {
			return "", ErrEscapeAtEnd
		}
		switch e := v[i+1]; e {
		case '"', '\\', '/':
			b = append(b, e)
		case 'n':
			b = append(b, '\n')
		case 't':
			b = append(b, '\t')
		case 'r':
			b = append(b, '\r')
		case 'f':
			b = append(b, '\f')
		case 'b':
			b = append(b, '\b')
		case 'u':
			r, n, err := unicodeEscape(v, i)
			if err != nil {
				return "", err
			}
			b = utf8.AppendRune(b, r)
			i += n
			continue
		default:
			_, sz := utf8.DecodeRuneInString(v[i+1:])
			return "", &EscapeError{Seq: v[i : i+1+sz], Offset: i, Err: ErrBadEscape}
		}
		i += 2
	}
	return string(b), nil
}

// unicodeEscape decodes the \uXXXX escape starting at v[i], returning the
// rune and the number of bytes consumed.
func unicodeEscape(v string, i int) (rune, int, error) {
	r, ok := hex4(v, i+2)
	if !ok {
		end := min(i+6, len(v))
		return 0, 0, &EscapeError{Seq: v[i:end], Offset: i, Err: ErrBadUnicode}
	}
	if !utf16.IsSurrogate(r) {
		return r, 6, nil
	}
	if r < 0xdc00 && i+12 <= len(v) && v[i+6] == '\\' && v[i+7] == 'u' {
		if r2, ok := hex4(v, i+8); ok {
			if dr := utf16.DecodeRune(r, r2); dr != utf8.RuneError {
				return dr, 12, nil
			}
		}
	}
	return utf8.RuneError, 6, nil
}

func hex4(v string, at int) (rune, bool) {
	if at+4 > len(v) {
		return 0, false
	}
	var r rune
	for _, c := range []byte(v[at : at+4]) {
		var d byte
		switch {
		case '0' <= c && c <= '9':
			d = c - '0'
		case 'a' <= c && c <= 'f':
			d = c - 'a' + 10
		case 'A' <= c && c <= 'F':
			d = c - 'A' + 10
		default:
			return 0, false
		}
		r = r<<4 | rune(d)
	}
	return r, true
}

// Quote returns v as a double quoted JSON string.
func Quote(v string) string {
	d := make([]byte, 1, len(v)+2)
	d[0] = '"'
	ucs := []byte{0, 0}
	cps := []byte{0, 0, 0, 0}
	for _, r := range v {
		switch r {
		case '"':
			d = append(d, '\\', '"')
		case '\\':
			d = append(d, '\\', '\\')
		case '\b':
			d = append(d, '\\', 'b')
		case '\f':
			d = append(d, '\\', 'f')
		case '\n':
			d = append(d, '\\', 'n')
		case '\r':
			d = append(d, '\\', 'r')
		case '\t':
			d = append(d, '\\', 't')
		default:
			if unicode.IsControl(r) {
				ucs[0] = byte(r >> 8)
				ucs[1] = byte(r)
				cps = hex.AppendEncode(cps[:0], ucs)
				d = append(d, '\\', 'u', cps[0], cps[1], cps[2], cps[3])
			} else {
				d = utf8.AppendRune(d, r)
			}
		}
	}
	d = append(d, '"')
	return string(d)
}

// KPathQuoteField returns true if a field name needs to be quoted in a kinded path.
func KPathQuoteField(v string) bool {
	if v == "" {
		return true
	}
	for _, r := range v {
		switch r {
		case '.', '[', ']', '"', '\\':
			return true
		}
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			return true
		}
	}
	return false
}
