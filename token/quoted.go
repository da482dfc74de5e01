package token

import (
	"strings"
)

const (
	surrHighMin = 0xD800
	surrHighMax = 0xDBFF
	surrLowMin  = 0xDC00
	surrLowMax  = 0xDFFF
)

// Unquote decodes the quoted string starting at d[0], which must be '"'.
// It returns the decoded text and the number of bytes consumed,
// including both quotes. On failure the returned int is the offset in d
// of the offending byte.
func Unquote(d []byte) (string, int, error) {
	if len(d) == 0 || d[0] != '"' {
		return "", 0, ErrUnterminated
	}
	b := &strings.Builder{}
	i := 1
	for i < len(d) {
		c := d[i]
		switch c {
		case '"':
			return b.String(), i + 1, nil
		case '\\':
			if i+1 == len(d) {
				return "", i, ErrUnterminated
			}
			switch d[i+1] {
			case '"':
				b.WriteByte('"')
				i += 2
			case '\\':
				b.WriteByte('\\')
				i += 2
			case '/':
				b.WriteByte('/')
				i += 2
			case 'b':
				b.WriteByte('\b')
				i += 2
			case 'f':
				b.WriteByte('\f')
				i += 2
			case 'n':
				b.WriteByte('\n')
				i += 2
			case 'r':
				b.WriteByte('\r')
				i += 2
			case 't':
				b.WriteByte('\t')
				i += 2
			case 'u':
				r, n, err := unicodeEscape(d[i:])
				if err != nil {
					return "", i, err
				}
				b.WriteRune(r)
				i += n
			default:
				return "", i, ErrBadEscape
			}
		default:
			// unescaped bytes pass through verbatim
			b.WriteByte(c)
			i++
		}
	}
	return "", len(d), ErrUnterminated
}

// unicodeEscape decodes a \uXXXX escape at d[0], pairing surrogates per
// UTF-16. A lone or misordered surrogate half is an error.
func unicodeEscape(d []byte) (rune, int, error) {
	u1, ok := hex4(d[2:])
	if !ok {
		return 0, 0, ErrBadUnicode
	}
	switch {
	case u1 >= surrLowMin && u1 <= surrLowMax:
		return 0, 0, ErrBadSurrogate
	case u1 >= surrHighMin && u1 <= surrHighMax:
		if len(d) < 12 || d[6] != '\\' || d[7] != 'u' {
			return 0, 0, ErrBadSurrogate
		}
		u2, ok := hex4(d[8:])
		if !ok {
			return 0, 0, ErrBadUnicode
		}
		if u2 < surrLowMin || u2 > surrLowMax {
			return 0, 0, ErrBadSurrogate
		}
		r := 0x10000 + ((u1&0x3FF)<<10 | (u2 & 0x3FF))
		return rune(r), 12, nil
	default:
		return rune(u1), 6, nil
	}
}

func hex4(d []byte) (int, bool) {
	if len(d) < 4 {
		return 0, false
	}
	u := 0
	for _, c := range d[:4] {
		u <<= 4
		switch {
		case c >= '0' && c <= '9':
			u |= int(c - '0')
		case c >= 'a' && c <= 'f':
			u |= int(c-'a') + 10
		case c >= 'A' && c <= 'F':
			u |= int(c-'A') + 10
		default:
			return 0, false
		}
	}
	return u, true
}

const hexDigits = "0123456789abcdef"

// AppendQuote appends the quoted form of v to dst: backslash, quote and
// control bytes below 0x20 are escaped, everything else passes through
// as raw bytes.
func AppendQuote(dst []byte, v string) []byte {
	dst = append(dst, '"')
	for i := 0; i < len(v); i++ {
		c := v[i]
		if c >= 0x20 && c != '"' && c != '\\' {
			dst = append(dst, c)
			continue
		}
		switch c {
		case '"':
			dst = append(dst, '\\', '"')
		case '\\':
			dst = append(dst, '\\', '\\')
		case '\b':
			dst = append(dst, '\\', 'b')
		case '\f':
			dst = append(dst, '\\', 'f')
		case '\n':
			dst = append(dst, '\\', 'n')
		case '\r':
			dst = append(dst, '\\', 'r')
		case '\t':
			dst = append(dst, '\\', 't')
		default:
			dst = append(dst, '\\', 'u', '0', '0',
				hexDigits[c>>4], hexDigits[c&0xF])
		}
	}
	return append(dst, '"')
}

func Quote(v string) string {
	return string(AppendQuote(make([]byte, 0, len(v)+2), v))
}
