package token

import "math"

// ScanNumber reads a number at d[0] and returns its value and the
// number of bytes consumed. The grammar is RFC 8259: an optional '-',
// then a single '0' or a nonzero digit followed by more digits, an
// optional fraction and an optional exponent. The value is accumulated
// as sign * mantissa * 10^(scale + exponent) where scale counts the
// fraction digits.
func ScanNumber(d []byte) (float64, int, error) {
	var (
		n                 float64
		sign              = 1.0
		scale             int
		subscale, expSign = 0, 1
		i                 int
	)
	if i < len(d) && d[i] == '-' {
		sign = -1
		i++
	}
	if i == len(d) || !asciiDigit(d[i]) {
		return 0, i, ErrNumber
	}
	if d[i] == '0' {
		i++
		if i < len(d) && asciiDigit(d[i]) {
			return 0, i, ErrLeadingZero
		}
	} else {
		for i < len(d) && asciiDigit(d[i]) {
			n = n*10.0 + float64(d[i]-'0')
			i++
		}
	}
	if i < len(d) && d[i] == '.' {
		i++
		if i == len(d) || !asciiDigit(d[i]) {
			return 0, i, ErrNumber
		}
		for i < len(d) && asciiDigit(d[i]) {
			n = n*10.0 + float64(d[i]-'0')
			scale--
			i++
		}
	}
	if i < len(d) && (d[i] == 'e' || d[i] == 'E') {
		i++
		if i < len(d) {
			switch d[i] {
			case '+':
				i++
			case '-':
				expSign = -1
				i++
			}
		}
		if i == len(d) || !asciiDigit(d[i]) {
			return 0, i, ErrNumber
		}
		for i < len(d) && asciiDigit(d[i]) {
			subscale = subscale*10 + int(d[i]-'0')
			i++
		}
	}
	return sign * n * math.Pow(10, float64(scale+subscale*expSign)), i, nil
}

func asciiDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
