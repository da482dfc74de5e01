package token

import "errors"

var (
	ErrUnterminated = errors.New("unterminated")
	ErrBadEscape    = errors.New("bad escape")
	ErrBadUnicode   = errors.New("bad unicode")
	ErrBadSurrogate = errors.New("bad surrogate pair")
	ErrNumber       = errors.New("bad number")
	ErrLeadingZero  = errors.New("leading zero")
)
