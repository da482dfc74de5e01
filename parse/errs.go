package parse

import (
	"errors"
	"fmt"

	"github.com/epa-st/ppb/token"
)

var (
	ErrParse = errors.New("parse error")

	// ErrDepth is returned when the input nests deeper than the
	// configured limit.
	ErrDepth = errors.New("nesting too deep")

	ErrEmptyDoc = errors.New("empty document")
)

// Error is a parse failure at a position. It wraps one of the sentinel
// errors above or one from the token package.
type Error struct {
	Err error
	Pos token.Pos
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}

// Offset returns the byte offset of the failure in the parsed input.
func (e *Error) Offset() int {
	return e.Pos.I
}

func newErr(e error, p *token.Pos) *Error {
	return &Error{Err: e, Pos: *p}
}
