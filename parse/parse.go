// Package parse converts JSON text into ir trees.
package parse

import (
	"bytes"
	"fmt"

	"github.com/epa-st/ppb/ir"
	"github.com/epa-st/ppb/token"
)

// Parse reads one JSON value from d. On failure the returned error is a
// *Error carrying the byte offset of the problem, and no tree is
// returned. Trailing whitespace after the value is accepted, anything
// else is a failure.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{maxDepth: DefaultMaxDepth}
	for _, f := range opts {
		f(pOpts)
	}
	p := &parser{
		d:        d,
		posDoc:   token.NewPosDoc(d),
		maxDepth: pOpts.maxDepth,
	}
	p.skip()
	if p.off == len(p.d) {
		return nil, newErr(ErrEmptyDoc, p.pos(p.off))
	}
	res, err := p.value()
	if err != nil {
		return nil, err
	}
	p.skip()
	if p.off != len(p.d) {
		return nil, newErr(fmt.Errorf("%w: trailing data", ErrParse), p.pos(p.off))
	}
	return res, nil
}

type parser struct {
	d        []byte
	off      int
	depth    int
	maxDepth int
	posDoc   *token.PosDoc
}

func (p *parser) pos(off int) *token.Pos {
	return p.posDoc.Pos(off)
}

// skip advances over insignificant whitespace, any byte <= 0x20.
func (p *parser) skip() {
	for p.off < len(p.d) && p.d[p.off] <= 0x20 {
		p.off++
	}
}

func (p *parser) value() (*ir.Node, error) {
	if p.off == len(p.d) {
		return nil, newErr(fmt.Errorf("%w: premature end of input", ErrParse), p.pos(p.off))
	}
	rest := p.d[p.off:]
	switch {
	case bytes.HasPrefix(rest, []byte("null")):
		p.off += 4
		return ir.Null(), nil
	case bytes.HasPrefix(rest, []byte("true")):
		p.off += 4
		return ir.True(), nil
	case bytes.HasPrefix(rest, []byte("false")):
		p.off += 5
		return ir.False(), nil
	}
	switch c := p.d[p.off]; {
	case c == '"':
		s, n, err := token.Unquote(rest)
		if err != nil {
			return nil, newErr(err, p.pos(p.off+n))
		}
		p.off += n
		return ir.FromString(s), nil
	case c == '-' || c >= '0' && c <= '9':
		f, n, err := token.ScanNumber(rest)
		if err != nil {
			return nil, newErr(err, p.pos(p.off+n))
		}
		p.off += n
		return ir.FromFloat(f), nil
	case c == '[':
		return p.array()
	case c == '{':
		return p.object()
	default:
		return nil, newErr(fmt.Errorf("%w: unexpected character %q", ErrParse, c), p.pos(p.off))
	}
}

func (p *parser) push() error {
	p.depth++
	if p.depth > p.maxDepth {
		return newErr(ErrDepth, p.pos(p.off))
	}
	return nil
}

func (p *parser) array() (*ir.Node, error) {
	if err := p.push(); err != nil {
		return nil, err
	}
	defer func() { p.depth-- }()
	p.off++ // '['
	res := ir.NewArray()
	p.skip()
	if p.off < len(p.d) && p.d[p.off] == ']' {
		p.off++
		return res, nil
	}
	for {
		p.skip()
		elt, err := p.value()
		if err != nil {
			return nil, err
		}
		elt.Parent = res
		elt.ParentIndex = len(res.Values)
		res.Values = append(res.Values, elt)
		p.skip()
		if p.off == len(p.d) {
			return nil, newErr(fmt.Errorf("%w: unterminated array", ErrParse), p.pos(p.off))
		}
		switch p.d[p.off] {
		case ',':
			p.off++
		case ']':
			p.off++
			return res, nil
		default:
			return nil, newErr(fmt.Errorf("%w: expected ',' or ']', got %q",
				ErrParse, p.d[p.off]), p.pos(p.off))
		}
	}
}

func (p *parser) object() (*ir.Node, error) {
	if err := p.push(); err != nil {
		return nil, err
	}
	defer func() { p.depth-- }()
	p.off++ // '{'
	res := ir.NewObject()
	p.skip()
	if p.off < len(p.d) && p.d[p.off] == '}' {
		p.off++
		return res, nil
	}
	for {
		p.skip()
		if p.off == len(p.d) || p.d[p.off] != '"' {
			return nil, newErr(fmt.Errorf("%w: expected object key", ErrParse), p.pos(p.off))
		}
		key, n, err := token.Unquote(p.d[p.off:])
		if err != nil {
			return nil, newErr(err, p.pos(p.off+n))
		}
		p.off += n
		p.skip()
		if p.off == len(p.d) || p.d[p.off] != ':' {
			return nil, newErr(fmt.Errorf("%w: expected ':' after object key", ErrParse), p.pos(p.off))
		}
		p.off++
		p.skip()
		val, err := p.value()
		if err != nil {
			return nil, err
		}
		val.Parent = res
		val.ParentIndex = len(res.Values)
		val.Field = key
		res.Values = append(res.Values, val)
		p.skip()
		if p.off == len(p.d) {
			return nil, newErr(fmt.Errorf("%w: unterminated object", ErrParse), p.pos(p.off))
		}
		switch p.d[p.off] {
		case ',':
			p.off++
		case '}':
			p.off++
			return res, nil
		default:
			return nil, newErr(fmt.Errorf("%w: expected ',' or '}', got %q",
				ErrParse, p.d[p.off]), p.pos(p.off))
		}
	}
}
