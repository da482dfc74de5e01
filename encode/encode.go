package encode

import (
	"errors"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/epa-st/ppb/ir"
	"github.com/epa-st/ppb/token"
)

var ErrEncoding = errors.New("encoding error")

// intBound is the magnitude above which a number never takes integer
// form, even when its truncation happens to be exact.
const intBound = 1e60

type EncState struct {
	depth     int
	formatted bool
}

// Encode writes node to w as JSON text. The default is compact output;
// EncodeFormatted(true) produces indented output with one tab per
// nesting level.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return encode(node, w, es)
}

func encode(node *ir.Node, w io.Writer, es *EncState) error {
	if node == nil {
		return ErrEncoding
	}
	switch node.Type {
	case ir.NullType:
		return writeString(w, "null")
	case ir.BoolType:
		return writeString(w, strconv.FormatBool(node.Bool))
	case ir.NumberType:
		return encodeNumber(node, w)
	case ir.StringType:
		return writeString(w, token.Quote(node.String))
	case ir.ArrayType:
		return encodeArray(node, w, es)
	case ir.ObjectType:
		return encodeObject(node, w, es)
	default:
		return ErrEncoding
	}
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

// Number encoding

func encodeNumber(node *ir.Node, w io.Writer) error {
	d := node.Float64
	if math.Abs(float64(node.Int64)-d) <= dblEpsilon && math.Abs(d) < intBound {
		return writeString(w, strconv.FormatInt(node.Int64, 10))
	}
	return writeString(w, strconv.FormatFloat(d, 'f', 6, 64))
}

var dblEpsilon = math.Nextafter(1, 2) - 1

// Array encoding

func encodeArray(node *ir.Node, w io.Writer, es *EncState) error {
	if len(node.Values) == 0 {
		return writeString(w, "[]")
	}
	if err := writeString(w, "["); err != nil {
		return err
	}
	sep := ","
	if es.formatted {
		sep = ", "
	}
	// elements stay on one line, but containers among them still nest
	// one level deeper
	es.depth++
	for i, v := range node.Values {
		if i > 0 {
			if err := writeString(w, sep); err != nil {
				return err
			}
		}
		if err := encode(v, w, es); err != nil {
			return err
		}
	}
	es.depth--
	return writeString(w, "]")
}

// Object encoding

func encodeObject(node *ir.Node, w io.Writer, es *EncState) error {
	if len(node.Values) == 0 {
		return writeString(w, "{}")
	}
	if err := writeString(w, "{"); err != nil {
		return err
	}
	es.depth++
	for i, v := range node.Values {
		if i > 0 {
			if err := writeString(w, ","); err != nil {
				return err
			}
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
		key := token.Quote(v.Field) + ":"
		if es.formatted {
			key += " "
		}
		if err := writeString(w, key); err != nil {
			return err
		}
		if err := encode(v, w, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeString(w, "}")
}

// writeNL breaks the line and indents to the current depth when
// formatting; compact output writes nothing.
func writeNL(w io.Writer, es *EncState) error {
	if !es.formatted {
		return nil
	}
	return writeString(w, "\n"+strings.Repeat("\t", es.depth))
}
