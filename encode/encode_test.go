package encode

import (
	"strings"
	"testing"

	"github.com/epa-st/ppb/ir"
)

type encTest struct {
	node *ir.Node
	out  string
}

func TestEncodeCompact(t *testing.T) {
	ets := []encTest{
		{ir.Null(), `null`},
		{ir.True(), `true`},
		{ir.False(), `false`},
		{ir.FromInt(42), `42`},
		{ir.FromInt(-7), `-7`},
		{ir.FromFloat(3.0), `3`},
		{ir.FromFloat(3.5), `3.500000`},
		{ir.FromFloat(-0.5), `-0.500000`},
		{ir.FromFloat(0.0025), `0.002500`},
		{ir.FromString("hello"), `"hello"`},
		{ir.FromString(""), `""`},
		{ir.FromString("a\"b\\c\n"), `"a\"b\\c\n"`},
		{ir.FromString("☃"), `"☃"`},
		{ir.NewArray(), `[]`},
		{ir.NewObject(), `{}`},
		{ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromInt(2), ir.FromInt(3)}), `[1,2,3]`},
		{ir.FromSlice([]*ir.Node{ir.FromSlice([]*ir.Node{ir.Null()})}), `[[null]]`},
		{ir.FromKeyVals([]ir.KeyVal{
			{Key: "a", Val: ir.FromInt(1)},
			{Key: "b", Val: ir.FromString("x")},
		}), `{"a":1,"b":"x"}`},
		{ir.FromKeyVals([]ir.KeyVal{
			{Key: "a", Val: ir.FromSlice([]*ir.Node{ir.True(), ir.NewObject()})},
		}), `{"a":[true,{}]}`},
	}
	for _, et := range ets {
		got, err := String(et.node)
		if err != nil {
			t.Errorf("%s: %v", et.out, err)
			continue
		}
		if got != et.out {
			t.Errorf("got %s, want %s", got, et.out)
		}
	}
}

func TestEncodeFormatted(t *testing.T) {
	node := ir.FromKeyVals([]ir.KeyVal{
		{Key: "a", Val: ir.FromInt(1)},
		{Key: "b", Val: ir.FromKeyVals([]ir.KeyVal{
			{Key: "c", Val: ir.FromSlice([]*ir.Node{ir.FromInt(2), ir.FromInt(3)})},
		})},
	})
	want := strings.Join([]string{
		`{`,
		"\t" + `"a": 1,`,
		"\t" + `"b": {`,
		"\t\t" + `"c": [2, 3]`,
		"\t" + `}`,
		`}`,
	}, "\n")
	got, err := String(node, EncodeFormatted(true))
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestEncodeFormattedArrayNesting(t *testing.T) {
	// an object inside an array sits one level deeper than the array
	node := ir.FromSlice([]*ir.Node{
		ir.FromKeyVals([]ir.KeyVal{{Key: "a", Val: ir.FromInt(1)}}),
	})
	got, err := String(node, EncodeFormatted(true))
	if err != nil {
		t.Fatal(err)
	}
	want := "[{\n\t\t\"a\": 1\n\t}]"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	// and the nesting compounds through object -> array -> object
	node = ir.FromKeyVals([]ir.KeyVal{
		{Key: "b", Val: ir.FromSlice([]*ir.Node{
			ir.FromKeyVals([]ir.KeyVal{{Key: "c", Val: ir.FromInt(2)}}),
		})},
	})
	got, err = String(node, EncodeFormatted(true))
	if err != nil {
		t.Fatal(err)
	}
	want = "{\n\t\"b\": [{\n\t\t\t\"c\": 2\n\t\t}]\n}"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEncodeDepth(t *testing.T) {
	node := ir.FromKeyVals([]ir.KeyVal{{Key: "a", Val: ir.FromInt(1)}})
	got, err := String(node, EncodeFormatted(true), Depth(1))
	if err != nil {
		t.Fatal(err)
	}
	want := "{\n\t\t\"a\": 1\n\t}"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEncodeNil(t *testing.T) {
	if _, err := String(nil); err == nil {
		t.Error("nil node should not encode")
	}
	var w strings.Builder
	if err := Encode(nil, &w); err != ErrEncoding {
		t.Errorf("got %v, want %v", err, ErrEncoding)
	}
}

func TestMustString(t *testing.T) {
	if got := MustString(ir.FromInt(5)); got != "5" {
		t.Errorf("got %q", got)
	}
	defer func() {
		if recover() == nil {
			t.Error("MustString(nil) should panic")
		}
	}()
	MustString(nil)
}
