package token

import (
	"errors"
	"testing"
)

type unquoteTest struct {
	in   string
	want string
	n    int
	e    error
}

func TestUnquote(t *testing.T) {
	uts := []unquoteTest{
		{in: `""`, want: "", n: 2},
		{in: `"hello"`, want: "hello", n: 7},
		{in: `"a\"b"`, want: `a"b`, n: 6},
		{in: `"\\"`, want: `\`, n: 4},
		{in: `"\/"`, want: "/", n: 4},
		{in: `"\b\f\n\r\t"`, want: "\b\f\n\r\t", n: 12},
		{in: `"A"`, want: "A", n: 8},
		{in: `"é"`, want: "é", n: 8},
		{in: `"€"`, want: "€", n: 8},
		// surrogate pair for U+1F600
		{in: `"😀"`, want: "\U0001F600", n: 14},
		{in: `"snow☃man"`, want: "snow☃man", n: 15},
		// raw multibyte passes through untouched
		{in: "\"caf\xc3\xa9\"", want: "caf\xc3\xa9", n: 7},
		{in: `"trailing"extra`, want: "trailing", n: 10},

		{in: `"unterminated`, e: ErrUnterminated},
		{in: `"`, e: ErrUnterminated},
		{in: `"esc at end\`, e: ErrUnterminated},
		{in: `"\x"`, e: ErrBadEscape},
		{in: `"\uZZZZ"`, e: ErrBadUnicode},
		{in: `"\u12"`, e: ErrBadUnicode},
		// lone low surrogate
		{in: `"\uDE00"`, e: ErrBadSurrogate},
		// high surrogate with no continuation
		{in: `"\uD83D"`, e: ErrBadSurrogate},
		// high surrogate followed by a non-escape
		{in: `"\uD83Dx"`, e: ErrBadSurrogate},
		// high surrogate followed by a non-surrogate escape
		{in: `"\uD83DA"`, e: ErrBadSurrogate},
	}
	for _, ut := range uts {
		got, n, err := Unquote([]byte(ut.in))
		if ut.e != nil {
			if !errors.Is(err, ut.e) {
				t.Errorf("Unquote(%q): got error %v, want %v", ut.in, err, ut.e)
			}
			continue
		}
		if err != nil {
			t.Errorf("Unquote(%q): %v", ut.in, err)
			continue
		}
		if got != ut.want {
			t.Errorf("Unquote(%q) = %q, want %q", ut.in, got, ut.want)
		}
		if n != ut.n {
			t.Errorf("Unquote(%q) consumed %d, want %d", ut.in, n, ut.n)
		}
	}
}

func TestUnquoteEmojiBytes(t *testing.T) {
	got, _, err := Unquote([]byte(`"😀"`))
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{0xF0, 0x9F, 0x98, 0x80}
	if len(got) != 4 {
		t.Fatalf("got %d bytes, want 4", len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("byte %d: got %#x, want %#x", i, got[i], want[i])
		}
	}
}

func TestQuote(t *testing.T) {
	qts := []struct {
		in, want string
	}{
		{"", `""`},
		{"hello", `"hello"`},
		{`a"b`, `"a\"b"`},
		{`back\slash`, `"back\\slash"`},
		{"tab\there", `"tab\there"`},
		{"nl\n", `"nl\n"`},
		{"\b\f\r", `"\b\f\r"`},
		// control without a shorthand
		{"\x01", `"\u0001"`},
		{"\x1f", `"\u001f"`},
		// multibyte passes through raw, no \u re-encoding
		{"café", "\"café\""},
		{"\U0001F600", "\"\U0001F600\""},
		// '/' not escaped on output
		{"a/b", `"a/b"`},
	}
	for _, qt := range qts {
		if got := Quote(qt.in); got != qt.want {
			t.Errorf("Quote(%q) = %s, want %s", qt.in, got, qt.want)
		}
	}
}

func TestQuoteUnquote(t *testing.T) {
	for _, s := range []string{
		"", "plain", "with \"quotes\" and \\slashes\\",
		"\t\n\r\b\f", "\x00\x01\x02", "mixed ☃ and \U0001F600",
	} {
		got, n, err := Unquote([]byte(Quote(s)))
		if err != nil {
			t.Errorf("round trip %q: %v", s, err)
			continue
		}
		if got != s {
			t.Errorf("round trip %q = %q", s, got)
		}
		if n != len(Quote(s)) {
			t.Errorf("round trip %q: consumed %d of %d", s, n, len(Quote(s)))
		}
	}
}
