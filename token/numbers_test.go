package token

import (
	"errors"
	"math"
	"testing"
)

func TestScanNumber(t *testing.T) {
	nts := []struct {
		in   string
		want float64
		n    int
	}{
		{"0", 0, 1},
		{"-0", 0, 2},
		{"1", 1, 1},
		{"42", 42, 2},
		{"-17", -17, 3},
		{"3.5", 3.5, 3},
		{"3.0", 3, 3},
		{"-2.25", -2.25, 5},
		{"0.5", 0.5, 3},
		{"1e2", 100, 3},
		{"1E2", 100, 3},
		{"1e+2", 100, 4},
		{"25e-1", 2.5, 5},
		{"1.5e3", 1500, 5},
		{"-1.5e-3", -0.0015, 7},
		// scanning stops at the first non-number byte
		{"12,", 12, 2},
		{"3.5]", 3.5, 3},
		{"7}", 7, 1},
	}
	for _, nt := range nts {
		got, n, err := ScanNumber([]byte(nt.in))
		if err != nil {
			t.Errorf("ScanNumber(%q): %v", nt.in, err)
			continue
		}
		if math.Abs(got-nt.want) > 1e-12 {
			t.Errorf("ScanNumber(%q) = %v, want %v", nt.in, got, nt.want)
		}
		if n != nt.n {
			t.Errorf("ScanNumber(%q) consumed %d, want %d", nt.in, n, nt.n)
		}
	}
}

func TestScanNumberErr(t *testing.T) {
	ets := []struct {
		in string
		e  error
	}{
		{"-", ErrNumber},
		{"-x", ErrNumber},
		{"01", ErrLeadingZero},
		{"1.", ErrNumber},
		{"1.e5", ErrNumber},
		{"1e", ErrNumber},
		{"1e+", ErrNumber},
		{"1e-", ErrNumber},
	}
	for _, et := range ets {
		_, _, err := ScanNumber([]byte(et.in))
		if !errors.Is(err, et.e) {
			t.Errorf("ScanNumber(%q): got %v, want %v", et.in, err, et.e)
		}
	}
}
