package ir

import (
	"cmp"
	"strings"
)

// Compare returns an integer comparing two nodes structurally.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
// Object comparison is order sensitive: insertion order is part of the
// tree's identity.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}

	rankA := rank(a.Type)
	rankB := rank(b.Type)
	if rankA != rankB {
		return cmp.Compare(rankA, rankB)
	}

	switch a.Type {
	case NullType:
		return 0
	case BoolType:
		if a.Bool == b.Bool {
			return 0
		}
		if !a.Bool {
			return -1
		}
		return 1
	case NumberType:
		return cmp.Compare(a.Float64, b.Float64)
	case StringType:
		return strings.Compare(a.String, b.String)
	case ArrayType:
		return compareValues(a, b, false)
	case ObjectType:
		return compareValues(a, b, true)
	}
	return 0
}

// rank returns the sorting rank of a type.
// Order: Null < Bool < Number < String < Array < Object
func rank(t Type) int {
	switch t {
	case NullType:
		return 0
	case BoolType:
		return 1
	case NumberType:
		return 2
	case StringType:
		return 3
	case ArrayType:
		return 4
	case ObjectType:
		return 5
	}
	return 100
}

func compareValues(a, b *Node, keyed bool) int {
	if d := cmp.Compare(len(a.Values), len(b.Values)); d != 0 {
		return d
	}
	for i := range a.Values {
		if keyed {
			if d := strings.Compare(a.Values[i].Field, b.Values[i].Field); d != 0 {
				return d
			}
		}
		if d := Compare(a.Values[i], b.Values[i]); d != 0 {
			return d
		}
	}
	return 0
}

func Equal(a, b *Node) bool {
	return Compare(a, b) == 0
}
