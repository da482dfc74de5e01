package ir

// Get returns the value of the first field of y named exactly field, or
// nil if there is none or y is not an object.
func Get(y *Node, field string) *Node {
	if y == nil || y.Type != ObjectType {
		return nil
	}
	for _, v := range y.Values {
		if v.Field == field {
			return v
		}
	}
	return nil
}

// GetFold is Get with ASCII case folding on the field name.
func GetFold(y *Node, field string) *Node {
	if y == nil || y.Type != ObjectType {
		return nil
	}
	for _, v := range y.Values {
		if foldEq(v.Field, field) {
			return v
		}
	}
	return nil
}

func foldEq(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		if lower(a[i]) != lower(b[i]) {
			return false
		}
	}
	return true
}

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

// At returns the i'th child of an array or object, or nil when i is out
// of range.
func At(y *Node, i int) *Node {
	if y == nil || i < 0 || i >= len(y.Values) {
		return nil
	}
	return y.Values[i]
}

// Len returns the number of children of y.
func Len(y *Node) int {
	if y == nil {
		return 0
	}
	return len(y.Values)
}

func (y *Node) IsNull() bool   { return y != nil && y.Type == NullType }
func (y *Node) IsBool() bool   { return y != nil && y.Type == BoolType }
func (y *Node) IsNumber() bool { return y != nil && y.Type == NumberType }
func (y *Node) IsString() bool { return y != nil && y.Type == StringType }
func (y *Node) IsArray() bool  { return y != nil && y.Type == ArrayType }
func (y *Node) IsObject() bool { return y != nil && y.Type == ObjectType }
