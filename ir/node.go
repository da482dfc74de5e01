package ir

type Node struct {
	Type        Type
	Parent      *Node
	ParentIndex int

	// Field is the key of this node under an object parent. It is
	// meaningless when the parent is an array or nil.
	Field string

	// Values holds the ordered children of arrays and objects.
	Values []*Node

	Bool   bool
	String string

	// Float64 and Int64 are both populated on number nodes; Int64 is
	// the truncation of Float64 and drives the encoder's choice between
	// integer and fixed point form.
	Float64 float64
	Int64   int64
}

func Null() *Node {
	return &Node{Type: NullType}
}

func True() *Node {
	return &Node{Type: BoolType, Bool: true}
}

func False() *Node {
	return &Node{Type: BoolType}
}

func FromBool(v bool) *Node {
	return &Node{Type: BoolType, Bool: v}
}

func FromFloat(f float64) *Node {
	return &Node{
		Type:    NumberType,
		Float64: f,
		Int64:   int64(f),
	}
}

func FromInt(v int64) *Node {
	return &Node{
		Type:    NumberType,
		Float64: float64(v),
		Int64:   v,
	}
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

func NewArray() *Node {
	return &Node{Type: ArrayType}
}

func NewObject() *Node {
	return &Node{Type: ObjectType}
}

func FromSlice(vs []*Node) *Node {
	res := NewArray()
	res.Values = make([]*Node, len(vs))
	for i, v := range vs {
		v.Parent = res
		v.ParentIndex = i
		res.Values[i] = v
	}
	return res
}

type KeyVal struct {
	Key string
	Val *Node
}

func FromKeyVals(kvs []KeyVal) *Node {
	res := NewObject()
	res.Values = make([]*Node, len(kvs))
	for i := range kvs {
		kv := &kvs[i]
		kv.Val.Parent = res
		kv.Val.ParentIndex = i
		kv.Val.Field = kv.Key
		res.Values[i] = kv.Val
	}
	return res
}

func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Type = y.Type
	dst.Field = y.Field
	dst.Bool = y.Bool
	dst.String = y.String
	dst.Float64 = y.Float64
	dst.Int64 = y.Int64
	if y.Values == nil {
		dst.Values = nil
		return dst
	}
	dst.Values = make([]*Node, len(y.Values))
	for i, yv := range y.Values {
		dstI := &Node{}
		yv.CloneTo(dstI)
		dstI.Parent = dst
		dstI.ParentIndex = i
		dst.Values[i] = dstI
	}
	return dst
}

func (y *Node) Root() *Node {
	res := y
	for res.Parent != nil {
		res = res.Parent
	}
	return res
}

func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}
