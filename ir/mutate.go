package ir

import "fmt"

// Append adds item as the last element of the array node y. The item
// must be unlinked: appending a node that already sits in another tree
// would give it two owners.
func (y *Node) Append(item *Node) error {
	if y.Type != ArrayType {
		return fmt.Errorf("%w: append to %s", ErrNotContainer, y.Type)
	}
	if item.Parent != nil {
		return ErrLinked
	}
	item.Parent = y
	item.ParentIndex = len(y.Values)
	y.Values = append(y.Values, item)
	return nil
}

// Set adds item under the object node y with the given key. Keys are
// not deduplicated; Get returns the first match.
func (y *Node) Set(key string, item *Node) error {
	if y.Type != ObjectType {
		return fmt.Errorf("%w: set on %s", ErrNotContainer, y.Type)
	}
	if item.Parent != nil {
		return ErrLinked
	}
	item.Parent = y
	item.ParentIndex = len(y.Values)
	item.Field = key
	y.Values = append(y.Values, item)
	return nil
}

// Detach unlinks the i'th child of the array or object node y and
// returns it as a standalone tree.
func (y *Node) Detach(i int) (*Node, error) {
	switch y.Type {
	case ArrayType, ObjectType:
	default:
		return nil, fmt.Errorf("%w: detach from %s", ErrNotContainer, y.Type)
	}
	if i < 0 || i >= len(y.Values) {
		return nil, fmt.Errorf("%w: %d of %d", ErrIndex, i, len(y.Values))
	}
	c := y.Values[i]
	y.Values = append(y.Values[:i], y.Values[i+1:]...)
	for j := i; j < len(y.Values); j++ {
		y.Values[j].ParentIndex = j
	}
	c.Parent = nil
	c.ParentIndex = 0
	return c, nil
}

// Remove detaches the i'th child and drops it.
func (y *Node) Remove(i int) error {
	_, err := y.Detach(i)
	return err
}
