// Package ir defines the document tree shared by the parse and encode
// packages.
//
// # The Node type
//
// A Node is one JSON value: null, bool, number, string, array or object,
// discriminated by the Type field. Container nodes keep their children
// in order in Values; a child of an object additionally carries its key
// in Field. Parent and ParentIndex link a child back to its container.
//
// # Creating Nodes
//
// Use constructor functions to create nodes:
//
//	s := ir.FromString("hello")
//	n := ir.FromInt(42)
//	b := ir.FromBool(true)
//	obj := ir.NewObject()
//	obj.Set("answer", n)
//	arr := ir.FromSlice([]*ir.Node{ir.True(), ir.Null()})
//
// # Numbers
//
// Number nodes carry both Float64 and its truncation Int64, matching the
// wire behavior: a number whose truncation is exact encodes back as a
// plain integer.
//
// # Ownership
//
// A node belongs to at most one tree. Append and Set refuse nodes that
// are already linked (ErrLinked) rather than aliasing a subtree into two
// parents. Detach severs the parent link and hands the subtree back as a
// standalone tree. There is nothing to free: unreachable subtrees are
// collected.
//
// # Thread safety
//
// Node structures are not thread-safe. Multiple readers may traverse a
// tree concurrently as long as nothing mutates it; any Append, Set,
// Detach or Remove must be synchronized externally against all other
// access to that tree. The package keeps no global state.
package ir
