package ir

import "errors"

var (
	// ErrLinked is returned when a node which already has a parent is
	// handed to Append or Set.
	ErrLinked = errors.New("node already linked")

	// ErrIndex is returned for an out of range index in Detach or Remove.
	ErrIndex = errors.New("index out of range")

	// ErrNotContainer is returned when a mutator is called on a node of
	// the wrong type: Append, Detach and Remove want an array, Set wants
	// an object.
	ErrNotContainer = errors.New("not a container")
)
