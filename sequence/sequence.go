// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2024-present Datadog, Inc.

// Package sequence defines the contract shared by the list containers of this
// module. Each sub-package provides an independent implementation with its
// own storage strategy:
//   - [github.com/DataDog/sequence-go/sequence/cbl]: a circular buffer that
//     grows and shrinks its backing array;
//   - [github.com/DataDog/sequence-go/sequence/cdal]: a chain of fixed-size
//     array blocks;
//   - [github.com/DataDog/sequence-go/sequence/psll]: a singly linked list
//     that recycles its nodes through a bounded pool;
//   - [github.com/DataDog/sequence-go/sequence/sdal]: a plain dynamic array.
//
// Containers are not safe for concurrent use. Positions are zero-based.
package sequence

import (
	"io"
	"iter"
)

type (
	// Sequence is an ordered, mutable, indexable collection of elements.
	Sequence[E any] interface {
		// Insert adds element at position, shifting the element at that position
		// and all subsequent ones one position to the right. The position must
		// be within [0, Length()].
		Insert(element E, position int) error
		// PushBack appends element to the sequence.
		PushBack(element E)
		// PushFront prepends element to the sequence.
		PushFront(element E)
		// Replace overwrites the element at position and returns the element it
		// displaced.
		Replace(element E, position int) (E, error)
		// Remove removes and returns the element at position, shifting all
		// subsequent elements one position to the left.
		Remove(position int) (E, error)
		// PopBack removes and returns the last element.
		PopBack() (E, error)
		// PopFront removes and returns the first element.
		PopFront() (E, error)
		// ItemAt returns the element at position without removing it.
		ItemAt(position int) (E, error)
		// PeekBack returns the last element without removing it.
		PeekBack() (E, error)
		// PeekFront returns the first element without removing it.
		PeekFront() (E, error)
		// IsEmpty returns true if the sequence holds no element.
		IsEmpty() bool
		// IsFull returns true if the sequence cannot accept another element.
		IsFull() bool
		// Length returns the number of elements held.
		Length() int
		// Clear removes all elements.
		Clear()
		// Contains returns true if at least one element is equal to element
		// according to equals.
		Contains(element E, equals Equals[E]) bool
		// Contents returns a newly allocated slice holding the elements in
		// order. The slice does not alias the sequence's storage.
		Contents() []E
		// Print writes the [Format] rendering of the sequence to w.
		Print(w io.Writer) error
		// String returns the [Format] rendering of the sequence.
		String() string
		// All returns an iterator over the elements, in order. The iterator is
		// invalidated by any structural mutation of the sequence.
		All() iter.Seq[E]
	}

	// Equals reports whether a and b should be considered equal.
	Equals[E any] func(a, b E) bool
)

// Equal is an [Equals] function for comparable types using the == operator.
func Equal[E comparable](a, b E) bool {
	return a == b
}
