// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2024-present Datadog, Inc.

// Package buffer implements the owned backing array of the array-based
// containers, along with the policy deciding when it grows or shrinks.
package buffer

import (
	"fmt"
)

type (
	// Buffer is a fixed-capacity array of slots that can be relocated into a
	// larger or smaller array. It remembers the capacity it was created with,
	// which is the reference for the shrink policy.
	Buffer[E any] struct {
		slots    []E
		original int
	}
)

// New returns a [Buffer] with the given capacity, which must be at least 1.
func New[E any](capacity int) Buffer[E] {
	if capacity < 1 {
		panic(fmt.Sprintf("buffer: invalid capacity: %d", capacity))
	}
	return Buffer[E]{
		slots:    make([]E, capacity),
		original: capacity,
	}
}

// Cap returns the current number of slots.
func (b *Buffer[E]) Cap() int {
	return len(b.slots)
}

// Original returns the capacity the buffer was created with.
func (b *Buffer[E]) Original() int {
	return b.original
}

// Slots returns the backing slots. The returned slice aliases the buffer and
// is only valid until the next call to [Buffer.Relocate].
func (b *Buffer[E]) Slots() []E {
	return b.slots
}

// Wrap translates the logical offset p from physical index head into a
// physical index.
func (b *Buffer[E]) Wrap(head int, p int) int {
	idx := head + p
	if idx >= len(b.slots) {
		idx -= len(b.slots)
	}
	return idx
}

// CopyTo copies the n elements that start at physical index head (wrapping
// around the end of the slots) into dst, in logical order.
func (b *Buffer[E]) CopyTo(dst []E, head int, n int) {
	if n == 0 {
		return
	}
	if end := head + n; end <= len(b.slots) {
		copy(dst, b.slots[head:end])
		return
	}
	copied := copy(dst, b.slots[head:])
	copy(dst[copied:], b.slots[:n-copied])
}

// Relocate replaces the slots by a new array of the given capacity, holding
// the n elements that started at physical index head, now starting at index 0.
// The previous slots are dropped.
func (b *Buffer[E]) Relocate(head int, n int, capacity int) {
	if capacity < n {
		panic(fmt.Sprintf("buffer: cannot relocate %d elements into %d slots", n, capacity))
	}
	slots := make([]E, capacity)
	b.CopyTo(slots, head, n)
	b.slots = slots
}

// Clone returns a deep copy of the buffer with the same capacity, holding the
// n elements that start at physical index head, now starting at index 0.
func (b *Buffer[E]) Clone(head int, n int) Buffer[E] {
	clone := Buffer[E]{
		slots:    make([]E, len(b.slots)),
		original: b.original,
	}
	b.CopyTo(clone.slots, head, n)
	return clone
}

// Zero clears the slot at idx so it no longer references a value.
func (b *Buffer[E]) Zero(idx int) {
	var zero E
	b.slots[idx] = zero
}
