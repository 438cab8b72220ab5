// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2024-present Datadog, Inc.

// Package cdal provides a chained dynamic array list: the elements are laid
// out contiguously across a singly linked chain of fixed-size blocks.
//
// Growing appends a block and never moves existing elements to a new array.
// After every removal, trailing blocks beyond those needed to hold the
// elements plus a configurable slack are released.
package cdal

import (
	"io"
	"iter"

	"github.com/DataDog/sequence-go/config"
	"github.com/DataDog/sequence-go/sequence"
)

// List is a chained dynamic array list. The zero value is not usable; create
// instances with [New].
type List[E any] struct {
	chain chain[E]
	tail  int // Number of elements, and first free logical position
	slack int // Empty blocks tolerated past the needed ones
}

var _ sequence.Sequence[int] = (*List[int])(nil)

// New returns an empty [List] made of a single block.
func New[E any]() *List[E] {
	return &List[E]{
		chain: newChain[E](),
		slack: config.NewSequenceConfig().ChainSlack,
	}
}

// Blocks returns the number of blocks in the chain.
func (l *List[E]) Blocks() int {
	return l.chain.blocks
}

// Clone returns a deep copy of the list.
func (l *List[E]) Clone() *List[E] {
	return &List[E]{chain: l.chain.clone(), tail: l.tail, slack: l.slack}
}

// Move transfers the contents of the list to a new [List], which is returned.
// The receiver is left empty, with a single block.
func (l *List[E]) Move() *List[E] {
	moved := &List[E]{chain: l.chain, tail: l.tail, slack: l.slack}
	*l = *New[E]()
	return moved
}

func (l *List[E]) Insert(element E, position int) error {
	if err := sequence.CheckInsert("Insert", position, l.tail); err != nil {
		return err
	}
	if l.tail == l.chain.blocks*BlockSize {
		l.chain.extend()
	}

	b, slot := l.chain.locate(position)
	carry := element
	for remaining := l.tail - position; ; b, slot = b.next, 0 {
		n := min(remaining, BlockSize-slot)
		if slot+n < BlockSize {
			copy(b.slots[slot+1:slot+n+1], b.slots[slot:slot+n])
			b.slots[slot] = carry
			break
		}
		// The block is full from slot onwards: its last element moves on to
		// the head of the next block.
		out := b.slots[BlockSize-1]
		copy(b.slots[slot+1:], b.slots[slot:BlockSize-1])
		b.slots[slot] = carry
		carry = out
		remaining -= n
	}
	l.tail++
	return nil
}

func (l *List[E]) PushBack(element E) {
	_ = l.Insert(element, l.tail)
}

func (l *List[E]) PushFront(element E) {
	_ = l.Insert(element, 0)
}

func (l *List[E]) Replace(element E, position int) (E, error) {
	if err := sequence.CheckAccess("Replace", position, l.tail); err != nil {
		var zero E
		return zero, err
	}
	b, slot := l.chain.locate(position)
	old := b.slots[slot]
	b.slots[slot] = element
	return old, nil
}

func (l *List[E]) Remove(position int) (E, error) {
	if err := sequence.CheckAccess("Remove", position, l.tail); err != nil {
		var zero E
		return zero, err
	}
	return l.removeAt(position), nil
}

func (l *List[E]) PopBack() (E, error) {
	if err := sequence.CheckNotEmpty("PopBack", l.tail); err != nil {
		var zero E
		return zero, err
	}
	return l.removeAt(l.tail - 1), nil
}

func (l *List[E]) PopFront() (E, error) {
	if err := sequence.CheckNotEmpty("PopFront", l.tail); err != nil {
		var zero E
		return zero, err
	}
	return l.removeAt(0), nil
}

func (l *List[E]) ItemAt(position int) (E, error) {
	if err := sequence.CheckAccess("ItemAt", position, l.tail); err != nil {
		var zero E
		return zero, err
	}
	b, slot := l.chain.locate(position)
	return b.slots[slot], nil
}

func (l *List[E]) PeekBack() (E, error) {
	if err := sequence.CheckNotEmpty("PeekBack", l.tail); err != nil {
		var zero E
		return zero, err
	}
	b, slot := l.chain.locate(l.tail - 1)
	return b.slots[slot], nil
}

func (l *List[E]) PeekFront() (E, error) {
	if err := sequence.CheckNotEmpty("PeekFront", l.tail); err != nil {
		var zero E
		return zero, err
	}
	return l.chain.head.slots[0], nil
}

func (l *List[E]) IsEmpty() bool {
	return l.tail == 0
}

// IsFull always returns false, as blocks are appended on demand.
func (l *List[E]) IsFull() bool {
	return false
}

func (l *List[E]) Length() int {
	return l.tail
}

// Clear removes all elements and releases the blocks past the first one and
// the slack.
func (l *List[E]) Clear() {
	for b, left := l.chain.head, l.tail; b != nil && left > 0; b, left = b.next, left-BlockSize {
		clear(b.slots[:min(left, BlockSize)])
	}
	l.tail = 0
	l.trim()
}

func (l *List[E]) Contains(element E, equals sequence.Equals[E]) bool {
	for e := range l.All() {
		if equals(e, element) {
			return true
		}
	}
	return false
}

func (l *List[E]) Contents() []E {
	contents := make([]E, 0, l.tail)
	for b := l.chain.head; len(contents) < l.tail; b = b.next {
		contents = append(contents, b.slots[:min(l.tail-len(contents), BlockSize)]...)
	}
	return contents
}

func (l *List[E]) Print(w io.Writer) error {
	return sequence.Print(w, l.All())
}

func (l *List[E]) String() string {
	return sequence.Format(l.All())
}

func (l *List[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		b := l.chain.head
		for p := range l.tail {
			if p > 0 && p%BlockSize == 0 {
				b = b.next
			}
			if !yield(b.slots[p%BlockSize]) {
				return
			}
		}
	}
}

// removeAt removes the element at a position already known to be valid,
// shifting every later element one slot towards the front.
func (l *List[E]) removeAt(position int) E {
	b, slot := l.chain.locate(position)
	removed := b.slots[slot]
	for base := position - slot; ; b, slot, base = b.next, 0, base+BlockSize {
		end := min(l.tail-base, BlockSize)
		copy(b.slots[slot:end-1], b.slots[slot+1:end])
		if base+BlockSize >= l.tail {
			var zero E
			b.slots[end-1] = zero
			break
		}
		b.slots[BlockSize-1] = b.next.slots[0]
	}
	l.tail--
	l.trim()
	return removed
}

// trim releases the trailing blocks exceeding the needed ones by more than
// the slack.
func (l *List[E]) trim() {
	needed := max(1, (l.tail+BlockSize-1)/BlockSize)
	if l.chain.blocks-needed > l.slack {
		l.chain.truncate(needed + l.slack)
	}
}
