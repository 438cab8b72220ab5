// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2024-present Datadog, Inc.

// Package psll provides a pooled singly linked list. Nodes unlinked from the
// list are kept in a free-node pool and reused by later insertions, so that a
// list whose length oscillates stops allocating. The pool retains at most a
// configured number of nodes and releases the others.
package psll

import (
	"io"
	"iter"

	"github.com/DataDog/sequence-go/config"
	"github.com/DataDog/sequence-go/log"
	"github.com/DataDog/sequence-go/sequence"
	"github.com/DataDog/sequence-go/stats"
)

// List is a pooled singly linked list. The zero value is not usable; create
// instances with [New].
type List[E any] struct {
	head   *node[E]
	tail   *node[E]
	length int
	pool   pool[E]
}

var _ sequence.Sequence[int] = (*List[int])(nil)

// New returns an empty [List] with an empty pool.
func New[E any]() *List[E] {
	l := &List[E]{}
	l.pool.reset(config.NewSequenceConfig().PoolCeiling)
	return l
}

// PoolLen returns the number of free nodes held by the pool.
func (l *List[E]) PoolLen() int {
	return l.pool.count
}

// Clone returns a deep copy of the list. The copy starts with an empty pool.
func (l *List[E]) Clone() *List[E] {
	clone := &List[E]{}
	clone.pool.reset(l.pool.ceiling)
	for n := l.head; n != nil; n = n.next {
		clone.PushBack(n.value)
	}
	return clone
}

// Move transfers the elements and the pool of the list to a new [List],
// which is returned. The receiver is left with no elements and an empty pool.
func (l *List[E]) Move() *List[E] {
	moved := &List[E]{head: l.head, tail: l.tail, length: l.length, pool: l.pool}
	*l = *New[E]()
	return moved
}

func (l *List[E]) Insert(element E, position int) error {
	if err := sequence.CheckInsert("Insert", position, l.length); err != nil {
		return err
	}
	switch position {
	case 0:
		l.PushFront(element)
		return nil
	case l.length:
		l.PushBack(element)
		return nil
	}
	prev := l.nodeAt(position - 1)
	n := l.pool.take(element)
	n.next = prev.next
	prev.next = n
	l.length++
	return nil
}

func (l *List[E]) PushBack(element E) {
	n := l.pool.take(element)
	if l.tail == nil {
		l.head = n
	} else {
		l.tail.next = n
	}
	l.tail = n
	l.length++
}

func (l *List[E]) PushFront(element E) {
	n := l.pool.take(element)
	n.next = l.head
	l.head = n
	if l.tail == nil {
		l.tail = n
	}
	l.length++
}

func (l *List[E]) Replace(element E, position int) (E, error) {
	if err := sequence.CheckAccess("Replace", position, l.length); err != nil {
		var zero E
		return zero, err
	}
	n := l.nodeAt(position)
	old := n.value
	n.value = element
	return old, nil
}

func (l *List[E]) Remove(position int) (E, error) {
	if err := sequence.CheckAccess("Remove", position, l.length); err != nil {
		var zero E
		return zero, err
	}
	if position == 0 {
		return l.PopFront()
	}
	return l.unlinkAfter(l.nodeAt(position - 1)), nil
}

func (l *List[E]) PopBack() (E, error) {
	if err := sequence.CheckNotEmpty("PopBack", l.length); err != nil {
		var zero E
		return zero, err
	}
	if l.length == 1 {
		return l.PopFront()
	}
	return l.unlinkAfter(l.nodeAt(l.length - 2)), nil
}

func (l *List[E]) PopFront() (E, error) {
	if err := sequence.CheckNotEmpty("PopFront", l.length); err != nil {
		var zero E
		return zero, err
	}
	n := l.head
	l.head = n.next
	if l.head == nil {
		l.tail = nil
	}
	l.length--
	removed := n.value
	l.recycle(n)
	return removed, nil
}

func (l *List[E]) ItemAt(position int) (E, error) {
	if err := sequence.CheckAccess("ItemAt", position, l.length); err != nil {
		var zero E
		return zero, err
	}
	return l.nodeAt(position).value, nil
}

func (l *List[E]) PeekBack() (E, error) {
	if err := sequence.CheckNotEmpty("PeekBack", l.length); err != nil {
		var zero E
		return zero, err
	}
	return l.tail.value, nil
}

func (l *List[E]) PeekFront() (E, error) {
	if err := sequence.CheckNotEmpty("PeekFront", l.length); err != nil {
		var zero E
		return zero, err
	}
	return l.head.value, nil
}

func (l *List[E]) IsEmpty() bool {
	return l.length == 0
}

// IsFull always returns false, as nodes are allocated on demand.
func (l *List[E]) IsFull() bool {
	return false
}

func (l *List[E]) Length() int {
	return l.length
}

// Clear moves every node to the pool, releasing those above its ceiling.
func (l *List[E]) Clear() {
	released := 0
	for n := l.head; n != nil; {
		next := n.next
		if !l.pool.give(n) {
			released++
		}
		n = next
	}
	l.head, l.tail, l.length = nil, nil, 0
	if released > 0 {
		stats.RecordNodesReleased(released)
		log.Debug("sequence/psll: pool at its ceiling of %d nodes, released %d nodes", l.pool.ceiling, released)
	}
}

func (l *List[E]) Contains(element E, equals sequence.Equals[E]) bool {
	for n := l.head; n != nil; n = n.next {
		if equals(n.value, element) {
			return true
		}
	}
	return false
}

func (l *List[E]) Contents() []E {
	contents := make([]E, 0, l.length)
	for n := l.head; n != nil; n = n.next {
		contents = append(contents, n.value)
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
		for n := l.head; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// nodeAt returns the node at a position already known to be valid.
func (l *List[E]) nodeAt(position int) *node[E] {
	n := l.head
	for range position {
		n = n.next
	}
	return n
}

// unlinkAfter removes the node following prev, which must exist, and returns
// its value.
func (l *List[E]) unlinkAfter(prev *node[E]) E {
	n := prev.next
	prev.next = n.next
	if n == l.tail {
		l.tail = prev
	}
	l.length--
	removed := n.value
	l.recycle(n)
	return removed
}

// recycle routes an unlinked node to the pool.
func (l *List[E]) recycle(n *node[E]) {
	if l.pool.give(n) {
		return
	}
	stats.RecordNodesReleased(1)
	log.Debug("sequence/psll: pool at its ceiling of %d nodes, released 1 node", l.pool.ceiling)
}
