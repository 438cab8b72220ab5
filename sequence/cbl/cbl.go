// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2024-present Datadog, Inc.

// Package cbl provides a circular-buffer list: a dynamic array whose occupied
// window [head, tail) may wrap around the end of the backing array, which
// makes insertions and removals at both ends O(1).
//
// One slot of the backing array is always left unused, so that head == tail
// unambiguously means the list is empty. When an element is added and no
// free slot remains, the backing array is replaced by one 150% its size. When
// the backing array is at least twice its construction-time size and fewer
// than half its slots are used, it is replaced by one 75% its size.
package cbl

import (
	"fmt"
	"io"
	"iter"

	"github.com/DataDog/sequence-go/config"
	"github.com/DataDog/sequence-go/internal/buffer"
	"github.com/DataDog/sequence-go/log"
	"github.com/DataDog/sequence-go/sequence"
	"github.com/DataDog/sequence-go/stats"
)

// List is a circular-buffer list. The zero value is not usable; create
// instances with [New] or [NewWithCapacity].
type List[E any] struct {
	buf  buffer.Buffer[E]
	head int // Physical index of the first element
	tail int // Physical index one past the last element
}

var _ sequence.Sequence[int] = (*List[int])(nil)

// New returns an empty [List] with the configured default capacity.
func New[E any]() *List[E] {
	return NewWithCapacity[E](config.NewSequenceConfig().DefaultCapacity)
}

// NewWithCapacity returns an empty [List] with a backing array of the given
// capacity, which also serves as the reference for shrinking.
func NewWithCapacity[E any](capacity int) *List[E] {
	if capacity < 1 {
		panic(fmt.Sprintf("cbl: invalid capacity: %d", capacity))
	}
	return &List[E]{buf: buffer.New[E](capacity)}
}

// Capacity returns the size of the backing array.
func (l *List[E]) Capacity() int {
	return l.buf.Cap()
}

// Clone returns a deep copy of the list.
func (l *List[E]) Clone() *List[E] {
	n := l.Length()
	return &List[E]{
		buf:  l.buf.Clone(l.head, n),
		tail: n,
	}
}

// Move transfers the contents of the list to a new [List], which is returned.
// The receiver is left empty, with the configured default capacity.
func (l *List[E]) Move() *List[E] {
	moved := &List[E]{buf: l.buf, head: l.head, tail: l.tail}
	l.buf = buffer.New[E](config.NewSequenceConfig().DefaultCapacity)
	l.head, l.tail = 0, 0
	return moved
}

func (l *List[E]) Insert(element E, position int) error {
	n := l.Length()
	if err := sequence.CheckInsert("Insert", position, n); err != nil {
		return err
	}
	switch position {
	case n:
		l.PushBack(element)
		return nil
	case 0:
		l.PushFront(element)
		return nil
	}

	l.reserve()
	slots := l.buf.Slots()
	for i := n; i > position; i-- {
		slots[l.buf.Wrap(l.head, i)] = slots[l.buf.Wrap(l.head, i-1)]
	}
	slots[l.buf.Wrap(l.head, position)] = element
	l.tail = l.buf.Wrap(l.tail, 1)
	return nil
}

func (l *List[E]) PushBack(element E) {
	l.reserve()
	l.buf.Slots()[l.tail] = element
	l.tail = l.buf.Wrap(l.tail, 1)
}

func (l *List[E]) PushFront(element E) {
	l.reserve()
	l.head = l.prev(l.head)
	l.buf.Slots()[l.head] = element
}

func (l *List[E]) Replace(element E, position int) (E, error) {
	if err := sequence.CheckAccess("Replace", position, l.Length()); err != nil {
		var zero E
		return zero, err
	}
	slot := &l.buf.Slots()[l.buf.Wrap(l.head, position)]
	old := *slot
	*slot = element
	return old, nil
}

func (l *List[E]) Remove(position int) (E, error) {
	n := l.Length()
	if err := sequence.CheckAccess("Remove", position, n); err != nil {
		var zero E
		return zero, err
	}
	if position == 0 {
		return l.PopFront()
	}

	slots := l.buf.Slots()
	removed := slots[l.buf.Wrap(l.head, position)]
	for i := position; i < n-1; i++ {
		slots[l.buf.Wrap(l.head, i)] = slots[l.buf.Wrap(l.head, i+1)]
	}
	l.tail = l.prev(l.tail)
	l.buf.Zero(l.tail)
	l.shrink()
	return removed, nil
}

func (l *List[E]) PopBack() (E, error) {
	if err := sequence.CheckNotEmpty("PopBack", l.Length()); err != nil {
		var zero E
		return zero, err
	}
	l.tail = l.prev(l.tail)
	removed := l.buf.Slots()[l.tail]
	l.buf.Zero(l.tail)
	l.shrink()
	return removed, nil
}

func (l *List[E]) PopFront() (E, error) {
	if err := sequence.CheckNotEmpty("PopFront", l.Length()); err != nil {
		var zero E
		return zero, err
	}
	removed := l.buf.Slots()[l.head]
	l.buf.Zero(l.head)
	l.head = l.buf.Wrap(l.head, 1)
	l.shrink()
	return removed, nil
}

func (l *List[E]) ItemAt(position int) (E, error) {
	if err := sequence.CheckAccess("ItemAt", position, l.Length()); err != nil {
		var zero E
		return zero, err
	}
	return l.buf.Slots()[l.buf.Wrap(l.head, position)], nil
}

func (l *List[E]) PeekBack() (E, error) {
	if err := sequence.CheckNotEmpty("PeekBack", l.Length()); err != nil {
		var zero E
		return zero, err
	}
	return l.buf.Slots()[l.prev(l.tail)], nil
}

func (l *List[E]) PeekFront() (E, error) {
	if err := sequence.CheckNotEmpty("PeekFront", l.Length()); err != nil {
		var zero E
		return zero, err
	}
	return l.buf.Slots()[l.head], nil
}

func (l *List[E]) IsEmpty() bool {
	return l.head == l.tail
}

// IsFull always returns false, as the backing array grows on demand.
func (l *List[E]) IsFull() bool {
	return false
}

func (l *List[E]) Length() int {
	size := l.buf.Cap()
	return (l.tail - l.head + size) % size
}

// Clear removes all elements and returns to the construction-time capacity.
func (l *List[E]) Clear() {
	if original := l.buf.Original(); l.buf.Cap() != original {
		l.buf = buffer.New[E](original)
	} else {
		clear(l.buf.Slots())
	}
	l.head, l.tail = 0, 0
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
	n := l.Length()
	contents := make([]E, n)
	l.buf.CopyTo(contents, l.head, n)
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
		slots := l.buf.Slots()
		for i, n := 0, l.Length(); i < n; i++ {
			if !yield(slots[l.buf.Wrap(l.head, i)]) {
				return
			}
		}
	}
}

// prev returns the physical index preceding idx, wrapping around.
func (l *List[E]) prev(idx int) int {
	if idx == 0 {
		return l.buf.Cap() - 1
	}
	return idx - 1
}

// reserve ensures there is room for one more element, growing the backing
// array if only the reserved slot is left.
func (l *List[E]) reserve() {
	size := l.buf.Cap()
	n := l.Length()
	if n < size-1 {
		return
	}
	target := buffer.GrowTarget(size)
	l.buf.Relocate(l.head, n, target)
	l.head, l.tail = 0, n
	stats.RecordGrow()
	log.Debug("sequence/cbl: grew backing array from %d to %d slots", size, target)
}

// shrink applies the shrink policy after a removal.
func (l *List[E]) shrink() {
	size := l.buf.Cap()
	n := l.Length()
	target, ok := buffer.ShrinkTarget(size, l.buf.Original(), n)
	if !ok {
		return
	}
	l.buf.Relocate(l.head, n, target)
	l.head, l.tail = 0, n
	stats.RecordShrink()
	log.Debug("sequence/cbl: shrunk backing array from %d to %d slots", size, target)
}
