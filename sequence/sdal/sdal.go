// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2024-present Datadog, Inc.

// Package sdal provides a simple dynamic array list, whose elements always
// occupy the leading slots of a single backing array.
//
// The backing array grows to 150% of its size when an element is added to a
// full array, and shrinks to 75% of its size once it is at least twice its
// construction-time size with fewer than half its slots in use.
package sdal

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

// List is a simple dynamic array list. The zero value is not usable; create
// instances with [New] or [NewWithCapacity].
type List[E any] struct {
	buf  buffer.Buffer[E]
	tail int // Number of occupied slots
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
		panic(fmt.Sprintf("sdal: invalid capacity: %d", capacity))
	}
	return &List[E]{buf: buffer.New[E](capacity)}
}

// Capacity returns the size of the backing array.
func (l *List[E]) Capacity() int {
	return l.buf.Cap()
}

// Clone returns a deep copy of the list.
func (l *List[E]) Clone() *List[E] {
	return &List[E]{buf: l.buf.Clone(0, l.tail), tail: l.tail}
}

// Move transfers the contents of the list to a new [List], which is returned.
// The receiver is left empty, with the configured default capacity.
func (l *List[E]) Move() *List[E] {
	moved := &List[E]{buf: l.buf, tail: l.tail}
	l.buf = buffer.New[E](config.NewSequenceConfig().DefaultCapacity)
	l.tail = 0
	return moved
}

func (l *List[E]) Insert(element E, position int) error {
	if err := sequence.CheckInsert("Insert", position, l.tail); err != nil {
		return err
	}
	l.reserve()
	slots := l.buf.Slots()
	copy(slots[position+1:l.tail+1], slots[position:l.tail])
	slots[position] = element
	l.tail++
	return nil
}

func (l *List[E]) PushBack(element E) {
	l.reserve()
	l.buf.Slots()[l.tail] = element
	l.tail++
}

func (l *List[E]) PushFront(element E) {
	_ = l.Insert(element, 0)
}

func (l *List[E]) Replace(element E, position int) (E, error) {
	if err := sequence.CheckAccess("Replace", position, l.tail); err != nil {
		var zero E
		return zero, err
	}
	slots := l.buf.Slots()
	old := slots[position]
	slots[position] = element
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
	return l.buf.Slots()[position], nil
}

func (l *List[E]) PeekBack() (E, error) {
	if err := sequence.CheckNotEmpty("PeekBack", l.tail); err != nil {
		var zero E
		return zero, err
	}
	return l.buf.Slots()[l.tail-1], nil
}

func (l *List[E]) PeekFront() (E, error) {
	if err := sequence.CheckNotEmpty("PeekFront", l.tail); err != nil {
		var zero E
		return zero, err
	}
	return l.buf.Slots()[0], nil
}

func (l *List[E]) IsEmpty() bool {
	return l.tail == 0
}

// IsFull always returns false, as the backing array grows on demand.
func (l *List[E]) IsFull() bool {
	return false
}

func (l *List[E]) Length() int {
	return l.tail
}

// Clear removes all elements and returns to the construction-time capacity.
func (l *List[E]) Clear() {
	if original := l.buf.Original(); l.buf.Cap() != original {
		l.buf = buffer.New[E](original)
	} else {
		clear(l.buf.Slots()[:l.tail])
	}
	l.tail = 0
}

func (l *List[E]) Contains(element E, equals sequence.Equals[E]) bool {
	for _, e := range l.buf.Slots()[:l.tail] {
		if equals(e, element) {
			return true
		}
	}
	return false
}

func (l *List[E]) Contents() []E {
	contents := make([]E, l.tail)
	copy(contents, l.buf.Slots())
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
		for _, e := range l.buf.Slots()[:l.tail] {
			if !yield(e) {
				return
			}
		}
	}
}

// removeAt removes the element at a position already known to be valid.
func (l *List[E]) removeAt(position int) E {
	slots := l.buf.Slots()
	removed := slots[position]
	copy(slots[position:l.tail-1], slots[position+1:l.tail])
	l.tail--
	l.buf.Zero(l.tail)
	l.shrink()
	return removed
}

// reserve ensures there is room for one more element.
func (l *List[E]) reserve() {
	size := l.buf.Cap()
	if l.tail < size {
		return
	}
	target := buffer.GrowTarget(size)
	l.buf.Relocate(0, l.tail, target)
	stats.RecordGrow()
	log.Debug("sequence/sdal: grew backing array from %d to %d slots", size, target)
}

// shrink applies the shrink policy after a removal.
func (l *List[E]) shrink() {
	size := l.buf.Cap()
	target, ok := buffer.ShrinkTarget(size, l.buf.Original(), l.tail)
	if !ok {
		return
	}
	l.buf.Relocate(0, l.tail, target)
	stats.RecordShrink()
	log.Debug("sequence/sdal: shrunk backing array from %d to %d slots", size, target)
}
