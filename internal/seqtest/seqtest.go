// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2024-present Datadog, Inc.

// Package seqtest holds the behavioural test-suite every [sequence.Sequence]
// implementation must pass.
package seqtest

import (
	"bytes"
	"math/rand"
	"slices"
	"testing"

	"github.com/DataDog/sequence-go/sequence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Fill appends values to s.
func Fill(s sequence.Sequence[int], values ...int) {
	for _, v := range values {
		s.PushBack(v)
	}
}

// Range returns the integers in [0, n).
func Range(n int) []int {
	values := make([]int, n)
	for i := range values {
		values[i] = i
	}
	return values
}

// RequireContents checks that s holds exactly values, through every read
// accessor of the contract.
func RequireContents(t testing.TB, s sequence.Sequence[int], values ...int) {
	t.Helper()

	require.Equal(t, len(values), s.Length())
	require.Equal(t, len(values) == 0, s.IsEmpty())
	if len(values) == 0 {
		require.Empty(t, s.Contents())
		require.Equal(t, sequence.EmptyFormat, s.String())
		return
	}

	require.Equal(t, values, s.Contents())
	require.Equal(t, values, slices.Collect(s.All()))
	for i, v := range values {
		item, err := s.ItemAt(i)
		require.NoError(t, err)
		require.Equal(t, v, item, "item at %d", i)
	}

	front, err := s.PeekFront()
	require.NoError(t, err)
	require.Equal(t, values[0], front)
	back, err := s.PeekBack()
	require.NoError(t, err)
	require.Equal(t, values[len(values)-1], back)
}

// Run exercises the [sequence.Sequence] contract on containers returned by
// newSeq, which must return a new, empty container on every call.
func Run(t *testing.T, newSeq func() sequence.Sequence[int]) {
	t.Run("PushBack/PopBack", func(t *testing.T) {
		s := newSeq()
		Fill(s, 1, 2, 3, 4)
		assert.Equal(t, "[1,2,3,4]", s.String())

		for _, expected := range []int{4, 3, 2, 1} {
			v, err := s.PopBack()
			require.NoError(t, err)
			assert.Equal(t, expected, v)
		}
		RequireContents(t, s)

		_, err := s.PopBack()
		assert.ErrorIs(t, err, sequence.ErrEmpty)
	})

	t.Run("PushFront/PopFront", func(t *testing.T) {
		s := newSeq()
		for _, v := range []int{1, 2, 3, 4} {
			s.PushFront(v)
		}
		RequireContents(t, s, 4, 3, 2, 1)

		for _, expected := range []int{4, 3, 2, 1} {
			v, err := s.PopFront()
			require.NoError(t, err)
			assert.Equal(t, expected, v)
		}
		RequireContents(t, s)

		_, err := s.PopFront()
		assert.ErrorIs(t, err, sequence.ErrEmpty)
	})

	t.Run("Insert", func(t *testing.T) {
		s := newSeq()
		assert.ErrorIs(t, s.Insert(0, -1), sequence.ErrRange)
		assert.ErrorIs(t, s.Insert(0, 1), sequence.ErrRange)

		require.NoError(t, s.Insert(5, 0))
		require.NoError(t, s.Insert(3, 0))
		require.NoError(t, s.Insert(2, 0))
		require.NoError(t, s.Insert(1, 0))
		require.NoError(t, s.Insert(0, 0))
		require.NoError(t, s.Insert(4, 4))
		RequireContents(t, s, 0, 1, 2, 3, 4, 5)

		assert.ErrorIs(t, s.Insert(6, 7), sequence.ErrRange)
		RequireContents(t, s, 0, 1, 2, 3, 4, 5)
	})

	t.Run("Insert/shifts", func(t *testing.T) {
		const n = 120
		for _, p := range []int{0, 1, 48, 49, 50, 51, 99, 100, n - 1, n} {
			s := newSeq()
			Fill(s, Range(n)...)
			require.NoError(t, s.Insert(-1, p))

			expected := slices.Insert(Range(n), p, -1)
			RequireContents(t, s, expected...)
		}
	})

	t.Run("Remove", func(t *testing.T) {
		s := newSeq()
		Fill(s, 0, 1, 2, 3)

		_, err := s.Remove(4)
		assert.ErrorIs(t, err, sequence.ErrRange)
		_, err = s.Remove(-1)
		assert.ErrorIs(t, err, sequence.ErrRange)

		for _, p := range []int{3, 2, 1, 0} {
			v, err := s.Remove(p)
			require.NoError(t, err)
			assert.Equal(t, p, v)
		}
		RequireContents(t, s)

		_, err = s.Remove(0)
		assert.ErrorIs(t, err, sequence.ErrRange)
	})

	t.Run("Remove/restore", func(t *testing.T) {
		const n = 120
		s := newSeq()
		Fill(s, Range(n)...)
		for _, p := range []int{0, 1, 48, 49, 50, 51, 99, 100, n - 1} {
			v, err := s.Remove(p)
			require.NoError(t, err)
			require.Equal(t, p, v)
			RequireContents(t, s, slices.Delete(Range(n), p, p+1)...)

			require.NoError(t, s.Insert(v, p))
			RequireContents(t, s, Range(n)...)
		}
	})

	t.Run("Replace", func(t *testing.T) {
		s := newSeq()
		_, err := s.Replace(1, 0)
		assert.ErrorIs(t, err, sequence.ErrRange)

		Fill(s, 0, 1, 2, 3)
		old, err := s.Replace(10, 1)
		require.NoError(t, err)
		assert.Equal(t, 1, old)
		old, err = s.Replace(30, 3)
		require.NoError(t, err)
		assert.Equal(t, 3, old)
		RequireContents(t, s, 0, 10, 2, 30)

		_, err = s.Replace(1, 4)
		assert.ErrorIs(t, err, sequence.ErrRange)
		_, err = s.Replace(1, -1)
		assert.ErrorIs(t, err, sequence.ErrRange)
		RequireContents(t, s, 0, 10, 2, 30)
	})

	t.Run("ItemAt", func(t *testing.T) {
		s := newSeq()
		_, err := s.ItemAt(0)
		assert.ErrorIs(t, err, sequence.ErrRange)

		Fill(s, 7, 8)
		_, err = s.ItemAt(2)
		assert.ErrorIs(t, err, sequence.ErrRange)
		_, err = s.ItemAt(-1)
		assert.ErrorIs(t, err, sequence.ErrRange)
	})

	t.Run("Peek", func(t *testing.T) {
		s := newSeq()
		_, err := s.PeekFront()
		assert.ErrorIs(t, err, sequence.ErrEmpty)
		_, err = s.PeekBack()
		assert.ErrorIs(t, err, sequence.ErrEmpty)

		s.PushBack(1)
		RequireContents(t, s, 1)
		s.PushFront(0)
		s.PushBack(2)
		RequireContents(t, s, 0, 1, 2)
	})

	t.Run("Boundaries", func(t *testing.T) {
		const n = 75
		a, b := newSeq(), newSeq()
		for i := range n {
			require.NoError(t, a.Insert(i, a.Length()))
			b.PushBack(i)
		}
		RequireContents(t, a, Range(n)...)
		RequireContents(t, b, Range(n)...)

		for range n {
			va, err := a.Remove(0)
			require.NoError(t, err)
			vb, err := b.PopFront()
			require.NoError(t, err)
			require.Equal(t, vb, va)
			require.Equal(t, b.Contents(), a.Contents())
		}
		RequireContents(t, a)
	})

	t.Run("Contains", func(t *testing.T) {
		s := newSeq()
		assert.False(t, s.Contains(0, sequence.Equal[int]))

		Fill(s, 1, 2, 3, 4)
		for _, v := range []int{1, 2, 3, 4} {
			assert.True(t, s.Contains(v, sequence.Equal[int]), "contains %d", v)
		}
		assert.False(t, s.Contains(0, sequence.Equal[int]))

		sameParity := func(a, b int) bool { return a%2 == b%2 }
		assert.True(t, s.Contains(10, sameParity))
	})

	t.Run("Contents", func(t *testing.T) {
		s := newSeq()
		assert.Empty(t, s.Contents())

		Fill(s, 1, 2, 3)
		contents := s.Contents()
		contents[0] = 42
		RequireContents(t, s, 1, 2, 3)
	})

	t.Run("Clear", func(t *testing.T) {
		s := newSeq()
		s.Clear()
		RequireContents(t, s)

		Fill(s, Range(200)...)
		s.Clear()
		RequireContents(t, s)

		Fill(s, 1, 2)
		RequireContents(t, s, 1, 2)
	})

	t.Run("All", func(t *testing.T) {
		s := newSeq()
		for range s.All() {
			t.Fatal("empty sequence must not yield")
		}

		Fill(s, Range(10)...)
		var seen []int
		for v := range s.All() {
			if v == 5 {
				break
			}
			seen = append(seen, v)
		}
		assert.Equal(t, Range(5), seen)
	})

	t.Run("Print", func(t *testing.T) {
		s := newSeq()
		var buf bytes.Buffer
		require.NoError(t, s.Print(&buf))
		assert.Equal(t, "<empty list>", buf.String())

		Fill(s, 1, 2, 3, 4)
		buf.Reset()
		require.NoError(t, s.Print(&buf))
		assert.Equal(t, "[1,2,3,4]", buf.String())
	})

	t.Run("IsFull", func(t *testing.T) {
		s := newSeq()
		assert.False(t, s.IsFull())
		Fill(s, Range(500)...)
		assert.False(t, s.IsFull())
	})

	t.Run("LIFO", func(t *testing.T) {
		const n = 500
		s := newSeq()
		Fill(s, Range(n)...)
		for i := n - 1; i >= 0; i-- {
			v, err := s.PopBack()
			require.NoError(t, err)
			require.Equal(t, i, v)
		}
		RequireContents(t, s)

		for i := range n {
			s.PushFront(i)
		}
		for i := n - 1; i >= 0; i-- {
			v, err := s.PopFront()
			require.NoError(t, err)
			require.Equal(t, i, v)
		}
		RequireContents(t, s)
	})

	t.Run("Model", func(t *testing.T) {
		// Random operations checked against a plain slice. The seed is fixed so
		// that failures are reproducible.
		rng := rand.New(rand.NewSource(1337))
		s := newSeq()
		var model []int

		for step := range 5_000 {
			switch op := rng.Intn(8); {
			case op < 2:
				s.PushBack(step)
				model = append(model, step)
			case op < 3:
				s.PushFront(step)
				model = slices.Insert(model, 0, step)
			case op < 4:
				p := rng.Intn(len(model) + 1)
				require.NoError(t, s.Insert(step, p))
				model = slices.Insert(model, p, step)
			case op < 5 && len(model) > 0:
				p := rng.Intn(len(model))
				v, err := s.Remove(p)
				require.NoError(t, err)
				require.Equal(t, model[p], v)
				model = slices.Delete(model, p, p+1)
			case op < 6 && len(model) > 0:
				v, err := s.PopBack()
				require.NoError(t, err)
				require.Equal(t, model[len(model)-1], v)
				model = model[:len(model)-1]
			case op < 7 && len(model) > 0:
				v, err := s.PopFront()
				require.NoError(t, err)
				require.Equal(t, model[0], v)
				model = model[1:]
			case len(model) > 0:
				p := rng.Intn(len(model))
				old, err := s.Replace(-step, p)
				require.NoError(t, err)
				require.Equal(t, model[p], old)
				model[p] = -step
			}
			require.Equal(t, len(model), s.Length(), "step %d", step)
			if step%250 == 0 {
				RequireContents(t, s, model...)
			}
		}
		RequireContents(t, s, model...)

		for len(model) > 0 {
			v, err := s.PopFront()
			require.NoError(t, err)
			require.Equal(t, model[0], v)
			model = model[1:]
		}
		RequireContents(t, s)
	})
}

// RunCopyMove exercises the value semantics of a concrete container type:
// deep copies through clone and ownership transfer through move.
func RunCopyMove[S sequence.Sequence[int]](t *testing.T, newSeq func() S, clone func(S) S, move func(S) S) {
	t.Run("Clone", func(t *testing.T) {
		original := newSeq()
		Fill(original, Range(130)...)

		copied := clone(original)
		RequireContents(t, copied, Range(130)...)

		// The same mutations on both must lead to equal but independent states.
		for _, s := range []S{original, copied} {
			_, err := s.Remove(60)
			require.NoError(t, err)
			s.PushFront(-1)
			_, err = s.PopBack()
			require.NoError(t, err)
		}
		expected := append([]int{-1}, slices.Delete(Range(129), 60, 61)...)
		RequireContents(t, original, expected...)
		RequireContents(t, copied, expected...)

		_, err := copied.Replace(1000, 0)
		require.NoError(t, err)
		front, err := original.PeekFront()
		require.NoError(t, err)
		assert.Equal(t, -1, front)

		copied.Clear()
		RequireContents(t, original, expected...)
	})

	t.Run("Clone/empty", func(t *testing.T) {
		original := newSeq()
		copied := clone(original)
		RequireContents(t, copied)
		copied.PushBack(1)
		RequireContents(t, original)
	})

	t.Run("Move", func(t *testing.T) {
		original := newSeq()
		Fill(original, Range(130)...)

		moved := move(original)
		RequireContents(t, moved, Range(130)...)
		RequireContents(t, original)

		// Both remain fully usable and independent.
		original.PushBack(1)
		moved.PushBack(130)
		RequireContents(t, original, 1)
		RequireContents(t, moved, Range(131)...)
	})
}
