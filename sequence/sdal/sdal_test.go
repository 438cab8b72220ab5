// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2024-present Datadog, Inc.

package sdal

import (
	"testing"

	"github.com/DataDog/sequence-go/config"
	"github.com/DataDog/sequence-go/internal/seqtest"
	"github.com/DataDog/sequence-go/sequence"
	"github.com/DataDog/sequence-go/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		seqtest.Run(t, func() sequence.Sequence[int] { return New[int]() })
	})
	t.Run("tiny", func(t *testing.T) {
		seqtest.Run(t, func() sequence.Sequence[int] { return NewWithCapacity[int](1) })
	})
	seqtest.RunCopyMove(t, New[int], (*List[int]).Clone, (*List[int]).Move)
}

func TestNew(t *testing.T) {
	t.Setenv(config.EnvDefaultCapacity, "12")
	assert.Equal(t, 12, New[int]().Capacity())
	assert.Panics(t, func() { NewWithCapacity[int](-3) })
}

func TestResize(t *testing.T) {
	t.Run("grow", func(t *testing.T) {
		l := NewWithCapacity[int](50)
		before := stats.Read()

		seqtest.Fill(l, seqtest.Range(50)...)
		assert.Equal(t, 50, l.Capacity(), "every slot is usable")
		assert.Zero(t, stats.Read().Sub(before).Grows)

		l.PushBack(50)
		assert.Equal(t, 75, l.Capacity())
		assert.Equal(t, uint64(1), stats.Read().Sub(before).Grows)

		seqtest.Fill(l, seqtest.Range(25)...)
		assert.Equal(t, 112, l.Capacity())
		assert.Equal(t, uint64(2), stats.Read().Sub(before).Grows)
	})

	t.Run("shrink", func(t *testing.T) {
		l := NewWithCapacity[int](50)
		seqtest.Fill(l, seqtest.Range(76)...)
		require.Equal(t, 112, l.Capacity())

		before := stats.Read()
		for l.Length() > 56 {
			_, err := l.Remove(l.Length() / 2)
			require.NoError(t, err)
		}
		assert.Equal(t, 112, l.Capacity())

		_, err := l.PopFront()
		require.NoError(t, err)
		assert.Equal(t, 84, l.Capacity())
		assert.Equal(t, 55, l.Length())
		assert.Equal(t, uint64(1), stats.Read().Sub(before).Shrinks)
	})

	t.Run("Clear", func(t *testing.T) {
		l := NewWithCapacity[int](4)
		seqtest.Fill(l, seqtest.Range(20)...)
		require.Greater(t, l.Capacity(), 4)

		l.Clear()
		assert.Equal(t, 4, l.Capacity())
		seqtest.RequireContents(t, l)
	})
}

func TestMove(t *testing.T) {
	t.Setenv(config.EnvDefaultCapacity, "3")

	l := NewWithCapacity[int](100)
	seqtest.Fill(l, 1, 2, 3)

	moved := l.Move()
	assert.Equal(t, 100, moved.Capacity())
	assert.Equal(t, 3, l.Capacity())
	seqtest.RequireContents(t, moved, 1, 2, 3)
	seqtest.RequireContents(t, l)
}

func TestRemovedSlotsAreCleared(t *testing.T) {
	l := NewWithCapacity[*int](8)
	for i := range 5 {
		l.PushBack(&i)
	}
	_, err := l.Remove(2)
	require.NoError(t, err)
	_, err = l.PopFront()
	require.NoError(t, err)
	_, err = l.PopBack()
	require.NoError(t, err)

	for i, slot := range l.buf.Slots() {
		if i < l.Length() {
			assert.NotNil(t, slot, "slot %d", i)
		} else {
			assert.Nil(t, slot, "slot %d", i)
		}
	}
}
