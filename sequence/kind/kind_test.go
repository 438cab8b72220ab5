// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2024-present Datadog, Inc.

package kind

import (
	"testing"

	"github.com/DataDog/sequence-go/internal/seqtest"
	"github.com/DataDog/sequence-go/sequence"
	"github.com/DataDog/sequence-go/sequence/cbl"
	"github.com/DataDog/sequence-go/sequence/cdal"
	"github.com/DataDog/sequence-go/sequence/psll"
	"github.com/DataDog/sequence-go/sequence/sdal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	for _, tc := range []struct {
		in   string
		kind Kind
	}{
		{in: "cbl", kind: CBL},
		{in: "CDAL", kind: CDAL},
		{in: "Psll", kind: PSLL},
		{in: "sdal", kind: SDAL},
	} {
		t.Run(tc.in, func(t *testing.T) {
			k, err := Parse(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.kind, k)
		})
	}

	_, err := Parse("vector")
	assert.Error(t, err)
}

func TestString(t *testing.T) {
	for _, k := range Kinds() {
		parsed, err := Parse(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, parsed)
	}
	assert.Equal(t, "Kind(42)", Kind(42).String())
}

func TestNew(t *testing.T) {
	for _, k := range Kinds() {
		t.Run(k.String(), func(t *testing.T) {
			s, err := New[int](k)
			require.NoError(t, err)
			seqtest.Fill(s, 1, 2, 3)
			seqtest.RequireContents(t, s, 1, 2, 3)
		})
	}

	s, err := New[int](CBL)
	require.NoError(t, err)
	assert.IsType(t, &cbl.List[int]{}, s)
	s, err = New[int](CDAL)
	require.NoError(t, err)
	assert.IsType(t, &cdal.List[int]{}, s)
	s, err = New[int](PSLL)
	require.NoError(t, err)
	assert.IsType(t, &psll.List[int]{}, s)
	s, err = New[int](SDAL)
	require.NoError(t, err)
	assert.IsType(t, &sdal.List[int]{}, s)

	_, err = New[int](Kind(0))
	assert.Error(t, err)
}

func TestNewWithCapacity(t *testing.T) {
	s, err := NewWithCapacity[int](SDAL, 7)
	require.NoError(t, err)
	assert.Equal(t, 7, s.(*sdal.List[int]).Capacity())

	s, err = NewWithCapacity[int](CBL, 7)
	require.NoError(t, err)
	assert.Equal(t, 7, s.(*cbl.List[int]).Capacity())

	_, err = NewWithCapacity[int](CBL, 0)
	assert.Error(t, err)
	_, err = NewWithCapacity[int](SDAL, -1)
	assert.Error(t, err)

	for _, k := range []Kind{CDAL, PSLL} {
		s, err := NewWithCapacity[int](k, 0)
		require.NoError(t, err, "capacity does not apply to %s", k)
		seqtest.RequireContents(t, s)
	}
}

func TestConformance(t *testing.T) {
	for _, k := range Kinds() {
		t.Run(k.String(), func(t *testing.T) {
			seqtest.Run(t, func() sequence.Sequence[int] {
				s, err := NewWithCapacity[int](k, 2)
				require.NoError(t, err)
				return s
			})
		})
	}
}
