// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2024-present Datadog, Inc.

// Package kind selects a [sequence.Sequence] implementation by name.
package kind

import (
	"fmt"
	"strings"

	"github.com/DataDog/sequence-go/config"
	"github.com/DataDog/sequence-go/sequence"
	"github.com/DataDog/sequence-go/sequence/cbl"
	"github.com/DataDog/sequence-go/sequence/cdal"
	"github.com/DataDog/sequence-go/sequence/psll"
	"github.com/DataDog/sequence-go/sequence/sdal"
)

// Kind identifies a container implementation.
type Kind int

const (
	// CBL is the circular-buffer list.
	CBL Kind = iota + 1
	// CDAL is the chained dynamic array list.
	CDAL
	// PSLL is the pooled singly linked list.
	PSLL
	// SDAL is the simple dynamic array list.
	SDAL
)

var names = map[Kind]string{
	CBL:  "cbl",
	CDAL: "cdal",
	PSLL: "psll",
	SDAL: "sdal",
}

// Kinds returns every known kind.
func Kinds() []Kind {
	return []Kind{CBL, CDAL, PSLL, SDAL}
}

func (k Kind) String() string {
	if name, ok := names[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Parse returns the kind named s, ignoring case.
func Parse(s string) (Kind, error) {
	for _, k := range Kinds() {
		if strings.EqualFold(s, names[k]) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown sequence kind %q", s)
}

// New returns an empty container of kind k, with the default capacity.
func New[E any](k Kind) (sequence.Sequence[E], error) {
	return NewWithCapacity[E](k, config.NewSequenceConfig().DefaultCapacity)
}

// NewWithCapacity returns an empty container of kind k. The capacity only
// applies to the array-based kinds, CBL and SDAL, and must be at least 1.
func NewWithCapacity[E any](k Kind, capacity int) (sequence.Sequence[E], error) {
	switch k {
	case CBL, SDAL:
		if capacity < 1 {
			return nil, fmt.Errorf("invalid capacity %d for %s: must be at least 1", capacity, k)
		}
	}
	switch k {
	case CBL:
		return cbl.NewWithCapacity[E](capacity), nil
	case CDAL:
		return cdal.New[E](), nil
	case PSLL:
		return psll.New[E](), nil
	case SDAL:
		return sdal.NewWithCapacity[E](capacity), nil
	default:
		return nil, fmt.Errorf("unknown sequence kind %s", k)
	}
}
