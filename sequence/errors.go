// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2024-present Datadog, Inc.

package sequence

import (
	"errors"
	"fmt"
)

var (
	// ErrEmpty matches (via [errors.Is]) any [*EmptyError].
	ErrEmpty = errors.New("sequence is empty")
	// ErrRange matches (via [errors.Is]) any [*RangeError].
	ErrRange = errors.New("position out of range")
)

type (
	// EmptyError is returned by operations that require at least one element
	// when called on an empty sequence.
	EmptyError struct {
		// Op is the name of the failed operation.
		Op string
	}

	// RangeError is returned when a position argument falls outside the bounds
	// accepted by the operation.
	RangeError struct {
		// Op is the name of the failed operation.
		Op string
		// Position is the offending position.
		Position int
		// Length is the length of the sequence at the time of the call.
		Length int
	}
)

// NewEmptyError returns a new [*EmptyError] for op.
func NewEmptyError(op string) *EmptyError {
	return &EmptyError{Op: op}
}

// NewRangeError returns a new [*RangeError] for op.
func NewRangeError(op string, position int, length int) *RangeError {
	return &RangeError{Op: op, Position: position, Length: length}
}

func (e *EmptyError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, ErrEmpty)
}

// Is implements the [errors.Is] protocol.
func (*EmptyError) Is(target error) bool {
	return target == ErrEmpty
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s: %v: position %d, length %d", e.Op, ErrRange, e.Position, e.Length)
}

// Is implements the [errors.Is] protocol.
func (*RangeError) Is(target error) bool {
	return target == ErrRange
}

// CheckInsert validates an insertion position, which may equal length.
func CheckInsert(op string, position int, length int) error {
	if position < 0 || position > length {
		return NewRangeError(op, position, length)
	}
	return nil
}

// CheckAccess validates the position of an existing element.
func CheckAccess(op string, position int, length int) error {
	if position < 0 || position >= length {
		return NewRangeError(op, position, length)
	}
	return nil
}

// CheckNotEmpty returns an [*EmptyError] if length is zero.
func CheckNotEmpty(op string, length int) error {
	if length == 0 {
		return NewEmptyError(op)
	}
	return nil
}
