// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2024-present Datadog, Inc.

package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/DataDog/sequence-go/sequence"
)

// Operation names, as accepted on the command line and in scripts.
const (
	opPushBack  = "push_back"
	opPushFront = "push_front"
	opInsert    = "insert"
	opReplace   = "replace"
	opRemove    = "remove"
	opPopBack   = "pop_back"
	opPopFront  = "pop_front"
	opItemAt    = "item_at"
	opPeekBack  = "peek_back"
	opPeekFront = "peek_front"
	opContains  = "contains"
	opLength    = "length"
	opClear     = "clear"
	opPrint     = "print"
)

type argKind int

const (
	argNone argKind = iota
	argValue
	argPosition
	argValueAtPosition
)

var opArgs = map[string]argKind{
	opPushBack:  argValue,
	opPushFront: argValue,
	opInsert:    argValueAtPosition,
	opReplace:   argValueAtPosition,
	opRemove:    argPosition,
	opPopBack:   argNone,
	opPopFront:  argNone,
	opItemAt:    argPosition,
	opPeekBack:  argNone,
	opPeekFront: argNone,
	opContains:  argValue,
	opLength:    argNone,
	opClear:     argNone,
	opPrint:     argNone,
}

// operation is a single step applied to a sequence of strings.
type operation struct {
	Op       string `yaml:"op"`
	Value    string `yaml:"value,omitempty"`
	Position int    `yaml:"position,omitempty"`
}

func (o operation) String() string {
	switch opArgs[o.Op] {
	case argValue:
		return o.Op + ":" + o.Value
	case argPosition:
		return o.Op + ":" + strconv.Itoa(o.Position)
	case argValueAtPosition:
		return fmt.Sprintf("%s:%s@%d", o.Op, o.Value, o.Position)
	default:
		return o.Op
	}
}

func (o operation) validate() error {
	if _, ok := opArgs[o.Op]; !ok {
		return fmt.Errorf("unknown operation %q", o.Op)
	}
	return nil
}

// parseOperation parses the command line form of an operation: the name,
// followed for some operations by a colon and an argument which is either a
// value, a position, or a value and a position separated by '@'.
func parseOperation(arg string) (operation, error) {
	name, param, hasParam := strings.Cut(arg, ":")
	o := operation{Op: name}
	if err := o.validate(); err != nil {
		return o, err
	}

	kind := opArgs[name]
	if hasParam != (kind != argNone) {
		if hasParam {
			return o, fmt.Errorf("operation %s takes no argument", name)
		}
		return o, fmt.Errorf("operation %s requires an argument", name)
	}

	var err error
	switch kind {
	case argValue:
		o.Value = param
	case argPosition:
		o.Position, err = parsePosition(param)
	case argValueAtPosition:
		at := strings.LastIndexByte(param, '@')
		if at < 0 {
			return o, fmt.Errorf("operation %s expects value@position, got %q", name, param)
		}
		o.Value = param[:at]
		o.Position, err = parsePosition(param[at+1:])
	}
	if err != nil {
		return o, fmt.Errorf("operation %s: %w", name, err)
	}
	return o, nil
}

func parsePosition(s string) (int, error) {
	p, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid position %q", s)
	}
	return p, nil
}

// apply runs o against s, and writes its outcome to w.
func apply(s sequence.Sequence[string], o operation, w io.Writer) error {
	var (
		result any = "ok"
		err    error
	)
	switch o.Op {
	case opPushBack:
		s.PushBack(o.Value)
	case opPushFront:
		s.PushFront(o.Value)
	case opInsert:
		err = s.Insert(o.Value, o.Position)
	case opReplace:
		result, err = s.Replace(o.Value, o.Position)
	case opRemove:
		result, err = s.Remove(o.Position)
	case opPopBack:
		result, err = s.PopBack()
	case opPopFront:
		result, err = s.PopFront()
	case opItemAt:
		result, err = s.ItemAt(o.Position)
	case opPeekBack:
		result, err = s.PeekBack()
	case opPeekFront:
		result, err = s.PeekFront()
	case opContains:
		result = s.Contains(o.Value, sequence.Equal[string])
	case opLength:
		result = s.Length()
	case opClear:
		s.Clear()
	case opPrint:
		result = s.String()
	default:
		err = o.validate()
	}
	if err != nil {
		return fmt.Errorf("%s: %w", o, err)
	}
	_, err = fmt.Fprintf(w, "%s => %v\n", o, result)
	return err
}
