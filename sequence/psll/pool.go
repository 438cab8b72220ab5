// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2024-present Datadog, Inc.

package psll

import (
	"github.com/DataDog/sequence-go/stats"
)

type node[E any] struct {
	value E
	next  *node[E]
}

// pool is a LIFO stack of free nodes, holding at most ceiling of them.
type pool[E any] struct {
	head    *node[E]
	count   int
	ceiling int
}

// take returns a node holding value, recycled from the pool when possible.
func (p *pool[E]) take(value E) *node[E] {
	n := p.head
	if n == nil {
		stats.RecordNodeAllocated()
		return &node[E]{value: value}
	}
	p.head = n.next
	p.count--
	n.value, n.next = value, nil
	stats.RecordNodeRecycled()
	return n
}

// give puts n back in the pool and reports whether it was retained. A node
// given to a pool at its ceiling is dropped instead.
func (p *pool[E]) give(n *node[E]) bool {
	var zero E
	n.value = zero
	if p.count >= p.ceiling {
		n.next = nil
		return false
	}
	n.next = p.head
	p.head = n
	p.count++
	return true
}

// reset empties the pool and sets its ceiling.
func (p *pool[E]) reset(ceiling int) {
	p.head, p.count, p.ceiling = nil, 0, ceiling
}
