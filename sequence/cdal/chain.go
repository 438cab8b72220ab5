// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2024-present Datadog, Inc.

package cdal

import (
	"github.com/DataDog/sequence-go/log"
	"github.com/DataDog/sequence-go/stats"
)

// BlockSize is the number of slots of every block of the chain.
const BlockSize = 50

type block[E any] struct {
	slots [BlockSize]E
	next  *block[E]
}

// chain is the singly linked sequence of blocks backing a [List]. Positions
// are translated to a block ordinal and a slot within that block.
type chain[E any] struct {
	head   *block[E]
	blocks int
}

func newChain[E any]() chain[E] {
	stats.RecordBlocksAllocated(1)
	return chain[E]{head: &block[E]{}, blocks: 1}
}

// at returns the block of the given ordinal, which must exist.
func (c *chain[E]) at(ordinal int) *block[E] {
	b := c.head
	for range ordinal {
		b = b.next
	}
	return b
}

// locate returns the block and slot holding logical position p.
func (c *chain[E]) locate(p int) (*block[E], int) {
	return c.at(p / BlockSize), p % BlockSize
}

// extend appends an empty block at the end of the chain.
func (c *chain[E]) extend() {
	c.at(c.blocks - 1).next = &block[E]{}
	c.blocks++
	stats.RecordBlocksAllocated(1)
	log.Debug("sequence/cdal: appended block %d", c.blocks)
}

// truncate releases every block past the first keep ones.
func (c *chain[E]) truncate(keep int) {
	if keep >= c.blocks {
		return
	}
	released := c.blocks - keep
	c.at(keep - 1).next = nil
	c.blocks = keep
	stats.RecordBlocksReleased(released)
	log.Debug("sequence/cdal: released %d trailing blocks, %d left", released, keep)
}

// clone returns a deep copy of the chain, with the same number of blocks.
func (c *chain[E]) clone() chain[E] {
	clone := chain[E]{head: &block[E]{slots: c.head.slots}, blocks: c.blocks}
	for src, dst := c.head.next, clone.head; src != nil; src, dst = src.next, dst.next {
		dst.next = &block[E]{slots: src.slots}
	}
	stats.RecordBlocksAllocated(c.blocks)
	return clone
}
