// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2024-present Datadog, Inc.

// Package stats keeps process-wide counters of the storage events performed
// by the sequence containers. Containers themselves are single-owner, but
// the counters are shared between all instances and may be read from any
// goroutine.
package stats

import (
	"go.uber.org/atomic"
)

var (
	grows           atomic.Uint64
	shrinks         atomic.Uint64
	blocksAllocated atomic.Uint64
	blocksReleased  atomic.Uint64
	nodesAllocated  atomic.Uint64
	nodesRecycled   atomic.Uint64
	nodesReleased   atomic.Uint64
)

// Snapshot is a point-in-time copy of the counters.
type Snapshot struct {
	// Grows is the number of backing array reallocations to a larger size.
	Grows uint64 `yaml:"grows"`
	// Shrinks is the number of backing array reallocations to a smaller size.
	Shrinks uint64 `yaml:"shrinks"`
	// BlocksAllocated is the number of fixed-size blocks appended to chains.
	BlocksAllocated uint64 `yaml:"blocks_allocated"`
	// BlocksReleased is the number of fixed-size blocks dropped from chains.
	BlocksReleased uint64 `yaml:"blocks_released"`
	// NodesAllocated is the number of list nodes allocated because the pool
	// was empty.
	NodesAllocated uint64 `yaml:"nodes_allocated"`
	// NodesRecycled is the number of list nodes taken back out of a pool.
	NodesRecycled uint64 `yaml:"nodes_recycled"`
	// NodesReleased is the number of pooled nodes dropped by pool trimming.
	NodesReleased uint64 `yaml:"nodes_released"`
}

// Sub returns the per-counter difference s - o. It is handy to measure the
// events caused by a sequence of operations.
func (s Snapshot) Sub(o Snapshot) Snapshot {
	return Snapshot{
		Grows:           s.Grows - o.Grows,
		Shrinks:         s.Shrinks - o.Shrinks,
		BlocksAllocated: s.BlocksAllocated - o.BlocksAllocated,
		BlocksReleased:  s.BlocksReleased - o.BlocksReleased,
		NodesAllocated:  s.NodesAllocated - o.NodesAllocated,
		NodesRecycled:   s.NodesRecycled - o.NodesRecycled,
		NodesReleased:   s.NodesReleased - o.NodesReleased,
	}
}

// Read returns the current value of all counters.
func Read() Snapshot {
	return Snapshot{
		Grows:           grows.Load(),
		Shrinks:         shrinks.Load(),
		BlocksAllocated: blocksAllocated.Load(),
		BlocksReleased:  blocksReleased.Load(),
		NodesAllocated:  nodesAllocated.Load(),
		NodesRecycled:   nodesRecycled.Load(),
		NodesReleased:   nodesReleased.Load(),
	}
}

// Reset sets all counters back to zero.
func Reset() {
	grows.Store(0)
	shrinks.Store(0)
	blocksAllocated.Store(0)
	blocksReleased.Store(0)
	nodesAllocated.Store(0)
	nodesRecycled.Store(0)
	nodesReleased.Store(0)
}

func RecordGrow() { grows.Inc() }
func RecordShrink() { shrinks.Inc() }
func RecordBlocksAllocated(n int) { blocksAllocated.Add(uint64(n)) }
func RecordBlocksReleased(n int) { blocksReleased.Add(uint64(n)) }
func RecordNodeAllocated() { nodesAllocated.Inc() }
func RecordNodeRecycled() { nodesRecycled.Inc() }
func RecordNodesReleased(n int) { nodesReleased.Add(uint64(n)) }
