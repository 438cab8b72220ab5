// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2024-present Datadog, Inc.

package buffer

// GrowTarget is the capacity to grow to from size: 150% of it, and always at
// least one more slot.
func GrowTarget(size int) int {
	return max(size*3/2, size+1)
}

// ShrinkTarget returns the capacity to shrink to, and true, when a buffer of
// size slots created with original slots only has length elements in use.
// Shrinking happens to 75% of size once size is at least twice original and
// fewer than half the slots are used.
func ShrinkTarget(size int, original int, length int) (int, bool) {
	if size < 2*original || length >= size/2 {
		return size, false
	}
	return size * 3 / 4, true
}
