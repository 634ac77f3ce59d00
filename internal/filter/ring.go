// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

// Package filter provides the moving-average filter used to smooth the raw
// gas sensor readings.
package filter

// DefaultCapacity is the moving-average window used for the gas sensor.
const DefaultCapacity = 10

// Ring is a fixed-size circular buffer of integer samples with a running sum.
//
// All slots start at zero, so until Capacity samples have been pushed the
// average is biased toward zero. That startup transient is kept as is.
type Ring struct {
	slots []int
	next  int
	sum   int
}

// NewRing creates a ring with the given capacity. Capacities below 1 become 1.
func NewRing(capacity int) *Ring {
	if capacity < 1 {
		capacity = 1
	}
	return &Ring{slots: make([]int, capacity)}
}

// Update replaces the oldest slot with sample and returns the new average,
// floor(sum / capacity).
func (r *Ring) Update(sample int) int {
	r.sum -= r.slots[r.next]
	r.slots[r.next] = sample
	r.sum += sample
	r.next = (r.next + 1) % len(r.slots)
	return r.Average()
}

// Average returns floor(sum / capacity) without pushing a sample.
func (r *Ring) Average() int {
	return floorDiv(r.sum, len(r.slots))
}

// Capacity returns the window size.
func (r *Ring) Capacity() int {
	return len(r.slots)
}

// Sum returns the running sum of every slot.
func (r *Ring) Sum() int {
	return r.sum
}

// floorDiv divides rounding toward negative infinity. d is always positive.
func floorDiv(n, d int) int {
	q := n / d
	if n%d != 0 && n < 0 {
		q--
	}
	return q
}
