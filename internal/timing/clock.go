// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

// Package timing wraps the millisecond counter and blocking sleep the
// monitor loop is written against.
package timing

import "time"

// Clock exposes a monotonic millisecond counter that wraps at 2^32 and a
// blocking sleep.
type Clock interface {
	Millis() uint32
	Sleep(d time.Duration)
}

type systemClock struct {
	start time.Time
}

// NewSystemClock returns a Clock counting milliseconds since its creation.
func NewSystemClock() Clock {
	return &systemClock{start: time.Now()}
}

func (c *systemClock) Millis() uint32 {
	// time.Since uses the monotonic reading; truncation gives the wrap.
	return uint32(time.Since(c.start).Milliseconds())
}

func (c *systemClock) Sleep(d time.Duration) {
	time.Sleep(d)
}

// Elapsed returns now - since in milliseconds. Unsigned subtraction keeps the
// result correct across a single counter wraparound.
func Elapsed(now, since uint32) uint32 {
	return now - since
}

// Millis converts d to a whole number of milliseconds for comparisons against
// Clock.Millis.
func Millis(d time.Duration) uint32 {
	if d <= 0 {
		return 0
	}
	return uint32(d / time.Millisecond)
}
