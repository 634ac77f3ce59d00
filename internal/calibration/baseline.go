// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package calibration

import "time"

// Baseline is the gas reading that represents clean air. It is measured once
// at startup and never changes afterwards.
type Baseline int

// Calibrate calls sample the given number of times, sleeping delay after each
// call, and returns the truncated mean of the readings (sum / samples).
//
// It blocks for samples*delay and must only run before the sampling loop
// starts. samples <= 0 yields a zero baseline.
func Calibrate(sample func() int, samples int, delay time.Duration, sleep func(time.Duration)) Baseline {
	if samples <= 0 {
		return 0
	}

	var sum int64
	for i := 0; i < samples; i++ {
		sum += int64(sample())
		if delay > 0 {
			sleep(delay)
		}
	}
	return Baseline(sum / int64(samples))
}
