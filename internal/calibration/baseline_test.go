// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package calibration

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type sleepRecorder struct {
	calls []time.Duration
}

func (s *sleepRecorder) sleep(d time.Duration) {
	s.calls = append(s.calls, d)
}

func TestCalibrate_ConstantSource(t *testing.T) {
	for _, n := range []int{1, 2, 7, 20, 100} {
		rec := &sleepRecorder{}
		got := Calibrate(func() int { return 312 }, n, 50*time.Millisecond, rec.sleep)
		assert.Equal(t, Baseline(312), got, "samples=%d", n)
		assert.Len(t, rec.calls, n)
	}
}

func TestCalibrate_AlternatingSource(t *testing.T) {
	tests := []struct {
		name   string
		v1, v2 int
		n      int
		want   Baseline
	}{
		{name: "even sum", v1: 300, v2: 310, n: 20, want: 305},
		{name: "odd sum truncates", v1: 300, v2: 301, n: 20, want: 300},
		{name: "two samples", v1: 1, v2: 4, n: 2, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			i := 0
			src := func() int {
				i++
				if i%2 == 1 {
					return tt.v1
				}
				return tt.v2
			}
			assert.Equal(t, tt.want, Calibrate(src, tt.n, 0, func(time.Duration) {}))
		})
	}
}

func TestCalibrate_NoSamples(t *testing.T) {
	called := false
	src := func() int {
		called = true
		return 1
	}
	got := Calibrate(src, 0, time.Millisecond, func(time.Duration) {})
	assert.Equal(t, Baseline(0), got)
	assert.False(t, called)
}

func TestCalibrate_SleepsBetweenSamples(t *testing.T) {
	rec := &sleepRecorder{}
	Calibrate(func() int { return 0 }, 3, 50*time.Millisecond, rec.sleep)
	assert.Equal(t, []time.Duration{50 * time.Millisecond, 50 * time.Millisecond, 50 * time.Millisecond}, rec.calls)
}
