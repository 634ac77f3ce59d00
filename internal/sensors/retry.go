// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package sensors

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/relabs-tech/air_monitor/internal/env"
)

// ErrReadFailed is returned when every attempt of a retrying read failed.
var ErrReadFailed = errors.New("env sensor read failed")

// errNotANumber marks an attempt that returned NaN without an error.
var errNotANumber = errors.New("sensor returned NaN")

// ReadWithRetry tries up to maxRetries combined reads and returns the first
// one where both temperature and humidity are valid. It sleeps retryDelay
// between attempts, never after the last one.
func ReadWithRetry(s EnvSensor, maxRetries int, retryDelay time.Duration, sleep func(time.Duration)) (env.Sample, error) {
	if maxRetries < 1 {
		maxRetries = 1
	}

	var lastErr error
	for attempt := 0; attempt < maxRetries; attempt++ {
		if attempt > 0 && retryDelay > 0 {
			sleep(retryDelay)
		}

		t, h, err := s.ReadTemperatureHumidity()
		if err == nil && (math.IsNaN(t) || math.IsNaN(h)) {
			err = errNotANumber
		}
		if err != nil {
			lastErr = err
			continue
		}

		return env.Sample{Temperature: t, Humidity: h, Valid: true}, nil
	}

	return env.Sample{}, fmt.Errorf("%w after %d attempts: %w", ErrReadFailed, maxRetries, lastErr)
}
