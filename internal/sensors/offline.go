// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package sensors

import (
	"errors"
	"math"
)

// ErrOffline marks a sensor that could not be opened at startup.
var ErrOffline = errors.New("sensor offline")

// OfflineEnv stands in for an env sensor that failed to open. Every read
// fails, so each cycle shows the sensor error state.
type OfflineEnv struct {
	Err error
}

var _ EnvSensor = OfflineEnv{}

func (o OfflineEnv) ReadTemperatureHumidity() (float64, float64, error) {
	if o.Err == nil {
		return math.NaN(), math.NaN(), ErrOffline
	}
	return math.NaN(), math.NaN(), o.Err
}

// OfflineGas stands in for a gas ADC that failed to open. It always reads 0.
type OfflineGas struct{}

var _ GasSensor = OfflineGas{}

func (OfflineGas) ReadGas() int { return 0 }
