// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

// Package sensors reads the temperature/humidity sensor and the analog gas
// sensor, either from real hardware through periph.io or from mock sources.
package sensors

import (
	"fmt"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"
)

// EnvSensor performs one combined temperature + humidity read.
// A failed read returns an error or NaN in either value.
type EnvSensor interface {
	ReadTemperatureHumidity() (tempC float64, humidity float64, err error)
}

// GasSensor returns the raw gas sensor value in ADC counts. Reads never fail;
// the value may be noisy.
type GasSensor interface {
	ReadGas() int
}

// OpenI2C initializes periph and opens the named I²C bus ("" for the default).
func OpenI2C(busName string) (i2c.BusCloser, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("periph host init: %w", err)
	}

	bus, err := i2creg.Open(busName)
	if err != nil {
		return nil, fmt.Errorf("I2C bus open %q: %w", busName, err)
	}
	return bus, nil
}
