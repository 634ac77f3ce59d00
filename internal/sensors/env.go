// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package sensors

import (
	"fmt"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/devices/v3/bmxx80"
)

// BME280 reads temperature and relative humidity from a Bosch BME280.
type BME280 struct {
	dev *bmxx80.Dev
}

var _ EnvSensor = (*BME280)(nil)

// NewBME280 initializes the sensor at addr on bus.
func NewBME280(bus i2c.Bus, addr uint16) (*BME280, error) {
	dev, err := bmxx80.NewI2C(bus, addr, &bmxx80.DefaultOpts)
	if err != nil {
		return nil, fmt.Errorf("BME280 init at 0x%02X: %w", addr, err)
	}
	return &BME280{dev: dev}, nil
}

// ReadTemperatureHumidity performs one forced measurement.
func (b *BME280) ReadTemperatureHumidity() (float64, float64, error) {
	var e physic.Env
	if err := b.dev.Sense(&e); err != nil {
		return 0, 0, fmt.Errorf("BME280 sense: %w", err)
	}

	humidity := float64(e.Humidity) / float64(physic.PercentRH)
	return e.Temperature.Celsius(), humidity, nil
}

// Halt stops the device.
func (b *BME280) Halt() error {
	return b.dev.Halt()
}
