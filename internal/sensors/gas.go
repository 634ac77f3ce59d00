// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package sensors

import (
	"fmt"
	"log"

	"periph.io/x/conn/v3/analog"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/devices/v3/ads1x15"
)

const (
	// GasADCMax is the top of the 10-bit range the MQ135 baseline and
	// threshold are expressed in.
	GasADCMax = 1023

	// ads1115RawMax is the largest positive single-ended ADS1115 reading.
	ads1115RawMax = 32767

	// MQ135 modules are powered from 5V.
	gasMaxVoltage = 5 * physic.Volt
	gasSampleRate = 128 * physic.Hertz

	// firstReadAttempts bounds the conversions tried before any reading
	// has succeeded, so a startup glitch does not feed 0 into calibration.
	firstReadAttempts = 3
)

var gasChannels = []ads1x15.Channel{
	ads1x15.Channel0,
	ads1x15.Channel1,
	ads1x15.Channel2,
	ads1x15.Channel3,
}

// ADS1115Gas reads the MQ135 analog output through an ADS1115 ADC.
type ADS1115Gas struct {
	dev   *ads1x15.Dev
	pin   analog.PinADC
	last  int
	valid bool
}

var _ GasSensor = (*ADS1115Gas)(nil)

// NewADS1115Gas opens the ADC at addr and selects the single-ended channel.
func NewADS1115Gas(bus i2c.Bus, addr uint16, channel int) (*ADS1115Gas, error) {
	if channel < 0 || channel >= len(gasChannels) {
		return nil, fmt.Errorf("ADS1115 channel %d out of range", channel)
	}

	dev, err := ads1x15.NewADS1115(bus, &ads1x15.Opts{I2cAddress: addr})
	if err != nil {
		return nil, fmt.Errorf("ADS1115 init at 0x%02X: %w", addr, err)
	}

	pin, err := dev.PinForChannel(gasChannels[channel], gasMaxVoltage, gasSampleRate, ads1x15.SaveEnergy)
	if err != nil {
		return nil, fmt.Errorf("ADS1115 channel %d: %w", channel, err)
	}

	return &ADS1115Gas{dev: dev, pin: pin}, nil
}

// ReadGas returns the reading scaled to 0..GasADCMax. A failed conversion is
// logged and the previous good value is returned. Until the first conversion
// succeeds, up to firstReadAttempts are made per call.
func (g *ADS1115Gas) ReadGas() int {
	attempts := 1
	if !g.valid {
		attempts = firstReadAttempts
	}

	var err error
	for i := 0; i < attempts; i++ {
		var s analog.Sample
		if s, err = g.pin.Read(); err == nil {
			g.last = scaleRaw(s.Raw, ads1115RawMax, GasADCMax)
			g.valid = true
			return g.last
		}
	}

	if g.valid {
		log.Printf("gas: ADS1115 read error, keeping %d: %v", g.last, err)
	} else {
		log.Printf("gas: ADS1115 read error, no reading yet: %v", err)
	}
	return g.last
}

// Halt stops conversions.
func (g *ADS1115Gas) Halt() error {
	if err := g.pin.Halt(); err != nil {
		return err
	}
	return g.dev.Halt()
}

// scaleRaw maps raw from 0..rawMax onto 0..outMax, clamping out-of-range input.
func scaleRaw(raw int32, rawMax, outMax int) int {
	v := int(raw)
	if v < 0 {
		v = 0
	}
	if v > rawMax {
		v = rawMax
	}
	return v * outMax / rawMax
}
