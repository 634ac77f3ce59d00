// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package sensors

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"periph.io/x/conn/v3/analog"
)

type conversion struct {
	raw int32
	err error
}

// scriptedPin returns its conversions in order, repeating the last one.
type scriptedPin struct {
	analog.PinADC
	conversions []conversion
	reads       int
}

func (p *scriptedPin) Read() (analog.Sample, error) {
	i := p.reads
	if i >= len(p.conversions) {
		i = len(p.conversions) - 1
	}
	p.reads++
	c := p.conversions[i]
	return analog.Sample{Raw: c.raw}, c.err
}

var errBus = errors.New("i2c: remote I/O error")

func TestADS1115Gas_FirstReadRetries(t *testing.T) {
	pin := &scriptedPin{conversions: []conversion{
		{err: errBus},
		{err: errBus},
		{raw: ads1115RawMax},
	}}
	g := &ADS1115Gas{pin: pin}

	assert.Equal(t, GasADCMax, g.ReadGas())
	assert.Equal(t, 3, pin.reads)
}

func TestADS1115Gas_FirstReadGivesUp(t *testing.T) {
	pin := &scriptedPin{conversions: []conversion{{err: errBus}}}
	g := &ADS1115Gas{pin: pin}

	assert.Equal(t, 0, g.ReadGas())
	assert.Equal(t, firstReadAttempts, pin.reads)

	// Still no good reading, so the next call retries again.
	g.ReadGas()
	assert.Equal(t, 2*firstReadAttempts, pin.reads)
}

func TestADS1115Gas_KeepsLastGoodValue(t *testing.T) {
	pin := &scriptedPin{conversions: []conversion{
		{raw: 16384},
		{err: errBus},
	}}
	g := &ADS1115Gas{pin: pin}

	first := g.ReadGas()
	require.Equal(t, 511, first)

	assert.Equal(t, first, g.ReadGas())
	assert.Equal(t, 2, pin.reads, "one attempt per call once a reading succeeded")
}

func TestOffline(t *testing.T) {
	cause := errors.New("bmxx80: unexpected chip id")

	_, _, err := OfflineEnv{Err: cause}.ReadTemperatureHumidity()
	assert.ErrorIs(t, err, cause)

	_, _, err = OfflineEnv{}.ReadTemperatureHumidity()
	assert.ErrorIs(t, err, ErrOffline)

	sample, err := ReadWithRetry(OfflineEnv{Err: cause}, 3, 0, func(time.Duration) {})
	assert.ErrorIs(t, err, ErrReadFailed)
	assert.False(t, sample.Valid)

	assert.Equal(t, 0, OfflineGas{}.ReadGas())
}
