// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package sensors

import (
	"math"
	"math/rand"
	"time"
)

// MockEnv simulates a temperature/humidity sensor with slowly changing values.
// Every failEvery-th read returns NaN.
type MockEnv struct {
	start     time.Time
	failEvery int
	reads     int
}

var _ EnvSensor = (*MockEnv)(nil)

// NewMockEnv creates a mock env sensor. failEvery <= 0 never fails.
func NewMockEnv(failEvery int) *MockEnv {
	return &MockEnv{start: time.Now(), failEvery: failEvery}
}

func (m *MockEnv) ReadTemperatureHumidity() (float64, float64, error) {
	m.reads++
	if m.failEvery > 0 && m.reads%m.failEvery == 0 {
		return math.NaN(), math.NaN(), nil
	}

	elapsed := time.Since(m.start).Seconds()
	temp := 22 + 2*math.Sin(elapsed/60)
	humidity := 45 + 10*math.Cos(elapsed/90)
	return temp, humidity, nil
}

// MockGas simulates an MQ135 in clean air with noise and a pollution event
// every period.
type MockGas struct {
	start  time.Time
	clean  int
	period time.Duration
	rng    *rand.Rand
}

var _ GasSensor = (*MockGas)(nil)

// NewMockGas creates a mock gas sensor hovering around clean.
func NewMockGas(clean int, period time.Duration) *MockGas {
	return &MockGas{
		start:  time.Now(),
		clean:  clean,
		period: period,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (m *MockGas) ReadGas() int {
	v := m.clean + m.rng.Intn(11) - 5

	// Pollution lasts for the second quarter of each period.
	if m.period > 0 {
		phase := time.Since(m.start) % m.period
		if phase >= m.period/4 && phase < m.period/2 {
			v += 180
		}
	}

	if v < 0 {
		v = 0
	}
	if v > GasADCMax {
		v = GasADCMax
	}
	return v
}
