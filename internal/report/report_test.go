// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relabs-tech/air_monitor/internal/display"
	"github.com/relabs-tech/air_monitor/internal/env"
)

func frameTexts(f display.Frame) []string {
	texts := make([]string, 0, len(f.Lines))
	for _, l := range f.Lines {
		texts = append(texts, l.Text)
	}
	return texts
}

func TestClassify_Boundaries(t *testing.T) {
	tests := []struct {
		deviation int
		want      Status
		label     string
	}{
		{deviation: 100, want: OK, label: "ok"},
		{deviation: 101, want: BadAir, label: "bad air"},
		{deviation: -1, want: OK, label: "ok"},
		{deviation: 0, want: OK, label: "ok"},
	}

	for _, tt := range tests {
		got := Classify(tt.deviation, DefaultBadThreshold)
		assert.Equal(t, tt.want, got, "deviation=%d", tt.deviation)
		assert.Equal(t, tt.label, got.String())
	}
}

func TestDeviation(t *testing.T) {
	assert.Equal(t, 150, Deviation(450, 300))
	assert.Equal(t, -20, Deviation(280, 300))
	assert.Equal(t, 0, Deviation(300, 300))
}

func TestFormatSigned(t *testing.T) {
	assert.Equal(t, "+150", FormatSigned(150))
	assert.Equal(t, "0", FormatSigned(0))
	assert.Equal(t, "-7", FormatSigned(-7))
}

func TestBadAirScenario(t *testing.T) {
	s := Snapshot{
		Env:       env.Sample{Temperature: 23.44, Humidity: 41.06, Valid: true},
		Gas:       env.GasReading{Raw: 460, Filtered: 450},
		Baseline:  300,
		Threshold: DefaultBadThreshold,
	}

	assert.Equal(t, BadAir, s.Status())

	lines := LogLines(s)
	require.Len(t, lines, 1)
	assert.Equal(t, "Temp: 23.4 C | Humidity: 41.1 % | Air: 450 (baseline: 300) | Dev: +150 | Status: bad air", lines[0])

	f := Frame(s)
	assert.Equal(t, []string{
		"Temp: 23.4 C",
		"Humidity: 41.1 %",
		"Air: 450 (+150)",
		" STATUS: BAD AIR ",
	}, frameTexts(f))
	assert.Equal(t, statusBaseline, f.Lines[3].Y)
}

func TestOKScenario(t *testing.T) {
	s := Snapshot{
		Env:       env.Sample{Temperature: 20, Humidity: 50, Valid: true},
		Gas:       env.GasReading{Raw: 290, Filtered: 295},
		Baseline:  300,
		Threshold: DefaultBadThreshold,
	}

	assert.Contains(t, LogLines(s)[0], "Dev: -5 | Status: ok")
	texts := frameTexts(Frame(s))
	assert.Contains(t, texts, "Air: 295 (-5)")
	assert.Contains(t, texts, " Status: OK ")
}

func TestSensorErrorScenario(t *testing.T) {
	s := Snapshot{
		Env:       env.Sample{},
		Gas:       env.GasReading{Raw: 500, Filtered: 480},
		Baseline:  300,
		Threshold: DefaultBadThreshold,
	}

	assert.Equal(t, []string{"DHT sensor error"}, LogLines(s))
	assert.Equal(t, []string{"DHT Error!"}, frameTexts(Frame(s)))

	for _, l := range append(LogLines(s), frameTexts(Frame(s))...) {
		assert.False(t, strings.Contains(l, "Temp") || strings.Contains(l, "Humidity"))
	}
}

func TestCustomThreshold(t *testing.T) {
	s := Snapshot{
		Env:       env.Sample{Valid: true},
		Gas:       env.GasReading{Filtered: 360},
		Baseline:  300,
		Threshold: 50,
	}
	assert.Equal(t, BadAir, s.Status())
}
