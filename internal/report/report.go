// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

// Package report turns the latest readings into log lines and display frames.
package report

import (
	"fmt"
	"strconv"

	"github.com/relabs-tech/air_monitor/internal/calibration"
	"github.com/relabs-tech/air_monitor/internal/display"
	"github.com/relabs-tech/air_monitor/internal/env"
)

// DefaultBadThreshold is the deviation above baseline reported as bad air.
const DefaultBadThreshold = 100

const (
	// SensorErrorLog is logged when the env sensor failed for the cycle.
	SensorErrorLog = "DHT sensor error"
	// SensorErrorDisplay is shown instead of any readings on failure.
	SensorErrorDisplay = "DHT Error!"

	// statusBaseline is where the status line sits, at the bottom of a 64px screen.
	statusBaseline = 60
)

// Status is the air quality classification.
type Status int

const (
	OK Status = iota
	BadAir
)

func (s Status) String() string {
	if s == BadAir {
		return "bad air"
	}
	return "ok"
}

// Snapshot is everything one presentation needs.
type Snapshot struct {
	Env       env.Sample
	Gas       env.GasReading
	Baseline  calibration.Baseline
	Threshold int
}

// Deviation is the filtered gas reading minus the baseline.
func Deviation(filtered int, baseline calibration.Baseline) int {
	return filtered - int(baseline)
}

// Classify reports BadAir iff deviation is strictly above threshold.
func Classify(deviation, threshold int) Status {
	if deviation > threshold {
		return BadAir
	}
	return OK
}

// FormatSigned prints d with a leading '+' when it is positive.
func FormatSigned(d int) string {
	if d > 0 {
		return "+" + strconv.Itoa(d)
	}
	return strconv.Itoa(d)
}

func (s Snapshot) deviation() int {
	return Deviation(s.Gas.Filtered, s.Baseline)
}

// Status classifies the snapshot's filtered gas reading.
func (s Snapshot) Status() Status {
	return Classify(s.deviation(), s.Threshold)
}

// LogLines formats the snapshot for the log sink.
func LogLines(s Snapshot) []string {
	if !s.Env.Valid {
		return []string{SensorErrorLog}
	}

	return []string{fmt.Sprintf(
		"Temp: %.1f C | Humidity: %.1f %% | Air: %d (baseline: %d) | Dev: %s | Status: %s",
		s.Env.Temperature,
		s.Env.Humidity,
		s.Gas.Filtered,
		s.Baseline,
		FormatSigned(s.deviation()),
		s.Status(),
	)}
}

// Frame formats the snapshot for the display sink.
func Frame(s Snapshot) display.Frame {
	if !s.Env.Valid {
		return display.TextFrame(SensorErrorDisplay)
	}

	f := display.TextFrame(
		fmt.Sprintf("Temp: %.1f C", s.Env.Temperature),
		fmt.Sprintf("Humidity: %.1f %%", s.Env.Humidity),
		fmt.Sprintf("Air: %d (%s)", s.Gas.Filtered, FormatSigned(s.deviation())),
	)

	status := " Status: OK "
	if s.Status() == BadAir {
		status = " STATUS: BAD AIR "
	}
	f.Lines = append(f.Lines, display.Line{X: 0, Y: statusBaseline, Text: status})

	return f
}
