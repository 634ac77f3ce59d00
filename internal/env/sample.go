// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package env

// Sample represents a single temperature/humidity measurement.
// Valid is false when every read attempt for the cycle failed.
type Sample struct {
	Temperature float64 `json:"temp_c"`       // °C
	Humidity    float64 `json:"humidity_pct"` // %RH
	Valid       bool    `json:"valid"`
}

// GasReading holds the raw gas sensor value and the moving average fed by it.
type GasReading struct {
	Raw      int `json:"raw"`
	Filtered int `json:"filtered"`
}
