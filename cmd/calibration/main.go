// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

// ./cmd/calibration/main.go
//
// Measures the MQ135 clean-air baseline with the same routine the monitor runs
// at startup and prints it. Nothing is stored; use it to check that the
// sensor has warmed up and reads a stable value before deploying.
//
// Run:
//
//	go run ./cmd/calibration -config air_monitor.yaml
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/relabs-tech/air_monitor/internal/app"
	"github.com/relabs-tech/air_monitor/internal/config"
)

func main() {
	configPath := flag.String("config", "./air_monitor.yaml", "path to configuration file")
	mock := flag.Bool("mock", false, "use the mock gas sensor")
	samples := flag.Int("samples", 0, "number of samples (0 = value from config)")
	flag.Parse()

	fmt.Println("=== MQ135 Baseline Calibration ===")
	fmt.Println("Keep the sensor in clean air until sampling finishes.")
	fmt.Println()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to load config from %s: %v\n", *configPath, err)
		os.Exit(1)
	}
	if *samples > 0 {
		cfg.Calibration.Samples = *samples
	}

	baseline, err := app.RunCalibration(cfg, *mock)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: calibration failed: %v\n", err)
		os.Exit(1)
	}

	deviationLimit := int(baseline) + cfg.Air.BadThreshold
	fmt.Printf("\nBaseline: %d (bad air above %d)\n", baseline, deviationLimit)
}
