// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package app

import (
	"context"
	"fmt"
	"log"

	"github.com/relabs-tech/air_monitor/internal/calibration"
	"github.com/relabs-tech/air_monitor/internal/config"
	"github.com/relabs-tech/air_monitor/internal/monitor"
	"github.com/relabs-tech/air_monitor/internal/timing"
)

// RunMonitor opens the hardware (or mocks), calibrates and samples until ctx
// is cancelled.
func RunMonitor(ctx context.Context, cfg *config.Config, mock bool) error {
	return runMonitor(ctx, cfg, mock, periphDevices)
}

func runMonitor(ctx context.Context, cfg *config.Config, mock bool, devs devices) error {
	hw := openHardware(cfg, mock, devs)
	defer hw.Close()

	m, err := monitor.New(cfg, monitor.Deps{
		Clock:   timing.NewSystemClock(),
		Env:     hw.env,
		Gas:     hw.gas,
		Log:     hw.log,
		Display: hw.display,
	})
	if err != nil {
		return err
	}

	log.Printf("monitor: display enabled=%v, interval=%s", m.DisplayEnabled(), cfg.Sampling.Interval)

	m.Setup()
	log.Println("monitor: starting sampling loop")

	// Run only returns once ctx is done.
	if err := m.Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	log.Printf("monitor: stopped after %d cycles", m.Cycles())
	return nil
}

// RunCalibration only measures and logs the clean-air baseline. Unlike the
// monitor it fails when the gas sensor could not be opened.
func RunCalibration(cfg *config.Config, mock bool) (calibration.Baseline, error) {
	return runCalibration(cfg, mock, periphDevices)
}

func runCalibration(cfg *config.Config, mock bool, devs devices) (calibration.Baseline, error) {
	hw := openHardware(cfg, mock, devs)
	defer hw.Close()

	if hw.gasErr != nil {
		return 0, fmt.Errorf("gas sensor unavailable: %w", hw.gasErr)
	}

	clock := timing.NewSystemClock()
	hw.log.Println(fmt.Sprintf("Sampling gas sensor %d times, keep sensor in clean air...", cfg.Calibration.Samples))

	baseline := calibration.Calibrate(hw.gas.ReadGas, cfg.Calibration.Samples, cfg.Calibration.Delay, clock.Sleep)
	hw.log.Println(fmt.Sprintf("MQ135 baseline: %d", baseline))

	return baseline, nil
}
