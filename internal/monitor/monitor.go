// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

// Package monitor owns the sampling state and runs the periodic cycle:
// env read with retries, gas filtering, then presentation.
package monitor

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/relabs-tech/air_monitor/internal/calibration"
	"github.com/relabs-tech/air_monitor/internal/config"
	"github.com/relabs-tech/air_monitor/internal/display"
	"github.com/relabs-tech/air_monitor/internal/env"
	"github.com/relabs-tech/air_monitor/internal/filter"
	"github.com/relabs-tech/air_monitor/internal/logsink"
	"github.com/relabs-tech/air_monitor/internal/report"
	"github.com/relabs-tech/air_monitor/internal/sensors"
	"github.com/relabs-tech/air_monitor/internal/timing"
)

// idlePoll is how long Run waits between polls that did not run a cycle.
const idlePoll = 10 * time.Millisecond

// Deps are the collaborators the monitor reads from and writes to.
// Display may be nil, in which case only the log is used.
type Deps struct {
	Clock   timing.Clock
	Env     sensors.EnvSensor
	Gas     sensors.GasSensor
	Log     logsink.Sink
	Display display.Sink
}

// State is the whole monitor. It is used from a single goroutine only.
type State struct {
	cfg  *config.Config
	deps Deps

	interval uint32
	filter   *filter.Ring
	baseline calibration.Baseline

	env     env.Sample
	gas     env.GasReading
	lastRun uint32
	cycles  int
}

// New builds the monitor state from cfg and deps.
func New(cfg *config.Config, deps Deps) (*State, error) {
	if cfg == nil {
		return nil, errors.New("monitor: nil config")
	}
	if deps.Clock == nil || deps.Env == nil || deps.Gas == nil || deps.Log == nil {
		return nil, errors.New("monitor: clock, env, gas and log are required")
	}

	return &State{
		cfg:      cfg,
		deps:     deps,
		interval: timing.Millis(cfg.Sampling.Interval),
		filter:   filter.NewRing(cfg.Sampling.FilterWindow),
	}, nil
}

// Setup shows the splash screen, measures the clean-air baseline and pauses
// once before sampling starts. It blocks for the whole calibration.
func (s *State) Setup() {
	s.show(display.TextFrame("Air Monitor", "Calibrating..."))
	s.deps.Log.Println("Calibrating MQ135, keep sensor in clean air...")

	s.baseline = calibration.Calibrate(
		s.deps.Gas.ReadGas,
		s.cfg.Calibration.Samples,
		s.cfg.Calibration.Delay,
		s.deps.Clock.Sleep,
	)
	s.deps.Log.Println(fmt.Sprintf("MQ135 baseline set to: %d", s.baseline))

	s.show(display.TextFrame("Ready!"))
	if s.cfg.Calibration.ReadyPause > 0 {
		s.deps.Clock.Sleep(s.cfg.Calibration.ReadyPause)
	}
}

// Due reports whether a full interval has passed since the last cycle.
func (s *State) Due(now uint32) bool {
	return timing.Elapsed(now, s.lastRun) >= s.interval
}

// Poll runs one cycle if it is due and reports whether it did.
func (s *State) Poll() bool {
	now := s.deps.Clock.Millis()
	if !s.Due(now) {
		return false
	}
	s.lastRun = now
	s.Cycle()
	return true
}

// Cycle reads the sensors, updates the filter and presents the result.
func (s *State) Cycle() {
	sample, err := sensors.ReadWithRetry(
		s.deps.Env,
		s.cfg.Sampling.MaxRetries,
		s.cfg.Sampling.RetryDelay,
		s.deps.Clock.Sleep,
	)
	if err != nil {
		log.Printf("monitor: %v", err)
	}
	s.env = sample

	raw := s.deps.Gas.ReadGas()
	s.gas = env.GasReading{Raw: raw, Filtered: s.filter.Update(raw)}
	s.cycles++

	snap := s.Snapshot()
	for _, line := range report.LogLines(snap) {
		s.deps.Log.Println(line)
	}
	s.show(report.Frame(snap))
}

// Run polls until ctx is cancelled.
func (s *State) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if !s.Poll() {
			s.deps.Clock.Sleep(idlePoll)
		}
	}
}

// Snapshot returns the latest readings.
func (s *State) Snapshot() report.Snapshot {
	return report.Snapshot{
		Env:       s.env,
		Gas:       s.gas,
		Baseline:  s.baseline,
		Threshold: s.cfg.Air.BadThreshold,
	}
}

// Baseline returns the calibrated clean-air reading.
func (s *State) Baseline() calibration.Baseline {
	return s.baseline
}

// Cycles returns how many sampling cycles have run.
func (s *State) Cycles() int {
	return s.cycles
}

// DisplayEnabled reports whether frames are being drawn.
func (s *State) DisplayEnabled() bool {
	return s.deps.Display != nil
}

func (s *State) show(f display.Frame) {
	if s.deps.Display == nil {
		return
	}
	if err := s.deps.Display.Show(f); err != nil {
		log.Printf("display: error updating display: %v", err)
	}
}
