// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package config

import (
	"fmt"
	"os"
	"math"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/relabs-tech/air_monitor/internal/filter"
	"github.com/relabs-tech/air_monitor/internal/report"
)

// maxInterval keeps the interval well inside the wrapping 32-bit millisecond
// counter the scheduler compares against.
const maxInterval = math.MaxInt32 * time.Millisecond

// Config holds all application configuration values.
type Config struct {
	Sampling    SamplingConfig    `yaml:"sampling"`
	Calibration CalibrationConfig `yaml:"calibration"`
	Air         AirConfig         `yaml:"air"`
	Hardware    HardwareConfig    `yaml:"hardware"`
	Display     DisplayConfig     `yaml:"display"`
	SerialLog   SerialLogConfig   `yaml:"serial_log"`
}

// SamplingConfig controls the periodic sampling cycle.
type SamplingConfig struct {
	Interval     time.Duration `yaml:"interval"`      // time between cycles
	FilterWindow int           `yaml:"filter_window"` // gas moving-average window
	MaxRetries   int           `yaml:"max_retries"`   // env read attempts per cycle
	RetryDelay   time.Duration `yaml:"retry_delay"`   // pause between failed attempts
}

// CalibrationConfig controls the startup baseline measurement.
type CalibrationConfig struct {
	Samples    int           `yaml:"samples"`
	Delay      time.Duration `yaml:"delay"`
	ReadyPause time.Duration `yaml:"ready_pause"` // pause after "Ready!" before the first cycle
}

// AirConfig holds the air quality classification policy.
type AirConfig struct {
	// BadThreshold is the deviation above baseline that is reported as bad air.
	BadThreshold int `yaml:"bad_threshold"`
}

// HardwareConfig describes where the sensors live on the Pi.
type HardwareConfig struct {
	I2CBus      string `yaml:"i2c_bus"` // "" selects the default bus
	BME280Addr  uint16 `yaml:"bme280_addr"`
	ADS1115Addr uint16 `yaml:"ads1115_addr"`
	GasChannel  int    `yaml:"gas_channel"` // ADS1115 input, 0-3
}

// DisplayConfig describes the SSD1306 OLED.
type DisplayConfig struct {
	Enabled bool `yaml:"enabled"`
	Width   int  `yaml:"width"`
	Height  int  `yaml:"height"`
}

// SerialLogConfig mirrors the log output onto a serial port when Port is set.
type SerialLogConfig struct {
	Port string `yaml:"port"`
	Baud uint   `yaml:"baud"`
}

// Default returns a configuration matching the reference hardware build.
func Default() *Config {
	return &Config{
		Sampling: SamplingConfig{
			Interval:     2 * time.Second,
			FilterWindow: filter.DefaultCapacity,
			MaxRetries:   3,
			RetryDelay:   100 * time.Millisecond,
		},
		Calibration: CalibrationConfig{
			Samples:    20,
			Delay:      50 * time.Millisecond,
			ReadyPause: time.Second,
		},
		Air: AirConfig{
			BadThreshold: report.DefaultBadThreshold,
		},
		Hardware: HardwareConfig{
			I2CBus:      "",
			BME280Addr:  0x76,
			ADS1115Addr: 0x48,
			GasChannel:  0,
		},
		Display: DisplayConfig{
			Enabled: true,
			Width:   128,
			Height:  64,
		},
		SerialLog: SerialLogConfig{
			Port: "",
			Baud: 9600,
		},
	}
}

// Load reads a YAML configuration file. A missing file yields the defaults;
// keys left out of the file keep their default values. Explicit values are
// taken as written and then validated.
func Load(configPath string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the configuration as YAML.
func (c *Config) Save(configPath string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// validate checks value ranges.
func (c *Config) validate() error {
	if c.Sampling.Interval < time.Millisecond || c.Sampling.Interval > maxInterval {
		return fmt.Errorf("sampling.interval must be between 1ms and %s, got %s", maxInterval, c.Sampling.Interval)
	}
	if c.Sampling.FilterWindow < 1 {
		return fmt.Errorf("sampling.filter_window must be positive, got %d", c.Sampling.FilterWindow)
	}
	if c.Sampling.MaxRetries < 1 {
		return fmt.Errorf("sampling.max_retries must be positive, got %d", c.Sampling.MaxRetries)
	}
	if c.Sampling.RetryDelay < 0 {
		return fmt.Errorf("sampling.retry_delay must not be negative, got %s", c.Sampling.RetryDelay)
	}
	if c.Calibration.Samples < 1 {
		return fmt.Errorf("calibration.samples must be positive, got %d", c.Calibration.Samples)
	}
	if c.Calibration.Delay < 0 {
		return fmt.Errorf("calibration.delay must not be negative, got %s", c.Calibration.Delay)
	}
	if c.Calibration.ReadyPause < 0 {
		return fmt.Errorf("calibration.ready_pause must not be negative, got %s", c.Calibration.ReadyPause)
	}
	if c.Hardware.GasChannel < 0 || c.Hardware.GasChannel > 3 {
		return fmt.Errorf("hardware.gas_channel must be 0-3, got %d", c.Hardware.GasChannel)
	}
	if c.Hardware.BME280Addr == 0 || c.Hardware.BME280Addr > 0x7F {
		return fmt.Errorf("hardware.bme280_addr must be a 7-bit I2C address, got 0x%X", c.Hardware.BME280Addr)
	}
	if c.Hardware.ADS1115Addr == 0 || c.Hardware.ADS1115Addr > 0x7F {
		return fmt.Errorf("hardware.ads1115_addr must be a 7-bit I2C address, got 0x%X", c.Hardware.ADS1115Addr)
	}
	if c.Display.Width < 1 || c.Display.Height < 1 {
		return fmt.Errorf("display size must be positive, got %dx%d", c.Display.Width, c.Display.Height)
	}
	if c.SerialLog.Port != "" && c.SerialLog.Baud == 0 {
		return fmt.Errorf("serial_log.baud must be set when serial_log.port is %q", c.SerialLog.Port)
	}
	return nil
}
