// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package app

import (
	"io"
	"log"
	"os"
	"time"

	"github.com/relabs-tech/air_monitor/internal/config"
	"github.com/relabs-tech/air_monitor/internal/display"
	"github.com/relabs-tech/air_monitor/internal/logsink"
	"github.com/relabs-tech/air_monitor/internal/sensors"

	"periph.io/x/conn/v3/i2c"
)

const (
	mockCleanAir    = 300
	mockPollution   = 2 * time.Minute
	mockEnvFailures = 7
)

// hardware is the set of opened collaborators plus whatever must be closed.
type hardware struct {
	env     sensors.EnvSensor
	gas     sensors.GasSensor
	display display.Sink
	log     logsink.Sink
	closers []io.Closer

	// gasErr is why the gas sensor is offline, if it is.
	gasErr error
}

// haltCloser adapts periph devices, which stop with Halt, to io.Closer.
type haltCloser struct {
	dev interface{ Halt() error }
}

func (c haltCloser) Close() error {
	return c.dev.Halt()
}

func (h *hardware) Close() {
	if h.display != nil {
		if err := h.display.Halt(); err != nil {
			log.Printf("display: halt error: %v", err)
		}
	}
	for i := len(h.closers) - 1; i >= 0; i-- {
		if err := h.closers[i].Close(); err != nil {
			log.Printf("app: close error: %v", err)
		}
	}
}

// envDevice and gasDevice are opened sensors that must be halted on exit.
type envDevice interface {
	sensors.EnvSensor
	Halt() error
}

type gasDevice interface {
	sensors.GasSensor
	Halt() error
}

// devices opens the real peripherals. stdout receives the status lines;
// nil means os.Stdout.
type devices struct {
	openBus func(name string) (i2c.BusCloser, error)
	env     func(bus i2c.Bus, addr uint16) (envDevice, error)
	gas     func(bus i2c.Bus, addr uint16, channel int) (gasDevice, error)
	oled    func(bus i2c.Bus, width, height int) (display.Sink, error)
	stdout  io.Writer
}

var periphDevices = devices{
	openBus: sensors.OpenI2C,
	env: func(bus i2c.Bus, addr uint16) (envDevice, error) {
		d, err := sensors.NewBME280(bus, addr)
		if err != nil {
			return nil, err
		}
		return d, nil
	},
	gas: func(bus i2c.Bus, addr uint16, channel int) (gasDevice, error) {
		d, err := sensors.NewADS1115Gas(bus, addr, channel)
		if err != nil {
			return nil, err
		}
		return d, nil
	},
	oled: func(bus i2c.Bus, width, height int) (display.Sink, error) {
		d, err := display.OpenOLED(bus, width, height)
		if err != nil {
			return nil, err
		}
		return d, nil
	},
}

// openHardware opens the sensors, the display and the log sinks. Nothing here
// is fatal: a sensor that fails to open is replaced by an offline stand-in,
// so every cycle reports the error, and a missing display leaves display nil.
func openHardware(cfg *config.Config, mock bool, devs devices) *hardware {
	h := &hardware{}
	h.log = openLog(cfg, h, devs.stdout)

	if mock {
		log.Println("app: using mock sensors and console display")
		h.env = sensors.NewMockEnv(mockEnvFailures)
		h.gas = sensors.NewMockGas(mockCleanAir, mockPollution)
		if cfg.Display.Enabled {
			h.display = display.NewConsole(os.Stdout)
		}
		return h
	}

	bus, err := devs.openBus(cfg.Hardware.I2CBus)
	if err != nil {
		log.Printf("app: %v", err)
		h.env = sensors.OfflineEnv{Err: err}
		h.gas = sensors.OfflineGas{}
		h.gasErr = err
		if cfg.Display.Enabled {
			h.log.Println("OLED not found - continuing without display")
		}
		return h
	}
	h.closers = append(h.closers, bus)

	if bme, err := devs.env(bus, cfg.Hardware.BME280Addr); err != nil {
		log.Printf("env: %v", err)
		h.env = sensors.OfflineEnv{Err: err}
	} else {
		h.env = bme
		h.closers = append(h.closers, haltCloser{bme})
	}

	if gas, err := devs.gas(bus, cfg.Hardware.ADS1115Addr, cfg.Hardware.GasChannel); err != nil {
		log.Printf("gas: %v", err)
		h.gas = sensors.OfflineGas{}
		h.gasErr = err
	} else {
		h.gas = gas
		h.closers = append(h.closers, haltCloser{gas})
	}

	if cfg.Display.Enabled {
		oled, err := devs.oled(bus, cfg.Display.Width, cfg.Display.Height)
		if err != nil {
			log.Printf("display: %v", err)
			h.log.Println("OLED not found - continuing without display")
		} else {
			h.display = oled
		}
	}

	return h
}

// openLog returns stdout, mirrored to the serial port when one is configured
// and can be opened.
func openLog(cfg *config.Config, h *hardware, stdout io.Writer) logsink.Sink {
	var std *logsink.Std
	if stdout != nil {
		std = logsink.NewStd(log.New(stdout, "", 0))
	} else {
		std = logsink.NewStd(nil)
	}
	if cfg.SerialLog.Port == "" {
		return std
	}

	port, err := logsink.OpenSerial(cfg.SerialLog.Port, cfg.SerialLog.Baud)
	if err != nil {
		log.Printf("logsink: %v", err)
		return std
	}
	h.closers = append(h.closers, port)
	return logsink.Multi{std, port}
}
