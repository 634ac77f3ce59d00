// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package display

import (
	"fmt"
	"image"
	"log"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/devices/v3/ssd1306"
)

// OLED drives a 128x64 SSD1306 over I²C.
type OLED struct {
	dev *ssd1306.Dev
}

var _ Sink = (*OLED)(nil)

// OpenOLED initializes the display. An error means no display is attached and
// the caller should continue without one.
func OpenOLED(bus i2c.Bus, width, height int) (*OLED, error) {
	opts := ssd1306.DefaultOpts
	opts.W = width
	opts.H = height

	dev, err := ssd1306.NewI2C(bus, &opts)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize display: %w", err)
	}
	log.Printf("display: SSD1306 %dx%d initialized", width, height)

	return &OLED{dev: dev}, nil
}

// Show clears the screen and draws f.
func (o *OLED) Show(f Frame) error {
	b := o.dev.Bounds()
	img := Render(f, b.Dx(), b.Dy())
	return o.dev.Draw(b, img, image.Point{})
}

// Halt blanks and turns off the display.
func (o *OLED) Halt() error {
	return o.dev.Halt()
}
