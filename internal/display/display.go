// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package display

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"periph.io/x/devices/v3/ssd1306/image1bit"
)

// LineHeight is the vertical advance of the display font in pixels.
const LineHeight = 13

// Line is one piece of text placed on the screen. Y is the text baseline.
type Line struct {
	X, Y int
	Text string
}

// Frame is a full screen of text. Showing a frame clears whatever was on the
// screen before.
type Frame struct {
	Lines []Line
}

// Row returns the baseline of the n-th text row, counting from 0.
func Row(n int) int {
	return (n + 1) * LineHeight
}

// TextFrame lays out texts one per row starting at the top-left corner.
func TextFrame(texts ...string) Frame {
	f := Frame{Lines: make([]Line, 0, len(texts))}
	for i, t := range texts {
		f.Lines = append(f.Lines, Line{X: 0, Y: Row(i), Text: t})
	}
	return f
}

// Sink accepts frames for display.
type Sink interface {
	Show(f Frame) error
	Halt() error
}

// Render draws f into a blank 1-bit image of the given size.
func Render(f Frame, width, height int) *image1bit.VerticalLSB {
	img := image1bit.NewVerticalLSB(image.Rect(0, 0, width, height))

	drawer := &font.Drawer{
		Dst:  img,
		Src:  &image.Uniform{image1bit.On},
		Face: basicfont.Face7x13,
	}

	for _, l := range f.Lines {
		drawer.Dot = fixed.P(l.X, l.Y)
		drawer.DrawString(l.Text)
	}

	return img
}
