// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package display

import (
	"bytes"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"periph.io/x/devices/v3/ssd1306/image1bit"
)

func litPixels(img *image1bit.VerticalLSB, r image.Rectangle) int {
	n := 0
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if img.BitAt(x, y) == image1bit.On {
				n++
			}
		}
	}
	return n
}

func TestRender_EmptyFrameIsBlank(t *testing.T) {
	img := Render(Frame{}, 128, 64)
	require.Equal(t, image.Rect(0, 0, 128, 64), img.Bounds())
	assert.Zero(t, litPixels(img, img.Bounds()))
}

func TestRender_DrawsOnlyAroundLines(t *testing.T) {
	img := Render(TextFrame("Ready!"), 128, 64)

	// First row baseline is at 13; glyphs sit above it.
	assert.Positive(t, litPixels(img, image.Rect(0, 0, 128, Row(0)+3)))
	assert.Zero(t, litPixels(img, image.Rect(0, Row(1), 128, 64)))
}

func TestRender_BottomLine(t *testing.T) {
	f := Frame{Lines: []Line{{X: 0, Y: 60, Text: "Status: OK"}}}
	img := Render(f, 128, 64)

	assert.Zero(t, litPixels(img, image.Rect(0, 0, 128, 45)))
	assert.Positive(t, litPixels(img, image.Rect(0, 45, 128, 64)))
}

func TestTextFrame(t *testing.T) {
	f := TextFrame("Air Monitor", "Calibrating...")
	require.Len(t, f.Lines, 2)
	assert.Equal(t, Line{X: 0, Y: 13, Text: "Air Monitor"}, f.Lines[0])
	assert.Equal(t, Line{X: 0, Y: 26, Text: "Calibrating..."}, f.Lines[1])
}

func TestConsole_Show(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf)

	f := Frame{Lines: []Line{
		{X: 0, Y: 60, Text: "Status: OK"},
		{X: 0, Y: 13, Text: "Temp: 21.0 C"},
		{X: 14, Y: 26, Text: "indented"},
	}}
	require.NoError(t, c.Show(f))

	want := "+----------------+\n" +
		"|Temp: 21.0 C\n" +
		"|  indented\n" +
		"|Status: OK\n" +
		"+----------------+\n"
	assert.Equal(t, want, buf.String())
	assert.NoError(t, c.Halt())
}
