// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package display

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// Console prints frames as text blocks. It stands in for the OLED when
// running without hardware.
type Console struct {
	w io.Writer
}

var _ Sink = (*Console)(nil)

// NewConsole returns a Console writing to w.
func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

// Show writes the frame lines top to bottom between rulers.
func (c *Console) Show(f Frame) error {
	lines := make([]Line, len(f.Lines))
	copy(lines, f.Lines)
	sort.SliceStable(lines, func(i, j int) bool { return lines[i].Y < lines[j].Y })

	var b strings.Builder
	b.WriteString("+----------------+\n")
	for _, l := range lines {
		col := l.X / 7
		fmt.Fprintf(&b, "|%s%s\n", strings.Repeat(" ", col), l.Text)
	}
	b.WriteString("+----------------+\n")

	_, err := io.WriteString(c.w, b.String())
	return err
}

func (c *Console) Halt() error {
	return nil
}
