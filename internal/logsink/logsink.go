// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

// Package logsink carries the monitor's human-readable status lines to the
// terminal and, optionally, a serial port.
package logsink

import (
	"log"
	"os"
)

// Sink accepts formatted status lines. Delivery failures are not reported.
type Sink interface {
	Println(line string)
}

// Std writes lines through a standard logger.
type Std struct {
	logger *log.Logger
}

// NewStd returns a sink writing to l, or to stdout without a prefix when l is nil.
func NewStd(l *log.Logger) *Std {
	if l == nil {
		l = log.New(os.Stdout, "", 0)
	}
	return &Std{logger: l}
}

func (s *Std) Println(line string) {
	s.logger.Println(line)
}

// Multi fans lines out to several sinks.
type Multi []Sink

func (m Multi) Println(line string) {
	for _, s := range m {
		s.Println(line)
	}
}
