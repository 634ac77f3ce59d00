// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package logsink

import (
	"fmt"
	"io"
	"log"

	serial "github.com/jacobsa/go-serial/serial"
)

// Serial writes lines terminated by CRLF to a serial port.
type Serial struct {
	port    io.WriteCloser
	name    string
	failing bool
}

var _ Sink = (*Serial)(nil)

// OpenSerial opens portName at baud, 8N1, write-only use.
func OpenSerial(portName string, baud uint) (*Serial, error) {
	opts := serial.OpenOptions{
		PortName:              portName,
		BaudRate:              baud,
		DataBits:              8,
		StopBits:              1,
		MinimumReadSize:       1,
		ParityMode:            serial.PARITY_NONE,
		InterCharacterTimeout: 0,
	}

	port, err := serial.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open serial log port %s: %w", portName, err)
	}
	log.Printf("logsink: serial port opened on %s at %d baud", portName, baud)

	return newSerial(port, portName), nil
}

func newSerial(w io.WriteCloser, name string) *Serial {
	return &Serial{port: w, name: name}
}

// Println writes the line. A write error is logged once until a later write
// succeeds again.
func (s *Serial) Println(line string) {
	_, err := io.WriteString(s.port, line+"\r\n")
	if err != nil {
		if !s.failing {
			log.Printf("logsink: serial write to %s failed: %v", s.name, err)
		}
		s.failing = true
		return
	}
	s.failing = false
}

// Close closes the port.
func (s *Serial) Close() error {
	return s.port.Close()
}
