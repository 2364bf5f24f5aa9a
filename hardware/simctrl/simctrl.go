// This file is part of ibexsoc.
//
// ibexsoc is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// ibexsoc is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with ibexsoc.  If not, see <https://www.gnu.org/licenses/>.

// Package simctrl implements the simulation control peripheral of the
// ibex_soc. It provides two services to the program running on the SoC: a
// character output register for diagnostic text and a halt register that
// terminates the simulation.
//
// The character stream is a plain ASCII log with no framing. Complete lines
// are retained and can be retrieved with the Lines() function; a test
// harness watches these lines for phase markers (eg. a line containing just
// "T" or "R").
package simctrl

import (
	"io"
	"strings"
	"sync"

	"github.com/squirrelhw/ibexsoc/logger"
)

// Register offsets inside the simctrl area.
const (
	Out  = 0x00
	Ctrl = 0x08
)

// SimCtrl implements the simulation control peripheral.
type SimCtrl struct {
	// raw character stream is forwarded to the attached writer, if any
	output io.Writer

	line  strings.Builder
	lines []string

	halted   chan struct{}
	haltOnce sync.Once
}

// NewSimCtrl is the preferred method of initialisation of the SimCtrl type.
func NewSimCtrl() *SimCtrl {
	return &SimCtrl{
		halted: make(chan struct{}),
	}
}

// Attach an io.Writer to receive the raw character stream. A nil writer
// detaches.
func (sc *SimCtrl) Attach(output io.Writer) {
	sc.output = output
}

// Halted returns a channel that is closed when the program has written the
// halt value to the control register.
func (sc *SimCtrl) Halted() <-chan struct{} {
	return sc.halted
}

// Lines returns the complete lines written to the character output register
// so far. Safe to call from another goroutine only once Halted() has
// signalled.
func (sc *SimCtrl) Lines() []string {
	return sc.lines
}

// Write the register at the given offset into the simctrl area.
func (sc *SimCtrl) Write(offset uint32, data uint32) {
	switch offset {
	case Out:
		sc.out(byte(data))
	case Ctrl:
		if data&0x1 == 0x1 {
			sc.halt()
		}
	}
}

// Read the register at the given offset. Both simctrl registers are
// write-only; reads return zero, as the bus fabric does for undriven reads.
func (sc *SimCtrl) Read(offset uint32) uint32 {
	return 0
}

func (sc *SimCtrl) out(c byte) {
	if sc.output != nil {
		sc.output.Write([]byte{c})
	}

	if c == '\n' {
		sc.lines = append(sc.lines, sc.line.String())
		logger.Logf("simctrl", "out: %s", sc.line.String())
		sc.line.Reset()
		return
	}

	sc.line.WriteByte(c)
}

func (sc *SimCtrl) halt() {
	sc.haltOnce.Do(func() {
		logger.Log("simctrl", "halt requested")
		close(sc.halted)
	})
}
