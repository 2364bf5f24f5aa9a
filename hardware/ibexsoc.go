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

package hardware

import (
	"io"

	"github.com/squirrelhw/ibexsoc/curated"
	"github.com/squirrelhw/ibexsoc/hal"
	"github.com/squirrelhw/ibexsoc/hardware/memory"
	"github.com/squirrelhw/ibexsoc/hardware/memory/addresses"
	"github.com/squirrelhw/ibexsoc/hardware/memory/memorymap"
	"github.com/squirrelhw/ibexsoc/hardware/simctrl"
	"github.com/squirrelhw/ibexsoc/hardware/timer"
	"github.com/squirrelhw/ibexsoc/hardware/usbuart"
	"github.com/squirrelhw/ibexsoc/logger"
)

// SoC is the assembled ibex_soc. Create with NewSoC().
type SoC struct {
	ITCM    *memory.TCM
	DTCM    *memory.TCM
	Timer   *timer.Timer
	SimCtrl *simctrl.SimCtrl
	UART    *usbuart.UART

	// trap target for an enabled timer interrupt. nil unless wired with
	// SetTrapTarget()
	trap hal.Handlers

	// whether the timer interrupt is routed to the trap target. disabled at
	// reset, as on the real SoC
	timerIRQEnabled bool

	// edge detection for the timer interrupt
	timerIRQSeen bool
}

// NewSoC is the preferred method of initialisation of the SoC type.
func NewSoC() *SoC {
	return &SoC{
		ITCM:    memory.NewTCM("ITCM"),
		DTCM:    memory.NewTCM("DTCM"),
		Timer:   timer.NewTimer(),
		SimCtrl: simctrl.NewSimCtrl(),
		UART:    usbuart.NewUART(),
	}
}

// make sure the SoC can serve as the register access primitive for HAL
// programs
var _ hal.Bus = (*SoC)(nil)

// AttachConsole forwards the simctrl character stream to an io.Writer.
func (soc *SoC) AttachConsole(output io.Writer) {
	soc.SimCtrl.Attach(output)
}

// Halted returns a channel that is closed when the running program halts the
// simulation.
func (soc *SoC) Halted() <-chan struct{} {
	return soc.SimCtrl.Halted()
}

// SetTrapTarget wires the timer interrupt to a set of trap handlers and
// enables its delivery. Without a trap target the interrupt condition is
// simply ignored, which is the reset behaviour of the SoC.
func (soc *SoC) SetTrapTarget(trap hal.Handlers) {
	soc.trap = trap
	soc.timerIRQEnabled = trap != nil
}

// tick advances the hardware by one cycle. called on every bus access, so
// simulated time moves with bus activity.
func (soc *SoC) tick() {
	soc.Timer.Advance(1)
	soc.UART.Tick(1)

	if soc.timerIRQEnabled && soc.trap != nil {
		if soc.Timer.Pending() {
			if !soc.timerIRQSeen {
				soc.timerIRQSeen = true
				soc.trap.TimerInterrupt()
			}
		} else {
			soc.timerIRQSeen = false
		}
	}
}

// Read32 implements the hal.Bus interface.
func (soc *SoC) Read32(address uint32) uint32 {
	soc.tick()

	area, offset := memorymap.MapAddress(address)
	switch area {
	case memorymap.ITCM:
		return soc.ITCM.Read32(offset)
	case memorymap.DTCM:
		return soc.DTCM.Read32(offset)
	case memorymap.Timer:
		return soc.Timer.Read(offset)
	case memorymap.SimCtrl:
		return soc.SimCtrl.Read(offset)
	case memorymap.USBUART:
		return soc.UART.Read(offset)
	}

	// reads from unmapped addresses are undefined at the hardware level.
	// surface them in the log and return zero
	logger.Logf("bus", "read from unmapped address %#08x", address)
	return 0
}

// Write32 implements the hal.Bus interface.
func (soc *SoC) Write32(address uint32, data uint32) {
	soc.tick()

	area, offset := memorymap.MapAddress(address)
	switch area {
	case memorymap.ITCM:
		soc.ITCM.Write32(offset, data)
	case memorymap.DTCM:
		soc.DTCM.Write32(offset, data)
	case memorymap.Timer:
		soc.Timer.Write(offset, data)
	case memorymap.SimCtrl:
		soc.SimCtrl.Write(offset, data)
	case memorymap.USBUART:
		soc.UART.Write(offset, data)
	default:
		logger.Logf("bus", "write to unmapped address %#08x", address)
	}
}

// Peek the register at the given address. A debugging function: no bus
// cycle is consumed, no side effects occur and unmapped addresses return an
// error rather than a logged zero.
func (soc *SoC) Peek(address uint32) (uint32, error) {
	area, offset := memorymap.MapAddress(address)
	switch area {
	case memorymap.ITCM:
		return soc.ITCM.Read32(offset), nil
	case memorymap.DTCM:
		return soc.DTCM.Read32(offset), nil
	case memorymap.Timer:
		return soc.Timer.Read(offset), nil
	case memorymap.USBUART:
		switch offset {
		case usbuart.RxData:
			// reading the RX data register pops the FIFO so peeking it
			// would disturb the very state being inspected
			return 0, curated.Errorf("soc: %s is not peekable", addresses.CanonicalSymbols[address])
		case usbuart.Status:
			return soc.UART.Status(), nil
		}
		return soc.UART.Read(offset), nil
	}

	return 0, curated.Errorf("soc: address not peekable (%#08x)", address)
}

// Poke a value into memory at the given address. A debugging function; only
// the tightly-coupled memories are pokeable.
func (soc *SoC) Poke(address uint32, data uint32) error {
	area, offset := memorymap.MapAddress(address)
	switch area {
	case memorymap.ITCM:
		soc.ITCM.Write32(offset, data)
		return nil
	case memorymap.DTCM:
		soc.DTCM.Write32(offset, data)
		return nil
	}

	return curated.Errorf("soc: address not pokeable (%#08x)", address)
}
