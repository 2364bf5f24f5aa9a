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

package hal

// Handlers is the hook for the two fatal-error backstops of the SoC: an
// unhandled CPU exception and an unexpected timer interrupt. A platform
// integrator may install an implementation with SetHandlers(); absent an
// override the default fatal log-and-halt behaviour applies.
//
// Neither handler is part of normal control flow. Interrupts are not enabled
// by default and the handlers exist only so that a stray trap produces a
// diagnostic rather than silence.
type Handlers interface {
	Exception()
	TimerInterrupt()
}

// defaultHandlers logs a fixed diagnostic string to the console and halts.
// By the time either handler runs the program is beyond recovery, so neither
// returns.
type defaultHandlers struct {
	h *HAL
}

func (d defaultHandlers) Exception() {
	d.h.PutString("EXCEPTION!")
	d.h.Halt()
}

func (d defaultHandlers) TimerInterrupt() {
	d.h.PutString("TIMER IRQ!")
	d.h.Halt()
}
