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

// Bus is the register access primitive of the SoC: 32-bit reads and writes
// of memory mapped peripheral registers at absolute addresses.
//
// Implementations must perform each access immediately and in call order,
// with no caching and no reordering. There are no error conditions; an
// access outside the memory map is a caller contract violation and whatever
// the bus fabric does with it is out of scope here.
type Bus interface {
	Read32(address uint32) uint32
	Write32(address uint32, data uint32)
}

// HAL is a handle over the fixed register addresses of the ibex_soc. It
// holds no driver state of its own; the hardware registers are the only
// state there is.
type HAL struct {
	bus Bus

	handlers Handlers
}

// New is the preferred method of initialisation of the HAL type. The default
// exception and timer interrupt handlers are attached; they can be replaced
// with SetHandlers().
func New(bus Bus) *HAL {
	h := &HAL{bus: bus}
	h.handlers = defaultHandlers{h: h}
	return h
}

// SetHandlers replaces the exception and timer interrupt handlers. A nil
// value restores the defaults.
func (h *HAL) SetHandlers(handlers Handlers) {
	if handlers == nil {
		handlers = defaultHandlers{h: h}
	}
	h.handlers = handlers
}

// Exception dispatches to the current exception handler. Called by the
// environment on an unhandled CPU exception.
func (h *HAL) Exception() {
	h.handlers.Exception()
}

// TimerInterrupt dispatches to the current timer interrupt handler.
func (h *HAL) TimerInterrupt() {
	h.handlers.TimerInterrupt()
}
