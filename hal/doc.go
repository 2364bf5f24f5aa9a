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

// Package hal implements the hardware abstraction layer used by bare-metal
// test programs running on the ibex_soc. It provides drivers for the
// peripherals of the SoC: the diagnostic console, the 64-bit machine timer
// and the packetized USB UART, along with the halt primitive that terminates
// the simulation.
//
// All drivers are built on the Bus interface, the rendering of the SoC's
// register access primitive. Bus accesses are performed immediately and in
// call order; drivers never cache a register value between calls, so every
// poll of a status register is a fresh bus transaction.
//
// The HAL operates with a single thread of control and no interrupts.
// Blocking only ever means busy-polling a register (the timer rollover retry,
// the echo loop's idle wait). The default exception and timer interrupt
// handlers are fatal backstops: they log a fixed diagnostic and halt.
package hal
