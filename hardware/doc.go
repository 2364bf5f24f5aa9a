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

// Package hardware is the register-level simulation of the ibex_soc: two
// tightly-coupled memories, the mtime timer, the simulation control
// peripheral and the packetized USB UART, assembled behind a single bus.
//
// The SoC type implements the hal.Bus interface so that HAL-based programs
// run against the simulated hardware unchanged. Time advances with bus
// activity: every register access ticks the timer by one cycle, standing in
// for the core clock.
package hardware
