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

// Package timer implements the mtime peripheral of the ibex_soc: a 64-bit
// free-running counter with a 64-bit compare value, in the manner of the
// RISC-V machine timer.
//
// The counter and the compare value are both exposed to the bus as pairs of
// independently addressable 32-bit halves. Software can therefore observe
// the counter mid-increment; reading the full 64-bit value safely is the
// responsibility of the driver (see the hal package).
package timer

import (
	"fmt"
)

// Register offsets inside the timer area.
const (
	MTime     = 0x00
	MTimeH    = 0x04
	MTimeCmp  = 0x08
	MTimeCmpH = 0x0c
)

// Timer implements the mtime counter and mtimecmp compare register.
type Timer struct {
	mtime    uint64
	mtimecmp uint64

	// pending is latched when mtime reaches mtimecmp and cleared on any
	// write to either compare half
	pending bool
}

// NewTimer is the preferred method of initialisation of the Timer type.
func NewTimer() *Timer {
	return &Timer{
		// compare resets to the maximum value so that no interrupt condition
		// exists until software programs a threshold
		mtimecmp: 0xffffffffffffffff,
	}
}

func (tmr *Timer) String() string {
	return fmt.Sprintf("mtime=%#016x mtimecmp=%#016x pending=%v", tmr.mtime, tmr.mtimecmp, tmr.pending)
}

// Advance the counter by the given number of cycles.
func (tmr *Timer) Advance(cycles uint64) {
	tmr.mtime += cycles
	if tmr.mtime >= tmr.mtimecmp {
		tmr.pending = true
	}
}

// Value returns the full 64-bit counter value. A debugging function; the bus
// only ever sees the two 32-bit halves.
func (tmr *Timer) Value() uint64 {
	return tmr.mtime
}

// SetValue jumps the counter to an arbitrary value. Used by tests to place
// the counter near points of interest (eg. just before a low-half rollover).
func (tmr *Timer) SetValue(value uint64) {
	tmr.mtime = value
}

// Compare returns the full 64-bit compare value.
func (tmr *Timer) Compare() uint64 {
	return tmr.mtimecmp
}

// Pending returns whether the compare condition has been met since the last
// write to the compare registers.
func (tmr *Timer) Pending() bool {
	return tmr.pending
}

// Read the register at the given offset into the timer area.
func (tmr *Timer) Read(offset uint32) uint32 {
	switch offset {
	case MTime:
		return uint32(tmr.mtime)
	case MTimeH:
		return uint32(tmr.mtime >> 32)
	case MTimeCmp:
		return uint32(tmr.mtimecmp)
	case MTimeCmpH:
		return uint32(tmr.mtimecmp >> 32)
	}

	return 0
}

// Write the register at the given offset into the timer area. The counter
// halves are writable, as with a real CLINT. Writing either compare half
// clears any pending compare condition.
func (tmr *Timer) Write(offset uint32, data uint32) {
	switch offset {
	case MTime:
		tmr.mtime = (tmr.mtime &^ 0x00000000ffffffff) | uint64(data)
	case MTimeH:
		tmr.mtime = (tmr.mtime &^ 0xffffffff00000000) | (uint64(data) << 32)
	case MTimeCmp:
		tmr.mtimecmp = (tmr.mtimecmp &^ 0x00000000ffffffff) | uint64(data)
		tmr.pending = false
	case MTimeCmpH:
		tmr.mtimecmp = (tmr.mtimecmp &^ 0xffffffff00000000) | (uint64(data) << 32)
		tmr.pending = false
	}

	if tmr.mtime >= tmr.mtimecmp {
		tmr.pending = true
	}
}
