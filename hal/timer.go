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

import (
	"github.com/squirrelhw/ibexsoc/hardware/memory/addresses"
)

// ReadTime returns the full 64-bit value of the mtime counter.
//
// The counter is read as two 32-bit halves and can roll over between the two
// reads. The classic high/low/high sequence guards against this: if the two
// reads of the high half disagree, a rollover happened in between and the
// whole read is retried. The returned value is therefore always a value the
// counter actually held at some instant, never a torn combination.
func (h *HAL) ReadTime() uint64 {
	for {
		hi := h.bus.Read32(addresses.TimerMTimeH)
		lo := h.bus.Read32(addresses.TimerMTime)
		if h.bus.Read32(addresses.TimerMTimeH) == hi {
			return uint64(hi)<<32 | uint64(lo)
		}
	}
}

// SetCompare sets the 64-bit timer compare value.
//
// The compare value is written as two 32-bit halves and the hardware acts on
// the intermediate state. The high half is first saturated to 0xffffffff,
// pushing the effective threshold to its maximum, before the new low and
// high halves are written. Writing low-then-high without the saturating
// pre-write risks a transient compare value below the current counter and a
// spurious match.
func (h *HAL) SetCompare(cmp uint64) {
	h.bus.Write32(addresses.TimerMTimeCmpH, 0xffffffff)
	h.bus.Write32(addresses.TimerMTimeCmp, uint32(cmp))
	h.bus.Write32(addresses.TimerMTimeCmpH, uint32(cmp>>32))
}
