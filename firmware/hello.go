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

package firmware

import (
	"github.com/squirrelhw/ibexsoc/hal"
)

// Hello is the hello-world bringup program. It prints the memory map, reads
// and prints the timer value and halts.
func Hello(h *hal.HAL) {
	h.PutString("Hello from ibex_soc!")
	h.PutString("")

	h.PutString("Memory map:")
	h.PutString("  ITCM: 0x00010000 (16KB)")
	h.PutString("  DTCM: 0x00020000 (16KB)")
	h.PutString("  Timer: 0x10000000")
	h.PutString("  SimCtrl: 0x10001000")
	h.PutString("")

	time := h.ReadTime()
	h.PutString("Timer value:")
	h.PutHex(uint32(time >> 32))
	h.PutChar('_')
	h.PutHex(uint32(time))
	h.PutChar('\n')

	h.PutString("")
	h.PutString("Test PASSED!")

	h.Halt()
}
