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

const hexDigits = "0123456789abcdef"

// PutChar writes one character to the console output register. Returns the
// character written, mirroring the byte-output convention of the C library
// putchar().
func (h *HAL) PutChar(c byte) byte {
	h.bus.Write32(addresses.SimCtrlOut, uint32(c))
	return c
}

// PutString writes every character of the string to the console, followed by
// a trailing newline.
func (h *HAL) PutString(s string) {
	for i := 0; i < len(s); i++ {
		h.PutChar(s[i])
	}
	h.PutChar('\n')
}

// PutHex writes "0x" followed by exactly eight lowercase hexadecimal digits,
// most significant nibble first. Leading zeros are always emitted; this is a
// fixed-width register dump primitive, not a general number formatter.
func (h *HAL) PutHex(value uint32) {
	h.PutChar('0')
	h.PutChar('x')
	for i := 28; i >= 0; i -= 4 {
		h.PutChar(hexDigits[(value>>i)&0xf])
	}
}
