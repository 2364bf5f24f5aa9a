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

// TxWord pushes one 32-bit word to the USB UART TX FIFO. The FIFO may
// auto-flush according to the configured triggers. TxWord never blocks on a
// full FIFO; if overflow matters the caller must check Status() first.
func (h *HAL) TxWord(word uint32) {
	h.bus.Write32(addresses.UARTTxData, word)
}

// TxFlush triggers a software flush of the TX FIFO. The control register is
// read, the flush bit set and the result written back, leaving every other
// control bit unchanged.
func (h *HAL) TxFlush() {
	ctrl := h.bus.Read32(addresses.UARTCtrl)
	h.bus.Write32(addresses.UARTCtrl, ctrl|addresses.UARTCtrlTxFlush)
}

// RxLen peeks the byte length of the packet at the head of the RX queue
// without popping it.
func (h *HAL) RxLen() uint32 {
	return h.bus.Read32(addresses.UARTRxLen)
}

// RxWord pops one 32-bit word from the RX FIFO. Each call advances the read
// position by one word.
func (h *HAL) RxWord() uint32 {
	return h.bus.Read32(addresses.UARTRxData)
}

// Status returns a fresh snapshot of the USB UART status register. See the
// addresses package for the bitfield layout.
func (h *HAL) Status() uint32 {
	return h.bus.Read32(addresses.UARTStatus)
}

// SetControl writes the USB UART control register. Init-time configuration;
// for a software flush that leaves the enable bits alone use TxFlush().
func (h *HAL) SetControl(ctrl uint32) {
	h.bus.Write32(addresses.UARTCtrl, ctrl)
}

// WriteString packs the string's bytes four at a time into little-endian
// 32-bit words, pushing one word to the TX FIFO per complete group. A
// trailing partial group is pushed as a final word with the unused
// high-order bytes left as zero.
//
// WriteString does not itself trigger a flush. Whether to rely on an
// automatic trigger or to call TxFlush() is the caller's choice.
func (h *HAL) WriteString(s string) {
	var word uint32
	var idx int

	for i := 0; i < len(s); i++ {
		word |= uint32(s[i]) << (idx * 8)
		idx++
		if idx == 4 {
			h.TxWord(word)
			word = 0
			idx = 0
		}
	}

	if idx > 0 {
		h.TxWord(word)
	}
}

// Echo polls the USB UART and echoes every received packet back to the
// sender, word for word. For each packet the driver pops exactly
// ceil(rx_len/4) words and pushes each one straight back to the TX FIFO,
// followed by a single software flush for the whole packet.
//
// An idle counter increments on every poll that finds no valid RX data and
// resets to zero whenever data is present. Echo returns when the counter
// reaches idleTimeout. The unit is poll iterations, not wall-clock time; the
// real-time meaning depends on how fast the loop runs.
//
// Returns the number of packets and words echoed.
func (h *HAL) Echo(idleTimeout int) (int, int) {
	var packets, words int
	var idle int

	for idle < idleTimeout {
		status := h.Status()

		if status&addresses.UARTStatusRxValid == addresses.UARTStatusRxValid {
			numWords := (h.RxLen() + 3) / 4

			for i := uint32(0); i < numWords; i++ {
				h.TxWord(h.RxWord())
				words++
			}

			h.TxFlush()
			packets++

			idle = 0
		} else {
			idle++
		}
	}

	return packets, words
}
