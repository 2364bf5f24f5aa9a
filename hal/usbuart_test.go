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

package hal_test

import (
	"testing"

	"github.com/squirrelhw/ibexsoc/hal"
	"github.com/squirrelhw/ibexsoc/hardware/memory/addresses"
	"github.com/squirrelhw/ibexsoc/test"
)

func TestWriteStringPacking(t *testing.T) {
	bus := newMockBus()
	h := hal.New(bus)

	// two bytes pack into a single zero-padded little-endian word
	h.WriteString("AB")
	tx := bus.writesTo(addresses.UARTTxData)
	test.Equate(t, len(tx), 1)
	test.Equate(t, tx[0], uint32(0x00004241))

	// five bytes pack into one complete word and one partial word
	bus.writes = nil
	h.WriteString("ABCDE")
	tx = bus.writesTo(addresses.UARTTxData)
	test.Equate(t, len(tx), 2)
	test.Equate(t, tx[0], uint32(0x44434241))
	test.Equate(t, tx[1], uint32(0x00000045))

	// exactly four bytes is one word and no partial
	bus.writes = nil
	h.WriteString("ABCD")
	tx = bus.writesTo(addresses.UARTTxData)
	test.Equate(t, len(tx), 1)
	test.Equate(t, tx[0], uint32(0x44434241))

	// the empty string writes nothing
	bus.writes = nil
	h.WriteString("")
	test.Equate(t, len(bus.writes), 0)
}

func TestTxFlushPreservesControl(t *testing.T) {
	bus := newMockBus()
	h := hal.New(bus)

	// enable bits already set in the control register must survive a
	// software flush
	bus.script(addresses.UARTCtrl, addresses.UARTCtrlTxEnable|addresses.UARTCtrlRxEnable|addresses.UARTCtrlCharFlushEn)

	h.TxFlush()

	w := bus.writesTo(addresses.UARTCtrl)
	test.Equate(t, len(w), 1)
	test.Equate(t, w[0], addresses.UARTCtrlTxEnable|addresses.UARTCtrlRxEnable|addresses.UARTCtrlCharFlushEn|addresses.UARTCtrlTxFlush)
}

func TestEcho(t *testing.T) {
	bus := newMockBus()
	h := hal.New(bus)

	// one 5 byte packet at the head of the RX queue, then idle forever
	bus.script(addresses.UARTStatus, addresses.UARTStatusRxValid, 0)
	bus.script(addresses.UARTRxLen, 5)
	bus.script(addresses.UARTRxData, 0x64636261, 0x00000065)

	packets, words := h.Echo(3)
	test.Equate(t, packets, 1)
	test.Equate(t, words, 2)

	// exactly two words popped and echoed
	tx := bus.writesTo(addresses.UARTTxData)
	test.Equate(t, len(tx), 2)
	test.Equate(t, tx[0], uint32(0x64636261))
	test.Equate(t, tx[1], uint32(0x00000065))

	// exactly one software flush, after the whole packet
	ctrl := bus.writesTo(addresses.UARTCtrl)
	test.Equate(t, len(ctrl), 1)
	test.Equate(t, ctrl[0], addresses.UARTCtrlTxFlush)

	// the flush write arrives after both data words
	test.Equate(t, bus.writes[len(bus.writes)-1].address, addresses.UARTCtrl)
}

func TestEchoIdleTermination(t *testing.T) {
	bus := newMockBus()
	h := hal.New(bus)

	// no data ever arrives. the loop must poll the status register exactly
	// idleTimeout times before giving up
	packets, words := h.Echo(10)
	test.Equate(t, packets, 0)
	test.Equate(t, words, 0)

	test.Equate(t, len(bus.writes), 0)
}

func TestEchoIdleReset(t *testing.T) {
	bus := newMockBus()
	h := hal.New(bus)

	// two idle polls, then a packet, then idle forever. the packet must
	// reset the idle counter to zero
	bus.script(addresses.UARTStatus, 0, 0, addresses.UARTStatusRxValid, 0)
	bus.script(addresses.UARTRxLen, 4)
	bus.script(addresses.UARTRxData, 0x0a676e70)

	countingStatus := &statusCounter{bus: bus}
	h = hal.New(countingStatus)

	packets, _ := h.Echo(3)
	test.Equate(t, packets, 1)

	// 2 idle polls + 1 valid poll + 3 trailing idle polls
	test.Equate(t, countingStatus.statusReads, 6)
}

// statusCounter wraps a mockBus, counting reads of the status register.
type statusCounter struct {
	bus         *mockBus
	statusReads int
}

func (b *statusCounter) Read32(address uint32) uint32 {
	if address == addresses.UARTStatus {
		b.statusReads++
	}
	return b.bus.Read32(address)
}

func (b *statusCounter) Write32(address uint32, data uint32) {
	b.bus.Write32(address, data)
}
