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
	"strings"

	"github.com/squirrelhw/ibexsoc/hardware/memory/addresses"
)

// busWrite records one write transaction seen by the mock bus.
type busWrite struct {
	address uint32
	data    uint32
}

// mockBus is a scripted register model. Read values are consumed from a
// queue per address; the final value in a queue sticks. Writes are recorded
// in the order they arrive.
type mockBus struct {
	reads  map[uint32][]uint32
	writes []busWrite

	// closed on a write to the simctrl halt register. only made when a test
	// needs to synchronise with a halting goroutine
	halted chan struct{}
}

func newMockBus() *mockBus {
	return &mockBus{
		reads: make(map[uint32][]uint32),
	}
}

// script queues read values for an address.
func (b *mockBus) script(address uint32, values ...uint32) {
	b.reads[address] = append(b.reads[address], values...)
}

func (b *mockBus) Read32(address uint32) uint32 {
	q := b.reads[address]
	if len(q) == 0 {
		return 0
	}
	v := q[0]
	if len(q) > 1 {
		b.reads[address] = q[1:]
	}
	return v
}

func (b *mockBus) Write32(address uint32, data uint32) {
	b.writes = append(b.writes, busWrite{address: address, data: data})

	if b.halted != nil && address == addresses.SimCtrlCtrl && data == 1 {
		close(b.halted)
		b.halted = nil
	}
}

// count of reads remaining plus writes seen for an address.
func (b *mockBus) writesTo(address uint32) []uint32 {
	var w []uint32
	for _, bw := range b.writes {
		if bw.address == address {
			w = append(w, bw.data)
		}
	}
	return w
}

// console returns the characters written to the simctrl output register as a
// string.
func (b *mockBus) console() string {
	s := strings.Builder{}
	for _, bw := range b.writes {
		if bw.address == addresses.SimCtrlOut {
			s.WriteByte(byte(bw.data))
		}
	}
	return s.String()
}
