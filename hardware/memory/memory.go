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

// Package memory implements the tightly-coupled memories of the ibex_soc.
// The ITCM and DTCM are plain 16KB RAM areas with no side effects on access.
package memory

import (
	"encoding/binary"

	"github.com/squirrelhw/ibexsoc/curated"
	"github.com/squirrelhw/ibexsoc/hardware/memory/memorymap"
)

// TCM is one of the two tightly-coupled memories of the SoC.
type TCM struct {
	label string
	data  []byte
}

// NewTCM is the preferred method of initialisation of the TCM type.
func NewTCM(label string) *TCM {
	return &TCM{
		label: label,
		data:  make([]byte, memorymap.SizeTCM),
	}
}

// Label returns the canonical name of the memory area.
func (tcm *TCM) Label() string {
	return tcm.label
}

// Read32 returns the word at the given offset into the memory area. The
// offset is assumed to be in range and word aligned; the two low bits are
// dropped, as the bus fabric does.
func (tcm *TCM) Read32(offset uint32) uint32 {
	offset &^= 0x3
	return binary.LittleEndian.Uint32(tcm.data[offset:])
}

// Write32 stores a word at the given offset into the memory area.
func (tcm *TCM) Write32(offset uint32, data uint32) {
	offset &^= 0x3
	binary.LittleEndian.PutUint32(tcm.data[offset:], data)
}

// Peek returns the byte at the given offset. A debugging function; the bus
// never performs byte access.
func (tcm *TCM) Peek(offset uint32) (byte, error) {
	if offset >= uint32(len(tcm.data)) {
		return 0, curated.Errorf("%s: peek offset out of range (%#08x)", tcm.label, offset)
	}
	return tcm.data[offset], nil
}

// Poke sets the byte at the given offset. A debugging function.
func (tcm *TCM) Poke(offset uint32, data byte) error {
	if offset >= uint32(len(tcm.data)) {
		return curated.Errorf("%s: poke offset out of range (%#08x)", tcm.label, offset)
	}
	tcm.data[offset] = data
	return nil
}
