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

package memorymap_test

import (
	"testing"

	"github.com/squirrelhw/ibexsoc/hardware/memory/memorymap"
	"github.com/squirrelhw/ibexsoc/test"
)

func TestMapAddress(t *testing.T) {
	mappings := []struct {
		address uint32
		area    memorymap.Area
		offset  uint32
	}{
		{0x00010000, memorymap.ITCM, 0x0000},
		{0x00013fff, memorymap.ITCM, 0x3fff},
		{0x00020000, memorymap.DTCM, 0x0000},
		{0x00023fff, memorymap.DTCM, 0x3fff},
		{0x10000000, memorymap.Timer, 0x00},
		{0x1000000c, memorymap.Timer, 0x0c},
		{0x10001000, memorymap.SimCtrl, 0x00},
		{0x10001008, memorymap.SimCtrl, 0x08},
		{0x10002000, memorymap.USBUART, 0x00},
		{0x10002010, memorymap.USBUART, 0x10},
	}

	for _, m := range mappings {
		area, offset := memorymap.MapAddress(m.address)
		if area != m.area {
			t.Errorf("address %#08x mapped to %s (wanted %s)", m.address, area, m.area)
		}
		test.Equate(t, offset, m.offset)
	}
}

func TestMapAddressUndefined(t *testing.T) {
	unmapped := []uint32{
		0x00000000,
		0x0000ffff,
		0x00014000,
		0x00024000,
		0x10000010,
		0x10001010,
		0x10002014,
		0xffffffff,
	}

	for _, address := range unmapped {
		area, _ := memorymap.MapAddress(address)
		if area != memorymap.Undefined {
			t.Errorf("address %#08x mapped to %s (wanted undefined)", address, area)
		}
	}
}
