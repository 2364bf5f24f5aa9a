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

package memory_test

import (
	"testing"

	"github.com/squirrelhw/ibexsoc/hardware/memory"
	"github.com/squirrelhw/ibexsoc/test"
)

func TestReadWrite(t *testing.T) {
	tcm := memory.NewTCM("ITCM")
	test.Equate(t, tcm.Label(), "ITCM")

	tcm.Write32(0x100, 0xdeadbeef)
	test.Equate(t, tcm.Read32(0x100), uint32(0xdeadbeef))

	// words are stored little-endian
	b, err := tcm.Peek(0x100)
	test.ExpectedSuccess(t, err)
	test.Equate(t, b, byte(0xef))

	// unaligned accesses are forced to the word boundary
	test.Equate(t, tcm.Read32(0x102), uint32(0xdeadbeef))
}

func TestPoke(t *testing.T) {
	tcm := memory.NewTCM("DTCM")

	err := tcm.Poke(0x0, 0x41)
	test.ExpectedSuccess(t, err)
	test.Equate(t, tcm.Read32(0x0), uint32(0x00000041))

	err = tcm.Poke(0x4000, 0x41)
	test.ExpectedFailure(t, err)

	_, err = tcm.Peek(0x4000)
	test.ExpectedFailure(t, err)
}
