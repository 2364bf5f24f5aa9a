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

package simctrl_test

import (
	"testing"

	"github.com/squirrelhw/ibexsoc/hardware/simctrl"
	"github.com/squirrelhw/ibexsoc/test"
)

func putString(sc *simctrl.SimCtrl, s string) {
	for i := 0; i < len(s); i++ {
		sc.Write(simctrl.Out, uint32(s[i]))
	}
	sc.Write(simctrl.Out, uint32('\n'))
}

func TestLines(t *testing.T) {
	sc := simctrl.NewSimCtrl()

	tw := &test.Writer{}
	sc.Attach(tw)

	putString(sc, "USB echo test")
	putString(sc, "T")
	putString(sc, "R")

	lines := sc.Lines()
	test.Equate(t, len(lines), 3)
	test.Equate(t, lines[0], "USB echo test")
	test.Equate(t, lines[1], "T")
	test.Equate(t, lines[2], "R")

	// the attached writer sees the raw stream, newlines included
	test.Equate(t, tw.String(), "USB echo test\nT\nR\n")
}

func TestPartialLine(t *testing.T) {
	sc := simctrl.NewSimCtrl()

	// characters without a trailing newline do not form a line
	sc.Write(simctrl.Out, uint32('0'))
	sc.Write(simctrl.Out, uint32('x'))
	test.Equate(t, len(sc.Lines()), 0)

	sc.Write(simctrl.Out, uint32('\n'))
	test.Equate(t, len(sc.Lines()), 1)
	test.Equate(t, sc.Lines()[0], "0x")
}

func TestHalt(t *testing.T) {
	sc := simctrl.NewSimCtrl()

	select {
	case <-sc.Halted():
		t.Fatal("halted before any write to the control register")
	default:
	}

	// a write of zero is not a halt
	sc.Write(simctrl.Ctrl, 0)
	select {
	case <-sc.Halted():
		t.Fatal("halted on a write of zero")
	default:
	}

	sc.Write(simctrl.Ctrl, 1)
	select {
	case <-sc.Halted():
	default:
		t.Fatal("not halted on a write of one")
	}

	// a second halt write is harmless
	sc.Write(simctrl.Ctrl, 1)
}

func TestWriteOnly(t *testing.T) {
	sc := simctrl.NewSimCtrl()

	sc.Write(simctrl.Out, uint32('A'))
	test.Equate(t, sc.Read(simctrl.Out), uint32(0))
	test.Equate(t, sc.Read(simctrl.Ctrl), uint32(0))
}
