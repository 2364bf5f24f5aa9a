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

package firmware_test

import (
	"strings"
	"testing"
	"time"

	"github.com/squirrelhw/ibexsoc/firmware"
	"github.com/squirrelhw/ibexsoc/hal"
	"github.com/squirrelhw/ibexsoc/hardware"
	"github.com/squirrelhw/ibexsoc/test"
)

const deadline = 10 * time.Second

func TestHello(t *testing.T) {
	soc := hardware.NewSoC()

	err := firmware.Run(soc, firmware.Hello, deadline)
	test.ExpectedSuccess(t, err)

	lines := soc.SimCtrl.Lines()
	test.Equate(t, lines[0], "Hello from ibex_soc!")
	test.Equate(t, lines[len(lines)-1], "Test PASSED!")

	// the timer dump is a fixed width hex pair
	var timerLine string
	for i, l := range lines {
		if l == "Timer value:" {
			timerLine = lines[i+1]
		}
	}
	if len(timerLine) != 21 || !strings.HasPrefix(timerLine, "0x") {
		t.Errorf("unexpected timer dump line: %q", timerLine)
	}
}

func TestUsbEchoTx(t *testing.T) {
	soc := hardware.NewSoC()

	err := firmware.Run(soc, firmware.UsbEcho, deadline)
	test.ExpectedSuccess(t, err)

	// the TX phase flushes "Hello USB!\n" on the newline
	packets := soc.UART.Packets()
	test.Equate(t, len(packets), 1)
	test.Equate(t, string(packets[0]), "Hello USB!\n")

	// phase markers in order
	lines := soc.SimCtrl.Lines()
	test.Equate(t, lines[0], "USB echo test")
	test.Equate(t, lines[1], "T")
	test.Equate(t, lines[2], "R")
	test.Equate(t, lines[3], "Done")
}

func TestUsbEchoLoopback(t *testing.T) {
	soc := hardware.NewSoC()

	// queue a packet before the program starts. it is drained into the RX
	// queue at the first status poll of the echo loop
	test.Equate(t, soc.UART.Feed([]byte("loop me\n")), true)

	err := firmware.Run(soc, firmware.UsbEcho, deadline)
	test.ExpectedSuccess(t, err)

	// two packets on the host side: the TX phase greeting and the loopback.
	// the loopback is the fed packet's words, so the char flush trigger
	// fired on its newline before the software flush could pad it
	packets := soc.UART.Packets()
	test.Equate(t, len(packets), 2)
	test.Equate(t, string(packets[0]), "Hello USB!\n")
	test.Equate(t, string(packets[1]), "loop me\n")
}

func TestRunDeadline(t *testing.T) {
	soc := hardware.NewSoC()

	// a program that never halts trips the deadline
	err := firmware.Run(soc, func(h *hal.HAL) {
		select {}
	}, 10*time.Millisecond)
	test.ExpectedFailure(t, err)
}
