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
	"github.com/squirrelhw/ibexsoc/hardware/memory/addresses"
)

// EchoIdleTimeout is the number of consecutive idle polls after which the
// echo loop gives up waiting for more RX data. The unit is poll iterations,
// not wall-clock time.
const EchoIdleTimeout = 50000

// TX and RX enabled, with the character flush trigger so that a newline
// flushes the TX FIFO automatically.
const echoUARTEnable = addresses.UARTCtrlTxEnable | addresses.UARTCtrlRxEnable | addresses.UARTCtrlCharFlushEn

// UsbEcho exercises both directions of the USB UART data path:
//
//  1. TX: writes "Hello USB!\n" to the USB UART (auto-flushes on newline)
//  2. RX: polls for incoming packets and echoes them back with a software
//     flush per packet
//
// Phase markers are written to the console so that a test harness can watch
// for them: "T" when the TX phase is complete and "R" when the RX loopback
// is ready.
func UsbEcho(h *hal.HAL) {
	// boot message via simctrl so a harness waiting for CPU output sees life
	h.PutString("USB echo test")

	h.SetControl(echoUARTEnable)

	// TX phase
	h.WriteString("Hello USB!\n")
	h.PutString("T")

	// RX loopback phase
	h.PutString("R")
	h.Echo(EchoIdleTimeout)

	h.PutString("Done")
	h.Halt()
}
