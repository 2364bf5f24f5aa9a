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

// Package addresses defines the register addresses and bitfields of the
// ibex_soc peripherals. These values are fixed by the hardware; they are
// compile-time constants, never runtime configuration.
package addresses

import "github.com/squirrelhw/ibexsoc/hardware/memory/memorymap"

// Timer registers. The 64-bit mtime counter and mtimecmp compare value are
// each exposed as two independently addressable 32-bit halves.
const (
	TimerMTime     = memorymap.OriginTimer + 0x00
	TimerMTimeH    = memorymap.OriginTimer + 0x04
	TimerMTimeCmp  = memorymap.OriginTimer + 0x08
	TimerMTimeCmpH = memorymap.OriginTimer + 0x0c
)

// Simulation control registers. A byte written to SimCtrlOut appears in the
// simulation log. Writing 1 to SimCtrlCtrl halts the simulation.
const (
	SimCtrlOut  = memorymap.OriginSimCtrl + 0x00
	SimCtrlCtrl = memorymap.OriginSimCtrl + 0x08
)

// USB UART registers.
const (
	UARTTxData = memorymap.OriginUSBUART + 0x00
	UARTRxData = memorymap.OriginUSBUART + 0x04
	UARTRxLen  = memorymap.OriginUSBUART + 0x08
	UARTStatus = memorymap.OriginUSBUART + 0x0c
	UARTCtrl   = memorymap.OriginUSBUART + 0x10
)

// USB UART status register bits. The status register is a snapshot; software
// must re-read it on every poll.
const (
	UARTStatusTxEmpty = uint32(0x00000001)
	UARTStatusTxFull  = uint32(0x00000002)
	UARTStatusRxValid = uint32(0x00000004)
	UARTStatusRxFull  = uint32(0x00000008)
)

// The tx_level and rx_packets fields of the status register.
const (
	UARTStatusTxLevelShift   = 4
	UARTStatusTxLevelMask    = uint32(0x0000000f)
	UARTStatusRxPacketsShift = 8
	UARTStatusRxPacketsMask  = uint32(0x0000000f)
)

// USB UART control register bits. The flush and clear bits are self-clearing
// pulses; they always read back as zero.
const (
	UARTCtrlTxEnable      = uint32(0x00000001)
	UARTCtrlRxEnable      = uint32(0x00000002)
	UARTCtrlCharFlushEn   = uint32(0x00000004)
	UARTCtrlTimeoutFlush  = uint32(0x00000008)
	UARTCtrlThreshFlushEn = uint32(0x00000010)
	UARTCtrlTxFlush       = uint32(0x00000020)
	UARTCtrlRxFlush       = uint32(0x00000040)
	UARTCtrlTxClear       = uint32(0x00000080)
)

// CanonicalSymbols lists the register addresses along with the canonical
// names for those addresses. Used for log messages and by the Peek/Poke
// debugging interface.
var CanonicalSymbols = map[uint32]string{
	TimerMTime:     "MTIME",
	TimerMTimeH:    "MTIMEH",
	TimerMTimeCmp:  "MTIMECMP",
	TimerMTimeCmpH: "MTIMECMPH",
	SimCtrlOut:     "SIM_OUT",
	SimCtrlCtrl:    "SIM_CTRL",
	UARTTxData:     "UART_TX",
	UARTRxData:     "UART_RX",
	UARTRxLen:      "UART_RXLEN",
	UARTStatus:     "UART_STATUS",
	UARTCtrl:       "UART_CTRL",
}
