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

// Package usbuart implements the packetized USB UART peripheral of the
// ibex_soc. The CPU side of the peripheral is word-oriented: TX data is
// pushed to a FIFO one 32-bit word at a time and RX data is popped the same
// way. The host side is packet-oriented: flush events delimit TX packets and
// received data arrives as discrete packets queued for the CPU to drain.
//
// A TX flush happens in one of four ways: a byte matching the flush
// character is written (char flush), the FIFO has been idle for a number of
// cycles (timeout flush), the FIFO reaches the threshold level (threshold
// flush), or software pulses the tx_flush control bit. The first three are
// gated by their respective control register enable bits.
package usbuart

import (
	"encoding/binary"
	"fmt"

	"github.com/squirrelhw/ibexsoc/hardware/memory/addresses"
	"github.com/squirrelhw/ibexsoc/logger"
)

// Register offsets inside the USB UART area.
const (
	TxData = 0x00
	RxData = 0x04
	RxLen  = 0x08
	Status = 0x0c
	Ctrl   = 0x10
)

// Hardware parameters. The FIFO depth bounds the tx_level status field and
// the RX queue depth bounds the rx_packets field (both 4 bits wide).
const (
	FIFODepth    = 16
	RxQueueDepth = 15

	// char flush triggers on newline, matching the auto-flush behaviour the
	// echo firmware relies on
	FlushChar = byte('\n')

	// cycles of TX inactivity before a timeout flush
	FlushTimeout = 64

	// FIFO level at which a threshold flush triggers
	FlushThreshold = 8
)

// UART implements the USB UART peripheral.
type UART struct {
	ctrl uint32

	// bytes of the TX packet being assembled. txLevel is the number of whole
	// words pushed since the last flush and is what the status register
	// reports; it is not derivable from len(tx) after a char flush
	tx      []byte
	txLevel int

	// cycles since the last TX FIFO activity
	txIdle int

	// packets flushed to the host side
	packets [][]byte
	sink    func([]byte)

	// packets queued for the CPU to drain. rxOffset is the byte position of
	// the next word of the head packet
	rx       [][]byte
	rxOffset int

	// host-side feed. drained into the rx queue when the CPU polls the
	// status register, so that peripheral state only mutates on the bus
	// master's goroutine
	feed chan []byte
}

// NewUART is the preferred method of initialisation of the UART type.
func NewUART() *UART {
	return &UART{
		feed: make(chan []byte, RxQueueDepth),
	}
}

func (ua *UART) String() string {
	return fmt.Sprintf("ctrl=%#02x level=%d rx=%d packets", ua.ctrl, ua.txLevel, len(ua.rx))
}

// SetSink attaches a function to receive TX packets as they are flushed, in
// addition to their accumulation in the Packets() list.
func (ua *UART) SetSink(sink func([]byte)) {
	ua.sink = sink
}

// Packets returns every TX packet flushed so far.
func (ua *UART) Packets() [][]byte {
	return ua.packets
}

// Feed queues a packet for reception by the CPU. Returns false if the feed
// queue is full and the packet has been dropped. Safe to call from a
// goroutine other than the bus master's.
func (ua *UART) Feed(p []byte) bool {
	select {
	case ua.feed <- p:
		return true
	default:
		return false
	}
}

// Tick the peripheral by the given number of cycles. Drives the timeout
// flush trigger.
func (ua *UART) Tick(cycles int) {
	if len(ua.tx) == 0 {
		return
	}

	ua.txIdle += cycles
	if ua.ctrl&addresses.UARTCtrlTimeoutFlush == addresses.UARTCtrlTimeoutFlush && ua.txIdle >= FlushTimeout {
		ua.flush(len(ua.tx))
	}
}

// Read the register at the given offset into the USB UART area.
func (ua *UART) Read(offset uint32) uint32 {
	switch offset {
	case RxData:
		return ua.rxWord()
	case RxLen:
		if len(ua.rx) == 0 {
			return 0
		}
		return uint32(len(ua.rx[0]))
	case Status:
		ua.drainFeed()
		return ua.Status()
	case Ctrl:
		// pulse bits always read back as zero
		return ua.ctrl
	}

	return 0
}

// Write the register at the given offset into the USB UART area.
func (ua *UART) Write(offset uint32, data uint32) {
	switch offset {
	case TxData:
		ua.txWord(data)
	case Ctrl:
		ua.writeCtrl(data)
	}
}

// Status assembles the status register bitfield from the current FIFO and
// queue state. Unlike a bus read of the status register it does not drain
// the host-side feed, so it is also safe to use when peeking.
func (ua *UART) Status() uint32 {
	var status uint32

	if ua.txLevel == 0 {
		status |= addresses.UARTStatusTxEmpty
	}
	if ua.txLevel >= FIFODepth {
		status |= addresses.UARTStatusTxFull
	}
	if len(ua.rx) > 0 {
		status |= addresses.UARTStatusRxValid
	}
	if len(ua.rx) >= RxQueueDepth {
		status |= addresses.UARTStatusRxFull
	}

	status |= (uint32(ua.txLevel) & addresses.UARTStatusTxLevelMask) << addresses.UARTStatusTxLevelShift
	status |= (uint32(len(ua.rx)) & addresses.UARTStatusRxPacketsMask) << addresses.UARTStatusRxPacketsShift

	return status
}

func (ua *UART) txWord(data uint32) {
	if ua.ctrl&addresses.UARTCtrlTxEnable != addresses.UARTCtrlTxEnable {
		logger.Log("usbuart", "TX write while disabled")
		return
	}

	if ua.txLevel >= FIFODepth {
		logger.Log("usbuart", "TX FIFO overflow")
		return
	}

	var w [4]byte
	binary.LittleEndian.PutUint32(w[:], data)
	ua.tx = append(ua.tx, w[:]...)
	ua.txLevel++
	ua.txIdle = 0

	if ua.ctrl&addresses.UARTCtrlCharFlushEn == addresses.UARTCtrlCharFlushEn {
		// flush at the first flush character in the word, truncating the
		// packet there. the bytes after it are padding and are dropped
		for i, b := range w {
			if b == FlushChar {
				ua.flush(len(ua.tx) - 4 + i + 1)
				return
			}
		}
	}

	if ua.ctrl&addresses.UARTCtrlThreshFlushEn == addresses.UARTCtrlThreshFlushEn && ua.txLevel >= FlushThreshold {
		ua.flush(len(ua.tx))
	}
}

// flush the first n bytes of the TX buffer to the host side. any remaining
// bytes are dropped.
func (ua *UART) flush(n int) {
	if n <= 0 {
		return
	}

	p := make([]byte, n)
	copy(p, ua.tx)
	ua.packets = append(ua.packets, p)
	ua.tx = ua.tx[:0]
	ua.txLevel = 0
	ua.txIdle = 0

	if ua.sink != nil {
		ua.sink(p)
	}
}

func (ua *UART) writeCtrl(data uint32) {
	const pulseBits = addresses.UARTCtrlTxFlush | addresses.UARTCtrlRxFlush | addresses.UARTCtrlTxClear

	ua.ctrl = data &^ pulseBits

	if data&addresses.UARTCtrlTxFlush == addresses.UARTCtrlTxFlush {
		ua.flush(len(ua.tx))
	}

	if data&addresses.UARTCtrlRxFlush == addresses.UARTCtrlRxFlush {
		ua.rx = ua.rx[:0]
		ua.rxOffset = 0
	}

	if data&addresses.UARTCtrlTxClear == addresses.UARTCtrlTxClear {
		ua.tx = ua.tx[:0]
		ua.txLevel = 0
	}
}

func (ua *UART) rxWord() uint32 {
	if len(ua.rx) == 0 {
		logger.Log("usbuart", "RX read from empty queue")
		return 0
	}

	head := ua.rx[0]

	var w [4]byte
	copy(w[:], head[ua.rxOffset:])
	word := binary.LittleEndian.Uint32(w[:])

	ua.rxOffset += 4
	if ua.rxOffset >= len(head) {
		// head packet fully drained
		ua.rx = ua.rx[1:]
		ua.rxOffset = 0
	}

	return word
}

func (ua *UART) drainFeed() {
	for {
		select {
		case p := <-ua.feed:
			if len(p) == 0 {
				// a zero length packet never leaves the host side
				continue
			}
			if ua.ctrl&addresses.UARTCtrlRxEnable != addresses.UARTCtrlRxEnable {
				logger.Log("usbuart", "RX packet dropped while disabled")
				continue
			}
			if len(ua.rx) >= RxQueueDepth {
				logger.Log("usbuart", "RX queue overflow")
				continue
			}
			ua.rx = append(ua.rx, p)
		default:
			return
		}
	}
}
