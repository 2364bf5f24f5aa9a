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

package performance

import (
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"github.com/squirrelhw/ibexsoc/hal"
	"github.com/squirrelhw/ibexsoc/hardware"
	"github.com/squirrelhw/ibexsoc/hardware/memory/addresses"
	"github.com/squirrelhw/ibexsoc/statsview"
)

// number of idle polls per Echo() round during the measurement. small enough
// that the bus-master goroutine notices the end of the measurement promptly.
const echoRound = 1000

// the synthetic packet fed to the RX queue. two words plus a partial word,
// so the loopback exercises the partial word path as well.
const payload = "performance"

// Check measures the throughput of the USB UART echo path. A feeder keeps
// the RX queue topped up with synthetic packets while the echo loop runs;
// after the duration has elapsed the achieved packet and word rates are
// written to output.
//
// CPU and memory profiles are written to cpu.profile and mem.profile when
// requested. The launchStats argument starts the statsview server, if the
// project has been built with the statsview build tag.
func Check(output io.Writer, profileCPU bool, profileMem bool, launchStats bool, duration time.Duration) error {
	soc := hardware.NewSoC()
	h := hal.New(soc)

	if launchStats {
		if statsview.Available() {
			statsview.Launch(output)
		} else {
			output.Write([]byte("statsview not available in this build\n"))
		}
	}

	// enable the UART without automatic flush triggers. the echo loop ends
	// every packet with a software flush
	h.SetControl(addresses.UARTCtrlTxEnable | addresses.UARTCtrlRxEnable)

	var done int32

	// feeder goroutine. Feed() is safe to call off the bus-master goroutine
	// and fails harmlessly when the queue is full
	go func() {
		for atomic.LoadInt32(&done) == 0 {
			if !soc.UART.Feed([]byte(payload)) {
				time.Sleep(time.Millisecond)
			}
		}
	}()

	type tally struct {
		packets int
		words   int
	}
	result := make(chan tally)

	// the bus master. repeated short echo rounds rather than one long one so
	// that the done flag is checked regularly
	go func() {
		var t tally
		for atomic.LoadInt32(&done) == 0 {
			p, w := h.Echo(echoRound)
			t.packets += p
			t.words += w
		}
		result <- t
	}()

	var t tally

	err := cpuProfile(profileCPU, "cpu.profile", func() error {
		time.Sleep(duration)
		atomic.StoreInt32(&done, 1)
		t = <-result
		return nil
	})
	if err != nil {
		return err
	}

	err = memProfile(profileMem, "mem.profile")
	if err != nil {
		return err
	}

	secs := duration.Seconds()
	fmt.Fprintf(output, "%d packets (%d words) echoed in %v\n", t.packets, t.words, duration)
	fmt.Fprintf(output, "%.0f packets/sec; %.0f words/sec\n", float64(t.packets)/secs, float64(t.words)/secs)

	return nil
}
