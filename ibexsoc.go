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

package main

import (
	"bytes"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/bradleyjkemp/memviz"

	"github.com/squirrelhw/ibexsoc/firmware"
	"github.com/squirrelhw/ibexsoc/hal"
	"github.com/squirrelhw/ibexsoc/hardware"
	"github.com/squirrelhw/ibexsoc/hardware/memory/addresses"
	"github.com/squirrelhw/ibexsoc/logger"
	"github.com/squirrelhw/ibexsoc/modalflag"
	"github.com/squirrelhw/ibexsoc/performance"
	"github.com/squirrelhw/ibexsoc/terminal"
	"github.com/squirrelhw/ibexsoc/version"
)

// how long to wait (in host time) for a firmware program to halt the
// simulation before giving up.
const runDeadline = 60 * time.Second

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes("HELLO", "ECHO", "TERM", "PERFORMANCE", "MAP", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)
	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "HELLO":
		err = hello(md)
	case "ECHO":
		err = echo(md)
	case "TERM":
		err = term(md)
	case "PERFORMANCE":
		err = perform(md)
	case "MAP":
		err = mapDump(md)
	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %v\n", md, err)
		os.Exit(20)
	}
}

// common flags for the modes that run a firmware program.
func addLogFlag(md *modalflag.Modes) *bool {
	return md.AddBool("log", false, "echo log entries to stderr")
}

func parseMode(md *modalflag.Modes, useLog *bool) (modalflag.ParseResult, error) {
	p, err := md.Parse()
	if p == modalflag.ParseContinue && *useLog {
		logger.SetEcho(os.Stderr)
	}
	return p, err
}

func hello(md *modalflag.Modes) error {
	md.NewMode()
	useLog := addLogFlag(md)

	p, err := parseMode(md, useLog)
	if p != modalflag.ParseContinue {
		return err
	}

	soc := hardware.NewSoC()
	soc.AttachConsole(os.Stdout)

	return firmware.Run(soc, firmware.Hello, runDeadline)
}

func echo(md *modalflag.Modes) error {
	md.NewMode()
	useLog := addLogFlag(md)
	send := md.AddString("send", "ping\n", "text to feed to the USB UART RX queue")

	p, err := parseMode(md, useLog)
	if p != modalflag.ParseContinue {
		return err
	}

	soc := hardware.NewSoC()
	soc.AttachConsole(os.Stdout)
	soc.UART.SetSink(func(p []byte) {
		fmt.Printf("usb <- %d bytes  % 02x  %q\n", len(p), p, p)
	})

	if *send != "" {
		soc.UART.Feed([]byte(*send))
	}

	return firmware.Run(soc, firmware.UsbEcho, runDeadline)
}

func term(md *modalflag.Modes) error {
	md.NewMode()
	useLog := addLogFlag(md)

	p, err := parseMode(md, useLog)
	if p != modalflag.ParseContinue {
		return err
	}

	trm, err := terminal.New(os.Stdin)
	if err != nil {
		return err
	}

	err = trm.CBreak()
	if err != nil {
		return err
	}
	defer trm.Restore()

	soc := hardware.NewSoC()
	soc.UART.SetSink(func(p []byte) {
		os.Stdout.Write(p)
	})

	fmt.Println("type lines to send to the USB UART. ctrl-c to quit")

	// the bus master. repeated echo rounds with a short pause between them
	// so that typed input gets a chance to arrive
	go func() {
		h := hal.New(soc)
		h.SetControl(addresses.UARTCtrlTxEnable | addresses.UARTCtrlRxEnable)
		for {
			h.Echo(firmware.EchoIdleTimeout)
			time.Sleep(5 * time.Millisecond)
		}
	}()

	// input goroutine. completed lines are fed to the RX queue
	endOfInput := make(chan error, 1)
	go func() {
		var line []byte
		for {
			b, err := trm.ReadByte()
			if err != nil {
				endOfInput <- err
				return
			}

			// echoing is off in cbreak mode
			os.Stdout.Write([]byte{b})

			line = append(line, b)
			if b == '\n' || b == '\r' {
				soc.UART.Feed(line)
				line = nil
			}
		}
	}()

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	select {
	case <-intChan:
		fmt.Println()
		return nil
	case err := <-endOfInput:
		return err
	}
}

func perform(md *modalflag.Modes) error {
	md.NewMode()
	useLog := addLogFlag(md)
	duration := md.AddDuration("duration", 5*time.Second, "duration of measurement")
	profCPU := md.AddBool("cpuprofile", false, "write cpu.profile")
	profMem := md.AddBool("memprofile", false, "write mem.profile")
	stats := md.AddBool("statsview", false, "launch statsview server (requires statsview build tag)")

	p, err := parseMode(md, useLog)
	if p != modalflag.ParseContinue {
		return err
	}

	return performance.Check(os.Stdout, *profCPU, *profMem, *stats, *duration)
}

func mapDump(md *modalflag.Modes) error {
	md.NewMode()
	outFile := md.AddString("o", "", "write dot output to file (default stdout)")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	soc := hardware.NewSoC()

	buf := &bytes.Buffer{}
	memviz.Map(buf, soc)

	if *outFile == "" {
		fmt.Println(buf.String())
		return nil
	}

	return os.WriteFile(*outFile, buf.Bytes(), 0644)
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	ver, rev, _ := version.Version()
	fmt.Printf("%s %s (%s)\n", version.ApplicationName, ver, rev)

	return nil
}
