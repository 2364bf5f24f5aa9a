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

// Package terminal puts the host terminal into cbreak mode so that the TERM
// mode of the ibexsoc program can forward keystrokes to the simulated USB
// UART as they are typed, rather than line by line.
//
// Restore() must be called before the program exits or the host terminal
// will be left in cbreak mode.
package terminal

import (
	"os"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"

	"github.com/squirrelhw/ibexsoc/curated"
)

// Terminal represents the host terminal attached to the input file.
type Terminal struct {
	input *os.File

	// terminal attributes as they were before cbreak mode was entered
	canAttr    unix.Termios
	cbreakAttr unix.Termios
}

// New is the preferred method of initialisation of the Terminal type. The
// input file is usually os.Stdin.
func New(input *os.File) (*Terminal, error) {
	if input == nil {
		return nil, curated.Errorf("terminal: an input file is required")
	}

	t := &Terminal{input: input}

	err := termios.Tcgetattr(input.Fd(), &t.canAttr)
	if err != nil {
		return nil, curated.Errorf("terminal: %v", err)
	}

	t.cbreakAttr = t.canAttr
	termios.Cfmakecbreak(&t.cbreakAttr)

	return t, nil
}

// CBreak puts the terminal into cbreak mode: input is available byte by
// byte, with echoing off.
func (t *Terminal) CBreak() error {
	err := termios.Tcsetattr(t.input.Fd(), termios.TCSANOW, &t.cbreakAttr)
	if err != nil {
		return curated.Errorf("terminal: %v", err)
	}
	return nil
}

// Restore the terminal attributes saved when the Terminal was created.
func (t *Terminal) Restore() error {
	err := termios.Tcsetattr(t.input.Fd(), termios.TCSANOW, &t.canAttr)
	if err != nil {
		return curated.Errorf("terminal: %v", err)
	}
	return nil
}

// ReadByte blocks until one byte of input is available.
func (t *Terminal) ReadByte() (byte, error) {
	var b [1]byte
	n, err := t.input.Read(b[:])
	if err != nil {
		return 0, curated.Errorf("terminal: %v", err)
	}
	if n == 0 {
		return 0, curated.Errorf("terminal: end of input")
	}
	return b[0], nil
}
