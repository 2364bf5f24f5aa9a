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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient way of handling program modes (and
// sub-modes). A mode can be thought of as a command line "verb" with its own
// set of flags.
//
// For the ibexsoc program, modes select which firmware or host-side tool to
// run. For example:
//
//	ibexsoc echo -send "ping"
//	ibexsoc performance -duration 10s
//
// The basic pattern of usage is to initialise a Modes struct with the
// command line arguments, add sub-modes and flags, and call Parse():
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("HELLO", "ECHO", "TERM")
//
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		os.Exit(0)
//	case modalflag.ParseError:
//		fmt.Println(err)
//		os.Exit(10)
//	}
//
// After a successful parse, Mode() returns the selected sub-mode. Flags for
// the selected mode can then be added with the Add*() functions, followed by
// a further call to Parse(). The sequence can nest as deeply as the program
// requires.
//
// Help messages (in response to -help or -h) are handled automatically.
package modalflag
