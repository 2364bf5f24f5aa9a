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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. It works like
// Errorf() from the fmt package, taking a formatting pattern and placeholder
// values, but the pattern string is retained and can later be matched
// against.
//
// The Is() function checks whether an error was created with a specific
// pattern:
//
//	e := curated.Errorf("uart: packet too long (%d bytes)", n)
//
//	if curated.Is(e, "uart: packet too long (%d bytes)") {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks whether the pattern occurs
// anywhere in the error chain, rather than only at the outermost layer.
//
// The IsAny() function answers whether the error is curated at all. An
// uncurated error is one created by some other package; how to handle such
// an error is up to the caller but generally it should be treated as
// unexpected.
package curated
