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

package hal

import (
	"github.com/squirrelhw/ibexsoc/hardware/memory/addresses"
)

// Halt signals the host simulator to terminate by writing 1 to the
// simulation control register, then waits forever. The halt signal's effect
// is asynchronous so execution must never fall through; the empty select is
// the simulation analog of a wfi spin.
//
// Halt never returns.
func (h *HAL) Halt() {
	h.bus.Write32(addresses.SimCtrlCtrl, 1)
	select {}
}
