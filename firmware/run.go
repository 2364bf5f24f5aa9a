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
	"time"

	"github.com/squirrelhw/ibexsoc/curated"
	"github.com/squirrelhw/ibexsoc/hal"
	"github.com/squirrelhw/ibexsoc/hardware"
)

// Program is a bare-metal test program. Programs halt the simulation when
// they are finished and so never return.
type Program func(*hal.HAL)

// Run launches a program on the simulated SoC and waits for it to halt. The
// program runs on its own goroutine, which is the sole bus master for the
// duration (and which remains parked in the halt spin after the simulation
// ends, as the real CPU would).
//
// The deadline is a safety net for a program that never halts; it is host
// time, not simulated time.
func Run(soc *hardware.SoC, prog Program, deadline time.Duration) error {
	h := hal.New(soc)
	soc.SetTrapTarget(h)

	go prog(h)

	select {
	case <-soc.Halted():
		return nil
	case <-time.After(deadline):
		return curated.Errorf("firmware: no halt after %v", deadline)
	}
}
