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

// Package firmware contains the bare-metal test programs of the ibex_soc,
// expressed as Go functions over the HAL. Each program is the software half
// of a simulation test: Hello exercises the console and timer, UsbEcho
// exercises both directions of the USB UART data path.
//
// Programs end by halting the simulation and so never return. The Run()
// function takes care of launching a program against a simulated SoC and
// waiting for the halt.
package firmware
