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

// Package memorymap describes the address space of the ibex_soc. The
// different areas of memory are identified by the Area type. The MapAddress()
// function converts an absolute bus address into an Area and the offset of
// the address within that area.
//
// The addresses of individual registers inside each area are defined in the
// addresses package.
package memorymap

// Area represents the different areas of memory.
type Area int

func (a Area) String() string {
	switch a {
	case ITCM:
		return "ITCM"
	case DTCM:
		return "DTCM"
	case Timer:
		return "Timer"
	case SimCtrl:
		return "SimCtrl"
	case USBUART:
		return "USBUART"
	}

	return "undefined"
}

// The different memory areas in the ibex_soc.
const (
	Undefined Area = iota
	ITCM
	DTCM
	Timer
	SimCtrl
	USBUART
)

// The origin and memory top for each area of memory. These are architectural
// facts of the SoC, not tunables.
const (
	OriginITCM    = uint32(0x00010000)
	MemtopITCM    = uint32(0x00013fff)
	OriginDTCM    = uint32(0x00020000)
	MemtopDTCM    = uint32(0x00023fff)
	OriginTimer   = uint32(0x10000000)
	MemtopTimer   = uint32(0x1000000f)
	OriginSimCtrl = uint32(0x10001000)
	MemtopSimCtrl = uint32(0x1000100f)
	OriginUSBUART = uint32(0x10002000)
	MemtopUSBUART = uint32(0x10002013)
)

// SizeTCM is the size in bytes of each of the tightly-coupled memories (16KB).
const SizeTCM = uint32(0x4000)

// MapAddress returns the memory area an address falls within, along with the
// offset of the address inside that area. Returns the Undefined area for
// addresses outside of every area.
func MapAddress(address uint32) (Area, uint32) {
	switch {
	case address >= OriginITCM && address <= MemtopITCM:
		return ITCM, address - OriginITCM
	case address >= OriginDTCM && address <= MemtopDTCM:
		return DTCM, address - OriginDTCM
	case address >= OriginTimer && address <= MemtopTimer:
		return Timer, address - OriginTimer
	case address >= OriginSimCtrl && address <= MemtopSimCtrl:
		return SimCtrl, address - OriginSimCtrl
	case address >= OriginUSBUART && address <= MemtopUSBUART:
		return USBUART, address - OriginUSBUART
	}

	return Undefined, address
}
