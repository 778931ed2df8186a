// This file is part of Gophercody.
//
// Gophercody is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gophercody is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gophercody.  If not, see <https://www.gnu.org/licenses/>.

package memorymap

// Area represents the different areas of memory
type Area int

func (a Area) String() string {
	switch a {
	case RAM:
		return "RAM"
	case VIA:
		return "VIA"
	case Video:
		return "Video"
	case UART1:
		return "UART1"
	case UART2:
		return "UART2"
	case HighRAM:
		return "HighRAM"
	case ROM:
		return "ROM"
	}

	return "undefined"
}

// The different memory areas in the Cody Computer
const (
	Undefined Area = iota
	RAM
	VIA
	Video
	UART1
	UART2
	HighRAM
	ROM
)

// The origin and memory top for each area of memory.
const (
	OriginRAM     = uint16(0x0000)
	MemtopRAM     = uint16(0x9eff)
	OriginVIA     = uint16(0x9f00)
	MemtopVIA     = uint16(0x9fff)
	OriginVideo   = uint16(0xa000)
	MemtopVideo   = uint16(0xd47f)
	OriginUART1   = uint16(0xd480)
	MemtopUART1   = uint16(0xd49f)
	OriginUART2   = uint16(0xd4a0)
	MemtopUART2   = uint16(0xd4bf)
	OriginHighRAM = uint16(0xd4c0)
	MemtopHighRAM = uint16(0xdfff)
	OriginROM     = uint16(0xe000)
	MemtopROM     = uint16(0xffff)
)

// BankSelect is the address of the bank select register when the ROM area is
// banked. It takes the place of the first byte of HighRAM, which then starts
// at OriginHighRAM+1.
const BankSelect = OriginHighRAM

// Memtop is the top most address of memory.
const Memtop = uint16(0xffff)

// DefaultLoadAddress is where a binary is placed when no load address is given.
const DefaultLoadAddress = OriginROM

var areas = [...]struct {
	area   Area
	origin uint16
	memtop uint16
}{
	{RAM, OriginRAM, MemtopRAM},
	{VIA, OriginVIA, MemtopVIA},
	{Video, OriginVideo, MemtopVideo},
	{UART1, OriginUART1, MemtopUART1},
	{UART2, OriginUART2, MemtopUART2},
	{HighRAM, OriginHighRAM, MemtopHighRAM},
	{ROM, OriginROM, MemtopROM},
}

// MapAddress returns the area the address belongs to.
func MapAddress(address uint16) Area {
	for _, a := range areas {
		if address >= a.origin && address <= a.memtop {
			return a.area
		}
	}
	return Undefined
}

// IsArea returns true if the address is in the specificied area
func IsArea(address uint16, area Area) bool {
	return MapAddress(address) == area
}

// Range returns the origin and memtop of an area. The memtop and origin of
// the Undefined area are both zero.
func Range(area Area) (uint16, uint16) {
	for _, a := range areas {
		if a.area == area {
			return a.origin, a.memtop
		}
	}
	return 0, 0
}
