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

package via

import (
	"fmt"

	"github.com/jetsetilly/gophercody/logger"
)

// Register offsets. The sixteen registers are mirrored throughout the memory
// area the VIA is mapped to.
const (
	ORB  = 0x00
	ORA  = 0x01
	DDRB = 0x02
	DDRA = 0x03
	T1CL = 0x04
	T1CH = 0x05
	T1LL = 0x06
	T1LH = 0x07
	T2CL = 0x08
	T2CH = 0x09
	SR   = 0x0a
	ACR  = 0x0b
	PCR  = 0x0c
	IFR  = 0x0d
	IER  = 0x0e

	// same as ORA but with no handshake
	ORANH = 0x0f
)

// NumRegisters is the number of distinct registers in the VIA.
const NumRegisters = 16

// Interrupt flags in the IFR and IER registers.
const (
	FlagTimer1 = 0x40
	FlagAny    = 0x80
)

// the bit in the ACR register that selects free-run mode for timer 1
const acrFreeRun = 0x40

// PortA is implemented by the device connected to port A. The output value
// is the content of ORA masked by DDRA.
type PortA interface {
	ReadPortA(output uint8) uint8
}

// VIA is a memory area on the bus.
type VIA struct {
	label string
	portA PortA

	registers [NumRegisters]uint8

	// timer 1 counter. the counter is an int so that underflow is easily
	// detected but is always in the range of a uint16 between calls to Tick()
	counter int
	latch   uint16
	armed   bool

	ifr uint8
	ier uint8
}

// NewVIA is the preferred method of initialisation for the VIA type. The portA
// argument can be nil, in which case all port A inputs read as one.
func NewVIA(label string, portA PortA) *VIA {
	return &VIA{
		label: label,
		portA: portA,
	}
}

func (v *VIA) String() string {
	return fmt.Sprintf("%s: t1=%04x latch=%04x ifr=%02x ier=%02x", v.label, v.counter, v.latch, v.readIFR(), v.ier)
}

// Label implements the memory.Area interface.
func (v *VIA) Label() string {
	return v.label
}

// Reset the VIA to its power-on state.
func (v *VIA) Reset() {
	v.registers = [NumRegisters]uint8{}
	v.counter = 0
	v.latch = 0
	v.armed = false
	v.ifr = 0
	v.ier = 0
}

func (v *VIA) readIFR() uint8 {
	f := v.ifr & 0x7f
	if f&v.ier != 0 {
		f |= FlagAny
	}
	return f
}

func (v *VIA) readPortA() uint8 {
	ddr := v.registers[DDRA]
	output := v.registers[ORA] & ddr
	if v.portA == nil {
		return ^ddr | output
	}
	return (v.portA.ReadPortA(output) &^ ddr) | output
}

// Read implements the memory.Area interface.
func (v *VIA) Read(offset uint16) uint8 {
	offset &= NumRegisters - 1
	if offset == T1CL {
		v.ifr &^= FlagTimer1
		return uint8(v.counter)
	}
	return v.Peek(offset)
}

// Peek implements the memory.Peeker interface.
func (v *VIA) Peek(offset uint16) uint8 {
	offset &= NumRegisters - 1
	switch offset {
	case ORA, ORANH:
		return v.readPortA()
	case T1CL:
		return uint8(v.counter)
	case T1CH:
		return uint8(v.counter >> 8)
	case T1LL:
		return uint8(v.latch)
	case T1LH:
		return uint8(v.latch >> 8)
	case IFR:
		return v.readIFR()
	case IER:
		return v.ier | 0x80
	}
	return v.registers[offset]
}

// Write implements the memory.Area interface.
func (v *VIA) Write(offset uint16, data uint8) {
	offset &= NumRegisters - 1
	switch offset {
	case ORA, ORANH:
		v.registers[ORA] = data
	case T1CL, T1LL:
		v.latch = (v.latch & 0xff00) | uint16(data)
	case T1CH:
		v.latch = (v.latch & 0x00ff) | (uint16(data) << 8)
		v.counter = int(v.latch)
		v.ifr &^= FlagTimer1
		v.armed = true
	case T1LH:
		v.latch = (v.latch & 0x00ff) | (uint16(data) << 8)
		v.ifr &^= FlagTimer1
	case IFR:
		v.ifr &^= data & 0x7f
	case IER:
		if data&0x80 == 0x80 {
			v.ier |= data & 0x7f
		} else {
			v.ier &^= data & 0x7f
		}
		logger.Logf(logger.Allow, "via", "%s: IER %02x", v.label, v.ier)
	default:
		v.registers[offset] = data
	}
}

// Poke implements the memory.Poker interface. VIA registers cannot be poked
// and the data is discarded.
func (v *VIA) Poke(_ uint16, _ uint8) {
}

// Tick advances timer 1 by the number of cycles.
func (v *VIA) Tick(cycles int) {
	v.counter -= cycles
	for v.counter < 0 {
		if v.registers[ACR]&acrFreeRun == acrFreeRun {
			// the reload takes two cycles longer than the latch value
			v.ifr |= FlagTimer1
			v.counter += int(v.latch) + 2
		} else {
			if v.armed {
				v.ifr |= FlagTimer1
				v.armed = false
			}
			v.counter += 0x10000
		}
	}
}

// IRQ returns true if the VIA is asserting the IRQ line.
func (v *VIA) IRQ() bool {
	return v.ifr&v.ier&0x7f != 0
}
