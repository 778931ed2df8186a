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

package cpu

import (
	"github.com/jetsetilly/gophercody/hardware/cpu/instructions"
)

// effective is the result of resolving an addressing mode
type effective struct {
	// effective address of the operand. for the Immediate addressing mode
	// this is the address of the operand byte in the instruction stream
	address uint16

	// destination of a branch. Relative and ZeroPageRelative only
	target uint16
}

type resolver func(mc *CPU) effective

type operator func(mc *CPU, ea effective)

// dispatch is an entry in the CPU's dispatch table
type dispatch struct {
	defn    *instructions.Definition
	resolve resolver
	operate operator
}

var addressingModes = map[instructions.AddressingMode]resolver{
	instructions.Implied:                 (*CPU).implied,
	instructions.Accumulator:             (*CPU).implied,
	instructions.Immediate:               (*CPU).immediate,
	instructions.Relative:                (*CPU).relative,
	instructions.ZeroPage:                (*CPU).zeroPage,
	instructions.ZeroPageIndexedX:        (*CPU).zeroPageIndexedX,
	instructions.ZeroPageIndexedY:        (*CPU).zeroPageIndexedY,
	instructions.ZeroPageIndirect:        (*CPU).zeroPageIndirect,
	instructions.IndexedIndirect:         (*CPU).indexedIndirect,
	instructions.IndirectIndexed:         (*CPU).indirectIndexed,
	instructions.Absolute:                (*CPU).absolute,
	instructions.AbsoluteIndexedX:        (*CPU).absoluteIndexedX,
	instructions.AbsoluteIndexedY:        (*CPU).absoluteIndexedY,
	instructions.Indirect:                (*CPU).indirect,
	instructions.AbsoluteIndexedIndirect: (*CPU).absoluteIndexedIndirect,
	instructions.ZeroPageRelative:        (*CPU).zeroPageRelative,
}

// operand8 reads a single byte operand from the instruction stream
func (mc *CPU) operand8() uint8 {
	v := mc.readPC()
	mc.LastResult.InstructionData = uint16(v)
	return v
}

// operand16 reads a two byte operand from the instruction stream
func (mc *CPU) operand16() uint16 {
	lo := mc.readPC()
	hi := mc.readPC()
	v := (uint16(hi) << 8) | uint16(lo)
	mc.LastResult.InstructionData = v
	return v
}

// indexed adds the index to the base address and notes whether a page has
// been crossed. the page fault only counts for page sensitive instructions
func (mc *CPU) indexed(base uint16, index uint8) uint16 {
	address := base + uint16(index)
	if mc.LastResult.Defn.PageSensitive {
		mc.LastResult.PageFault = base&0xff00 != address&0xff00
	}
	return address
}

func (mc *CPU) implied() effective {
	return effective{}
}

func (mc *CPU) immediate() effective {
	ea := effective{address: mc.PC.Address()}
	mc.operand8()
	return ea
}

func (mc *CPU) relative() effective {
	offset := mc.operand8()
	return effective{target: mc.PC.Address() + uint16(int8(offset))}
}

func (mc *CPU) zeroPage() effective {
	return effective{address: uint16(mc.operand8())}
}

func (mc *CPU) zeroPageIndexedX() effective {
	return effective{address: uint16(mc.operand8() + mc.X.Value())}
}

func (mc *CPU) zeroPageIndexedY() effective {
	return effective{address: uint16(mc.operand8() + mc.Y.Value())}
}

func (mc *CPU) zeroPageIndirect() effective {
	return effective{address: mc.read16ZeroPage(mc.operand8())}
}

func (mc *CPU) indexedIndirect() effective {
	return effective{address: mc.read16ZeroPage(mc.operand8() + mc.X.Value())}
}

func (mc *CPU) indirectIndexed() effective {
	base := mc.read16ZeroPage(mc.operand8())
	return effective{address: mc.indexed(base, mc.Y.Value())}
}

func (mc *CPU) absolute() effective {
	return effective{address: mc.operand16()}
}

func (mc *CPU) absoluteIndexedX() effective {
	return effective{address: mc.indexed(mc.operand16(), mc.X.Value())}
}

func (mc *CPU) absoluteIndexedY() effective {
	return effective{address: mc.indexed(mc.operand16(), mc.Y.Value())}
}

// the 65C02 does not have the page wrapping bug of the NMOS 6502 when
// reading the indirect address
func (mc *CPU) indirect() effective {
	return effective{address: mc.read16(mc.operand16())}
}

func (mc *CPU) absoluteIndexedIndirect() effective {
	return effective{address: mc.read16(mc.operand16() + mc.X.Address())}
}

func (mc *CPU) zeroPageRelative() effective {
	zp := mc.readPC()
	offset := mc.readPC()
	mc.LastResult.InstructionData = (uint16(offset) << 8) | uint16(zp)
	return effective{
		address: uint16(zp),
		target:  mc.PC.Address() + uint16(int8(offset)),
	}
}
