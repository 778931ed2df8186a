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

package instructions

import "fmt"

// FormatOperand returns the operand of an instruction in conventional 65C02
// assembler notation. The address is the address of the opcode and is used
// to resolve the destination of branch instructions. Data is the operand as
// read from memory, little-endian for two byte operands.
//
// For the ZeroPageRelative addressing mode the low byte of data is the zero
// page address and the high byte is the branch offset.
func (defn Definition) FormatOperand(address uint16, data uint16) string {
	switch defn.AddressingMode {
	case Implied:
		return ""
	case Accumulator:
		return "A"
	case Immediate:
		return fmt.Sprintf("#$%02x", data)
	case Relative:
		return fmt.Sprintf("$%04x", branchTarget(address, 2, uint8(data)))
	case ZeroPage:
		return fmt.Sprintf("$%02x", data)
	case ZeroPageIndexedX:
		return fmt.Sprintf("$%02x,X", data)
	case ZeroPageIndexedY:
		return fmt.Sprintf("$%02x,Y", data)
	case ZeroPageIndirect:
		return fmt.Sprintf("($%02x)", data)
	case IndexedIndirect:
		return fmt.Sprintf("($%02x,X)", data)
	case IndirectIndexed:
		return fmt.Sprintf("($%02x),Y", data)
	case Absolute:
		return fmt.Sprintf("$%04x", data)
	case AbsoluteIndexedX:
		return fmt.Sprintf("$%04x,X", data)
	case AbsoluteIndexedY:
		return fmt.Sprintf("$%04x,Y", data)
	case Indirect:
		return fmt.Sprintf("($%04x)", data)
	case AbsoluteIndexedIndirect:
		return fmt.Sprintf("($%04x,X)", data)
	case ZeroPageRelative:
		return fmt.Sprintf("$%02x,$%04x", uint8(data), branchTarget(address, 3, uint8(data>>8)))
	}
	return ""
}

func branchTarget(address uint16, length uint16, offset uint8) uint16 {
	return address + length + uint16(int8(offset))
}
