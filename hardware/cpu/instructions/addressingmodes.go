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

// AddressingMode describes the method by which an instruction receives data
// on which to operate.
type AddressingMode int

// List of supported addressing modes.
const (
	Implied AddressingMode = iota
	Accumulator
	Immediate
	Relative // relative addressing is used for branch instructions

	ZeroPage
	ZeroPageIndexedX
	ZeroPageIndexedY // only used for LDX and STX

	ZeroPageIndirect // (zp)
	IndexedIndirect  // (zp,X)
	IndirectIndexed  // (zp),Y

	Absolute
	AbsoluteIndexedX
	AbsoluteIndexedY

	Indirect                // JMP (abs)
	AbsoluteIndexedIndirect // JMP (abs,X)

	// zero page address followed by a relative branch offset. used by the
	// BBR and BBS instructions only
	ZeroPageRelative
)

func (m AddressingMode) String() string {
	switch m {
	case Implied:
		return "Implied"
	case Accumulator:
		return "Accumulator"
	case Immediate:
		return "Immediate"
	case Relative:
		return "Relative"
	case ZeroPage:
		return "ZeroPage"
	case ZeroPageIndexedX:
		return "ZeroPageIndexedX"
	case ZeroPageIndexedY:
		return "ZeroPageIndexedY"
	case ZeroPageIndirect:
		return "ZeroPageIndirect"
	case IndexedIndirect:
		return "IndexedIndirect"
	case IndirectIndexed:
		return "IndirectIndexed"
	case Absolute:
		return "Absolute"
	case AbsoluteIndexedX:
		return "AbsoluteIndexedX"
	case AbsoluteIndexedY:
		return "AbsoluteIndexedY"
	case Indirect:
		return "Indirect"
	case AbsoluteIndexedIndirect:
		return "AbsoluteIndexedIndirect"
	case ZeroPageRelative:
		return "ZeroPageRelative"
	}
	return "unknown addressing mode"
}

// OperandBytes returns the number of bytes following the opcode for the
// addressing mode.
func (m AddressingMode) OperandBytes() int {
	switch m {
	case Implied, Accumulator:
		return 0
	case Absolute, AbsoluteIndexedX, AbsoluteIndexedY, Indirect, AbsoluteIndexedIndirect, ZeroPageRelative:
		return 2
	}
	return 1
}
