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

package disassembly

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gophercody/hardware/cpu/execution"
	"github.com/jetsetilly/gophercody/hardware/cpu/instructions"
)

// Peeker is the memory interface required to decode instructions. It is
// satisfied by the memory.Bus type.
type Peeker interface {
	Peek(address uint16) (uint8, error)
}

// Decode the instruction at the address. The returned Entry will have a level
// of EntryLevelDecoded.
//
// Memory that cannot be peeked is treated as zero.
func Decode(mem Peeker, address uint16) *Entry {
	opcode, _ := mem.Peek(address)
	defn := &instructions.Definitions[opcode]

	result := execution.Result{
		Address:   address,
		Defn:      defn,
		ByteCount: defn.Bytes,
		Cycles:    defn.Cycles,
		Final:     true,
	}

	for i := 1; i < defn.Bytes; i++ {
		v, _ := mem.Peek(address + uint16(i))
		result.InstructionData |= uint16(v) << ((i - 1) * 8)
	}

	return formatResult(result, EntryLevelDecoded)
}

// FormatResult creates an Entry from an execution result. Results that were
// not the execution of an instruction, interrupts and idle cycles, are
// formatted with the Operator field describing what happened.
func FormatResult(result execution.Result) *Entry {
	return formatResult(result, EntryLevelExecuted)
}

func formatResult(result execution.Result, level EntryLevel) *Entry {
	e := &Entry{
		Result:  result,
		Level:   level,
		Address: fmt.Sprintf("$%04x", result.Address),
	}

	if result.Defn == nil {
		switch {
		case result.Interrupt != execution.NoInterrupt:
			e.Operator = result.Interrupt.String()
		case result.Halted:
			e.Operator = "---"
		default:
			e.Operator = "???"
		}
		return e
	}

	defn := result.Defn
	e.Operator = defn.Mnemonic

	b := strings.Builder{}
	fmt.Fprintf(&b, "%02x", defn.OpCode)
	for i := 1; i < defn.Bytes; i++ {
		if i < result.ByteCount {
			fmt.Fprintf(&b, " %02x", uint8(result.InstructionData>>((i-1)*8)))
		} else {
			b.WriteString(" ??")
		}
	}
	e.Bytecode = b.String()

	if result.ByteCount >= defn.Bytes {
		e.Operand = defn.FormatOperand(result.Address, result.InstructionData)
	} else if defn.Bytes > 1 {
		e.Operand = "?"
	}

	return e
}
