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

package execution

import (
	"fmt"

	"github.com/jetsetilly/gophercody/hardware/cpu/instructions"
)

// Interrupt identifies the interrupt sequence performed by the CPU instead of
// an instruction.
type Interrupt int

// List of valid Interrupt values.
const (
	NoInterrupt Interrupt = iota
	NMI
	IRQ
)

func (i Interrupt) String() string {
	switch i {
	case NMI:
		return "NMI"
	case IRQ:
		return "IRQ"
	}
	return ""
}

// Result records the state/result of each instruction executed on the CPU.
// Including the address it was read from, a reference to the instruction
// definition, and other execution details.
type Result struct {
	// the address at which the instruction began
	Address uint16

	// a reference to the instruction definition. nil if the step was an
	// interrupt sequence or an idle cycle of a halted CPU
	Defn *instructions.Definition

	// the number of bytes read during instruction decode
	ByteCount int

	// the operand of the instruction, as read from memory
	InstructionData uint16

	// the actual number of cycles taken by the step
	Cycles int

	// whether an extra cycle was required because the effective address
	// crossed a page
	PageFault bool

	// whether the branch condition of a branch instruction was true
	BranchSuccess bool

	// whether an extra cycle was required because of decimal mode arithmetic
	Decimal bool

	// the interrupt sequence that was performed in place of an instruction
	Interrupt Interrupt

	// the CPU is halted by WAI or STP and the step was a single idle cycle
	Halted bool

	// a memory access could not be serviced
	Error string

	// whether this data has been finalised
	Final bool
}

// Reset nullifies all members of the Result instance.
func (r *Result) Reset() {
	*r = Result{}
}

func (r Result) String() string {
	if r.Interrupt != NoInterrupt {
		return fmt.Sprintf("%04x %s [%d]", r.Address, r.Interrupt, r.Cycles)
	}
	if r.Halted {
		return fmt.Sprintf("%04x halted [%d]", r.Address, r.Cycles)
	}
	if r.Defn == nil {
		return fmt.Sprintf("%04x ???", r.Address)
	}

	s := fmt.Sprintf("%04x %s", r.Address, r.Defn.Mnemonic)
	if op := r.Defn.FormatOperand(r.Address, r.InstructionData); op != "" {
		s = fmt.Sprintf("%s %s", s, op)
	}
	s = fmt.Sprintf("%s [%d]", s, r.Cycles)

	if r.PageFault {
		s = fmt.Sprintf("%s page-fault", s)
	}
	if r.Error != "" {
		s = fmt.Sprintf("%s * %s *", s, r.Error)
	}

	return s
}
