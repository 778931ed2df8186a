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

// Package cpu emulates the 65C02 microprocessor found in the Cody Computer.
// Like all 8-bit processors of the era, the 65C02 executes instructions
// according to the single byte value read from an address pointed to by the
// program counter. This single byte is the opcode and is looked up in the
// dispatch table. The dispatch table pairs the instruction definition with the
// functions for the addressing mode and the operator.
//
// The instance of the CPU type requires an implementation of the
// cpubus.Memory interface as the sole argument. The interface defines the
// memory operations required by the CPU.
//
// The bread-and-butter of the CPU type is the Step() function. Each call
// executes exactly one instruction, or one interrupt sequence, or one idle
// cycle if the CPU has been halted by the WAI or STP instructions. The number
// of cycles consumed is returned.
//
//	mc := cpu.NewCPU(mem)
//	mc.Reset()
//
//	for !mc.Stopped {
//		cycles += mc.Step()
//	}
//
// The CPU has no notion of time other than the cycle count. Pacing to a real
// clock speed is the responsibility of the caller.
//
// The LastResult field can be inspected for information about the last
// instruction executed. See the execution package for more information.
//
// Interrupts are requested with SetNMI() and SetIRQ(). The lines are sampled
// at instruction boundaries only. NMI is edge triggered and IRQ is level
// triggered. See the Interrupts type for details.
package cpu
