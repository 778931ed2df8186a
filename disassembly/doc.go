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

// Package disassembly produces assembler notation for 65C02 machine code.
//
// The Decode() function disassembles a single instruction from any memory
// that can be peeked. The Linear() function disassembles a block of data from
// start to end, treating every byte as either an instruction or the operand
// of an instruction. Data segments will be disassembled as though they were
// code.
//
// An Entry can also be updated with the result of the instruction being
// executed by the CPU. This is used to produce a trace of execution.
package disassembly
