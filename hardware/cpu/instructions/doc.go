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

// Package instructions defines the instruction set of the 65C02.
//
// The Definitions table is generated from instructions.csv by the program in
// the generator directory. Each entry in the table describes one opcode: the
// operator, the addressing mode, the number of bytes, the base cycle count
// and whether the instruction costs an extra cycle when the effective address
// crosses a page.
//
// Opcodes that are not defined by the 65C02 are NOPs with fixed byte and
// cycle costs. They are marked with the Undefined field.
//
// The CPU and the disassembler both use the table. The CPU builds its
// dispatch table from it once at construction.
package instructions
