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

// Package registers implements the register types found in the 65C02. The
// program counter, the status register and the 8 bit type used for A, X, Y
// and the stack pointer.
//
// The 8 bit registers are implemented as the Register type. The type defines
// all the basic operations available to the 65C02: load, add, subtract,
// logical operations, shifts and rotates. Binary coded decimal arithmetic is
// provided by AddDecimal() and SubtractDecimal(). In addition it implements
// the tests required for status updates: is the value zero, is the number
// negative or is the overflow bit set.
//
// The program counter by comparison is 16 bits wide and defines only the load
// and add operations.
//
// The status register is implemented as a series of flags. Setting of flags
// is done directly. For instance, in the CPU, we might have this sequence of
// function calls:
//
//	a.Load(10)
//	a.Subtract(11, true)
//	sr.Zero = a.IsZero()
//
// In this case, the zero flag in the status register will be false.
package registers
