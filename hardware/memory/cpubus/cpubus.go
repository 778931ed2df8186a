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

// Package cpubus defines the interface between the CPU and memory, and the
// addresses of the interrupt vectors.
package cpubus

import "errors"

// Memory defines the operations for the memory system when accessed from the
// CPU. All memory areas implement this interface because they are all
// accessible from the CPU (compare to the peripheral registers, which are
// only reachable through the bus).
type Memory interface {
	Read(address uint16) (uint8, error)
	Write(address uint16, data uint8) error
}

// AddressError is returned (wrapped) by implementations of Memory when an
// address cannot be serviced. The CPU treats it as a non-fatal condition and
// notes it in the instruction result.
var AddressError = errors.New("inaccessible address")

// DebuggerBus defines the meta-operations for memory. Think of these functions
// as "debugging" functions, that is operations outside of the normal operation
// of the machine. Peek and Poke have no side effects on peripherals and Poke
// will write to ROM.
//
// The cartridge loader uses Poke() to place the binary in memory.
type DebuggerBus interface {
	Peek(address uint16) (uint8, error)
	Poke(address uint16, value uint8) error
}

// PokeChecker is optionally implemented by a DebuggerBus. CanPoke() returns
// the error that Poke() would return for the address but writes nothing.
type PokeChecker interface {
	CanPoke(address uint16) error
}
