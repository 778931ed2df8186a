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

// Package memory implements the memory bus of the Cody Computer.
//
//	                        PERIPHERALS
//
//	                             |
//	                         Area (Read/Write)
//	                             |
//	    CPU ---- cpubus.Memory ---- BUS ---- cpubus.DebuggerBus ---- LOADER / TOOLS
//
// The Bus partitions the 64k address space into non-overlapping regions. Each
// region is served by an implementation of the Area interface. RAM, ROM and
// BankedROM are implemented in this package. The peripherals (VIA, UARTs and
// the video generator) implement the Area interface in their own packages.
//
// The Bus implements the cpubus.Memory interface and so can be given to the
// CPU directly. Reading an address that is not mapped returns zero and writing
// to an address that is not mapped does nothing. Neither is an error.
//
// Peek() and Poke() are the side-effect free equivalents of Read() and
// Write(). They are only supported by areas that implement the Peeker and
// Poker interfaces. In particular, ROM implements Poker, which is how the
// cartridge loader places a binary into ROM.
//
// The Recorder type wraps any implementation of cpubus.Memory and keeps a
// record of every access.
package memory
