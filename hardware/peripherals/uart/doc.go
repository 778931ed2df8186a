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

// Package uart implements the two UARTs of the Cody Computer.
//
// The UART is presented to the CPU as a block of registers. The layout is the
// same as the real hardware, including the receive and transmit ring buffers
// that the firmware manages itself. In addition to the real registers there
// is a DATA register, which pops the next byte directly from the receive
// queue.
//
// Data to be received by the Cody Computer is placed in a Queue before
// execution begins. There is no interrupt line and so the firmware must poll
// the UART for new data.
package uart
