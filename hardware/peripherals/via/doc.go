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

// Package via implements the parts of the 65C22 Versatile Interface Adapter
// used by the Cody Computer.
//
// Port A is connected to the keyboard matrix. The lower three bits are output
// and select the row of the matrix. The upper five bits are input and give
// the state of the keys in that row. The connection is made through the PortA
// interface.
//
// Timer 1 is emulated in both one-shot and free-run modes and is the source
// of the periodic interrupt used by the Cody firmware. Port B, timer 2 and the
// shift register can be written to and read from but otherwise have no
// effect.
package via
