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

// Package keyboard implements the keyboard matrix of the Cody Computer.
//
// The Cody keyboard has thirty keys arranged in six rows of five columns. A
// seventh row holds the joystick, which is emulated with the arrow keys and
// the shift key of the host keyboard.
//
// Events from the host keyboard are translated into Cody key presses in one
// of two ways. In Physical mode the position of the host key is used, so the
// host key in the position of the Cody's Q key is the Q key, regardless of
// what the host keyboard layout says it is. In Symbolic mode the meaning of
// the host key is used. Typing a digit on the host keyboard will press the
// Cody key for that digit along with the Cody modifier key.
//
// The matrix is read by the firmware through port A of the VIA. See the
// ReadPortA() function.
package keyboard
