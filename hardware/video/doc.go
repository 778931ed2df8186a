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

// Package video implements the video generator of the Cody Computer. On the
// real machine the video generator is a program running on the Propeller
// microcontroller, which shares a block of memory with the 65C02.
//
// The generator is a memory area on the bus. Writes to the area take effect
// immediately but the effect on the screen is only seen once per frame, when
// the memory is decoded into a Frame. A Frame is a grid of palette indices and
// it is up to the consumer of the frame to translate the indices into colours.
//
// The most recent complete frame is available through the Frame() function.
// Frames returned by the function are never altered by the generator so it is
// safe to use them in a different goroutine to the one calling Tick().
package video
