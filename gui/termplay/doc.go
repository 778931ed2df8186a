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

// Package termplay is a front end for the Cody emulation that runs in a
// terminal. It does not show the video frame. Instead, the character codes of
// the screen are printed as text once per frame. This is useful for programs
// that only use the character mode of the video generator, such as BASIC.
//
// Characters typed in the terminal are given to the emulation as symbolic key
// events. Each key is pressed for two frames and then released.
package termplay
