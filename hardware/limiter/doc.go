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

// Package limiter throttles the emulation to the frame rate of the Cody
// Computer. The limiter knows nothing about the machine it is limiting and
// only needs to be told when a frame has been completed, with the
// CheckFrame() function.
//
// The limiter also measures the actual frame rate, which can be different to
// the requested rate if the host cannot keep up.
package limiter
