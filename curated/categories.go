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

package curated

// Sentinal patterns for the three categories of load-time failure. All of
// them are raised before the first instruction is executed and none of them
// leave the memory bus in a modified state.
//
// Each pattern takes a single value, which will normally be another error
// describing the specific problem:
//
//	return curated.Errorf(curated.FormatError, fmt.Errorf("illegal cartridge header"))
//
// Use Has() to check for a category anywhere in the chain.
const (
	// a binary or cartridge image could not be interpreted
	FormatError = "format error: %v"

	// a file (binary, cartridge or UART source) could not be read
	IOError = "io error: %v"

	// the machine configuration is impossible. for example, overlapping
	// memory regions or a load address that overflows the address space
	ConfigError = "config error: %v"
)
