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

// Package cartridgeloader is used to specify the binary that is to be loaded
// into the emulated Cody Computer.
//
// A binary is either headered (a Cody cartridge) or headerless. A cartridge
// begins with a four byte header:
//
//	bytes 0-1	start address (little endian)
//	bytes 2-3	last address (little endian)
//
// followed by the payload of (last - start + 1) bytes. Any data after the
// payload is ignored. A headerless binary is loaded in its entirety.
//
// The NewLoader() function reads and validates the binary. Local files and
// data over HTTP are supported. Any problem with the binary is reported at
// that point and so a successful Loader will always Load() into a fully
// mapped bus:
//
//	ld, err := cartridgeloader.NewLoader("basic.bin", cartridgeloader.Config{})
//	if err != nil {
//		return err
//	}
//	err = ld.Load(bus)
package cartridgeloader
