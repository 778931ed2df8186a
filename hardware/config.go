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

package hardware

import (
	"io"

	"github.com/jetsetilly/gophercody/cartridgeloader"
	"github.com/jetsetilly/gophercody/hardware/peripherals/keyboard"
)

// Config is the startup configuration of the Cody.
type Config struct {
	// the binary to load. if the filename is empty then nothing is loaded
	// and a binary can be attached later with the Attach() function
	Binary string

	// how the binary should be loaded
	Loader cartridgeloader.Config

	// the number of banks in the ROM area. values less than two give the
	// normal, unbanked, ROM
	Banks int

	// the keyboard mapping
	Keyboard keyboard.Mode

	// the source of bytes for UART1 and whether the bytes should have their
	// newlines normalised. the source is read completely by NewCody()
	UARTSource        io.Reader
	NormaliseNewlines bool

	// destination for bytes transmitted by UART1. bytes are discarded if this
	// is nil
	UARTOut io.Writer

	// frequency of an IRQ pulse, in addition to any interrupt raised by the
	// VIA. zero disables the pulse
	IRQHz float64

	// destination for a trace of every executed instruction. nil disables the
	// trace. if TraceBus is true then every memory access is also traced
	Trace    io.Writer
	TraceBus bool
}
