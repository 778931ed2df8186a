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

package video

import (
	"fmt"
	"sync/atomic"

	"github.com/jetsetilly/gophercody/hardware/memory/memorymap"
	"github.com/jetsetilly/gophercody/logger"
)

// FrameCycles is the number of CPU cycles in a frame. The CPU runs at 1MHz
// and the frame rate is 59.94Hz.
const FrameCycles = 16683

// RefreshRate is the number of frames per second.
const RefreshRate = float32(60.0 / 1.001)

// BlankingCycles is the number of cycles at the start of each frame for
// which the blanking register reads as one. There are 262 lines in a frame
// and 42 of them (9 lines of vsync, 12 blank lines and 21 lines of bottom
// border) are considered to be blanking.
const BlankingCycles = FrameCycles * 42 / 262

// Generator is a memory area on the bus.
type Generator struct {
	mem [Size]uint8

	// cycle within the current frame
	cycle int

	generation uint64
	front      atomic.Pointer[Frame]

	// the rest of the address space as seen by the Propeller
	bus Peeker
}

// Peeker is the part of the memory bus used by the generator to decode
// addresses outside of the video area.
type Peeker interface {
	Peek(address uint16) (uint8, error)
}

// NewGenerator is the preferred method of initialisation for the Generator
// type.
func NewGenerator() *Generator {
	gen := &Generator{}
	gen.front.Store(&Frame{})
	return gen
}

func (gen *Generator) String() string {
	return fmt.Sprintf("video: frame %d cycle %d", gen.generation, gen.cycle)
}

// Label implements the memory.Area interface.
func (gen *Generator) Label() string {
	return "Video"
}

// Read implements the memory.Area interface.
func (gen *Generator) Read(offset uint16) uint8 {
	return gen.Peek(offset)
}

// Peek implements the memory.Peeker interface.
func (gen *Generator) Peek(offset uint16) uint8 {
	if offset == Blanking {
		if gen.InBlanking() {
			return 1
		}
		return 0
	}
	return gen.vram(offset)
}

// Write implements the memory.Area interface. The blanking register is read
// only.
func (gen *Generator) Write(offset uint16, data uint8) {
	if offset == Blanking || int(offset) >= Size {
		return
	}
	gen.mem[offset] = data
}

// Poke implements the memory.Poker interface.
func (gen *Generator) Poke(offset uint16, data uint8) {
	gen.Write(offset, data)
}

// Plumb the memory bus into the generator. Screen, colour, character and
// sprite data outside of the video area is read through the bus. The address
// wraps around the top of the address space.
func (gen *Generator) Plumb(bus Peeker) {
	gen.bus = bus
}

// video memory as seen by the Propeller. offsets outside of the shared memory
// are read from the bus if one has been plumbed in and read as zero otherwise
func (gen *Generator) vram(offset uint16) uint8 {
	if int(offset) < Size {
		return gen.mem[offset]
	}
	if gen.bus == nil {
		return 0
	}
	v, err := gen.bus.Peek(memorymap.OriginVideo + offset)
	if err != nil {
		return 0
	}
	return v
}

// InBlanking returns true if the generator is in the vertical blanking
// interval.
func (gen *Generator) InBlanking() bool {
	return gen.cycle < BlankingCycles
}

// Tick advances the generator by the number of cycles. A new frame is
// produced each time the end of a frame is reached.
func (gen *Generator) Tick(cycles int) {
	gen.cycle += cycles
	for gen.cycle >= FrameCycles {
		gen.cycle -= FrameCycles
		gen.newFrame()
	}
}

func (gen *Generator) newFrame() {
	gen.generation++

	// a new frame is allocated every time so that frames already handed out
	// by the Frame() function are never modified
	f := &Frame{Generation: gen.generation}
	gen.decode(f)
	gen.front.Store(f)

	if gen.generation == 1 {
		logger.Logf(logger.Allow, "video", "first frame")
	}
}

// Frame returns the most recent complete frame. Before the first frame has
// been produced a blank frame with a generation of zero is returned.
func (gen *Generator) Frame() *Frame {
	return gen.front.Load()
}

// Generation returns the number of frames produced so far.
func (gen *Generator) Generation() uint64 {
	return gen.generation
}

// Reset clears video memory and restarts the frame. The frame counter is not
// reset.
func (gen *Generator) Reset() {
	gen.mem = [Size]uint8{}
	gen.cycle = 0
}
