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

package keyboard

import (
	"strings"

	"github.com/jetsetilly/gophercody/logger"
)

// Mode is the method used to translate host key events.
type Mode int

// List of valid Mode values.
const (
	Symbolic Mode = iota
	Physical
)

func (m Mode) String() string {
	switch m {
	case Symbolic:
		return "symbolic"
	case Physical:
		return "physical"
	}
	return "unknown mode"
}

// Dimensions of the matrix.
const (
	Rows    = 8
	Columns = 5
)

// Matrix is the grid of key states.
type Matrix struct {
	mode Mode
	grid [Rows][Columns]bool

	// keys pressed in symbolic mode that require the modifier key to be held
	codyHeld map[Key]bool
	metaHeld map[Key]bool
}

// NewMatrix is the preferred method of initialisation for the Matrix type.
func NewMatrix(mode Mode) *Matrix {
	logger.Logf(logger.Allow, "keyboard", "%s mode", mode)
	return &Matrix{
		mode:     mode,
		codyHeld: make(map[Key]bool),
		metaHeld: make(map[Key]bool),
	}
}

func (mtx *Matrix) String() string {
	var s strings.Builder
	for k := Key(0); k < numKeys; k++ {
		if mtx.Pressed(k) {
			if s.Len() > 0 {
				s.WriteString(" ")
			}
			s.WriteString(k.String())
		}
	}
	return s.String()
}

// Mode returns the translation mode of the matrix.
func (mtx *Matrix) Mode() Mode {
	return mtx.mode
}

// Press sets the state of a key directly.
func (mtx *Matrix) Press(key Key, pressed bool) {
	if key < 0 || key >= numKeys {
		return
	}
	r, c := key.position()
	mtx.grid[r][c] = pressed
}

// Pressed returns true if the key is currently pressed.
func (mtx *Matrix) Pressed(key Key) bool {
	if key < 0 || key >= numKeys {
		return false
	}
	r, c := key.position()
	return mtx.grid[r][c]
}

// Reset releases all keys.
func (mtx *Matrix) Reset() {
	mtx.grid = [Rows][Columns]bool{}
	clear(mtx.codyHeld)
	clear(mtx.metaHeld)
}

// HandleEvent updates the matrix with the host key event according to the
// mode of the matrix. Events with no Cody equivalent are ignored.
func (mtx *Matrix) HandleEvent(ev Event) {
	switch mtx.mode {
	case Physical:
		if k, ok := physical[ev.Position]; ok {
			mtx.Press(k, ev.Pressed)
		}
	case Symbolic:
		mtx.handleSymbolic(ev)
	}
}

func (mtx *Matrix) handleSymbolic(ev Event) {
	k, mod := symbolic(ev)
	if k == NoKey {
		return
	}

	switch mod {
	case codyModifier:
		mtx.hold(mtx.codyHeld, k, ev.Pressed)
	case metaModifier:
		mtx.hold(mtx.metaHeld, k, ev.Pressed)
	}

	mtx.Press(k, ev.Pressed)

	// the modifier keys are pressed for as long as any key that requires
	// them is pressed
	mtx.Press(KeyCody, len(mtx.codyHeld) > 0)
	mtx.Press(KeyMeta, len(mtx.metaHeld) > 0)
}

func (mtx *Matrix) hold(held map[Key]bool, k Key, pressed bool) {
	if pressed {
		held[k] = true
	} else {
		delete(held, k)
	}
}

// ReadPortA is called by the VIA when port A is read. The output argument is
// the value being output by the VIA on port A and selects the row of the
// matrix. The returned value has the column bits of the row in bits 3 to 7,
// with a pressed key reading as zero, and the row number in bits 0 to 2.
func (mtx *Matrix) ReadPortA(output uint8) uint8 {
	row := output & 0x07
	v := row
	for c := 0; c < Columns; c++ {
		if !mtx.grid[row][c] {
			v |= 0x08 << c
		}
	}
	return v
}
