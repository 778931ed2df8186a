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

package keyboard_test

import (
	"testing"

	"github.com/jetsetilly/gophercody/hardware/peripherals/keyboard"
	"github.com/jetsetilly/gophercody/test"
)

func TestPortA(t *testing.T) {
	mtx := keyboard.NewMatrix(keyboard.Physical)

	// no keys pressed
	for row := uint8(0); row < keyboard.Rows; row++ {
		test.ExpectEquality(t, mtx.ReadPortA(row), 0xf8|row)
	}

	// Q is row zero, column zero
	mtx.Press(keyboard.KeyQ, true)
	test.ExpectEquality(t, mtx.ReadPortA(0), 0xf0)
	test.ExpectEquality(t, mtx.ReadPortA(1), 0xf9)

	// Cody key is row two, column zero. M is row three, column three
	mtx.Press(keyboard.KeyCody, true)
	mtx.Press(keyboard.KeyM, true)
	test.ExpectEquality(t, mtx.ReadPortA(2), 0xf2)
	test.ExpectEquality(t, mtx.ReadPortA(3), 0xbb)

	// joystick fire is row six, column four
	mtx.Press(keyboard.JoyFire, true)
	test.ExpectEquality(t, mtx.ReadPortA(6), 0x7e)

	// bits other than the row select bits are ignored
	test.ExpectEquality(t, mtx.ReadPortA(0xf8), 0xf0)

	mtx.Reset()
	test.ExpectEquality(t, mtx.ReadPortA(0), 0xf8)
	test.ExpectEquality(t, mtx.String(), "")
}

func TestPhysical(t *testing.T) {
	mtx := keyboard.NewMatrix(keyboard.Physical)

	// the symbol is ignored in physical mode. on an AZERTY keyboard the
	// letter A is in the position of the Q key
	mtx.HandleEvent(keyboard.Event{Position: keyboard.PosQ, Symbol: 'a', Pressed: true})
	test.ExpectSuccess(t, mtx.Pressed(keyboard.KeyQ))
	test.ExpectFailure(t, mtx.Pressed(keyboard.KeyA))

	mtx.HandleEvent(keyboard.Event{Position: keyboard.PosQ, Symbol: 'a', Pressed: false})
	test.ExpectFailure(t, mtx.Pressed(keyboard.KeyQ))

	mtx.HandleEvent(keyboard.Event{Position: keyboard.PosShift, Pressed: true})
	test.ExpectSuccess(t, mtx.Pressed(keyboard.JoyFire))

	mtx.HandleEvent(keyboard.Event{Position: keyboard.PositionLetter('M'), Pressed: true})
	test.ExpectSuccess(t, mtx.Pressed(keyboard.KeyM))
	test.ExpectEquality(t, mtx.String(), "M Joy Fire")
}

func TestSymbolic(t *testing.T) {
	mtx := keyboard.NewMatrix(keyboard.Symbolic)

	// the position is ignored in symbolic mode
	mtx.HandleEvent(keyboard.Event{Position: keyboard.PosQ, Symbol: 'a', Pressed: true})
	test.ExpectSuccess(t, mtx.Pressed(keyboard.KeyA))
	test.ExpectFailure(t, mtx.Pressed(keyboard.KeyQ))
	mtx.HandleEvent(keyboard.Event{Position: keyboard.PosQ, Symbol: 'a', Pressed: false})
	test.ExpectFailure(t, mtx.Pressed(keyboard.KeyA))

	// upper case letters
	mtx.HandleEvent(keyboard.Event{Symbol: 'Z', Pressed: true})
	test.ExpectSuccess(t, mtx.Pressed(keyboard.KeyZ))
	mtx.HandleEvent(keyboard.Event{Symbol: 'Z', Pressed: false})

	// unmapped symbols
	mtx.HandleEvent(keyboard.Event{Symbol: '~', Pressed: true})
	test.ExpectEquality(t, mtx.String(), "")

	mtx.HandleEvent(keyboard.Event{Named: keyboard.NamedEnter, Pressed: true})
	test.ExpectSuccess(t, mtx.Pressed(keyboard.KeyArrow))
	mtx.HandleEvent(keyboard.Event{Named: keyboard.NamedEnter, Pressed: false})

	mtx.HandleEvent(keyboard.Event{Symbol: '\n', Pressed: true})
	test.ExpectSuccess(t, mtx.Pressed(keyboard.KeyArrow))
	mtx.HandleEvent(keyboard.Event{Symbol: '\n', Pressed: false})
	test.ExpectFailure(t, mtx.Pressed(keyboard.KeyArrow))
}

func TestSymbolicModifiers(t *testing.T) {
	mtx := keyboard.NewMatrix(keyboard.Symbolic)

	// digits are typed with the Cody key
	mtx.HandleEvent(keyboard.Event{Symbol: '1', Pressed: true})
	test.ExpectSuccess(t, mtx.Pressed(keyboard.KeyQ))
	test.ExpectSuccess(t, mtx.Pressed(keyboard.KeyCody))
	test.ExpectFailure(t, mtx.Pressed(keyboard.KeyMeta))

	// the Cody key remains held while any digit is held
	mtx.HandleEvent(keyboard.Event{Symbol: '0', Pressed: true})
	mtx.HandleEvent(keyboard.Event{Symbol: '1', Pressed: false})
	test.ExpectSuccess(t, mtx.Pressed(keyboard.KeyCody))
	test.ExpectSuccess(t, mtx.Pressed(keyboard.KeyP))
	mtx.HandleEvent(keyboard.Event{Symbol: '0', Pressed: false})
	test.ExpectFailure(t, mtx.Pressed(keyboard.KeyCody))

	// punctuation is typed with the Meta key
	mtx.HandleEvent(keyboard.Event{Symbol: '-', Pressed: true})
	test.ExpectSuccess(t, mtx.Pressed(keyboard.KeyD))
	test.ExpectSuccess(t, mtx.Pressed(keyboard.KeyMeta))
	mtx.HandleEvent(keyboard.Event{Symbol: '-', Pressed: false})
	test.ExpectFailure(t, mtx.Pressed(keyboard.KeyMeta))

	// backspace is Meta and the arrow key
	mtx.HandleEvent(keyboard.Event{Named: keyboard.NamedBackspace, Pressed: true})
	test.ExpectEquality(t, mtx.String(), "Meta Arrow")
	mtx.HandleEvent(keyboard.Event{Named: keyboard.NamedBackspace, Pressed: false})
	test.ExpectEquality(t, mtx.String(), "")

	// the host modifier keys
	mtx.HandleEvent(keyboard.Event{Named: keyboard.NamedControl, Pressed: true})
	test.ExpectSuccess(t, mtx.Pressed(keyboard.KeyCody))
	mtx.HandleEvent(keyboard.Event{Named: keyboard.NamedControl, Pressed: false})
	test.ExpectFailure(t, mtx.Pressed(keyboard.KeyCody))
}

func TestShiftUS(t *testing.T) {
	test.ExpectEquality(t, keyboard.ShiftUS('a'), 'A')
	test.ExpectEquality(t, keyboard.ShiftUS('1'), '!')
	test.ExpectEquality(t, keyboard.ShiftUS(';'), ':')
	test.ExpectEquality(t, keyboard.ShiftUS('\''), '"')
	test.ExpectEquality(t, keyboard.ShiftUS('A'), 'A')
	test.ExpectEquality(t, keyboard.ShiftUS(' '), ' ')

	// shifted symbols are typed with the meta modifier
	mtx := keyboard.NewMatrix(keyboard.Symbolic)
	mtx.HandleEvent(keyboard.Event{Symbol: keyboard.ShiftUS('1'), Pressed: true})
	test.ExpectSuccess(t, mtx.Pressed(keyboard.KeyQ))
	test.ExpectSuccess(t, mtx.Pressed(keyboard.KeyMeta))
}
