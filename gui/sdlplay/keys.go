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

package sdlplay

import (
	"github.com/jetsetilly/gophercody/hardware/peripherals/keyboard"
	"github.com/veandco/go-sdl2/sdl"
)

// translate an SDL key into a keyboard event. the position field comes from
// the scancode and the symbol and named fields from the keycode
func (scr *SdlPlay) translate(key sdl.Keysym, pressed bool) keyboard.Event {
	ev := keyboard.Event{
		Position: position(key.Scancode),
		Named:    named(key.Sym),
		Pressed:  pressed,
	}

	if ev.Named != keyboard.NamedNone {
		return ev
	}

	if pressed {
		r := rune(0)
		if key.Sym >= 0x20 && key.Sym < 0x7f {
			r = rune(key.Sym)
			if sdl.GetModState()&sdl.KMOD_SHIFT != 0 {
				r = keyboard.ShiftUS(r)
			}
		}
		scr.held[key.Scancode] = r
		ev.Symbol = r
	} else {
		ev.Symbol = scr.held[key.Scancode]
		delete(scr.held, key.Scancode)
	}

	return ev
}

func position(sc sdl.Scancode) keyboard.Position {
	if sc >= sdl.SCANCODE_A && sc <= sdl.SCANCODE_Z {
		return keyboard.PosA + keyboard.Position(sc-sdl.SCANCODE_A)
	}

	switch sc {
	case sdl.SCANCODE_LCTRL, sdl.SCANCODE_RCTRL:
		return keyboard.PosControl
	case sdl.SCANCODE_LALT, sdl.SCANCODE_RALT:
		return keyboard.PosAlt
	case sdl.SCANCODE_RETURN:
		return keyboard.PosEnter
	case sdl.SCANCODE_SPACE:
		return keyboard.PosSpace
	case sdl.SCANCODE_UP:
		return keyboard.PosUp
	case sdl.SCANCODE_DOWN:
		return keyboard.PosDown
	case sdl.SCANCODE_LEFT:
		return keyboard.PosLeft
	case sdl.SCANCODE_RIGHT:
		return keyboard.PosRight
	case sdl.SCANCODE_LSHIFT, sdl.SCANCODE_RSHIFT:
		return keyboard.PosShift
	}

	return keyboard.PosNone
}

func named(sym sdl.Keycode) keyboard.NamedKey {
	switch sym {
	case sdl.K_LCTRL, sdl.K_RCTRL:
		return keyboard.NamedControl
	case sdl.K_LALT, sdl.K_RALT:
		return keyboard.NamedAlt
	case sdl.K_RETURN:
		return keyboard.NamedEnter
	case sdl.K_BACKSPACE:
		return keyboard.NamedBackspace
	case sdl.K_SPACE:
		return keyboard.NamedSpace
	case sdl.K_UP:
		return keyboard.NamedUp
	case sdl.K_DOWN:
		return keyboard.NamedDown
	case sdl.K_LEFT:
		return keyboard.NamedLeft
	case sdl.K_RIGHT:
		return keyboard.NamedRight
	case sdl.K_LSHIFT, sdl.K_RSHIFT:
		return keyboard.NamedShift
	}
	return keyboard.NamedNone
}
