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

// Position is the position of a key on the host keyboard. Positions are named
// after the key in that position on a US layout keyboard.
type Position int

// List of valid Position values.
const (
	PosNone Position = iota
	PosA
	PosB
	PosC
	PosD
	PosE
	PosF
	PosG
	PosH
	PosI
	PosJ
	PosK
	PosL
	PosM
	PosN
	PosO
	PosP
	PosQ
	PosR
	PosS
	PosT
	PosU
	PosV
	PosW
	PosX
	PosY
	PosZ
	PosControl
	PosAlt
	PosEnter
	PosSpace
	PosUp
	PosDown
	PosLeft
	PosRight
	PosShift
)

// PositionLetter returns the position of the letter on a US layout keyboard.
// Returns PosNone if the rune is not a letter.
func PositionLetter(r rune) Position {
	switch {
	case r >= 'a' && r <= 'z':
		return PosA + Position(r-'a')
	case r >= 'A' && r <= 'Z':
		return PosA + Position(r-'A')
	}
	return PosNone
}

// NamedKey is a host key that does not produce a printable character.
type NamedKey int

// List of valid NamedKey values.
const (
	NamedNone NamedKey = iota
	NamedControl
	NamedAlt
	NamedEnter
	NamedBackspace
	NamedSpace
	NamedUp
	NamedDown
	NamedLeft
	NamedRight
	NamedShift
)

// Event is a key event from the host. Physical mode uses the Position field.
// Symbolic mode uses the Named field if it is not NamedNone and the Symbol
// field otherwise.
type Event struct {
	Position Position
	Symbol   rune
	Named    NamedKey
	Pressed  bool
}

var physical = map[Position]Key{
	PosQ: KeyQ, PosW: KeyW, PosE: KeyE, PosR: KeyR, PosT: KeyT,
	PosY: KeyY, PosU: KeyU, PosI: KeyI, PosO: KeyO, PosP: KeyP,
	PosA: KeyA, PosS: KeyS, PosD: KeyD, PosF: KeyF, PosG: KeyG,
	PosH: KeyH, PosJ: KeyJ, PosK: KeyK, PosL: KeyL,
	PosZ: KeyZ, PosX: KeyX, PosC: KeyC, PosV: KeyV, PosB: KeyB,
	PosN: KeyN, PosM: KeyM,
	PosControl: KeyCody,
	PosAlt:     KeyMeta,
	PosEnter:   KeyArrow,
	PosSpace:   KeySpace,
	PosUp:      JoyUp,
	PosDown:    JoyDown,
	PosLeft:    JoyLeft,
	PosRight:   JoyRight,
	PosShift:   JoyFire,
}

type modifier int

const (
	noModifier modifier = iota
	codyModifier
	metaModifier
)

// symbolic translates an event into a key and the modifier required to type
// it
func symbolic(ev Event) (Key, modifier) {
	switch ev.Named {
	case NamedControl:
		return KeyCody, codyModifier
	case NamedAlt:
		return KeyMeta, metaModifier
	case NamedEnter:
		return KeyArrow, noModifier
	case NamedBackspace:
		return KeyArrow, metaModifier
	case NamedSpace:
		return KeySpace, noModifier
	case NamedUp:
		return JoyUp, noModifier
	case NamedDown:
		return JoyDown, noModifier
	case NamedLeft:
		return JoyLeft, noModifier
	case NamedRight:
		return JoyRight, noModifier
	case NamedShift:
		return JoyFire, noModifier
	}

	r := ev.Symbol
	if r >= 'A' && r <= 'Z' {
		r += 'a' - 'A'
	}

	mod := noModifier
	if l, ok := digits[r]; ok {
		r = l
		mod = codyModifier
	} else if l, ok := punctuation[r]; ok {
		r = l
		mod = metaModifier
	}

	switch r {
	case '\n', '\r':
		return KeyArrow, mod
	case ' ':
		return KeySpace, mod
	}

	if k, ok := letters[r]; ok {
		return k, mod
	}

	return NoKey, noModifier
}
