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

import "fmt"

// Key is a key on the Cody keyboard, including the joystick. The value of the
// key determines its position in the matrix.
type Key int

// List of valid Key values. NoKey indicates that an event has no equivalent on
// the Cody keyboard.
const (
	NoKey Key = iota - 1
	KeyQ
	KeyE
	KeyT
	KeyU
	KeyO
	KeyA
	KeyD
	KeyG
	KeyJ
	KeyL
	KeyCody
	KeyX
	KeyV
	KeyN
	KeyMeta
	KeyZ
	KeyC
	KeyB
	KeyM
	KeyArrow
	KeyS
	KeyF
	KeyH
	KeyK
	KeySpace
	KeyW
	KeyR
	KeyY
	KeyI
	KeyP
	JoyUp
	JoyDown
	JoyLeft
	JoyRight
	JoyFire
	numKeys
)

func (k Key) String() string {
	switch k {
	case NoKey:
		return "none"
	case KeyCody:
		return "Cody"
	case KeyMeta:
		return "Meta"
	case KeyArrow:
		return "Arrow"
	case KeySpace:
		return "Space"
	case JoyUp:
		return "Joy Up"
	case JoyDown:
		return "Joy Down"
	case JoyLeft:
		return "Joy Left"
	case JoyRight:
		return "Joy Right"
	case JoyFire:
		return "Joy Fire"
	}
	for r, key := range letters {
		if key == k {
			return string(r - ('a' - 'A'))
		}
	}
	return fmt.Sprintf("unknown key (%d)", int(k))
}

// row and column of the key in the matrix
func (k Key) position() (int, int) {
	return int(k) / Columns, int(k) % Columns
}

// letters maps lower case letters and the other printable keys on the Cody
// keyboard to the key
var letters = map[rune]Key{
	'q': KeyQ, 'w': KeyW, 'e': KeyE, 'r': KeyR, 't': KeyT,
	'y': KeyY, 'u': KeyU, 'i': KeyI, 'o': KeyO, 'p': KeyP,
	'a': KeyA, 's': KeyS, 'd': KeyD, 'f': KeyF, 'g': KeyG,
	'h': KeyH, 'j': KeyJ, 'k': KeyK, 'l': KeyL,
	'z': KeyZ, 'x': KeyX, 'c': KeyC, 'v': KeyV, 'b': KeyB,
	'n': KeyN, 'm': KeyM,
}

// digits are typed with the Cody modifier and a letter from the top row
var digits = map[rune]rune{
	'1': 'q', '2': 'w', '3': 'e', '4': 'r', '5': 't',
	'6': 'y', '7': 'u', '8': 'i', '9': 'o', '0': 'p',
}

// punctuation is typed with the Meta modifier and a letter
var punctuation = map[rune]rune{
	'!': 'q', '"': 'w', '#': 'e', '$': 'r', '%': 't',
	'^': 'y', '&': 'u', '*': 'i', '(': 'o', ')': 'p',
	'@': 'a', '=': 's', '-': 'd', '+': 'f', ':': 'g',
	';': 'h', '\'': 'j', '[': 'k', ']': 'l',
	'\\': 'z', '<': 'x', '>': 'c', ',': 'v', '.': 'b',
	'?': 'n', '/': 'm',
}
