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

package termplay

import (
	"github.com/jetsetilly/gophercody/hardware/peripherals/keyboard"
	"github.com/jetsetilly/gophercody/terminal/easyterm"
)

// keyEvent is a key decoded from the terminal input
type keyEvent struct {
	symbol rune
	named  keyboard.NamedKey

	// the user wants to quit. a quit key is not passed to the emulation
	quit bool
}

func (k keyEvent) event(pressed bool) keyboard.Event {
	return keyboard.Event{
		Position: keyboard.PositionLetter(k.symbol),
		Symbol:   k.symbol,
		Named:    k.named,
		Pressed:  pressed,
	}
}

type decoderState int

const (
	stNormal decoderState = iota
	stEscape
	stCursor
)

// decoder turns bytes from a terminal in cbreak mode into key events. cursor
// keys arrive as escape sequences and so the decoder must keep state between
// bytes
type decoder struct {
	state decoderState
}

// decode the next byte. returns the keys completed by the byte, which might
// be none
func (d *decoder) decode(b byte) []keyEvent {
	switch d.state {
	case stEscape:
		switch b {
		case easyterm.EscCursor, easyterm.EscSS3:
			d.state = stCursor
			return nil
		case easyterm.KeyEsc:
			// two escapes in a row is a request to quit
			d.state = stNormal
			return []keyEvent{{quit: true}}
		}
		d.state = stNormal
		return d.decode(b)

	case stCursor:
		d.state = stNormal
		switch b {
		case easyterm.CursorUp:
			return []keyEvent{{named: keyboard.NamedUp}}
		case easyterm.CursorDown:
			return []keyEvent{{named: keyboard.NamedDown}}
		case easyterm.CursorForward:
			return []keyEvent{{named: keyboard.NamedRight}}
		case easyterm.CursorBackward:
			return []keyEvent{{named: keyboard.NamedLeft}}
		}
		return nil
	}

	switch b {
	case easyterm.KeyEsc:
		d.state = stEscape
		return nil
	case easyterm.KeyLineFeed, easyterm.KeyCarriageReturn:
		return []keyEvent{{named: keyboard.NamedEnter}}
	case easyterm.KeyBackspace, easyterm.KeyBackspaceCtrlH:
		return []keyEvent{{named: keyboard.NamedBackspace}}
	case ' ':
		return []keyEvent{{named: keyboard.NamedSpace}}
	}

	if b > 0x20 && b < 0x7f {
		return []keyEvent{{symbol: rune(b)}}
	}

	return nil
}
