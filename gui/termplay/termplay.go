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
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/jetsetilly/gophercody/curated"
	"github.com/jetsetilly/gophercody/gui"
	"github.com/jetsetilly/gophercody/gui/render"
	"github.com/jetsetilly/gophercody/hardware"
	"github.com/jetsetilly/gophercody/hardware/video"
	"github.com/jetsetilly/gophercody/logger"
	"github.com/jetsetilly/gophercody/terminal/easyterm"
	"github.com/jetsetilly/gophercody/terminal/easyterm/ansi"
	"golang.org/x/term"
)

// the number of frames a typed key is held down for
const holdFrames = 2

// how long Service() waits for input when there is nothing else to do
const idle = 2 * time.Millisecond

// TermPlay is a terminal implementation of the gui.GUI interface.
type TermPlay struct {
	easyterm.Terminal

	output *os.File

	cody   *hardware.Cody
	events chan gui.Event

	featureReq chan featureRequest
	featureErr chan error

	// bytes read from the terminal
	input chan byte
	dec   decoder

	// keys waiting to be released
	releases []release

	generation uint64

	// the most recently drawn screen. the screen is only redrawn if it
	// changes
	drawn string
}

type release struct {
	ev         keyEvent
	generation uint64
}

// NewTermPlay is the preferred method of initialisation for TermPlay. The
// input must be a terminal.
func NewTermPlay(input *os.File, output *os.File) (*TermPlay, error) {
	if !term.IsTerminal(int(input.Fd())) {
		return nil, curated.Errorf("termplay: %v", curated.Errorf(curated.ConfigError, fmt.Errorf("input is not a terminal")))
	}

	tp := &TermPlay{
		output:     output,
		featureReq: make(chan featureRequest, 1),
		featureErr: make(chan error),
		input:      make(chan byte, 256),
	}

	if w, h, err := term.GetSize(int(output.Fd())); err == nil {
		if w < video.TextColumns || h < video.TextRows {
			logger.Logf(logger.Allow, "termplay", "terminal is smaller than the Cody screen (%dx%d)", w, h)
		}
	}

	err := tp.Initialise(input, output)
	if err != nil {
		return nil, curated.Errorf("termplay: %v", err)
	}
	tp.CBreakMode()

	tp.Print("%s%s", ansi.ClearScreen, ansi.HideCursor)

	go tp.read(input)

	return tp, nil
}

// reading happens in its own goroutine because the read blocks
func (tp *TermPlay) read(input io.Reader) {
	r := bufio.NewReader(input)
	for {
		b, err := r.ReadByte()
		if err != nil {
			logger.Log(logger.Allow, "termplay", err)
			return
		}
		tp.input <- b
	}
}

// Destroy implements the gui.GUI interface.
func (tp *TermPlay) Destroy(output io.Writer) {
	tp.Print("%s%s\n", ansi.NormalPen, ansi.ShowCursor)
	tp.CleanUp()
}

// Service implements the gui.GUI interface.
func (tp *TermPlay) Service() {
	select {
	case r := <-tp.featureReq:
		tp.serviceFeatureRequest(r)
	default:
	}

	select {
	case b := <-tp.input:
		tp.keyboard(b)
	case <-time.After(idle):
	}

	if tp.cody == nil {
		return
	}

	frame := tp.cody.Video.Frame()
	if frame == nil || frame.Generation == tp.generation {
		return
	}
	tp.generation = frame.Generation

	tp.release()
	tp.draw(frame)
}

func (tp *TermPlay) keyboard(b byte) {
	for _, k := range tp.dec.decode(b) {
		if k.quit {
			tp.send(gui.EventQuit{})
			continue
		}
		if tp.cody == nil {
			continue
		}
		tp.cody.QueueEvent(k.event(true))
		tp.releases = append(tp.releases, release{ev: k, generation: tp.generation + holdFrames})
	}
}

// release keys that have been held for long enough
func (tp *TermPlay) release() {
	n := 0
	for _, r := range tp.releases {
		if r.generation <= tp.generation {
			tp.cody.QueueEvent(r.ev.event(false))
		} else {
			tp.releases[n] = r
			n++
		}
	}
	tp.releases = tp.releases[:n]
}

func (tp *TermPlay) draw(frame *video.Frame) {
	s := screen(frame, tp.Geometry())
	if s == tp.drawn {
		return
	}
	tp.drawn = s

	// the paper is the colour of the border
	c := render.Palette[frame.Pixel(0, 0)]
	tp.Print("%s%s%s%s", ansi.CursorHome, ansi.TrueColorPaper(c.R, c.G, c.B), pen(c.R, c.G, c.B), s)
}

// pen returns a pen colour that contrasts with the paper
func pen(r, g, b uint8) string {
	if 299*int(r)+587*int(g)+114*int(b) > 128000 {
		return ansi.TrueColorPen(0, 0, 0)
	}
	return ansi.TrueColorPen(0xff, 0xff, 0xff)
}

// screen returns the text of the frame clipped to the geometry. a geometry of
// zero means no clipping
func screen(frame *video.Frame, geom easyterm.TermGeometry) string {
	rows := video.TextRows
	cols := video.TextColumns
	if geom.Rows > 0 {
		rows = min(rows, int(geom.Rows))
	}
	if geom.Cols > 0 {
		cols = min(cols, int(geom.Cols))
	}

	var s strings.Builder
	for y := range rows {
		for x := range cols {
			s.WriteByte(printable(frame.Text[y][x]))
		}
		if y < rows-1 {
			s.WriteString("\r\n")
		}
	}
	return s.String()
}

// character codes in the ASCII range are printed as they are. other codes
// are printed as a space
func printable(c uint8) byte {
	if c >= 0x20 && c < 0x7f {
		return c
	}
	return ' '
}

func (tp *TermPlay) send(ev gui.Event) {
	if tp.events == nil {
		return
	}
	select {
	case tp.events <- ev:
	default:
	}
}
