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

package statedump

import (
	"fmt"
	"io"
	"os"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gophercody/curated"
	"github.com/jetsetilly/gophercody/hardware"
	"github.com/jetsetilly/gophercody/hardware/memory/cpubus"
)

// CPU registers at the time of the snapshot.
type CPU struct {
	PC      string
	A       string
	X       string
	Y       string
	SP      string
	Status  string
	Waiting bool
	Stopped bool

	// the most recently executed instruction
	Last *Instruction
}

// Instruction is a summary of an executed instruction.
type Instruction struct {
	Address  string
	Operator string
	Cycles   int
}

// Region of the memory map.
type Region struct {
	Origin string
	Memtop string
	Label  string
}

// Vectors read from memory.
type Vectors struct {
	Reset string
	IRQ   string
	NMI   string
}

// State is a snapshot of the Cody.
type State struct {
	Cycles   uint64
	CPU      *CPU
	Vectors  *Vectors
	Regions  []*Region
	VIA      string
	Keyboard string
	UART1    string
	UART2    string
	Video    string
}

// Snapshot creates a new State from the Cody.
func Snapshot(cody *hardware.Cody) *State {
	st := &State{
		Cycles: cody.Cycles(),
		CPU: &CPU{
			PC:      cody.CPU.PC.String(),
			A:       cody.CPU.A.String(),
			X:       cody.CPU.X.String(),
			Y:       cody.CPU.Y.String(),
			SP:      cody.CPU.SP.String(),
			Status:  cody.CPU.Status.String(),
			Waiting: cody.CPU.Waiting,
			Stopped: cody.CPU.Stopped,
		},
		Vectors: &Vectors{
			Reset: vector(cody, cpubus.Reset),
			IRQ:   vector(cody, cpubus.IRQ),
			NMI:   vector(cody, cpubus.NMI),
		},
		VIA:      cody.VIA.String(),
		Keyboard: cody.Keyboard.String(),
		UART1:    cody.UART1.String(),
		UART2:    cody.UART2.String(),
		Video:    cody.Video.String(),
	}

	if r := cody.CPU.LastResult; r.Final && r.Defn != nil {
		st.CPU.Last = &Instruction{
			Address:  fmt.Sprintf("%04x", r.Address),
			Operator: r.Defn.Operator.String(),
			Cycles:   r.Cycles,
		}
	}

	for _, r := range cody.Mem.Regions() {
		st.Regions = append(st.Regions, &Region{
			Origin: fmt.Sprintf("%04x", r.Origin),
			Memtop: fmt.Sprintf("%04x", r.Memtop),
			Label:  r.Area.Label(),
		})
	}

	return st
}

func vector(cody *hardware.Cody, address uint16) string {
	lo, err := cody.Mem.Peek(address)
	if err != nil {
		return "unmapped"
	}
	hi, err := cody.Mem.Peek(address + 1)
	if err != nil {
		return "unmapped"
	}
	return fmt.Sprintf("%02x%02x", hi, lo)
}

// Write a snapshot of the Cody to the writer as a Graphviz graph.
func Write(w io.Writer, cody *hardware.Cody) {
	memviz.Map(w, Snapshot(cody))
}

// WriteFile creates the named file and writes a snapshot of the Cody to it.
func WriteFile(filename string, cody *hardware.Cody) error {
	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf("statedump: %v", curated.Errorf(curated.IOError, err))
	}
	defer f.Close()

	Write(f, cody)

	if err := f.Close(); err != nil {
		return curated.Errorf("statedump: %v", curated.Errorf(curated.IOError, err))
	}
	return nil
}
