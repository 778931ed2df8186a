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

package memory

import (
	"fmt"
	"io"

	"github.com/jetsetilly/gophercody/hardware/memory/cpubus"
)

// Access is a single memory access noted by the Recorder.
type Access struct {
	Address uint16
	Data    uint8
	Write   bool
}

func (a Access) String() string {
	if a.Write {
		return fmt.Sprintf("write %04x <- %02x", a.Address, a.Data)
	}
	return fmt.Sprintf("read  %04x -> %02x", a.Address, a.Data)
}

// Recorder wraps an implementation of cpubus.Memory and notes every access.
// The Recorder itself implements cpubus.Memory.
type Recorder struct {
	mem      cpubus.Memory
	accesses []Access

	// if Output is not nil every access is written to it as it happens
	Output io.Writer
}

// NewRecorder is the preferred method of initialisation for the Recorder type.
func NewRecorder(mem cpubus.Memory) *Recorder {
	return &Recorder{
		mem:      mem,
		accesses: make([]Access, 0, 16),
	}
}

// Accesses returns the accesses since the last call to Reset().
func (rec *Recorder) Accesses() []Access {
	return rec.accesses
}

// Reset forgets all recorded accesses.
func (rec *Recorder) Reset() {
	rec.accesses = rec.accesses[:0]
}

func (rec *Recorder) note(a Access) {
	rec.accesses = append(rec.accesses, a)
	if rec.Output != nil {
		fmt.Fprintln(rec.Output, a.String())
	}
}

// Read implements the cpubus.Memory interface.
func (rec *Recorder) Read(address uint16) (uint8, error) {
	data, err := rec.mem.Read(address)
	rec.note(Access{Address: address, Data: data})
	return data, err
}

// Write implements the cpubus.Memory interface.
func (rec *Recorder) Write(address uint16, data uint8) error {
	rec.note(Access{Address: address, Data: data, Write: true})
	return rec.mem.Write(address, data)
}
