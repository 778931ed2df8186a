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

package hardware

import (
	"fmt"
	"io"
	"strings"

	"github.com/jetsetilly/gophercody/disassembly"
	"github.com/jetsetilly/gophercody/hardware/cpu/execution"
	"github.com/jetsetilly/gophercody/hardware/memory"
)

type tracer struct {
	output io.Writer

	// records every bus access if not nil
	recorder *memory.Recorder

	// decoded before the instruction is executed
	entry *disassembly.Entry

	attr disassembly.WriteAttr
	line strings.Builder
}

func newTracer(output io.Writer) *tracer {
	return &tracer{
		output: output,
		attr: disassembly.WriteAttr{
			ByteCode: true,
			Cycles:   true,
			Notes:    true,
		},
	}
}

func (tr *tracer) before(cody *Cody) {
	if tr.recorder != nil {
		tr.recorder.Reset()
	}
	tr.entry = disassembly.Decode(cody.Mem, cody.CPU.PC.Address())
}

func (tr *tracer) after(cody *Cody) {
	r := cody.CPU.LastResult

	// the CPU might have serviced an interrupt or idled instead of executing
	// the decoded instruction
	if r.Interrupt != execution.NoInterrupt || r.Halted {
		tr.entry = disassembly.FormatResult(r)
	} else {
		tr.entry.UpdateExecution(r)
	}

	tr.line.Reset()
	_ = disassembly.WriteEntry(&tr.line, tr.attr, tr.entry)
	fmt.Fprintf(tr.output, "%s  %s\n", strings.TrimRight(tr.line.String(), "\n"), cody.CPU)
}
