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

package disassembly

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gophercody/hardware/cpu/execution"
)

// EntryLevel describes the level of the Entry.
type EntryLevel int

// List of valid EntryLevel in increasing reliability.
//
// Decoded entries have been decoded as though the address is the start of a
// valid instruction. Executed entries have been updated with the result of
// the CPU executing the instruction.
const (
	EntryLevelDecoded EntryLevel = iota
	EntryLevelExecuted
)

// Entry is a disassembled instruction.
type Entry struct {
	// the level of reliability of the information in the Entry
	Level EntryLevel

	// the execution result. for decoded entries the result is as it would be
	// with no page faults and no branching
	Result execution.Result

	// string representations of information in execution.Result. the
	// GetField() function will apply white space padding suitable for
	// columnation
	Bytecode string
	Address  string
	Operator string
	Operand  string
}

func (e *Entry) String() string {
	return strings.TrimSpace(fmt.Sprintf("%s %s %s", e.Address, e.Operator, e.Operand))
}

// UpdateExecution updates the entry with the result of executing the
// instruction. The result must be for the same address as the entry.
func (e *Entry) UpdateExecution(result execution.Result) {
	if result.Address != e.Result.Address {
		return
	}
	e.Result = result
	e.Level = EntryLevelExecuted
}

// Cycles returns the number of cycles for the instruction. For executed
// entries this is the actual number of cycles.
func (e *Entry) Cycles() string {
	if e.Result.Defn == nil {
		return "?"
	}

	if e.Level < EntryLevelExecuted {
		if e.Result.Defn.PageSensitive {
			return fmt.Sprintf("%d*", e.Result.Defn.Cycles)
		}
		return fmt.Sprintf("%d", e.Result.Defn.Cycles)
	}

	return fmt.Sprintf("%d", e.Result.Cycles)
}

// Notes returns a string returning notes about the most recent execution. The
// information is made up of the BranchSuccess, PageFault and Decimal fields.
func (e *Entry) Notes() string {
	if e.Level < EntryLevelExecuted {
		if e.Result.Defn != nil && e.Result.Defn.Undefined {
			return "undefined"
		}
		return ""
	}

	s := strings.Builder{}

	if e.Result.Defn != nil && e.Result.Defn.IsBranch() {
		if e.Result.BranchSuccess {
			s.WriteString("branch succeeded ")
		} else {
			s.WriteString("branch failed ")
		}

		if e.Result.PageFault {
			s.WriteString("with page-fault ")
		}
	} else if e.Result.PageFault {
		s.WriteString("page-fault ")
	}

	if e.Result.Decimal {
		s.WriteString("decimal ")
	}

	if e.Result.Error != "" {
		s.WriteString(e.Result.Error)
	}

	return strings.TrimSpace(s.String())
}
