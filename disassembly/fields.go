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

import "fmt"

// Field identifies which part of the disassembly entry is of interest.
type Field int

// List of valid fields.
const (
	FldBytecode Field = iota
	FldAddress
	FldOperator
	FldOperand
	FldCycles
	FldNotes
)

// required widths (in characters) of the fields. these are the largest
// possible values for each field
var widths = [...]int{
	FldBytecode: 8,
	FldAddress:  5,
	FldOperator: 4,
	FldOperand:  10,
	FldCycles:   2,
	FldNotes:    0,
}

// GetField returns the formatted field from the specified Entry.
func (e *Entry) GetField(field Field) string {
	var s string

	switch field {
	case FldBytecode:
		s = e.Bytecode
	case FldAddress:
		s = e.Address
	case FldOperator:
		s = e.Operator
	case FldOperand:
		s = e.Operand
	case FldCycles:
		s = e.Cycles()
	case FldNotes:
		s = e.Notes()
	default:
		return ""
	}

	return fmt.Sprintf("%-*s", widths[field], s)
}
