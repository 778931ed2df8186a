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
	"io"
	"strings"
)

// WriteAttr controls what is printed by the Write*() functions.
type WriteAttr struct {
	ByteCode bool
	Cycles   bool
	Notes    bool
}

// WriteEntry writes a single Entry to io.Writer.
func WriteEntry(output io.Writer, attr WriteAttr, e *Entry) error {
	s := strings.Builder{}

	s.WriteString(e.GetField(FldAddress))
	s.WriteString(" ")

	if attr.ByteCode {
		s.WriteString(e.GetField(FldBytecode))
		s.WriteString(" ")
	}

	s.WriteString(e.GetField(FldOperator))
	s.WriteString(" ")
	s.WriteString(e.GetField(FldOperand))

	if attr.Cycles {
		s.WriteString(" ")
		s.WriteString(e.GetField(FldCycles))
	}

	if attr.Notes {
		s.WriteString(" ")
		s.WriteString(e.GetField(FldNotes))
	}

	_, err := io.WriteString(output, strings.TrimRight(s.String(), " ")+"\n")
	return err
}
