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

//go:generate go run instructions_gen.go

// The generator program creates the instruction table from the CSV file in the
// parent directory.
package main

import (
	"encoding/csv"
	"fmt"
	"go/format"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jetsetilly/gophercody/hardware/cpu/instructions"
)

const definitionsCSVFile = "../instructions.csv"
const generatedGoFile = "../table.go"

const leadingBoilerPlate = "// Code generated by generator/instructions_gen.go. DO NOT EDIT.\n\n" +
	"package instructions\n\n" +
	"// Definitions is the table of instruction definitions for the 65C02, indexed by opcode.\n" +
	"var Definitions = [256]Definition{\n"

const trailingBoilerPlate = "}\n"

// addressing mode names as they appear in the CSV file
var addressingModes = map[string]instructions.AddressingMode{
	"IMPLIED":                   instructions.Implied,
	"ACCUMULATOR":               instructions.Accumulator,
	"IMMEDIATE":                 instructions.Immediate,
	"RELATIVE":                  instructions.Relative,
	"ZERO_PAGE":                 instructions.ZeroPage,
	"ZERO_PAGE_INDEXED_X":       instructions.ZeroPageIndexedX,
	"ZERO_PAGE_INDEXED_Y":       instructions.ZeroPageIndexedY,
	"ZERO_PAGE_INDIRECT":        instructions.ZeroPageIndirect,
	"INDEXED_INDIRECT":          instructions.IndexedIndirect,
	"INDIRECT_INDEXED":          instructions.IndirectIndexed,
	"ABSOLUTE":                  instructions.Absolute,
	"ABSOLUTE_INDEXED_X":        instructions.AbsoluteIndexedX,
	"ABSOLUTE_INDEXED_Y":        instructions.AbsoluteIndexedY,
	"INDIRECT":                  instructions.Indirect,
	"ABSOLUTE_INDEXED_INDIRECT": instructions.AbsoluteIndexedIndirect,
	"ZERO_PAGE_RELATIVE":        instructions.ZeroPageRelative,
}

var effects = map[string]instructions.EffectCategory{
	"READ":       instructions.Read,
	"WRITE":      instructions.Write,
	"RMW":        instructions.RMW,
	"FLOW":       instructions.Flow,
	"SUBROUTINE": instructions.Subroutine,
	"INTERRUPT":  instructions.Interrupt,
}

func parseCSV() ([256]*instructions.Definition, error) {
	var deftable [256]*instructions.Definition

	df, err := os.Open(definitionsCSVFile)
	if err != nil {
		return deftable, fmt.Errorf("error opening instruction definitions (%w)", err)
	}
	defer df.Close()

	csvr := csv.NewReader(df)
	csvr.Comment = rune('#')
	csvr.TrimLeadingSpace = true

	// the UNDEFINED field is optional
	csvr.FieldsPerRecord = -1

	line := 0
	for {
		line++
		rec, err := csvr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return deftable, err
		}

		if !(len(rec) == 6 || len(rec) == 7) {
			return deftable, fmt.Errorf("wrong number of fields in instruction definition (%s) [line %d]", rec, line)
		}

		for i := range rec {
			rec[i] = strings.TrimSpace(rec[i])
		}

		defn := instructions.Definition{}

		// field: opcode
		n, err := strconv.ParseUint(strings.TrimPrefix(rec[0], "0x"), 16, 8)
		if err != nil {
			return deftable, fmt.Errorf("invalid opcode (%s) [line %d]", rec[0], line)
		}
		defn.OpCode = uint8(n)

		if deftable[defn.OpCode] != nil {
			return deftable, fmt.Errorf("duplicate opcode (%#02x) [line %d]", defn.OpCode, line)
		}

		// field: mnemonic. the operator is the mnemonic with the bit number
		// removed
		defn.Mnemonic = rec[1]
		var ok bool
		defn.Operator, ok = instructions.OperatorFromString(strings.TrimRight(rec[1], "01234567"))
		if !ok {
			return deftable, fmt.Errorf("unknown operator for %#02x (%s) [line %d]", defn.OpCode, rec[1], line)
		}

		// field: cycle count
		defn.Cycles, err = strconv.Atoi(rec[2])
		if err != nil {
			return deftable, fmt.Errorf("invalid cycle count for %#02x (%s) [line %d]", defn.OpCode, rec[2], line)
		}

		// field: addressing mode. the addressing mode also defines how many
		// bytes an opcode requires
		defn.AddressingMode, ok = addressingModes[strings.ToUpper(rec[3])]
		if !ok {
			return deftable, fmt.Errorf("invalid addressing mode for %#02x (%s) [line %d]", defn.OpCode, rec[3], line)
		}
		defn.Bytes = defn.AddressingMode.OperandBytes() + 1

		// field: page sensitive
		switch strings.ToUpper(rec[4]) {
		case "TRUE":
			defn.PageSensitive = true
		case "FALSE":
			defn.PageSensitive = false
		default:
			return deftable, fmt.Errorf("invalid page sensitivity switch for %#02x (%s) [line %d]", defn.OpCode, rec[4], line)
		}

		// field: effect category
		defn.Effect, ok = effects[strings.ToUpper(rec[5])]
		if !ok {
			return deftable, fmt.Errorf("unknown category for %#02x (%s) [line %d]", defn.OpCode, rec[5], line)
		}

		// field: undefined opcode
		if len(rec) == 7 {
			if rec[6] != "UNDEFINED" {
				return deftable, fmt.Errorf("unknown flag for %#02x (%s) [line %d]", defn.OpCode, rec[6], line)
			}
			defn.Undefined = true
		}

		deftable[defn.OpCode] = &defn
	}

	// every opcode must be defined
	for i, defn := range deftable {
		if defn == nil {
			return deftable, fmt.Errorf("missing definition for opcode %#02x", i)
		}
	}

	return deftable, nil
}

func entry(defn *instructions.Definition) string {
	s := fmt.Sprintf("{OpCode: 0x%02x, Operator: %s, Mnemonic: %q, Bytes: %d, Cycles: %d, AddressingMode: %s, PageSensitive: %t, Effect: %s",
		defn.OpCode, defn.Operator, defn.Mnemonic, defn.Bytes, defn.Cycles, defn.AddressingMode, defn.PageSensitive, defn.Effect)
	if defn.Undefined {
		s = fmt.Sprintf("%s, Undefined: true", s)
	}
	return fmt.Sprintf("%s},\n", s)
}

func main() {
	deftable, err := parseCSV()
	if err != nil {
		fmt.Printf("error during instruction table generation: %s\n", err)
		os.Exit(10)
	}

	var output strings.Builder
	output.WriteString(leadingBoilerPlate)
	for _, defn := range deftable {
		output.WriteString(entry(defn))
	}
	output.WriteString(trailingBoilerPlate)

	formattedOutput, err := format.Source([]byte(output.String()))
	if err != nil {
		fmt.Printf("error during instruction table generation: %s\n", err)
		os.Exit(10)
	}

	f, err := os.Create(generatedGoFile)
	if err != nil {
		fmt.Printf("error during instruction table generation: %s\n", err)
		os.Exit(10)
	}
	defer f.Close()

	_, err = f.Write(formattedOutput)
	if err != nil {
		fmt.Printf("error during instruction table generation: %s\n", err)
		os.Exit(10)
	}
}
