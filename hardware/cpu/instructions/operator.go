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

package instructions

// Operator identifies the operation performed by an instruction, independent
// of the addressing mode.
type Operator int

// List of operators. The RMB, SMB, BBR and BBS operators take the bit number
// from the opcode.
const (
	ADC Operator = iota
	AND
	ASL
	BBR
	BBS
	BCC
	BCS
	BEQ
	BIT
	BMI
	BNE
	BPL
	BRA
	BRK
	BVC
	BVS
	CLC
	CLD
	CLI
	CLV
	CMP
	CPX
	CPY
	DEC
	DEX
	DEY
	EOR
	INC
	INX
	INY
	JMP
	JSR
	LDA
	LDX
	LDY
	LSR
	NOP
	ORA
	PHA
	PHP
	PHX
	PHY
	PLA
	PLP
	PLX
	PLY
	RMB
	ROL
	ROR
	RTI
	RTS
	SBC
	SEC
	SED
	SEI
	SMB
	STA
	STP
	STX
	STY
	STZ
	TAX
	TAY
	TRB
	TSB
	TSX
	TXA
	TXS
	TYA
	WAI

	numOperators
)

var operatorNames = [numOperators]string{
	"ADC",
	"AND",
	"ASL",
	"BBR",
	"BBS",
	"BCC",
	"BCS",
	"BEQ",
	"BIT",
	"BMI",
	"BNE",
	"BPL",
	"BRA",
	"BRK",
	"BVC",
	"BVS",
	"CLC",
	"CLD",
	"CLI",
	"CLV",
	"CMP",
	"CPX",
	"CPY",
	"DEC",
	"DEX",
	"DEY",
	"EOR",
	"INC",
	"INX",
	"INY",
	"JMP",
	"JSR",
	"LDA",
	"LDX",
	"LDY",
	"LSR",
	"NOP",
	"ORA",
	"PHA",
	"PHP",
	"PHX",
	"PHY",
	"PLA",
	"PLP",
	"PLX",
	"PLY",
	"RMB",
	"ROL",
	"ROR",
	"RTI",
	"RTS",
	"SBC",
	"SEC",
	"SED",
	"SEI",
	"SMB",
	"STA",
	"STP",
	"STX",
	"STY",
	"STZ",
	"TAX",
	"TAY",
	"TRB",
	"TSB",
	"TSX",
	"TXA",
	"TXS",
	"TYA",
	"WAI",
}

func (o Operator) String() string {
	if o < 0 || o >= numOperators {
		return "unknown operator"
	}
	return operatorNames[o]
}

// OperatorFromString returns the Operator with the given name.
func OperatorFromString(s string) (Operator, bool) {
	for i, n := range operatorNames {
		if n == s {
			return Operator(i), true
		}
	}
	return 0, false
}
