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

import "fmt"

// BankedROM is a ROM area with several banks, only one of which is visible at
// any one time. The visible bank is chosen by writing to the area returned by
// SelectRegister(), which should be mapped separately.
type BankedROM struct {
	label string
	banks [][]uint8
	bank  int
}

// NewBankedROM is the preferred method of initialisation for the BankedROM
// memory area. The size argument is the size of each bank. The number of
// banks will be at least one.
func NewBankedROM(label string, size int, banks int) *BankedROM {
	rom := &BankedROM{
		label: label,
		banks: make([][]uint8, max(banks, 1)),
	}
	for i := range rom.banks {
		rom.banks[i] = make([]uint8, size)
	}
	return rom
}

// Label implements the Area interface.
func (rom *BankedROM) Label() string {
	return fmt.Sprintf("%s [bank %d]", rom.label, rom.bank)
}

// NumBanks returns the number of banks in the area.
func (rom *BankedROM) NumBanks() int {
	return len(rom.banks)
}

// Bank returns the currently selected bank.
func (rom *BankedROM) Bank() int {
	return rom.bank
}

// SelectBank makes the specified bank visible. The bank number wraps around
// the number of banks.
func (rom *BankedROM) SelectBank(bank int) {
	rom.bank = bank % len(rom.banks)
}

// Read implements the Area interface.
func (rom *BankedROM) Read(offset uint16) uint8 {
	return rom.banks[rom.bank][offset]
}

// Write implements the Area interface. Writing to ROM has no effect.
func (rom *BankedROM) Write(_ uint16, _ uint8) {
}

// Peek implements the Peeker interface.
func (rom *BankedROM) Peek(offset uint16) uint8 {
	return rom.banks[rom.bank][offset]
}

// Poke implements the Poker interface. The currently selected bank is
// changed.
func (rom *BankedROM) Poke(offset uint16, data uint8) {
	rom.banks[rom.bank][offset] = data
}

// SelectRegister returns the bank selection register as an Area of a single
// byte. The change of bank takes effect immediately.
func (rom *BankedROM) SelectRegister() Area {
	return &bankSelect{rom: rom}
}

type bankSelect struct {
	rom *BankedROM
}

func (sel *bankSelect) Label() string {
	return fmt.Sprintf("%s select", sel.rom.label)
}

func (sel *bankSelect) Read(_ uint16) uint8 {
	return uint8(sel.rom.bank)
}

func (sel *bankSelect) Write(_ uint16, data uint8) {
	sel.rom.SelectBank(int(data))
}

func (sel *bankSelect) Peek(_ uint16) uint8 {
	return uint8(sel.rom.bank)
}

// Poke selects the bank in the same way as Write().
func (sel *bankSelect) Poke(_ uint16, data uint8) {
	sel.rom.SelectBank(int(data))
}
