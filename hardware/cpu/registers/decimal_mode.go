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

package registers

// the decimal mode functions follow the behaviour of the CMOS 6502. the N and Z
// flags of the CMOS part are valid in decimal mode and are taken from the
// adjusted result, so the CPU can read them from the register once the
// function returns.
//
// the sequence of operations, including the treatment of invalid BCD values,
// are as described in "Decimal Mode" by Bruce Clark, appendix A:
//
// http://www.6502.org/tutorials/decimal_mode.html

// AddDecimal adds value to register as though both are decimal
// representations. Returns carry and overflow states.
func (r *Register) AddDecimal(val uint8, carry bool) (rcarry bool, overflow bool) {
	var c int
	if carry {
		c = 1
	}

	a := int(r.value)
	b := int(val)

	lo := (a & 0x0f) + (b & 0x0f) + c
	if lo >= 0x0a {
		lo = ((lo + 0x06) & 0x0f) + 0x10
	}

	// overflow is a signed interpretation of the sum before the high nibble
	// is adjusted
	s := int(int8(r.value&0xf0)) + int(int8(val&0xf0)) + lo
	overflow = s < -128 || s > 127

	sum := (a & 0xf0) + (b & 0xf0) + lo
	if sum >= 0xa0 {
		sum += 0x60
	}

	r.value = uint8(sum)

	return sum >= 0x100, overflow
}

// SubtractDecimal subtracts value from register as though both are decimal
// representations. Returns carry and overflow states.
//
// The carry and overflow states are the same as for binary subtraction.
func (r *Register) SubtractDecimal(val uint8, carry bool) (rcarry bool, overflow bool) {
	var c int
	if carry {
		c = 1
	}

	a := int(r.value)
	b := int(val)

	lo := (a & 0x0f) - (b & 0x0f) + c - 1
	diff := a - b + c - 1

	bin := NewRegister(r.value, "")
	rcarry, overflow = bin.Subtract(val, carry)

	if diff < 0 {
		diff -= 0x60
	}
	if lo < 0 {
		diff -= 0x06
	}

	r.value = uint8(diff)

	return rcarry, overflow
}
