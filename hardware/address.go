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
	"strconv"
	"strings"

	"github.com/jetsetilly/gophercody/curated"
)

// ParseAddress parses an address from a string. Hexadecimal addresses must
// have a prefix of "0x" or "$". All other addresses are decimal.
func ParseAddress(s string) (uint16, error) {
	s = strings.TrimSpace(s)

	base := 10
	switch {
	case strings.HasPrefix(s, "$"):
		s = s[1:]
		base = 16
	case strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0X"):
		s = s[2:]
		base = 16
	}

	v, err := strconv.ParseUint(s, base, 16)
	if err != nil {
		return 0, curated.Errorf(curated.ConfigError, fmt.Errorf("address: %w", err))
	}

	return uint16(v), nil
}
