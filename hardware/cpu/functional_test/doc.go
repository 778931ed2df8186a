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

// Package functional_test runs the 6502 and 65C02 functional tests as defined
// by Klaus Dormann. https://github.com/Klaus2m5/6502_65C02_functional_tests
//
// The assembled binaries are not distributed with Gophercody. The path to the
// binary is given by the GOPHERCODY_FUNCTIONAL environment variable and the
// address of the success trap by GOPHERCODY_FUNCTIONAL_SUCCESS. The test is
// skipped if either is not set.
//
// The binaries should be assembled with the load address of zero, the
// program origin at 0x0400 and with ROM_vectors disabled.
package functional_test
