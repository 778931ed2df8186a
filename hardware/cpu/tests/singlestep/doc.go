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

// Package singlestep runs the processor tests by Tom Harte against the CPU.
//
// https://github.com/SingleStepTests/65x02
//
// Only the wdc65c02 test files are applicable. The files are not distributed
// with Gophercody. The GOPHERCODY_SINGLESTEP environment variable should point
// to a directory containing the uncompressed JSON files. The test is skipped
// if the variable is not set.
//
// The CPU is not cycle accurate at the bus level so only the final state and
// the number of cycles is compared.
package singlestep
