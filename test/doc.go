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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The Expect*() functions report a failed test but allow the test to continue.
// The Demand*() functions stop the test immediately. Use the Demand*()
// functions when the values being tested are required to be correct for the
// remainder of the test to be meaningful.
//
// All functions accept optional tags. The tags are printed at the beginning of
// any failure message and are useful when the test is being performed in a
// loop. For example:
//
//	for i, c := range cases {
//		test.ExpectEquality(t, f(c.in), c.out, i, c.in)
//	}
//
// It is worth describing how the ExpectSuccess() and ExpectFailure() functions
// handle the nil type because it is not obvious. The nil type is considered a
// success. This may not be how we want to interpret nil in all situations but
// because of how errors usually work (nil to indicate no error) we need to
// interpret nil in this way.
//
// The RingWriter type implements the io.Writer interface and is used to
// capture the most recent output of a writer.
package test
