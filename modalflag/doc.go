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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes and
// allows different flags for each mode.
//
// Arguments are given with NewArgs() and then parsed with Parse(), which
// takes no arguments. For example (error handling not shown):
//
//	md = Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	_, _ = md.Parse()
//
// Non-flag arguments can be retrieved with the RemainingArgs() or GetArg()
// functions after parsing.
//
// Flags are added in a similar way to the flag package:
//
//	fast := md.AddBool("fast", false, "run as quickly as possible")
//
// The pointer returned by AddBool() will be updated by the next call to
// Parse().
//
// A mode is a command line argument that puts the program into a different
// mode of operation, with its own set of flags. Modes are added with
// AddSubModes(). The first mode in the list is the default mode, used when
// the first non-flag argument is not the name of a mode. Mode names are case
// insensitive.
//
//	md.AddSubModes("RUN", "DISASM")
//	_, _ = md.Parse()
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		fast := md.AddBool("fast", false, "run as quickly as possible")
//		p, err := md.Parse()
//		...
//	case "DISASM":
//		...
//	}
//
// Modes can be chained to any depth. The Path() function returns the list of
// modes found so far.
package modalflag
