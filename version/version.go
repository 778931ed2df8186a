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

// Package version reports the version of the application, using the build
// information embedded by the Go toolchain where possible.
package version

import (
	"fmt"
	"runtime/debug"
)

// The name to use when referring to the application
const ApplicationName = "Gophercody"

// number is set with the linker for release builds:
//
//	go build -ldflags "-X github.com/jetsetilly/gophercody/version.number=v0.1.0"
var number string

var version string
var revision string

// Version returns the version string, the revision string and whether this is a
// numbered release version.
//
// If the version string is "unreleased" then the application has been built
// without a version number. If it is "local" then there is also no vcs
// information, which can happen when running with "go run ."
func Version() (string, string, bool) {
	return version, revision, number != "" && version == number
}

func init() {
	info, _ := debug.ReadBuildInfo()
	version, revision = fromBuildInfo(info, number)
}

// fromBuildInfo returns the version and revision strings. info can be nil
func fromBuildInfo(info *debug.BuildInfo, number string) (string, string) {
	var vcs bool
	var vcsRevision string
	var vcsModified bool

	if info != nil {
		for _, v := range info.Settings {
			switch v.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				vcsRevision = v.Value
			case "vcs.modified":
				vcsModified = v.Value == "true"
			}
		}
	}

	revision := "no revision information"
	if vcsRevision != "" {
		revision = vcsRevision
		if vcsModified {
			revision = fmt.Sprintf("%s+dirty", revision)
		}
	}

	if number != "" {
		return number, revision
	}
	if vcs {
		return "unreleased", revision
	}
	return "local", revision
}
