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

package version

import (
	"runtime/debug"
	"testing"

	"github.com/jetsetilly/gophercody/test"
)

func TestFromBuildInfo(t *testing.T) {
	ver, rev := fromBuildInfo(nil, "")
	test.ExpectEquality(t, ver, "local")
	test.ExpectEquality(t, rev, "no revision information")

	info := &debug.BuildInfo{
		Settings: []debug.BuildSetting{
			{Key: "vcs", Value: "git"},
			{Key: "vcs.revision", Value: "abc123"},
			{Key: "vcs.modified", Value: "true"},
		},
	}

	ver, rev = fromBuildInfo(info, "")
	test.ExpectEquality(t, ver, "unreleased")
	test.ExpectEquality(t, rev, "abc123+dirty")

	ver, rev = fromBuildInfo(info, "v0.1.0")
	test.ExpectEquality(t, ver, "v0.1.0")
	test.ExpectEquality(t, rev, "abc123+dirty")
}

func TestVersion(t *testing.T) {
	ver, _, release := Version()
	test.ExpectInequality(t, ver, "")
	test.ExpectFailure(t, release)
}
