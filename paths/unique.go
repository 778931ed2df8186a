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

package paths

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// timestamp layout used by UniqueFilename()
const timestampLayout = "20060102_150405"

// UniqueFilename creates a filename that (assuming a functioning clock) should
// not collide with any existing file. Note that the function does not test for
// this.
//
// Format of returned string is:
//
//	prepend_name_YYYYMMDD_HHMMSS.ext
//
// Where name is usually the string returned by the ShortName() function of a
// cartridge loader. If name is empty the returned string will be of the
// format:
//
//	prepend_YYYYMMDD_HHMMSS.ext
//
// The extension should be given without the leading period. An empty
// extension means that no extension is added.
func UniqueFilename(prepend string, name string, ext string) string {
	return uniqueFilename(prepend, name, ext, time.Now())
}

func uniqueFilename(prepend string, name string, ext string, n time.Time) string {
	parts := make([]string, 0, 3)
	parts = append(parts, prepend)

	// the name might be a path. only the final element is interesting and any
	// spaces are replaced so that the filename is easier to use in a shell
	name = strings.TrimSpace(name)
	if name != "" {
		name = filepath.Base(name)
		name = strings.TrimSuffix(name, filepath.Ext(name))
		parts = append(parts, strings.ReplaceAll(name, " ", "_"))
	}

	parts = append(parts, n.Format(timestampLayout))

	fn := strings.Join(parts, "_")
	if ext != "" {
		fn = fmt.Sprintf("%s.%s", fn, ext)
	}

	return fn
}
