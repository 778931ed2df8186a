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

package gui_test

import (
	"testing"

	"github.com/jetsetilly/gophercody/gui"
	"github.com/jetsetilly/gophercody/test"
)

func TestCheckArgs(t *testing.T) {
	test.ExpectSuccess(t, gui.CheckArgs(gui.ReqSetVisibility, []gui.FeatureReqData{true}, 1))
	test.ExpectFailure(t, gui.CheckArgs(gui.ReqSetVisibility, []gui.FeatureReqData{}, 1))
	test.ExpectFailure(t, gui.CheckArgs(gui.ReqSetVisibility, []gui.FeatureReqData{true, false}, 1))

	err := gui.WrongType(gui.ReqSetVisibility, 10)
	test.ExpectEquality(t, err.Error(), "gui: ReqSetVisibility: argument of wrong type (int)")
}
