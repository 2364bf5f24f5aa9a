// This file is part of ibexsoc.
//
// ibexsoc is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// ibexsoc is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with ibexsoc.  If not, see <https://www.gnu.org/licenses/>.

package performance_test

import (
	"strings"
	"testing"
	"time"

	"github.com/squirrelhw/ibexsoc/performance"
	"github.com/squirrelhw/ibexsoc/test"
)

func TestCheck(t *testing.T) {
	tw := &test.Writer{}

	err := performance.Check(tw, false, false, false, 100*time.Millisecond)
	test.ExpectedSuccess(t, err)

	if !strings.Contains(tw.String(), "packets/sec") {
		t.Errorf("unexpected performance report: %q", tw.String())
	}
}
