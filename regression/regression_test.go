// This file is part of DivCore.
//
// DivCore is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// DivCore is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with DivCore.  If not, see <https://www.gnu.org/licenses/>.

package regression_test

import (
	"testing"

	"github.com/jetsetilly/divcore/fixedpoint"
	"github.com/jetsetilly/divcore/regression"
	"github.com/jetsetilly/divcore/test"
)

func TestReference(t *testing.T) {
	ten := fixedpoint.FromFloat64(10.0)
	two := fixedpoint.FromFloat64(2.0)

	test.Equate(t, int32(regression.Reference(ten, two)), int32(fixedpoint.FromFloat64(5.0)))
	test.Equate(t, int32(regression.Reference(-ten, two)), int32(fixedpoint.FromFloat64(-5.0)))
	test.Equate(t, int32(regression.Reference(ten, -two)), int32(fixedpoint.FromFloat64(-5.0)))
	test.Equate(t, int32(regression.Reference(-ten, -two)), int32(fixedpoint.FromFloat64(5.0)))

	// truncation towards zero
	test.Equate(t, int32(regression.Reference(fixedpoint.One, fixedpoint.FromFloat64(3.0))), 341)
	test.Equate(t, int32(regression.Reference(-fixedpoint.One, fixedpoint.FromFloat64(3.0))), -341)
}

func TestSoak(t *testing.T) {
	// fixed seed so that a failure here is reproducible
	err := regression.Run(nil, 1000, 1)
	test.ExpectedSuccess(t, err)
}

func TestSoakBoundaries(t *testing.T) {
	// the operand extremes are where the bit-width bookkeeping would break
	// first
	extremes := []fixedpoint.Q2210{
		0x7fffffff, -0x80000000, 1, -1,
		fixedpoint.One, -fixedpoint.One,
	}

	for _, a := range extremes {
		for _, b := range extremes {
			if b == 0 {
				continue
			}
			r, exp := regression.Check(a, b)
			if r != exp {
				t.Errorf("%s / %s: engine says %s, reference says %s", a, b, r, exp)
			}
		}
	}
}
