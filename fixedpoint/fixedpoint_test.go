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

package fixedpoint_test

import (
	"testing"

	"github.com/jetsetilly/divcore/curated"
	"github.com/jetsetilly/divcore/fixedpoint"
	"github.com/jetsetilly/divcore/test"
)

func TestConversion(t *testing.T) {
	test.Equate(t, int32(fixedpoint.One), 1024)
	test.Equate(t, int32(fixedpoint.Half), 512)

	test.Equate(t, int32(fixedpoint.FromInt(5)), 5120)
	test.Equate(t, int32(fixedpoint.FromInt(-5)), -5120)

	test.Equate(t, int32(fixedpoint.FromFloat64(2.5)), 2560)
	test.Equate(t, int32(fixedpoint.FromFloat64(-2.5)), -2560)

	// conversion truncates towards zero at the 1/1024 resolution
	test.Equate(t, int32(fixedpoint.FromFloat64(0.0009)), 0)
	test.Equate(t, int32(fixedpoint.FromFloat64(-0.0009)), 0)
}

func TestRoundTrip(t *testing.T) {
	for _, f := range []float64{0, 1, -1, 2.5, -1000.125, 2097151.0} {
		test.Equate(t, int32(fixedpoint.FromFloat64(f)), int32(fixedpoint.FromFloat64(fixedpoint.FromFloat64(f).ToFloat64())))
	}
}

func TestSignBit(t *testing.T) {
	test.Equate(t, fixedpoint.FromInt(-1).IsNegative(), true)
	test.Equate(t, fixedpoint.FromInt(1).IsNegative(), false)
	test.Equate(t, fixedpoint.Q2210(0).IsNegative(), false)
}

func TestParse(t *testing.T) {
	v, err := fixedpoint.ParseQ2210("10.5")
	test.ExpectedSuccess(t, err)
	test.Equate(t, int32(v), 10752)

	v, err = fixedpoint.ParseQ2210("-0.25")
	test.ExpectedSuccess(t, err)
	test.Equate(t, int32(v), -256)

	_, err = fixedpoint.ParseQ2210("ten")
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, fixedpoint.NotANumber))

	_, err = fixedpoint.ParseQ2210("3000000")
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, fixedpoint.OutOfRange))
}
