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

package fixedpoint

import (
	"fmt"
	"math"
	"strconv"

	"github.com/jetsetilly/divcore/curated"
)

// Q2210 is a signed fixed point number. 22 integer bits and 10 fractional
// bits in a 32 bit two's-complement word. The MSB is the sign bit.
type Q2210 int32

// Shift is the number of fractional bits in a Q2210 value.
const Shift = 10

// Useful Q2210 constants.
const (
	One  Q2210 = 1 << Shift
	Half Q2210 = 1 << (Shift - 1)

	// FracMask masks the fractional bits of a Q2210 value.
	FracMask Q2210 = One - 1
)

// Error patterns for the ParseQ2210() function.
const (
	NotANumber = "fixedpoint: not a number: %s"
	OutOfRange = "fixedpoint: out of range: %s"
)

// FromInt returns the Q2210 representation of an integer. Values outside the
// 22 bit integer range wrap, as they would in the hardware register.
func FromInt(v int32) Q2210 {
	return Q2210(v << Shift)
}

// FromFloat64 returns the Q2210 representation of a float, truncated towards
// zero in the same way a synthesis tool would truncate a real literal.
func FromFloat64(f float64) Q2210 {
	return Q2210(int32(f * float64(One)))
}

// ToFloat64 returns the value of q as a float.
func (q Q2210) ToFloat64() float64 {
	return float64(q) / float64(One)
}

// IsNegative checks the sign bit of q.
func (q Q2210) IsNegative() bool {
	return q < 0
}

// Bits returns the raw bit pattern of q. The divider datapath works on bit
// patterns, not values.
func (q Q2210) Bits() uint32 {
	return uint32(q)
}

func (q Q2210) String() string {
	return fmt.Sprintf("%s [%#08x]", strconv.FormatFloat(q.ToFloat64(), 'f', -1, 64), uint32(q))
}

// ParseQ2210 converts a decimal string to a Q2210 value. The string can have
// a fractional part, which is truncated towards zero to the nearest 1/1024.
func ParseQ2210(s string) (Q2210, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, curated.Errorf(NotANumber, s)
	}
	if f >= float64(math.MaxInt32)/float64(One) || f < float64(math.MinInt32)/float64(One) {
		return 0, curated.Errorf(OutOfRange, s)
	}
	return FromFloat64(f), nil
}
