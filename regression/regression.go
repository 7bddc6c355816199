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

package regression

import (
	"fmt"
	"io"
	"math/big"
	"math/rand"

	"github.com/jetsetilly/divcore/curated"
	"github.com/jetsetilly/divcore/fixedpoint"
	"github.com/jetsetilly/divcore/hardware/divider"
)

// Error patterns for the regression package.
const (
	// ResultMismatch says the engine's quotient disagrees with the
	// reference model.
	ResultMismatch = "regression: %s / %s: engine says %s, reference says %s"

	// LatencyMismatch says a division did not complete in the fixed number
	// of ticks.
	LatencyMismatch = "regression: %s / %s: completed in %d ticks (expected %d)"
)

// Reference is the arbitrary precision model of the division. The dividend
// magnitude is scaled up ten bits, divided by the divisor magnitude with the
// quotient rounded towards zero, truncated to 32 bits and the result sign
// re-applied.
//
// The divisor must not be zero; the engine's behaviour against an all-zero
// divisor register is deliberately left unspecified and is not modelled.
func Reference(a, b fixedpoint.Q2210) fixedpoint.Q2210 {
	sign := a.IsNegative() != b.IsNegative()

	magA := new(big.Int).Abs(big.NewInt(int64(a)))
	magA.Lsh(magA, fixedpoint.Shift)
	magB := new(big.Int).Abs(big.NewInt(int64(b)))

	q := new(big.Int).Quo(magA, magB)

	r := uint32(q.Uint64())
	if sign {
		r = -r
	}

	return fixedpoint.Q2210(int32(r))
}

// Check runs a single division through a fresh engine and through the
// Reference() model, returning both quotients.
func Check(a, b fixedpoint.Q2210) (fixedpoint.Q2210, fixedpoint.Q2210) {
	div := divider.NewDivider()
	r, _ := div.Divide(a, b)
	return r, Reference(a, b)
}

// Run soaks a divider engine with n randomly generated operand pairs,
// checking every quotient against the Reference() model and every division
// against the fixed latency. The divisor is never zero. Returns a curated
// error describing the first failing division.
func Run(output io.Writer, n int, seed int64) error {
	src := rand.New(rand.NewSource(seed))
	div := divider.NewDivider()

	for i := 0; i < n; i++ {
		a := fixedpoint.Q2210(int32(src.Uint64()))
		b := fixedpoint.Q2210(int32(src.Uint64()))
		for b == 0 {
			b = fixedpoint.Q2210(int32(src.Uint64()))
		}

		r, ticks := div.Divide(a, b)

		if ticks != divider.Latency {
			return curated.Errorf(LatencyMismatch, a, b, ticks, divider.Latency)
		}

		if exp := Reference(a, b); r != exp {
			return curated.Errorf(ResultMismatch, a, b, r, exp)
		}
	}

	if output != nil {
		fmt.Fprintf(output, "%d divisions checked against reference\n", n)
	}

	return nil
}
