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

package divider_test

import (
	"testing"

	"github.com/jetsetilly/divcore/fixedpoint"
	"github.com/jetsetilly/divcore/hardware/divider"
	"github.com/jetsetilly/divcore/test"
)

// start a division and step the engine until the done flag. returns the
// number of ticks after the start signal was sampled.
func divide(div *divider.Divider, a, b fixedpoint.Q2210) int {
	div.Step(divider.Inputs{Start: true, A: a, B: b})

	ticks := 0
	for !div.Done() {
		div.Step(divider.Inputs{A: a, B: b})
		ticks++

		// walkaway bound. double the advertised latency is well past any
		// legitimate completion
		if ticks > divider.Latency*2 {
			break
		}
	}

	return ticks
}

func TestExactQuotients(t *testing.T) {
	div := divider.NewDivider()

	divide(div, fixedpoint.FromFloat64(10.0), fixedpoint.FromFloat64(2.0))
	test.Equate(t, int32(div.Result()), int32(fixedpoint.FromFloat64(5.0)))

	divide(div, fixedpoint.FromFloat64(1.0), fixedpoint.FromFloat64(1.0))
	test.Equate(t, int32(div.Result()), int32(fixedpoint.One))

	divide(div, fixedpoint.FromFloat64(100.0), fixedpoint.FromFloat64(8.0))
	test.Equate(t, int32(div.Result()), int32(fixedpoint.FromFloat64(12.5)))

	// fractional operands
	divide(div, fixedpoint.FromFloat64(0.5), fixedpoint.FromFloat64(0.25))
	test.Equate(t, int32(div.Result()), int32(fixedpoint.FromFloat64(2.0)))
}

func TestTruncation(t *testing.T) {
	div := divider.NewDivider()

	// 1/3 is not representable. the quotient is truncated towards zero:
	// floor((1024 << 10) / 3072) = 341
	divide(div, fixedpoint.One, fixedpoint.FromFloat64(3.0))
	test.Equate(t, int32(div.Result()), 341)
}

func TestIdentities(t *testing.T) {
	div := divider.NewDivider()

	// zero dividend
	for _, b := range []float64{1.0, -1.0, 0.001, 1000.5} {
		divide(div, 0, fixedpoint.FromFloat64(b))
		test.Equate(t, int32(div.Result()), 0)
	}

	// unit divisor, both signs of dividend
	for _, a := range []float64{99.75, -99.75, 0.5, -2097151.0} {
		q := fixedpoint.FromFloat64(a)
		divide(div, q, fixedpoint.One)
		test.Equate(t, int32(div.Result()), int32(q))
	}
}

func TestSignCorrectness(t *testing.T) {
	div := divider.NewDivider()

	ten := fixedpoint.FromFloat64(10.0)
	two := fixedpoint.FromFloat64(2.0)
	five := fixedpoint.FromFloat64(5.0)

	divide(div, ten, -two)
	test.Equate(t, int32(div.Result()), int32(-five))

	divide(div, -ten, two)
	test.Equate(t, int32(div.Result()), int32(-five))

	divide(div, -ten, -two)
	test.Equate(t, int32(div.Result()), int32(five))
}

func TestSignRoundTrip(t *testing.T) {
	div := divider.NewDivider()

	pairs := [][2]fixedpoint.Q2210{
		{fixedpoint.FromFloat64(10.0), fixedpoint.FromFloat64(2.0)},
		{fixedpoint.FromFloat64(1.0), fixedpoint.FromFloat64(3.0)},
		{fixedpoint.Q2210(0x7fffffff), fixedpoint.FromFloat64(2.0)},
		{fixedpoint.FromFloat64(0.001), fixedpoint.FromFloat64(1000.0)},
	}

	for _, p := range pairs {
		divide(div, p[0], p[1])
		r := div.Result()

		divide(div, p[0], -p[1])
		test.Equate(t, int32(div.Result()), int32(-r))
	}
}

func TestFixedLatency(t *testing.T) {
	div := divider.NewDivider()

	pairs := [][2]fixedpoint.Q2210{
		{0, fixedpoint.One},
		{fixedpoint.FromFloat64(10.0), fixedpoint.FromFloat64(2.0)},
		{fixedpoint.Q2210(0x7fffffff), fixedpoint.Q2210(1)},
		{fixedpoint.Q2210(-0x80000000), fixedpoint.Q2210(-1)},
	}

	for _, p := range pairs {
		test.Equate(t, divide(div, p[0], p[1]), divider.Latency)
	}
}

func TestDonePulseWidth(t *testing.T) {
	div := divider.NewDivider()

	divide(div, fixedpoint.FromFloat64(10.0), fixedpoint.FromFloat64(2.0))
	test.Equate(t, div.Done(), true)

	// done is high for exactly one tick
	div.Step(divider.Inputs{})
	test.Equate(t, div.Done(), false)
}

func TestReentrancy(t *testing.T) {
	div := divider.NewDivider()

	divide(div, fixedpoint.FromFloat64(10.0), fixedpoint.FromFloat64(2.0))
	test.Equate(t, int32(div.Result()), int32(fixedpoint.FromFloat64(5.0)))

	// a second division must not be affected by residual state from the
	// first and must have the same latency
	ticks := divide(div, fixedpoint.FromFloat64(-9.0), fixedpoint.FromFloat64(3.0))
	test.Equate(t, ticks, divider.Latency)
	test.Equate(t, int32(div.Result()), int32(fixedpoint.FromFloat64(-3.0)))
}

func TestStartIgnoredDuringDivision(t *testing.T) {
	a := fixedpoint.FromFloat64(10.0)
	b := fixedpoint.FromFloat64(2.0)

	div := divider.NewDivider()
	div.Step(divider.Inputs{Start: true, A: a, B: b})

	// hammer the start line with different operands while the division is
	// in flight
	ticks := 0
	for !div.Done() {
		div.Step(divider.Inputs{Start: true, A: fixedpoint.One, B: fixedpoint.One})
		ticks++

		if ticks > divider.Latency*2 {
			t.Fatal("no done pulse")
		}
	}

	// neither the latency nor the result has been disturbed
	test.Equate(t, ticks, divider.Latency)
	test.Equate(t, int32(div.Result()), int32(fixedpoint.FromFloat64(5.0)))
}

func TestResetMidIteration(t *testing.T) {
	a := fixedpoint.FromFloat64(10.0)
	b := fixedpoint.FromFloat64(2.0)

	div := divider.NewDivider()
	div.Step(divider.Inputs{Start: true, A: a, B: b})

	// deep into the iterate phase
	for i := 0; i < 10; i++ {
		div.Step(divider.Inputs{A: a, B: b})
	}
	test.Equate(t, div.Phase().String(), "iterate")

	// reset is respected on the very next tick
	div.Step(divider.Inputs{Reset: true})
	test.Equate(t, div.Phase().String(), "wait")
	test.Equate(t, div.Done(), false)
	test.Equate(t, int32(div.Result()), 0)

	// and a subsequent division behaves like a cold start
	ticks := divide(div, fixedpoint.FromFloat64(-9.0), fixedpoint.FromFloat64(3.0))
	test.Equate(t, ticks, divider.Latency)
	test.Equate(t, int32(div.Result()), int32(fixedpoint.FromFloat64(-3.0)))
}

func TestResetAtEveryTick(t *testing.T) {
	a := fixedpoint.FromFloat64(123.5)
	b := fixedpoint.FromFloat64(-0.25)

	// whatever tick the reset lands on, the engine returns to wait and the
	// next division is unaffected
	for cut := 0; cut < divider.Latency; cut++ {
		div := divider.NewDivider()
		div.Step(divider.Inputs{Start: true, A: a, B: b})

		for i := 0; i < cut; i++ {
			div.Step(divider.Inputs{A: a, B: b})
		}

		div.Step(divider.Inputs{Reset: true})
		test.Equate(t, div.Phase().String(), "wait")
		test.Equate(t, div.Done(), false)

		ticks := divide(div, a, b)
		test.Equate(t, ticks, divider.Latency)
		test.Equate(t, int32(div.Result()), int32(fixedpoint.FromFloat64(-494.0)))
	}
}

func TestDivideByZero(t *testing.T) {
	div := divider.NewDivider()

	// no trap and no stall. the quotient is a degenerate bit pattern and is
	// deliberately not checked
	ticks := divide(div, fixedpoint.FromFloat64(10.0), 0)
	test.Equate(t, ticks, divider.Latency)
	test.Equate(t, div.Done(), true)
}

func TestDivideConvenience(t *testing.T) {
	div := divider.NewDivider()

	r, ticks := div.Divide(fixedpoint.FromFloat64(10.0), fixedpoint.FromFloat64(2.0))
	test.Equate(t, int32(r), int32(fixedpoint.FromFloat64(5.0)))
	test.Equate(t, ticks, divider.Latency)
}
