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

package divider

import (
	"fmt"

	"github.com/jetsetilly/divcore/fixedpoint"
	"github.com/jetsetilly/divcore/hardware/divider/registers"
	"github.com/jetsetilly/divcore/logger"
)

// IterationBound is the number of ticks spent in the Iterate phase. Each
// tick retires two quotient bits, covering the full 42 bit internal width.
// The value is a function of the internal operand width, not of the operand
// values; restoring division has no early exit.
const IterationBound = 21

// Latency is the number of ticks from the Wait tick that samples the start
// signal to the tick on which done is asserted. Prepare, Normalize and Load
// take one tick each, Iterate takes IterationBound ticks and Finish takes
// one tick.
const Latency = IterationBound + 4

// Inputs gathers the values at the engine's input ports. Inputs are sampled
// on every call to Step().
//
// Reset has the highest priority and is respected in any phase. Start is
// level sensitive and respected only in the Wait phase; asserting it during
// an active division has no effect. The operands need only be valid while
// the engine samples them, in the tick after start is accepted.
type Inputs struct {
	Reset bool
	Start bool
	A     fixedpoint.Q2210
	B     fixedpoint.Q2210
}

// Divider is the division engine. All of the engine's registers live here
// and are updated wholesale once per call to Step().
//
// Must be created with NewDivider().
type Divider struct {
	phase Phase

	// widened operands. 42 bits, dividend pre-shifted ten bits left so that
	// fixed point scaling survives the division
	dividend registers.Reg42
	divisor  registers.Reg42

	// sign of the result. fixed in the Normalize phase, consumed in the
	// Finish phase
	sign bool

	// the working registers of the restoring division loop. m holds the
	// divisor magnitude and never changes during Iterate
	aq registers.AQ
	m  registers.Reg42

	// number of Iterate ticks performed so far
	steps int

	// registered outputs
	done   bool
	result fixedpoint.Q2210
}

// NewDivider is the preferred method of initialisation of the Divider type.
func NewDivider() *Divider {
	return &Divider{}
}

// Phase the engine is currently in.
func (div *Divider) Phase() Phase {
	return div.phase
}

// Done is the completion output port. It is high for exactly one tick per
// division.
func (div *Divider) Done() bool {
	return div.done
}

// Result is the quotient output port. The value is only meaningful on the
// tick that Done() is high; before the first completed division it reads
// zero.
func (div *Divider) Result() fixedpoint.Q2210 {
	return div.result
}

func (div *Divider) String() string {
	return fmt.Sprintf("%s: %s m=%s steps=%02d done=%v", div.phase, div.aq, div.m, div.steps, div.done)
}

// Step advances the engine one clock tick. The next register set is computed
// from the current one and committed in a single assignment; each register
// has exactly one writer per tick.
func (div *Divider) Step(inp Inputs) {
	// reset preempts everything, including an in-progress iteration
	if inp.Reset {
		*div = Divider{}
		return
	}

	next := *div

	switch div.phase {
	case PhaseWait:
		next.done = false
		if inp.Start {
			next.phase = PhasePrepare
		}

	case PhasePrepare:
		// sign-extend both operands to the working width. the dividend is
		// then shifted ten bits left, realising the Q22.10 scaling before
		// the division rather than after it
		next.dividend = registers.SignExtend(inp.A.Bits()).ShiftLeft(fixedpoint.Shift)
		next.divisor = registers.SignExtend(inp.B.Bits())
		next.phase = PhaseNormalize

	case PhaseNormalize:
		// the sign bits of the widened operands are the sign bits of the
		// original operands. the dividend's original sign bit ends up in the
		// register MSB after the pre-shift
		next.sign = div.dividend.IsNegative() != div.divisor.IsNegative()
		if div.dividend.IsNegative() {
			next.dividend = div.dividend.TwosComplement()
		}
		if div.divisor.IsNegative() {
			next.divisor = div.divisor.TwosComplement()
		}
		next.phase = PhaseLoad

	case PhaseLoad:
		next.aq = registers.LoadAQ(div.dividend)
		next.m = div.divisor
		next.steps = 0
		next.phase = PhaseIterate

	case PhaseIterate:
		// two restoring sub-steps per tick is what makes this radix-4
		// rather than radix-2. only the AQ value after both sub-steps is
		// committed
		aq := restoringStep(div.aq, div.m)
		aq = restoringStep(aq, div.m)
		next.aq = aq
		next.steps = div.steps + 1
		if next.steps >= IterationBound {
			next.steps = 0
			next.phase = PhaseFinish
		}

	case PhaseFinish:
		q := div.aq.Quotient().Low32()
		if div.sign {
			q = -q
		}
		next.result = fixedpoint.Q2210(int32(q))
		next.done = true
		next.phase = PhaseWait

	default:
		// unreachable so long as the phase set stays closed. clear the
		// outputs and log
		next.done = false
		next.result = 0
		next.phase = PhaseWait
		logger.Logf("divider", "unknown phase (%d)", int(div.phase))
	}

	*div = next
}
