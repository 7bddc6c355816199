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

// Package divider emulates a cycle-synchronous fixed point division unit.
// Two signed Q22.10 operands in, one signed Q22.10 quotient out, computed by
// radix-4 restoring division. The algorithm retires two quotient bits per
// clock cycle.
//
// The engine is advanced with the Step() function. One call to Step() is one
// clock tick. Inputs are sampled at every tick; the done and result outputs
// are registered and can be read between ticks. A division has a constant
// latency of 25 ticks from the tick that samples the start signal to the
// tick on which done is asserted, regardless of operand values.
//
//	div := divider.NewDivider()
//	div.Step(divider.Inputs{Start: true, A: a, B: b})
//	for !div.Done() {
//		div.Step(divider.Inputs{A: a, B: b})
//	}
//	r := div.Result()
//
// Internally the engine widens both operands to 42 bits, pre-shifting the
// dividend ten bits to the left so that the integer quotient of the two bit
// patterns is itself a Q22.10 value. Division is then performed on operand
// magnitudes, with the result sign (the XOR of the input signs) re-applied
// at the end.
//
// Division by zero is not detected. The restoring recurrence runs as normal
// against an all-zero divisor register and produces a degenerate quotient
// pattern, exactly as the hardware would. Similarly, magnitudes that do not
// fit the representable range wrap per two's-complement arithmetic. There is
// no fault flag of any kind.
package divider
