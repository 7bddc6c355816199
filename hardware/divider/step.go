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
	"github.com/jetsetilly/divcore/hardware/divider/registers"
)

// restoringStep is one sub-step of the restoring division loop, retiring a
// single quotient bit:
//
//  1. shift AQ one bit to the left
//  2. trial-subtract the divisor from the remainder half
//  3. if the trial went negative, restore the pre-subtraction remainder and
//     leave the new quotient bit at zero
//  4. otherwise keep the subtraction result and set the quotient bit
//
// The function is pure. The Iterate phase applies it twice per tick,
// combinationally, and commits only the final value.
func restoringStep(aq registers.AQ, m registers.Reg42) registers.AQ {
	aq = aq.ShiftLeft()

	trial := aq.Remainder().Sub(m)
	if trial.IsNegative() {
		// restore. the shifted remainder is still in place
		return aq
	}

	return aq.WithRemainder(trial).SetQuotientBit()
}
