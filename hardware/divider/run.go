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
	"github.com/jetsetilly/divcore/fixedpoint"
)

// Divide is a convenience for hosts that want a complete division and have
// no interest in individual ticks. The engine is reset, started and stepped
// until the done output is asserted. Returns the quotient and the number of
// ticks taken after the start signal was sampled; the tick count is always
// Latency.
func (div *Divider) Divide(a, b fixedpoint.Q2210) (fixedpoint.Q2210, int) {
	div.Step(Inputs{Reset: true})
	div.Step(Inputs{Start: true, A: a, B: b})

	ticks := 0
	for !div.Done() {
		div.Step(Inputs{A: a, B: b})
		ticks++
	}

	return div.Result(), ticks
}
