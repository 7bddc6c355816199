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

// Phase records which stage of the division the engine is in. The engine
// moves through the phases in a fixed order: only the Wait phase (which
// waits for the start signal) and the Iterate phase (which repeats for a
// fixed number of ticks) are held for more than one tick.
type Phase int

// Valid Phase values.
const (
	PhaseWait Phase = iota
	PhasePrepare
	PhaseNormalize
	PhaseLoad
	PhaseIterate
	PhaseFinish
)

func (ph Phase) String() string {
	switch ph {
	case PhaseWait:
		return "wait"
	case PhasePrepare:
		return "prepare"
	case PhaseNormalize:
		return "normalize"
	case PhaseLoad:
		return "load"
	case PhaseIterate:
		return "iterate"
	case PhaseFinish:
		return "finish"
	}
	return "unknown"
}
