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

// Package monitor implements an interactive terminal monitor for the
// divider engine. The terminal is placed into cbreak mode so that single
// keypresses drive the engine: tick the clock, assert the start or reset
// lines, change the operands, run to completion. The full register state is
// printed after every tick.
//
// The monitor can also dump the engine's internal state as a graphviz
// digraph, which is useful when explaining the shape of the engine to
// someone who hasn't seen it before.
package monitor
