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

// Package regression checks the divider engine against an arbitrary
// precision model of the same computation. The model is bit-exact: it
// widens, scales and truncates the same way the engine does, but with
// math/big integers instead of masked registers and in one step instead of
// twenty-five ticks.
//
// The Run() function soaks the engine with randomly generated operand
// pairs. It is run from the command line with the -soak option of TRACE
// mode and from the engine's test suite. A seed for the operand generator
// can be given so that failures are reproducible.
package regression
