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

// Package registers implements the two register types found in the divider
// engine's datapath: the 42 bit working register and the 84 bit AQ register.
//
// The Reg42 type is a 42 bit two's-complement register held in a uint64.
// Every operation masks its result to 42 bits so that wraparound behaves
// exactly as it would in a hardware register of that width. Operations
// return new values rather than mutate; the engine commits register values
// once per clock tick.
//
// The AQ type is the 84 bit working register of the restoring division
// algorithm. It is logically partitioned into a 42 bit remainder (the high
// half) and a 42 bit quotient-under-construction (the low half). The two
// halves are stored as a pair of masked uint64 values but AQ behaves as a
// single register: ShiftLeft() carries the MSB of the quotient half into
// the LSB of the remainder half.
package registers
