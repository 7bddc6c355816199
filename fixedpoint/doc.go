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

// Package fixedpoint defines the Q22.10 number format used at the ports of
// the divider engine. A Q22.10 value is a 32 bit signed two's-complement
// word with 22 integer bits and 10 fractional bits. The format gives a
// resolution of 1/1024 over a range of roughly +/- two million.
//
// The package deliberately provides only what the engine's boundary needs:
// conversion to and from native Go numbers, parsing of decimal strings from
// the command line, and string representation. All arithmetic on Q22.10
// values happens inside the divider engine at its internal working width.
package fixedpoint
