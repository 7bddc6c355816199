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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. It takes a
// formatting pattern and placeholder values, like the Errorf() function in
// the fmt package, but the pattern is retained so that errors can be
// identified later with the Is() and Has() functions:
//
//	e := curated.Errorf("monitor: %v", err)
//
//	if curated.Has(e, monitor.UserQuit) {
//		...
//	}
//
// Is() matches the outermost pattern only. Has() searches the whole chain of
// wrapped curated errors. IsAny() says whether the error was created by this
// package at all; an 'uncurated' error is by definition unexpected.
//
// The Error() function normalises the message chain by removing duplicate
// adjacent parts. This means functions can wrap errors on the way up the call
// stack without worrying about repeated prefixes in the final message. Parts
// are separated by the sub-string ': ' as suggested on p239 of "The Go
// Programming Language" (Donovan, Kernighan).
//
// Sentinel patterns should be stored as const strings, suitably named and
// commented, in the package that creates them.
package curated
