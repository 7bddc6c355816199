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

// Package logger provides the central logging facility for the project.
// There is only one log and it can be accessed through the package level
// functions.
//
// Log entries are tagged with the sub-system that created them. Repeated
// entries are coalesced rather than appended. The log is kept in memory;
// use SetEcho() to forward new entries to an io.Writer as they arrive, or
// Write()/Tail() to dump the accumulated log.
package logger
