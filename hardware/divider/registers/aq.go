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

package registers

import (
	"fmt"
)

// AQ is the 84 bit working register of the restoring division algorithm.
// The high half is the evolving partial remainder, the low half is the
// quotient under construction. The division loop shifts bits out of the
// quotient half into the remainder half and shifts computed quotient bits
// back in at the bottom.
type AQ struct {
	rem Reg42
	quo Reg42
}

// LoadAQ returns an AQ register with the remainder half zeroed and the
// quotient half holding the dividend.
func LoadAQ(dividend Reg42) AQ {
	return AQ{quo: dividend}
}

// Remainder returns the high half of the register.
func (aq AQ) Remainder() Reg42 {
	return aq.rem
}

// Quotient returns the low half of the register.
func (aq AQ) Quotient() Reg42 {
	return aq.quo
}

// ShiftLeft shifts the whole 84 bit register one bit to the left. The MSB of
// the quotient half moves into the LSB of the remainder half. The vacated
// bit at the bottom is zero filled; the MSB of the remainder half is lost.
func (aq AQ) ShiftLeft() AQ {
	carry := Reg42(uint64(aq.quo) >> (Width - 1))
	return AQ{
		rem: aq.rem.ShiftLeft(1) | carry,
		quo: aq.quo.ShiftLeft(1),
	}
}

// WithRemainder replaces the remainder half of the register.
func (aq AQ) WithRemainder(rem Reg42) AQ {
	return AQ{rem: rem, quo: aq.quo}
}

// SetQuotientBit sets the LSB of the quotient half. Used after a successful
// trial subtraction; the bit position has just been vacated by ShiftLeft().
func (aq AQ) SetQuotientBit() AQ {
	return AQ{rem: aq.rem, quo: aq.quo | 1}
}

func (aq AQ) String() string {
	return fmt.Sprintf("rem=%s quo=%s", aq.rem, aq.quo)
}
