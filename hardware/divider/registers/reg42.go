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

// Width is the number of bits in a Reg42 register.
const Width = 42

// Mask selects the valid bits of a Reg42 value held in a uint64.
const Mask = uint64(1)<<Width - 1

// signBit is the MSB of a Reg42 value.
const signBit = uint64(1) << (Width - 1)

// Reg42 is a 42 bit two's-complement register. The underlying uint64 only
// ever has the low 42 bits set.
type Reg42 uint64

// SignExtend returns the 42 bit register holding the sign-extended value of
// a 32 bit word.
func SignExtend(v uint32) Reg42 {
	if v&0x80000000 == 0x80000000 {
		return Reg42((uint64(v) | ^uint64(0xffffffff)) & Mask)
	}
	return Reg42(v)
}

// Value returns the bit pattern of the register.
func (r Reg42) Value() uint64 {
	return uint64(r)
}

// Low32 returns the low 32 bits of the register.
func (r Reg42) Low32() uint32 {
	return uint32(r)
}

// IsNegative checks the sign bit of the register.
func (r Reg42) IsNegative() bool {
	return uint64(r)&signBit == signBit
}

// IsZero checks if the register is zero.
func (r Reg42) IsZero() bool {
	return r == 0
}

// ShiftLeft shifts the register n bits to the left. Bits shifted beyond the
// register width are lost.
func (r Reg42) ShiftLeft(n uint) Reg42 {
	return Reg42((uint64(r) << n) & Mask)
}

// Sub subtracts v from the register. The result wraps at the register width.
func (r Reg42) Sub(v Reg42) Reg42 {
	return Reg42((uint64(r) - uint64(v)) & Mask)
}

// TwosComplement negates the register; bitwise complement plus one, wrapping
// at the register width. Negating the most negative value returns itself.
func (r Reg42) TwosComplement() Reg42 {
	return Reg42((^uint64(r) + 1) & Mask)
}

func (r Reg42) String() string {
	return fmt.Sprintf("%011x", uint64(r))
}
