// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigfloat

import "math/big"

const debugBigfloat = false // enable for debugging

// GuardBits is the fixed number of low-order guard bits carried in every
// Value's mantissa. Guard bits stabilize chained rounding: every operator
// reasons about the precise/guard split of its operands, and no
// normalization step ever strips them down to a narrower mantissa.
const GuardBits = 32

// A Value is an immutable arbitrary-precision binary floating-point number
//
//	sign × mantissa × 2**(scale − GuardBits)
//
// where mantissa is an arbitrary-size signed integer (its sign is the sign
// of the value; there is no separate sign field) and scale is a binary
// radix-point offset. mantissa includes GuardBits low-order guard bits that
// are not "in precision" but participate in every rounding decision.
//
// The zero Value (its Go zero value, with a nil mantissa) represents the
// number +0 exactly, with zero size and zero accuracy. Unlike *big.Int or
// *big.Float, Value has no mutating receiver methods: every operation
// returns a new Value and leaves its operands untouched, so Values may be
// freely shared, copied, and compared across goroutines without
// synchronization.
//
// Construction allocates a new *big.Int for the mantissa; callers never
// observe or need to manage that allocation. To "copy" a Value, ordinary Go
// assignment suffices — there is no aliasing hazard because a Value's
// *big.Int is never mutated after the Value is constructed.
type Value struct {
	mant *big.Int // nil means a strict zero mantissa
	scale int32
	size  uint32 // cached bitlength(|mant|); size == 0 iff mant == nil or mant.Sign() == 0
}

// newValue constructs a Value taking ownership of m: the caller must not
// retain or mutate m afterwards. m may be nil to denote a strict zero.
func newValue(m *big.Int, scale int32) Value {
	if m == nil || m.Sign() == 0 {
		return Value{scale: scale}
	}
	return Value{mant: m, scale: scale, size: uint32(m.BitLen())}
}

// Zero is the Value +0 with zero accuracy (scale 0).
var Zero = Value{}

// Size returns the bit length of the mantissa, including guard bits. It is
// 0 for a strict zero.
func (v Value) Size() uint { return uint(v.size) }

// Precision returns the count of "in-precision" bits: Size() − GuardBits.
// The result may be negative (represented here as a signed return) when a
// value's entire mantissa falls inside the guard region.
func (v Value) Precision() int { return int(v.size) - GuardBits }

// Scale returns the raw scale field: the represented value is
// mantissa × 2**(Scale() − GuardBits).
func (v Value) Scale() int32 { return v.scale }

// Accuracy returns the number of bits to the right of the binary point,
// i.e. −Scale().
func (v Value) Accuracy() int32 { return -v.scale }

// BinaryExponent returns floor(log2(|v|)), i.e. scale + size − GuardBits − 1.
// It is only meaningful for nonzero values.
func (v Value) BinaryExponent() int64 {
	return int64(v.scale) + int64(v.size) - GuardBits - 1
}

// IsStrictZero reports whether v's mantissa is exactly zero.
func (v Value) IsStrictZero() bool { return v.mant == nil || v.mant.Sign() == 0 }

// IsZero reports whether v is zero under the canonical zero tolerance: a
// strict zero, or a value whose entire significant content lies inside the
// guard-bit window at its current scale (size < GuardBits and
// size+scale < GuardBits).
func (v Value) IsZero() bool {
	if v.IsStrictZero() {
		return true
	}
	return v.size < GuardBits && int64(v.size)+int64(v.scale) < GuardBits
}

// Sign returns -1, 0, or +1 depending on whether v is negative, canonically
// zero, or positive. It uses the canonical (tolerant) zero rule; see
// IsStrictZero for the strict rule.
func (v Value) Sign() int {
	if v.IsZero() {
		return 0
	}
	return v.mant.Sign()
}

// IsPositive reports whether v.Sign() > 0.
func (v Value) IsPositive() bool { return v.Sign() > 0 }

// IsNegative reports whether v.Sign() < 0.
func (v Value) IsNegative() bool { return v.Sign() < 0 }

// FitsInADouble reports whether v's magnitude lies within float64's finite
// exponent range, i.e. whether Float64 would not panic with
// OverflowToFloat. It does not check for precision loss: float64 only
// carries 53 bits of mantissa, so a Value with a much wider mantissa can
// still fit and round when converted.
func (v Value) FitsInADouble() bool {
	if v.IsZero() {
		return true
	}
	return v.BinaryExponent() <= 1023
}

// FitsInAFloat is FitsInADouble's float32 counterpart (exponent range
// ±127).
func (v Value) FitsInAFloat() bool {
	if v.IsZero() {
		return true
	}
	return v.BinaryExponent() <= 127
}

// decimalMantissaBits and decimalMaxScale are the bounds of the common
// 96-bit-coefficient, base-10 fixed-point decimal format (the same layout
// .NET's Decimal type uses), the reference FitsInADecimal checks against.
const (
	decimalMantissaBits = 96
	decimalMaxScale     = 28
)

// FitsInADecimal reports whether v's exact value can be represented as a
// decimalMantissaBits-bit-coefficient base-10 fixed-point decimal with at
// most decimalMaxScale digits right of the decimal point.
//
// Because every Value is a dyadic rational, checking this means converting
// the binary mantissa to its minimal base-10 coefficient: 2**-n ==
// 5**n * 10**-n. Trailing zero bits are stripped first (the same trick
// Hash uses to normalize representations) so that padding from
// SetPrecision or a wide working precision never inflates the decimal
// scale needlessly.
func (v Value) FitsInADecimal() bool {
	if v.IsStrictZero() {
		return true
	}
	m := new(big.Int).Abs(v.mant)
	s := int64(v.scale) - GuardBits
	tz := 0
	for m.Bit(tz) == 0 {
		tz++
	}
	m.Rsh(m, uint(tz))
	s += int64(tz)

	if s >= 0 {
		coeff := new(big.Int).Lsh(m, uint(s))
		return coeff.BitLen() <= decimalMantissaBits
	}
	scale10 := uint(-s)
	if scale10 > decimalMaxScale {
		return false
	}
	five := new(big.Int).Exp(big.NewInt(5), big.NewInt(int64(scale10)), nil)
	coeff := new(big.Int).Mul(m, five)
	return coeff.BitLen() <= decimalMantissaBits
}

// unscaledValue returns v's mantissa rounded-right-shifted by GuardBits,
// i.e. the value with guard bits collapsed into a plain integer magnitude
// (sign-preserving).
func (v Value) unscaledValue() *big.Int {
	if v.mant == nil {
		return new(big.Int)
	}
	return roundingRightShiftBig(v.mant, GuardBits)
}

// mantissaOrZero returns v's mantissa, or a fresh zero *big.Int if v is a
// strict zero. The result must be treated as read-only by the caller.
func (v Value) mantissaOrZero() *big.Int {
	if v.mant == nil {
		return new(big.Int)
	}
	return v.mant
}

func (v Value) validate() {
	if !debugBigfloat {
		panic("validate called but debugBigfloat is not set")
	}
	if v.mant == nil {
		if v.size != 0 {
			panic("nil mantissa with nonzero size")
		}
		return
	}
	if v.mant.Sign() == 0 {
		panic("finite Value with zero-valued *big.Int mantissa; should be nil")
	}
	if uint32(v.mant.BitLen()) != v.size {
		panic("size does not match bitlength(mantissa)")
	}
}
