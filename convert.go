// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigfloat

import (
	"math"
	"math/big"
)

// BigInt returns the value of v truncated towards zero and represented as a
// *big.Int. The fractional part, if any, is discarded.
func (v Value) BigInt() *big.Int {
	if v.IsStrictZero() {
		return new(big.Int)
	}
	s := int64(v.scale) - GuardBits
	m := v.mant
	switch {
	case s == 0:
		return new(big.Int).Set(m)
	case s > 0:
		return new(big.Int).Lsh(m, uint(s))
	default:
		return truncateRightShift(m, uint(-s))
	}
}

// truncateRightShift right-shifts n by k bits towards zero (i.e. truncation,
// not rounding and not arithmetic shift of a negative two's-complement
// value): the magnitude is shifted and the sign is reapplied afterwards.
func truncateRightShift(n *big.Int, k uint) *big.Int {
	mag := new(big.Int).Abs(n)
	mag.Rsh(mag, k)
	if n.Sign() < 0 {
		mag.Neg(mag)
	}
	return mag
}

// Int64 returns the value of v truncated towards zero, as an int64. It
// panics with OverflowToFloat if the truncated value does not fit in an
// int64.
func (v Value) Int64() int64 {
	b := v.BigInt()
	if !b.IsInt64() {
		panicKind(OverflowToFloat, "Int64: %s out of int64 range", b)
	}
	return b.Int64()
}

// Uint64 returns the value of v truncated towards zero, as a uint64. It
// panics with OverflowToFloat if the truncated value is negative or does
// not fit in a uint64.
func (v Value) Uint64() uint64 {
	b := v.BigInt()
	if !b.IsUint64() {
		panicKind(OverflowToFloat, "Uint64: %s out of uint64 range", b)
	}
	return b.Uint64()
}

// Float64 converts v to the nearest float64, rounding to nearest with ties
// to even, following IEEE-754 semantics. It panics with OverflowToFloat if
// |v| exceeds the largest finite float64 magnitude.
func (v Value) Float64() float64 {
	if v.IsZero() {
		if v.IsStrictZero() || v.mant == nil || v.mant.Sign() >= 0 {
			return 0
		}
		return math.Copysign(0, -1)
	}

	neg := v.mant.Sign() < 0
	mag := new(big.Int).Abs(v.mant)
	bl := mag.BitLen()

	exp2 := int64(v.scale) - GuardBits + int64(bl) - 1 // floor(log2(|v|))

	// Bring mag to exactly 53 significant bits via round-to-nearest-even,
	// then assemble the IEEE-754 double from its top bit and exponent.
	const sigBits = 53
	shift := bl - sigBits
	var sig uint64
	if shift > 0 {
		rounded, carry := intmathRoundEvenRightShift(mag, uint(shift))
		if carry {
			// Rounding carried into a new high bit (e.g. rounding
			// 2**54-1 up produces exactly 2**54): shift right one more
			// to bring the significand back to sigBits bits and bump
			// the exponent to compensate.
			rounded.Rsh(rounded, 1)
			exp2++
		}
		sig = rounded.Uint64()
	} else {
		sig = mag.Uint64() << uint(-shift)
	}

	if exp2 > 1023 {
		panicKind(OverflowToFloat, "Float64: magnitude too large (binary exponent %d)", exp2)
	}
	if exp2 < -1074 {
		if neg {
			return math.Copysign(0, -1)
		}
		return 0
	}

	if exp2 < -1022 {
		// subnormal result: denormalize by shifting right further, losing
		// the implicit leading bit.
		extra := uint(-1022 - exp2)
		rounded, _ := intmathRoundEvenRightShift(new(big.Int).SetUint64(sig), extra)
		f := math.Ldexp(float64(rounded.Uint64()), -1074)
		if neg {
			f = -f
		}
		return f
	}

	// sig has its implicit leading bit at position 52; drop it and encode.
	frac := sig &^ (1 << 52)
	bits := (uint64(exp2+1023) << 52) | frac
	if neg {
		bits |= 1 << 63
	}
	return math.Float64frombits(bits)
}

// Float32 converts v to the nearest float32, rounding to nearest with ties
// to even. It panics with OverflowToFloat if |v| exceeds the largest finite
// float32 magnitude.
func (v Value) Float32() float32 {
	f := v.Float64()
	if math.IsInf(float64(float32(f)), 0) && !math.IsInf(f, 0) {
		panicKind(OverflowToFloat, "Float32: magnitude too large for float32")
	}
	return float32(f)
}

// intmathRoundEvenRightShift right-shifts n by k bits using round-half-to-
// even, reporting whether the rounding caused a carry out of the result's
// top bit (i.e. the result's bit length grew by one). This is the only
// place BigFloat uses ties-to-even instead of the ties-away-from-zero rule
// used everywhere else: it exists solely to match IEEE-754 double/float
// rounding when synthesizing those formats.
func intmathRoundEvenRightShift(n *big.Int, k uint) (*big.Int, bool) {
	if k == 0 {
		return new(big.Int).Set(n), false
	}
	mag := new(big.Int).Abs(n)
	bitsBefore := mag.BitLen()
	shifted := new(big.Int).Rsh(mag, k)

	rem := new(big.Int).Sub(mag, new(big.Int).Lsh(shifted, k))
	half := new(big.Int).Lsh(big.NewInt(1), k-1)
	cmp := rem.Cmp(half)
	if cmp > 0 || (cmp == 0 && shifted.Bit(0) == 1) {
		shifted.Add(shifted, big.NewInt(1))
	}
	carry := shifted.BitLen() > bitsBefore-int(k)
	return shifted, carry
}
