// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigfloat

import "math/big"

// rescale returns a Value equal to v (exactly, when growing, or rounded
// half-away-from-zero, when shrinking) but with Scale() == newScale.
func rescale(v Value, newScale int32) Value {
	if v.IsStrictZero() {
		return Value{scale: newScale}
	}
	if newScale == v.scale {
		return v
	}
	if newScale > v.scale {
		shift := uint(newScale - v.scale)
		return newValue(roundingRightShiftBig(v.mant, shift), newScale)
	}
	shift := uint(v.scale - newScale)
	return newValue(new(big.Int).Lsh(v.mant, shift), newScale)
}

// SetPrecision returns v adjusted to have Size() == newSize, truncating
// (discarding the low bits with no rounding) when newSize is smaller than
// v.Size() and padding with trailing zero bits when it is larger. Unlike
// SetPrecisionWithRound, shrinking never changes the represented value's
// sign or magnitude beyond the plain bit truncation — it never rounds.
func (v Value) SetPrecision(newSize uint) Value {
	if v.IsStrictZero() || newSize == uint(v.size) {
		return v
	}
	if newSize > uint(v.size) {
		shift := newSize - uint(v.size)
		return newValue(new(big.Int).Lsh(v.mant, shift), v.scale-int32(shift))
	}
	shift := uint(v.size) - newSize
	return newValue(truncateRightShift(v.mant, shift), v.scale+int32(shift))
}

// SetPrecisionWithRound behaves like SetPrecision, but rounds
// half-away-from-zero instead of truncating when newSize is smaller than
// v.Size(); a rounding carry may leave Size() one bit larger than newSize.
func (v Value) SetPrecisionWithRound(newSize uint) Value {
	if v.IsStrictZero() || newSize == uint(v.size) {
		return v
	}
	newScale := v.scale + int32(v.size) - int32(newSize)
	return rescale(v, newScale)
}

// AdjustPrecision returns v with Size() changed by delta (negative shrinks,
// positive grows), clamped at zero. Equivalent to
// SetPrecisionWithRound(v, Size()+delta).
func (v Value) AdjustPrecision(delta int) Value {
	newSize := int(v.size) + delta
	if newSize < 0 {
		newSize = 0
	}
	return v.SetPrecisionWithRound(uint(newSize))
}

// AdjustAccuracy returns v rescaled so that Accuracy() == newAccuracy,
// rounding half-away-from-zero if that discards bits.
func (v Value) AdjustAccuracy(newAccuracy int32) Value {
	return rescale(v, -newAccuracy)
}

// intValue rounds v to the nearest integer using the supplied rounding
// function over the unscaled magnitude, then rewraps the result as an
// integral Value.
//
// The two branches land on different scales by construction: when v
// already has no fractional bits (s >= 0), the shifted mantissa already
// equals the integer value including its original guard-bit padding, so
// scale == GuardBits makes mantissa*2**(scale-GuardBits) == mantissa. When
// v does have a fractional part, round() strips it down to a bare integer
// with no guard padding at all; re-padding it with GuardBits zero bits
// (to satisfy the size >= GuardBits+1 invariant) requires compensating
// with scale == 0, not GuardBits, or the result would be off by
// 2**GuardBits.
func (v Value) intValue(round func(mag *big.Int, fracBits uint) *big.Int) Value {
	if v.IsStrictZero() {
		return Value{}
	}
	s := int64(v.scale) - GuardBits
	if s >= 0 {
		// no fractional bits at all; already an integer.
		return newValue(new(big.Int).Lsh(v.mant, uint(s)), GuardBits)
	}
	rounded := round(v.mant, uint(-s))
	if rounded.Sign() == 0 {
		return Value{}
	}
	return newValue(new(big.Int).Lsh(rounded, GuardBits), 0)
}

// Round returns v rounded to the nearest integer, ties away from zero.
func (v Value) Round() Value {
	return v.intValue(func(mag *big.Int, fracBits uint) *big.Int {
		return roundingRightShiftBig(mag, fracBits)
	})
}

// Truncate returns v truncated towards zero to an integer.
func (v Value) Truncate() Value {
	return v.intValue(func(mag *big.Int, fracBits uint) *big.Int {
		return truncateRightShift(mag, fracBits)
	})
}

// TruncateByAndRound removes bits low-order bits from v's mantissa, rounding
// half-away-from-zero, and compensates Scale() so the represented value is
// preserved except for the rounding itself. It is the Value-level exposure
// of the TruncateToAndRound integer kernel.
func (v Value) TruncateByAndRound(bits uint) Value {
	if v.IsStrictZero() || bits == 0 {
		return v
	}
	if bits >= uint(v.size) {
		return Value{scale: v.scale + int32(bits)}
	}
	target := uint(v.size) - bits
	m := truncateToAndRoundBig(v.mant, target)
	return newValue(m, v.scale+int32(bits))
}

// hasFraction reports whether v has a fractional part under the canonical
// (guard-tolerant) zero rule: a fractional remainder whose entire content
// falls inside the guard-bit window at its own scale does not count, per
// spec.md §4.D's Ceiling/Floor contract.
func (v Value) hasFraction() bool {
	if v.IsStrictZero() {
		return false
	}
	return !v.Sub(v.Truncate()).IsZero()
}

// IsInteger reports whether v is an integer under the same guard-tolerant
// rule Ceiling and Floor use: a fractional part that lies entirely inside
// the guard-bit window does not count (see hasFraction).
func (v Value) IsInteger() bool {
	if v.IsStrictZero() {
		return true
	}
	return !v.hasFraction()
}

// Ceiling returns the smallest integer Value >= v, except that v is
// returned unchanged when its only fractional content lies entirely
// within the guard-bit region at its current scale (see hasFraction).
func (v Value) Ceiling() Value {
	if v.IsStrictZero() || !v.hasFraction() {
		return v
	}
	bi := v.BigInt()
	if v.Sign() > 0 {
		bi.Add(bi, big.NewInt(1))
	}
	if bi.Sign() == 0 {
		return Value{}
	}
	return newValue(new(big.Int).Lsh(bi, GuardBits), 0)
}

// Floor returns the largest integer Value <= v. Defined as -Ceiling(-v),
// so it inherits Ceiling's guard-tolerant identity behavior.
func (v Value) Floor() Value {
	return v.Neg().Ceiling().Neg()
}

// NextUp returns the next representable Value above v at v's current scale,
// i.e. v's mantissa incremented by one (a step of 2**(Scale()-GuardBits)).
func (v Value) NextUp() Value {
	return newValue(new(big.Int).Add(v.mantissaOrZero(), big.NewInt(1)), v.scale)
}

// NextDown returns the next representable Value below v at v's current
// scale.
func (v Value) NextDown() Value {
	return newValue(new(big.Int).Sub(v.mantissaOrZero(), big.NewInt(1)), v.scale)
}

// NextUpInPrecisionBit returns v stepped by one unit in its least
// significant in-precision bit (2**GuardBits in mantissa terms), skipping
// over the guard region that NextUp would otherwise step through.
func (v Value) NextUpInPrecisionBit() Value {
	step := new(big.Int).Lsh(big.NewInt(1), GuardBits)
	return newValue(new(big.Int).Add(v.mantissaOrZero(), step), v.scale)
}
