// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigfloat

import (
	"math"
	"math/big"
)

// FromBigInt constructs a Value representing v * 2**scale.
//
// If valueIncludesGuard is false (the common case), v is treated as a plain
// integer and is left-shifted by GuardBits bits to make room for the guard
// region. If valueIncludesGuard is true, v is stored as-is and is assumed
// to already carry its own guard bits (this is how internal kernels hand
// off an already-scaled mantissa without a redundant shift).
//
// addedPrecision only affects the v == 0 case, where it is subtracted from
// scale to produce a zero of the requested accuracy; see ZeroWithAccuracy.
func FromBigInt(v *big.Int, scale int32, valueIncludesGuard bool, addedPrecision int) Value {
	if v == nil || v.Sign() == 0 {
		return Value{scale: scale - int32(addedPrecision)}
	}
	if valueIncludesGuard {
		return newValue(new(big.Int).Set(v), scale)
	}
	return newValue(new(big.Int).Lsh(v, GuardBits), scale)
}

// fromBigIntWithBinaryPrecision is the shared implementation behind
// FromInt64/FromUint64/... . It pads the mantissa with trailing zero bits
// so that, beyond its GuardBits guard region, the value carries at least
// binaryPrecision bits of nominal precision — matching the bit width of
// the integer type the caller converted from, even when the actual value
// needs fewer significant bits.
func fromBigIntWithBinaryPrecision(v *big.Int, binaryPrecision int) Value {
	if v.Sign() == 0 {
		return Value{}
	}
	pad := binaryPrecision - v.BitLen()
	if pad < 0 {
		pad = 0
	}
	return newValue(new(big.Int).Lsh(v, uint(GuardBits+pad)), -int32(pad))
}

// FromInt64 constructs a Value equal to x. binaryPrecision defaults to 63
// (64 minus the sign bit) when 0 is passed.
func FromInt64(x int64, binaryPrecision int) Value {
	if binaryPrecision == 0 {
		binaryPrecision = 63
	}
	if x == 0 {
		return Value{}
	}
	u := uint64(x)
	neg := x < 0
	if neg {
		u = uint64(-x)
	}
	v := new(big.Int).SetUint64(u)
	if neg {
		v.Neg(v)
	}
	return fromBigIntWithBinaryPrecision(v, binaryPrecision)
}

// FromInt32 constructs a Value equal to x. binaryPrecision defaults to 31.
func FromInt32(x int32, binaryPrecision int) Value {
	if binaryPrecision == 0 {
		binaryPrecision = 31
	}
	return FromInt64(int64(x), binaryPrecision)
}

// FromUint64 constructs a Value equal to x. binaryPrecision defaults to 64.
func FromUint64(x uint64, binaryPrecision int) Value {
	if binaryPrecision == 0 {
		binaryPrecision = 64
	}
	if x == 0 {
		return Value{}
	}
	return fromBigIntWithBinaryPrecision(new(big.Int).SetUint64(x), binaryPrecision)
}

// FromUint32 constructs a Value equal to x. binaryPrecision defaults to 32.
func FromUint32(x uint32, binaryPrecision int) Value {
	if binaryPrecision == 0 {
		binaryPrecision = 32
	}
	return FromUint64(uint64(x), binaryPrecision)
}

// DefaultFloatAddedPrecision is the extra guard-region padding applied by
// FromFloat64/FromFloat32 beyond GuardBits, giving chained computation some
// slack above the double/float's native mantissa width (the spiritual
// successor of the teacher lineage's deprecated "ExtraHiddenBits" knob).
const DefaultFloatAddedPrecision = 24

// FromFloat64 constructs a Value equal to d * 2**scale, with addedPrecision
// extra guard-region bits of headroom (pass 0 to use
// DefaultFloatAddedPrecision).
//
// FromFloat64 panics with NonFiniteInput if d is NaN or an infinity: those
// have no representation in this type, which has unbounded exponent range
// but no special values.
func FromFloat64(d float64, scale int32, addedPrecision int) Value {
	if math.IsNaN(d) || math.IsInf(d, 0) {
		panicKind(NonFiniteInput, "FromFloat64: %v has no BigFloat representation", d)
	}
	if addedPrecision == 0 {
		addedPrecision = DefaultFloatAddedPrecision
	}
	if d == 0 {
		return Value{scale: scale - int32(addedPrecision)}
	}

	bits := math.Float64bits(d)
	neg := bits>>63 != 0
	rawExp := int32((bits >> 52) & 0x7ff)
	frac := bits & (1<<52 - 1)

	var mant uint64
	var exp2 int32
	if rawExp == 0 {
		// subnormal: no implicit leading 1, exponent pinned to the
		// smallest normal exponent.
		mant = frac
		exp2 = -1022 - 52
	} else {
		mant = frac | 1<<52
		exp2 = rawExp - 1023 - 52
	}

	m := new(big.Int).SetUint64(mant)
	if neg {
		m.Neg(m)
	}
	m.Lsh(m, uint(GuardBits+addedPrecision))
	finalScale := exp2 + scale - int32(addedPrecision)
	return newValue(m, finalScale)
}

// FromFloat32 constructs a Value equal to float64(f) * 2**scale, with
// addedPrecision extra guard-region bits (pass 0 for the default). Unlike
// FromFloat64 it extracts the raw 23-bit float32 mantissa directly rather
// than widening through float64, so the reconstructed value is exactly f
// (including its subnormal behavior), not float64(f) rounded again.
func FromFloat32(f float32, scale int32, addedPrecision int) Value {
	if math.IsNaN(float64(f)) || math.IsInf(float64(f), 0) {
		panicKind(NonFiniteInput, "FromFloat32: %v has no BigFloat representation", f)
	}
	if addedPrecision == 0 {
		addedPrecision = DefaultFloatAddedPrecision
	}
	if f == 0 {
		return Value{scale: scale - int32(addedPrecision)}
	}

	bits := math.Float32bits(f)
	neg := bits>>31 != 0
	rawExp := int32((bits >> 23) & 0xff)
	frac := bits & (1<<23 - 1)

	var mant uint32
	var exp2 int32
	if rawExp == 0 {
		mant = frac
		exp2 = -126 - 23
	} else {
		mant = frac | 1<<23
		exp2 = rawExp - 127 - 23
	}

	m := new(big.Int).SetUint64(uint64(mant))
	if neg {
		m.Neg(m)
	}
	m.Lsh(m, uint(GuardBits+addedPrecision))
	finalScale := exp2 + scale - int32(addedPrecision)
	return newValue(m, finalScale)
}

// ZeroWithAccuracy returns the canonical zero with Accuracy() == a, i.e.
// scale == -a and an empty mantissa.
func ZeroWithAccuracy(a int32) Value {
	return Value{scale: -a}
}

// OneWithAccuracy returns the Value 1, with Accuracy() == a (size ==
// GuardBits + a + 1).
func OneWithAccuracy(a int32) Value {
	m := new(big.Int).Lsh(big.NewInt(1), uint(GuardBits)+uint(a))
	return newValue(m, -a)
}

// IntWithAccuracy returns a Value exactly equal to v, with Accuracy() == a.
func IntWithAccuracy(v int64, a int32) Value {
	if v == 0 {
		return ZeroWithAccuracy(a)
	}
	bi := big.NewInt(v)
	m := new(big.Int).Lsh(bi, uint(GuardBits)+uint(a))
	return newValue(m, -a)
}
