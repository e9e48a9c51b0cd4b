// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigfloat

import (
	"hash/fnv"
	"math/big"
)

// CompareTo returns -1, 0, or +1 as x is less than, canonically equal to, or
// greater than y. It uses exact value comparison under the canonical
// (tolerant) zero rule: see IsZero.
func (x Value) CompareTo(y Value) int {
	return x.Sub(y).Sign()
}

// Equals reports whether x and y are canonically equal (CompareTo == 0).
func (x Value) Equals(y Value) bool { return x.CompareTo(y) == 0 }

// ulpMagnitudeAt returns a Value equal to ulpTolerance units in the last
// place at scale, i.e. ulpTolerance*2**scale: the step made by incrementing
// the least significant in-precision bit (the bit immediately above the
// guard region) ulpTolerance times. When includeGuardBits is true, the
// step is measured one guard region finer, ulpTolerance*2**(scale-GuardBits),
// i.e. in the raw guard bits instead of the in-precision ones.
func ulpMagnitudeAt(scale int32, ulpTolerance uint, includeGuardBits bool) Value {
	m := new(big.Int).SetUint64(uint64(ulpTolerance))
	if !includeGuardBits {
		m.Lsh(m, GuardBits)
	}
	return newValue(m, scale)
}

// CompareUlp compares x and y the way CompareTo does, but treats them as
// equal when they differ by no more than ulpTolerance units in the last
// place at the coarser (lower accuracy) of the two operands' scales. This
// is the right notion of equality when x and y arrived via different
// chains of rounded computation and are expected to agree only up to
// their common precision.
//
// When includeGuardBits is false (the common case), the tolerance is
// measured in in-precision ULPs, since a difference confined to the guard
// region carries no in-precision information at all; set includeGuardBits
// to true to measure the tolerance in raw guard-bit units instead.
func (x Value) CompareUlp(y Value, ulpTolerance uint, includeGuardBits bool) int {
	diff := x.Sub(y)
	if diff.IsStrictZero() {
		return 0
	}
	coarseScale := x.scale
	if y.scale > coarseScale {
		coarseScale = y.scale
	}
	if ulpTolerance == 0 {
		return diff.Sign()
	}
	if diff.Abs().CompareTo(ulpMagnitudeAt(coarseScale, ulpTolerance, includeGuardBits)) <= 0 {
		return 0
	}
	return diff.Sign()
}

// EqualsUlp reports whether x and y are equal within ulpTolerance; see
// CompareUlp.
func (x Value) EqualsUlp(y Value, ulpTolerance uint, includeGuardBits bool) bool {
	return x.CompareUlp(y, ulpTolerance, includeGuardBits) == 0
}

// CompareUlpFast is a cheap approximation of CompareUlp that decides the
// comparison from signs and binary exponents alone whenever they already
// settle it, falling back to the exact CompareUlp computation only when x
// and y share the same order of magnitude.
func (x Value) CompareUlpFast(y Value, ulpTolerance uint, includeGuardBits bool) int {
	sx, sy := x.Sign(), y.Sign()
	if sx != sy {
		if sx < sy {
			return -1
		}
		return 1
	}
	if sx == 0 {
		return 0
	}
	ex, ey := x.BinaryExponent(), y.BinaryExponent()
	if ex == ey {
		return x.CompareUlp(y, ulpTolerance, includeGuardBits)
	}
	magCmp := 1
	if ex < ey {
		magCmp = -1
	}
	return sx * magCmp
}

// totalOrderSign returns the sign bucket used by CompareTotalOrderBitwise:
// unlike Value.Sign, it is based on the mantissa's own sign (or +1 for a
// strict zero), not the canonical tolerant-zero rule, because a total order
// must place every representation somewhere even when CompareTo would call
// it zero.
func totalOrderSign(v Value) int {
	if v.mant == nil || v.mant.Sign() >= 0 {
		return 1
	}
	return -1
}

// CompareTotalOrderBitwise imposes a strict total order over every distinct
// (scale, mantissa) representation, including ones that CompareTo treats as
// equal (e.g. a value and the same value padded with extra trailing zero
// bits have different scales and so compare differently here). It orders
// first by sign, then by scale, then by mantissa magnitude. Use this order
// for canonicalization and deduplication of representations, not for
// numeric comparison.
func (x Value) CompareTotalOrderBitwise(y Value) int {
	sx, sy := totalOrderSign(x), totalOrderSign(y)
	if sx != sy {
		if sx < sy {
			return -1
		}
		return 1
	}
	ax, ay := new(big.Int).Abs(x.mantissaOrZero()), new(big.Int).Abs(y.mantissaOrZero())
	var c int
	switch {
	case x.scale != y.scale:
		if x.scale < y.scale {
			c = -1
		} else {
			c = 1
		}
	default:
		c = ax.Cmp(ay)
	}
	if sx < 0 {
		c = -c
	}
	return c
}

// CompareTotalPreorder is CompareTotalOrderBitwise's coarser counterpart: it
// collapses representations that differ only by trailing-zero extension
// (i.e. carry the same mathematical value at different nominal precision)
// into a single equivalence class, making it a total preorder rather than a
// total order. It is equivalent to CompareTo.
func (x Value) CompareTotalPreorder(y Value) int {
	return x.CompareTo(y)
}

// Hash returns a hash code for v's exact value: two Values with different
// representations of the same mathematical value (e.g. differing only in
// trailing zero padding) hash identically. It normalizes the mantissa by
// stripping trailing zero bits before hashing. Values that Equals treats
// as equal only because their difference lies inside the guard-bit window
// can hash differently.
func (v Value) Hash() uint64 {
	if v.IsZero() {
		return 0
	}
	m := new(big.Int).Set(v.mant)
	tz := 0
	for m.Bit(tz) == 0 {
		tz++
	}
	neg := m.Sign() < 0
	m.Abs(m)
	m.Rsh(m, uint(tz))
	exp := int64(v.scale) + int64(tz)

	h := fnv.New64a()
	h.Write(m.Bytes())
	sum := h.Sum64()
	sum ^= uint64(exp) * 1099511628211
	if neg {
		sum = ^sum
	}
	return sum
}
