// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package intmath

import "math/big"

// approxWorkGuard is the number of extra working bits carried alongside
// wantedBits while PowMostSignificantBitsApprox is squaring its way up the
// exponent. It bounds the rounding error introduced by truncating
// intermediate products below one unit in the last place of the final,
// narrower result.
const approxWorkGuard = 64

// PowMostSignificantBitsApprox returns a pair (mantissa, shift) such that
// mantissa * 2**shift approximates base**exp, with |mantissa| close to
// wantedBits bits wide.
//
// If the exact power base**exp already fits in wantedBits bits, the exact
// value is returned with shift == 0. Otherwise the returned pair is
// permitted to be off by at most one unit in the last place of mantissa
// (tightened to exact when extraAccurate is true, by carrying extra working
// bits through the squaring chain); the returned shift may itself differ
// from the ideal by one, which callers reconcile by adjusting one operand.
// This looseness is what makes the function cheap for huge exponents: it
// never materializes the full base**exp when that value would dwarf
// wantedBits.
func PowMostSignificantBitsApprox(base *big.Int, exp uint64, baseSize, wantedBits uint, extraAccurate bool) (mantissa *big.Int, shift int64) {
	if exp == 0 {
		return big.NewInt(1), 0
	}
	if base.Sign() == 0 {
		return new(big.Int), 0
	}
	if baseSize == 0 {
		baseSize = uint(new(big.Int).Abs(base).BitLen())
	}

	workBits := wantedBits + approxWorkGuard
	if extraAccurate {
		workBits += approxWorkGuard
	}

	reduce := func(m *big.Int, shift int64) (*big.Int, int64) {
		bl := uint(new(big.Int).Abs(m).BitLen())
		if bl <= 2*workBits {
			return m, shift
		}
		excess := bl - workBits
		return RoundingRightShift(m, excess), shift + int64(excess)
	}

	resultMant := big.NewInt(1)
	resultShift := int64(0)
	baseMant := new(big.Int).Set(base)
	baseShift := int64(0)

	for e := exp; e > 0; e >>= 1 {
		if e&1 == 1 {
			resultMant = new(big.Int).Mul(resultMant, baseMant)
			resultShift += baseShift
			resultMant, resultShift = reduce(resultMant, resultShift)
		}
		if e>>1 > 0 {
			baseMant = new(big.Int).Mul(baseMant, baseMant)
			baseShift *= 2
			baseMant, baseShift = reduce(baseMant, baseShift)
		}
	}

	if bl := uint(new(big.Int).Abs(resultMant).BitLen()); bl > wantedBits {
		excess := bl - wantedBits
		resultMant = RoundingRightShift(resultMant, excess)
		resultShift += int64(excess)
	}

	return resultMant, resultShift
}
