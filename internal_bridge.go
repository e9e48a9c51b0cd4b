// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigfloat

import (
	"math/big"

	"github.com/bigfloat-go/bigfloat/internal/intmath"
)

// roundingRightShiftBig is a thin forwarding wrapper so that the exported
// rounding-sensitive surface of this package (Round, SetPrecisionWithRound,
// AdjustAccuracy, ...) shares a single call site into the guard-bit-aware
// integer kernel.
func roundingRightShiftBig(n *big.Int, k uint) *big.Int {
	return intmath.RoundingRightShift(n, k)
}

func roundingRightShiftWithCarry(n *big.Int, k uint) (*big.Int, bool) {
	return intmath.RoundingRightShiftWithCarry(n, k)
}

// truncateToAndRoundBig rounds n down to targetBits significant bits.
func truncateToAndRoundBig(n *big.Int, targetBits uint) *big.Int {
	return intmath.TruncateToAndRound(n, targetBits)
}

func intmathNewtonPlusSqrt(n *big.Int) *big.Int {
	return intmath.NewtonPlusSqrt(n)
}

func intmathNthRoot(n *big.Int, k uint) *big.Int {
	return intmath.NthRoot(n, k)
}

func intmathPowApprox(base *big.Int, exp uint64, baseSize, wantedBits uint, extraAccurate bool) (*big.Int, int64) {
	return intmath.PowMostSignificantBitsApprox(base, exp, baseSize, wantedBits, extraAccurate)
}

func intmathInverse(n *big.Int, bits uint) *big.Int {
	return intmath.Inverse(n, bits)
}
