// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package intmath

import "math/big"

// RoundingRightShift shifts n right by k bits, rounding half-away-from-zero,
// and returns the result as a freshly allocated *big.Int. It is sign
// preserving: negative numbers round toward more-negative magnitudes on a
// half. RoundingRightShift(n, 0) returns a copy of n.
//
// This is the only rounding primitive the arithmetic kernel uses for
// collapsing guard bits; using any other rounding mode here would corrupt
// cross-operation accuracy.
func RoundingRightShift(n *big.Int, k uint) *big.Int {
	if k == 0 {
		return new(big.Int).Set(n)
	}
	if n.Sign() == 0 {
		return new(big.Int)
	}
	mag := new(big.Int).Abs(n)
	half := new(big.Int).Lsh(big.NewInt(1), k-1)
	mag.Add(mag, half)
	mag.Rsh(mag, k)
	if n.Sign() < 0 {
		mag.Neg(mag)
	}
	return mag
}

// RoundingRightShiftWithCarry behaves like RoundingRightShift but also
// reports whether the rounded magnitude ended up with a larger bit length
// than a plain truncating shift (|n| >> k) would have produced. Callers use
// carry to bump a scale counter so that bit budgets stay consistent across
// a chain of operations.
func RoundingRightShiftWithCarry(n *big.Int, k uint) (result *big.Int, carry bool) {
	if k == 0 {
		return new(big.Int).Set(n), false
	}
	if n.Sign() == 0 {
		return new(big.Int), false
	}
	truncated := new(big.Int).Rsh(new(big.Int).Abs(n), k)
	result = RoundingRightShift(n, k)
	roundedLen := new(big.Int).Abs(result).BitLen()
	return result, roundedLen > truncated.BitLen()
}

// TruncateToAndRound reduces |n| to exactly targetBits bits by right
// shifting with rounding. If |n| already fits within targetBits bits, n is
// returned unchanged (as a copy). As with any rounding shift, the result
// may carry into targetBits+1 bits when the rounded magnitude is all ones;
// callers that need an exact bit budget must check the result's bit length.
func TruncateToAndRound(n *big.Int, targetBits uint) *big.Int {
	if n.Sign() == 0 || targetBits == 0 {
		return new(big.Int)
	}
	cur := uint(new(big.Int).Abs(n).BitLen())
	if cur <= targetBits {
		return new(big.Int).Set(n)
	}
	return RoundingRightShift(n, cur-targetBits)
}
