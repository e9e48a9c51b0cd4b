// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package intmath

import (
	"math"
	"math/big"
)

// smallSqrtBits is the bit-length threshold below which a hardware
// double-precision sqrt is accurate enough to seed the integer refinement
// (2**53 is the largest integer a float64 represents exactly).
const smallSqrtBits = 53

// NewtonPlusSqrt computes floor(sqrt(n)) for a non-negative big.Int n. It
// returns the exact integer r such that r*r <= n < (r+1)*(r+1).
//
// For small n (<= 2**53) the iteration is seeded with the hardware
// double-precision square root; for larger n the seed is derived from n's
// bit length, which is equivalent in spirit to extracting the top word of n
// and scaling. Either way a handful of Newton iterations refine the guess,
// followed by a linear fixup pass that corrects the last-bit error Newton's
// method can leave behind.
//
// NewtonPlusSqrt panics if n is negative: that is a programming error, not
// a runtime condition callers should expect to recover from.
func NewtonPlusSqrt(n *big.Int) *big.Int {
	if n.Sign() < 0 {
		panic("intmath: NewtonPlusSqrt of negative number")
	}
	if n.Sign() == 0 {
		return new(big.Int)
	}

	bl := n.BitLen()
	var x *big.Int
	if bl <= smallSqrtBits {
		f, _ := new(big.Float).SetInt(n).Float64()
		x = new(big.Int).SetUint64(uint64(math.Sqrt(f)))
		if x.Sign() == 0 {
			x.SetInt64(1)
		}
	} else {
		// Seed with half the bit length: 2**(ceil(bl/2)) is within a
		// factor of sqrt(2) of the true root, which converges in a few
		// iterations under Newton's method.
		x = new(big.Int).Lsh(big.NewInt(1), uint((bl+1)/2))
	}

	// Newton's method for the integer square root: x_{k+1} = (x_k + n/x_k) / 2.
	// Iterate while the guess keeps decreasing (standard termination for
	// integer Newton iteration, since it approaches the root from above).
	two := big.NewInt(2)
	for {
		t := new(big.Int).Div(n, x)
		t.Add(t, x)
		t.Div(t, two)
		if t.Cmp(x) >= 0 {
			break
		}
		x = t
	}

	return fixupFloorRoot(x, n, 2)
}

// fixupFloorRoot adjusts x, a close approximation of floor(n^(1/k)), so
// that the exact invariant x**k <= n < (x+1)**k holds. It walks at most a
// couple of steps in either direction; Newton's method never leaves a
// larger residual than that once it has converged.
func fixupFloorRoot(x, n *big.Int, k int64) *big.Int {
	kBig := big.NewInt(k)
	pow := func(v *big.Int) *big.Int { return new(big.Int).Exp(v, kBig, nil) }

	if x.Sign() <= 0 {
		x = big.NewInt(1)
	}

	for pow(x).Cmp(n) > 0 {
		x.Sub(x, big.NewInt(1))
		if x.Sign() <= 0 {
			x.SetInt64(0)
			break
		}
	}
	for {
		next := new(big.Int).Add(x, big.NewInt(1))
		if pow(next).Cmp(n) > 0 {
			break
		}
		x = next
	}
	return x
}
