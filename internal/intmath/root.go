// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package intmath

import (
	"math"
	"math/big"
)

// NthRoot computes floor(n^(1/k)) for n >= 0 and k >= 1. The result r
// satisfies r**k <= n < (r+1)**k exactly, verified with two integer powers
// after the Newton refinement converges.
//
// NthRoot panics if k is 0 or n is negative: both are programming errors.
func NthRoot(n *big.Int, k uint) *big.Int {
	if k == 0 {
		panic("intmath: NthRoot with k == 0")
	}
	if n.Sign() < 0 {
		panic("intmath: NthRoot of negative number")
	}
	if n.Sign() == 0 {
		return new(big.Int)
	}
	if k == 1 {
		return new(big.Int).Set(n)
	}
	if k == 2 {
		return NewtonPlusSqrt(n)
	}

	bl := n.BitLen()
	var x *big.Int
	if bl <= smallSqrtBits {
		f, _ := new(big.Float).SetInt(n).Float64()
		r := math.Pow(f, 1/float64(k))
		x = new(big.Int).SetUint64(uint64(r))
		if x.Sign() == 0 {
			x.SetInt64(1)
		}
	} else {
		// Seed from the top word of n, scaled by bit length: n has
		// roughly bl bits, so its k-th root has roughly bl/k bits.
		guessBits := (uint(bl) + k - 1) / k
		if guessBits == 0 {
			guessBits = 1
		}
		x = new(big.Int).Lsh(big.NewInt(1), guessBits)
	}

	kBig := big.NewInt(int64(k))
	km1 := big.NewInt(int64(k - 1))
	for iter := 0; iter < 128; iter++ {
		xkm1 := new(big.Int).Exp(x, km1, nil)
		if xkm1.Sign() == 0 {
			x = big.NewInt(1)
			break
		}
		t := new(big.Int).Div(n, xkm1)
		t.Add(t, new(big.Int).Mul(km1, x))
		t.Div(t, kBig)
		if t.Cmp(x) >= 0 {
			break
		}
		x = t
	}

	return fixupFloorRoot(x, n, int64(k))
}
