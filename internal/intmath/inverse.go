// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package intmath

import "math/big"

// Inverse returns the bits-bit fixed-point reciprocal of n: the integer m
// such that m / 2**(2*bits) approximates 1/n with an error below one unit
// in the last place. It backs the bigfloat package's Inverse; bigfloat's
// Quo divides directly and does not call it.
//
// Inverse panics if n is zero: dividing by a strict zero is a fatal
// condition the caller must not reach.
func Inverse(n *big.Int, bits uint) *big.Int {
	if n.Sign() == 0 {
		panic("intmath: Inverse of zero")
	}
	neg := n.Sign() < 0
	absN := new(big.Int).Abs(n)

	num := new(big.Int).Lsh(big.NewInt(1), 2*bits)
	rem := new(big.Int)
	q, r := new(big.Int).QuoRem(num, absN, rem)

	// round to nearest, ties away from zero
	twiceR := new(big.Int).Lsh(r, 1)
	if twiceR.CmpAbs(absN) >= 0 {
		q.Add(q, big.NewInt(1))
	}
	if neg {
		q.Neg(q)
	}
	return q
}
