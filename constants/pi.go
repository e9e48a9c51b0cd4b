// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package constants

import "math/big"

// piGuardBits is the extra fixed-point precision carried during the Machin
// series summation, so that the final truncation to the requested bit
// count is not itself a source of error.
const piGuardBits = 64

// piFixed returns floor(pi * 2**bits) using Machin's formula
//
//	pi = 16*atan(1/5) - 4*atan(1/239)
//
// evaluated with fixed-point big.Int arithmetic. Each term of the slower
// atan(1/5) series is 25 times smaller than the last, so it gains roughly
// 4.6 correct bits per term, which is more than fast enough for the bit
// counts BigFloat's math functions ask for.
func piFixed(bits uint) *big.Int {
	prec := bits + piGuardBits
	a := atanInverseFixed(5, prec)
	b := atanInverseFixed(239, prec)

	pi := new(big.Int).Mul(a, big.NewInt(16))
	pi.Sub(pi, new(big.Int).Mul(b, big.NewInt(4)))
	return new(big.Int).Rsh(pi, piGuardBits)
}

// atanInverseFixed returns floor(atan(1/invX) * 2**prec), via the
// alternating Taylor series atan(x) = x - x**3/3 + x**5/5 - ...
func atanInverseFixed(invX int64, prec uint) *big.Int {
	one := new(big.Int).Lsh(big.NewInt(1), prec)
	x := new(big.Int).Quo(one, big.NewInt(invX))
	xx := new(big.Int).Mul(x, x)
	xx.Rsh(xx, prec)

	sum := new(big.Int).Set(x)
	term := new(big.Int).Set(x)
	neg := true

	for k := int64(3); ; k += 2 {
		term.Mul(term, xx)
		term.Rsh(term, prec)
		if term.Sign() == 0 {
			break
		}
		t := new(big.Int).Quo(term, big.NewInt(k))
		if neg {
			sum.Sub(sum, t)
		} else {
			sum.Add(sum, t)
		}
		neg = !neg
	}
	return sum
}
