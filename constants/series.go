// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package constants

import "math/big"

const seriesGuardBits = 64

// ln2Fixed returns floor(ln(2) * 2**bits) via the series
//
//	ln(2) = sum_{k=1}^inf 1/(k * 2**k)
//
// which gains roughly one bit of accuracy per term, so it needs on the
// order of bits+seriesGuardBits terms; that is cheap relative to the
// multi-precision multiplications elsewhere in this package.
func ln2Fixed(bits uint) *big.Int {
	prec := bits + seriesGuardBits
	one := new(big.Int).Lsh(big.NewInt(1), prec)
	x := new(big.Int).Rsh(one, 1) // 1/2 in fixed point

	sum := new(big.Int)
	pow := new(big.Int).Set(x)
	for k := int64(1); ; k++ {
		t := new(big.Int).Quo(pow, big.NewInt(k))
		if t.Sign() == 0 {
			break
		}
		sum.Add(sum, t)
		pow.Mul(pow, x)
		pow.Rsh(pow, prec)
	}
	return new(big.Int).Rsh(sum, seriesGuardBits)
}

// eFixed returns floor(e * 2**bits) via the factorial series
// e = sum_{k=0}^inf 1/k!, which converges superlinearly (roughly doubling
// correct bits' worth of terms every few iterations for any practical bit
// count).
func eFixed(bits uint) *big.Int {
	prec := bits + seriesGuardBits
	one := new(big.Int).Lsh(big.NewInt(1), prec)

	sum := new(big.Int).Set(one)
	term := new(big.Int).Set(one)
	for k := int64(1); ; k++ {
		term.Quo(term, big.NewInt(k))
		if term.Sign() == 0 {
			break
		}
		sum.Add(sum, term)
	}
	return new(big.Int).Rsh(sum, seriesGuardBits)
}
