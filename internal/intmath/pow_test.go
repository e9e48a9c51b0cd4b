// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package intmath

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPowMostSignificantBitsApproxExact(t *testing.T) {
	// 3**4 = 81 fits comfortably under any reasonable wantedBits, so the
	// exact path (shift == 0) must be taken.
	m, s := PowMostSignificantBitsApprox(big.NewInt(3), 4, 0, 64, false)
	require.Equal(t, int64(0), s)
	require.Equal(t, int64(81), m.Int64())
}

func TestPowMostSignificantBitsApproxWithinOneULP(t *testing.T) {
	base := new(big.Int).SetInt64(3)
	const exp = 1000
	const wanted = 128

	m, s := PowMostSignificantBitsApprox(base, exp, 2, wanted, false)

	exact := new(big.Int).Exp(base, big.NewInt(exp), nil)
	// reconstruct m * 2**s and compare to the exact value within 1 ULP of m.
	approx := new(big.Int).Lsh(m, uint(s))
	diff := new(big.Int).Sub(approx, exact)
	diff.Abs(diff)
	ulp := new(big.Int).Lsh(big.NewInt(1), uint(s))
	require.LessOrEqual(t, diff.Cmp(ulp), 0, "approx %s off exact %s by more than 1 ULP (shift=%d)", approx, exact, s)
	require.InDelta(t, wanted, uint(m.BitLen()), 1)
}

func TestPowMostSignificantBitsApproxZeroExponent(t *testing.T) {
	m, s := PowMostSignificantBitsApprox(big.NewInt(5), 0, 0, 64, false)
	require.Equal(t, int64(1), m.Int64())
	require.Equal(t, int64(0), s)
}
