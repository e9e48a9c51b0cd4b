// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package intmath

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewtonPlusSqrtSmall(t *testing.T) {
	for n := int64(0); n < 2000; n++ {
		r := NewtonPlusSqrt(big.NewInt(n))
		checkFloorRoot(t, r, big.NewInt(n), 2)
	}
}

func TestNewtonPlusSqrtLarge(t *testing.T) {
	// 2**300 + 12345, well past the hardware-double seeding threshold.
	n := new(big.Int).Lsh(big.NewInt(1), 300)
	n.Add(n, big.NewInt(12345))
	r := NewtonPlusSqrt(n)
	checkFloorRoot(t, r, n, 2)
}

func TestNewtonPlusSqrtPerfectSquare(t *testing.T) {
	n := big.NewInt(256)
	r := NewtonPlusSqrt(n)
	require.Equal(t, int64(16), r.Int64())
}

func TestNewtonPlusSqrtNegativePanics(t *testing.T) {
	require.Panics(t, func() { NewtonPlusSqrt(big.NewInt(-1)) })
}

func checkFloorRoot(t *testing.T, r, n *big.Int, k int64) {
	t.Helper()
	kBig := big.NewInt(k)
	rk := new(big.Int).Exp(r, kBig, nil)
	require.LessOrEqual(t, rk.Cmp(n), 0, "r**k <= n must hold for r=%s n=%s", r, n)
	r1 := new(big.Int).Add(r, big.NewInt(1))
	r1k := new(big.Int).Exp(r1, kBig, nil)
	require.Greater(t, r1k.Cmp(n), 0, "n < (r+1)**k must hold for r=%s n=%s", r, n)
}
