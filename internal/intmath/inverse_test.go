// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package intmath

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInverseRoundTrip(t *testing.T) {
	const bits = 64
	n := big.NewInt(7)
	m := Inverse(n, bits)

	// m/2**(2*bits) ~= 1/n, so m*n ~= 2**(2*bits) within a handful of ULPs.
	got := new(big.Int).Mul(m, n)
	want := new(big.Int).Lsh(big.NewInt(1), 2*bits)
	diff := new(big.Int).Sub(got, want)
	diff.Abs(diff)
	tolerance := big.NewInt(int64(bits))
	require.LessOrEqual(t, diff.Cmp(tolerance), 0)
}

func TestInverseNegative(t *testing.T) {
	m := Inverse(big.NewInt(-4), 32)
	require.True(t, m.Sign() < 0)
}

func TestInverseZeroPanics(t *testing.T) {
	require.Panics(t, func() { Inverse(big.NewInt(0), 32) })
}
