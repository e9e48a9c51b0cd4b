// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package constants

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func toFloat(m *big.Int, bits uint) float64 {
	f := new(big.Float).SetInt(m)
	scale := new(big.Float).SetMantExp(big.NewFloat(1), -int(bits))
	f.Mul(f, scale)
	r, _ := f.Float64()
	return r
}

func TestPiFixed(t *testing.T) {
	const bits = 200
	m := GetConstant(Pi, bits)
	require.InDelta(t, math.Pi, toFloat(m, bits), 1e-12)
}

func TestLn2Fixed(t *testing.T) {
	const bits = 200
	m := GetConstant(Ln2, bits)
	require.InDelta(t, math.Ln2, toFloat(m, bits), 1e-12)
}

func TestEFixed(t *testing.T) {
	const bits = 200
	m := GetConstant(E, bits)
	require.InDelta(t, math.E, toFloat(m, bits), 1e-12)
}

func TestSqrt2Fixed(t *testing.T) {
	const bits = 200
	m := GetConstant(Sqrt2, bits)
	require.InDelta(t, math.Sqrt2, toFloat(m, bits), 1e-12)
}

func TestGetConstantCacheServesLowerPrecision(t *testing.T) {
	hi := GetConstant(Pi, 256)
	lo := GetConstant(Pi, 64)
	shifted := new(big.Int).Rsh(hi, 256-64)
	require.Equal(t, 0, shifted.Cmp(lo))
}
