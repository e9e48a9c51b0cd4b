// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package constants computes and caches the fixed mathematical constants
// (Pi, Ln2, E, Sqrt2) that BigFloat's math functions need as reduction or
// seed values, each to an arbitrary, caller-chosen number of fractional
// bits.
//
// Constants are returned as plain *big.Int mantissas equal to
// floor(constant * 2**bits): this package has no dependency on the
// bigfloat package itself, so bigfloat can depend on constants without
// forming an import cycle.
package constants

import (
	"math/big"
	"sync"

	"github.com/bigfloat-go/bigfloat/internal/intmath"
)

// Name identifies a cached constant.
type Name int

const (
	Pi Name = iota
	Ln2
	E
	Sqrt2
)

type cacheEntry struct {
	bits uint
	mant *big.Int
}

var (
	mu    sync.Mutex
	cache = map[Name]cacheEntry{}
)

// GetConstant returns floor(constant * 2**bits) for the named constant.
// Results are cached at the highest precision computed so far; a request
// for fewer bits than are cached is served by a cheap right shift instead
// of recomputing the series.
func GetConstant(name Name, bits uint) *big.Int {
	mu.Lock()
	defer mu.Unlock()

	e, ok := cache[name]
	if !ok || e.bits < bits {
		e = cacheEntry{bits: bits, mant: compute(name, bits)}
		cache[name] = e
	}
	if e.bits == bits {
		return new(big.Int).Set(e.mant)
	}
	return new(big.Int).Rsh(e.mant, e.bits-bits)
}

func compute(name Name, bits uint) *big.Int {
	switch name {
	case Pi:
		return piFixed(bits)
	case Ln2:
		return ln2Fixed(bits)
	case E:
		return eFixed(bits)
	case Sqrt2:
		return sqrt2Fixed(bits)
	default:
		panic("constants: unknown constant")
	}
}

// sqrt2Fixed returns floor(sqrt(2) * 2**bits) exactly, via the same
// Newton's-method integer square root the rest of the package uses for
// BigFloat's own Sqrt.
func sqrt2Fixed(bits uint) *big.Int {
	n := new(big.Int).Lsh(big.NewInt(2), 2*bits)
	return intmath.NewtonPlusSqrt(n)
}
