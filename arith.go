// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigfloat

import "math/big"

// align brings x and y to a common scale (the smaller, finer of the two) by
// left-shifting the operand with the larger scale down to it: left-shifting
// is exact, so alignment never loses bits.
func align(x, y Value) (mx, my *big.Int, scale int32) {
	switch {
	case x.scale == y.scale:
		return x.mantissaOrZero(), y.mantissaOrZero(), x.scale
	case x.scale > y.scale:
		diff := uint(x.scale - y.scale)
		return new(big.Int).Lsh(x.mantissaOrZero(), diff), y.mantissaOrZero(), y.scale
	default:
		diff := uint(y.scale - x.scale)
		return x.mantissaOrZero(), new(big.Int).Lsh(y.mantissaOrZero(), diff), x.scale
	}
}

// Add returns x + y.
func (x Value) Add(y Value) Value {
	if x.IsStrictZero() {
		return y
	}
	if y.IsStrictZero() {
		return x
	}
	mx, my, scale := align(x, y)
	return newValue(new(big.Int).Add(mx, my), scale)
}

// Sub returns x - y.
func (x Value) Sub(y Value) Value {
	if y.IsStrictZero() {
		return x
	}
	if x.IsStrictZero() {
		return y.Neg()
	}
	mx, my, scale := align(x, y)
	return newValue(new(big.Int).Sub(mx, my), scale)
}

// Neg returns -v.
func (v Value) Neg() Value {
	if v.IsStrictZero() {
		return v
	}
	return newValue(new(big.Int).Neg(v.mant), v.scale)
}

// Abs returns |v|.
func (v Value) Abs() Value {
	if v.IsStrictZero() || v.mant.Sign() >= 0 {
		return v
	}
	return newValue(new(big.Int).Abs(v.mant), v.scale)
}

// Mul returns x * y. The resulting mantissa is the exact product of x's and
// y's mantissas: precision grows with every multiplication rather than
// being silently discarded, matching math/big.Int's own arbitrary-precision
// philosophy. Use SetPrecision, TruncateByAndRound, or Round to rein it back
// in once a computation no longer needs the extra bits.
func (x Value) Mul(y Value) Value {
	if x.IsStrictZero() || y.IsStrictZero() {
		return Value{scale: x.scale + y.scale - GuardBits}
	}
	return newValue(new(big.Int).Mul(x.mant, y.mant), x.scale+y.scale-GuardBits)
}

// Quo returns x / y, computed to at least 2*x.Size()+GuardBits bits of
// quotient precision (the truncated integer quotient of |x| shifted left
// by x.Size()+y.Size()+GuardBits bits, over |y|). It panics with
// DivideByZero if y is a strict zero.
func (x Value) Quo(y Value) Value {
	if y.IsStrictZero() {
		panicKind(DivideByZero, "Quo: division by zero")
	}
	if x.IsStrictZero() {
		return Value{scale: x.scale - y.scale + GuardBits}
	}
	shift := uint(y.size) + uint(x.size) + GuardBits
	num := new(big.Int).Lsh(new(big.Int).Abs(x.mant), shift)
	den := new(big.Int).Abs(y.mant)
	q := new(big.Int).Quo(num, den)
	if (x.mant.Sign() < 0) != (y.mant.Sign() < 0) {
		q.Neg(q)
	}
	resScale := x.scale - y.scale + GuardBits - int32(shift)
	return newValue(q, resScale)
}

// Rem returns the remainder of x / y with the sign of x (truncated
// division), i.e. x - Truncate(x/y)*y.
func (x Value) Rem(y Value) Value {
	q := x.Quo(y).Truncate()
	return x.Sub(q.Mul(y))
}

// Mod returns the remainder of x / y with the sign of y (floored division),
// i.e. x - Floor(x/y)*y.
func (x Value) Mod(y Value) Value {
	q := x.Quo(y).Floor()
	return x.Sub(q.Mul(y))
}

// Shl returns v * 2**n. Shifting is exact: it only moves the radix point,
// never touching the mantissa's bits.
func (v Value) Shl(n uint) Value {
	if v.IsStrictZero() {
		return Value{scale: v.scale + int32(n)}
	}
	return newValue(new(big.Int).Set(v.mant), v.scale+int32(n))
}

// Shr returns v / 2**n. Like Shl, this only moves the radix point.
func (v Value) Shr(n uint) Value {
	if v.IsStrictZero() {
		return Value{scale: v.scale - int32(n)}
	}
	return newValue(new(big.Int).Set(v.mant), v.scale-int32(n))
}
