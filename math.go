// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigfloat

import (
	"math/big"

	"github.com/bigfloat-go/bigfloat/constants"
)

// fixedPrecisionMargin is added to the caller-requested accuracy whenever a
// math function needs internal fixed-point working precision, so that the
// function's own rounding doesn't erode the last bit or two of the
// requested result.
const fixedPrecisionMargin = 2 * GuardBits

// toFixed returns round(|v| * 2**prec) as a *big.Int. prec may be negative
// (e.g. when normalizing a very large or very small Value against a fixed
// working precision).
func toFixed(v Value, prec int64) *big.Int {
	if v.IsStrictZero() {
		return new(big.Int)
	}
	shift := int64(v.scale) - GuardBits + prec
	mag := new(big.Int).Abs(v.mant)
	if shift >= 0 {
		return new(big.Int).Lsh(mag, uint(shift))
	}
	return roundingRightShiftBig(mag, uint(-shift))
}

// fromFixed builds a Value out of a (possibly negative) fixed-point integer
// equal to value * 2**prec.
func fromFixed(fixed *big.Int, prec uint) Value {
	return newValue(new(big.Int).Set(fixed), GuardBits-int32(prec))
}

func mulFixed(a, b *big.Int, prec uint) *big.Int {
	m := new(big.Int).Mul(a, b)
	return roundingRightShiftBig(m, prec)
}

func divFixed(a, b *big.Int, prec uint) *big.Int {
	num := new(big.Int).Lsh(a, prec)
	return new(big.Int).Quo(num, b)
}

// Sqrt returns the square root of x, rounded to accuracy bits right of the
// binary point. It panics with NegativeRoot if x is negative.
func Sqrt(x Value, accuracy int32) Value {
	if x.IsStrictZero() {
		return Value{scale: -accuracy}
	}
	if x.mant.Sign() < 0 {
		panicKind(NegativeRoot, "Sqrt: argument must be non-negative")
	}
	e := int64(x.scale) - GuardBits
	wantBits := int64(accuracy) + fixedPrecisionMargin
	p := 2*wantBits - int64(x.size)
	if (e+p)%2 != 0 {
		p++
	}
	var n *big.Int
	if p >= 0 {
		n = new(big.Int).Lsh(x.mant, uint(p))
	} else {
		n = roundingRightShiftBig(x.mant, uint(-p))
	}
	root := intmathNewtonPlusSqrt(n)
	outExp := (e - p) / 2
	result := newValue(root, int32(outExp)+GuardBits)
	return result.AdjustAccuracy(accuracy)
}

// NthRoot returns the (real) k-th root of x, rounded to accuracy bits right
// of the binary point. It panics with NegativeRoot if x is negative and k
// is even, and with Programmer if k is 0.
func NthRoot(x Value, k uint, accuracy int32) Value {
	if k == 0 {
		panicKind(Programmer, "NthRoot: k must be >= 1")
	}
	if x.IsStrictZero() {
		return Value{scale: -accuracy}
	}
	neg := x.mant.Sign() < 0
	if neg && k%2 == 0 {
		panicKind(NegativeRoot, "NthRoot: even root of a negative argument")
	}
	mag := new(big.Int).Abs(x.mant)
	e := int64(x.scale) - GuardBits
	wantBits := int64(accuracy) + fixedPrecisionMargin
	p := wantBits*int64(k) - int64(x.size)
	kk := int64(k)
	mod := ((e - p) % kk) + kk
	mod %= kk
	p += mod
	var n *big.Int
	if p >= 0 {
		n = new(big.Int).Lsh(mag, uint(p))
	} else {
		n = roundingRightShiftBig(mag, uint(-p))
	}
	root := intmathNthRoot(n, k)
	if neg {
		root.Neg(root)
	}
	outExp := (e - p) / kk
	result := newValue(root, int32(outExp)+GuardBits)
	return result.AdjustAccuracy(accuracy)
}

// CubeRoot returns the cube root of x, rounded to accuracy bits right of
// the binary point.
func CubeRoot(x Value, accuracy int32) Value {
	return NthRoot(x, 3, accuracy)
}

// Pow returns base raised to the integer power exp, rounded to accuracy
// bits right of the binary point. It panics with DivideByZero for a zero
// base raised to a negative exponent.
func Pow(base Value, exp int64, accuracy int32) Value {
	if exp == 0 {
		return OneWithAccuracy(accuracy)
	}
	if base.IsStrictZero() {
		if exp < 0 {
			panicKind(DivideByZero, "Pow: zero base raised to a negative exponent")
		}
		return Value{scale: -accuracy}
	}
	negExp := exp < 0
	e := uint64(exp)
	if negExp {
		e = uint64(-exp)
	}
	wantBits := uint(accuracy) + fixedPrecisionMargin

	mag := new(big.Int).Abs(base.mant)
	m, shift := intmathPowApprox(mag, e, uint(base.size), wantBits, true)
	if base.mant.Sign() < 0 && e%2 == 1 {
		m.Neg(m)
	}

	baseExp := int64(base.scale) - GuardBits
	outExp := shift + int64(e)*baseExp
	result := newValue(m, int32(outExp)+GuardBits)
	if negExp {
		one := OneWithAccuracy(accuracy + GuardBits)
		result = one.Quo(result)
	}
	return result.AdjustAccuracy(accuracy)
}

// Inverse returns the multiplicative inverse 1/x, rounded to accuracy bits
// right of the binary point. It panics with DivideByZero if x is a strict
// zero.
func Inverse(x Value, accuracy int32) Value {
	if x.IsStrictZero() {
		panicKind(DivideByZero, "Inverse: division by zero")
	}
	mag := new(big.Int).Abs(x.mant)
	e := int64(x.scale) - GuardBits
	wantBits := uint(accuracy) + fixedPrecisionMargin
	bits := wantBits + uint(mag.BitLen())

	m := intmathInverse(mag, bits)
	if x.mant.Sign() < 0 {
		m.Neg(m)
	}
	// m/2**(2*bits) ~= 1/mag, and x = sign*mag*2**e, so
	// 1/x ~= sign * m * 2**(-2*bits-e).
	outExp := -int64(2*bits) - e
	result := newValue(m, int32(outExp)+GuardBits)
	return result.AdjustAccuracy(accuracy)
}

// lnFixed returns round(ln(m) * 2**prec) for a fixed-point magnitude m
// (equal to the real value m * 2**-prec) known to lie in [1, 2), via
// ln(m) = 2*atanh((m-1)/(m+1)).
func lnFixed(mFixed *big.Int, prec uint) *big.Int {
	one := new(big.Int).Lsh(big.NewInt(1), prec)
	num := new(big.Int).Sub(mFixed, one)
	den := new(big.Int).Add(mFixed, one)
	t := divFixed(num, den, prec)
	tt := mulFixed(t, t, prec)

	sum := new(big.Int).Set(t)
	term := new(big.Int).Set(t)
	for k := int64(3); ; k += 2 {
		term = mulFixed(term, tt, prec)
		if term.Sign() == 0 {
			break
		}
		t := new(big.Int).Quo(term, big.NewInt(k))
		sum.Add(sum, t)
	}
	return new(big.Int).Lsh(sum, 1)
}

// Log2 returns the base-2 logarithm of x, rounded to accuracy bits right of
// the binary point. It panics with NegativeRoot if x is not positive.
func Log2(x Value, accuracy int32) Value {
	if x.IsZero() || (x.mant != nil && x.mant.Sign() < 0) {
		panicKind(NegativeRoot, "Log2: argument must be positive")
	}
	prec := uint(accuracy) + fixedPrecisionMargin
	e := x.BinaryExponent()
	mFixed := toFixed(x, int64(prec)-e)

	lnm := lnFixed(mFixed, prec)
	ln2 := constants.GetConstant(constants.Ln2, prec)
	log2m := divFixed(lnm, ln2, prec)

	total := new(big.Int).Add(new(big.Int).Lsh(big.NewInt(e), prec), log2m)
	return fromFixed(total, prec).AdjustAccuracy(accuracy)
}

// sinCosFixed returns (round(sin(r)*2**prec), round(cos(r)*2**prec)) for a
// fixed-point r known to satisfy |r| <= pi/4, via the Taylor series for
// sin and cos evaluated together so the powers of r are shared.
func sinCosFixed(rFixed *big.Int, prec uint) (sinF, cosF *big.Int) {
	one := new(big.Int).Lsh(big.NewInt(1), prec)
	rr := mulFixed(rFixed, rFixed, prec)

	sinF = new(big.Int).Set(rFixed)
	sinTerm := new(big.Int).Set(rFixed)
	cosF = new(big.Int).Set(one)
	cosTerm := new(big.Int).Set(one)

	for k := int64(1); ; k++ {
		sinTerm = mulFixed(sinTerm, rr, prec)
		sinTerm = new(big.Int).Quo(sinTerm, big.NewInt(-(2*k)*(2*k+1)))
		cosTerm = mulFixed(cosTerm, rr, prec)
		cosTerm = new(big.Int).Quo(cosTerm, big.NewInt(-(2*k-1)*(2*k)))
		if sinTerm.Sign() == 0 && cosTerm.Sign() == 0 {
			break
		}
		sinF.Add(sinF, sinTerm)
		cosF.Add(cosF, cosTerm)
	}
	return sinF, cosF
}

// reduceQuadrant reduces x modulo pi/2, returning a fixed-point remainder r
// (|r| <= pi/4-ish, at prec fractional bits) and the quadrant k = round(x /
// (pi/2)) mod 4, used to recombine sin/cos of r into sin/cos of x.
func reduceQuadrant(x Value, prec uint) (rFixed *big.Int, quadrant int64) {
	piFixed := constants.GetConstant(constants.Pi, prec)
	halfPi := new(big.Int).Rsh(piFixed, 1)

	xFixed := toFixed(x, int64(prec))
	if x.mant.Sign() < 0 {
		xFixed.Neg(xFixed)
	}

	kBig := divFixed(xFixed, halfPi, prec)
	kBig = roundingRightShiftBig(kBig, prec)
	k := kBig.Int64()

	kHalfPi := new(big.Int).Mul(big.NewInt(k), halfPi)
	r := new(big.Int).Sub(xFixed, kHalfPi)

	quadrant = ((k % 4) + 4) % 4
	return r, quadrant
}

// Sin returns the sine of x (in radians), rounded to accuracy bits right of
// the binary point.
func Sin(x Value, accuracy int32) Value {
	if x.IsStrictZero() {
		return Value{scale: -accuracy}
	}
	prec := uint(accuracy) + fixedPrecisionMargin
	r, quadrant := reduceQuadrant(x, prec)
	s, c := sinCosFixed(r, prec)

	var result *big.Int
	switch quadrant {
	case 0:
		result = s
	case 1:
		result = c
	case 2:
		result = new(big.Int).Neg(s)
	default:
		result = new(big.Int).Neg(c)
	}
	return fromFixed(result, prec).AdjustAccuracy(accuracy)
}

// Cos returns the cosine of x (in radians), rounded to accuracy bits right
// of the binary point.
func Cos(x Value, accuracy int32) Value {
	if x.IsStrictZero() {
		return OneWithAccuracy(accuracy)
	}
	prec := uint(accuracy) + fixedPrecisionMargin
	r, quadrant := reduceQuadrant(x, prec)
	s, c := sinCosFixed(r, prec)

	var result *big.Int
	switch quadrant {
	case 0:
		result = c
	case 1:
		result = new(big.Int).Neg(s)
	case 2:
		result = new(big.Int).Neg(c)
	default:
		result = s
	}
	return fromFixed(result, prec).AdjustAccuracy(accuracy)
}

// Tan returns the tangent of x (in radians), rounded to accuracy bits right
// of the binary point.
func Tan(x Value, accuracy int32) Value {
	prec := uint(accuracy) + fixedPrecisionMargin
	sinV := Sin(x, int32(prec))
	cosV := Cos(x, int32(prec))
	return sinV.Quo(cosV).AdjustAccuracy(accuracy)
}
