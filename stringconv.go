// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigfloat

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// String returns the exact decimal expansion of v. Because every Value is a
// dyadic rational (an integer times a power of two), this expansion is
// always finite: it never needs to be truncated or marked as repeating.
func (v Value) String() string {
	if v.IsStrictZero() {
		return "0"
	}
	m := new(big.Int).Abs(v.mant)
	neg := v.mant.Sign() < 0
	s := int64(v.scale) - GuardBits

	var out string
	if s >= 0 {
		m.Lsh(m, uint(s))
		out = m.String()
	} else {
		n := uint(-s)
		five := new(big.Int).Exp(big.NewInt(5), big.NewInt(int64(n)), nil)
		m.Mul(m, five)
		digits := m.String()
		if uint(len(digits)) <= n {
			digits = strings.Repeat("0", int(n)-len(digits)+1) + digits
		}
		intPart := digits[:len(digits)-int(n)]
		fracPart := strings.TrimRight(digits[len(digits)-int(n):], "0")
		if fracPart == "" {
			out = intPart
		} else {
			out = intPart + "." + fracPart
		}
	}
	if neg {
		out = "-" + out
	}
	return out
}

// scanDecimal parses the plain decimal literal grammar
// [+-]?digits(.digits)?([eE][+-]?digits)?, returning the sign, the
// significant digits with leading zeros stripped, and a base-10 exponent
// such that the represented value is (+-)digits * 10**decExp.
func scanDecimal(s string) (neg bool, digits string, decExp int, err error) {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}
	isDigit := func(b byte) bool { return b >= '0' && b <= '9' }

	intStart := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	intPart := s[intStart:i]

	var fracPart string
	if i < len(s) && s[i] == '.' {
		i++
		fracStart := i
		for i < len(s) && isDigit(s[i]) {
			i++
		}
		fracPart = s[fracStart:i]
	}

	if intPart == "" && fracPart == "" {
		return false, "", 0, errors.Errorf("%q: no digits", s)
	}

	exp := 0
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		sign := 1
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			if s[i] == '-' {
				sign = -1
			}
			i++
		}
		expStart := i
		for i < len(s) && isDigit(s[i]) {
			i++
		}
		if i == expStart {
			return false, "", 0, errors.Errorf("%q: malformed exponent", s)
		}
		n, convErr := strconv.Atoi(s[expStart:i])
		if convErr != nil {
			return false, "", 0, errors.Wrapf(convErr, "%q: malformed exponent", s)
		}
		exp = sign * n
	}

	if i != len(s) {
		return false, "", 0, errors.Errorf("%q: unexpected trailing character %q", s, s[i])
	}

	digits = strings.TrimLeft(intPart+fracPart, "0")
	if digits == "" {
		digits = "0"
	}
	decExp = exp - len(fracPart)
	return neg, digits, decExp, nil
}

// Parse parses a decimal literal into a Value rounded to accuracy bits
// right of the binary point.
func Parse(s string, accuracy int32) (Value, error) {
	neg, digits, decExp, err := scanDecimal(s)
	if err != nil {
		return Value{}, newParseError(s, err)
	}
	num := new(big.Int)
	num.SetString(digits, 10)
	if neg {
		num.Neg(num)
	}
	if num.Sign() == 0 {
		return ZeroWithAccuracy(accuracy), nil
	}
	if decExp >= 0 {
		num.Mul(num, new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decExp)), nil))
		return FromBigInt(num, 0, false, 0), nil
	}
	den := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(-decExp)), nil)
	shift := uint(accuracy) + fixedPrecisionMargin
	num2 := new(big.Int).Lsh(new(big.Int).Abs(num), shift)
	q := new(big.Int).Quo(num2, den)
	if num.Sign() < 0 {
		q.Neg(q)
	}
	result := newValue(q, GuardBits-int32(shift))
	return result.AdjustAccuracy(accuracy), nil
}

// TryParse is like Parse but reports success instead of returning an error.
func TryParse(s string, accuracy int32) (Value, bool) {
	v, err := Parse(s, accuracy)
	return v, err == nil
}
