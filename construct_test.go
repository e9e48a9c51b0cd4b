// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigfloat

import (
	"math/big"
	"testing"
)

func TestFromInt64(t *testing.T) {
	v := FromInt64(42, 0)
	if got := v.Int64(); got != 42 {
		t.Fatalf("Int64() = %d, want 42", got)
	}
	if v.Size() < GuardBits {
		t.Fatalf("Size() = %d, want >= GuardBits", v.Size())
	}
}

func TestFromInt64Zero(t *testing.T) {
	v := FromInt64(0, 0)
	if !v.IsStrictZero() {
		t.Fatalf("FromInt64(0) should be a strict zero")
	}
}

func TestFromBigIntValueIncludesGuard(t *testing.T) {
	m := big.NewInt(1 << 40)
	v := FromBigInt(m, 10, true, 0)
	if v.Scale() != 10 {
		t.Fatalf("Scale() = %d, want 10", v.Scale())
	}
	if v.Size() != uint(m.BitLen()) {
		t.Fatalf("Size() = %d, want %d", v.Size(), m.BitLen())
	}
}

func TestFromFloat64RoundTrip(t *testing.T) {
	for _, f := range []float64{0, 1, -1, 0.5, 3.14159265358979, 1e300, 1e-300, -123456.789} {
		v := FromFloat64(f, 0, 0)
		if got := v.Float64(); got != f {
			t.Fatalf("FromFloat64(%v).Float64() = %v, want %v", f, got, f)
		}
	}
}

func TestFromFloat32RoundTrip(t *testing.T) {
	for _, f := range []float32{0, 1, -1, 0.5, 3.14159, 1e30, -12345.6} {
		v := FromFloat32(f, 0, 0)
		if got := v.Float32(); got != f {
			t.Fatalf("FromFloat32(%v).Float32() = %v, want %v", f, got, f)
		}
	}
}

func TestFromFloat64NonFinitePanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("FromFloat64(NaN) should panic")
		}
	}()
	var nan = 0.0
	nan = nan / nan
	FromFloat64(nan, 0, 0)
}

func TestZeroWithAccuracy(t *testing.T) {
	v := ZeroWithAccuracy(50)
	if v.Accuracy() != 50 {
		t.Fatalf("Accuracy() = %d, want 50", v.Accuracy())
	}
	if !v.IsStrictZero() {
		t.Fatalf("ZeroWithAccuracy should be a strict zero")
	}
}

func TestOneWithAccuracy(t *testing.T) {
	v := OneWithAccuracy(20)
	if v.Accuracy() != 20 {
		t.Fatalf("Accuracy() = %d, want 20", v.Accuracy())
	}
	if v.Int64() != 1 {
		t.Fatalf("Int64() = %d, want 1", v.Int64())
	}
}

func TestIntWithAccuracy(t *testing.T) {
	v := IntWithAccuracy(-7, 16)
	if v.Accuracy() != 16 {
		t.Fatalf("Accuracy() = %d, want 16", v.Accuracy())
	}
	if v.Int64() != -7 {
		t.Fatalf("Int64() = %d, want -7", v.Int64())
	}
}

// A value much narrower than its default binaryPrecision (here 5, against
// 63 for int64) exercises fromBigIntWithBinaryPrecision's padding path;
// the padded nominal precision bits must not change the represented value.
func TestFromInt64NarrowValuePaddedToDefaultPrecision(t *testing.T) {
	v := FromInt64(5, 0)
	if got := v.Int64(); got != 5 {
		t.Fatalf("Int64() = %d, want 5", got)
	}
	if v.Precision() < 63 {
		t.Fatalf("Precision() = %d, want >= 63 (padded to int64's default binaryPrecision)", v.Precision())
	}
}
