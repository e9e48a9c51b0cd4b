// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigfloat

import "testing"

func TestAddSub(t *testing.T) {
	x := FromInt64(3, 0)
	y := FromInt64(4, 0)
	if got := x.Add(y).Int64(); got != 7 {
		t.Fatalf("Add() = %d, want 7", got)
	}
	if got := x.Sub(y).Int64(); got != -1 {
		t.Fatalf("Sub() = %d, want -1", got)
	}
}

// align brings mismatched-scale operands to a common scale; exercise it
// directly with operands whose scales differ by far more than the
// incidental difference TestAddSub already produces via padding.
func TestAddSubDifferentScales(t *testing.T) {
	x := FromInt64(1<<40, 0)
	y := x.SetPrecision(x.Size() - 20) // same value, coarser scale
	if got := x.Add(y).CompareUlp(FromInt64(1<<41, 0), 2, false); got != 0 {
		t.Fatalf("Add() of equal values at different scales should double the value, got %v", x.Add(y))
	}
	if got := x.Sub(y).Sign(); got != 0 {
		t.Fatalf("Sub() of equal values at different scales should be zero, got sign %d (%v)", got, x.Sub(y))
	}
}

func TestAddZeroIdentity(t *testing.T) {
	x := FromFloat64(1.5, 0, 0)
	if !x.Add(Zero).Equals(x) {
		t.Fatal("x + 0 should equal x")
	}
	if !Zero.Add(x).Equals(x) {
		t.Fatal("0 + x should equal x")
	}
}

func TestMul(t *testing.T) {
	x := FromInt64(6, 0)
	y := FromInt64(7, 0)
	if got := x.Mul(y).Int64(); got != 42 {
		t.Fatalf("Mul() = %d, want 42", got)
	}
}

func TestQuo(t *testing.T) {
	x := FromInt64(10, 0)
	y := FromInt64(4, 0)
	got := x.Quo(y)
	want := FromFloat64(2.5, 0, 0)
	if got.CompareUlp(want, 1, false) != 0 {
		t.Fatalf("Quo() = %v, want %v", got, want)
	}
}

func TestQuoByZeroPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("Quo by zero should panic")
		}
	}()
	FromInt64(1, 0).Quo(Zero)
}

func TestRemAndMod(t *testing.T) {
	x := FromInt64(-7, 0)
	y := FromInt64(3, 0)
	if got := x.Rem(y).Int64(); got != -1 {
		t.Fatalf("Rem() = %d, want -1", got)
	}
	if got := x.Mod(y).Int64(); got != 2 {
		t.Fatalf("Mod() = %d, want 2", got)
	}
}

func TestNegAbs(t *testing.T) {
	x := FromInt64(-5, 0)
	if got := x.Neg().Int64(); got != 5 {
		t.Fatalf("Neg() = %d, want 5", got)
	}
	if got := x.Abs().Int64(); got != 5 {
		t.Fatalf("Abs() = %d, want 5", got)
	}
}

func TestShlShr(t *testing.T) {
	x := FromInt64(3, 0)
	if got := x.Shl(2).Int64(); got != 12 {
		t.Fatalf("Shl(2) = %d, want 12", got)
	}
	if got := x.Shr(1).Float64(); got != 1.5 {
		t.Fatalf("Shr(1) = %v, want 1.5", got)
	}
}
