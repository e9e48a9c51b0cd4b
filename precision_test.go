// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigfloat

import "testing"

func TestSetPrecisionShrinkPreservesValue(t *testing.T) {
	v := FromInt64(1000000, 0)
	smaller := v.SetPrecision(v.Size() - 10)
	if v.CompareUlp(smaller, 1, false) != 0 {
		t.Fatalf("SetPrecision shrink changed value by more than 1 ULP: v=%v smaller=%v", v, smaller)
	}
}

func TestSetPrecisionGrowIsExact(t *testing.T) {
	v := FromInt64(7, 0)
	grown := v.SetPrecision(v.Size() + 20)
	if !v.Equals(grown) {
		t.Fatalf("SetPrecision grow changed value: %v != %v", v, grown)
	}
}

func TestRoundAndTruncate(t *testing.T) {
	v := FromFloat64(2.75, 0, 0)
	if got := v.Round().Int64(); got != 3 {
		t.Fatalf("Round() = %d, want 3", got)
	}
	if got := v.Truncate().Int64(); got != 2 {
		t.Fatalf("Truncate() = %d, want 2", got)
	}
	neg := FromFloat64(-2.75, 0, 0)
	if got := neg.Round().Int64(); got != -3 {
		t.Fatalf("Round() = %d, want -3", got)
	}
	if got := neg.Truncate().Int64(); got != -2 {
		t.Fatalf("Truncate() = %d, want -2", got)
	}
}

func TestCeilingAndFloor(t *testing.T) {
	v := FromFloat64(2.25, 0, 0)
	if got := v.Ceiling().Int64(); got != 3 {
		t.Fatalf("Ceiling() = %d, want 3", got)
	}
	if got := v.Floor().Int64(); got != 2 {
		t.Fatalf("Floor() = %d, want 2", got)
	}
	neg := FromFloat64(-2.25, 0, 0)
	if got := neg.Ceiling().Int64(); got != -2 {
		t.Fatalf("Ceiling() = %d, want -2", got)
	}
	if got := neg.Floor().Int64(); got != -3 {
		t.Fatalf("Floor() = %d, want -3", got)
	}
}

func TestCeilingLeavesGuardNoiseUnmoved(t *testing.T) {
	// A value whose only "fractional" content lives inside the guard-bit
	// window must compare as already-integral to Ceiling/Floor.
	v := IntWithAccuracy(5, 0).NextUp()
	if !v.Ceiling().Equals(v) {
		t.Fatalf("Ceiling() moved a value with only guard-bit noise: %v -> %v", v, v.Ceiling())
	}
	if !v.Floor().Equals(v) {
		t.Fatalf("Floor() moved a value with only guard-bit noise: %v -> %v", v, v.Floor())
	}
}

func TestIsInteger(t *testing.T) {
	if !FromInt64(5, 0).IsInteger() {
		t.Fatal("5 should be an integer")
	}
	if FromFloat64(5.5, 0, 0).IsInteger() {
		t.Fatal("5.5 should not be an integer")
	}
	if !Zero.IsInteger() {
		t.Fatal("0 should be an integer")
	}
}

func TestNextUpNextDown(t *testing.T) {
	v := FromInt64(1, 0)
	up := v.NextUp()
	down := v.NextDown()
	// A one-guard-unit step lies inside CompareTo's tolerant zero window,
	// so the strict ordering is checked on the raw difference instead.
	if d := up.Sub(v); d.IsStrictZero() || d.mant.Sign() <= 0 {
		t.Fatalf("NextUp() should be greater than v")
	}
	if d := down.Sub(v); d.IsStrictZero() || d.mant.Sign() >= 0 {
		t.Fatalf("NextDown() should be less than v")
	}
}

func TestTruncateByAndRound(t *testing.T) {
	v := FromInt64(1<<20+1, 0)
	reduced := v.TruncateByAndRound(10)
	if reduced.Size() != v.Size()-10 {
		t.Fatalf("Size() = %d, want %d", reduced.Size(), v.Size()-10)
	}
}
