// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigfloat

import "testing"

func TestStringInteger(t *testing.T) {
	if got := FromInt64(42, 0).String(); got != "42" {
		t.Fatalf("String() = %q, want %q", got, "42")
	}
	if got := FromInt64(-42, 0).String(); got != "-42" {
		t.Fatalf("String() = %q, want %q", got, "-42")
	}
	if got := Zero.String(); got != "0" {
		t.Fatalf("String() = %q, want %q", got, "0")
	}
}

func TestStringFraction(t *testing.T) {
	if got := FromFloat64(0.5, 0, 0).String(); got != "0.5" {
		t.Fatalf("String() = %q, want %q", got, "0.5")
	}
	if got := FromFloat64(-2.25, 0, 0).String(); got != "-2.25" {
		t.Fatalf("String() = %q, want %q", got, "-2.25")
	}
}

func TestParseRoundTripsIntegers(t *testing.T) {
	v, err := Parse("12345", 64)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if got := v.Int64(); got != 12345 {
		t.Fatalf("Int64() = %d, want 12345", got)
	}
}

func TestParseFraction(t *testing.T) {
	v, err := Parse("3.14159", 64)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	withinFloatTolerance(t, v, 3.14159, 1e-9)
}

func TestParseExponent(t *testing.T) {
	v, err := Parse("1.5e3", 64)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if got := v.Int64(); got != 1500 {
		t.Fatalf("Int64() = %d, want 1500", got)
	}
}

func TestParseInvalid(t *testing.T) {
	if _, err := Parse("not-a-number", 64); err == nil {
		t.Fatal("Parse should reject a non-numeric string")
	}
	if _, ok := TryParse("not-a-number", 64); ok {
		t.Fatal("TryParse should report failure for a non-numeric string")
	}
}
