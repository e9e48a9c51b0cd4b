// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigfloat

import "testing"

func TestBinaryMarshalRoundTrip(t *testing.T) {
	orig := FromFloat64(-123.456, 0, 0)
	data, err := orig.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary error: %v", err)
	}
	var got Value
	if err := got.UnmarshalBinary(data); err != nil {
		t.Fatalf("UnmarshalBinary error: %v", err)
	}
	if !got.Equals(orig) {
		t.Fatalf("round trip mismatch: got %v, want %v", got, orig)
	}
}

func TestBinaryMarshalRoundTripZero(t *testing.T) {
	data, err := Zero.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary error: %v", err)
	}
	var got Value
	if err := got.UnmarshalBinary(data); err != nil {
		t.Fatalf("UnmarshalBinary error: %v", err)
	}
	if !got.IsStrictZero() {
		t.Fatal("round-tripped zero should be a strict zero")
	}
}

func TestTextMarshalRoundTrip(t *testing.T) {
	orig := FromFloat64(3.5, 0, 0)
	text, err := orig.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText error: %v", err)
	}
	var got Value
	if err := got.UnmarshalText(text); err != nil {
		t.Fatalf("UnmarshalText error: %v", err)
	}
	if !got.Equals(orig) {
		t.Fatalf("round trip mismatch: got %v, want %v", got, orig)
	}
}
