// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package bigfloat implements arbitrary-precision binary floating-point
arithmetic.

A Value represents

	mantissa * 2**(scale - GuardBits)

where mantissa is an arbitrary-size signed integer (its sign is the sign of
the value) and scale is a binary radix-point offset. GuardBits low-order
bits of the mantissa are always carried as a rounding guard region and are
not considered part of the value's nominal precision; see Value.Precision
and Value.Accuracy.

Unlike math/big.Float, Value has no mutating receiver methods. It is a
plain, deeply immutable value type: every operation takes its operands by
value and returns a new Value, so Values may be freely copied, shared
across goroutines, and used as map keys (see Value.Hash) without any
synchronization or aliasing concerns.

The zero Value denotes 0 and needs no initialization:

	var x bigfloat.Value // x == 0

Construction is via the From* family (FromInt64, FromFloat64, FromBigInt,
...), each of which takes an explicit precision-related parameter so
callers control how much headroom a freshly constructed Value carries:

	x := bigfloat.FromInt64(123, 0)
	y := bigfloat.FromFloat64(3.25, 0, 0)

Arithmetic operators are ordinary methods that return their result:

	z := x.Add(y).Mul(x)

Because mantissas grow with every multiplication rather than being
silently rounded away, long computations should periodically call
SetPrecision, TruncateByAndRound, or Round to bound their size; nothing
does this automatically.

Comparison comes in three flavors: CompareTo/Equals compare values exactly
under a tolerant zero rule, CompareUlp/EqualsUlp compare within a
caller-chosen number of ULPs of the coarser operand's precision (useful
when comparing results that arrived via different rounding paths), and
CompareTotalOrderBitwise imposes a total order over representations rather
than values, for canonicalization and use as sorted-map keys, while
CompareTotalPreorder is its coarser counterpart that groups
representations of the same value (it orders like CompareTo).

Package-level functions Sqrt, NthRoot, CubeRoot, Pow, Log2, Sin, Cos, and
Tan implement the transcendental and root operations that don't fit neatly
as binary Value methods; each takes an explicit accuracy parameter (bits
right of the binary point) for its result.

Subpackage constants computes and caches Pi, Ln2, E, and Sqrt2 to
arbitrary precision; subpackage accuracy provides a convenience wrapper
that rounds every operation's result to a fixed accuracy and turns this
package's panic-based error signaling into a checkable, sticky error
state, mirroring how math/big-adjacent contexts manage rounding and
precision.
*/
package bigfloat
