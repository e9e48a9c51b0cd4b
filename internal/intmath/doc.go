// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package intmath provides the arbitrary-precision integer kernels that
// the bigfloat package's arithmetic builds on: rounding right shifts,
// integer square and n-th roots, a most-significant-bits-only power
// approximation, and a fixed-point reciprocal. None of these are
// floating-point operations; they operate directly on *big.Int and are the
// only place rounding decisions about guard bits are made.
package intmath
