// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package accuracy provides a convenience wrapper around bigfloat.Value
// operations that rounds every result to a fixed accuracy (bits right of
// the binary point), and that turns the package's panic-based error
// signaling into a sticky, checkable error state.
//
// Unlike the mutable contexts this package is modeled on, an
// AccuracyContext never mutates its operands or itself while computing a
// result: every method takes Values by value and returns a new Value.
// Only the latched error state changes, and only on the error path.
package accuracy

import (
	"github.com/bigfloat-go/bigfloat"
)

// An AccuracyContext rounds every result it produces to a fixed accuracy
// and latches the first error raised by an operation performed through it.
// Once latched, every further operation is a no-op (returning its first
// operand unchanged) until Err is called.
type AccuracyContext struct {
	accuracy int32
	err      error
}

// New creates an AccuracyContext that rounds results to the given accuracy
// (bits right of the binary point).
func New(accuracy int32) *AccuracyContext {
	return &AccuracyContext{accuracy: accuracy}
}

// Accuracy returns c's configured accuracy.
func (c *AccuracyContext) Accuracy() int32 { return c.accuracy }

// SetAccuracy changes c's configured accuracy and returns c.
func (c *AccuracyContext) SetAccuracy(accuracy int32) *AccuracyContext {
	c.accuracy = accuracy
	return c
}

// Err returns the first error latched since the last call to Err, clearing
// the latch.
func (c *AccuracyContext) Err() error {
	err := c.err
	c.err = nil
	return err
}

func (c *AccuracyContext) round(v bigfloat.Value) bigfloat.Value {
	return v.AdjustAccuracy(c.accuracy)
}

// guard runs fn, latching any bigfloat.PanicError it raises into c's error
// state and returning fallback instead of propagating the panic. Other
// panics are not this package's business and are re-raised.
func (c *AccuracyContext) guard(fallback bigfloat.Value, fn func() bigfloat.Value) (result bigfloat.Value) {
	if c.err != nil {
		return fallback
	}
	result = fallback
	defer func() {
		if r := recover(); r != nil {
			pe, ok := r.(bigfloat.PanicError)
			if !ok {
				panic(r)
			}
			c.err = pe
			result = fallback
		}
	}()
	return fn()
}

// New64 returns a new Value equal to x, rounded to c's accuracy.
func (c *AccuracyContext) New64(x int64) bigfloat.Value {
	return c.round(bigfloat.FromInt64(x, 0))
}

// NewFloat64 returns a new Value equal to x, rounded to c's accuracy.
func (c *AccuracyContext) NewFloat64(x float64) bigfloat.Value {
	return c.round(bigfloat.FromFloat64(x, 0, 0))
}

// Add returns x + y, rounded to c's accuracy.
func (c *AccuracyContext) Add(x, y bigfloat.Value) bigfloat.Value {
	return c.guard(x, func() bigfloat.Value { return c.round(x.Add(y)) })
}

// Sub returns x - y, rounded to c's accuracy.
func (c *AccuracyContext) Sub(x, y bigfloat.Value) bigfloat.Value {
	return c.guard(x, func() bigfloat.Value { return c.round(x.Sub(y)) })
}

// Mul returns x * y, rounded to c's accuracy.
func (c *AccuracyContext) Mul(x, y bigfloat.Value) bigfloat.Value {
	return c.guard(x, func() bigfloat.Value { return c.round(x.Mul(y)) })
}

// Quo returns x / y, rounded to c's accuracy. A division by zero latches
// DivideByZero into c's error state instead of panicking.
func (c *AccuracyContext) Quo(x, y bigfloat.Value) bigfloat.Value {
	return c.guard(x, func() bigfloat.Value { return c.round(x.Quo(y)) })
}

// Neg returns -x, rounded to c's accuracy.
func (c *AccuracyContext) Neg(x bigfloat.Value) bigfloat.Value {
	return c.guard(x, func() bigfloat.Value { return c.round(x.Neg()) })
}

// Abs returns |x|, rounded to c's accuracy.
func (c *AccuracyContext) Abs(x bigfloat.Value) bigfloat.Value {
	return c.guard(x, func() bigfloat.Value { return c.round(x.Abs()) })
}

// Sqrt returns the square root of x, rounded to c's accuracy. A negative x
// latches NegativeRoot into c's error state instead of panicking.
func (c *AccuracyContext) Sqrt(x bigfloat.Value) bigfloat.Value {
	return c.guard(x, func() bigfloat.Value { return c.round(bigfloat.Sqrt(x, c.accuracy)) })
}
