// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigfloat

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind classifies the error conditions a Value operation can raise. It
// mirrors the error taxonomy of the arithmetic kernel rather than any
// concrete Go error type.
type Kind int

//go:generate stringer -type=Kind

// Error kinds. Every kind except ParseFailure is raised as a PanicError
// panic; see PanicError and ParseError.
const (
	// DivideByZero is raised by Quo, Rem, Mod, and Inverse when the
	// divisor is a strict zero.
	DivideByZero Kind = iota
	// NegativeRoot is raised by Sqrt, Log2, and even-k NthRoot on a
	// negative operand.
	NegativeRoot
	// OverflowToFloat is raised by the integer conversions (Int64,
	// Uint64) and by Float64/Float32 when the value exceeds the target
	// type's range.
	OverflowToFloat
	// NonFiniteInput is raised by FromFloat64/FromFloat32 given a NaN or
	// an infinity.
	NonFiniteInput
	// ParseFailure is reported (not panicked) as a *ParseError by Parse and
	// TryParse on malformed input.
	ParseFailure
	// Programmer marks an invariant violation such as a negative shift
	// count; it indicates a bug in the caller.
	Programmer
)

// PanicError is the value recovered from a panic raised by any Value
// operation that hits a fatal error condition (every Kind except
// ParseFailure, which Parse reports as an ordinary *ParseError instead of
// panicking).
//
// It plays the same role as the teacher package's ErrNaN: a typed panic
// payload that callers can type-assert on, rather than an opaque string.
type PanicError struct {
	Kind Kind
	Msg  string
}

func (e PanicError) Error() string {
	return fmt.Sprintf("bigfloat: %s", e.Msg)
}

func panicKind(k Kind, format string, args ...interface{}) {
	panic(PanicError{Kind: k, Msg: fmt.Sprintf(format, args...)})
}

// ParseError is the error type returned by Parse (and, via TryParse's ok
// return, discarded) on malformed input.
type ParseError struct {
	Input string
	err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("bigfloat: parsing %q: %s", e.Input, e.err)
}

func (e *ParseError) Unwrap() error { return e.err }

func newParseError(input string, cause error) *ParseError {
	return &ParseError{Input: input, err: errors.WithMessage(cause, "invalid decimal literal")}
}
