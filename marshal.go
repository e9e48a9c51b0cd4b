// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigfloat

import (
	"encoding/binary"
	"math/big"

	"github.com/pkg/errors"
)

// MarshalBinary implements encoding.BinaryMarshaler. The encoding is the
// big-endian scale followed by the mantissa's gob encoding (which itself
// carries the mantissa's sign and magnitude).
func (v Value) MarshalBinary() ([]byte, error) {
	var scaleBuf [4]byte
	binary.BigEndian.PutUint32(scaleBuf[:], uint32(v.scale))
	mantBytes, err := v.mantissaOrZero().GobEncode()
	if err != nil {
		return nil, errors.Wrap(err, "bigfloat: MarshalBinary")
	}
	out := make([]byte, 0, 4+len(mantBytes))
	out = append(out, scaleBuf[:]...)
	out = append(out, mantBytes...)
	return out, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (v *Value) UnmarshalBinary(data []byte) error {
	if len(data) < 4 {
		return errors.New("bigfloat: UnmarshalBinary: data too short")
	}
	scale := int32(binary.BigEndian.Uint32(data[:4]))
	m := new(big.Int)
	if err := m.GobDecode(data[4:]); err != nil {
		return errors.Wrap(err, "bigfloat: UnmarshalBinary")
	}
	*v = newValue(m, scale)
	return nil
}

// MarshalText implements encoding.TextMarshaler using Value.String.
func (v Value) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using Parse, at the
// accuracy v already carried before the call (0 for the zero Value).
func (v *Value) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text), v.Accuracy())
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
