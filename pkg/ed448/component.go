// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package ed448

import (
	"encoding/hex"
)

// ComponentSize is the size in bytes of a single component
// (R or s) of an Ed448 signature.
const ComponentSize = 57

// ComponentBytes is the byte serialisation of the R or the s
// component of an Ed448 signature. The bytes are not interpreted.
// Its zero value has all bytes set to zero.
type ComponentBytes [ComponentSize]byte

// ComponentFromSlice copies the given slice into a ComponentBytes.
// It returns ErrDecode if the slice is not exactly ComponentSize bytes long.
func ComponentFromSlice(b []byte) (c ComponentBytes, err error) {
	if len(b) != ComponentSize {
		return c, ErrDecode
	}
	copy(c[:], b)
	return c, nil
}

// Bytes returns a copy of the component as a byte slice.
func (c ComponentBytes) Bytes() []byte {
	b := make([]byte, ComponentSize)
	copy(b, c[:])
	return b
}

// GoString returns the debug representation of the component,
// used by the %#v verb.
func (c ComponentBytes) GoString() string {
	return "ed448.ComponentBytes(0x" + hex.EncodeToString(c[:]) + ")"
}
