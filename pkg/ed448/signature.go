// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package ed448

import (
	"bytes"
)

// SignatureSize is the size in bytes of an encoded Ed448 signature.
const SignatureSize = 2 * ComponentSize

// SignatureBytes is an Ed448 signature serialised as a byte array,
// the R component followed by the s component.
type SignatureBytes = [SignatureSize]byte

// Signature is an Ed448 signature.
//
// It is a container for the byte serialisation of a signature and does
// not necessarily hold well-formed field or curve elements. Verifiers are
// expected to reject invalid elements when the signature is verified.
//
// A Signature is an immutable value: it is comparable with ==, can be used
// as a map key and is safe for concurrent use.
type Signature struct {
	r ComponentBytes
	s ComponentBytes
}

// NewSignature creates a signature from its R and s components.
func NewSignature(r, s ComponentBytes) Signature {
	return Signature{r: r, s: s}
}

// FromBytes parses an Ed448 signature from a byte array.
func FromBytes(b SignatureBytes) (sig Signature) {
	copy(sig.r[:], b[:ComponentSize])
	copy(sig.s[:], b[ComponentSize:])
	return sig
}

// FromSlice parses an Ed448 signature from a byte slice.
// It returns ErrDecode if the slice is not exactly SignatureSize bytes long.
func FromSlice(b []byte) (Signature, error) {
	if len(b) != SignatureSize {
		return Signature{}, ErrDecode
	}
	return FromBytes(SignatureBytes(b)), nil
}

// RBytes returns the bytes of the R component.
func (sig Signature) RBytes() ComponentBytes {
	return sig.r
}

// SBytes returns the bytes of the s component.
func (sig Signature) SBytes() ComponentBytes {
	return sig.s
}

// Bytes returns the signature as a byte array.
func (sig Signature) Bytes() (b SignatureBytes) {
	copy(b[:ComponentSize], sig.r[:])
	copy(b[ComponentSize:], sig.s[:])
	return b
}

// Equal returns true if both signatures hold the same bytes.
func (sig Signature) Equal(other Signature) bool {
	return sig == other
}

// Compare compares the byte forms of two signatures lexicographically.
// The result is 0 if sig == other, -1 if sig < other, and +1 if sig > other.
func (sig Signature) Compare(other Signature) int {
	a, b := sig.Bytes(), other.Bytes()
	return bytes.Compare(a[:], b[:])
}
