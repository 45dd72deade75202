// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package ed448

import (
	"encoding"
	"encoding/hex"
	"fmt"
	"strings"
)

var (
	_ encoding.BinaryMarshaler   = Signature{}
	_ encoding.BinaryUnmarshaler = (*Signature)(nil)
	_ encoding.TextMarshaler     = Signature{}
	_ encoding.TextUnmarshaler   = (*Signature)(nil)
)

// MarshalBinary returns the SignatureSize raw bytes of the signature.
func (sig Signature) MarshalBinary() ([]byte, error) {
	b := sig.Bytes()
	return b[:], nil
}

// UnmarshalBinary sets the signature from exactly SignatureSize raw bytes.
func (sig *Signature) UnmarshalBinary(data []byte) error {
	decoded, err := FromSlice(data)
	if err != nil {
		return err
	}
	*sig = decoded
	return nil
}

// MarshalText returns the uppercase hexadecimal form of the signature.
// It is also the JSON representation of the signature.
func (sig Signature) MarshalText() ([]byte, error) {
	return []byte(sig.String()), nil
}

// UnmarshalText sets the signature from its hexadecimal form.
// Both letter cases are accepted, as well as an optional 0x or 0X prefix.
func (sig *Signature) UnmarshalText(text []byte) error {
	decoded, err := ParseHex(string(text))
	if err != nil {
		return err
	}
	*sig = decoded
	return nil
}

// ParseHex parses a signature from its hexadecimal form,
// with an optional 0x or 0X prefix.
func ParseHex(s string) (Signature, error) {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		s = s[2:]
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return Signature{}, fmt.Errorf("%w: %s", ErrDecode, err)
	}
	return FromSlice(b)
}
