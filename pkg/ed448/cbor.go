// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package ed448

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

var (
	_ cbor.Marshaler   = Signature{}
	_ cbor.Unmarshaler = (*Signature)(nil)
)

// MarshalCBOR encodes the signature as a CBOR byte string
// of SignatureSize bytes.
func (sig Signature) MarshalCBOR() ([]byte, error) {
	b := sig.Bytes()
	return cbor.Marshal(b[:])
}

// UnmarshalCBOR decodes a signature from a CBOR byte string
// of exactly SignatureSize bytes.
func (sig *Signature) UnmarshalCBOR(data []byte) error {
	var raw []byte
	if err := cbor.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: %s", ErrDecode, err)
	}
	decoded, err := FromSlice(raw)
	if err != nil {
		return err
	}
	*sig = decoded
	return nil
}
