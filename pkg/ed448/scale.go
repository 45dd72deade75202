// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package ed448

import (
	"fmt"
	"io"

	"github.com/ChainSafe/gossamer/pkg/scale"
)

// MarshalSCALE fulfils the SCALE interface for encoding.
// A signature is a fixed size array so it is encoded
// as its raw bytes without a length prefix.
func (sig Signature) MarshalSCALE() ([]byte, error) {
	return scale.Marshal(sig.Bytes())
}

// UnmarshalSCALE fulfils the SCALE interface for decoding.
func (sig *Signature) UnmarshalSCALE(r io.Reader) error {
	var b SignatureBytes
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return fmt.Errorf("%w: %s", ErrDecode, err)
	}
	*sig = FromBytes(b)
	return nil
}
