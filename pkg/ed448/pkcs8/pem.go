// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package pkcs8

import (
	"bytes"
	"encoding/pem"
	"fmt"
)

const (
	PrivateKeyPEMType = "PRIVATE KEY"
	PublicKeyPEMType  = "PUBLIC KEY"
)

// MarshalPKCS8PEM encodes the keypair as a PEM "PRIVATE KEY" block.
func (k KeypairBytes) MarshalPKCS8PEM() ([]byte, error) {
	der, err := k.MarshalPKCS8()
	if err != nil {
		return nil, fmt.Errorf("encoding private key info: %w", err)
	}
	return pem.EncodeToMemory(&pem.Block{Type: PrivateKeyPEMType, Bytes: der}), nil
}

// ParsePKCS8PEM decodes a PEM "PRIVATE KEY" block holding an Ed448 key.
func ParsePKCS8PEM(data []byte) (KeypairBytes, error) {
	der, err := decodePEM(data, PrivateKeyPEMType)
	if err != nil {
		return KeypairBytes{}, err
	}
	return ParsePKCS8(der)
}

// MarshalPKIXPEM encodes the public key as a PEM "PUBLIC KEY" block.
func (p PublicKeyBytes) MarshalPKIXPEM() ([]byte, error) {
	der, err := p.MarshalPKIX()
	if err != nil {
		return nil, fmt.Errorf("encoding subject public key info: %w", err)
	}
	return pem.EncodeToMemory(&pem.Block{Type: PublicKeyPEMType, Bytes: der}), nil
}

// ParsePKIXPublicKeyPEM decodes a PEM "PUBLIC KEY" block holding an Ed448 key.
func ParsePKIXPublicKeyPEM(data []byte) (PublicKeyBytes, error) {
	der, err := decodePEM(data, PublicKeyPEMType)
	if err != nil {
		return PublicKeyBytes{}, err
	}
	return ParsePKIXPublicKey(der)
}

func decodePEM(data []byte, blockType string) (der []byte, err error) {
	block, rest := pem.Decode(data)
	if block == nil {
		return nil, ErrNoPEMBlock
	}
	if block.Type != blockType {
		return nil, fmt.Errorf("%w: %q instead of %q", ErrPEMBlockType, block.Type, blockType)
	}
	if len(bytes.TrimSpace(rest)) > 0 {
		return nil, ErrTrailingPEMData
	}
	return block.Bytes, nil
}
