// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package ed448

import (
	"errors"
	"fmt"

	"github.com/ChainSafe/ed448/pkg/ed448/pkcs8"
	"github.com/cloudflare/circl/sign/ed448"
)

// ErrPublicKeyMismatch is returned when a PKCS#8 document carries a public
// key which is not the one derived from its secret key.
var ErrPublicKeyMismatch = errors.New("public key does not match secret key")

// KeypairBytes returns the keypair as PKCS#8 keypair bytes, including the public key.
func (kp *Keypair) KeypairBytes() pkcs8.KeypairBytes {
	var keypairBytes pkcs8.KeypairBytes
	copy(keypairBytes.SecretKey[:], ed448.PrivateKey(*kp.private).Seed())
	publicKey := kp.public.PublicKeyBytes()
	keypairBytes.PublicKey = &publicKey
	return keypairBytes
}

// NewKeypairFromKeypairBytes derives a keypair from the PKCS#8 secret key.
// If the public key is present, it must match the derived public key.
func NewKeypairFromKeypairBytes(keypairBytes pkcs8.KeypairBytes) (*Keypair, error) {
	kp, err := NewKeypairFromSeed(keypairBytes.SecretKey[:])
	if err != nil {
		return nil, err
	}

	if keypairBytes.PublicKey != nil && *keypairBytes.PublicKey != kp.public.PublicKeyBytes() {
		return nil, fmt.Errorf("%w: expected 0x%x but got 0x%x",
			ErrPublicKeyMismatch, kp.public.Encode(), keypairBytes.PublicKey[:])
	}

	return kp, nil
}

// PublicKeyBytes returns the public key as PKIX public key bytes.
func (k *PublicKey) PublicKeyBytes() (publicKeyBytes pkcs8.PublicKeyBytes) {
	copy(publicKeyBytes[:], *k)
	return publicKeyBytes
}

// NewPublicKeyFromPublicKeyBytes returns the public key held by PKIX public key bytes.
func NewPublicKeyFromPublicKeyBytes(publicKeyBytes pkcs8.PublicKeyBytes) *PublicKey {
	pub := make(PublicKey, PublicKeyLength)
	copy(pub, publicKeyBytes[:])
	return &pub
}
