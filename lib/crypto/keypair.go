// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package crypto

import (
	"errors"
)

// KeyType str
type KeyType = string

// Ed448Type is the Ed448 key type
const Ed448Type KeyType = "ed448"

// ErrSignatureVerificationFailed is returned when a signature does not
// verify against a public key and message.
var ErrSignatureVerificationFailed = errors.New("failed to verify signature")

// Keypair interface
type Keypair interface {
	Type() KeyType
	Sign(msg []byte) ([]byte, error)
	Public() PublicKey
	Private() PrivateKey
}

// PublicKey interface
type PublicKey interface {
	Verify(msg, sig []byte) (bool, error)
	Encode() []byte
	Decode([]byte) error
	Hex() string
}

// PrivateKey interface
type PrivateKey interface {
	Sign(msg []byte) ([]byte, error)
	Public() (PublicKey, error)
	Encode() []byte
	Decode(in []byte) error
	Hex() string
}

// VerifyFunc verifies a signature given a public key and message.
// It returns nil if the signature is valid.
type VerifyFunc func(publicKey, signature, message []byte) error
