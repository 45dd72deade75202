// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package ed448

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/ChainSafe/ed448/lib/crypto"
	ed448sig "github.com/ChainSafe/ed448/pkg/ed448"
	"github.com/cloudflare/circl/sign/ed448"
	bip39 "github.com/cosmos/go-bip39"
)

const (
	// PublicKeyLength is the fixed Public Key Length
	PublicKeyLength int = ed448.PublicKeySize
	// SeedLength is the length of a seed, which is also the encoded private key length
	SeedLength int = ed448.SeedSize
	// SignatureLength is the length of a signature
	SignatureLength int = ed448.SignatureSize
	// ContextMaxLength is the maximum length of a signing context
	ContextMaxLength int = ed448.ContextMaxSize
)

var (
	ErrInvalidPublicKeyLength = errors.New("input is not 57 bytes")
	ErrInvalidSeedLength      = errors.New("seed is not 57 bytes")
	ErrContextTooLong         = errors.New("context is longer than 255 bytes")
)

var _ crypto.VerifyFunc = VerifySignature

// Keypair is a ed448 public-private keypair
type Keypair struct {
	public  *PublicKey
	private *PrivateKey
}

// PrivateKey is the ed448 private key, holding the seed followed by the public key
type PrivateKey ed448.PrivateKey

// PublicKey is the ed448 public key
type PublicKey ed448.PublicKey

// NewKeypair returns an Ed448 keypair given a ed448 private key
func NewKeypair(priv ed448.PrivateKey) *Keypair {
	pub := PublicKey(priv.Public().(ed448.PublicKey))
	private := PrivateKey(priv)
	return &Keypair{
		public:  &pub,
		private: &private,
	}
}

// NewKeypairFromSeed generates a new ed448 keypair from a 57 bytes seed
func NewKeypairFromSeed(seed []byte) (*Keypair, error) {
	if len(seed) != SeedLength {
		return nil, fmt.Errorf("cannot create keypair: %w", ErrInvalidSeedLength)
	}
	return NewKeypair(ed448.NewKeyFromSeed(seed)), nil
}

// NewKeypairFromMnemonic returns a new Keypair using the given mnemonic and password.
// The first 57 bytes of the BIP-39 seed are used as the ed448 seed.
func NewKeypairFromMnemonic(mnemonic, password string) (*Keypair, error) {
	seed, err := bip39.NewSeedWithErrorChecking(mnemonic, password)
	if err != nil {
		return nil, err
	}
	return NewKeypairFromSeed(seed[:SeedLength])
}

// GenerateKeypair returns a new ed448 keypair
func GenerateKeypair() (*Keypair, error) {
	_, priv, err := ed448.GenerateKey(rand.Reader)
	if err != nil {
		return nil, err
	}

	return NewKeypair(priv), nil
}

// NewPrivateKey returns an ed448 PrivateKey given a 57 bytes seed
func NewPrivateKey(seed []byte) (*PrivateKey, error) {
	if len(seed) != SeedLength {
		return nil, fmt.Errorf("cannot create private key: %w", ErrInvalidSeedLength)
	}
	priv := PrivateKey(ed448.NewKeyFromSeed(seed))
	return &priv, nil
}

// NewPublicKey returns an ed448 public key from 57 byte input
func NewPublicKey(in []byte) (*PublicKey, error) {
	if len(in) != PublicKeyLength {
		return nil, fmt.Errorf("cannot create public key: %w", ErrInvalidPublicKeyLength)
	}
	pub := make(PublicKey, PublicKeyLength)
	copy(pub, in)
	return &pub, nil
}

// VerifySignature verifies a signature given a public key and a message.
// It fits the crypto.VerifyFunc signature.
func VerifySignature(publicKey, signature, message []byte) error {
	return verifySignature(publicKey, signature, message, "")
}

// NewVerifyFunc returns a crypto.VerifyFunc verifying signatures made
// under the given context.
func NewVerifyFunc(context string) crypto.VerifyFunc {
	return func(publicKey, signature, message []byte) error {
		return verifySignature(publicKey, signature, message, context)
	}
}

func verifySignature(publicKey, signature, message []byte, context string) error {
	pubKey, err := NewPublicKey(publicKey)
	if err != nil {
		return fmt.Errorf("ed448: %w", err)
	}

	sig, err := ed448sig.FromSlice(signature)
	if err != nil {
		return fmt.Errorf("ed448: invalid signature: %w", err)
	}

	ok, err := pubKey.VerifyWithContext(message, sig, context)
	if err != nil {
		return fmt.Errorf("ed448: %w", err)
	} else if !ok {
		return fmt.Errorf("ed448: %w: for message 0x%x, signature 0x%x and public key 0x%x",
			crypto.ErrSignatureVerificationFailed, message, signature, publicKey)
	}

	return nil
}

// Type returns Ed448Type
func (*Keypair) Type() crypto.KeyType {
	return crypto.Ed448Type
}

// Sign uses the keypair to sign the message with an empty context
func (kp *Keypair) Sign(msg []byte) ([]byte, error) {
	return kp.private.Sign(msg)
}

// SignWithContext uses the keypair to sign the message under the given context
func (kp *Keypair) SignWithContext(msg []byte, context string) (ed448sig.Signature, error) {
	return kp.private.SignWithContext(msg, context)
}

// Public returns the keypair's public key
func (kp *Keypair) Public() crypto.PublicKey {
	return kp.public
}

// Private returns the keypair's private key
func (kp *Keypair) Private() crypto.PrivateKey {
	return kp.private
}

// Sign uses the ed448 private key to sign the message with an empty context
func (k *PrivateKey) Sign(msg []byte) ([]byte, error) {
	signature, err := k.SignWithContext(msg, "")
	if err != nil {
		return nil, err
	}
	b := signature.Bytes()
	return b[:], nil
}

// SignWithContext uses the ed448 private key to sign the message under the given context.
func (k *PrivateKey) SignWithContext(msg []byte, context string) (ed448sig.Signature, error) {
	if len(context) > ContextMaxLength {
		return ed448sig.Signature{}, ErrContextTooLong
	}

	sig := ed448.Sign(ed448.PrivateKey(*k), msg, context)
	return ed448sig.FromSlice(sig)
}

// Public returns the public key corresponding to the ed448 private key
func (k *PrivateKey) Public() (crypto.PublicKey, error) {
	pub := PublicKey(ed448.PrivateKey(*k).Public().(ed448.PublicKey))
	return &pub, nil
}

// Encode returns the 57 bytes seed of the private key
func (k *PrivateKey) Encode() []byte {
	return ed448.PrivateKey(*k).Seed()
}

// Decode turns a 57 bytes seed into a ed448 private key
func (k *PrivateKey) Decode(in []byte) error {
	priv, err := NewPrivateKey(in)
	if err != nil {
		return err
	}
	*k = *priv
	return nil
}

// Hex will return PrivateKey seed Hex
func (k *PrivateKey) Hex() string {
	return "0x" + hex.EncodeToString(k.Encode())
}

// Verify checks that the ed448 signature over the message with an empty
// context is valid for the public key.
func (k *PublicKey) Verify(msg, sig []byte) (bool, error) {
	signature, err := ed448sig.FromSlice(sig)
	if err != nil {
		return false, fmt.Errorf("invalid signature: %w", err)
	}
	return k.VerifyWithContext(msg, signature, "")
}

// VerifyWithContext checks that the ed448 signature over the message under
// the given context is valid for the public key.
func (k *PublicKey) VerifyWithContext(msg []byte, signature ed448sig.Signature, context string) (bool, error) {
	if len(context) > ContextMaxLength {
		return false, ErrContextTooLong
	}
	if len(*k) != PublicKeyLength {
		return false, fmt.Errorf("invalid public key: %w", ErrInvalidPublicKeyLength)
	}

	b := signature.Bytes()
	return ed448.Verify(ed448.PublicKey(*k), msg, b[:], context), nil
}

// Encode returns the encoding of the ed448 PublicKey
func (k *PublicKey) Encode() []byte {
	return append([]byte{}, *k...)
}

// Decode turns input into a ed448 PublicKey
func (k *PublicKey) Decode(in []byte) error {
	pub, err := NewPublicKey(in)
	if err != nil {
		return err
	}
	*k = *pub
	return nil
}

// Hex returns the public key as a '0x' prefixed hex string
func (k *PublicKey) Hex() string {
	return "0x" + hex.EncodeToString(k.Encode())
}
