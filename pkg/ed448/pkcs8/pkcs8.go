// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package pkcs8 encodes Ed448 keys in the PKCS#8 (RFC 5958) and
// SubjectPublicKeyInfo (RFC 5280) containers described by RFC 8410.
package pkcs8

import (
	encoding_asn1 "encoding/asn1"
	"errors"
	"fmt"

	"golang.org/x/crypto/cryptobyte"
	"golang.org/x/crypto/cryptobyte/asn1"
)

const (
	// SecretKeySize is the size in bytes of an Ed448 secret key (seed).
	SecretKeySize = 57
	// PublicKeySize is the size in bytes of an encoded Ed448 public key.
	PublicKeySize = 57
	// KeypairSize is the size of a secret key followed by its public key.
	KeypairSize = SecretKeySize + PublicKeySize
)

// AlgorithmOID is the id-Ed448 object identifier.
var AlgorithmOID = encoding_asn1.ObjectIdentifier{1, 3, 101, 113}

var (
	ErrMalformedDER    = errors.New("malformed DER")
	ErrAlgorithm       = errors.New("algorithm is not Ed448")
	ErrVersion         = errors.New("unsupported private key info version")
	ErrKeySize         = errors.New("invalid key size")
	ErrNoPEMBlock      = errors.New("no PEM block found")
	ErrPEMBlockType    = errors.New("unexpected PEM block type")
	ErrNoPublicKey     = errors.New("keypair has no public key")
	ErrTrailingPEMData = errors.New("trailing data after PEM block")
)

const (
	versionV1 int64 = 0
	versionV2 int64 = 1
)

// PublicKeyBytes is an Ed448 public key serialised as bytes.
type PublicKeyBytes [PublicKeySize]byte

// KeypairBytes is an Ed448 secret key, optionally accompanied by its
// public key. The bytes are not checked to be consistent with each other.
type KeypairBytes struct {
	SecretKey [SecretKeySize]byte
	PublicKey *PublicKeyBytes
}

// KeypairFromBytes creates a KeypairBytes from a secret key
// followed by its public key.
func KeypairFromBytes(b [KeypairSize]byte) KeypairBytes {
	var k KeypairBytes
	var publicKey PublicKeyBytes
	copy(k.SecretKey[:], b[:SecretKeySize])
	copy(publicKey[:], b[SecretKeySize:])
	k.PublicKey = &publicKey
	return k
}

// Bytes returns the secret key followed by the public key.
// It returns ErrNoPublicKey if the public key is not set.
func (k KeypairBytes) Bytes() (b [KeypairSize]byte, err error) {
	if k.PublicKey == nil {
		return b, ErrNoPublicKey
	}
	copy(b[:SecretKeySize], k.SecretKey[:])
	copy(b[SecretKeySize:], k.PublicKey[:])
	return b, nil
}

// MarshalPKCS8 encodes the keypair as a DER OneAsymmetricKey.
// The version is v1 without a public key and v2 with one.
func (k KeypairBytes) MarshalPKCS8() ([]byte, error) {
	version := versionV1
	if k.PublicKey != nil {
		version = versionV2
	}

	var b cryptobyte.Builder
	b.AddASN1(asn1.SEQUENCE, func(b *cryptobyte.Builder) {
		b.AddASN1Int64(version)
		addAlgorithmIdentifier(b)
		// CurvePrivateKey ::= OCTET STRING, wrapped in the privateKey OCTET STRING
		b.AddASN1(asn1.OCTET_STRING, func(b *cryptobyte.Builder) {
			b.AddASN1OctetString(k.SecretKey[:])
		})
		if k.PublicKey != nil {
			// publicKey [1] IMPLICIT BIT STRING
			b.AddASN1(asn1.Tag(1).ContextSpecific(), func(b *cryptobyte.Builder) {
				b.AddUint8(0) // unused bits
				b.AddBytes(k.PublicKey[:])
			})
		}
	})
	return b.Bytes()
}

// ParsePKCS8 decodes a DER OneAsymmetricKey holding an Ed448 key.
func ParsePKCS8(der []byte) (k KeypairBytes, err error) {
	input := cryptobyte.String(der)

	var inner cryptobyte.String
	if !input.ReadASN1(&inner, asn1.SEQUENCE) || !input.Empty() {
		return k, fmt.Errorf("%w: private key info", ErrMalformedDER)
	}

	var version int64
	if !inner.ReadASN1Integer(&version) {
		return k, fmt.Errorf("%w: version", ErrMalformedDER)
	}
	if version != versionV1 && version != versionV2 {
		return k, fmt.Errorf("%w: %d", ErrVersion, version)
	}

	err = readAlgorithmIdentifier(&inner)
	if err != nil {
		return k, err
	}

	var privateKey, secretKey cryptobyte.String
	if !inner.ReadASN1(&privateKey, asn1.OCTET_STRING) ||
		!privateKey.ReadASN1(&secretKey, asn1.OCTET_STRING) ||
		!privateKey.Empty() {
		return k, fmt.Errorf("%w: private key", ErrMalformedDER)
	}
	if len(secretKey) != SecretKeySize {
		return k, fmt.Errorf("%w: secret key is %d bytes", ErrKeySize, len(secretKey))
	}
	copy(k.SecretKey[:], secretKey)

	if !inner.SkipOptionalASN1(asn1.Tag(0).ContextSpecific().Constructed()) {
		return k, fmt.Errorf("%w: attributes", ErrMalformedDER)
	}

	var publicKey cryptobyte.String
	var hasPublicKey bool
	if !inner.ReadOptionalASN1(&publicKey, &hasPublicKey, asn1.Tag(1).ContextSpecific()) {
		return k, fmt.Errorf("%w: public key", ErrMalformedDER)
	}

	if !inner.Empty() {
		return k, fmt.Errorf("%w: trailing data in private key info", ErrMalformedDER)
	}

	if !hasPublicKey {
		return k, nil
	}

	if version != versionV2 {
		return k, fmt.Errorf("%w: public key requires version 2", ErrVersion)
	}

	var unusedBits uint8
	if !publicKey.ReadUint8(&unusedBits) || unusedBits != 0 {
		return k, fmt.Errorf("%w: public key bit string", ErrMalformedDER)
	}
	if len(publicKey) != PublicKeySize {
		return k, fmt.Errorf("%w: public key is %d bytes", ErrKeySize, len(publicKey))
	}

	k.PublicKey = new(PublicKeyBytes)
	copy(k.PublicKey[:], publicKey)
	return k, nil
}

// MarshalPKIX encodes the public key as a DER SubjectPublicKeyInfo.
func (p PublicKeyBytes) MarshalPKIX() ([]byte, error) {
	var b cryptobyte.Builder
	b.AddASN1(asn1.SEQUENCE, func(b *cryptobyte.Builder) {
		addAlgorithmIdentifier(b)
		b.AddASN1BitString(p[:])
	})
	return b.Bytes()
}

// ParsePKIXPublicKey decodes a DER SubjectPublicKeyInfo holding an Ed448 key.
func ParsePKIXPublicKey(der []byte) (p PublicKeyBytes, err error) {
	input := cryptobyte.String(der)

	var inner cryptobyte.String
	if !input.ReadASN1(&inner, asn1.SEQUENCE) || !input.Empty() {
		return p, fmt.Errorf("%w: subject public key info", ErrMalformedDER)
	}

	err = readAlgorithmIdentifier(&inner)
	if err != nil {
		return p, err
	}

	var bits encoding_asn1.BitString
	if !inner.ReadASN1BitString(&bits) || !inner.Empty() {
		return p, fmt.Errorf("%w: subject public key", ErrMalformedDER)
	}
	if bits.BitLength != 8*PublicKeySize {
		return p, fmt.Errorf("%w: public key is %d bits", ErrKeySize, bits.BitLength)
	}

	copy(p[:], bits.Bytes)
	return p, nil
}

func addAlgorithmIdentifier(b *cryptobyte.Builder) {
	b.AddASN1(asn1.SEQUENCE, func(b *cryptobyte.Builder) {
		b.AddASN1ObjectIdentifier(AlgorithmOID)
	})
}

func readAlgorithmIdentifier(s *cryptobyte.String) error {
	var algorithm cryptobyte.String
	var oid encoding_asn1.ObjectIdentifier
	if !s.ReadASN1(&algorithm, asn1.SEQUENCE) || !algorithm.ReadASN1ObjectIdentifier(&oid) {
		return fmt.Errorf("%w: algorithm identifier", ErrMalformedDER)
	}
	if !oid.Equal(AlgorithmOID) {
		return fmt.Errorf("%w: %s", ErrAlgorithm, oid)
	}
	if !algorithm.Empty() {
		return fmt.Errorf("%w: parameters must be absent", ErrAlgorithm)
	}
	return nil
}
