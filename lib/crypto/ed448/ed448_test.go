// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package ed448

import (
	"encoding/hex"
	"fmt"
	"strings"
	"testing"

	"github.com/ChainSafe/ed448/lib/crypto"
	ed448sig "github.com/ChainSafe/ed448/pkg/ed448"

	bip39 "github.com/cosmos/go-bip39"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustHexDecode(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func TestSignAndVerify(t *testing.T) {
	t.Parallel()

	kp, err := GenerateKeypair()
	require.NoError(t, err)

	msg := []byte("helloworld")
	sig, err := kp.Sign(msg)
	require.NoError(t, err)
	require.Len(t, sig, SignatureLength)

	ok, err := kp.Public().Verify(msg, sig)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = kp.Public().Verify([]byte("helloworle"), sig)
	require.NoError(t, err)
	require.False(t, ok)
}

// RFC 8032 section 7.4, blank message.
func TestSign_rfc8032(t *testing.T) {
	t.Parallel()

	seed := mustHexDecode(t, "6c82a562cb808d10d632be89c8513ebf6c929f34ddfa8c9f63c9960ef6e348a3"+
		"528c8a3fcc2f044e39a3fc5b94492f8f032e7549a20098f95b")
	publicKey := mustHexDecode(t, "5fd7449b59b461fd2ce787ec616ad46a1da1342485a70e1f8a0ea75d80e96778"+
		"edf124769b46c7061bd6783df1e50f6cd1fa1abeafe8256180")
	expectedSignature := "533a37f6bbe457251f023c0d88f976ae2dfb504a843e34d2074fd823d41a591f" +
		"2b233f034f628281f2fd7a22ddd47d7828c59bd0a21bfd3980ff0d2028d4b18a" +
		"9df63e006c5d1c2d345b925d8dc00b4104852db99ac5c7cdda8530a113a0f4db" +
		"b61149f05a7363268c71d95808ff2e652600"

	kp, err := NewKeypairFromSeed(seed)
	require.NoError(t, err)
	assert.Equal(t, publicKey, kp.Public().Encode())

	signature, err := kp.SignWithContext(nil, "")
	require.NoError(t, err)
	assert.Equal(t, strings.ToUpper(expectedSignature), signature.String())

	r := signature.RBytes()
	assert.Equal(t, expectedSignature[:2*ed448sig.ComponentSize], hex.EncodeToString(r[:]))

	err = VerifySignature(publicKey, mustHexDecode(t, expectedSignature), nil)
	assert.NoError(t, err)
}

func TestSignWithContext(t *testing.T) {
	t.Parallel()

	kp, err := GenerateKeypair()
	require.NoError(t, err)

	msg := []byte("message")
	pub := kp.Public().(*PublicKey)

	signature, err := kp.SignWithContext(msg, "context")
	require.NoError(t, err)

	ok, err := pub.VerifyWithContext(msg, signature, "context")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = pub.VerifyWithContext(msg, signature, "other")
	require.NoError(t, err)
	assert.False(t, ok)

	b := signature.Bytes()
	ok, err = pub.Verify(msg, b[:])
	require.NoError(t, err)
	assert.False(t, ok)

	longContext := strings.Repeat("c", ContextMaxLength+1)

	_, err = kp.SignWithContext(msg, longContext)
	assert.ErrorIs(t, err, ErrContextTooLong)

	_, err = pub.VerifyWithContext(msg, signature, longContext)
	assert.ErrorIs(t, err, ErrContextTooLong)

	_, err = kp.SignWithContext(msg, strings.Repeat("c", ContextMaxLength))
	assert.NoError(t, err)
}

func TestPublicKeys(t *testing.T) {
	t.Parallel()

	kp, err := GenerateKeypair()
	require.NoError(t, err)

	kp2, err := NewKeypairFromSeed(kp.Private().Encode())
	require.NoError(t, err)
	assert.Equal(t, kp.Public(), kp2.Public())

	pub, err := kp.Private().Public()
	require.NoError(t, err)
	assert.Equal(t, kp.Public(), pub)
}

func TestEncodeAndDecodePrivateKey(t *testing.T) {
	t.Parallel()

	kp, err := GenerateKeypair()
	require.NoError(t, err)

	enc := kp.Private().Encode()
	require.Len(t, enc, SeedLength)

	res := new(PrivateKey)
	err = res.Decode(enc)
	require.NoError(t, err)
	assert.Equal(t, kp.Private(), res)
	assert.Equal(t, "0x"+hex.EncodeToString(enc), res.Hex())

	err = res.Decode(enc[1:])
	assert.ErrorIs(t, err, ErrInvalidSeedLength)
}

func TestEncodeAndDecodePublicKey(t *testing.T) {
	t.Parallel()

	kp, err := GenerateKeypair()
	require.NoError(t, err)

	enc := kp.Public().Encode()
	res := new(PublicKey)
	err = res.Decode(enc)
	require.NoError(t, err)
	assert.Equal(t, kp.Public(), res)
	assert.Equal(t, "0x"+hex.EncodeToString(enc), res.Hex())

	// the encoding is a copy
	enc[0] ^= 0xff
	assert.NotEqual(t, enc, kp.Public().Encode())
}

func TestNewKeypairFromMnemonic(t *testing.T) {
	t.Parallel()

	entropy, err := bip39.NewEntropy(128)
	require.NoError(t, err)

	mnemonic, err := bip39.NewMnemonic(entropy)
	require.NoError(t, err)

	_, err = NewKeypairFromMnemonic(mnemonic, "")
	require.NoError(t, err)
}

func TestNewKeypairFromMnemonic_Again(t *testing.T) {
	t.Parallel()

	mnemonic := "twist sausage october vivid neglect swear crumble hawk beauty fabric egg fragile"

	kp, err := NewKeypairFromMnemonic(mnemonic, "")
	require.NoError(t, err)

	seed := bip39.NewSeed(mnemonic, "")
	assert.Equal(t, seed[:SeedLength], kp.Private().Encode())

	again, err := NewKeypairFromMnemonic(mnemonic, "")
	require.NoError(t, err)
	assert.Equal(t, kp.Public(), again.Public())

	withPassword, err := NewKeypairFromMnemonic(mnemonic, "password")
	require.NoError(t, err)
	assert.NotEqual(t, kp.Public(), withPassword.Public())

	_, err = NewKeypairFromMnemonic("twist sausage", "")
	assert.Error(t, err)
}

func TestVerifySignature(t *testing.T) {
	t.Parallel()
	keypair, err := GenerateKeypair()
	require.NoError(t, err)

	message := []byte("Hello world!")

	signature, err := keypair.Sign(message)
	require.NoError(t, err)

	testCase := map[string]struct {
		publicKey, signature, message []byte
		errWrapped                    error
		errMessage                    string
	}{
		"success": {
			publicKey: keypair.public.Encode(),
			signature: signature,
			message:   message,
		},
		"bad public key input": {
			publicKey:  []byte{},
			signature:  signature,
			message:    message,
			errWrapped: ErrInvalidPublicKeyLength,
			errMessage: "ed448: cannot create public key: input is not 57 bytes",
		},
		"bad signature length": {
			publicKey:  keypair.public.Encode(),
			signature:  signature[:64],
			message:    message,
			errWrapped: ed448sig.ErrDecode,
			errMessage: "ed448: invalid signature: ed448: signature decode error",
		},
		"verification failed": {
			publicKey:  keypair.public.Encode(),
			signature:  make([]byte, SignatureLength),
			message:    message,
			errWrapped: crypto.ErrSignatureVerificationFailed,
			errMessage: fmt.Sprintf("ed448: failed to verify signature: for message 0x%x, signature 0x%x and public key 0x%x",
				message, make([]byte, SignatureLength), keypair.public.Encode()),
		},
	}

	for name, value := range testCase {
		testCase := value
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			err := VerifySignature(testCase.publicKey, testCase.signature, testCase.message)

			assert.ErrorIs(t, err, testCase.errWrapped)
			if testCase.errWrapped != nil {
				assert.EqualError(t, err, testCase.errMessage)
			}
		})
	}
}

func TestNewVerifyFunc(t *testing.T) {
	t.Parallel()

	keypair, err := GenerateKeypair()
	require.NoError(t, err)

	message := []byte("Hello world!")
	signature, err := keypair.SignWithContext(message, "context")
	require.NoError(t, err)
	b := signature.Bytes()
	publicKey := keypair.public.Encode()

	err = NewVerifyFunc("context")(publicKey, b[:], message)
	assert.NoError(t, err)

	err = NewVerifyFunc("other")(publicKey, b[:], message)
	assert.ErrorIs(t, err, crypto.ErrSignatureVerificationFailed)

	err = VerifySignature(publicKey, b[:], message)
	assert.ErrorIs(t, err, crypto.ErrSignatureVerificationFailed)

	err = NewVerifyFunc(strings.Repeat("c", ContextMaxLength+1))(publicKey, b[:], message)
	assert.ErrorIs(t, err, ErrContextTooLong)
}
