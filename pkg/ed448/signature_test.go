// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package ed448

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func repeatedComponent(value byte) (c ComponentBytes) {
	for i := range c {
		c[i] = value
	}
	return c
}

func splitBytes(r, s byte) (b SignatureBytes) {
	copy(b[:ComponentSize], bytes.Repeat([]byte{r}, ComponentSize))
	copy(b[ComponentSize:], bytes.Repeat([]byte{s}, ComponentSize))
	return b
}

func randomBytes(t *testing.T, generator *rand.Rand) (b SignatureBytes) {
	t.Helper()
	_, err := generator.Read(b[:])
	require.NoError(t, err)
	return b
}

func Test_ComponentBytes_zeroValue(t *testing.T) {
	t.Parallel()

	var component ComponentBytes

	assert.Equal(t, make([]byte, ComponentSize), component.Bytes())
	assert.Equal(t, ComponentBytes{}, component)
}

func Test_ComponentFromSlice(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		input     []byte
		component ComponentBytes
		err       error
	}{
		"nil": {
			err: ErrDecode,
		},
		"too_short": {
			input: make([]byte, ComponentSize-1),
			err:   ErrDecode,
		},
		"too_long": {
			input: make([]byte, ComponentSize+1),
			err:   ErrDecode,
		},
		"exact": {
			input:     bytes.Repeat([]byte{0xaa}, ComponentSize),
			component: repeatedComponent(0xaa),
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			component, err := ComponentFromSlice(testCase.input)

			assert.ErrorIs(t, err, testCase.err)
			assert.Equal(t, testCase.component, component)
		})
	}
}

func Test_ComponentBytes_Bytes_copy(t *testing.T) {
	t.Parallel()

	component := repeatedComponent(1)
	b := component.Bytes()
	b[0] = 2

	assert.Equal(t, byte(1), component[0])
}

func Test_FromSlice(t *testing.T) {
	t.Parallel()

	valid := splitBytes(0xaa, 0xbb)

	testCases := map[string]struct {
		input     []byte
		signature Signature
		err       error
	}{
		"nil": {
			err: ErrDecode,
		},
		"empty": {
			input: []byte{},
			err:   ErrDecode,
		},
		"one_byte": {
			input: []byte{1},
			err:   ErrDecode,
		},
		"one_byte_short": {
			input: make([]byte, SignatureSize-1),
			err:   ErrDecode,
		},
		"one_byte_long": {
			input: make([]byte, SignatureSize+1),
			err:   ErrDecode,
		},
		"far_too_long": {
			input: make([]byte, 1000),
			err:   ErrDecode,
		},
		"exact_size": {
			input:     valid[:],
			signature: NewSignature(repeatedComponent(0xaa), repeatedComponent(0xbb)),
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			signature, err := FromSlice(testCase.input)

			if testCase.err != nil {
				require.ErrorIs(t, err, testCase.err)
				assert.EqualError(t, err, "ed448: signature decode error")
				assert.Equal(t, Signature{}, signature)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.signature, signature)
		})
	}
}

func Test_FromSlice_doesNotAliasInput(t *testing.T) {
	t.Parallel()

	input := bytes.Repeat([]byte{7}, SignatureSize)
	signature, err := FromSlice(input)
	require.NoError(t, err)

	input[0] = 8
	input[SignatureSize-1] = 8

	assert.Equal(t, repeatedComponent(7), signature.RBytes())
	assert.Equal(t, repeatedComponent(7), signature.SBytes())
}

func Test_Signature_componentSplit(t *testing.T) {
	t.Parallel()

	signature := FromBytes(splitBytes(0xaa, 0xbb))

	assert.Equal(t, bytes.Repeat([]byte{0xaa}, ComponentSize), signature.RBytes().Bytes())
	assert.Equal(t, bytes.Repeat([]byte{0xbb}, ComponentSize), signature.SBytes().Bytes())
}

func Test_Signature_componentBoundary(t *testing.T) {
	t.Parallel()

	var b SignatureBytes
	for i := range b {
		b[i] = byte(i)
	}

	signature := FromBytes(b)
	r, s := signature.RBytes(), signature.SBytes()

	assert.Equal(t, byte(0), r[0])
	assert.Equal(t, byte(ComponentSize-1), r[ComponentSize-1])
	assert.Equal(t, byte(ComponentSize), s[0])
	assert.Equal(t, byte(SignatureSize-1), s[ComponentSize-1])
}

func Test_Signature_roundTrip(t *testing.T) {
	t.Parallel()

	generator := rand.New(rand.NewSource(1)) //nolint:gosec

	for i := 0; i < 256; i++ {
		b := randomBytes(t, generator)

		signature := FromBytes(b)
		require.Equal(t, b, signature.Bytes())
		require.Equal(t, signature, FromBytes(signature.Bytes()))

		fromSlice, err := FromSlice(b[:])
		require.NoError(t, err)
		require.Equal(t, signature, fromSlice)

		rebuilt := NewSignature(signature.RBytes(), signature.SBytes())
		require.Equal(t, signature, rebuilt)
	}
}

func Test_Signature_Equal(t *testing.T) {
	t.Parallel()

	a := FromBytes(splitBytes(1, 2))
	b := FromBytes(splitBytes(1, 2))
	c := FromBytes(splitBytes(1, 2))
	differentR := FromBytes(splitBytes(3, 2))
	differentS := FromBytes(splitBytes(1, 3))

	// reflexive
	assert.True(t, a.Equal(a))
	// symmetric
	assert.True(t, a.Equal(b))
	assert.True(t, b.Equal(a))
	// transitive
	assert.True(t, b.Equal(c))
	assert.True(t, a.Equal(c))

	assert.False(t, a.Equal(differentR))
	assert.False(t, differentR.Equal(a))
	assert.False(t, a.Equal(differentS))
	assert.True(t, a == b)
	assert.True(t, a != differentS)
}

func Test_Signature_Compare(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		a, b     Signature
		expected int
	}{
		"equal": {
			a:        FromBytes(splitBytes(1, 1)),
			b:        FromBytes(splitBytes(1, 1)),
			expected: 0,
		},
		"smaller_r": {
			a:        FromBytes(splitBytes(1, 9)),
			b:        FromBytes(splitBytes(2, 0)),
			expected: -1,
		},
		"greater_s": {
			a:        FromBytes(splitBytes(1, 2)),
			b:        FromBytes(splitBytes(1, 1)),
			expected: 1,
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.expected, testCase.a.Compare(testCase.b))
			assert.Equal(t, -testCase.expected, testCase.b.Compare(testCase.a))
		})
	}
}

func Test_Signature_mapKey(t *testing.T) {
	t.Parallel()

	seen := map[Signature]int{}
	seen[FromBytes(splitBytes(1, 2))]++
	seen[FromBytes(splitBytes(1, 2))]++
	seen[FromBytes(splitBytes(2, 1))]++

	assert.Len(t, seen, 2)
	assert.Equal(t, 2, seen[FromBytes(splitBytes(1, 2))])
}

func Test_Signature_zeroValue(t *testing.T) {
	t.Parallel()

	var signature Signature

	assert.Equal(t, SignatureBytes{}, signature.Bytes())
	assert.Equal(t, ComponentBytes{}, signature.RBytes())
	assert.Equal(t, ComponentBytes{}, signature.SBytes())
}
