// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package ed448 provides the Ed448 signature type and its encodings.
//
// A signature is 114 bytes long: the 57 bytes of the R component
// followed by the 57 bytes of the s component, without any length
// prefix or padding. The package only parses and renders this layout;
// signing and verification live in lib/crypto/ed448.
package ed448
