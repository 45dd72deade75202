// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package commands

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/ChainSafe/ed448/lib/crypto/ed448"
	"github.com/ChainSafe/ed448/pkg/ed448/pkcs8"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// addStringFlagBindViper adds a string flag to the given command and binds it to the given viper name
func addStringFlagBindViper(v *viper.Viper,
	cmd *cobra.Command,
	name,
	defaultValue,
	usage,
	viperBindName string,
) error {
	cmd.PersistentFlags().String(name, defaultValue, usage)
	return v.BindPFlag(viperBindName, cmd.PersistentFlags().Lookup(name))
}

// addBoolFlagBindViper adds a bool flag to the given command and binds it to the given viper name
func addBoolFlagBindViper(
	v *viper.Viper,
	cmd *cobra.Command,
	name string,
	defaultValue bool,
	usage string,
	viperBindName string,
) error {
	cmd.PersistentFlags().Bool(name, defaultValue, usage)
	return v.BindPFlag(viperBindName, cmd.PersistentFlags().Lookup(name))
}

// decodeHex decodes a hex string with an optional 0x or 0X prefix
func decodeHex(s string) ([]byte, error) {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		s = s[2:]
	}
	return hex.DecodeString(s)
}

// messageFromArg returns the message bytes, decoding them from hex if isHex is set
func messageFromArg(arg string, isHex bool) ([]byte, error) {
	if !isHex {
		return []byte(arg), nil
	}
	msg, err := decodeHex(arg)
	if err != nil {
		return nil, fmt.Errorf("failed to decode hex message: %w", err)
	}
	return msg, nil
}

// loadKeypair reads a PKCS#8 PEM key file and returns its keypair
func loadKeypair(path string) (*ed448.Keypair, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read key file: %w", err)
	}

	keypairBytes, err := pkcs8.ParsePKCS8PEM(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse key file %s: %w", path, err)
	}

	return ed448.NewKeypairFromKeypairBytes(keypairBytes)
}

// loadPublicKey reads a SubjectPublicKeyInfo PEM file and returns its public key
func loadPublicKey(path string) (*ed448.PublicKey, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read public key file: %w", err)
	}

	publicKeyBytes, err := pkcs8.ParsePKIXPublicKeyPEM(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse public key file %s: %w", path, err)
	}

	return ed448.NewPublicKeyFromPublicKeyBytes(publicKeyBytes), nil
}
