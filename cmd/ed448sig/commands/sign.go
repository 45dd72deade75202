// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package commands

import (
	"encoding/json"
	"fmt"

	cfg "github.com/ChainSafe/ed448/config"
	ed448sig "github.com/ChainSafe/ed448/pkg/ed448"
	"github.com/spf13/cobra"
)

func newSignCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sign [message]",
		Short: "Sign a message",
		Long: `The sign command signs a message with the private key of the key file
and prints the signature in the configured output format.
Usage:
	ed448sig sign --key ./signer.pem "hello"
	ed448sig sign --key ./signer.pem --hex 0x68656c6c6f
	ed448sig sign --key ./signer.pem --context payments --format scale "hello"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return execSign(a, cmd, args[0])
		},
	}

	cmd.Flags().Bool("hex", false, "The message is hex encoded")

	return cmd
}

func execSign(a *app, cmd *cobra.Command, message string) error {
	isHex, err := cmd.Flags().GetBool("hex")
	if err != nil {
		return fmt.Errorf("failed to get --hex: %s", err)
	}

	msg, err := messageFromArg(message, isHex)
	if err != nil {
		return err
	}

	kp, err := loadKeypair(a.config.Signer.KeyFile)
	if err != nil {
		return err
	}

	signature, err := kp.SignWithContext(msg, a.config.Signer.Context)
	if err != nil {
		return fmt.Errorf("failed to sign message: %w", err)
	}
	a.logger.Debugf("signed message of %d bytes with public key %s", len(msg), kp.Public().Hex())

	output, err := formatSignature(signature, a.config.Output.Format)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), output)
	return nil
}

// formatSignature renders the signature in the given output format.
// Binary encodings are rendered as 0x prefixed hex.
func formatSignature(signature ed448sig.Signature, format string) (string, error) {
	switch format {
	case cfg.FormatHex:
		return signature.String(), nil
	case cfg.FormatJSON:
		encoded, err := json.Marshal(signature)
		if err != nil {
			return "", fmt.Errorf("failed to encode signature to JSON: %w", err)
		}
		return string(encoded), nil
	case cfg.FormatCBOR:
		encoded, err := signature.MarshalCBOR()
		if err != nil {
			return "", fmt.Errorf("failed to encode signature to CBOR: %w", err)
		}
		return fmt.Sprintf("0x%x", encoded), nil
	case cfg.FormatSCALE:
		encoded, err := signature.MarshalSCALE()
		if err != nil {
			return "", fmt.Errorf("failed to encode signature to SCALE: %w", err)
		}
		return fmt.Sprintf("0x%x", encoded), nil
	default:
		return "", fmt.Errorf("%w: %q", cfg.ErrOutputFormatNotValid, format)
	}
}
