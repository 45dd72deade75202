// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package commands

import (
	"fmt"

	ed448sig "github.com/ChainSafe/ed448/pkg/ed448"
	"github.com/spf13/cobra"
)

func newInspectCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [signature]",
		Short: "Inspect a signature",
		Long: `The inspect command parses a hex encoded signature and prints its
R and s components, its debug form and its encodings.
Usage:
	ed448sig inspect 0x533A37F6...`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return execInspect(a, cmd, args[0])
		},
	}
}

func execInspect(a *app, cmd *cobra.Command, signatureArg string) error {
	signature, err := ed448sig.ParseHex(signatureArg)
	if err != nil {
		return fmt.Errorf("failed to parse signature: %w", err)
	}

	cborEncoding, err := signature.MarshalCBOR()
	if err != nil {
		return err
	}
	scaleEncoding, err := signature.MarshalSCALE()
	if err != nil {
		return err
	}

	r, s := signature.RBytes(), signature.SBytes()

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Signature: %s\n", signature)
	fmt.Fprintf(out, "R: 0x%x\n", r[:])
	fmt.Fprintf(out, "s: 0x%x\n", s[:])
	fmt.Fprintf(out, "Debug: %#v\n", signature)
	fmt.Fprintf(out, "CBOR: 0x%x\n", cborEncoding)
	fmt.Fprintf(out, "SCALE: 0x%x\n", scaleEncoding)

	a.logger.Tracef("inspected signature %v", signature)
	return nil
}
