// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package commands

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ChainSafe/ed448/lib/crypto"
	"github.com/ChainSafe/ed448/lib/crypto/ed448"
	ed448sig "github.com/ChainSafe/ed448/pkg/ed448"
	"github.com/spf13/cobra"
)

var (
	ErrEmptyBatch       = errors.New("batch file has no signatures")
	ErrBatchLineInvalid = errors.New("batch line is not valid")
)

func newVerifyCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify [signature] [message]",
		Short: "Verify the signature of a message",
		Long: `The verify command verifies a hex encoded signature over a message.
The public key is taken from --public-key, --public-key-file or else from the key file.
With --batch, the signatures and messages are read from a file, one
"<signature> <message>" pair per line, and verified in the background.
Blank lines and lines starting with # are skipped.
Usage:
	ed448sig verify --public-key 0x5fd7... <signature> "hello"
	ed448sig verify --public-key-file ./signer.pub.pem <signature> "hello"
	ed448sig verify --key ./signer.pem --context payments <signature> "hello"
	ed448sig verify --public-key-file ./signer.pub.pem --batch ./signatures.txt`,
		Args: func(cmd *cobra.Command, args []string) error {
			batchFile, err := cmd.Flags().GetString("batch")
			if err != nil {
				return err
			}
			if batchFile != "" {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.ExactArgs(2)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			batchFile, err := cmd.Flags().GetString("batch")
			if err != nil {
				return fmt.Errorf("failed to get --batch: %s", err)
			}
			if batchFile != "" {
				return execVerifyBatch(a, cmd, batchFile)
			}
			return execVerify(a, cmd, args[0], args[1])
		},
	}

	cmd.Flags().String("public-key", "", "Hex encoded public key")
	cmd.Flags().String("public-key-file", "", "PEM public key file")
	cmd.Flags().Bool("hex", false, "The message is hex encoded")
	cmd.Flags().String("batch", "", "File of signature and message pairs to verify")

	return cmd
}

func execVerify(a *app, cmd *cobra.Command, signatureArg, message string) error {
	isHex, err := cmd.Flags().GetBool("hex")
	if err != nil {
		return fmt.Errorf("failed to get --hex: %s", err)
	}

	publicKey, err := verifyPublicKey(a, cmd)
	if err != nil {
		return err
	}

	signature, err := ed448sig.ParseHex(signatureArg)
	if err != nil {
		return fmt.Errorf("failed to parse signature: %w", err)
	}

	msg, err := messageFromArg(message, isHex)
	if err != nil {
		return err
	}

	ok, err := publicKey.VerifyWithContext(msg, signature, a.config.Signer.Context)
	if err != nil {
		return err
	} else if !ok {
		return fmt.Errorf("%w: for message 0x%x, signature %s and public key %s",
			crypto.ErrSignatureVerificationFailed, msg, signature, publicKey.Hex())
	}

	a.logger.Debugf("signature verified with public key %s", publicKey.Hex())
	fmt.Fprintln(cmd.OutOrStdout(), "Signature is valid")
	return nil
}

func verifyPublicKey(a *app, cmd *cobra.Command) (*ed448.PublicKey, error) {
	publicKeyHex, err := cmd.Flags().GetString("public-key")
	if err != nil {
		return nil, fmt.Errorf("failed to get --public-key: %s", err)
	}
	publicKeyFile, err := cmd.Flags().GetString("public-key-file")
	if err != nil {
		return nil, fmt.Errorf("failed to get --public-key-file: %s", err)
	}

	switch {
	case publicKeyHex != "" && publicKeyFile != "":
		return nil, fmt.Errorf("--public-key and --public-key-file cannot be used together")
	case publicKeyHex != "":
		in, err := decodeHex(publicKeyHex)
		if err != nil {
			return nil, fmt.Errorf("failed to decode public key: %w", err)
		}
		return ed448.NewPublicKey(in)
	case publicKeyFile != "":
		return loadPublicKey(publicKeyFile)
	default:
		kp, err := loadKeypair(a.config.Signer.KeyFile)
		if err != nil {
			return nil, err
		}
		return kp.Public().(*ed448.PublicKey), nil
	}
}

// batchEntry is a signature and message pair of a batch file
type batchEntry struct {
	signature ed448sig.Signature
	message   []byte
}

func execVerifyBatch(a *app, cmd *cobra.Command, batchFile string) error {
	isHex, err := cmd.Flags().GetBool("hex")
	if err != nil {
		return fmt.Errorf("failed to get --hex: %s", err)
	}

	publicKey, err := verifyPublicKey(a, cmd)
	if err != nil {
		return err
	}

	entries, err := readBatchFile(batchFile, isHex)
	if err != nil {
		return err
	}

	verifyFunc := ed448.VerifySignature
	if a.config.Signer.Context != "" {
		verifyFunc = ed448.NewVerifyFunc(a.config.Signer.Context)
	}

	verifier := crypto.NewSignatureVerifier(a.logger)
	verifier.Start()
	for _, entry := range entries {
		signature := entry.signature.Bytes()
		verifier.Add(&crypto.SignatureInfo{
			PubKey:     publicKey.Encode(),
			Sign:       signature[:],
			Msg:        entry.message,
			VerifyFunc: verifyFunc,
		})
	}

	if !verifier.Finish() {
		return fmt.Errorf("%w: in batch of %d signatures from %s",
			crypto.ErrSignatureVerificationFailed, len(entries), batchFile)
	}

	a.logger.Debugf("%d signatures verified with public key %s", len(entries), publicKey.Hex())
	fmt.Fprintf(cmd.OutOrStdout(), "All %d signatures are valid\n", len(entries))
	return nil
}

// readBatchFile parses the signature and message pairs of a batch file
func readBatchFile(path string, isHex bool) (entries []batchEntry, err error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open batch file: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		signatureField, message, found := strings.Cut(line, " ")
		if !found {
			return nil, fmt.Errorf("%w: line %d has no message", ErrBatchLineInvalid, lineNumber)
		}

		signature, err := ed448sig.ParseHex(signatureField)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrBatchLineInvalid, lineNumber, err)
		}

		msg, err := messageFromArg(strings.TrimSpace(message), isHex)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrBatchLineInvalid, lineNumber, err)
		}

		entries = append(entries, batchEntry{signature: signature, message: msg})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}

	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyBatch, path)
	}

	return entries, nil
}
