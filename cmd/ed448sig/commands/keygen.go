// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/ChainSafe/ed448/lib/crypto/ed448"
	"github.com/spf13/cobra"
)

// ErrPasswordWithoutMnemonic is returned when a mnemonic password is given without a mnemonic
var ErrPasswordWithoutMnemonic = errors.New("a password requires a mnemonic")

func newKeygenCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate an Ed448 keypair",
		Long: `The keygen command generates an Ed448 keypair and writes it to the key file
as a PKCS#8 PEM document. The public key is printed in hexadecimal.
Usage:
	ed448sig keygen --key ./signer.pem
	ed448sig keygen --key ./signer.pem --public-key-out ./signer.pub.pem
	ed448sig keygen --key ./signer.pem --mnemonic "twist sausage ..." --password-prompt`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return execKeygen(a, cmd)
		},
	}

	cmd.Flags().String("mnemonic", "", "BIP-39 mnemonic to derive the keypair from")
	cmd.Flags().String("password", "", "Password of the BIP-39 mnemonic, visible in the process list. "+
		"Prefer --password-prompt")
	cmd.Flags().Bool("password-prompt", false, "Prompt for the password of the BIP-39 mnemonic")
	cmd.Flags().String("public-key-out", "", "File to write the public key to as a PEM document")
	cmd.Flags().Bool("force", false, "Overwrite existing files")

	return cmd
}

func execKeygen(a *app, cmd *cobra.Command) error {
	mnemonic, err := cmd.Flags().GetString("mnemonic")
	if err != nil {
		return fmt.Errorf("failed to get --mnemonic: %s", err)
	}
	password, err := cmd.Flags().GetString("password")
	if err != nil {
		return fmt.Errorf("failed to get --password: %s", err)
	}
	passwordPrompt, err := cmd.Flags().GetBool("password-prompt")
	if err != nil {
		return fmt.Errorf("failed to get --password-prompt: %s", err)
	}
	publicKeyOut, err := cmd.Flags().GetString("public-key-out")
	if err != nil {
		return fmt.Errorf("failed to get --public-key-out: %s", err)
	}
	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return fmt.Errorf("failed to get --force: %s", err)
	}

	if passwordPrompt {
		switch {
		case mnemonic == "":
			return ErrPasswordWithoutMnemonic
		case password != "":
			return fmt.Errorf("--password and --password-prompt cannot be used together")
		}
		b, err := a.readPassword("Enter the mnemonic password", cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		password = string(b)
	} else if password != "" && mnemonic == "" {
		return ErrPasswordWithoutMnemonic
	}

	var kp *ed448.Keypair
	if mnemonic != "" {
		kp, err = ed448.NewKeypairFromMnemonic(mnemonic, password)
	} else {
		kp, err = ed448.GenerateKeypair()
	}
	if err != nil {
		return fmt.Errorf("failed to generate keypair: %w", err)
	}

	privatePEM, err := kp.KeypairBytes().MarshalPKCS8PEM()
	if err != nil {
		return err
	}

	keyFile := a.config.Signer.KeyFile
	if err := writeFile(keyFile, privatePEM, force); err != nil {
		return fmt.Errorf("failed to write key file: %w", err)
	}
	a.logger.Infof("private key written to %s", keyFile)

	publicKey := kp.Public().(*ed448.PublicKey)
	if publicKeyOut != "" {
		publicPEM, err := publicKey.PublicKeyBytes().MarshalPKIXPEM()
		if err != nil {
			return err
		}
		if err := writeFile(publicKeyOut, publicPEM, force); err != nil {
			return fmt.Errorf("failed to write public key file: %w", err)
		}
		a.logger.Infof("public key written to %s", publicKeyOut)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Public key: %s\n", publicKey.Hex())
	return nil
}

// writeFile writes data to a new file with 0600 permissions.
// The file is truncated if it exists and overwrite is set.
func writeFile(path string, data []byte, overwrite bool) (err error) {
	flags := os.O_WRONLY | os.O_CREATE | os.O_EXCL
	if overwrite {
		flags = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	}

	file, err := os.OpenFile(path, flags, 0600)
	if err != nil {
		return err
	}
	defer func() {
		closeErr := file.Close()
		if err == nil {
			err = closeErr
		}
	}()

	_, err = file.Write(data)
	return err
}
