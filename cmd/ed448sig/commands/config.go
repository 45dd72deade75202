// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package commands

import (
	"errors"
	"fmt"
	"os"

	cfg "github.com/ChainSafe/ed448/config"
	"github.com/spf13/cobra"
)

// ErrFileExists is returned when a file to write already exists and --force is not set
var ErrFileExists = errors.New("file already exists")

func newConfigCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the current configuration to a TOML file",
		Long: `The config init command writes the configuration resulting from the defaults,
the environment and the flags to a TOML file.
Usage:
	ed448sig config init --out ./config.toml
	ed448sig config init --out ./config.toml --format cbor --context payments`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return execConfigInit(a, cmd)
		},
	}
	initCmd.Flags().String("out", cfg.DefaultConfigFile, "Path of the TOML file to write")
	initCmd.Flags().Bool("force", false, "Overwrite an existing file")

	cmd.AddCommand(initCmd)
	return cmd
}

func execConfigInit(a *app, cmd *cobra.Command) error {
	out, err := cmd.Flags().GetString("out")
	if err != nil {
		return fmt.Errorf("failed to get --out: %s", err)
	}
	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return fmt.Errorf("failed to get --force: %s", err)
	}

	if !force {
		_, err := os.Stat(out)
		if err == nil {
			return fmt.Errorf("%w: %s", ErrFileExists, out)
		} else if !errors.Is(err, os.ErrNotExist) {
			return err
		}
	}

	if err := cfg.WriteTOML(out, a.config); err != nil {
		return err
	}

	a.logger.Infof("configuration written to %s", out)
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}
