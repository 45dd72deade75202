// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	cfg "github.com/ChainSafe/ed448/config"
	"github.com/ChainSafe/ed448/internal/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

// EnvPrefix is the prefix of the environment variables overriding the configuration
const EnvPrefix = "ED448SIG"

const configFlag = "config"

// app holds the state shared by the commands of a root command
type app struct {
	viper        *viper.Viper
	config       *cfg.Config
	logger       log.LeveledLogger
	readPassword func(prompt string, out io.Writer) ([]byte, error)
}

func newApp() *app {
	a := &app{
		viper:        viper.New(),
		config:       cfg.DefaultConfig(),
		readPassword: readTerminalPassword,
	}
	a.viper.SetEnvPrefix(EnvPrefix)
	a.viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	a.viper.AutomaticEnv()
	return a
}

// readTerminalPassword prompts for a password on the terminal without echoing it
func readTerminalPassword(prompt string, out io.Writer) ([]byte, error) {
	fmt.Fprint(out, prompt+": ")
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(out)
	if err != nil {
		return nil, fmt.Errorf("failed to read password: %w", err)
	}
	return password, nil
}

// ParseConfig parses the config from the command line flags, the environment
// and the optional TOML config file
func ParseConfig(v *viper.Viper, cmd *cobra.Command) (*cfg.Config, error) {
	configFile, err := cmd.Flags().GetString(configFlag)
	if err != nil {
		return nil, fmt.Errorf("failed to get --%s: %s", configFlag, err)
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	con := cfg.DefaultConfig()
	err = v.Unmarshal(con)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := con.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("error in config: %w", err)
	}

	return con, nil
}

// NewRootCommand creates the root command along with its sub-commands
func NewRootCommand() (*cobra.Command, error) {
	return newRootCommand(newApp())
}

func newRootCommand(a *app) (*cobra.Command, error) {
	cmd := &cobra.Command{
		Use:   "ed448sig",
		Short: "Ed448 signature command-line interface",
		Long: `ed448sig generates Ed448 keys, signs and verifies messages and inspects signatures.
Usage:
	ed448sig keygen --key ./signer.pem
	ed448sig sign --key ./signer.pem --format json "hello"
	ed448sig verify --public-key 0x5fd7... <signature> "hello"
	ed448sig verify --public-key 0x5fd7... --batch ./signatures.txt
	ed448sig inspect <signature>`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	if err := addRootFlags(a, cmd); err != nil {
		return nil, err
	}

	cmd.AddCommand(
		newKeygenCommand(a),
		newSignCommand(a),
		newVerifyCommand(a),
		newInspectCommand(a),
		newConfigCommand(a),
	)

	return cmd, nil
}

// setup parses the configuration and creates the logger of the commands
func (a *app) setup(cmd *cobra.Command) error {
	config, err := ParseConfig(a.viper, cmd)
	if err != nil {
		return err
	}

	level, err := config.Log.ParseLevel()
	if err != nil {
		return err
	}

	a.config = config
	log.Patch(
		log.SetLevel(level),
		log.SetColour(config.Log.Colour),
	)
	a.logger = log.NewFromGlobal(
		log.AddContext("pkg", "cmd"),
		log.SetWriter(cmd.ErrOrStderr()),
	)
	return nil
}

// addRootFlags adds the root flags to the command
func addRootFlags(a *app, cmd *cobra.Command) error {
	defaults := cfg.DefaultConfig()

	cmd.PersistentFlags().String(configFlag,
		"",
		"TOML config file. Example: --config ./config.toml")

	// Log Config
	if err := addStringFlagBindViper(a.viper, cmd,
		"log-level",
		defaults.Log.Level,
		"Log level: trace, debug, info, warn, error or critical",
		"log.level"); err != nil {
		return fmt.Errorf("failed to add --log-level flag: %s", err)
	}
	if err := addBoolFlagBindViper(a.viper, cmd,
		"log-colour",
		defaults.Log.Colour,
		"Colour the log levels",
		"log.colour"); err != nil {
		return fmt.Errorf("failed to add --log-colour flag: %s", err)
	}

	// Signer Config
	if err := addStringFlagBindViper(a.viper, cmd,
		"key",
		defaults.Signer.KeyFile,
		"PKCS#8 PEM private key file",
		"signer.key-file"); err != nil {
		return fmt.Errorf("failed to add --key flag: %s", err)
	}
	if err := addStringFlagBindViper(a.viper, cmd,
		"context",
		defaults.Signer.Context,
		"Signing context, at most 255 bytes",
		"signer.context"); err != nil {
		return fmt.Errorf("failed to add --context flag: %s", err)
	}

	// Output Config
	if err := addStringFlagBindViper(a.viper, cmd,
		"format",
		defaults.Output.Format,
		"Signature output format: hex, json, cbor or scale",
		"output.format"); err != nil {
		return fmt.Errorf("failed to add --format flag: %s", err)
	}

	return nil
}
