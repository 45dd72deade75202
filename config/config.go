// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ChainSafe/ed448/internal/log"
	"github.com/ChainSafe/ed448/lib/crypto/ed448"
	"github.com/naoina/toml"
)

const (
	// DefaultLogLevel is the default log level
	DefaultLogLevel = "info"
	// DefaultKeyFile is the default PKCS#8 PEM key file
	DefaultKeyFile = "ed448.pem"
	// DefaultOutputFormat is the default signature output format
	DefaultOutputFormat = FormatHex
	// DefaultConfigFile is the default name of the TOML config file
	DefaultConfigFile = "config.toml"
)

// Signature output formats
const (
	FormatHex   = "hex"
	FormatJSON  = "json"
	FormatCBOR  = "cbor"
	FormatSCALE = "scale"
)

var (
	ErrEmptyKeyFile         = errors.New("key file cannot be empty")
	ErrContextTooLong       = errors.New("context cannot be longer than 255 bytes")
	ErrOutputFormatNotValid = errors.New("output format is not valid")
)

// Config defines the configuration of the ed448sig command line tool
type Config struct {
	Log    LogConfig    `mapstructure:"log" toml:"log"`
	Signer SignerConfig `mapstructure:"signer" toml:"signer"`
	Output OutputConfig `mapstructure:"output" toml:"output"`
}

// LogConfig is the logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level" toml:"level"`
	Colour bool   `mapstructure:"colour" toml:"colour,omitempty"`
}

// SignerConfig is the configuration of the key used to sign
type SignerConfig struct {
	KeyFile string `mapstructure:"key-file" toml:"key-file"`
	Context string `mapstructure:"context" toml:"context,omitempty"`
}

// OutputConfig is the configuration of the command outputs
type OutputConfig struct {
	Format string `mapstructure:"format" toml:"format"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
		Signer: SignerConfig{
			KeyFile: DefaultKeyFile,
		},
		Output: OutputConfig{
			Format: DefaultOutputFormat,
		},
	}
}

// ValidateBasic performs basic validation on the config
func (cfg *Config) ValidateBasic() error {
	if err := cfg.Log.ValidateBasic(); err != nil {
		return fmt.Errorf("log config: %w", err)
	}
	if err := cfg.Signer.ValidateBasic(); err != nil {
		return fmt.Errorf("signer config: %w", err)
	}
	if err := cfg.Output.ValidateBasic(); err != nil {
		return fmt.Errorf("output config: %w", err)
	}
	return nil
}

// ValidateBasic checks the log level can be parsed
func (l *LogConfig) ValidateBasic() error {
	_, err := log.ParseLevel(l.Level)
	return err
}

// ParseLevel returns the configured log level
func (l *LogConfig) ParseLevel() (log.Level, error) {
	return log.ParseLevel(l.Level)
}

// ValidateBasic performs basic validation on the signer config
func (s *SignerConfig) ValidateBasic() error {
	if s.KeyFile == "" {
		return ErrEmptyKeyFile
	}
	if len(s.Context) > ed448.ContextMaxLength {
		return fmt.Errorf("%w: %d bytes", ErrContextTooLong, len(s.Context))
	}
	return nil
}

// ValidateBasic performs basic validation on the output config
func (o *OutputConfig) ValidateBasic() error {
	switch o.Format {
	case FormatHex, FormatJSON, FormatCBOR, FormatSCALE:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrOutputFormatNotValid, o.Format)
	}
}

// WriteTOML writes the configuration to a TOML file at the given path
func WriteTOML(path string, cfg *Config) error {
	raw, err := toml.Marshal(*cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal configuration: %w", err)
	}
	if err := os.WriteFile(path, raw, 0600); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}
