/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const (
	configPrefix    = "STATUSLIST_"
	configDelimiter = "."

	configFileFlag = "configfile"
	formatFlag     = "format"
	clockSkewFlag  = "clockskew"
	timeoutFlag    = "timeout"
	retriesFlag    = "retries"
	keyFlag        = "key"
	algFlag        = "alg"
	skipVerifyFlag = "skipverify"
	atFlag         = "at"
	verboseFlag    = "verbose"

	defaultTimeout = 10 * time.Second
)

type config struct {
	Format     string        `koanf:"format"`
	ClockSkew  time.Duration `koanf:"clockskew"`
	Timeout    time.Duration `koanf:"timeout"`
	Retries    uint          `koanf:"retries"`
	Key        string        `koanf:"key"`
	Alg        string        `koanf:"alg"`
	SkipVerify bool          `koanf:"skipverify"`
	At         string        `koanf:"at"`
	Verbose    bool          `koanf:"verbose"`
}

func configFlagSet() *pflag.FlagSet {
	flagSet := pflag.NewFlagSet("statuslist", pflag.ContinueOnError)
	flagSet.String(configFileFlag, "", "YAML file to load the configuration from.")
	flagSet.String(formatFlag, "jwt", "Status List Token format, jwt or cwt.")
	flagSet.Duration(clockSkewFlag, 0, "Allowed clock skew when validating iat and exp of the Status List Token.")
	flagSet.Duration(timeoutFlag, defaultTimeout, "Time-out of resolving a status.")
	flagSet.Uint(retriesFlag, 0, "Number of retries of a failed Status List Token request.")
	flagSet.String(keyFlag, "", "File containing the PEM or JWK public key of the Status List Token issuer.")
	flagSet.String(algFlag, "", "Signature algorithm of the Status List Token, e.g. ES256 or EdDSA.")
	flagSet.Bool(skipVerifyFlag, false, "Do not verify the signature of the Status List Token.")
	flagSet.String(atFlag, "", "Resolve the status at this time (RFC 3339 or epoch seconds) instead of now.")
	flagSet.Bool(verboseFlag, false, "Log at debug level.")

	return flagSet
}

// loadConfig loads the configuration in order of precedence: flags, environment variables, config file and
// flag defaults.
func loadConfig(cmd *cobra.Command) (*config, error) {
	k := koanf.New(configDelimiter)
	flags := cmd.Flags()

	if err := k.Load(posflag.Provider(flags, configDelimiter, k), nil); err != nil {
		return nil, fmt.Errorf("load flag defaults: %w", err)
	}

	if err := loadFromFile(k, k.String(configFileFlag)); err != nil {
		return nil, err
	}

	e := env.Provider(configPrefix, configDelimiter, func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, configPrefix))
	})
	// errors can't occur for this provider
	_ = k.Load(e, nil)

	if err := k.Load(posflag.Provider(flags, configDelimiter, k), nil); err != nil {
		return nil, fmt.Errorf("load flags: %w", err)
	}

	cfg := &config{}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.ClockSkew < 0 {
		return nil, errors.New("clockskew must not be negative")
	}

	return cfg, nil
}

func loadFromFile(k *koanf.Koanf, path string) error {
	if path == "" {
		return nil
	}

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return fmt.Errorf("unable to load config file: %w", err)
	}

	return nil
}

// validationTime parses the at setting. An empty value means the current status.
func (c *config) validationTime() (*time.Time, error) {
	if c.At == "" {
		return nil, nil
	}

	if secs, err := strconv.ParseInt(c.At, 10, 64); err == nil {
		at := time.Unix(secs, 0).UTC()

		return &at, nil
	}

	at, err := time.Parse(time.RFC3339, c.At)
	if err != nil {
		return nil, fmt.Errorf("invalid %s '%s': expected RFC 3339 or epoch seconds", atFlag, c.At)
	}

	return &at, nil
}
