// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/flags"
	"cloudeng.io/lcsengine/codec"
	"cloudeng.io/lcsengine/lcs"
	"golang.org/x/text/unicode/norm"
)

// CommonFlags represents the flags shared by all commands.
type CommonFlags struct {
	cmdutil.LoggingFlags
	Config          string `subcmd:"config,,'YAML configuration file'"`
	Strategy        string `subcmd:"strategy,,'table construction strategy: bottom-up or top-down'"`
	MaxSolutions    int    `subcmd:"max-solutions,0,'maximum number of solutions to collect, a negative value removes the limit'"`
	MaxTopDownDepth int    `subcmd:"max-top-down-depth,0,'maximum combined input length for the top-down strategy, a negative value removes the limit'"`
	Normalize       string `subcmd:"normalize,,'unicode normalization applied to the inputs: nfc or nfd'"`
	Decoder         string `subcmd:"decoder,,'input decoding: utf8 or bytes'"`
	Verify          bool   `subcmd:"verify,false,'verify that both strategies produce identical tables'"`
}

// Config represents the YAML configuration file. Flags that are explicitly
// set override the values in the file.
type Config struct {
	Strategy        string `yaml:"strategy" cmd:"table construction strategy: bottom-up or top-down"`
	MaxSolutions    int    `yaml:"max_solutions" cmd:"maximum number of solutions to collect, negative for no limit"`
	MaxTopDownDepth int    `yaml:"max_top_down_depth" cmd:"maximum combined input length for the top-down strategy, negative for no limit"`
	Normalize       string `yaml:"normalize,omitempty" cmd:"unicode normalization: nfc or nfd"`
	Decoder         string `yaml:"decoder" cmd:"input decoding: utf8 or bytes"`
}

func defaultConfig() Config {
	return Config{
		Strategy:        lcs.BottomUp.String(),
		MaxSolutions:    lcs.DefaultMaxSolutions,
		MaxTopDownDepth: lcs.DefaultMaxTopDownDepth,
		Decoder:         "utf8",
	}
}

func loadConfig(cf *CommonFlags) (Config, error) {
	cfg := defaultConfig()
	if len(cf.Config) > 0 {
		if err := cmdutil.ParseYAMLConfigFile(cf.Config, &cfg); err != nil {
			return Config{}, err
		}
	}
	if len(cf.Strategy) > 0 {
		cfg.Strategy = cf.Strategy
	}
	if cf.MaxSolutions != 0 {
		cfg.MaxSolutions = cf.MaxSolutions
	}
	if cf.MaxTopDownDepth != 0 {
		cfg.MaxTopDownDepth = cf.MaxTopDownDepth
	}
	if len(cf.Normalize) > 0 {
		cfg.Normalize = cf.Normalize
	}
	if len(cf.Decoder) > 0 {
		cfg.Decoder = cf.Decoder
	}
	return cfg, cfg.validate()
}

func (c Config) validate() error {
	if err := flags.OneOf(c.Strategy).Validate(lcs.BottomUp.String(), lcs.TopDown.String()); err != nil {
		return err
	}
	if err := flags.OneOf(c.Normalize).Validate("", "nfc", "nfd"); err != nil {
		return err
	}
	return flags.OneOf(c.Decoder).Validate("utf8", "bytes")
}

func (c Config) strategy() (lcs.Strategy, error) {
	return lcs.ParseStrategy(c.Strategy)
}

func (c Config) options() []lcs.Option {
	return []lcs.Option{
		lcs.WithMaxSolutions(c.MaxSolutions),
		lcs.WithMaxTopDownDepth(c.MaxTopDownDepth),
	}
}

func (c Config) decoder() *codec.Decoder[rune] {
	var opts []codec.Option
	switch c.Normalize {
	case "nfc":
		opts = append(opts, codec.Normalize(norm.NFC))
	case "nfd":
		opts = append(opts, codec.Normalize(norm.NFD))
	}
	if c.Decoder == "bytes" {
		return codec.BytesAsRunes(opts...)
	}
	return codec.Runes(opts...)
}

// readSequence returns the contents of the named file for arguments of
// the form @<file>, with any trailing newline removed, and the argument
// itself otherwise.
func readSequence(arg string) ([]byte, error) {
	name, ok := strings.CutPrefix(arg, "@")
	if !ok {
		return []byte(arg), nil
	}
	buf, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("failed to read sequence: %w", err)
	}
	return bytes.TrimRight(buf, "\r\n"), nil
}
