// Copyright 2022 The go-ethereum Authors
// This file is part of the go-ethereum library.
//
// The go-ethereum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-ethereum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-ethereum library. If not, see <http://www.gnu.org/licenses/>.

package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"reflect"

	"github.com/PigCharid/go-rlp/log"
	"github.com/naoina/toml"
	"github.com/urfave/cli/v2"
)

// These settings ensure that TOML keys use the same names as Go struct fields.
var tomlSettings = toml.Config{
	NormFieldName: func(rt reflect.Type, key string) string {
		return key
	},
	FieldToKey: func(rt reflect.Type, field string) string {
		return field
	},
	MissingField: func(rt reflect.Type, field string) error {
		return fmt.Errorf("field '%s' is not defined in %s", field, rt.String())
	},
}

// OutputConfig controls how encodings are printed.
type OutputConfig struct {
	Format    string // "hex" or "binary"
	Uppercase bool   // print hex digits in upper case
	NoPrefix  bool   // omit the 0x prefix of hex output
}

// LogConfig controls the diagnostic log written to stderr.
type LogConfig struct {
	Verbosity int // 0=crit, 1=error, 2=warn, 3=info, 4=debug, 5=trace
	Color     bool
}

type rlpencConfig struct {
	Output OutputConfig
	Log    LogConfig
}

var defaultConfig = rlpencConfig{
	Output: OutputConfig{
		Format: "hex",
	},
	Log: LogConfig{
		Verbosity: int(log.LvlWarn),
		Color:     true,
	},
}

const (
	formatHex    = "hex"
	formatBinary = "binary"
)

func loadConfig(file string, cfg *rlpencConfig) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	err = tomlSettings.NewDecoder(bufio.NewReader(f)).Decode(cfg)
	// Add file name to errors that have a line number.
	if _, ok := err.(*toml.LineError); ok {
		err = errors.New(file + ", " + err.Error())
	}
	return err
}

// makeConfig assembles the effective configuration: defaults, then the
// config file, then command line flags.
func makeConfig(ctx *cli.Context) (*rlpencConfig, error) {
	cfg := defaultConfig
	if file := ctx.String(configFileFlag.Name); file != "" {
		if err := loadConfig(file, &cfg); err != nil {
			return nil, err
		}
	}
	if ctx.IsSet(verbosityFlag.Name) {
		cfg.Log.Verbosity = ctx.Int(verbosityFlag.Name)
	}
	if ctx.IsSet(noColorFlag.Name) {
		cfg.Log.Color = !ctx.Bool(noColorFlag.Name)
	}
	if ctx.IsSet(uppercaseFlag.Name) {
		cfg.Output.Uppercase = ctx.Bool(uppercaseFlag.Name)
	}
	if ctx.IsSet(noPrefixFlag.Name) {
		cfg.Output.NoPrefix = ctx.Bool(noPrefixFlag.Name)
	}
	if ctx.IsSet(binaryFlag.Name) && ctx.Bool(binaryFlag.Name) {
		cfg.Output.Format = formatBinary
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (cfg *rlpencConfig) validate() error {
	switch cfg.Output.Format {
	case formatHex, formatBinary:
	default:
		return fmt.Errorf("invalid output format %q (want %q or %q)", cfg.Output.Format, formatHex, formatBinary)
	}
	if cfg.Log.Verbosity < int(log.LvlCrit) || cfg.Log.Verbosity > int(log.LvlTrace) {
		return fmt.Errorf("invalid log verbosity %d", cfg.Log.Verbosity)
	}
	return nil
}

// dumpConfig is the dumpconfig command.
func dumpConfig(ctx *cli.Context) error {
	cfg := configFrom(ctx)
	out, err := tomlSettings.Marshal(cfg)
	if err != nil {
		return err
	}
	dump := ctx.App.Writer
	if ctx.NArg() > 0 {
		f, err := os.OpenFile(ctx.Args().Get(0), os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
		if err != nil {
			return err
		}
		defer f.Close()
		dump = f
	}
	if _, err := dump.Write([]byte("# Note: this config doesn't contain comments for the fields.\n\n")); err != nil {
		return err
	}
	_, err = dump.Write(out)
	return err
}
