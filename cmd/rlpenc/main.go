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

// rlpenc encodes JSON documents as RLP.
package main

import (
	"fmt"
	"os"

	"github.com/PigCharid/go-rlp/log"
	"github.com/urfave/cli/v2"
)

var (
	configFileFlag = &cli.StringFlag{
		Name:  "config",
		Usage: "TOML configuration file",
	}
	verbosityFlag = &cli.IntFlag{
		Name:  "verbosity",
		Usage: "Logging verbosity: 0=silent, 1=error, 2=warn, 3=info, 4=debug, 5=detail",
		Value: int(log.LvlWarn),
	}
	noColorFlag = &cli.BoolFlag{
		Name:  "nocolor",
		Usage: "Disable coloured output",
	}
	uppercaseFlag = &cli.BoolFlag{
		Name:  "uppercase",
		Usage: "Print hex digits in upper case",
	}
	noPrefixFlag = &cli.BoolFlag{
		Name:  "noprefix",
		Usage: "Omit the 0x prefix of hex output",
	}
	binaryFlag = &cli.BoolFlag{
		Name:  "binary",
		Usage: "Write raw bytes instead of hex",
	}
	textFlag = &cli.StringFlag{
		Name:  "text",
		Usage: "Encode the given text instead of reading documents",
	}
)

const configMetadataKey = "config"

func newApp() *cli.App {
	app := &cli.App{
		Name:  "rlpenc",
		Usage: "Recursive Length Prefix encoder",
		Flags: []cli.Flag{
			configFileFlag,
			verbosityFlag,
			noColorFlag,
			uppercaseFlag,
			noPrefixFlag,
			binaryFlag,
		},
		Before: setup,
		Commands: []*cli.Command{
			{
				Name:      "encode",
				Usage:     "Encode JSON documents",
				ArgsUsage: "[<file> ...]",
				Flags:     []cli.Flag{textFlag},
				Description: `
Each argument names a JSON document to encode; "-" or no argument reads stdin.
Arrays become lists, strings starting with 0x become raw bytes, other strings
become UTF-8 text and non-negative integers become minimal big endian values.
One encoding is printed per document, in argument order.`,
				Action: encodeCommand,
			},
			{
				Name:      "explain",
				Usage:     "Print the header of every node of a document",
				ArgsUsage: "[<file>]",
				Flags:     []cli.Flag{textFlag},
				Action:    explainCommand,
			},
			{
				Name:      "dumpconfig",
				Usage:     "Show configuration values",
				ArgsUsage: "[<file>]",
				Action:    dumpConfig,
			},
		},
	}
	return app
}

// setup loads the configuration and installs the root log handler.
func setup(ctx *cli.Context) error {
	cfg, err := makeConfig(ctx)
	if err != nil {
		return err
	}
	if ctx.App.Metadata == nil {
		ctx.App.Metadata = make(map[string]interface{})
	}
	ctx.App.Metadata[configMetadataKey] = cfg
	log.Root().SetHandler(log.TerminalHandler(log.Lvl(cfg.Log.Verbosity), cfg.Log.Color))
	log.Trace("Loaded configuration", "format", cfg.Output.Format, "uppercase", cfg.Output.Uppercase)
	return nil
}

func configFrom(ctx *cli.Context) *rlpencConfig {
	if cfg, ok := ctx.App.Metadata[configMetadataKey].(*rlpencConfig); ok {
		return cfg
	}
	cfg := defaultConfig
	return &cfg
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
