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
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/PigCharid/go-rlp/common/hexutil"
	"github.com/PigCharid/go-rlp/log"
	"github.com/PigCharid/go-rlp/rlp"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"
)

var errStdinTwice = errors.New("stdin (-) can only be named once")

// inputNodes returns the node trees named by the command line: the --text
// literal, the given files, or stdin.
func inputNodes(ctx *cli.Context) ([]rlp.Node, []string, error) {
	if ctx.IsSet(textFlag.Name) {
		n, err := rlp.NewText(ctx.String(textFlag.Name))
		if err != nil {
			return nil, nil, err
		}
		return []rlp.Node{n}, []string{"--text"}, nil
	}

	names := ctx.Args().Slice()
	if len(names) == 0 {
		names = []string{"-"}
	}
	// stdin holds a single document and is read by one goroutine only.
	stdin := 0
	for _, name := range names {
		if name == "-" {
			stdin++
		}
	}
	if stdin > 1 {
		return nil, nil, errStdinTwice
	}
	nodes := make([]rlp.Node, len(names))

	// Documents are independent, so they are parsed concurrently.
	// 结果按参数顺序保存
	g, gctx := errgroup.WithContext(ctx.Context)
	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			n, err := readNamed(ctx, name)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			nodes[i] = n
			log.Debug("Parsed document", "file", name, "size", n.EncodedSize())
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return nodes, names, nil
}

func readNamed(ctx *cli.Context, name string) (rlp.Node, error) {
	if name == "-" {
		return readDocument(ctx.App.Reader)
	}
	f, err := os.Open(name)
	if err != nil {
		return rlp.Node{}, err
	}
	defer f.Close()
	return readDocument(f)
}

func encodeCommand(ctx *cli.Context) error {
	cfg := configFrom(ctx)
	nodes, names, err := inputNodes(ctx)
	if err != nil {
		return err
	}
	for i, n := range nodes {
		enc := rlp.EncodeToBytes(n)
		log.Info("Encoded document", "file", names[i], "band", rlp.BandOf(n), "size", len(enc))
		if err := writeEncoding(ctx.App.Writer, cfg.Output, enc); err != nil {
			return err
		}
	}
	return nil
}

// writeEncoding prints enc according to the output configuration.
func writeEncoding(w io.Writer, cfg OutputConfig, enc []byte) error {
	if cfg.Format == formatBinary {
		_, err := w.Write(enc)
		return err
	}
	_, err := fmt.Fprintln(w, hexString(cfg, enc))
	return err
}

func hexString(cfg OutputConfig, b []byte) string {
	s := hexutil.EncodeRaw(b)
	if cfg.Uppercase {
		s = strings.ToUpper(s)
	}
	if !cfg.NoPrefix {
		s = "0x" + s
	}
	return s
}
