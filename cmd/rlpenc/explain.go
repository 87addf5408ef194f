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
	"io"
	"strconv"

	"github.com/PigCharid/go-rlp/rlp"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v2"
)

var errExplainArgs = errors.New("explain takes at most one document")

func explainCommand(ctx *cli.Context) error {
	if ctx.NArg() > 1 {
		return errExplainArgs
	}
	cfg := configFrom(ctx)
	nodes, _, err := inputNodes(ctx)
	if err != nil {
		return err
	}
	var headerColor *color.Color
	if cfg.Log.Color && cfg.Output.Format == formatHex {
		headerColor = color.New(color.FgCyan)
	}
	writeExplanation(ctx.App.Writer, cfg.Output, nodes[0], headerColor)
	return nil
}

// explainRow describes one node of a tree.
type explainRow struct {
	path   string
	node   rlp.Node
	header []byte
	offset int // position of the header in the full encoding
}

// explainTree lists the nodes of n in encoding order.
func explainTree(n rlp.Node) []explainRow {
	var rows []explainRow
	var walk func(n rlp.Node, path string, offset int)
	walk = func(n rlp.Node, path string, offset int) {
		header := rlp.HeaderOf(n)
		rows = append(rows, explainRow{path: path, node: n, header: header, offset: offset})
		if !n.IsList() {
			return
		}
		offset += len(header)
		for i, e := range n.Elems() {
			walk(e, path+"."+strconv.Itoa(i), offset)
			offset += e.EncodedSize()
		}
	}
	walk(n, "$", 0)
	return rows
}

func writeExplanation(w io.Writer, cfg OutputConfig, n rlp.Node, headerColor *color.Color) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Path", "Offset", "Kind", "Band", "Header", "Payload", "Encoded"})
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	for _, row := range explainTree(n) {
		header := "-"
		if len(row.header) > 0 {
			header = hexString(cfg, row.header)
		}
		if headerColor != nil {
			header = headerColor.Sprint(header)
		}
		table.Append([]string{
			row.path,
			strconv.Itoa(row.offset),
			row.node.Kind().String(),
			rlp.BandOf(row.node).String(),
			header,
			strconv.Itoa(row.node.PayloadSize()),
			strconv.Itoa(row.node.EncodedSize()),
		})
	}
	table.Render()
}
