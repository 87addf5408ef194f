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

package rlp

import (
	"bytes"
	"context"
	"testing"

	"github.com/davecgh/go-spew/spew"
	fuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

// randomNode builds a random tree. Value sizes are drawn around the
// short/long form boundary.
func randomNode(c fuzz.Continue, depth int) Node {
	if depth >= 4 || c.Intn(3) == 0 {
		var size int
		switch c.Intn(4) {
		case 0:
			size = c.Intn(2)
		case 1:
			size = 50 + c.Intn(10)
		case 2:
			size = 250 + c.Intn(10)
		default:
			size = c.Intn(100)
		}
		b := make([]byte, size)
		c.Read(b)
		return NewBytes(b)
	}
	elems := make([]Node, c.Intn(6))
	for i := range elems {
		elems[i] = randomNode(c, depth+1)
	}
	return NewList(elems...)
}

func newTreeFuzzer(seed int64) *fuzz.Fuzzer {
	return fuzz.NewWithSeed(seed).Funcs(func(n *Node, c fuzz.Continue) {
		*n = randomNode(c, 0)
	})
}

// referenceEncode follows the textbook definition: encode every child,
// concatenate, then prefix the concatenation.
func referenceEncode(n Node) []byte {
	if n.Kind() == Value {
		return prefix(n.Bytes(), valueOffset)
	}
	var payload []byte
	for _, e := range n.Elems() {
		payload = append(payload, referenceEncode(e)...)
	}
	return prefix(payload, listOffset)
}

func TestRandomTrees(t *testing.T) {
	f := newTreeFuzzer(1)
	for i := 0; i < 500; i++ {
		var n Node
		f.Fuzz(&n)

		enc := EncodeToBytes(n)
		if !bytes.Equal(enc, referenceEncode(n)) {
			t.Fatalf("encoding differs from reference for\n%s", spew.Sdump(n))
		}
		require.Equal(t, len(enc), n.EncodedSize())
		require.Equal(t, enc, EncodeToBytes(n), "encoding is not deterministic")
		require.Equal(t, HeaderOf(n), enc[:len(HeaderOf(n))])

		buf := NewEncoderBuffer(nil)
		buf.WriteNode(n)
		require.Equal(t, enc, buf.ToBytes())
		buf.Flush()
	}
}

func TestConcurrentEncode(t *testing.T) {
	f := newTreeFuzzer(2)
	trees := make([]Node, 64)
	want := make([][]byte, len(trees))
	for i := range trees {
		f.Fuzz(&trees[i])
		want[i] = EncodeToBytes(trees[i])
	}

	got := make([][]byte, len(trees))
	g, _ := errgroup.WithContext(context.Background())
	for i := range trees {
		i := i
		g.Go(func() error {
			// every tree is encoded several times from different goroutines
			for k := 0; k < 4; k++ {
				var buf bytes.Buffer
				if err := Encode(&buf, trees[i]); err != nil {
					return err
				}
				got[i] = buf.Bytes()
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
	for i := range trees {
		require.Equal(t, want[i], got[i], "tree %d", i)
	}
}
