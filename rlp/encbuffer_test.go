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
	"errors"
	"math/big"
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"
)

func TestEncoderBuffer(t *testing.T) {
	buf := NewEncoderBuffer(nil)
	defer buf.Flush()

	// [4, [5, 6]]
	l1 := buf.List()
	buf.WriteUint64(4)
	l2 := buf.List()
	buf.WriteUint64(5)
	buf.WriteUint64(6)
	buf.ListEnd(l2)
	buf.ListEnd(l1)

	require.Equal(t, unhex("C404C20506"), buf.ToBytes())
	require.Equal(t, unhex("FFC404C20506"), buf.AppendToBytes([]byte{0xFF}))
}

func TestEncoderBufferMatchesNode(t *testing.T) {
	long := bytes.Repeat([]byte{0x11}, 60)
	node := NewList(
		text("zw"),
		NewList(NewUint(4), NewUint(1024), NewBytes(long)),
		NewUint(0),
		NewList(),
		NewBool(true),
		bigint("0x10000000000000000"),
	)

	buf := NewEncoderBuffer(nil)
	defer buf.Flush()
	outer := buf.List()
	buf.WriteString("zw")
	inner := buf.List()
	buf.WriteUint64(4)
	buf.WriteUint64(1024)
	buf.WriteBytes(long)
	buf.ListEnd(inner)
	buf.WriteUint64(0)
	buf.ListEnd(buf.List())
	buf.WriteBool(true)
	buf.WriteBigInt(new(big.Int).Lsh(big.NewInt(1), 64))
	buf.ListEnd(outer)

	require.Equal(t, EncodeToBytes(node), buf.ToBytes())
}

func TestEncoderBufferLongList(t *testing.T) {
	buf := NewEncoderBuffer(nil)
	defer buf.Flush()

	l := buf.List()
	elems := make([]Node, 0, 40)
	for i := 0; i < 40; i++ {
		buf.WriteUint64(uint64(i) << 20)
		elems = append(elems, NewUint(uint64(i)<<20))
	}
	buf.WriteNode(NewList(elems...))
	buf.ListEnd(l)

	want := EncodeToBytes(NewList(append(elems, NewList(elems...))...))
	require.Equal(t, want, buf.ToBytes())
	require.Equal(t, byte(0xF9), want[0])
}

func TestEncoderBufferUint256(t *testing.T) {
	buf := NewEncoderBuffer(nil)
	defer buf.Flush()
	buf.WriteUint256(nil)
	buf.WriteUint256(uint256.NewInt(0))
	buf.WriteUint256(uint256.NewInt(127))
	buf.WriteUint256(uint256.NewInt(1000))
	require.Equal(t, unhex("80807F8203E8"), buf.ToBytes())
}

func TestEncoderBufferFlush(t *testing.T) {
	var out bytes.Buffer
	buf := NewEncoderBuffer(&out)
	l := buf.List()
	buf.WriteString("dog")
	buf.WriteString("god")
	buf.WriteString("cat")
	buf.ListEnd(l)
	require.NoError(t, buf.Flush())
	require.Equal(t, unhex("CC83646F6783676F6483636174"), out.Bytes())

	// the buffer is usable again after Reset
	out.Reset()
	buf.Reset(&out)
	buf.WriteNode(NewList(NewList(NewList(), NewList()), NewList()))
	require.NoError(t, buf.Flush())
	require.Equal(t, unhex("C4C2C0C0C0"), out.Bytes())
}

type failWriter struct{}

var errWrite = errors.New("write failed")

func (failWriter) Write([]byte) (int, error) { return 0, errWrite }

func TestEncoderBufferFlushError(t *testing.T) {
	buf := NewEncoderBuffer(failWriter{})
	l := buf.List()
	buf.WriteUint64(1)
	buf.ListEnd(l)
	require.ErrorIs(t, buf.Flush(), errWrite)

	require.ErrorIs(t, Encode(failWriter{}, NewUint(1)), errWrite)
}
