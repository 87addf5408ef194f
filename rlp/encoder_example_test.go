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

package rlp_test

import (
	"bytes"
	"fmt"

	"github.com/PigCharid/go-rlp/rlp"
)

type MyCoolType struct {
	Name string
	a, b uint
}

// RLPNode represents x as the list [a, b], omitting the Name field.
// 实现Noder接口，省略Name字段
func (x *MyCoolType) RLPNode() (rlp.Node, error) {
	return rlp.NewList(rlp.NewUint(uint64(x.a)), rlp.NewUint(uint64(x.b))), nil
}

func ExampleNoder() {
	var t *MyCoolType // t is nil pointer to MyCoolType
	bytes, _ := rlp.EncodeValue(t)
	fmt.Printf("%v → %X\n", t, bytes)

	t = &MyCoolType{Name: "foobar", a: 5, b: 6}
	bytes, _ = rlp.EncodeValue(t)
	fmt.Printf("%v → %X\n", t, bytes)

	// Output:
	// <nil> → C0
	// &{foobar 5 6} → C20506
}

func ExampleEncodeToBytes() {
	zw, _ := rlp.NewText("zw")
	n := rlp.NewList(zw, rlp.NewList(rlp.NewUint(4)), rlp.NewUint(1))
	fmt.Printf("%v → %X\n", n, rlp.EncodeToBytes(n))
	// Output:
	// [7a77, [04], 01] → C6827A77C10401
}

func ExampleEncoderBuffer() {
	var w bytes.Buffer

	// Encode [4, [5, 6]] to w.
	buf := rlp.NewEncoderBuffer(&w)
	l1 := buf.List()
	buf.WriteUint64(4)
	l2 := buf.List()
	buf.WriteUint64(5)
	buf.WriteUint64(6)
	buf.ListEnd(l2)
	buf.ListEnd(l1)

	if err := buf.Flush(); err != nil {
		panic(err)
	}
	fmt.Printf("%X\n", w.Bytes())
	// Output:
	// C404C20506
}

func ExampleBandOf() {
	long := rlp.NewBytes(make([]byte, 1024))
	fmt.Println(rlp.BandOf(long), fmt.Sprintf("%x", rlp.HeaderOf(long)))
	fmt.Println(rlp.BandOf(rlp.NewUint(0x7f)), rlp.BandOf(rlp.NewList()))
	// Output:
	// LongValue b90400
	// SingleByte ShortList
}
