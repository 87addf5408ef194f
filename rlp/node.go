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
	"fmt"
	"strings"
)

// Kind represents the kind of a node.
type Kind int8

const (
	Value Kind = iota // 值节点，负载为任意字节串
	List              // 列表节点，负载为子节点编码的拼接
)

func (k Kind) String() string {
	switch k {
	case Value:
		return "Value"
	case List:
		return "List"
	default:
		return fmt.Sprintf("Unknown(%d)", k)
	}
}

// Node is an RLP value: either a byte string or an ordered list of nodes.
// Nodes cannot be modified after construction. The zero Node is the empty value.
type Node struct {
	kind  Kind
	str   []byte // payload of a value node
	elems []Node // children of a list node
	size  int    // payload size: len(str), or the encoded size of all elems
}

// NewBytes creates a value node holding a copy of b.
func NewBytes(b []byte) Node {
	if len(b) == 0 {
		return Node{}
	}
	str := make([]byte, len(b))
	copy(str, b)
	return Node{kind: Value, str: str, size: len(str)}
}

// newBytesNoCopy wraps b without copying. b must not be modified afterwards.
func newBytesNoCopy(b []byte) Node {
	if len(b) == 0 {
		return Node{}
	}
	return Node{kind: Value, str: b, size: len(b)}
}

// NewList creates a list node holding the given nodes in order.
// 列表的负载大小在构造时计算一次，编码时直接写出头部。
func NewList(elems ...Node) Node {
	n := Node{kind: List}
	if len(elems) > 0 {
		n.elems = make([]Node, len(elems))
		copy(n.elems, elems)
	}
	for _, e := range n.elems {
		n.size += e.EncodedSize()
	}
	return n
}

// Kind returns the kind of n.
func (n Node) Kind() Kind { return n.kind }

// IsList reports whether n is a list node.
func (n Node) IsList() bool { return n.kind == List }

// Bytes returns a copy of the payload of a value node. It returns nil for lists.
func (n Node) Bytes() []byte {
	if n.kind != Value || len(n.str) == 0 {
		return nil
	}
	b := make([]byte, len(n.str))
	copy(b, n.str)
	return b
}

// Len returns the number of payload bytes of a value node, or the number of
// elements of a list node.
func (n Node) Len() int {
	if n.kind == List {
		return len(n.elems)
	}
	return len(n.str)
}

// Elem returns the i'th element of a list node. It panics if n is not a list
// or i is out of range.
func (n Node) Elem(i int) Node {
	if n.kind != List {
		panic("rlp: Elem called on value node")
	}
	return n.elems[i]
}

// Elems returns the elements of a list node. The returned slice is a copy.
func (n Node) Elems() []Node {
	if n.kind != List || len(n.elems) == 0 {
		return nil
	}
	elems := make([]Node, len(n.elems))
	copy(elems, n.elems)
	return elems
}

// PayloadSize returns the size of the content covered by the node's header:
// the byte count of a value, or the total encoded size of a list's elements.
func (n Node) PayloadSize() int { return n.size }

// EncodedSize returns the length of EncodeToBytes(n).
func (n Node) EncodedSize() int {
	if n.kind == Value && n.size == 1 && n.str[0] < valueOffset {
		return 1
	}
	return headsize(uint64(n.size)) + n.size
}

// Equal reports whether n and o have the same structure and payloads.
func (n Node) Equal(o Node) bool {
	if n.kind != o.kind || n.size != o.size {
		return false
	}
	if n.kind == Value {
		return string(n.str) == string(o.str)
	}
	if len(n.elems) != len(o.elems) {
		return false
	}
	for i := range n.elems {
		if !n.elems[i].Equal(o.elems[i]) {
			return false
		}
	}
	return true
}

// String renders n in a compact debugging notation: values as hex, lists in brackets.
func (n Node) String() string {
	var b strings.Builder
	n.fstring(&b)
	return b.String()
}

func (n Node) fstring(b *strings.Builder) {
	if n.kind == Value {
		fmt.Fprintf(b, "%x", n.str)
		if len(n.str) == 0 {
			b.WriteString(`""`)
		}
		return
	}
	b.WriteByte('[')
	for i, e := range n.elems {
		if i > 0 {
			b.WriteString(", ")
		}
		e.fstring(b)
	}
	b.WriteByte(']')
}
