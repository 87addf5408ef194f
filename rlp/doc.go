/*
Package rlp implements the RLP serialization format.

	rlp包实现了RLP序列化格式

The purpose of RLP (Recursive Length Prefix) is to encode arbitrarily nested arrays of
binary data. The only purpose of RLP is to encode structure; encoding specific atomic data
types (eg. strings, ints) is left up to higher-order protocols. Integers are represented in
big endian binary form with no leading zeroes (thus making the integer value zero equivalent
to the empty string).

	递归长度前缀（RLP）的目的是对二进制数据的任意嵌套数组进行编码。
	整数以无前导零的大端二进制形式表示（从而使整数值零等效于空字符串）。

# Nodes

An RLP value is a Node. A Node is either a value (a byte string of any length) or a list
of nodes, nested to any depth. Nodes are immutable once constructed and safe for
concurrent use.

	NewBytes(b)      value holding a copy of b
	NewText(s)       value holding the UTF-8 bytes of s
	NewUint(i)       value holding the minimal big endian bytes of i
	NewBigInt(i)     same for *big.Int, negative values are rejected
	NewUint256(i)    same for *uint256.Int
	NewList(n...)    list holding the given nodes in order

The zero Node is the empty value.

# Encoding Rules

	编码规则

A single byte below 0x80 encodes as itself. Any other value of up to 55 bytes is prefixed by
one byte 0x80+len. Longer values are prefixed by 0xB7+len(L) followed by L, the minimal big
endian representation of the length.

A list is encoded by concatenating the encodings of its elements. The concatenation is
prefixed the same way as a value, using 0xC0 and 0xF7 in place of 0x80 and 0xB7. The list
header covers the byte size of the concatenation, not the number of elements.

	列表头部描述的是子节点编码拼接后的总字节数，而不是元素个数。

# Go Values

ToNode builds a node tree from a Go value using reflection.

If the type implements the Noder interface, ToNode calls RLPNode. It does not call RLPNode
on nil pointer values. When only the pointer type implements Noder, RLPNode is called on the
address of the value, which must be addressable: slice elements and fields of structs reached
through a pointer are, while a struct passed by value is not.

To convert a pointer, the value being pointed to is converted. A nil pointer to a struct
type, slice or array always becomes an empty list unless the slice or array has element
type byte. A nil pointer to any other value becomes the empty value.

Struct values become a list of all their public fields. Recursive struct types are
supported. Slices and arrays become lists of their elements, except that slices and arrays
with element type byte become values.

A Go string becomes a value holding its bytes, which must be valid UTF-8. Unsigned
integers, big.Int and uint256.Int become integer values. Booleans become the integers zero
(false) and one (true). An interface value becomes the value contained in the interface.

Signed integers, floating point numbers, maps, channels and functions are not supported.

# Struct Tags

As with other encoding packages, the "-" tag ignores fields.

	type StructWithIgnoredField struct{
	    Ignored uint `rlp:"-"`
	    Field   uint
	}

The "tail" tag, which may only be used on the last exported struct field, splices the
elements of a slice into the enclosing list instead of nesting them.

	type StructWithTail struct{
	    Field   uint
	    Tail    []string `rlp:"tail"`
	}
*/
package rlp
