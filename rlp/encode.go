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
	"encoding/binary"
	"io"
)

// Header offsets. A header byte below valueOffset is a literal single byte,
// [valueOffset, listOffset) starts a value and [listOffset, 0xFF] starts a list.
const (
	valueOffset = 0x80
	listOffset  = 0xC0

	// maxShortSize is the largest payload size that fits in a one byte header.
	maxShortSize = 55
)

var (
	// Common encoded values.
	EmptyString = []byte{0x80}
	EmptyList   = []byte{0xC0}
)

// EncodeToBytes returns the RLP encoding of n.
func EncodeToBytes(n Node) []byte {
	return AppendEncoded(make([]byte, 0, n.EncodedSize()), n)
}

// AppendEncoded appends the RLP encoding of n to dst.
func AppendEncoded(dst []byte, n Node) []byte {
	switch n.kind {
	case List:
		// 子节点编码的拼接总长度在构造时已知，先写列表头再递归写子节点
		dst = appendHeader(dst, listOffset, uint64(n.size))
		for _, e := range n.elems {
			dst = AppendEncoded(dst, e)
		}
		return dst
	default:
		return appendString(dst, n.str)
	}
}

// Encode writes the RLP encoding of n to w. The whole encoding is produced
// before anything is written, so w sees either one complete write or none.
func Encode(w io.Writer, n Node) error {
	_, err := w.Write(EncodeToBytes(n))
	return err
}

// WrapList returns the encoding of a list whose elements are already encoded
// and concatenated in payload.
func WrapList(payload []byte) []byte {
	return prefix(payload, listOffset)
}

// WrapString returns the encoding of a value with the given payload.
func WrapString(payload []byte) []byte {
	return prefix(payload, valueOffset)
}

// prefix returns payload preceded by its header. base selects between values
// (valueOffset) and lists (listOffset).
// 长度前缀编码的核心:
//  1. 单个小于0x80的字节，作为值时就是它自己
//  2. 长度不超过55，前缀为 base+len
//  3. 否则前缀为 base+0x37+len(L)，后接长度的最小大端表示L
func prefix(payload []byte, base byte) []byte {
	if base == valueOffset && len(payload) == 1 && payload[0] < valueOffset {
		return []byte{payload[0]}
	}
	out := make([]byte, 0, headsize(uint64(len(payload)))+len(payload))
	out = appendHeader(out, base, uint64(len(payload)))
	return append(out, payload...)
}

// appendString appends the encoding of a value node payload.
func appendString(dst, b []byte) []byte {
	if len(b) == 1 && b[0] < valueOffset {
		return append(dst, b[0])
	}
	dst = appendHeader(dst, valueOffset, uint64(len(b)))
	return append(dst, b...)
}

// appendHeader appends the header for a payload of the given size.
func appendHeader(dst []byte, base byte, size uint64) []byte {
	if size <= maxShortSize {
		return append(dst, base+byte(size))
	}
	var sizebuf [9]byte
	n := puthead(sizebuf[:], base, base+maxShortSize, size)
	return append(dst, sizebuf[:n]...)
}

// headsize returns the size of a header for a payload of the given size.
func headsize(size uint64) int {
	if size <= maxShortSize {
		return 1
	}
	return 1 + intsize(size)
}

// puthead writes a header to buf. smalltag is used for sizes up to 55,
// largetag+len(size) precedes the size bytes otherwise. It returns the
// number of bytes written.
func puthead(buf []byte, smalltag, largetag byte, size uint64) int {
	if size <= maxShortSize {
		buf[0] = smalltag + byte(size)
		return 1
	}
	sizesize := putint(buf[1:], size)
	buf[0] = largetag + byte(sizesize)
	return sizesize + 1
}

// putint writes i to the beginning of b in big endian byte
// order, using the least number of bytes needed to represent i.
func putint(b []byte, i uint64) (size int) {
	return copy(b, minimalUint(i))
}

// intsize computes the minimum number of bytes required to store i.
func intsize(i uint64) (size int) {
	for size = 1; ; size++ {
		if i >>= 8; i == 0 {
			return size
		}
	}
}

// minimalUint returns the big endian representation of i with leading zero
// bytes removed. Zero yields an empty slice.
// 先写成定长8字节大端，再跳过前导零字节
func minimalUint(i uint64) []byte {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], i)
	for k, b := range buf {
		if b != 0 {
			return buf[k:]
		}
	}
	return buf[8:]
}

// Band identifies the header band an encoding falls in.
type Band int8

const (
	SingleByte Band = iota // [0x00, 0x7F]
	ShortValue             // [0x80, 0xB7]
	LongValue              // [0xB8, 0xBF]
	ShortList              // [0xC0, 0xF7]
	LongList               // [0xF8, 0xFF]
)

var bandNames = [...]string{"SingleByte", "ShortValue", "LongValue", "ShortList", "LongList"}

func (b Band) String() string {
	if b >= 0 && int(b) < len(bandNames) {
		return bandNames[b]
	}
	return "Band(?)"
}

// BandOf returns the header band of n's encoding.
func BandOf(n Node) Band {
	switch {
	case n.kind == List && n.size <= maxShortSize:
		return ShortList
	case n.kind == List:
		return LongList
	case n.size == 1 && n.str[0] < valueOffset:
		return SingleByte
	case n.size <= maxShortSize:
		return ShortValue
	default:
		return LongValue
	}
}

// HeaderOf returns the header bytes of n's encoding. It is empty for a
// single byte below 0x80.
func HeaderOf(n Node) []byte {
	switch BandOf(n) {
	case SingleByte:
		return []byte{}
	case ShortList, LongList:
		return appendHeader(nil, listOffset, uint64(n.size))
	default:
		return appendHeader(nil, valueOffset, uint64(n.size))
	}
}
