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
	"io"
	"math/big"
	"sync"

	"github.com/holiman/uint256"
)

// encBuffer accumulates an encoding whose list headers are not known up front.
// Value data goes to str; list headers are recorded in lheads and spliced in
// when the output is assembled.
type encBuffer struct {
	str    []byte     // string data, contains everything except list headers
	lheads []listhead // all list headers
	lhsize int        // sum of sizes of all encoded list headers
}

// The global encBuffer pool.
// 与trie哈希器的池一样，复用临时缓冲区
var encBufferPool = sync.Pool{
	New: func() interface{} { return new(encBuffer) },
}

func getEncBuffer() *encBuffer {
	buf := encBufferPool.Get().(*encBuffer)
	buf.reset()
	return buf
}

func (w *encBuffer) reset() {
	w.lhsize = 0
	w.str = w.str[:0]
	w.lheads = w.lheads[:0]
}

type listhead struct {
	offset int // index of this header in string data
	size   int // total size of encoded data (including list headers)
}

// encode writes head to the given buffer, which must be at least
// 9 bytes long. It returns the encoded bytes.
func (head *listhead) encode(buf []byte) []byte {
	return buf[:puthead(buf, listOffset, listOffset+maxShortSize, uint64(head.size))]
}

// size returns the length of the encoded data.
func (w *encBuffer) size() int {
	return len(w.str) + w.lhsize
}

// makeBytes creates the encoder output.
func (w *encBuffer) makeBytes() []byte {
	out := make([]byte, w.size())
	w.copyTo(out)
	return out
}

func (w *encBuffer) copyTo(dst []byte) {
	strpos := 0
	pos := 0
	for _, head := range w.lheads {
		// write string data before header
		n := copy(dst[pos:], w.str[strpos:head.offset])
		pos += n
		strpos += n
		// write the header
		enc := head.encode(dst[pos:])
		pos += len(enc)
	}
	// copy string data after the last list header
	copy(dst[pos:], w.str[strpos:])
}

// writeTo writes the encoder output to w.
func (w *encBuffer) writeTo(out io.Writer) (err error) {
	strpos := 0
	var headbuf [9]byte
	for _, head := range w.lheads {
		// write string data before header
		if head.offset-strpos > 0 {
			n, err := out.Write(w.str[strpos:head.offset])
			strpos += n
			if err != nil {
				return err
			}
		}
		// write the header
		enc := head.encode(headbuf[:])
		if _, err = out.Write(enc); err != nil {
			return err
		}
	}
	if strpos < len(w.str) {
		// write string data after the last list header
		_, err = out.Write(w.str[strpos:])
	}
	return err
}

func (w *encBuffer) writeBytes(b []byte) {
	w.str = appendString(w.str, b)
}

func (w *encBuffer) writeUint64(i uint64) {
	if i == 0 {
		w.str = append(w.str, valueOffset)
	} else if i < valueOffset {
		// fits single byte
		w.str = append(w.str, byte(i))
	} else {
		b := minimalUint(i)
		w.str = append(w.str, valueOffset+byte(len(b)))
		w.str = append(w.str, b...)
	}
}

func (w *encBuffer) writeNode(n Node) {
	w.str = AppendEncoded(w.str, n)
}

// list adds a new list header to the header stack. It returns the index of the header.
// Call listEnd with this index after encoding the content of the list.
func (w *encBuffer) list() int {
	w.lheads = append(w.lheads, listhead{offset: len(w.str), size: w.lhsize})
	return len(w.lheads) - 1
}

func (w *encBuffer) listEnd(index int) {
	lh := &w.lheads[index]
	// 列表头的大小在内容写完后才确定
	lh.size = w.size() - lh.offset - lh.size
	w.lhsize += headsize(uint64(lh.size))
}

// EncoderBuffer is a buffer for incremental encoding.
//
// The zero value is NOT ready for use. To get a usable buffer,
// create it using NewEncoderBuffer.
type EncoderBuffer struct {
	buf *encBuffer
	dst io.Writer
}

// NewEncoderBuffer creates an encoder buffer. Output is written to dst by
// Flush. dst may be nil when the buffer is only used with ToBytes or
// AppendToBytes.
func NewEncoderBuffer(dst io.Writer) EncoderBuffer {
	var w EncoderBuffer
	w.buf = getEncBuffer()
	w.dst = dst
	return w
}

// Reset truncates the buffer and sets the output destination.
func (w *EncoderBuffer) Reset(dst io.Writer) {
	if w.buf == nil {
		w.buf = getEncBuffer()
	}
	w.buf.reset()
	w.dst = dst
}

// Flush writes encoded RLP data to the output writer. This can only be called once.
// If you want to re-use the buffer after Flush, you must call Reset.
func (w *EncoderBuffer) Flush() error {
	var err error
	if w.dst != nil {
		err = w.buf.writeTo(w.dst)
	}
	// Release the internal buffer.
	encBufferPool.Put(w.buf)
	*w = EncoderBuffer{}
	return err
}

// ToBytes returns the encoded bytes.
func (w *EncoderBuffer) ToBytes() []byte {
	return w.buf.makeBytes()
}

// AppendToBytes appends the encoded bytes to dst.
func (w *EncoderBuffer) AppendToBytes(dst []byte) []byte {
	size := w.buf.size()
	out := append(dst, make([]byte, size)...)
	w.buf.copyTo(out[len(dst):])
	return out
}

// Write appends b directly to the encoder output.
// b must itself be one or more complete encodings.
func (w EncoderBuffer) Write(b []byte) (int, error) {
	w.buf.str = append(w.buf.str, b...)
	return len(b), nil
}

// WriteBool writes b as the integer 0 (false) or 1 (true).
func (w EncoderBuffer) WriteBool(b bool) {
	if b {
		w.buf.str = append(w.buf.str, 0x01)
	} else {
		w.buf.str = append(w.buf.str, valueOffset)
	}
}

// WriteUint64 encodes an unsigned integer.
func (w EncoderBuffer) WriteUint64(i uint64) {
	w.buf.writeUint64(i)
}

// WriteBigInt encodes a big.Int as an RLP string.
// Note: Unlike with Encode, the sign of i is ignored.
func (w EncoderBuffer) WriteBigInt(i *big.Int) {
	if i == nil {
		w.buf.str = append(w.buf.str, valueOffset)
		return
	}
	w.buf.writeBytes(new(big.Int).Abs(i).Bytes())
}

// WriteUint256 encodes uint256.Int as an RLP string.
func (w EncoderBuffer) WriteUint256(i *uint256.Int) {
	if i == nil || i.IsZero() {
		w.buf.str = append(w.buf.str, valueOffset)
		return
	}
	w.buf.writeBytes(i.Bytes())
}

// WriteBytes encodes b as an RLP string.
func (w EncoderBuffer) WriteBytes(b []byte) {
	w.buf.writeBytes(b)
}

// WriteString encodes s as an RLP string. s is not checked for valid UTF-8.
func (w EncoderBuffer) WriteString(s string) {
	w.buf.writeBytes([]byte(s))
}

// WriteNode encodes n.
func (w EncoderBuffer) WriteNode(n Node) {
	w.buf.writeNode(n)
}

// List starts a list. It returns an internal index. Call ListEnd with
// this index after encoding the content to finish the list.
func (w EncoderBuffer) List() int {
	return w.buf.list()
}

// ListEnd finishes the given list.
func (w EncoderBuffer) ListEnd(index int) {
	w.buf.listEnd(index)
}
