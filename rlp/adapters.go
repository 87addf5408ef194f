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
	"math/big"

	"github.com/holiman/uint256"
	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// NewText creates a value node holding the UTF-8 encoding of s. It fails with
// a *ConversionError if s is not valid UTF-8.
func NewText(s string) (Node, error) {
	if _, n, err := transform.String(encoding.UTF8Validator, s); err != nil {
		return Node{}, &ConversionError{Offset: n, Err: err}
	}
	return newBytesNoCopy([]byte(s)), nil
}

// NewUint creates a value node holding the minimal big endian representation
// of i. Zero becomes the empty value.
func NewUint(i uint64) Node {
	if i == 0 {
		return Node{}
	}
	b := minimalUint(i)
	return newBytesNoCopy(b)
}

// NewBool creates the integer value 1 for true and 0 for false.
func NewBool(b bool) Node {
	if b {
		return NewUint(1)
	}
	return Node{}
}

// NewBigInt creates a value node holding the minimal big endian representation
// of i. A nil i is treated as zero; negative values are rejected.
func NewBigInt(i *big.Int) (Node, error) {
	if i == nil {
		return Node{}, nil
	}
	if i.Sign() < 0 {
		return Node{}, ErrNegativeBigInt
	}
	// big.Int.Bytes已经是去掉前导零的大端表示，零返回空切片
	return newBytesNoCopy(i.Bytes()), nil
}

// NewUint256 creates a value node holding the minimal big endian
// representation of i. A nil i is treated as zero.
func NewUint256(i *uint256.Int) Node {
	if i == nil || i.IsZero() {
		return Node{}
	}
	return newBytesNoCopy(i.Bytes())
}
