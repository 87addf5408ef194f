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

/*
Package hexutil implements hex encoding with 0x prefix.

Byte slices are converted to and from hex strings one nibble at a time:
every input byte becomes two nibbles, every pair of nibbles becomes one byte.
Encoding output is lowercase; decoding accepts both cases.
*/
package hexutil

import "errors"

// Errors
var (
	ErrEmptyString   = errors.New("empty hex string")
	ErrMissingPrefix = errors.New("hex string without 0x prefix")
	ErrOddLength     = errors.New("hex string of odd length")
	ErrSyntax        = errors.New("invalid hex string")
)

const hextable = "0123456789abcdef"

// Encode encodes b as a hex string with 0x prefix.
func Encode(b []byte) string {
	return "0x" + EncodeRaw(b)
}

// EncodeRaw encodes b as a hex string without prefix.
func EncodeRaw(b []byte) string {
	nibbles := bytesToNibbles(b)
	out := make([]byte, len(nibbles))
	for i, n := range nibbles {
		out[i] = hextable[n]
	}
	return string(out)
}

// Decode decodes a hex string with 0x prefix.
func Decode(input string) ([]byte, error) {
	if len(input) == 0 {
		return nil, ErrEmptyString
	}
	if !has0xPrefix(input) {
		return nil, ErrMissingPrefix
	}
	return DecodeRaw(input[2:])
}

// DecodeRaw decodes a hex string without prefix. The empty string decodes
// to an empty slice.
func DecodeRaw(input string) ([]byte, error) {
	if len(input)&1 != 0 {
		return nil, ErrOddLength
	}
	nibbles := make([]byte, len(input))
	for i := 0; i < len(input); i++ {
		n := decodeNibble(input[i])
		if n == badNibble {
			return nil, ErrSyntax
		}
		nibbles[i] = n
	}
	b := make([]byte, len(nibbles)/2)
	decodeNibbles(nibbles, b)
	return b, nil
}

// MustDecode decodes a hex string with 0x prefix. It panics for invalid input.
func MustDecode(input string) []byte {
	dec, err := Decode(input)
	if err != nil {
		panic(err)
	}
	return dec
}

// Has0xPrefix reports whether input starts with 0x or 0X.
func Has0xPrefix(input string) bool {
	return has0xPrefix(input)
}

func has0xPrefix(input string) bool {
	return len(input) >= 2 && input[0] == '0' && (input[1] == 'x' || input[1] == 'X')
}

// bytesToNibbles splits every byte of str into its high and low nibble.
func bytesToNibbles(str []byte) []byte {
	nibbles := make([]byte, len(str)*2)
	for i, b := range str {
		nibbles[i*2] = b / 16
		nibbles[i*2+1] = b % 16
	}
	return nibbles
}

// decodeNibbles joins pairs of nibbles into bytes. len(nibbles) must be even.
func decodeNibbles(nibbles []byte, bytes []byte) {
	for bi, ni := 0, 0; ni < len(nibbles); bi, ni = bi+1, ni+2 {
		bytes[bi] = nibbles[ni]<<4 | nibbles[ni+1]
	}
}

const badNibble = ^byte(0)

func decodeNibble(in byte) byte {
	switch {
	case in >= '0' && in <= '9':
		return in - '0'
	case in >= 'A' && in <= 'F':
		return in - 'A' + 10
	case in >= 'a' && in <= 'f':
		return in - 'a' + 10
	default:
		return badNibble
	}
}
