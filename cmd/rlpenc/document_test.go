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
	"strings"
	"testing"

	"github.com/PigCharid/go-rlp/common/hexutil"
	"github.com/PigCharid/go-rlp/rlp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadDocument(t *testing.T) {
	tests := []struct {
		doc, want string
	}{
		{`"dog"`, "0x83646f67"},
		{`""`, "0x80"},
		{`"0x"`, "0x80"},
		{`"0x0400"`, "0x820400"},
		{`"0X0F"`, "0x0f"},
		{`0`, "0x80"},
		{`15`, "0x0f"},
		{`1024`, "0x820400"},
		{`18446744073709551616`, "0x89010000000000000000"},
		{`true`, "0x01"},
		{`false`, "0x80"},
		{`[]`, "0xc0"},
		{`["dog", "god", "cat"]`, "0xcc83646f6783676f6483636174"},
		{`["zw", [4], 1]`, "0xc6827a77c10401"},
		{`[[[], []], []]`, "0xc4c2c0c0c0"},
		{"  [1, 2]\n", "0xc20102"},
	}
	for _, test := range tests {
		n, err := readDocument(strings.NewReader(test.doc))
		require.NoError(t, err, "document %s", test.doc)
		assert.Equal(t, test.want, hexutil.Encode(rlp.EncodeToBytes(n)), "document %s", test.doc)
	}
}

func TestReadDocumentErrors(t *testing.T) {
	tests := []struct {
		doc, err string
	}{
		{`null`, "$: null is not supported"},
		{`[1, null]`, "$[1]: null is not supported"},
		{`{"a": 1}`, "$: unsupported JSON value of type map[string]interface {}"},
		{`[[1.5]]`, "$[0][0]: number 1.5 is not an integer"},
		{`-1`, "$: rlp: cannot encode negative big.Int"},
		{`"0xabc"`, "$: hex string of odd length"},
		{`"0xzz"`, "$: invalid hex string"},
		{`[1] 2`, "trailing data after document"},
	}
	for _, test := range tests {
		_, err := readDocument(strings.NewReader(test.doc))
		assert.EqualError(t, err, test.err, "document %s", test.doc)
	}
}

func TestReadDocumentInvalid(t *testing.T) {
	_, err := readDocument(strings.NewReader(`[1, 2`))
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "invalid document: "), err.Error())
}

func TestReadDocumentWrapsErrors(t *testing.T) {
	_, err := readDocument(strings.NewReader(`[1, -7]`))
	assert.True(t, errors.Is(err, rlp.ErrNegativeBigInt))

	_, err = readDocument(strings.NewReader(`"\ud800"`))
	// encoding/json replaces lone surrogates, so the text is valid UTF-8.
	assert.NoError(t, err)
}
