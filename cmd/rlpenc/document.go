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
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/big"
	"strconv"

	"github.com/PigCharid/go-rlp/common/hexutil"
	"github.com/PigCharid/go-rlp/rlp"
)

// 文档格式:
//   JSON数组          -> 列表
//   "0x"开头的字符串  -> 原始字节
//   其它字符串        -> UTF-8文本
//   非负整数          -> 整数
//   true/false        -> 1/0

var errDocumentTrailingData = errors.New("trailing data after document")

// readDocument parses one JSON document from r into a node tree.
func readDocument(r io.Reader) (rlp.Node, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var doc interface{}
	if err := dec.Decode(&doc); err != nil {
		return rlp.Node{}, fmt.Errorf("invalid document: %v", err)
	}
	if dec.More() {
		return rlp.Node{}, errDocumentTrailingData
	}
	return documentNode(doc, "$")
}

// documentNode converts a decoded JSON value. path locates v in the
// document for error messages.
func documentNode(v interface{}, path string) (rlp.Node, error) {
	switch v := v.(type) {
	case []interface{}:
		elems := make([]rlp.Node, len(v))
		for i, e := range v {
			n, err := documentNode(e, path+"["+strconv.Itoa(i)+"]")
			if err != nil {
				return rlp.Node{}, err
			}
			elems[i] = n
		}
		return rlp.NewList(elems...), nil

	case string:
		if hexutil.Has0xPrefix(v) {
			b, err := hexutil.Decode(v)
			if err != nil {
				return rlp.Node{}, fmt.Errorf("%s: %v", path, err)
			}
			return rlp.NewBytes(b), nil
		}
		n, err := rlp.NewText(v)
		if err != nil {
			return rlp.Node{}, fmt.Errorf("%s: %w", path, err)
		}
		return n, nil

	case json.Number:
		i, ok := new(big.Int).SetString(v.String(), 10)
		if !ok {
			return rlp.Node{}, fmt.Errorf("%s: number %s is not an integer", path, v)
		}
		n, err := rlp.NewBigInt(i)
		if err != nil {
			return rlp.Node{}, fmt.Errorf("%s: %w", path, err)
		}
		return n, nil

	case bool:
		return rlp.NewBool(v), nil

	case nil:
		return rlp.Node{}, fmt.Errorf("%s: null is not supported", path)

	default:
		return rlp.Node{}, fmt.Errorf("%s: unsupported JSON value of type %T", path, v)
	}
}
