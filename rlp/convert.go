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
	"math/big"
	"reflect"

	"github.com/holiman/uint256"
)

// Noder is implemented by types that require custom conversion
// to a node tree, or that want to control the conversion of their
// private fields.
type Noder interface {
	// RLPNode should return the node representing its receiver.
	RLPNode() (Node, error)
}

var (
	noderInterface = reflect.TypeOf(new(Noder)).Elem()
	nodeType       = reflect.TypeOf(Node{})
	bigInt         = reflect.TypeOf(big.Int{})
	u256Int        = reflect.TypeOf(uint256.Int{})
)

// ToNode converts val to a node tree. See the package documentation for
// the conversion rules.
func ToNode(val interface{}) (Node, error) {
	if val == nil {
		return NewList(), nil
	}
	rval := reflect.ValueOf(val)
	conv, err := cachedConverter(rval.Type())
	if err != nil {
		return Node{}, err
	}
	return conv(rval)
}

// EncodeValue converts val with ToNode and returns its encoding.
func EncodeValue(val interface{}) ([]byte, error) {
	n, err := ToNode(val)
	if err != nil {
		return nil, err
	}
	return EncodeToBytes(n), nil
}

// makeConverter creates a converter function for the given type.
func makeConverter(typ reflect.Type, ts tags) (converter, error) {
	kind := typ.Kind()
	switch {
	case typ == nodeType:
		return convertNode, nil
	case typ.Implements(noderInterface):
		return makeNoderConverter(typ), nil
	case kind != reflect.Ptr && reflect.PtrTo(typ).Implements(noderInterface):
		return convertAddrNoder, nil
	case typ.AssignableTo(reflect.PtrTo(bigInt)):
		return convertBigIntPtr, nil
	case typ.AssignableTo(bigInt):
		return convertBigIntNoPtr, nil
	case typ.AssignableTo(reflect.PtrTo(u256Int)):
		return convertU256IntPtr, nil
	case typ.AssignableTo(u256Int):
		return convertU256IntNoPtr, nil
	case kind == reflect.Ptr:
		return makePtrConverter(typ)
	case isUint(kind):
		return convertUint, nil
	case isInt(kind):
		return nil, fmt.Errorf("%w (type %v)", ErrSignedInteger, typ)
	case kind == reflect.Bool:
		return convertBool, nil
	case kind == reflect.String:
		return convertString, nil
	case kind == reflect.Slice && isByte(typ.Elem()):
		return convertBytes, nil
	case kind == reflect.Array && isByte(typ.Elem()):
		return convertByteArray, nil
	case kind == reflect.Slice || kind == reflect.Array:
		return makeSliceConverter(typ)
	case kind == reflect.Struct:
		return makeStructConverter(typ)
	case kind == reflect.Interface:
		return convertInterface, nil
	default:
		return nil, &unsupportedTypeError{typ}
	}
}

func convertNode(val reflect.Value) (Node, error) {
	return val.Interface().(Node), nil
}

func convertUint(val reflect.Value) (Node, error) {
	return NewUint(val.Uint()), nil
}

func convertBool(val reflect.Value) (Node, error) {
	return NewBool(val.Bool()), nil
}

func convertBigIntPtr(val reflect.Value) (Node, error) {
	ptr := val.Interface().(*big.Int)
	return NewBigInt(ptr)
}

func convertBigIntNoPtr(val reflect.Value) (Node, error) {
	i := val.Interface().(big.Int)
	return NewBigInt(&i)
}

func convertU256IntPtr(val reflect.Value) (Node, error) {
	ptr := val.Interface().(*uint256.Int)
	return NewUint256(ptr), nil
}

func convertU256IntNoPtr(val reflect.Value) (Node, error) {
	i := val.Interface().(uint256.Int)
	return NewUint256(&i), nil
}

func convertString(val reflect.Value) (Node, error) {
	return NewText(val.String())
}

func convertBytes(val reflect.Value) (Node, error) {
	return NewBytes(val.Bytes()), nil
}

func convertByteArray(val reflect.Value) (Node, error) {
	b := make([]byte, val.Len())
	for i := range b {
		b[i] = byte(val.Index(i).Uint())
	}
	return newBytesNoCopy(b), nil
}

func convertInterface(val reflect.Value) (Node, error) {
	if val.IsNil() {
		// nil interface -> empty list
		return NewList(), nil
	}
	eval := val.Elem()
	conv, err := cachedConverter(eval.Type())
	if err != nil {
		return Node{}, err
	}
	return conv(eval)
}

func makeSliceConverter(typ reflect.Type) (converter, error) {
	etypeinfo := theTC.infoWhileGenerating(typ.Elem(), tags{})
	if etypeinfo.converterErr != nil {
		return nil, etypeinfo.converterErr
	}
	conv := func(val reflect.Value) (Node, error) {
		// etypeinfo may have been incomplete when this converter was made.
		if etypeinfo.converterErr != nil {
			return Node{}, etypeinfo.converterErr
		}
		elems, err := convertElems(val, etypeinfo)
		if err != nil {
			return Node{}, err
		}
		return NewList(elems...), nil
	}
	return conv, nil
}

func convertElems(val reflect.Value, info *typeinfo) ([]Node, error) {
	elems := make([]Node, val.Len())
	for i := range elems {
		n, err := info.converter(val.Index(i))
		if err != nil {
			return nil, err
		}
		elems[i] = n
	}
	return elems, nil
}

func makeStructConverter(typ reflect.Type) (converter, error) {
	fields, err := structFields(typ)
	if err != nil {
		return nil, err
	}
	for _, f := range fields {
		if f.info.converterErr != nil {
			return nil, structFieldError{typ, f.index, f.info.converterErr}
		}
	}
	conv := func(val reflect.Value) (Node, error) {
		elems := make([]Node, 0, len(fields))
		for _, f := range fields {
			if f.info.converterErr != nil {
				return Node{}, structFieldError{typ, f.index, f.info.converterErr}
			}
			fv := val.Field(f.index)
			if f.tail {
				tail, err := convertElems(fv, f.info)
				if err != nil {
					return Node{}, err
				}
				elems = append(elems, tail...)
				continue
			}
			n, err := f.info.converter(fv)
			if err != nil {
				return Node{}, err
			}
			elems = append(elems, n)
		}
		return NewList(elems...), nil
	}
	return conv, nil
}

// nilNode returns the node a nil pointer to typ converts to.
func nilNode(typ reflect.Type) Node {
	if typeNilKind(typ) == List {
		return NewList()
	}
	return Node{}
}

func makePtrConverter(typ reflect.Type) (converter, error) {
	etypeinfo := theTC.infoWhileGenerating(typ.Elem(), tags{})
	if etypeinfo.converterErr != nil {
		return nil, etypeinfo.converterErr
	}
	nilval := nilNode(typ.Elem())

	conv := func(val reflect.Value) (Node, error) {
		if etypeinfo.converterErr != nil {
			return Node{}, etypeinfo.converterErr
		}
		if ev := val.Elem(); ev.IsValid() {
			return etypeinfo.converter(ev)
		}
		return nilval, nil
	}
	return conv, nil
}

func makeNoderConverter(typ reflect.Type) converter {
	var nilval Node
	switch typ.Kind() {
	case reflect.Ptr:
		nilval = nilNode(typ.Elem())
	case reflect.Interface:
		nilval = NewList()
	}
	return func(val reflect.Value) (Node, error) {
		if (val.Kind() == reflect.Ptr || val.Kind() == reflect.Interface) && val.IsNil() {
			return nilval, nil
		}
		return val.Interface().(Noder).RLPNode()
	}
}

// convertAddrNoder handles types whose pointer implements Noder.
// The value must be addressable, e.g. a slice element or a field of a
// struct reached through a pointer.
func convertAddrNoder(val reflect.Value) (Node, error) {
	if !val.CanAddr() {
		return Node{}, fmt.Errorf("rlp: unaddressable value of type %v, RLPNode is pointer method", val.Type())
	}
	return val.Addr().Interface().(Noder).RLPNode()
}
