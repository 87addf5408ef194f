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
	"errors"
	"fmt"
	"reflect"
)

var (
	ErrNegativeBigInt = errors.New("rlp: cannot encode negative big.Int")
	ErrSignedInteger  = errors.New("rlp: cannot encode signed integer")
)

// ConversionError is returned when text cannot be represented as UTF-8.
type ConversionError struct {
	Offset int // bytes validated before the failure
	Err    error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("rlp: cannot convert text to UTF-8 at byte %d: %v", e.Offset, e.Err)
}

func (e *ConversionError) Unwrap() error { return e.Err }

type unsupportedTypeError struct {
	typ reflect.Type
}

func (e *unsupportedTypeError) Error() string {
	return fmt.Sprintf("rlp: type %v is not RLP-serializable", e.typ)
}

type structFieldError struct {
	typ   reflect.Type
	field int
	err   error
}

func (e structFieldError) Error() string {
	return fmt.Sprintf("%v (struct field %v.%s)", e.err, e.typ, e.typ.Field(e.field).Name)
}

func (e structFieldError) Unwrap() error { return e.err }

// structTagError is returned for malformed rlp struct tags.
type structTagError struct {
	typ   string
	field string
	tag   string
	err   string
}

func (e structTagError) Error() string {
	return fmt.Sprintf("rlp: invalid struct tag %q for %v.%s (%s)", e.tag, e.typ, e.field, e.err)
}
