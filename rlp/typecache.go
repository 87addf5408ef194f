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
	"reflect"
	"strings"
	"sync"
	"sync/atomic"
)

// 如何根据类型找到对应的转换器

// typeinfo is an entry in the type cache.
type typeinfo struct {
	converter    converter
	converterErr error // error from makeConverter
}

// tags represents struct tags.
type tags struct {
	// rlp:"-" ignores fields.
	ignored bool
	// rlp:"tail" controls whether this field swallows additional list elements.
	tail bool
}

// typekey is the key of a type in typeCache. It includes the struct tags because
// they might generate a different converter.
type typekey struct {
	reflect.Type
	tags
}

type converter func(reflect.Value) (Node, error)

var theTC = newTypeCache()

// Map的key是类型和tag，value是对应的转换器
type typeCache struct {
	cur atomic.Value

	// This lock synchronizes writers.
	mu   sync.Mutex
	next map[typekey]*typeinfo
}

func newTypeCache() *typeCache {
	c := new(typeCache)
	c.cur.Store(make(map[typekey]*typeinfo))
	return c
}

func cachedConverter(typ reflect.Type) (converter, error) {
	info := theTC.info(typ)
	return info.converter, info.converterErr
}

func (c *typeCache) info(typ reflect.Type) *typeinfo {
	key := typekey{Type: typ}
	if info := c.cur.Load().(map[typekey]*typeinfo)[key]; info != nil {
		return info
	}

	// Not in the cache, need to generate info for this type.
	return c.generate(typ, tags{})
}

func (c *typeCache) generate(typ reflect.Type, ts tags) *typeinfo {
	c.mu.Lock()
	defer c.mu.Unlock()

	cur := c.cur.Load().(map[typekey]*typeinfo)
	if info := cur[typekey{typ, ts}]; info != nil {
		return info
	}

	// Copy cur to next.
	c.next = make(map[typekey]*typeinfo, len(cur)+1)
	for k, v := range cur {
		c.next[k] = v
	}

	// Generate.
	info := c.infoWhileGenerating(typ, ts)
	if info.converterErr != nil {
		// Converters made in this round may point at the failed type.
		// Keep only the failure, the rest is regenerated on demand.
		c.next = make(map[typekey]*typeinfo, len(cur)+1)
		for k, v := range cur {
			c.next[k] = v
		}
		c.next[typekey{typ, ts}] = info
	}

	// next -> cur
	c.cur.Store(c.next)
	c.next = nil
	return info
}

func (c *typeCache) infoWhileGenerating(typ reflect.Type, ts tags) *typeinfo {
	key := typekey{typ, ts}
	if info := c.next[key]; info != nil {
		return info
	}
	// Put a dummy value into the cache before generating.
	// If the generator tries to lookup itself, it will get
	// the dummy value and won't call itself recursively.
	// 在生成之前放入一个空的typeinfo，递归类型查找自身时拿到的就是它
	info := new(typeinfo)
	c.next[key] = info
	info.generate(typ, ts)
	return info
}

type field struct {
	index int
	info  *typeinfo
	tail  bool
}

// structFields resolves the typeinfo of all public fields in a struct type.
func structFields(typ reflect.Type) (fields []field, err error) {
	lastPublic := lastPublicField(typ)
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		if f.PkgPath != "" { // unexported
			continue
		}
		ts, err := parseStructTag(typ, i, lastPublic)
		if err != nil {
			return nil, err
		}
		if ts.ignored {
			continue
		}
		ftyp := f.Type
		if ts.tail {
			// the tail slice is spliced element by element
			ftyp = ftyp.Elem()
		}
		info := theTC.infoWhileGenerating(ftyp, tags{})
		fields = append(fields, field{i, info, ts.tail})
	}
	return fields, nil
}

func parseStructTag(typ reflect.Type, fi, lastPublic int) (tags, error) {
	f := typ.Field(fi)
	var ts tags
	for _, t := range strings.Split(f.Tag.Get("rlp"), ",") {
		switch t = strings.TrimSpace(t); t {
		case "":
		case "-":
			ts.ignored = true
		case "tail":
			ts.tail = true
			if fi != lastPublic {
				return ts, structTagError{typ: typ.String(), field: f.Name, tag: t, err: "must be on last field"}
			}
			if f.Type.Kind() != reflect.Slice {
				return ts, structTagError{typ: typ.String(), field: f.Name, tag: t, err: "field type is not slice"}
			}
		default:
			return ts, structTagError{typ: typ.String(), field: f.Name, tag: t, err: "unknown tag"}
		}
	}
	return ts, nil
}

func lastPublicField(typ reflect.Type) int {
	last := 0
	for i := 0; i < typ.NumField(); i++ {
		if typ.Field(i).PkgPath == "" {
			last = i
		}
	}
	return last
}

func (i *typeinfo) generate(typ reflect.Type, ts tags) {
	i.converter, i.converterErr = makeConverter(typ, ts)
}

// typeNilKind gives the RLP value kind for nil pointers to 'typ'.
func typeNilKind(typ reflect.Type) Kind {
	switch typ.Kind() {
	case reflect.Struct, reflect.Interface:
		return List
	case reflect.Slice, reflect.Array:
		if isByte(typ.Elem()) {
			return Value
		}
		return List
	default:
		return Value
	}
}

func isUint(k reflect.Kind) bool {
	return k >= reflect.Uint && k <= reflect.Uintptr
}

func isInt(k reflect.Kind) bool {
	return k >= reflect.Int && k <= reflect.Int64
}

func isByte(typ reflect.Type) bool {
	return typ.Kind() == reflect.Uint8 && !typ.Implements(noderInterface)
}
