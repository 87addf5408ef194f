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

package log

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogfmtFormat(t *testing.T) {
	out := new(bytes.Buffer)
	l := New("component", "rlpenc")
	l.SetHandler(StreamHandler(out, LogfmtFormat()))

	l.Info("encoded document", "size", 7, "output", []byte{0xc6, 0x82}, "err", errors.New("some failure"))
	have := out.String()
	assert.Contains(t, have, "lvl=info")
	assert.Contains(t, have, `msg="encoded document"`)
	assert.Contains(t, have, "component=rlpenc size=7 output=c682")
	assert.Contains(t, have, `err="some failure"`)
	assert.True(t, strings.HasSuffix(have, "\n"))
}

func TestTerminalFormatNoColor(t *testing.T) {
	out := new(bytes.Buffer)
	l := New()
	l.SetHandler(StreamHandler(out, TerminalFormat(false)))

	l.Warn("short", "key", "value with space")
	have := out.String()
	require.True(t, strings.HasPrefix(have, "WARN ["), have)
	assert.Contains(t, have, `key="value with space"`)
	assert.NotContains(t, have, "\x1b[")
}

func TestTerminalFormatColor(t *testing.T) {
	out := new(bytes.Buffer)
	l := New()
	l.SetHandler(StreamHandler(out, TerminalFormat(true)))

	l.Error("failed", "file", "a.json")
	assert.Contains(t, out.String(), "\x1b[31m")
}

func TestLvlFilterHandler(t *testing.T) {
	out := new(bytes.Buffer)
	l := New()
	l.SetHandler(LvlFilterHandler(LvlInfo, StreamHandler(out, LogfmtFormat())))

	l.Debug("hidden")
	l.Trace("hidden")
	assert.Empty(t, out.String())

	l.Info("shown")
	assert.Contains(t, out.String(), "msg=shown")
}

func TestOddContext(t *testing.T) {
	var got *Record
	l := New()
	l.SetHandler(FuncHandler(func(r *Record) error {
		got = r
		return nil
	}))
	l.Info("odd", "key")
	require.NotNil(t, got)
	assert.Equal(t, []interface{}{"key", nil, errorKey, "Normalized odd number of arguments by adding nil"}, got.Ctx)
}

func TestChildContext(t *testing.T) {
	var got *Record
	parent := New("a", 1)
	parent.SetHandler(FuncHandler(func(r *Record) error {
		got = r
		return nil
	}))
	child := parent.New("b", 2)
	child.Info("msg", "c", 3)
	require.NotNil(t, got)
	assert.Equal(t, []interface{}{"a", 1, "b", 2, "c", 3}, got.Ctx)
}

func TestCallerFileHandler(t *testing.T) {
	out := new(bytes.Buffer)
	l := New()
	l.SetHandler(CallerFileHandler(StreamHandler(out, LogfmtFormat())))
	l.Info("where")
	assert.Contains(t, out.String(), "caller=logger_test.go:")
}

func TestLvlFromString(t *testing.T) {
	for in, want := range map[string]Lvl{
		"trace": LvlTrace, "dbug": LvlDebug, "info": LvlInfo,
		"warn": LvlWarn, "error": LvlError, "crit": LvlCrit,
	} {
		lvl, err := LvlFromString(in)
		require.NoError(t, err)
		assert.Equal(t, want, lvl)
	}
	_, err := LvlFromString("loud")
	assert.Error(t, err)
}
