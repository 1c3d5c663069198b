// Copyright (c) 2024, The Mash Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"bytes"
	"log/slog"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return buf
}

func TestLog(t *testing.T) {
	buf := captureLogs(t)
	assert.NoError(t, Log(nil))
	assert.Empty(t, buf.String())

	err := New("bad thing")
	assert.Equal(t, err, Log(err))
	assert.Contains(t, buf.String(), "bad thing")
	assert.Contains(t, buf.String(), "errors_test.go")
}

func TestMust(t *testing.T) {
	assert.NotPanics(t, func() { Must(nil) })
	assert.Panics(t, func() { Must(New("boom")) })
}

func TestIgnore1(t *testing.T) {
	assert.Equal(t, 0, Ignore1(strconv.Atoi("x")))
}
