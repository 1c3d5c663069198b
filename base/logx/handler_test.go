// Copyright (c) 2024, The Mash Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func newTestLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(NewHandler(buf, termenv.WithProfile(termenv.Ascii)))
}

func TestHandlerLevels(t *testing.T) {
	prev := UserLevel
	t.Cleanup(func() { UserLevel = prev })

	buf := &bytes.Buffer{}
	lg := newTestLogger(buf)

	UserLevel = slog.LevelWarn
	lg.Info("hidden")
	lg.Warn("shown", "objects", 3)
	assert.Equal(t, "WARN shown objects=3\n", buf.String())

	buf.Reset()
	UserLevel = slog.LevelDebug
	lg.Debug("now visible")
	assert.Equal(t, "DEBUG now visible\n", buf.String())
}

func TestHandlerAttrsAndGroups(t *testing.T) {
	prev := UserLevel
	t.Cleanup(func() { UserLevel = prev })
	UserLevel = slog.LevelInfo

	buf := &bytes.Buffer{}
	lg := newTestLogger(buf).With("file", "cube.obj").WithGroup("mesh")
	lg.Info("built", "vertices", 24, slog.Group("bounds", "min", -1, "max", 1))
	assert.Equal(t, "INFO built file=cube.obj mesh.vertices=24 mesh.bounds.min=-1 mesh.bounds.max=1\n", buf.String())
}

func TestLevelFromFlags(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, LevelFromFlags(true, true, true))
	assert.Equal(t, slog.LevelInfo, LevelFromFlags(false, true, true))
	assert.Equal(t, slog.LevelError, LevelFromFlags(false, false, true))
	assert.Equal(t, slog.LevelWarn, LevelFromFlags(false, false, false))
}
