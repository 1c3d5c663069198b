// Copyright (c) 2024, The Mash Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides the structured logging setup used by mash:
// a user-selected verbosity level and a terminal [slog.Handler]
// that colors the level of each record.
package logx

import "log/slog"

// UserLevel is the lowest level of the records that [Handler] writes.
// The mash command sets it from its -v, --vv and -q flags before
// running a subcommand; it stays at [slog.LevelWarn] otherwise, so
// that library code only reports warnings and errors by default.
var UserLevel = slog.LevelWarn

// LevelFromFlags maps the verbosity flags of a command to a level.
// The most verbose flag that is set wins: vv gives [slog.LevelDebug],
// v gives [slog.LevelInfo] and q gives [slog.LevelError]. With no
// flag set it returns [slog.LevelWarn].
func LevelFromFlags(vv, v, q bool) slog.Level {
	switch {
	case vv:
		return slog.LevelDebug
	case v:
		return slog.LevelInfo
	case q:
		return slog.LevelError
	}
	return slog.LevelWarn
}
