// Copyright (c) 2024, The Mash Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command mash inspects Wavefront OBJ files and converts them into
// triangular meshes.
//
//	mash objects FILE   list the objects of a file
//	mash info FILE      show statistics of the whole scene
//	mash dedup FILE     merge duplicate vertices of the scene
//	mash config         show the effective settings
//
// Settings are read from mash.toml in ~/.config/mash and in the current
// directory, from the file given with --config, and from the flags, with
// later sources overriding earlier ones.
package main

import (
	"log/slog"
	"os"

	"github.com/dylanmckay/mash/base/logx"
)

func main() {
	logx.SetDefaultLogger()
	if err := newRootCmd().Execute(); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}
