// Copyright (c) 2024, The Mash Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tomlx

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type settings struct {
	IndexBits int
	Filter    string
}

func TestSaveOpen(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "mash.toml")
	require.NoError(t, Save(&settings{IndexBits: 16, Filter: "door"}, fn))

	var st settings
	require.NoError(t, Open(&st, fn))
	assert.Equal(t, settings{IndexBits: 16, Filter: "door"}, st)
}

func TestReadBytesOverrides(t *testing.T) {
	st := settings{IndexBits: 32, Filter: "keep"}
	require.NoError(t, ReadBytes(&st, []byte("IndexBits = 8\n")))
	assert.Equal(t, settings{IndexBits: 8, Filter: "keep"}, st)
}
