// Copyright (c) 2024, The Mash Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package load

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dylanmckay/mash"
	"github.com/dylanmckay/mash/base/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	fp := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(fp, data, 0o644))
	return fp
}

func TestDetectExtension(t *testing.T) {
	// the extension is enough; the file need not exist
	f, err := Detect("models/Cube.OBJ")
	require.NoError(t, err)
	assert.Equal(t, FormatWavefront, f)
	assert.Equal(t, "Wavefront", f.String())
}

func TestDetectContent(t *testing.T) {
	fp := writeFile(t, "scene.txt", []byte("# exported\n\nmtllib scene.mtl\no Cube\nv 0 0 0\n"))
	f, err := Detect(fp)
	require.NoError(t, err)
	assert.Equal(t, FormatWavefront, f)
}

func TestDetectImage(t *testing.T) {
	png := append([]byte("\x89PNG\r\n\x1a\n"), make([]byte, 32)...)
	fp := writeFile(t, "texture.dat", png)
	f, err := Detect(fp)
	assert.Equal(t, FormatUnknown, f)
	assert.ErrorIs(t, err, mash.ErrUnknownModelFormat)

	var ue *mash.UnknownModelFormatError
	require.True(t, errors.As(err, &ue))
	assert.Contains(t, ue.Reason, "image/png")
	assert.Contains(t, ue.Error(), "texture.dat")
}

func TestDetectUnrecognized(t *testing.T) {
	_, err := DetectReader("notes", strings.NewReader("hello world\n"))
	assert.ErrorIs(t, err, mash.ErrUnknownModelFormat)
	assert.EqualError(t, err, "unknown model format: notes: unrecognized content")

	_, err = DetectReader("empty", strings.NewReader(""))
	assert.ErrorIs(t, err, mash.ErrUnknownModelFormat)
}

func TestDetectMissing(t *testing.T) {
	_, err := Detect(filepath.Join(t.TempDir(), "missing.stl"))
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.NotErrorIs(t, err, mash.ErrUnknownModelFormat)
}
