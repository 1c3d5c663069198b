// Copyright (c) 2024, The Mash Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package obj

import (
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"path"

	"github.com/dylanmckay/mash/base/errors"
	"github.com/dylanmckay/mash/base/fsx"
)

// MaterialLoader opens the material library with the given name,
// as written in an mtllib statement. Returning an error matching
// [fs.ErrNotExist] skips the library with a warning; any other
// error stops loading.
type MaterialLoader func(name string) (io.ReadCloser, error)

// Load decodes the OBJ data from r and the material libraries it
// references, opened with ml, and builds the models. If ml is nil,
// no materials are loaded.
func Load(r io.Reader, ml MaterialLoader) (*Decoder, error) {
	dec := NewDecoder()
	if err := dec.DecodeObj(r); err != nil {
		return nil, err
	}
	if ml != nil {
		for _, lib := range dec.MaterialLibs {
			if err := dec.loadMaterialLib(lib, ml); err != nil {
				return nil, err
			}
		}
	}
	if err := dec.Build(); err != nil {
		return nil, err
	}
	slog.Debug("obj: decoded", "models", len(dec.Models), "materials", len(dec.Materials), "warnings", len(dec.Warnings))
	return dec, nil
}

func (dec *Decoder) loadMaterialLib(name string, ml MaterialLoader) error {
	rc, err := ml(name)
	if errors.Is(err, fs.ErrNotExist) {
		dec.Warnings = append(dec.Warnings, fmt.Sprintf("%s: could not find material library: %s", mtlType, name))
		slog.Warn("obj: material library not found", "name", name)
		return nil
	}
	if err != nil {
		return err
	}
	defer rc.Close()
	return dec.DecodeMtl(rc)
}

// FSMaterialLoader returns a [MaterialLoader] that opens material
// libraries in fsys, relative to the directory dir.
func FSMaterialLoader(fsys fs.FS, dir string) MaterialLoader {
	return func(name string) (io.ReadCloser, error) {
		fp := path.Join(dir, name)
		if !fs.ValidPath(fp) {
			return nil, &fs.PathError{Op: "open", Path: fp, Err: fs.ErrNotExist}
		}
		return fsys.Open(fp)
	}
}

// LoadFS loads the OBJ file with the given name from fsys, along with
// the material libraries it references, which are looked up in the
// same directory.
func LoadFS(fsys fs.FS, name string) (*Decoder, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f, FSMaterialLoader(fsys, path.Dir(name)))
}

// LoadFile loads the OBJ file at the given path on disk.
// See [LoadFS].
func LoadFile(fpath string) (*Decoder, error) {
	fsys, name, err := fsx.DirFS(fpath)
	if err != nil {
		return nil, err
	}
	return LoadFS(fsys, name)
}
