// Copyright (c) 2024, The Mash Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fsx provides file system helpers for locating model
// and configuration files, on disk or in an [fs.FS].
package fsx

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/dylanmckay/mash/base/errors"
	"github.com/mitchellh/go-homedir"
)

// DirFS returns the directory part of given file path as an os.DirFS
// and the filename as a string. These can then be used to access the file
// using the FS-based interface, consistent with embed and other use-cases.
// A leading ~ in the path is expanded to the user's home directory.
func DirFS(fpath string) (fs.FS, string, error) {
	fpath, err := homedir.Expand(fpath)
	if err != nil {
		return nil, "", err
	}
	fabs, err := filepath.Abs(fpath)
	if err != nil {
		return nil, "", err
	}
	dir, fname := filepath.Split(fabs)
	return os.DirFS(dir), fname, nil
}

// FileExistsFS checks whether given file exists, returning true if so,
// false if not, and error if there is an error in accessing the file.
func FileExistsFS(fsys fs.FS, filePath string) (bool, error) {
	if fsys, ok := fsys.(fs.StatFS); ok {
		fileInfo, err := fsys.Stat(filePath)
		if err == nil {
			return !fileInfo.IsDir(), nil
		}
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	fp, err := fsys.Open(filePath)
	if err == nil {
		fp.Close()
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// FileExists checks whether given file exists on disk, returning true if so,
// false if not, and error if there is an error in accessing the file.
func FileExists(filePath string) (bool, error) {
	fileInfo, err := os.Stat(filePath)
	if err == nil {
		return !fileInfo.IsDir(), nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// FindFilesOnPaths attempts to locate given file(s) on given list of paths,
// returning the full path to each file found (nil if none). A leading ~ in
// any path is expanded to the user's home directory; paths that cannot be
// expanded are logged and skipped.
func FindFilesOnPaths(paths []string, files ...string) []string {
	var res []string
	for _, path := range paths {
		dir, err := homedir.Expand(path)
		if errors.Log(err) != nil {
			continue
		}
		for _, fn := range files {
			fp := filepath.Join(dir, fn)
			if errors.Ignore1(FileExists(fp)) {
				res = append(res, fp)
			}
		}
	}
	return res
}
