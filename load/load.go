// Copyright (c) 2024, The Mash Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package load detects the format of model files so that they
// can be handed to the loader package for that format, such as
// load/wavefront.
package load

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dylanmckay/mash"
	"github.com/h2non/filetype"
)

// Format is a model file format.
type Format int32

const (
	// FormatUnknown is a format that mash cannot load.
	FormatUnknown Format = iota

	// FormatWavefront is the Wavefront OBJ format, loaded by load/wavefront.
	FormatWavefront
)

func (f Format) String() string {
	switch f {
	case FormatWavefront:
		return "Wavefront"
	default:
		return "Unknown"
	}
}

// headerSize is the number of bytes needed to match every type
// known to filetype.
const headerSize = 262

// Detect returns the format of the model file at the given path.
// Files with an .obj extension are Wavefront files. Other files are
// sniffed, and an [*mash.UnknownModelFormatError] naming what the
// file looks like is returned if they are not a model format.
func Detect(path string) (Format, error) {
	if strings.EqualFold(filepath.Ext(path), ".obj") {
		return FormatWavefront, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return FormatUnknown, err
	}
	defer f.Close()
	return DetectReader(filepath.Base(path), f)
}

// DetectReader returns the format of the model data read from r,
// using name for error messages. Only the start of r is read.
func DetectReader(name string, r io.Reader) (Format, error) {
	head := make([]byte, headerSize)
	n, err := io.ReadFull(r, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return FormatUnknown, err
	}
	head = head[:n]
	if looksLikeWavefront(head) {
		return FormatWavefront, nil
	}
	kind, err := filetype.Match(head)
	if err != nil || kind == filetype.Unknown {
		return FormatUnknown, &mash.UnknownModelFormatError{Reason: fmt.Sprintf("%s: unrecognized content", name)}
	}
	return FormatUnknown, &mash.UnknownModelFormatError{Reason: fmt.Sprintf("%s: %s (.%s) is not a model format", name, kind.MIME.Value, kind.Extension)}
}

// looksLikeWavefront reports whether the first statement of the
// given text is one that only appears in OBJ files.
func looksLikeWavefront(head []byte) bool {
	sc := bufio.NewScanner(bytes.NewReader(head))
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		switch fields[0] {
		case "mtllib", "o", "g", "v", "vn", "vt", "f", "usemtl":
			return true
		}
		return false
	}
	return false
}
