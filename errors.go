// Copyright (c) 2024, The Mash Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mash

import (
	"fmt"

	"github.com/dylanmckay/mash/base/errors"
)

var (
	// ErrUnknownModelFormat is matched by [errors.Is] for any
	// [*UnknownModelFormatError].
	ErrUnknownModelFormat = errors.New("unknown model format")

	// ErrIndexTooSmall is matched by [errors.Is] for any
	// [*IndexTooSmallError].
	ErrIndexTooSmall = errors.New("index too small for mesh")
)

// UnknownModelFormatError is returned when a file is not in any
// model format that mash can load.
type UnknownModelFormatError struct {
	Reason string
}

func (e *UnknownModelFormatError) Error() string {
	return "unknown model format: " + e.Reason
}

func (e *UnknownModelFormatError) Is(target error) bool {
	return target == ErrUnknownModelFormat
}

// IndexTooSmallError is returned when a vertex index does not fit in
// the index type chosen for a mesh. The caller should retry with a
// wider index type.
type IndexTooSmallError struct {
	// Index is the value that could not be represented.
	Index uint64

	// BitsAvailable is the width of the index type.
	BitsAvailable uint8
}

func (e *IndexTooSmallError) Error() string {
	return fmt.Sprintf("index too small for mesh: index '%d' cannot fit in %d-bits", e.Index, e.BitsAvailable)
}

func (e *IndexTooSmallError) Is(target error) bool {
	return target == ErrIndexTooSmall
}
