// Copyright (c) 2024, The Mash Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mash

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

// Index is the constraint for mesh index types: any unsigned
// integer type. Conversion to uint64 is always lossless; conversion
// from uint64 goes through [IndexFrom], which checks the range.
type Index interface {
	constraints.Unsigned
}

// IndexBits returns the number of bits in the index type I.
func IndexBits[I Index]() uint8 {
	return uint8(bits.OnesCount64(uint64(^I(0))))
}

// IndexFrom converts v to the index type I. The value must be
// strictly less than the maximum value of I; the maximum is reserved
// so that it never collides with the "no index" sentinel some formats
// use. Otherwise an [*IndexTooSmallError] is returned and nothing is
// truncated.
func IndexFrom[I Index](v uint64) (I, error) {
	if v < uint64(^I(0)) {
		return I(v), nil
	}
	return 0, &IndexTooSmallError{Index: v, BitsAvailable: IndexBits[I]()}
}
