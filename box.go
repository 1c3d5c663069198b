// Copyright (c) 2024, The Mash Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mash

import "github.com/chewxy/math32"

// Box is an axis-aligned bounding box defined by two points:
// the point with minimum coordinates and the point with maximum coordinates.
type Box struct {
	Min Vector
	Max Vector
}

// EmptyBox returns a new empty [Box], with minimum at +Infinity
// and maximum at -Infinity, so that expanding it by any point
// yields a box around that point.
func EmptyBox() Box {
	inf := math32.Inf(1)
	return Box{Min: Vector{inf, inf, inf}, Max: Vector{-inf, -inf, -inf}}
}

// IsEmpty returns true if this bounding box is empty (max < min on any coord).
func (b Box) IsEmpty() bool {
	return (b.Max.X < b.Min.X) || (b.Max.Y < b.Min.Y) || (b.Max.Z < b.Min.Z)
}

// ExpandByPoint may expand this bounding box to include the specified point.
func (b *Box) ExpandByPoint(p Vector) {
	b.Min = b.Min.Min(p)
	b.Max = b.Max.Max(p)
}

// ExpandByBox may expand this bounding box to include the specified box.
func (b *Box) ExpandByBox(o Box) {
	if o.IsEmpty() {
		return
	}
	b.ExpandByPoint(o.Min)
	b.ExpandByPoint(o.Max)
}

// Size returns the size of the box along each axis,
// or the zero vector for an empty box.
func (b Box) Size() Vector {
	if b.IsEmpty() {
		return Vector{}
	}
	return b.Max.Sub(b.Min)
}

// Center returns the center point of the box,
// or the zero vector for an empty box.
func (b Box) Center() Vector {
	if b.IsEmpty() {
		return Vector{}
	}
	return b.Min.Add(b.Max).MulScalar(0.5)
}
