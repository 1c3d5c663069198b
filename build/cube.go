// Copyright (c) 2024, The Mash Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package build provides procedurally generated meshes.
package build

import "github.com/dylanmckay/mash"

// cubeIndices are the 12 triangles of a cube over cubeCorners,
// wound counter-clockwise as seen from outside.
var cubeIndices = [36]uint8{
	1, 3, 0,
	7, 5, 4,
	4, 1, 0,
	5, 2, 1,
	2, 7, 3,
	0, 7, 4,
	1, 2, 3,
	7, 6, 5,
	4, 5, 1,
	5, 6, 2,
	2, 6, 7,
	0, 3, 7,
}

// cubeCorners returns the 8 corners of an axis-aligned cube centered
// on the origin, with given half side length.
func cubeCorners(h float32) [8]mash.Vector {
	return [8]mash.Vector{
		{h, -h, -h},
		{h, -h, h},
		{-h, -h, h},
		{-h, -h, -h},
		{h, h, -h},
		{h, h, h},
		{-h, h, h},
		{-h, h, -h},
	}
}

// UnitCube returns a cube with a side length of one, centered on the origin.
// See [Cube].
func UnitCube[V mash.Vertex[V], I mash.Index](conv func(mash.Vector) V) *mash.TriangularMesh[V, I] {
	return Cube[V, I](1, conv)
}

// Cube returns a cube with the given side length, centered on the origin.
// It has 8 vertices shared between its 12 triangles. Each corner
// position is converted to the vertex type with conv; use
// [mash.Vector.Position] for plain [mash.Vector] vertices.
func Cube[V mash.Vertex[V], I mash.Index](size float32, conv func(mash.Vector) V) *mash.TriangularMesh[V, I] {
	ms := mash.NewTriangularMesh[V, I]()
	for _, c := range cubeCorners(size / 2) {
		ms.Vertices = append(ms.Vertices, conv(c))
	}
	ms.Indices = make([]I, len(cubeIndices))
	for i, idx := range cubeIndices {
		ms.Indices[i] = I(idx)
	}
	return ms
}
