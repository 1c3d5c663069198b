// Copyright (c) 2024, The Mash Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package build

import (
	"testing"

	"github.com/dylanmckay/mash"
	"github.com/stretchr/testify/assert"
)

func TestUnitCube(t *testing.T) {
	cube := UnitCube[mash.Vector, uint64](mash.Vector.Position)
	nv, ni := cube.MeshSize()
	assert.Equal(t, 8, nv)
	assert.Equal(t, 36, ni)

	n := 0
	for range cube.Triangles() {
		n++
	}
	assert.Equal(t, 12, n)
	assert.Equal(t, 12, cube.TriangleCount())
}

func TestCubeSize(t *testing.T) {
	cube := Cube[mash.Vector, uint8](4, mash.Vector.Position)
	bb := cube.Bounds()
	assert.Equal(t, mash.Vec3(-2, -2, -2), bb.Min)
	assert.Equal(t, mash.Vec3(2, 2, 2), bb.Max)
	assert.Equal(t, mash.Vec3(4, 4, 4), bb.Size())
}

func TestCubeWinding(t *testing.T) {
	// every face normal points away from the center
	cube := UnitCube[mash.Vector, uint16](mash.Vector.Position)
	for tri := range cube.Triangles() {
		nrm := tri.Normal()
		center := tri.Vertices[0].Add(tri.Vertices[1]).Add(tri.Vertices[2]).MulScalar(1.0 / 3)
		assert.Greater(t, nrm.Dot(center), float32(0), "triangle %v", tri.Vertices)
	}
}
