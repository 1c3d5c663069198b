// Copyright (c) 2024, The Mash Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mash_test

import (
	"slices"
	"testing"

	"github.com/chewxy/math32"
	"github.com/dylanmckay/mash"
	"github.com/dylanmckay/mash/base/errors"
	"github.com/dylanmckay/mash/build"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// texVertex is a vertex with a position and a texture coordinate.
type texVertex struct {
	Pos mash.Vector
	UV  mash.Vector
}

func (v texVertex) Position() mash.Vector { return v.Pos }

func (v texVertex) Compare(o texVertex) int {
	if c := v.Pos.Compare(o.Pos); c != 0 {
		return c
	}
	return v.UV.Compare(o.UV)
}

func tri(a, b, c mash.Vector) mash.Triangle[mash.Vector] {
	return mash.NewTriangle(a, b, c)
}

func sortedTriangles[V mash.Vertex[V], I mash.Index](ms *mash.TriangularMesh[V, I]) []mash.Triangle[V] {
	tris := slices.Collect(ms.Triangles())
	slices.SortFunc(tris, mash.Triangle[V].Compare)
	return tris
}

func TestTrianglesCount(t *testing.T) {
	cube := build.UnitCube[mash.Vector, uint64](mash.Vector.Position)
	assert.Len(t, slices.Collect(cube.Triangles()), 12)
	assert.Equal(t, len(cube.Indices)/3, len(slices.Collect(cube.Triangles())))

	empty := mash.NewTriangularMesh[mash.Vector, uint32]()
	assert.Empty(t, slices.Collect(empty.Triangles()))
}

func TestTrianglesOrder(t *testing.T) {
	ms := &mash.TriangularMesh[mash.Vector, uint16]{
		Vertices: []mash.Vector{mash.Vec3(0, 0, 0), mash.Vec3(1, 0, 0), mash.Vec3(0, 1, 0), mash.Vec3(0, 0, 1)},
		Indices:  []uint16{3, 1, 0, 0, 2, 3},
	}
	tris := slices.Collect(ms.Triangles())
	require.Len(t, tris, 2)
	for k, tr := range tris {
		for j := range 3 {
			assert.Equal(t, ms.Vertices[ms.Indices[3*k+j]], tr.Vertices[j])
		}
	}

	// restartable, and stopping early is fine
	assert.Equal(t, tris, slices.Collect(ms.Triangles()))
	n := 0
	for range ms.Triangles() {
		n++
		break
	}
	assert.Equal(t, 1, n)
}

func TestTrianglesIncomplete(t *testing.T) {
	ms := &mash.TriangularMesh[mash.Vector, uint8]{
		Vertices: []mash.Vector{mash.Vec3(0, 0, 0), mash.Vec3(1, 0, 0), mash.Vec3(0, 1, 0)},
		Indices:  []uint8{0, 1, 2, 2, 1},
	}
	n := 0
	assert.PanicsWithValue(t, "mash: index list length 5 is not a multiple of 3", func() {
		for range ms.Triangles() {
			n++
		}
	})
	assert.Equal(t, 1, n)
}

func TestTrianglesOutOfRange(t *testing.T) {
	ms := &mash.TriangularMesh[mash.Vector, uint32]{
		Vertices: []mash.Vector{mash.Vec3(0, 0, 0)},
		Indices:  []uint32{0, 0, 7},
	}
	assert.PanicsWithValue(t, "mash: index 7 out of range for 1 vertices", func() {
		slices.Collect(ms.Triangles())
	})
}

func TestCollectDisjointTriangles(t *testing.T) {
	input := []mash.Triangle[mash.Vector]{
		tri(mash.Vec3(1, 1, 1), mash.Vec3(2, 2, 2), mash.Vec3(3, 3, 3)),
		tri(mash.Vec3(5, 5, 5), mash.Vec3(6, 6, 6), mash.Vec3(7, 7, 7)),
	}
	ms, err := mash.CollectTriangles[mash.Vector, uint16](input)
	require.NoError(t, err)
	assert.Equal(t, []mash.Vector{
		mash.Vec3(1, 1, 1), mash.Vec3(2, 2, 2), mash.Vec3(3, 3, 3),
		mash.Vec3(5, 5, 5), mash.Vec3(6, 6, 6), mash.Vec3(7, 7, 7),
	}, ms.Vertices)
	assert.Equal(t, []uint16{0, 1, 2, 3, 4, 5}, ms.Indices)
	assert.Equal(t, input, slices.Collect(ms.Triangles()))
}

func TestCollectMergesAndKeepsWinding(t *testing.T) {
	a := mash.Vec3(0, 0, 0)
	b := mash.Vec3(1, 0, 0)
	c := mash.Vec3(0, 1, 0)
	d := mash.Vec3(1, 1, 0)
	input := []mash.Triangle[mash.Vector]{tri(d, c, b), tri(c, a, b)}

	ms, err := mash.FromTriangles[mash.Vector, uint32](slices.Values(input))
	require.NoError(t, err)
	// sorted: a(0,0,0) c(0,1,0) b(1,0,0) d(1,1,0)
	assert.Equal(t, []mash.Vector{a, c, b, d}, ms.Vertices)
	assert.Equal(t, []uint32{3, 1, 2, 1, 0, 2}, ms.Indices)
	assert.Equal(t, input, slices.Collect(ms.Triangles()))
}

func TestCollectNoTolerance(t *testing.T) {
	a := mash.Vec3(1, 0, 0)
	b := mash.Vec3(math32.Nextafter(1, 2), 0, 0)
	ms, err := mash.CollectTriangles[mash.Vector, uint8]([]mash.Triangle[mash.Vector]{
		tri(a, b, mash.Vec3(0, 1, 0)),
		tri(a, a, a),
	})
	require.NoError(t, err)
	assert.Len(t, ms.Vertices, 3)
	assert.Equal(t, []uint8{1, 2, 0, 1, 1, 1}, ms.Indices)
}

func TestCollectAttributesAreDistinct(t *testing.T) {
	p := mash.Vec3(0, 0, 0)
	v1 := texVertex{Pos: p, UV: mash.Vec3(0, 0, 0)}
	v2 := texVertex{Pos: p, UV: mash.Vec3(1, 0, 0)}
	v3 := texVertex{Pos: mash.Vec3(1, 1, 1)}
	ms, err := mash.CollectTriangles[texVertex, uint16]([]mash.Triangle[texVertex]{
		mash.NewTriangle(v1, v2, v3),
		mash.NewTriangle(v3, v2, v1),
	})
	require.NoError(t, err)
	assert.Equal(t, []texVertex{v1, v2, v3}, ms.Vertices)
	assert.Equal(t, []uint16{0, 1, 2, 2, 1, 0}, ms.Indices)
}

func TestCollectRoundTrip(t *testing.T) {
	cube := build.UnitCube[mash.Vector, uint32](mash.Vector.Position)
	rebuilt, err := mash.FromTriangles[mash.Vector, uint32](cube.Triangles())
	require.NoError(t, err)
	assert.Len(t, rebuilt.Vertices, 8)
	assert.Len(t, rebuilt.Indices, 36)
	assert.Equal(t, sortedTriangles(cube), sortedTriangles(rebuilt))

	again, err := mash.FromTriangles[mash.Vector, uint32](rebuilt.Triangles())
	require.NoError(t, err)
	assert.Equal(t, rebuilt, again)
}

func TestCollectRoundTripWithDuplicates(t *testing.T) {
	// a mesh listing every corner once per triangle
	cube := build.UnitCube[mash.Vector, uint16](mash.Vector.Position)
	flat := mash.NewTriangularMesh[mash.Vector, uint16]()
	for tr := range cube.Triangles() {
		for _, v := range tr.Vertices {
			flat.Indices = append(flat.Indices, uint16(len(flat.Vertices)))
			flat.Vertices = append(flat.Vertices, v)
		}
	}
	require.Len(t, flat.Vertices, 36)

	ms, err := mash.FromTriangles[mash.Vector, uint16](flat.Triangles())
	require.NoError(t, err)
	assert.Len(t, ms.Vertices, 8)
	assert.Equal(t, sortedTriangles(flat), sortedTriangles(ms))
	assert.True(t, slices.IsSortedFunc(ms.Vertices, mash.Vector.Compare))
}

func TestCollectIndexTooSmall(t *testing.T) {
	var input []mash.Triangle[mash.Vector]
	for i := range 86 {
		x := float32(3 * i)
		input = append(input, tri(mash.Vec3(x, 0, 0), mash.Vec3(x+1, 0, 0), mash.Vec3(x+2, 0, 0)))
	}
	_, err := mash.CollectTriangles[mash.Vector, uint8](input)
	var tse *mash.IndexTooSmallError
	require.True(t, errors.As(err, &tse))
	assert.Equal(t, uint64(255), tse.Index)
	assert.Equal(t, uint8(8), tse.BitsAvailable)

	ms, err := mash.CollectTriangles[mash.Vector, uint16](input)
	require.NoError(t, err)
	assert.Len(t, ms.Vertices, 258)
}

func TestCollectNaN(t *testing.T) {
	nan := math32.NaN()
	n := mash.Vec3(nan, 0, 0)
	o := mash.Vec3(0, 0, 0)
	x := mash.Vec3(1, 0, 0)
	ms, err := mash.CollectTriangles[mash.Vector, uint8]([]mash.Triangle[mash.Vector]{
		tri(o, n, x),
		tri(n, x, o),
	})
	require.NoError(t, err)
	require.Len(t, ms.Vertices, 3)
	assert.True(t, ms.Vertices[0].IsNaN())
	assert.Equal(t, []uint8{1, 0, 2, 0, 2, 1}, ms.Indices)
}

func TestCollectEmpty(t *testing.T) {
	ms, err := mash.CollectTriangles[mash.Vector, uint8](nil)
	require.NoError(t, err)
	assert.Empty(t, ms.Vertices)
	assert.Empty(t, ms.Indices)
	assert.True(t, ms.Bounds().IsEmpty())
}

func TestClone(t *testing.T) {
	cube := build.UnitCube[mash.Vector, uint32](mash.Vector.Position)
	cp := cube.Clone()
	assert.Equal(t, cube, cp)

	cp.Vertices[0] = mash.Vec3(9, 9, 9)
	cp.Indices[0] = 5
	assert.Equal(t, mash.Vec3(0.5, -0.5, -0.5), cube.Vertices[0])
	assert.Equal(t, uint32(1), cube.Indices[0])
}

func TestBoundsAndString(t *testing.T) {
	cube := build.Cube[mash.Vector, uint32](2, mash.Vector.Position)
	bb := cube.Bounds()
	assert.Equal(t, mash.Vec3(-1, -1, -1), bb.Min)
	assert.Equal(t, mash.Vec3(1, 1, 1), bb.Max)
	assert.Equal(t, mash.Vector{}, bb.Center())
	assert.Equal(t, "TriangularMesh{vertices: 8, indices: 36}", cube.String())
	assert.Equal(t, "Model{mesh: TriangularMesh{vertices: 8, indices: 36}}", mash.NewModelFromMesh(cube).String())
}
