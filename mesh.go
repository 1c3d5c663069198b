// Copyright (c) 2024, The Mash Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mash

import (
	"fmt"
	"iter"
	"slices"

	"github.com/dylanmckay/mash/base/errors"
	"github.com/jinzhu/copier"
)

// TriangularMesh is an indexed triangle mesh. Each index refers to the
// vertex at that position in Vertices, and each run of three indices
// forms one triangle, in list order.
//
// Every index must be less than len(Vertices), and len(Indices) must be
// a multiple of 3. These hold for any mesh built by this package or by
// a correct [Builder]; violating them is a programming error, and
// [TriangularMesh.Triangles] panics when it reaches the bad index.
type TriangularMesh[V Vertex[V], I Index] struct {
	// Vertices is the vertex list.
	Vertices []V

	// Indices is the index list.
	Indices []I
}

// NewTriangularMesh returns a new empty mesh.
func NewTriangularMesh[V Vertex[V], I Index]() *TriangularMesh[V, I] {
	return &TriangularMesh[V, I]{}
}

// MeshSize returns the number of vertices and indices in the mesh.
func (ms *TriangularMesh[V, I]) MeshSize() (numVertex, numIndex int) {
	return len(ms.Vertices), len(ms.Indices)
}

// TriangleCount returns the number of complete triangles in the index list.
func (ms *TriangularMesh[V, I]) TriangleCount() int {
	return len(ms.Indices) / 3
}

// Triangles returns the triangles of the mesh as a lazy sequence.
// Triangle k is made of the vertices referenced by indices 3k, 3k+1
// and 3k+2. The sequence can be iterated any number of times and never
// modifies the mesh. It panics if the index list ends with an incomplete
// triangle or refers to a vertex that does not exist.
func (ms *TriangularMesh[V, I]) Triangles() iter.Seq[Triangle[V]] {
	return func(yield func(Triangle[V]) bool) {
		n := len(ms.Indices)
		for i := 0; i < n; i += 3 {
			if i+3 > n {
				panic(fmt.Sprintf("mash: index list length %d is not a multiple of 3", n))
			}
			tri := Triangle[V]{Vertices: [3]V{ms.vertex(ms.Indices[i]), ms.vertex(ms.Indices[i+1]), ms.vertex(ms.Indices[i+2])}}
			if !yield(tri) {
				return
			}
		}
	}
}

func (ms *TriangularMesh[V, I]) vertex(idx I) V {
	i := uint64(idx)
	if i >= uint64(len(ms.Vertices)) {
		panic(fmt.Sprintf("mash: index %d out of range for %d vertices", i, len(ms.Vertices)))
	}
	return ms.Vertices[i]
}

// Clone returns a deep copy of the mesh, including anything
// referenced by pointers inside the vertices.
func (ms *TriangularMesh[V, I]) Clone() *TriangularMesh[V, I] {
	cp := &TriangularMesh[V, I]{}
	errors.Log(copier.CopyWithOption(cp, ms, copier.Option{DeepCopy: true}))
	return cp
}

// Bounds returns the axis-aligned bounding box of the vertex positions.
// The box is empty if the mesh has no vertices.
func (ms *TriangularMesh[V, I]) Bounds() Box {
	bb := EmptyBox()
	for _, v := range ms.Vertices {
		bb.ExpandByPoint(v.Position())
	}
	return bb
}

// String returns a summary of the mesh sizes; the vertex data
// itself is not printed.
func (ms *TriangularMesh[V, I]) String() string {
	return fmt.Sprintf("TriangularMesh{vertices: %d, indices: %d}", len(ms.Vertices), len(ms.Indices))
}

// FromTriangles builds a mesh out of the given sequence of triangles,
// merging vertices that are equal according to [Vertex.Compare].
// See [CollectTriangles].
func FromTriangles[V Vertex[V], I Index](seq iter.Seq[Triangle[V]]) (*TriangularMesh[V, I], error) {
	return CollectTriangles[V, I](slices.Collect(seq))
}

// CollectTriangles builds a mesh out of the given triangles. The vertex
// list of the result holds exactly one copy of each distinct vertex,
// sorted in ascending [Vertex.Compare] order. The index list reproduces
// the triangles in order, and the vertices of each triangle keep their
// order, so winding is preserved. Vertices are merged only when exactly
// equal; there is no tolerance.
//
// An [*IndexTooSmallError] is returned if the number of distinct
// vertices does not fit in the index type I.
func CollectTriangles[V Vertex[V], I Index](tris []Triangle[V]) (*TriangularMesh[V, I], error) {
	vertices := make([]V, 0, 3*len(tris))
	for _, tri := range tris {
		vertices = append(vertices, tri.Vertices[:]...)
	}
	slices.SortFunc(vertices, compareVertex[V])
	vertices = slices.CompactFunc(vertices, equalVertex[V])

	indices := make([]I, 0, 3*len(tris))
	for _, tri := range tris {
		for _, v := range tri.Vertices {
			pos, found := slices.BinarySearchFunc(vertices, v, compareVertex[V])
			if !found {
				panic("mash: vertex Compare is not a consistent total order")
			}
			idx, err := IndexFrom[I](uint64(pos))
			if err != nil {
				return nil, err
			}
			indices = append(indices, idx)
		}
	}
	return &TriangularMesh[V, I]{Vertices: slices.Clip(vertices), Indices: indices}, nil
}

func compareVertex[V Vertex[V]](a, b V) int {
	return a.Compare(b)
}

func equalVertex[V Vertex[V]](a, b V) bool {
	return a.Compare(b) == 0
}
