// Copyright (c) 2024, The Mash Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package mash provides a format-independent representation of 3D
triangular meshes, parameterized over a caller-chosen vertex type
and index integer width.

A [TriangularMesh] holds a flat list of vertices and a flat list of
indices into it, in which each run of three indices forms one triangle.
A [Model] wraps a mesh. Models are built from source formats through
the [Builder] contract; the load/wavefront package provides a Builder
for Wavefront OBJ files:

	scene, err := wavefront.FromPath("world.obj")
	if err != nil {
		return err
	}
	model, err := mash.NewModel[mash.Vector, uint32](scene, wavefront.Vertex.Position)

Any vertex type that implements [Vertex] can be used. Meshes can be
iterated as a sequence of [Triangle] values with
[TriangularMesh.Triangles], and any sequence of triangles can be
turned back into a mesh with [FromTriangles], which merges exactly
equal vertices.
*/
package mash
