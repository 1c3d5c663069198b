// Copyright (c) 2024, The Mash Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mash

import "fmt"

// Model is a 3D model. It currently holds only its mesh.
type Model[V Vertex[V], I Index] struct {
	// Mesh is the mesh that makes up the model.
	Mesh TriangularMesh[V, I]
}

// EmptyModel returns a new model with an empty mesh.
func EmptyModel[V Vertex[V], I Index]() *Model[V, I] {
	return &Model[V, I]{}
}

// NewModelFromMesh returns a new model holding the given mesh.
func NewModelFromMesh[V Vertex[V], I Index](ms *TriangularMesh[V, I]) *Model[V, I] {
	return &Model[V, I]{Mesh: *ms}
}

func (md *Model[V, I]) String() string {
	return fmt.Sprintf("Model{mesh: %s}", md.Mesh.String())
}
