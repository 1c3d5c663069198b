// Copyright (c) 2024, The Mash Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wavefront

import (
	"fmt"

	"github.com/dylanmckay/mash"
	"github.com/dylanmckay/mash/load/obj"
)

// Object is a named object of a [Wavefront] scene. An object that
// uses several materials appears once per material, with the same name.
type Object struct {
	wf    *Wavefront
	model *obj.Model
}

var _ mash.Builder[Vertex] = (*Object)(nil)

// Name returns the name of the object.
func (ob *Object) Name() string {
	return ob.model.Name
}

// Material returns the material of the object, if it has one.
func (ob *Object) Material() (*Material, bool) {
	id := ob.model.Mesh.MaterialID
	if id < 0 || id >= len(ob.wf.materials) {
		return nil, false
	}
	return &Material{mat: &ob.wf.materials[id]}, true
}

// BuildMesh returns the mesh of the object alone, with indices
// starting at 0 for its first vertex.
func (ob *Object) BuildMesh() (*mash.RawMesh[Vertex], error) {
	ms := &ob.model.Mesh
	raw := &mash.RawMesh[Vertex]{
		Vertices: appendVertices(make([]Vertex, 0, ms.NumVertex()), ms),
		Indices:  make([]uint64, len(ms.Indices)),
	}
	for i, idx := range ms.Indices {
		raw.Indices[i] = uint64(idx)
	}
	return raw, nil
}

func (ob *Object) String() string {
	return fmt.Sprintf("Object{name: %q, vertices: %d, indices: %d}", ob.model.Name, ob.model.Mesh.NumVertex(), len(ob.model.Mesh.Indices))
}
