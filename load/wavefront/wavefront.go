// Copyright (c) 2024, The Mash Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package wavefront builds mash models from Wavefront OBJ files.
//
// A file is loaded into a [Wavefront] scene, which can be turned into
// one model as a whole, or split into its named [Object]s, each of
// which can be turned into its own model:
//
//	wf, err := wavefront.FromPath("world.obj")
//	...
//	for _, ob := range wf.Objects() {
//		md, err := mash.NewModel[mash.Vector, uint32](ob, wavefront.Vertex.Position)
//		...
//	}
package wavefront

import (
	"fmt"
	"io"
	"io/fs"
	"log/slog"

	"github.com/dylanmckay/mash"
	"github.com/dylanmckay/mash/load/obj"
)

// Wavefront is a scene loaded from an OBJ file, with the materials
// of its material libraries.
type Wavefront struct {
	models    []obj.Model
	materials []obj.Material
}

var _ mash.Builder[Vertex] = (*Wavefront)(nil)

// Vertex is the vertex type built from OBJ data. The embedded
// Vector is its position, so the method expression Vertex.Position
// converts it into a plain [mash.Vector].
type Vertex struct {
	mash.Vector

	// Normal is nil if the object has no normals.
	Normal *mash.Vector

	// TexCoord is nil if the object has no texture coordinates.
	// Z is always 0.
	TexCoord *mash.Vector
}

// FromPath loads the OBJ file at the given path, along with the
// material libraries it references, which are looked up in the
// directory of the file.
func FromPath(path string) (*Wavefront, error) {
	dec, err := obj.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("wavefront: loading %s: %w", path, err)
	}
	return newWavefront(dec, path), nil
}

// FromFS loads the OBJ file with the given name from fsys.
// See [FromPath].
func FromFS(fsys fs.FS, name string) (*Wavefront, error) {
	dec, err := obj.LoadFS(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("wavefront: loading %s: %w", name, err)
	}
	return newWavefront(dec, name), nil
}

// FromReader loads OBJ data from r, opening each material library
// it references with ml. If ml is nil, no materials are loaded.
func FromReader(r io.Reader, ml obj.MaterialLoader) (*Wavefront, error) {
	dec, err := obj.Load(r, ml)
	if err != nil {
		return nil, fmt.Errorf("wavefront: %w", err)
	}
	return newWavefront(dec, ""), nil
}

func newWavefront(dec *obj.Decoder, name string) *Wavefront {
	wf := &Wavefront{models: dec.Models, materials: dec.Materials}
	slog.Debug("wavefront: loaded", "file", name, "objects", len(wf.models), "materials", len(wf.materials))
	return wf
}

// Objects returns all of the objects in the scene, in file order.
func (wf *Wavefront) Objects() []*Object {
	obs := make([]*Object, len(wf.models))
	for i := range wf.models {
		obs[i] = &Object{wf: wf, model: &wf.models[i]}
	}
	return obs
}

// ObjectByName returns the first object with the given name.
func (wf *Wavefront) ObjectByName(name string) (*Object, bool) {
	for i := range wf.models {
		if wf.models[i].Name == name {
			return &Object{wf: wf, model: &wf.models[i]}, true
		}
	}
	return nil, false
}

// Select returns a scene holding only the objects for which keep
// returns true. The new scene shares its data with wf.
func (wf *Wavefront) Select(keep func(ob *Object) bool) *Wavefront {
	sel := &Wavefront{materials: wf.materials}
	for _, ob := range wf.Objects() {
		if keep(ob) {
			sel.models = append(sel.models, *ob.model)
		}
	}
	return sel
}

// Materials returns all of the materials of the scene.
func (wf *Wavefront) Materials() []*Material {
	mats := make([]*Material, len(wf.materials))
	for i := range wf.materials {
		mats[i] = &Material{mat: &wf.materials[i]}
	}
	return mats
}

// BuildMesh returns the mesh of the whole scene. The vertices of all
// objects are concatenated, and the indices of each object are offset
// by the number of vertices before it so that they stay correct.
func (wf *Wavefront) BuildMesh() (*mash.RawMesh[Vertex], error) {
	raw := &mash.RawMesh[Vertex]{}
	for i := range wf.models {
		ms := &wf.models[i].Mesh
		offset := uint64(len(raw.Vertices))
		for _, idx := range ms.Indices {
			raw.Indices = append(raw.Indices, offset+uint64(idx))
		}
		raw.Vertices = appendVertices(raw.Vertices, ms)
	}
	return raw, nil
}

// appendVertices appends the vertices of the given mesh to vs.
func appendVertices(vs []Vertex, ms *obj.Mesh) []Vertex {
	n := ms.NumVertex()
	for i := range n {
		v := Vertex{Vector: mash.Vec3(ms.Positions[3*i], ms.Positions[3*i+1], ms.Positions[3*i+2])}
		if len(ms.Normals) > 0 {
			nrm := mash.Vec3(ms.Normals[3*i], ms.Normals[3*i+1], ms.Normals[3*i+2])
			v.Normal = &nrm
		}
		if len(ms.TexCoords) > 0 {
			tc := mash.Vec3(ms.TexCoords[2*i], ms.TexCoords[2*i+1], 0)
			v.TexCoord = &tc
		}
		vs = append(vs, v)
	}
	return vs
}
