// Copyright (c) 2024, The Mash Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mash

// RawMesh is the mesh data produced by a [Builder], using the
// source format's own vertex type N and absolute uint64 indices
// into Vertices. Len(Indices) must be a multiple of 3.
type RawMesh[N any] struct {
	Vertices []N
	Indices  []uint64
}

// Builder is implemented by source formats that models can be
// built from. N is the format's native vertex type; [NewModel]
// converts it into any caller vertex type, so a format never needs
// to know about the vertex layouts it is used with.
type Builder[N any] interface {
	// BuildMesh returns the mesh data of the source.
	BuildMesh() (*RawMesh[N], error)
}

// NewModel builds a model out of the given source, converting each
// native vertex with conv and checking that every index fits in the
// index type I. An [*IndexTooSmallError] is returned if one does not,
// and any error from the source is returned as is.
func NewModel[V Vertex[V], I Index, N any](b Builder[N], conv func(N) V) (*Model[V, I], error) {
	raw, err := b.BuildMesh()
	if err != nil {
		return nil, err
	}
	md := &Model[V, I]{}
	md.Mesh.Vertices = make([]V, len(raw.Vertices))
	for i, nv := range raw.Vertices {
		md.Mesh.Vertices[i] = conv(nv)
	}
	md.Mesh.Indices = make([]I, len(raw.Indices))
	for i, ri := range raw.Indices {
		idx, err := IndexFrom[I](ri)
		if err != nil {
			return nil, err
		}
		md.Mesh.Indices[i] = idx
	}
	return md, nil
}
