// Copyright (c) 2024, The Mash Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mash

import (
	"testing"

	"github.com/dylanmckay/mash/base/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pointCloud is a minimal source format whose native vertex is [3]float32.
type pointCloud struct {
	points  [][3]float32
	indices []uint64
	err     error
}

func (pc *pointCloud) BuildMesh() (*RawMesh[[3]float32], error) {
	if pc.err != nil {
		return nil, pc.err
	}
	return &RawMesh[[3]float32]{Vertices: pc.points, Indices: pc.indices}, nil
}

func pointToVector(p [3]float32) Vector {
	return Vec3(p[0], p[1], p[2])
}

func TestNewModel(t *testing.T) {
	src := &pointCloud{
		points:  [][3]float32{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
		indices: []uint64{0, 1, 2, 2, 1, 0},
	}
	md, err := NewModel[Vector, uint8](src, pointToVector)
	require.NoError(t, err)
	assert.Equal(t, []Vector{Vec3(0, 0, 0), Vec3(1, 0, 0), Vec3(0, 1, 0)}, md.Mesh.Vertices)
	assert.Equal(t, []uint8{0, 1, 2, 2, 1, 0}, md.Mesh.Indices)
	assert.Equal(t, 2, md.Mesh.TriangleCount())
}

func TestNewModelIndexTooSmall(t *testing.T) {
	src := &pointCloud{indices: []uint64{0, 1, 300}}
	_, err := NewModel[Vector, uint8](src, pointToVector)
	var tse *IndexTooSmallError
	require.True(t, errors.As(err, &tse))
	assert.Equal(t, uint64(300), tse.Index)
	assert.Equal(t, uint8(8), tse.BitsAvailable)

	_, err = NewModel[Vector, uint16](src, pointToVector)
	assert.NoError(t, err)
}

func TestNewModelSourceError(t *testing.T) {
	bad := errors.New("read failed")
	_, err := NewModel[Vector, uint32](&pointCloud{err: bad}, pointToVector)
	assert.Equal(t, bad, err)
}

func TestEmptyModel(t *testing.T) {
	md := EmptyModel[Vector, uint32]()
	assert.Empty(t, md.Mesh.Vertices)
	assert.Equal(t, 0, md.Mesh.TriangleCount())
}
