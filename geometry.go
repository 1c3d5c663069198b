// Copyright (c) 2024, The Mash Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mash

import (
	"cmp"
	"fmt"

	"github.com/chewxy/math32"
)

// Vector is a 3-dimensional vector, used for positions, directions
// and texture coordinates. A Vector is itself the simplest [Vertex].
type Vector struct {
	X float32
	Y float32
	Z float32
}

// Vec3 returns a new [Vector] with the given x, y and z components.
func Vec3(x, y, z float32) Vector {
	return Vector{x, y, z}
}

// Position returns the vector itself, which makes Vector a [Vertex].
func (v Vector) Position() Vector {
	return v
}

func (v Vector) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}

// Compare returns -1, 0 or +1 depending on whether v sorts before,
// equal to or after o. Components are compared in X, Y, Z order with
// [cmp.Compare], so the order is total: a NaN component sorts before
// any number and is equal to another NaN.
func (v Vector) Compare(o Vector) int {
	if c := cmp.Compare(v.X, o.X); c != 0 {
		return c
	}
	if c := cmp.Compare(v.Y, o.Y); c != 0 {
		return c
	}
	return cmp.Compare(v.Z, o.Z)
}

// Add returns the vector sum of v and o.
func (v Vector) Add(o Vector) Vector {
	return Vector{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v minus o.
func (v Vector) Sub(o Vector) Vector {
	return Vector{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// MulScalar returns v with each component multiplied by s.
func (v Vector) MulScalar(s float32) Vector {
	return Vector{v.X * s, v.Y * s, v.Z * s}
}

// Dot returns the dot product of v and o.
func (v Vector) Dot(o Vector) float32 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns the cross product of v and o.
func (v Vector) Cross(o Vector) Vector {
	return Vector{v.Y*o.Z - v.Z*o.Y, v.Z*o.X - v.X*o.Z, v.X*o.Y - v.Y*o.X}
}

// LengthSquared returns the squared length of v.
func (v Vector) LengthSquared() float32 {
	return v.Dot(v)
}

// Length returns the length of v.
func (v Vector) Length() float32 {
	return math32.Sqrt(v.LengthSquared())
}

// Min returns the component-wise minimum of v and o.
func (v Vector) Min(o Vector) Vector {
	return Vector{min(v.X, o.X), min(v.Y, o.Y), min(v.Z, o.Z)}
}

// Max returns the component-wise maximum of v and o.
func (v Vector) Max(o Vector) Vector {
	return Vector{max(v.X, o.X), max(v.Y, o.Y), max(v.Z, o.Z)}
}

// IsNaN returns true if any component of v is NaN.
func (v Vector) IsNaN() bool {
	return math32.IsNaN(v.X) || math32.IsNaN(v.Y) || math32.IsNaN(v.Z)
}

// Normal returns the unit normal of the triangle a, b, c, following
// counter-clockwise winding. It returns the zero vector for degenerate
// triangles.
func Normal(a, b, c Vector) Vector {
	nv := b.Sub(a).Cross(c.Sub(a))
	lenSq := nv.LengthSquared()
	if lenSq > 0 {
		return nv.MulScalar(1 / math32.Sqrt(lenSq))
	}
	return Vector{}
}

// Color is an RGB color with float32 components, typically in
// the range 0 to 1.
type Color struct {
	R float32
	G float32
	B float32
}

func (c Color) String() string {
	return fmt.Sprintf("rgb(%g, %g, %g)", c.R, c.G, c.B)
}

// Compare returns -1, 0 or +1 depending on whether c sorts before,
// equal to or after o, comparing R, G, B in order.
func (c Color) Compare(o Color) int {
	if r := cmp.Compare(c.R, o.R); r != 0 {
		return r
	}
	if r := cmp.Compare(c.G, o.G); r != 0 {
		return r
	}
	return cmp.Compare(c.B, o.B)
}

// Vertex is the capability required of mesh vertex types.
// Callers define richer vertex types that carry a position plus
// arbitrary attributes (normals, texture coordinates, colors).
//
// Compare defines a total order over vertex values. It is used to
// bring equal vertices together when merging duplicates, so it
// must return 0 exactly when two vertices are equal, and it need not
// have any geometric meaning.
type Vertex[V any] interface {
	// Position returns the position of the vertex.
	Position() Vector

	// Compare returns -1, 0 or +1 depending on whether the
	// vertex sorts before, equal to or after other.
	Compare(other V) int
}

// Triangle is three vertices. Triangles are produced by iterating
// over a [TriangularMesh] and carry no index information.
type Triangle[V Vertex[V]] struct {
	Vertices [3]V
}

// NewTriangle returns a new [Triangle] with the given vertices.
func NewTriangle[V Vertex[V]](a, b, c V) Triangle[V] {
	return Triangle[V]{Vertices: [3]V{a, b, c}}
}

// Normal returns the unit normal of the triangle, computed from
// the vertex positions.
func (t Triangle[V]) Normal() Vector {
	return Normal(t.Vertices[0].Position(), t.Vertices[1].Position(), t.Vertices[2].Position())
}

// Compare orders triangles lexicographically by their vertices,
// in vertex order.
func (t Triangle[V]) Compare(o Triangle[V]) int {
	for i := range t.Vertices {
		if c := t.Vertices[i].Compare(o.Vertices[i]); c != 0 {
			return c
		}
	}
	return 0
}
