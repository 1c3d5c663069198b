// Copyright (c) 2024, The Mash Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/dylanmckay/mash"
	"github.com/dylanmckay/mash/base/errors"
	"github.com/dylanmckay/mash/load/wavefront"
)

// meshStats are the sizes and bounds of a mesh.
type meshStats struct {
	Vertices  int
	Indices   int
	Triangles int
	Bounds    mash.Box
}

func statsOf[I mash.Index](ms *mash.TriangularMesh[mash.Vector, I]) meshStats {
	return meshStats{
		Vertices:  len(ms.Vertices),
		Indices:   len(ms.Indices),
		Triangles: ms.TriangleCount(),
		Bounds:    ms.Bounds(),
	}
}

func (st meshStats) print(w io.Writer) {
	fmt.Fprintf(w, "vertices:  %d\n", st.Vertices)
	fmt.Fprintf(w, "indices:   %d\n", st.Indices)
	fmt.Fprintf(w, "triangles: %d\n", st.Triangles)
	if st.Bounds.IsEmpty() {
		fmt.Fprintln(w, "bounds:    empty")
		return
	}
	fmt.Fprintf(w, "bounds:    %v %v\n", st.Bounds.Min, st.Bounds.Max)
}

// objectStats builds the given object with the given index width.
func objectStats(ob *wavefront.Object, bits int) (meshStats, error) {
	st, _, err := buildStats(ob, bits, 1, false)
	return st, err
}

// sceneStats builds the whole scene with the given index width. If dedup
// is set, every n-th triangle of the result is rebuilt into a mesh with
// merged vertices, whose stats are returned second.
func sceneStats(wf *wavefront.Wavefront, bits, every int, dedup bool) (meshStats, meshStats, error) {
	return buildStats(wf, bits, every, dedup)
}

func buildStats(src mash.Builder[wavefront.Vertex], bits, every int, dedup bool) (meshStats, meshStats, error) {
	switch bits {
	case 8:
		return build[uint8](src, every, dedup)
	case 16:
		return build[uint16](src, every, dedup)
	case 32:
		return build[uint32](src, every, dedup)
	case 64:
		return build[uint64](src, every, dedup)
	}
	return meshStats{}, meshStats{}, fmt.Errorf("invalid index bits %d", bits)
}

func build[I mash.Index](src mash.Builder[wavefront.Vertex], every int, dedup bool) (meshStats, meshStats, error) {
	md, err := mash.NewModel[mash.Vector, I](src, wavefront.Vertex.Position)
	if err != nil {
		return meshStats{}, meshStats{}, err
	}
	before := statsOf(&md.Mesh)
	if !dedup {
		return before, before, nil
	}
	var kept []mash.Triangle[mash.Vector]
	i := 0
	for tri := range md.Mesh.Triangles() {
		if i%every == 0 {
			kept = append(kept, tri)
		}
		i++
	}
	ms, err := mash.CollectTriangles[mash.Vector, I](kept)
	if err != nil {
		return before, meshStats{}, err
	}
	after := statsOf(ms)
	slog.Info("deduplicated", "vertices", before.Vertices, "merged", after.Vertices, "triangles", after.Triangles)
	return before, after, nil
}

// indexHint adds a hint to widen the indices to an [mash.IndexTooSmallError].
func indexHint(err error) error {
	var ie *mash.IndexTooSmallError
	if errors.As(err, &ie) {
		return fmt.Errorf("%w (use a --index-bits wider than %d)", err, ie.BitsAvailable)
	}
	return err
}
