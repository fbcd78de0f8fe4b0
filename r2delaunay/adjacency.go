// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package r2delaunay

import (
	"github.com/2dChan/r2voronoi"
)

// SharesVertex reports whether t1 and t2 have at least one equal vertex.
func SharesVertex(t1, t2 r2voronoi.Triangle) bool {
	for _, v1 := range t1.Vertices() {
		for _, v2 := range t2.Vertices() {
			if v1 == v2 {
				return true
			}
		}
	}
	return false
}

// SharesEdge reports whether some edge of t1 and some edge of t2 join the same two points,
// in either direction.
func SharesEdge(t1, t2 r2voronoi.Triangle) bool {
	_, ok := SharedEdge(t1, t2)
	return ok
}

// SharedEdge returns the first edge of t1, in t1.Edges() order, that is also an edge of t2.
func SharedEdge(t1, t2 r2voronoi.Triangle) (r2voronoi.Line, bool) {
	edges2 := t2.Edges()
	for _, e1 := range t1.Edges() {
		for _, e2 := range edges2 {
			if e1.EqualUndirected(e2) {
				return e1, true
			}
		}
	}
	return r2voronoi.Line{}, false
}
