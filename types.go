// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package r2voronoi provides the planar value types and the construction helpers used to
// build a Voronoi diagram as the dual of a Delaunay triangulation.

package r2voronoi

import (
	"fmt"

	"github.com/golang/geo/r2"
)

// Point is a point in the plane. Points compare with == by exact coordinates.
type Point = r2.Point

// Line is an ordered pair of points.
type Line struct {
	Point1, Point2 Point
}

// Equal reports whether l and o have the same endpoints in the same order.
func (l Line) Equal(o Line) bool {
	return l.Point1 == o.Point1 && l.Point2 == o.Point2
}

// EqualUndirected reports whether l and o join the same two points, in either order.
func (l Line) EqualUndirected(o Line) bool {
	return l.Equal(o) || (l.Point1 == o.Point2 && l.Point2 == o.Point1)
}

// Length returns the Euclidean length of l.
func (l Line) Length() float64 {
	return l.Point2.Sub(l.Point1).Norm()
}

func (l Line) String() string {
	return fmt.Sprintf("[%v, %v]", l.Point1, l.Point2)
}

// Triangle is an ordered triple of points.
type Triangle struct {
	Point1, Point2, Point3 Point
}

// Vertices returns the vertices of t in order.
func (t Triangle) Vertices() [3]Point {
	return [3]Point{t.Point1, t.Point2, t.Point3}
}

// Edges returns the edges of t in the fixed order (P1,P2), (P2,P3), (P3,P1).
func (t Triangle) Edges() [3]Line {
	return [3]Line{
		{t.Point1, t.Point2},
		{t.Point2, t.Point3},
		{t.Point3, t.Point1},
	}
}

// Equal reports whether t and o have the same vertices in the same order.
func (t Triangle) Equal(o Triangle) bool {
	return t.Point1 == o.Point1 && t.Point2 == o.Point2 && t.Point3 == o.Point3
}

// HasDuplicateVertex reports whether any two vertices of t are equal.
func (t Triangle) HasDuplicateVertex() bool {
	return t.Point1 == t.Point2 || t.Point1 == t.Point3 || t.Point2 == t.Point3
}

func (t Triangle) String() string {
	return fmt.Sprintf("[%v, %v, %v]", t.Point1, t.Point2, t.Point3)
}

// Circle is a circle given by its center and a non-negative radius.
type Circle struct {
	Center Point
	Radius float64
}

// Contains reports whether p lies inside or on c. Distances are compared unsquared, so a
// point whose distance to the center was taken as the radius is always on c.
func (c Circle) Contains(p Point) bool {
	return p.Sub(c.Center).Norm() <= c.Radius
}
