// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package r2voronoi

import (
	"math"
)

// Midpoints returns the midpoint of every edge of t, in the order of t.Edges().
func Midpoints(t Triangle) [3]Point {
	var mps [3]Point
	for i, e := range t.Edges() {
		mps[i] = Midpoint(e)
	}
	return mps
}

// Midpoint returns the midpoint of l.
func Midpoint(l Line) Point {
	return Point{
		X: mean2(l.Point1.X, l.Point2.X),
		Y: mean2(l.Point1.Y, l.Point2.Y),
	}
}

// PerpendicularBisector returns a ray of the perpendicular bisector of l. It starts at the
// midpoint of l and points along (dy, -dx), the direction of l turned clockwise, with the
// length of l. Use ReverseRay for the other half.
func PerpendicularBisector(l Line) Line {
	mp := Midpoint(l)
	d := l.Point2.Sub(l.Point1)
	return Line{
		Point1: mp,
		Point2: mp.Add(d.Ortho().Mul(-1)),
	}
}

// ReverseRay reflects l.Point2 through l.Point1.
func ReverseRay(l Line) Line {
	return Line{
		Point1: l.Point1,
		Point2: l.Point1.Sub(l.Point2.Sub(l.Point1)),
	}
}

// Centroid returns the centroid of t with both coordinates rounded to the nearest integer.
// Halves round to even, so 0.5 snaps to 0 and 1.5 snaps to 2.
func Centroid(t Triangle) Point {
	return Point{
		X: math.RoundToEven(mean3(t.Point1.X, t.Point2.X, t.Point3.X)),
		Y: math.RoundToEven(mean3(t.Point1.Y, t.Point2.Y, t.Point3.Y)),
	}
}

// Centroids maps Centroid over ts, preserving order.
func Centroids(ts []Triangle) []Point {
	ps := make([]Point, len(ts))
	for i, t := range ts {
		ps[i] = Centroid(t)
	}
	return ps
}

// HasDuplicateVertex reports whether any two vertices of t are equal.
func HasDuplicateVertex(t Triangle) bool {
	return t.HasDuplicateVertex()
}

// mean2 and mean3 only scale before summing when the plain sum overflows, so results
// in the normal range are bit-identical to (a+b)/2 and (a+b+c)/3.
func mean2(a, b float64) float64 {
	if m := (a + b) / 2; !math.IsInf(m, 0) {
		return m
	}
	return a/2 + b/2
}

func mean3(a, b, c float64) float64 {
	if m := (a + b + c) / 3; !math.IsInf(m, 0) {
		return m
	}
	return a/3 + b/3 + c/3
}
