// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package r2delaunay

import (
	"fmt"
	"math"

	"github.com/2dChan/r2voronoi"
)

// FindCircumcircle returns the circle through the three vertices of t. The center is the
// intersection of the perpendicular bisectors of (P1,P2) and (P2,P3); an edge whose endpoints
// differ in Y by less than Eps is treated as horizontal. The radius is measured to P2.
//
// It returns an error wrapping ErrDegenerateTriangle if t has a repeated vertex, its vertices
// are collinear, or the bisector solve does not produce a finite center.
func FindCircumcircle(t r2voronoi.Triangle, setters ...CircumcircleOption) (r2voronoi.Circle, error) {
	opts, err := newCircumcircleOptions(setters)
	if err != nil {
		return r2voronoi.Circle{}, fmt.Errorf("FindCircumcircle: %w", err)
	}

	center, err := circumcenter(t, opts.Eps)
	if err != nil {
		return r2voronoi.Circle{}, fmt.Errorf("FindCircumcircle: %w", err)
	}

	return r2voronoi.Circle{
		Center: center,
		Radius: t.Point2.Sub(center).Norm(),
	}, nil
}

// IsInCircumcircle reports whether p lies inside or on the circumcircle of t.
func IsInCircumcircle(p r2voronoi.Point, t r2voronoi.Triangle, setters ...CircumcircleOption) (bool, error) {
	opts, err := newCircumcircleOptions(setters)
	if err != nil {
		return false, fmt.Errorf("IsInCircumcircle: %w", err)
	}

	center, err := circumcenter(t, opts.Eps)
	if err != nil {
		return false, fmt.Errorf("IsInCircumcircle: %w", err)
	}
	return inCircle(p, center, squaredDistance(t.Point2, center)), nil
}

// CircumscribedTriangle is a triangle together with its precomputed circumcircle.
// Values are immutable, so the cached circle never goes stale.
type CircumscribedTriangle struct {
	tri    r2voronoi.Triangle
	circle r2voronoi.Circle
	rsqr   float64
}

// NewCircumscribedTriangle computes the circumcircle of t once for repeated membership tests.
func NewCircumscribedTriangle(t r2voronoi.Triangle, setters ...CircumcircleOption) (CircumscribedTriangle, error) {
	c, err := FindCircumcircle(t, setters...)
	if err != nil {
		return CircumscribedTriangle{}, err
	}
	return CircumscribedTriangle{
		tri:    t,
		circle: c,
		rsqr:   squaredDistance(t.Point2, c.Center),
	}, nil
}

func (ct CircumscribedTriangle) Triangle() r2voronoi.Triangle {
	return ct.tri
}

func (ct CircumscribedTriangle) Circumcircle() r2voronoi.Circle {
	return ct.circle
}

// Contains reports whether p lies inside or on the circumcircle. It agrees with
// IsInCircumcircle for the same triangle and options.
func (ct CircumscribedTriangle) Contains(p r2voronoi.Point) bool {
	return inCircle(p, ct.circle.Center, ct.rsqr)
}

// NOTE: The boundary is inclusive; cocircular points count as inside.
func inCircle(p, center r2voronoi.Point, rsqr float64) bool {
	return squaredDistance(p, center) <= rsqr
}

func squaredDistance(a, b r2voronoi.Point) float64 {
	d := a.Sub(b)
	return d.Dot(d)
}

func circumcenter(t r2voronoi.Triangle, eps float64) (r2voronoi.Point, error) {
	p1, p2, p3 := t.Point1, t.Point2, t.Point3
	if t.HasDuplicateVertex() {
		return r2voronoi.Point{}, fmt.Errorf("repeated vertex in %v: %w", t, ErrDegenerateTriangle)
	}
	if p2.Sub(p1).Cross(p3.Sub(p1)) == 0 {
		return r2voronoi.Point{}, fmt.Errorf("collinear vertices %v: %w", t, ErrDegenerateTriangle)
	}

	// Bisector of (P1,P2) through (mx1, my1) with slope m1, likewise for (P2,P3).
	mx1, my1 := (p1.X+p2.X)/2, (p1.Y+p2.Y)/2
	mx2, my2 := (p2.X+p3.X)/2, (p2.Y+p3.Y)/2

	var c r2voronoi.Point
	switch {
	case math.Abs(p2.Y-p1.Y) < eps:
		m2 := -(p3.X - p2.X) / (p3.Y - p2.Y)
		c.X = mx1
		c.Y = m2*(c.X-mx2) + my2
	case math.Abs(p3.Y-p2.Y) < eps:
		m1 := -(p2.X - p1.X) / (p2.Y - p1.Y)
		c.X = mx2
		c.Y = m1*(c.X-mx1) + my1
	default:
		m1 := -(p2.X - p1.X) / (p2.Y - p1.Y)
		m2 := -(p3.X - p2.X) / (p3.Y - p2.Y)
		c.X = (m1*mx1 - m2*mx2 + my2 - my1) / (m1 - m2)
		c.Y = m1*(c.X-mx1) + my1
	}

	if !isFinite(c.X) || !isFinite(c.Y) {
		return r2voronoi.Point{}, fmt.Errorf("no finite circumcenter for %v: %w", t, ErrDegenerateTriangle)
	}
	return c, nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
