// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package r2delaunay implements the geometric predicates an incremental planar Delaunay
// triangulator is built on: the enclosing super triangle, circumcircles and the
// in-circle test, and triangle adjacency.
//
// All functions are pure and safe for concurrent use.

package r2delaunay

import (
	"errors"
	"fmt"

	"github.com/2dChan/r2voronoi"
	"github.com/golang/geo/r2"
)

const (
	defaultEps = 1e-6

	// Lower bound for the super triangle span when all points coincide.
	minSuperTriangleSpan = 1.0
)

var (
	ErrEmptyInput         = errors.New("r2delaunay: empty input")
	ErrDegenerateTriangle = errors.New("r2delaunay: degenerate triangle")
	ErrNonFiniteInput     = errors.New("r2delaunay: non-finite input")
	ErrInvalidOption      = errors.New("r2delaunay: invalid option")
)

type CircumcircleOptions struct {
	// Eps is the absolute tolerance below which the Y difference of an edge's endpoints
	// makes the edge horizontal.
	Eps float64
}

type CircumcircleOption func(*CircumcircleOptions) error

func WithEps(eps float64) CircumcircleOption {
	return func(o *CircumcircleOptions) error {
		if !(eps > 0) {
			return fmt.Errorf("WithEps: eps must be positive, got %v: %w", eps, ErrInvalidOption)
		}
		o.Eps = eps
		return nil
	}
}

func newCircumcircleOptions(setters []CircumcircleOption) (CircumcircleOptions, error) {
	opts := CircumcircleOptions{
		Eps: defaultEps,
	}
	for _, set := range setters {
		if err := set(&opts); err != nil {
			return CircumcircleOptions{}, err
		}
	}
	return opts, nil
}

// FindSuperTriangle returns a triangle strictly enclosing every point in points.
// The vertex order carries no winding guarantee.
//
// It returns an error wrapping ErrNonFiniteInput if a point has a NaN or infinite
// coordinate, or if the points spread too far for the triangle to be representable.
func FindSuperTriangle(points []r2voronoi.Point) (r2voronoi.Triangle, error) {
	if len(points) == 0 {
		return r2voronoi.Triangle{}, fmt.Errorf("FindSuperTriangle: %w", ErrEmptyInput)
	}
	for i, p := range points {
		if !isFinite(p.X) || !isFinite(p.Y) {
			return r2voronoi.Triangle{}, fmt.Errorf("FindSuperTriangle: points[%d] = %v: %w", i, p, ErrNonFiniteInput)
		}
	}

	bounds := r2.RectFromPoints(points...)
	size := bounds.Size()
	mid := bounds.Center()

	dMax := max(size.X, size.Y)
	if dMax == 0 {
		dMax = minSuperTriangleSpan
	}

	st := r2voronoi.Triangle{
		Point1: r2voronoi.Point{X: mid.X - 2*dMax, Y: mid.Y - dMax},
		Point2: r2voronoi.Point{X: mid.X + 2*dMax, Y: mid.Y - dMax},
		Point3: r2voronoi.Point{X: mid.X, Y: mid.Y + 2*dMax},
	}
	for _, v := range st.Vertices() {
		if !isFinite(v.X) || !isFinite(v.Y) {
			return r2voronoi.Triangle{}, fmt.Errorf("FindSuperTriangle: span %v overflows: %w", dMax, ErrNonFiniteInput)
		}
	}
	return st, nil
}
