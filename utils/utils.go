// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package utils provides utility functions for generating and sampling planar points.

package utils

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/2dChan/r2voronoi"
	"github.com/golang/geo/r2"
)

var ErrInsufficientPoints = errors.New("utils: fewer than two distinct points")

// GenerateRandomPoints generates cnt points uniformly distributed in bounds.
// The seed parameter ensures reproducibility.
func GenerateRandomPoints(cnt int, seed int64, bounds r2.Rect) []r2voronoi.Point {
	//nolint:gosec
	random := rand.New(rand.NewSource(seed))
	points := make([]r2voronoi.Point, cnt)

	for i := range cnt {
		points[i] = r2voronoi.Point{
			X: bounds.X.Lo + random.Float64()*bounds.X.Length(),
			Y: bounds.Y.Lo + random.Float64()*bounds.Y.Length(),
		}
	}

	return points
}

// RandomLine returns a line joining two distinct points chosen uniformly at random from points.
// The seed parameter ensures reproducibility.
func RandomLine(points []r2voronoi.Point, seed int64) (r2voronoi.Line, error) {
	//nolint:gosec
	return RandomLineFrom(points, rand.New(rand.NewSource(seed)))
}

// RandomLineFrom is like RandomLine but draws from random, which must not be shared
// between goroutines.
//
// The second point is redrawn until it differs from the first, so repeated points in
// the input never produce a zero-length line.
func RandomLineFrom(points []r2voronoi.Point, random *rand.Rand) (r2voronoi.Line, error) {
	if !hasDistinctPair(points) {
		return r2voronoi.Line{}, fmt.Errorf("RandomLine: %d points: %w", len(points), ErrInsufficientPoints)
	}

	n := len(points)
	i := random.Intn(n)
	j := random.Intn(n)
	for j == i || points[j] == points[i] {
		j = random.Intn(n)
	}

	return r2voronoi.Line{Point1: points[i], Point2: points[j]}, nil
}

func hasDistinctPair(points []r2voronoi.Point) bool {
	for _, p := range points {
		if p != points[0] {
			return true
		}
	}
	return false
}
