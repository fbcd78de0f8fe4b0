// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package r2delaunay

import (
	"errors"
	"math"
	"testing"

	"github.com/2dChan/r2voronoi"
	"github.com/2dChan/r2voronoi/utils"
	"github.com/golang/geo/r2"
	"github.com/google/go-cmp/cmp"
)

// CircumcircleOptions

func TestWithEps(t *testing.T) {
	tests := []struct {
		name    string
		eps     float64
		wantErr bool
	}{
		{"eps positive", 0.5, false},
		{"eps zero", 0, true},
		{"eps negative", -1, true},
		{"eps NaN", math.NaN(), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := &CircumcircleOptions{Eps: defaultEps}
			opt := WithEps(tt.eps)
			err := opt(opts)
			if (err != nil) != tt.wantErr {
				t.Errorf("WithEps(%v) error = %v, wantErr %v", tt.eps, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidOption) {
				t.Errorf("WithEps(%v) error = %v, want %v", tt.eps, err, ErrInvalidOption)
			}
			if err == nil && opts.Eps != tt.eps {
				t.Errorf("WithEps(%v) opts.Eps = %v, want %v", tt.eps, opts.Eps, tt.eps)
			}
			if err != nil && opts.Eps != defaultEps {
				t.Errorf("WithEps(%v) opts.Eps = %v, want unchanged %v", tt.eps, opts.Eps, defaultEps)
			}
		})
	}
}

// FindSuperTriangle

func TestFindSuperTriangle_Empty(t *testing.T) {
	for _, points := range [][]r2voronoi.Point{nil, {}} {
		if _, err := FindSuperTriangle(points); !errors.Is(err, ErrEmptyInput) {
			t.Errorf("FindSuperTriangle(%v) error = %v, want %v", points, err, ErrEmptyInput)
		}
	}
}

func TestFindSuperTriangle_NonFinite(t *testing.T) {
	tests := []struct {
		name   string
		points []r2voronoi.Point
	}{
		{"NaN x", []r2voronoi.Point{{X: 0, Y: 0}, {X: math.NaN(), Y: 1}}},
		{"NaN y", []r2voronoi.Point{{X: 0, Y: math.NaN()}}},
		{"+Inf", []r2voronoi.Point{{X: math.Inf(1), Y: 0}, {X: 1, Y: 1}}},
		{"-Inf", []r2voronoi.Point{{X: 1, Y: 1}, {X: 0, Y: math.Inf(-1)}}},
		{"span overflows", []r2voronoi.Point{{X: 0, Y: 0}, {X: 1e308, Y: 0}}},
		{"bounds overflow", []r2voronoi.Point{{X: -math.MaxFloat64, Y: 0}, {X: math.MaxFloat64, Y: 0}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FindSuperTriangle(tt.points)
			if !errors.Is(err, ErrNonFiniteInput) {
				t.Errorf("FindSuperTriangle(%v) = %v, %v, want error %v", tt.points, got, err, ErrNonFiniteInput)
			}
		})
	}
}

func TestFindSuperTriangle(t *testing.T) {
	tests := []struct {
		name   string
		points []r2voronoi.Point
		want   r2voronoi.Triangle
	}{
		{
			"square",
			[]r2voronoi.Point{{X: 0, Y: 0}, {X: 10, Y: 10}, {X: 3, Y: 7}},
			r2voronoi.Triangle{
				Point1: r2voronoi.Point{X: -15, Y: -5},
				Point2: r2voronoi.Point{X: 25, Y: -5},
				Point3: r2voronoi.Point{X: 5, Y: 25},
			},
		},
		{
			"wide",
			[]r2voronoi.Point{{X: -4, Y: 1}, {X: 4, Y: 3}},
			r2voronoi.Triangle{
				Point1: r2voronoi.Point{X: -16, Y: -6},
				Point2: r2voronoi.Point{X: 16, Y: -6},
				Point3: r2voronoi.Point{X: 0, Y: 18},
			},
		},
		{
			"single point",
			[]r2voronoi.Point{{X: 3, Y: 4}},
			r2voronoi.Triangle{
				Point1: r2voronoi.Point{X: 1, Y: 3},
				Point2: r2voronoi.Point{X: 5, Y: 3},
				Point3: r2voronoi.Point{X: 3, Y: 6},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FindSuperTriangle(tt.points)
			if err != nil {
				t.Fatalf("FindSuperTriangle(%v) error = %v, want nil", tt.points, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("FindSuperTriangle(%v) mismatch (-want +got):\n%s", tt.points, diff)
			}
		})
	}
}

func TestFindSuperTriangle_EnclosesPoints(t *testing.T) {
	p := r2voronoi.Point{X: -2.5, Y: 8}
	tests := []struct {
		name   string
		points []r2voronoi.Point
	}{
		{"single point", []r2voronoi.Point{p}},
		{"coincident points", []r2voronoi.Point{p, p, p}},
		{"horizontal", []r2voronoi.Point{{X: 0, Y: 1}, {X: 5, Y: 1}, {X: 9, Y: 1}}},
		{"vertical", []r2voronoi.Point{{X: 1, Y: 0}, {X: 1, Y: -5}}},
		{"random small", utils.GenerateRandomPoints(10, 0, testBounds)},
		{"random large", utils.GenerateRandomPoints(10000, 1, testBounds)},
		{"random tiny", utils.GenerateRandomPoints(100, 2,
			r2.RectFromPoints(r2.Point{X: 1e-6, Y: 1e-6}, r2.Point{X: 2e-6, Y: 3e-6}))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st, err := FindSuperTriangle(tt.points)
			if err != nil {
				t.Fatalf("FindSuperTriangle(...) error = %v, want nil", err)
			}
			for i, p := range tt.points {
				if !strictlyInside(st, p) {
					t.Errorf("points[%d] = %v not strictly inside %v", i, p, st)
				}
			}
		})
	}
}

// Benchmarks

func BenchmarkFindSuperTriangle(b *testing.B) {
	points := utils.GenerateRandomPoints(1e+5, 0, testBounds)

	b.ReportAllocs()
	b.ResetTimer()
	for b.Loop() {
		if _, err := FindSuperTriangle(points); err != nil {
			b.Fatalf("FindSuperTriangle(...) error = %v, want nil", err)
		}
	}
}

// Helpers

var testBounds = r2.RectFromPoints(r2.Point{X: 0, Y: 0}, r2.Point{X: 100, Y: 100})

func strictlyInside(t r2voronoi.Triangle, p r2voronoi.Point) bool {
	var pos, neg int
	for _, e := range t.Edges() {
		switch c := e.Point2.Sub(e.Point1).Cross(p.Sub(e.Point1)); {
		case c > 0:
			pos++
		case c < 0:
			neg++
		}
	}
	return pos == 3 || neg == 3
}
