package clicker

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r2"
)

// nearest returns the index of the point closest to query by Euclidean
// distance in data coordinates. Ties go to the lowest index. points must be
// non-empty; the caller checks.
//
// A linear scan is enough: classes hold a handful of hand-placed points.
func nearest(points []Point, query Point) int {
	if len(points) == 0 {
		panic("clicker: nearest called with no points")
	}
	q := r2.Vec{X: query.X, Y: query.Y}
	dists := make([]float64, len(points))
	for i, p := range points {
		dists[i] = r2.Norm(r2.Sub(r2.Vec{X: p.X, Y: p.Y}, q))
	}
	// MinIdx returns the first index holding the minimum.
	return floats.MinIdx(dists)
}
