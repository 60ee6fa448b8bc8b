package clicker

import (
	"fmt"
	"math"
)

// pointStore keeps one insertion-ordered point sequence per class. Every
// class in the fixed set has an entry from construction on, and no other key
// is ever added.
type pointStore[C comparable] struct {
	classes []C
	points  map[C][]Point
}

func newPointStore[C comparable](classes []C) *pointStore[C] {
	s := &pointStore[C]{
		classes: classes,
		points:  make(map[C][]Point, len(classes)),
	}
	for _, c := range classes {
		s.points[c] = nil
	}
	return s
}

func (s *pointStore[C]) has(class C) bool {
	_, ok := s.points[class]
	return ok
}

// get returns the live sequence for class. Callers must not retain or modify it.
func (s *pointStore[C]) get(class C) []Point {
	return s.points[class]
}

// append adds p to class and returns its index.
func (s *pointStore[C]) append(class C, p Point) int {
	s.points[class] = append(s.points[class], p)
	return len(s.points[class]) - 1
}

// removeAt deletes and returns the point at index, shifting later points down.
func (s *pointStore[C]) removeAt(class C, index int) (Point, error) {
	pts := s.points[class]
	if index < 0 || index >= len(pts) {
		return Point{}, fmt.Errorf("%w: remove index %d from class %v with %d points",
			ErrIndex, index, class, len(pts))
	}
	p := pts[index]
	copy(pts[index:], pts[index+1:])
	s.points[class] = pts[:len(pts)-1]
	return p, nil
}

// snapshot returns a deep copy of every class's points. Empty classes map to
// empty, non-nil slices.
func (s *pointStore[C]) snapshot() map[C][]Point {
	out := make(map[C][]Point, len(s.points))
	for c, pts := range s.points {
		out[c] = copyPoints(pts)
	}
	return out
}

// replaceAll overwrites the listed classes. Every key and point is validated
// before anything is written, so on error no class has changed. Points must
// have finite coordinates; a NaN distance has no defined nearest point.
func (s *pointStore[C]) replaceAll(positions map[C][]Point) error {
	for c, pts := range positions {
		if !s.has(c) {
			return fmt.Errorf("%w: class %v is not in %v", ErrValidation, c, s.classes)
		}
		for i, p := range pts {
			if !p.finite() {
				return fmt.Errorf("%w: class %v point %d %v is not finite", ErrValidation, c, i, p)
			}
		}
	}
	for c, pts := range positions {
		s.points[c] = copyPoints(pts)
	}
	return nil
}

func (p Point) finite() bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}
