package clicker

import (
	"fmt"
	"image/color"
	"math"
	"strings"
)

// Point is a data-space coordinate. Duplicates are allowed.
type Point struct {
	X, Y float64
}

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// The zero Color asks the host for its default color for that series.
type Color struct {
	R, G, B, A float64
}

// IsZero reports whether c is the zero Color (host default).
func (c Color) IsZero() bool {
	return c == Color{}
}

// ToRGBA converts c to a premultiplied color.RGBA with alpha scaled by alpha.
func (c Color) ToRGBA(alpha float64) color.RGBA {
	a := clamp01(c.A * alpha)
	return color.RGBA{
		R: uint8(clamp01(c.R)*a*255 + 0.5),
		G: uint8(clamp01(c.G)*a*255 + 0.5),
		B: uint8(clamp01(c.B)*a*255 + 0.5),
		A: uint8(a*255 + 0.5),
	}
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Grow returns r expanded by d on every side.
func (r Rect) Grow(d float64) Rect {
	return Rect{X: r.X - d, Y: r.Y - d, Width: r.Width + 2*d, Height: r.Height + 2*d}
}

// Range is a closed data interval.
type Range struct {
	Min, Max float64
}

// Span returns Max - Min.
func (r Range) Span() float64 {
	return r.Max - r.Min
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button: add
	MouseButtonRight                     // secondary (right) mouse button: remove
	MouseButtonMiddle                    // middle mouse button (ignored by the widget)
)

func (b MouseButton) String() string {
	switch b {
	case MouseButtonLeft:
		return "left"
	case MouseButtonRight:
		return "right"
	case MouseButtonMiddle:
		return "middle"
	default:
		return fmt.Sprintf("MouseButton(%d)", uint8(b))
	}
}

// Anchor selects which corner or edge of the legend box is placed at the
// legend position.
type Anchor uint8

const (
	AnchorUpperLeft Anchor = iota
	AnchorUpperRight
	AnchorUpperCenter
	AnchorLowerLeft
	AnchorLowerRight
	AnchorLowerCenter
	AnchorCenterLeft
	AnchorCenterRight
	AnchorCenter
)

var anchorNames = [...]string{
	AnchorUpperLeft:   "upper left",
	AnchorUpperRight:  "upper right",
	AnchorUpperCenter: "upper center",
	AnchorLowerLeft:   "lower left",
	AnchorLowerRight:  "lower right",
	AnchorLowerCenter: "lower center",
	AnchorCenterLeft:  "center left",
	AnchorCenterRight: "center right",
	AnchorCenter:      "center",
}

func (a Anchor) String() string {
	if int(a) < len(anchorNames) {
		return anchorNames[a]
	}
	return fmt.Sprintf("Anchor(%d)", uint8(a))
}

// ParseAnchor accepts the names printed by Anchor.String, case-insensitively.
func ParseAnchor(s string) (Anchor, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range anchorNames {
		if name == s {
			return Anchor(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown legend anchor %q", ErrConfiguration, s)
}

// Fractions returns the anchor's position within the legend box as
// fractions of its width and height, measured from the top-left.
func (a Anchor) Fractions() (fx, fy float64) {
	switch a {
	case AnchorUpperRight:
		return 1, 0
	case AnchorUpperCenter:
		return 0.5, 0
	case AnchorLowerLeft:
		return 0, 1
	case AnchorLowerRight:
		return 1, 1
	case AnchorLowerCenter:
		return 0.5, 1
	case AnchorCenterLeft:
		return 0, 0.5
	case AnchorCenterRight:
		return 1, 0.5
	case AnchorCenter:
		return 0.5, 0.5
	default:
		return 0, 0
	}
}

// EventType identifies a kind of widget event.
type EventType uint8

const (
	EventPointAdded   EventType = iota // a point was appended to the active class
	EventPointRemoved                  // the nearest point of the active class was removed
	EventClassChanged                  // a different class became active
	EventPositionsSet                  // SetPositions replaced one or more classes
)

func (t EventType) String() string {
	switch t {
	case EventPointAdded:
		return "point-added"
	case EventPointRemoved:
		return "point-removed"
	case EventClassChanged:
		return "class-changed"
	case EventPositionsSet:
		return "positions-set"
	default:
		return fmt.Sprintf("EventType(%d)", uint8(t))
	}
}
