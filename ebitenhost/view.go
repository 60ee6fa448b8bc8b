package ebitenhost

import (
	"github.com/phanxgames/clicker"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	minZoomSpan = 1e-9
)

// resetAnim holds active tweens for the four axis limits.
type resetAnim struct {
	tweens [4]*gween.Tween
	done   [4]bool
}

// View maps between data coordinates and the screen-space axes rectangle.
// Y grows upward in data space and downward on screen.
type View struct {
	// Axes is the screen-space data region.
	Axes clicker.Rect
	// XLim and YLim are the data limits currently shown.
	XLim, YLim clicker.Range

	homeX, homeY clicker.Range
	reset        *resetAnim
}

func newView(axes clicker.Rect, xlim, ylim clicker.Range) *View {
	return &View{Axes: axes, XLim: xlim, YLim: ylim, homeX: xlim, homeY: ylim}
}

// DataToScreen converts a data point to screen coordinates.
func (v *View) DataToScreen(p clicker.Point) (sx, sy float64) {
	sx = v.Axes.X + (p.X-v.XLim.Min)/v.XLim.Span()*v.Axes.Width
	sy = v.Axes.Y + (v.YLim.Max-p.Y)/v.YLim.Span()*v.Axes.Height
	return sx, sy
}

// ScreenToData converts screen coordinates to a data point.
func (v *View) ScreenToData(sx, sy float64) clicker.Point {
	return clicker.Point{
		X: v.XLim.Min + (sx-v.Axes.X)/v.Axes.Width*v.XLim.Span(),
		Y: v.YLim.Max - (sy-v.Axes.Y)/v.Axes.Height*v.YLim.Span(),
	}
}

// InAxes reports whether the screen point lies in the data region.
func (v *View) InAxes(sx, sy float64) bool {
	return v.Axes.Contains(sx, sy)
}

// Pan shifts the limits so the data under the pointer follows a screen
// movement of (dx, dy) pixels. Cancels a running reset.
func (v *View) Pan(dx, dy float64) {
	v.reset = nil
	ddx := dx / v.Axes.Width * v.XLim.Span()
	ddy := dy / v.Axes.Height * v.YLim.Span()
	v.XLim.Min -= ddx
	v.XLim.Max -= ddx
	v.YLim.Min += ddy
	v.YLim.Max += ddy
}

// Zoom scales the limits by 1/factor around the data point under (sx, sy).
// factor > 1 zooms in.
func (v *View) Zoom(factor, sx, sy float64) {
	if factor <= 0 {
		return
	}
	v.reset = nil
	c := v.ScreenToData(sx, sy)
	scale := func(r clicker.Range, center float64) clicker.Range {
		out := clicker.Range{
			Min: center - (center-r.Min)/factor,
			Max: center + (r.Max-center)/factor,
		}
		if out.Span() < minZoomSpan {
			return r
		}
		return out
	}
	v.XLim = scale(v.XLim, c.X)
	v.YLim = scale(v.YLim, c.Y)
}

// ResetView animates the limits back to their initial values over duration
// seconds. A non-positive duration resets immediately.
func (v *View) ResetView(duration float32, easeFn ease.TweenFunc) {
	if duration <= 0 {
		v.reset = nil
		v.XLim, v.YLim = v.homeX, v.homeY
		return
	}
	if easeFn == nil {
		easeFn = ease.OutQuad
	}
	v.reset = &resetAnim{tweens: [4]*gween.Tween{
		gween.New(float32(v.XLim.Min), float32(v.homeX.Min), duration, easeFn),
		gween.New(float32(v.XLim.Max), float32(v.homeX.Max), duration, easeFn),
		gween.New(float32(v.YLim.Min), float32(v.homeY.Min), duration, easeFn),
		gween.New(float32(v.YLim.Max), float32(v.homeY.Max), duration, easeFn),
	}}
}

// Resetting reports whether a ResetView animation is running.
func (v *View) Resetting() bool {
	return v.reset != nil
}

// update advances a running reset animation.
func (v *View) update(dt float32) {
	if v.reset == nil {
		return
	}
	fields := [4]*float64{&v.XLim.Min, &v.XLim.Max, &v.YLim.Min, &v.YLim.Max}
	allDone := true
	for i, tw := range v.reset.tweens {
		if v.reset.done[i] {
			continue
		}
		val, finished := tw.Update(dt)
		*fields[i] = float64(val)
		v.reset.done[i] = finished
		if !finished {
			allDone = false
		}
	}
	if allDone {
		// Snap to the exact home limits; tweens run in float32.
		v.XLim, v.YLim = v.homeX, v.homeY
		v.reset = nil
	}
}
