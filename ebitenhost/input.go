package ebitenhost

import (
	"fmt"
	"math"
	"os"
	"slices"

	"github.com/phanxgames/clicker"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	defaultDragDeadZone = 4.0 // pixels
	wheelZoomStep       = 1.1
)

// pointerSample is the mouse state for one frame, from the real mouse or the
// inject queue.
type pointerSample struct {
	x, y                float64
	left, right, middle bool
	wheel               float64
}

type pointerState struct {
	left, right, middle bool // pressed last frame
	lastX, lastY        float64
	startX, startY      float64
	panning             bool
}

// panOwner identifies the pan gesture as a widget lock owner.
type panOwner struct{}

var panGesture = &panOwner{}

// Update advances the view animation and processes one frame of input:
// either the next injected event or the real mouse.
func (c *Canvas) Update() {
	if c.advance(float32(1.0 / float64(ebiten.TPS()))) {
		return
	}
	mx, my := ebiten.CursorPosition()
	_, wy := ebiten.Wheel()
	c.processSample(pointerSample{
		x:      float64(mx),
		y:      float64(my),
		left:   ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		right:  ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight),
		middle: ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle),
		wheel:  wy,
	})
}

// advance runs the non-input part of a frame and consumes one injected
// event if any is queued, reporting whether it did.
func (c *Canvas) advance(dt float32) bool {
	c.view.update(dt)
	if c.testRunner != nil {
		c.testRunner.step(c)
	}
	return c.processInjectedInput()
}

// processSample runs the pointer state machine for one frame.
func (c *Canvas) processSample(s pointerSample) {
	ps := &c.pointer

	if s.wheel != 0 && c.view.InAxes(s.x, s.y) {
		c.view.Zoom(math.Pow(wheelZoomStep, s.wheel), s.x, s.y)
	}

	if s.left && !ps.left {
		c.firePress(clicker.MouseButtonLeft, s.x, s.y)
	}
	if s.right && !ps.right {
		c.firePress(clicker.MouseButtonRight, s.x, s.y)
	}

	switch {
	case s.middle && !ps.middle:
		ps.startX, ps.startY = s.x, s.y
		ps.panning = false
	case s.middle && ps.middle:
		if !ps.panning {
			dx, dy := s.x-ps.startX, s.y-ps.startY
			if math.Sqrt(dx*dx+dy*dy) > c.opts.DragDeadZone && c.view.InAxes(ps.startX, ps.startY) {
				if err := c.lock.Acquire(panGesture); err == nil {
					ps.panning = true
					c.view.Pan(s.x-ps.startX, s.y-ps.startY)
				}
			}
		} else if s.x != ps.lastX || s.y != ps.lastY {
			c.view.Pan(s.x-ps.lastX, s.y-ps.lastY)
		}
	case !s.middle && ps.middle:
		if ps.panning {
			_ = c.lock.Release(panGesture)
			ps.panning = false
		}
	}

	ps.left, ps.right, ps.middle = s.left, s.right, s.middle
	ps.lastX, ps.lastY = s.x, s.y
}

// firePress delivers a press. A press on a legend artifact becomes a pick
// event only; any other press becomes a button event. Handlers run over a
// copy so one may disconnect during dispatch.
func (c *Canvas) firePress(button clicker.MouseButton, sx, sy float64) {
	if a := c.artifactAt(sx, sy); a != nil {
		c.debugf("pick %q (%s press at %.0f,%.0f)", a.row.entry.Label, button, sx, sy)
		ev := clicker.PickEvent{Artifact: a}
		for _, h := range slices.Clone(c.pick) {
			h.fn(ev)
		}
		return
	}
	ev := clicker.ButtonEvent{
		Button:   button,
		Position: c.view.ScreenToData(sx, sy),
		InAxes:   c.view.InAxes(sx, sy),
	}
	c.debugf("%s press at %.0f,%.0f -> %+v", button, sx, sy, ev)
	for _, h := range slices.Clone(c.press) {
		h.fn(ev)
	}
}

func (c *Canvas) debugf(format string, args ...any) {
	if !c.opts.Debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[clicker/ebiten] "+format+"\n", args...)
}
