package ebitenhost

import (
	"fmt"

	"github.com/phanxgames/clicker"
)

// syntheticEvent is one injected frame of mouse state, in screen coordinates.
type syntheticEvent struct {
	sample pointerSample
}

func (c *Canvas) inject(s pointerSample) {
	c.injectQueue = append(c.injectQueue, syntheticEvent{sample: s})
}

// InjectPress queues a frame with button held at (x, y). The event is
// consumed by the next Update.
func (c *Canvas) InjectPress(x, y float64, button clicker.MouseButton) {
	s := pointerSample{x: x, y: y}
	switch button {
	case clicker.MouseButtonLeft:
		s.left = true
	case clicker.MouseButtonRight:
		s.right = true
	case clicker.MouseButtonMiddle:
		s.middle = true
	}
	c.inject(s)
}

// InjectRelease queues a frame with no button held at (x, y).
func (c *Canvas) InjectRelease(x, y float64) {
	c.inject(pointerSample{x: x, y: y})
}

// InjectClick queues a press followed by a release at the same screen
// coordinates. Consumes two frames.
func (c *Canvas) InjectClick(x, y float64, button clicker.MouseButton) {
	c.InjectPress(x, y, button)
	c.InjectRelease(x, y)
}

// InjectDataClick is InjectClick at the screen position of a data point under
// the current view.
func (c *Canvas) InjectDataClick(p clicker.Point, button clicker.MouseButton) {
	sx, sy := c.view.DataToScreen(p)
	c.InjectClick(sx, sy, button)
}

// InjectPick queues a left click on the centre of the legend label for the
// given class label.
func (c *Canvas) InjectPick(label string) error {
	r := c.rowByLabel(label)
	if r == nil {
		return fmt.Errorf("ebitenhost: no legend entry %q", label)
	}
	b := r.label.bounds
	c.InjectClick(b.X+b.Width/2, b.Y+b.Height/2, clicker.MouseButtonLeft)
	return nil
}

// InjectPan queues a middle-button drag from (fromX, fromY) to (toX, toY).
// The button is held for frames frames (minimum 2) moving linearly, then
// released.
func (c *Canvas) InjectPan(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	for i := 0; i < frames; i++ {
		t := float64(i) / float64(frames-1)
		c.InjectPress(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t, clicker.MouseButtonMiddle)
	}
	c.InjectRelease(toX, toY)
}

// InjectWheel queues a wheel movement at (x, y). Positive dy zooms in.
func (c *Canvas) InjectWheel(x, y, dy float64) {
	c.inject(pointerSample{x: x, y: y, wheel: dy})
}

// Pending reports how many injected frames are still queued.
func (c *Canvas) Pending() int {
	return len(c.injectQueue)
}

// processInjectedInput pops one injected frame and feeds it through the
// pointer state machine. Returns true if an event was consumed, in which case
// the real mouse is not read this frame.
func (c *Canvas) processInjectedInput() bool {
	if len(c.injectQueue) == 0 {
		return false
	}
	evt := c.injectQueue[0]
	copy(c.injectQueue, c.injectQueue[1:])
	c.injectQueue = c.injectQueue[:len(c.injectQueue)-1]

	c.processSample(evt.sample)
	return true
}
