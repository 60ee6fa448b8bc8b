package tcellhost

import (
	"context"

	"github.com/phanxgames/clicker"

	"github.com/gdamore/tcell/v2"
)

// HandleEvent processes one terminal event. It returns false when the event
// asks the program to quit (Escape or Ctrl-C).
func (c *Canvas) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		}
	case *tcell.EventResize:
		c.screen.Sync()
		c.Draw()
	case *tcell.EventMouse:
		c.handleMouse(ev)
	}
	return true
}

// handleMouse fires on press edges only; tcell reports held buttons on every
// motion event.
func (c *Canvas) handleMouse(ev *tcell.EventMouse) {
	btns := ev.Buttons()
	pressed := btns &^ c.buttons
	c.buttons = btns
	cx, cy := ev.Position()

	for _, b := range []struct {
		mask   tcell.ButtonMask
		button clicker.MouseButton
	}{
		{tcell.Button1, clicker.MouseButtonLeft},
		{tcell.Button2, clicker.MouseButtonRight},
		{tcell.Button3, clicker.MouseButtonMiddle},
	} {
		if pressed&b.mask != 0 {
			c.firePress(b.button, cx, cy)
		}
	}
}

// firePress delivers a press at a cell. A press of any button on a legend
// artifact is a pick and is not reported as a button press.
func (c *Canvas) firePress(button clicker.MouseButton, cx, cy int) {
	if a := c.artifactAt(cx, cy); a != nil {
		c.debugf("pick %q (%s press)", a.row.entry.Label, button)
		ev := clicker.PickEvent{Artifact: a}
		for _, h := range append([]handler[clicker.PickEvent](nil), c.pick...) {
			h.fn(ev)
		}
		return
	}
	ev := clicker.ButtonEvent{
		Button:   button,
		Position: c.CellToData(cx, cy),
		InAxes:   c.inAxes(cx, cy),
	}
	c.debugf("press %s at cell (%d,%d) in-axes=%v", button, cx, cy, ev.InAxes)
	for _, h := range append([]handler[clicker.ButtonEvent](nil), c.press...) {
		h.fn(ev)
	}
}

// Run polls the screen until the user quits or ctx is cancelled. It returns
// ctx.Err() on cancellation and nil on a quit key.
func (c *Canvas) Run(ctx context.Context) error {
	stop := context.AfterFunc(ctx, func() {
		_ = c.screen.PostEvent(tcell.NewEventInterrupt(nil))
	})
	defer stop()

	c.Draw()
	for {
		ev := c.screen.PollEvent()
		if ev == nil {
			return nil
		}
		if _, ok := ev.(*tcell.EventInterrupt); ok {
			if err := ctx.Err(); err != nil {
				return err
			}
			continue
		}
		if !c.HandleEvent(ev) {
			return nil
		}
	}
}
