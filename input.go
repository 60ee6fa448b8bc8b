package clicker

// HandleButtonPress is the canvas click channel. A left click inside the
// axes adds a point to the active class; a right click removes the active
// class's point nearest to the click. Clicks outside the axes, clicks while
// another owner holds the canvas's widget lock, and other buttons are ignored.
//
// The canvas calls this for every press once the widget is constructed; it is
// exported so hosts without a subscription mechanism, and tests, can drive
// the widget directly.
func (c *Clicker[C]) HandleButtonPress(ev ButtonEvent) {
	if lock := c.canvas.WidgetLock(); lock != nil && !lock.Available(c) {
		c.debugf("ignored %s press: widget lock held", ev.Button)
		return
	}
	if !ev.InAxes {
		c.debugf("ignored %s press outside axes", ev.Button)
		return
	}
	if !ev.Position.finite() {
		c.debugf("ignored %s press at non-finite position %v", ev.Button, ev.Position)
		return
	}
	switch ev.Button {
	case MouseButtonLeft:
		c.addPoint(ev.Position)
	case MouseButtonRight:
		c.removeNearest(ev.Position)
	}
}

func (c *Clicker[C]) addPoint(p Point) {
	class := c.legend.activeClass()
	c.store.append(class, p)
	c.updateSeries(class)
	c.firePointAdded(p, class)
}

func (c *Clicker[C]) removeNearest(query Point) {
	class := c.legend.activeClass()
	pts := c.store.get(class)
	if len(pts) == 0 {
		c.debugf("ignored remove: class %v has no points", class)
		return
	}
	idx := nearest(pts, query)
	removed, err := c.store.removeAt(class, idx)
	if err != nil {
		// nearest only returns indices into pts.
		panic(err)
	}
	c.updateSeries(class)
	c.firePointRemoved(removed, class, idx)
}

// HandlePick is the legend pick channel. Picking an artifact of this
// widget's legend makes its class active. Picks on any other artifact are
// ignored.
func (c *Clicker[C]) HandlePick(ev PickEvent) {
	class, ok := c.legend.classFor(ev.Artifact)
	if !ok {
		c.debugf("ignored pick on foreign artifact")
		return
	}
	// Setting a class from the legend cannot fail validation.
	_ = c.legend.setActive(class)
	c.legend.apply()
	c.canvas.Draw()
	c.fireClassChanged(class)
}
