package clicker

import (
	"fmt"
	"os"
)

// debugf prints a diagnostic line to stderr when the widget was created with
// Config.Debug.
func (c *Clicker[C]) debugf(format string, args ...any) {
	if !c.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[clicker] "+format+"\n", args...)
}

// SetDebugMode enables or disables diagnostic logging after construction.
func (c *Clicker[C]) SetDebugMode(enabled bool) {
	c.debug = enabled
}
