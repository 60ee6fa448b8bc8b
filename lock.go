package clicker

// WidgetLock is a canvas-wide lock that lets one interaction at a time claim
// the pointer. Pan and zoom gestures hold it; the widget ignores clicks while
// anyone else does. The zero value is unlocked.
type WidgetLock struct {
	owner any
}

// Acquire claims the lock for owner. Re-acquiring by the current owner is a
// no-op.
func (l *WidgetLock) Acquire(owner any) error {
	if l.owner != nil && l.owner != owner {
		return ErrLockHeld
	}
	l.owner = owner
	return nil
}

// Release gives up the lock. Only the current owner may release it.
func (l *WidgetLock) Release(owner any) error {
	if l.owner == nil || l.owner != owner {
		return ErrNotLockOwner
	}
	l.owner = nil
	return nil
}

// Available reports whether owner may use the pointer: the lock is free or
// owner holds it.
func (l *WidgetLock) Available(owner any) bool {
	return l.owner == nil || l.owner == owner
}

// Locked reports whether anyone holds the lock.
func (l *WidgetLock) Locked() bool {
	return l.owner != nil
}

// IsOwner reports whether owner holds the lock.
func (l *WidgetLock) IsOwner(owner any) bool {
	return l.owner != nil && l.owner == owner
}
