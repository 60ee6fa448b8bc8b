package clicker

import "errors"

var (
	// ErrConfiguration is returned by New when the construction arguments are
	// invalid. No widget is produced.
	ErrConfiguration = errors.New("clicker: invalid configuration")

	// ErrValidation is returned by SetPositions and SetActiveClass when a class
	// is outside the widget's class set. No state is changed.
	ErrValidation = errors.New("clicker: invalid class")

	// ErrIndex reports a removal against an empty or too-short sequence.
	// The widget guards against it, so it only surfaces on misuse of the
	// point store.
	ErrIndex = errors.New("clicker: index out of range")

	// ErrLockHeld is returned by WidgetLock.Acquire when another owner holds it.
	ErrLockHeld = errors.New("clicker: widget lock held by another owner")

	// ErrNotLockOwner is returned by WidgetLock.Release when the caller does
	// not hold the lock.
	ErrNotLockOwner = errors.New("clicker: widget lock not held by caller")
)
