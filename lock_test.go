package clicker

import (
	"errors"
	"testing"
)

func TestWidgetLock(t *testing.T) {
	var l WidgetLock
	pan, zoom := new(int), new(int)

	if l.Locked() || !l.Available(pan) {
		t.Fatal("zero lock should be free")
	}
	if err := l.Acquire(pan); err != nil {
		t.Fatalf("Acquire(pan): %v", err)
	}
	if err := l.Acquire(pan); err != nil {
		t.Errorf("re-Acquire by owner: %v", err)
	}
	if !l.IsOwner(pan) || l.IsOwner(zoom) {
		t.Error("IsOwner mismatch")
	}
	if l.Available(zoom) {
		t.Error("lock available to non-owner")
	}
	if !l.Available(pan) {
		t.Error("lock unavailable to owner")
	}
	if err := l.Acquire(zoom); !errors.Is(err, ErrLockHeld) {
		t.Errorf("Acquire(zoom) = %v, want ErrLockHeld", err)
	}
	if err := l.Release(zoom); !errors.Is(err, ErrNotLockOwner) {
		t.Errorf("Release(zoom) = %v, want ErrNotLockOwner", err)
	}
	if err := l.Release(pan); err != nil {
		t.Errorf("Release(pan): %v", err)
	}
	if l.Locked() {
		t.Error("lock still held after release")
	}
	if err := l.Release(pan); !errors.Is(err, ErrNotLockOwner) {
		t.Errorf("double Release = %v, want ErrNotLockOwner", err)
	}
}
