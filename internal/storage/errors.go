package storage

import (
	"errors"
	"fmt"
)

// ErrInvalidSlot is returned for slot numbers outside 1..SlotCount.
var ErrInvalidSlot = errors.New("storage: slot out of range")

// PersistenceError reports a failed read or write of a save slot. The
// caller keeps playing; the error is surfaced, never fatal.
type PersistenceError struct {
	Op   string // "load", "save" or "delete"
	Slot int
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("storage: cannot %s slot %d: %v", e.Op, e.Slot, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

func checkSlot(slot int) error {
	if slot < 1 || slot > SlotCount {
		return fmt.Errorf("%w: %d", ErrInvalidSlot, slot)
	}
	return nil
}
