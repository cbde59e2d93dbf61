package core

import "fmt"

// IntentKind identifies what the player asked for, independent of the key
// that produced it.
type IntentKind int

const (
	IntentNone IntentKind = iota
	IntentConfirm
	IntentBack
	IntentSelectDigit
	IntentDeleteSlot
	IntentFlap
)

// String returns a human-readable name for the intent kind.
func (k IntentKind) String() string {
	switch k {
	case IntentNone:
		return "None"
	case IntentConfirm:
		return "Confirm"
	case IntentBack:
		return "Back"
	case IntentSelectDigit:
		return "SelectDigit"
	case IntentDeleteSlot:
		return "DeleteSlot"
	case IntentFlap:
		return "Flap"
	default:
		return "Unknown"
	}
}

// Intent is a single discrete player action delivered to the simulation.
// Digit is only meaningful for SelectDigit and DeleteSlot.
type Intent struct {
	Kind  IntentKind
	Digit int
}

// Confirm returns a Confirm intent.
func Confirm() Intent { return Intent{Kind: IntentConfirm} }

// Back returns a Back intent.
func Back() Intent { return Intent{Kind: IntentBack} }

// Flap returns a Flap intent.
func Flap() Intent { return Intent{Kind: IntentFlap} }

// SelectDigit returns a menu selection intent for digit n.
func SelectDigit(n int) Intent { return Intent{Kind: IntentSelectDigit, Digit: n} }

// DeleteSlot returns an intent to erase save slot n.
func DeleteSlot(n int) Intent { return Intent{Kind: IntentDeleteSlot, Digit: n} }

func (i Intent) String() string {
	switch i.Kind {
	case IntentSelectDigit, IntentDeleteSlot:
		return fmt.Sprintf("%s(%d)", i.Kind, i.Digit)
	default:
		return i.Kind.String()
	}
}

// HasFlap reports whether the batch contains at least one Flap.
func HasFlap(batch []Intent) bool {
	for _, in := range batch {
		if in.Kind == IntentFlap {
			return true
		}
	}
	return false
}
