package core

// Event is a fire-and-forget marker raised during a tick. The host uses them
// for feedback such as sounds or HUD flashes; the simulation never reads them back.
type Event int

const (
	EventFlapped Event = iota + 1
	EventScored
	EventDied
	EventMenuConfirmed
	EventCheckpointReached
	EventTimedOut
	EventWon
)

func (e Event) String() string {
	switch e {
	case EventFlapped:
		return "Flapped"
	case EventScored:
		return "Scored"
	case EventDied:
		return "Died"
	case EventMenuConfirmed:
		return "MenuConfirmed"
	case EventCheckpointReached:
		return "CheckpointReached"
	case EventTimedOut:
		return "TimedOut"
	case EventWon:
		return "Won"
	default:
		return "Unknown"
	}
}
