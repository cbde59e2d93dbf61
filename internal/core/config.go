package core

// RuntimeConfig describes the host the simulation runs in.
type RuntimeConfig struct {
	ScreenW  int   // terminal width in cells
	ScreenH  int   // terminal height in cells
	TickRate int   // host ticks per second
	Seed     int64 // obstacle RNG seed, 0 picks one at start
}

// DefaultConfig returns a RuntimeConfig sized for a standard terminal.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}
