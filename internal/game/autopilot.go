package game

import "github.com/vovakirdan/tui-flap/internal/config"

// Autopilot is a simple controller used by the headless simulator. It aims
// for the centre of the next gap and flaps whenever the avatar is falling
// and a flap would not overshoot that target by more than half its rise.
type Autopilot struct {
	tuning config.Tuning
	apex   float32
}

// NewAutopilot builds a controller for one difficulty.
func NewAutopilot(tuning config.Tuning) *Autopilot {
	var apex float32
	if tuning.Gravity < 0 {
		apex = tuning.FlapImpulse * tuning.FlapImpulse / (-2 * tuning.Gravity)
	}
	return &Autopilot{tuning: tuning, apex: apex}
}

// Target returns the gap centre the avatar should aim for.
func (a *Autopilot) Target(snap Snapshot) float32 {
	for _, o := range snap.Obstacles {
		if o.X+snap.Width/2 >= snap.Avatar.MinX {
			return o.GapCenter
		}
	}
	return 0
}

// ShouldFlap decides the input for the next tick.
func (a *Autopilot) ShouldFlap(snap Snapshot) bool {
	if snap.Ended || snap.Velocity > 0 {
		return false
	}
	return snap.Y < a.Target(snap)-a.apex/2
}
