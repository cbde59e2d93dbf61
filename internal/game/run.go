// Package game is the run simulator: avatar physics, the obstacle stream,
// collision, scoring and the per-mode termination rules.
package game

import (
	"github.com/vovakirdan/tui-flap/internal/config"
	"github.com/vovakirdan/tui-flap/internal/core"
)

// EndReason says why a run terminated.
type EndReason int

const (
	Died EndReason = iota
	TimedOut
	Won
)

func (r EndReason) String() string {
	switch r {
	case Died:
		return "Died"
	case TimedOut:
		return "TimedOut"
	case Won:
		return "Won"
	default:
		return "Unknown"
	}
}

// SpawnPoint is enough to rebuild a stream part-way through: the seed, the
// index of the next obstacle to face and the score at that point.
type SpawnPoint struct {
	Seed       int64
	Obstacle   int
	Score      uint32
	Difficulty config.Difficulty
}

// Outcome is reported exactly once, on the tick a run terminates.
type Outcome struct {
	Reason     EndReason
	Score      uint32
	Elapsed    float32
	Mode       config.Mode
	Difficulty config.Difficulty
	Checkpoint *SpawnPoint
}

// Run is one attempt from start to termination.
type Run struct {
	rules      config.Rules
	tuning     config.Tuning
	mode       config.Mode
	difficulty config.Difficulty
	stream     *Stream

	y        float32
	velocity float32
	score    uint32
	elapsed  float32
	distance float32
	ticks    int

	checkpoint *SpawnPoint
	outcome    *Outcome
	events     []core.Event
}

// Start begins a run. A checkpoint is honoured only in Checkpoints mode; it
// replaces seed and carries its score over, and must have been recorded on
// the same difficulty.
func Start(rules config.Rules, mode config.Mode, difficulty config.Difficulty, checkpoint *SpawnPoint, seed int64) (*Run, error) {
	if !mode.Valid() {
		return nil, &config.Error{Field: "mode", Value: mode.String(), Reason: "unknown tag"}
	}
	if !difficulty.Valid() {
		return nil, &config.Error{Field: "difficulty", Value: difficulty.String(), Reason: "unknown tag"}
	}

	r := &Run{
		rules:      rules,
		tuning:     rules.Tuning(difficulty),
		mode:       mode,
		difficulty: difficulty,
	}

	start := 0
	if checkpoint != nil && mode == config.Checkpoints {
		if checkpoint.Difficulty != difficulty {
			return nil, &config.Error{Field: "checkpoint difficulty", Value: checkpoint.Difficulty.String(), Reason: "does not match " + difficulty.String()}
		}
		cp := *checkpoint
		r.checkpoint = &cp
		seed = cp.Seed
		start = cp.Obstacle
		r.score = cp.Score
	}

	r.stream = NewStream(rules, r.tuning, seed, start)
	return r, nil
}

// maxStep is the longest slice of time integrated at once. Longer ticks are
// split so a stalled host cannot tunnel the avatar through a column. It is a
// power of two so whole-second ticks split without rounding.
const maxStep = 0.125

// Tick advances the run by dt seconds. It returns the outcome on the tick the
// run ends and nil otherwise, including every call after termination. A flap
// applies to the first slice of a split tick only.
func (r *Run) Tick(dt float32, intents []core.Intent) *Outcome {
	r.events = r.events[:0]
	if r.outcome != nil || dt <= 0 {
		return nil
	}
	r.ticks++

	flap := core.HasFlap(intents)
	for dt > 0 {
		h := min(dt, maxStep)
		dt -= h
		if out := r.step(h, flap); out != nil {
			return out
		}
		flap = false
	}
	return nil
}

func (r *Run) step(dt float32, flap bool) *Outcome {
	r.velocity += r.tuning.Gravity * dt
	if flap {
		r.velocity = r.tuning.FlapImpulse
		r.events = append(r.events, core.EventFlapped)
	}
	r.y += r.velocity * dt

	advance := r.tuning.ScrollSpeed * dt
	r.stream.Advance(advance)
	r.distance += advance

	avatar := r.Avatar()
	if !avatar.Within(r.rules.Bounds()) || r.stream.Collides(avatar) {
		return r.finish(Died)
	}

	for _, idx := range r.stream.MarkPassed(r.rules.Avatar.X) {
		r.score++
		r.events = append(r.events, core.EventScored)
		if r.mode == config.Checkpoints && r.score%r.rules.Checkpoints.Every == 0 {
			r.checkpoint = &SpawnPoint{
				Seed:       r.stream.Seed(),
				Obstacle:   idx + 1,
				Score:      r.score,
				Difficulty: r.difficulty,
			}
			r.events = append(r.events, core.EventCheckpointReached)
		}
	}

	r.elapsed += dt
	switch r.mode {
	case config.TimeAttack:
		if r.elapsed >= r.rules.TimeAttack.TimeLimit {
			return r.finish(TimedOut)
		}
	case config.Checkpoints:
		if win := r.rules.WinScore(r.difficulty); win > 0 && r.score >= win {
			return r.finish(Won)
		}
	}
	return nil
}

func (r *Run) finish(reason EndReason) *Outcome {
	out := &Outcome{
		Reason:     reason,
		Score:      r.score,
		Elapsed:    r.elapsed,
		Mode:       r.mode,
		Difficulty: r.difficulty,
	}
	if r.checkpoint != nil {
		cp := *r.checkpoint
		out.Checkpoint = &cp
	}
	r.outcome = out

	switch reason {
	case Died:
		r.events = append(r.events, core.EventDied)
	case TimedOut:
		r.events = append(r.events, core.EventTimedOut)
	case Won:
		r.events = append(r.events, core.EventWon)
	}
	return out
}

// Avatar returns the avatar's collision box.
func (r *Run) Avatar() core.Box {
	h := r.rules.Avatar.HalfSize
	return core.BoxAt(r.rules.Avatar.X, r.y, h, h)
}

func (r *Run) Y() float32                    { return r.y }
func (r *Run) Velocity() float32             { return r.velocity }
func (r *Run) Score() uint32                 { return r.score }
func (r *Run) Elapsed() float32              { return r.elapsed }
func (r *Run) Mode() config.Mode             { return r.mode }
func (r *Run) Difficulty() config.Difficulty { return r.difficulty }
func (r *Run) Seed() int64                   { return r.stream.Seed() }

// Ended reports whether the run has produced its outcome.
func (r *Run) Ended() bool { return r.outcome != nil }

// Outcome returns the terminal outcome, or nil while the run is live.
func (r *Run) Outcome() *Outcome { return r.outcome }

// Checkpoint returns the most recent checkpoint of this run's lineage.
func (r *Run) Checkpoint() *SpawnPoint {
	if r.checkpoint == nil {
		return nil
	}
	cp := *r.checkpoint
	return &cp
}

// Events returns the markers raised by the last Tick.
func (r *Run) Events() []core.Event {
	return append([]core.Event(nil), r.events...)
}

// Obstacles returns the live obstacles ordered by X.
func (r *Run) Obstacles() []Obstacle { return r.stream.Obstacles() }

// Snapshot is a read-only view of a run for rendering.
type Snapshot struct {
	Mode       config.Mode
	Difficulty config.Difficulty
	Y          float32
	Velocity   float32
	Score      uint32
	Elapsed    float32
	TimeLeft   float32 // TimeAttack only
	NextGoal   uint32  // next checkpoint score, Checkpoints only
	WinAt      uint32  // Checkpoints only, zero when disabled
	Distance   float32 // total scroll, for background parallax
	Avatar     core.Box
	Obstacles  []Obstacle
	Width      float32 // obstacle column width
	Bounds     core.Box
	Checkpoint *SpawnPoint
	Ended      bool
}

// Snapshot captures the current run state.
func (r *Run) Snapshot() Snapshot {
	snap := Snapshot{
		Mode:       r.mode,
		Difficulty: r.difficulty,
		Y:          r.y,
		Velocity:   r.velocity,
		Score:      r.score,
		Elapsed:    r.elapsed,
		Distance:   r.distance,
		Avatar:     r.Avatar(),
		Obstacles:  r.stream.Obstacles(),
		Width:      r.stream.Width(),
		Bounds:     r.rules.Bounds(),
		Checkpoint: r.Checkpoint(),
		Ended:      r.Ended(),
	}
	switch r.mode {
	case config.TimeAttack:
		snap.TimeLeft = r.rules.TimeAttack.TimeLimit - r.elapsed
		if snap.TimeLeft < 0 {
			snap.TimeLeft = 0
		}
	case config.Checkpoints:
		every := r.rules.Checkpoints.Every
		snap.NextGoal = (r.score/every + 1) * every
		snap.WinAt = r.rules.WinScore(r.difficulty)
	}
	return snap
}
