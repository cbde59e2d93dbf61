// Package config holds the rules table for the game: world geometry, obstacle
// layout, per-difficulty physics tuning and mode parameters. Rules are loaded
// from YAML with an embedded default.
package config

import "github.com/vovakirdan/tui-flap/internal/core"

// Rules is the full, immutable-at-runtime rules table.
type Rules struct {
	World       World           `yaml:"world"`
	Avatar      Avatar          `yaml:"avatar"`
	Obstacles   Obstacles       `yaml:"obstacles"`
	Difficulty  Difficulties    `yaml:"difficulty"`
	TimeAttack  TimeAttackRules `yaml:"time_attack"`
	Checkpoints CheckpointRules `yaml:"checkpoints"`
}

// World is the playfield in world units, centred on the origin, y up.
type World struct {
	Width  float32 `yaml:"width"`
	Height float32 `yaml:"height"`
}

// Avatar places the player column and its square collision box.
type Avatar struct {
	X        float32 `yaml:"x"`
	HalfSize float32 `yaml:"half_size"`
}

// Obstacles describes the layout of the gap obstacle stream.
type Obstacles struct {
	Width      float32 `yaml:"width"`
	Spacing    float32 `yaml:"spacing"`     // centre-to-centre distance
	FirstX     float32 `yaml:"first_x"`     // centre of the first obstacle at run start
	EdgeMargin float32 `yaml:"edge_margin"` // minimum distance between a gap and the world edge
}

// Tuning is the physics and obstacle tuning for one difficulty.
// Gravity is a signed acceleration; negative pulls the avatar down.
type Tuning struct {
	Gravity     float32 `yaml:"gravity"`
	GapHeight   float32 `yaml:"gap_height"`
	ScrollSpeed float32 `yaml:"scroll_speed"`
	FlapImpulse float32 `yaml:"flap_impulse"`
	GapOffset   float32 `yaml:"gap_offset"` // max random shift of a gap centre
}

// Difficulties maps each difficulty to its tuning.
type Difficulties struct {
	Easy   Tuning `yaml:"easy"`
	Normal Tuning `yaml:"normal"`
	Hard   Tuning `yaml:"hard"`
}

// TimeAttackRules holds the TimeAttack mode parameters.
type TimeAttackRules struct {
	TimeLimit float32 `yaml:"time_limit"` // seconds
}

// CheckpointRules holds the Checkpoints mode parameters.
type CheckpointRules struct {
	Every uint32 `yaml:"every"`
	WinAt WinAt  `yaml:"win_at"`
}

// WinAt is the score that completes a Checkpoints run, per difficulty.
// Zero disables the win condition.
type WinAt struct {
	Easy   uint32 `yaml:"easy"`
	Normal uint32 `yaml:"normal"`
	Hard   uint32 `yaml:"hard"`
}

// Tuning returns the tuning for d. Unknown difficulties get Normal.
func (r Rules) Tuning(d Difficulty) Tuning {
	switch d {
	case Easy:
		return r.Difficulty.Easy
	case Hard:
		return r.Difficulty.Hard
	default:
		return r.Difficulty.Normal
	}
}

// WinScore returns the Checkpoints completion score for d.
func (r Rules) WinScore(d Difficulty) uint32 {
	switch d {
	case Easy:
		return r.Checkpoints.WinAt.Easy
	case Hard:
		return r.Checkpoints.WinAt.Hard
	default:
		return r.Checkpoints.WinAt.Normal
	}
}

// Bounds returns the world rectangle.
func (r Rules) Bounds() core.Box {
	return core.BoxAt(0, 0, r.World.Width/2, r.World.Height/2)
}

// SpawnX is the x centre at which new obstacles enter, just past the right edge.
func (r Rules) SpawnX() float32 {
	return r.World.Width/2 + r.Obstacles.Width/2
}

// MaxGapCenter is the largest |gap centre| that keeps a gap of height h
// EdgeMargin away from the top and bottom of the world.
func (r Rules) MaxGapCenter(h float32) float32 {
	m := r.World.Height/2 - h/2 - r.Obstacles.EdgeMargin
	if m < 0 {
		return 0
	}
	return m
}
