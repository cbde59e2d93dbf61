package game

import (
	"math/rand"

	"github.com/vovakirdan/tui-flap/internal/config"
	"github.com/vovakirdan/tui-flap/internal/core"
)

// Obstacle is a full-height column with one open gap. X is the column centre.
type Obstacle struct {
	Index     int // position in the stream, counted from the run's seed
	X         float32
	GapCenter float32
	GapHeight float32
	Passed    bool
}

// Span returns the horizontal extent of the column as a full-height box.
func (o Obstacle) Span(width, worldH float32) core.Box {
	return core.BoxAt(o.X, 0, width/2, worldH/2)
}

// Gap returns the open part of the column.
func (o Obstacle) Gap(width float32) core.Box {
	return core.BoxAt(o.X, o.GapCenter, width/2, o.GapHeight/2)
}

// Solid returns the two blocking pieces of the column, above and below the gap.
func (o Obstacle) Solid(width, worldH float32) (top, bottom core.Box) {
	span := o.Span(width, worldH)
	gap := o.Gap(width)
	top = core.Box{MinX: span.MinX, MaxX: span.MaxX, MinY: gap.MaxY, MaxY: span.MaxY}
	bottom = core.Box{MinX: span.MinX, MaxX: span.MaxX, MinY: span.MinY, MaxY: gap.MinY}
	return top, bottom
}

// Blocks reports whether the avatar box overlaps the solid part of the column.
func (o Obstacle) Blocks(avatar core.Box, width, worldH float32) bool {
	top, bottom := o.Solid(width, worldH)
	return avatar.Intersects(top) || avatar.Intersects(bottom)
}

// Stream owns the ordered obstacle sequence of one run. Gap centres come from
// a seeded source with exactly one draw per obstacle, so a stream can be
// rebuilt from any index.
type Stream struct {
	obstacles []Obstacle
	rng       *rand.Rand
	seed      int64
	next      int

	width     float32
	spacing   float32
	spawnX    float32
	leftBound float32
	worldH    float32
	gapHeight float32
	gapOffset float32
	maxCenter float32
}

// NewStream creates a stream whose first obstacle has index start and sits at
// the rules' first_x. Earlier draws are skipped so gap centres match a stream
// started at zero with the same seed.
func NewStream(rules config.Rules, tuning config.Tuning, seed int64, start int) *Stream {
	s := &Stream{
		obstacles: make([]Obstacle, 0, 8),
		rng:       rand.New(rand.NewSource(seed)),
		seed:      seed,
		width:     rules.Obstacles.Width,
		spacing:   rules.Obstacles.Spacing,
		spawnX:    rules.SpawnX(),
		leftBound: -rules.World.Width / 2,
		worldH:    rules.World.Height,
		gapHeight: tuning.GapHeight,
		gapOffset: tuning.GapOffset,
		maxCenter: rules.MaxGapCenter(tuning.GapHeight),
	}
	for i := 0; i < start; i++ {
		s.rng.Float32()
	}
	s.next = start
	s.spawn(rules.Obstacles.FirstX)
	s.fill()
	return s
}

// Advance scrolls every obstacle left by dist, drops passed obstacles that
// left the world and spawns new ones on the right.
func (s *Stream) Advance(dist float32) {
	for i := range s.obstacles {
		s.obstacles[i].X -= dist
	}

	drop := 0
	for drop < len(s.obstacles) {
		o := s.obstacles[drop]
		if !o.Passed || o.X+s.width/2 >= s.leftBound {
			break
		}
		drop++
	}
	if drop > 0 {
		s.obstacles = append(s.obstacles[:0], s.obstacles[drop:]...)
	}

	s.fill()
}

// fill spawns until the rightmost obstacle is within one spacing of spawnX.
func (s *Stream) fill() {
	for {
		if len(s.obstacles) == 0 {
			s.spawn(s.spawnX)
			continue
		}
		last := s.obstacles[len(s.obstacles)-1]
		if last.X >= s.spawnX-s.spacing {
			return
		}
		s.spawn(last.X + s.spacing)
	}
}

func (s *Stream) spawn(x float32) {
	center := (2*s.rng.Float32() - 1) * s.gapOffset
	s.obstacles = append(s.obstacles, Obstacle{
		Index:     s.next,
		X:         x,
		GapCenter: core.ClampF(center, -s.maxCenter, s.maxCenter),
		GapHeight: s.gapHeight,
	})
	s.next++
}

// Collides reports whether the avatar hits any obstacle it overlaps horizontally.
func (s *Stream) Collides(avatar core.Box) bool {
	for _, o := range s.obstacles {
		if o.Blocks(avatar, s.width, s.worldH) {
			return true
		}
	}
	return false
}

// MarkPassed flags every obstacle whose trailing edge is left of x and
// returns the indices that flipped on this call.
func (s *Stream) MarkPassed(x float32) []int {
	var flipped []int
	for i := range s.obstacles {
		o := &s.obstacles[i]
		if !o.Passed && o.X+s.width/2 < x {
			o.Passed = true
			flipped = append(flipped, o.Index)
		}
	}
	return flipped
}

// Obstacles returns a copy of the live obstacles, ordered by X.
func (s *Stream) Obstacles() []Obstacle {
	return append([]Obstacle(nil), s.obstacles...)
}

// Seed returns the seed the stream was built from.
func (s *Stream) Seed() int64 { return s.seed }

// Width returns the obstacle column width.
func (s *Stream) Width() float32 { return s.width }
