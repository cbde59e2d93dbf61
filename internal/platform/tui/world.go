package tui

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-flap/internal/config"
	"github.com/vovakirdan/tui-flap/internal/core"
	"github.com/vovakirdan/tui-flap/internal/game"
	"github.com/vovakirdan/tui-flap/internal/storage"
)

// starParallax is the fraction of the scroll speed the background moves at.
const starParallax = 0.3

// viewport maps world coordinates onto a screen rectangle.
type viewport struct {
	bounds core.Box
	area   core.Rect
}

// cellEpsilon absorbs float32 error so values on a cell border land right.
const cellEpsilon = 1e-3

func (v viewport) col(x float32) int {
	f := (x - v.bounds.MinX) / v.bounds.Width() * float32(v.area.W)
	return v.area.X + int(math.Floor(float64(f)+cellEpsilon))
}

func (v viewport) row(y float32) int {
	f := (v.bounds.MaxY - y) / v.bounds.Height() * float32(v.area.H)
	return v.area.Y + int(math.Floor(float64(f)+cellEpsilon))
}

// worldY returns the world y at the middle of a screen row.
func (v viewport) worldY(row int) float32 {
	return v.bounds.MaxY - (float32(row-v.area.Y)+0.5)/float32(v.area.H)*v.bounds.Height()
}

// drawRun draws the HUD on the top row and the playfield below it.
func drawRun(s *core.Screen, pal Palette, run *game.Snapshot, profile storage.Profile, flash string) {
	if run == nil || s.Height() < 3 || s.Width() < 10 {
		return
	}
	vp := viewport{bounds: run.Bounds, area: core.NewRect(0, 1, s.Width(), s.Height()-1)}

	drawStars(s, pal, vp, run.Distance)
	drawObstacles(s, pal, vp, run)
	drawGround(s, pal, vp)

	cx := (run.Avatar.MinX + run.Avatar.MaxX) / 2
	ar := core.Clamp(vp.row(run.Y), vp.area.Y, vp.area.Bottom()-1)
	s.SetColored(vp.col(cx), ar, pal.AvatarRune, pal.Avatar)

	drawHUD(s, pal, run, profile)
	if flash != "" {
		s.DrawTextCentered(vp.area.Y+1, flash, pal.Accent)
	}
}

func drawStars(s *core.Screen, pal Palette, vp viewport, distance float32) {
	if pal.StarRune == 0 || vp.area.H < 3 {
		return
	}
	w := vp.area.W
	shift := int(distance * starParallax / vp.bounds.Width() * float32(w))
	for i := 0; i < w/5; i++ {
		x := ((i*11+3-shift)%w + w) % w
		y := vp.area.Y + (i*7)%(vp.area.H-1)
		s.SetColored(vp.area.X+x, y, pal.StarRune, pal.Star)
	}
}

func drawObstacles(s *core.Screen, pal Palette, vp viewport, run *game.Snapshot) {
	for _, o := range run.Obstacles {
		c0 := vp.col(o.X - run.Width/2)
		c1 := vp.col(o.X + run.Width/2)
		if c1 <= c0 {
			c1 = c0 + 1
		}
		gap := o.Gap(run.Width)
		for r := vp.area.Y; r < vp.area.Bottom(); r++ {
			wy := vp.worldY(r)
			if wy >= gap.MinY && wy <= gap.MaxY {
				continue
			}
			for c := c0; c < c1; c++ {
				s.SetColored(c, r, pal.ObstacleRune, pal.Obstacle)
			}
		}
	}
}

func drawGround(s *core.Screen, pal Palette, vp viewport) {
	y := vp.area.Bottom() - 1
	for x := vp.area.X; x < vp.area.Right(); x++ {
		if s.Get(x, y) == ' ' || s.Get(x, y) == pal.StarRune {
			s.SetColored(x, y, pal.GroundRune, pal.Ground)
		}
	}
}

func drawHUD(s *core.Screen, pal Palette, run *game.Snapshot, profile storage.Profile) {
	s.DrawHLine(0, 0, s.Width(), ' ', pal.Text)

	left := fmt.Sprintf(" SCORE %d", run.Score)
	s.DrawText(0, 0, left, pal.Accent)

	var mid string
	switch run.Mode {
	case config.TimeAttack:
		mid = fmt.Sprintf("TIME %.1f", run.TimeLeft)
	case config.Checkpoints:
		mid = fmt.Sprintf("NEXT %d", run.NextGoal)
		if run.WinAt > 0 {
			mid += fmt.Sprintf("  GOAL %d", run.WinAt)
		}
	default:
		mid = fmt.Sprintf("%s / %s", run.Mode, run.Difficulty)
	}
	s.DrawTextCentered(0, mid, pal.Text)

	best := max(profile.HighScore, run.Score)
	right := fmt.Sprintf("BEST %d ", best)
	s.DrawText(s.Width()-len(right), 0, right, pal.Muted)
}
