// Package tui hosts the game in a Bubble Tea program: it maps keys to
// intents, drives the navigation machine from a wall-clock tick and draws
// snapshots with the active theme.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a simulation tick.
type TickMsg time.Time

// tickCmd returns a command that sends a TickMsg after one frame interval.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameDelta returns the wall-clock seconds between two ticks. The run splits
// long frames itself, so a stall is passed through whole.
func frameDelta(prev, now time.Time, tickRate int) float32 {
	if prev.IsZero() || !now.After(prev) {
		return 1 / float32(tickRate)
	}
	return float32(now.Sub(prev).Seconds())
}
