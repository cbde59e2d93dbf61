package tui

import (
	"os"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flap/internal/config"
	"github.com/vovakirdan/tui-flap/internal/core"
	"github.com/vovakirdan/tui-flap/internal/game"
	"github.com/vovakirdan/tui-flap/internal/nav"
	"github.com/vovakirdan/tui-flap/internal/storage"
)

func levelRules() config.Rules {
	r := config.DefaultRules()
	r.Difficulty.Normal.Gravity = 0
	r.Difficulty.Normal.GapOffset = 0
	return r
}

func TestDrawRunLayout(t *testing.T) {
	run, err := game.Start(levelRules(), config.Endless, config.Normal, nil, 7)
	if err != nil {
		t.Fatalf("Start() failed: %v", err)
	}
	snap := run.Snapshot()
	pal := PaletteFor(config.Minimal)

	s := core.NewScreen(40, 12)
	drawRun(s, pal, &snap, storage.Profile{HighScore: 12}, "")

	if got := s.Get(10, 6); got != pal.AvatarRune {
		t.Errorf("avatar cell = %q, expected %q", got, pal.AvatarRune)
	}
	// First column sits at x=4 with its gap centred on y=0.
	if got := s.Get(29, 1); got != pal.ObstacleRune {
		t.Errorf("column above the gap = %q, expected %q", got, pal.ObstacleRune)
	}
	if got := s.Get(29, 6); got != ' ' {
		t.Errorf("gap cell = %q, expected blank", got)
	}
	if got := s.Get(0, 11); got != pal.GroundRune {
		t.Errorf("ground cell = %q, expected %q", got, pal.GroundRune)
	}
	if row := s.Row(0); !strings.HasPrefix(row, " SCORE 0") || !strings.Contains(row, "BEST 12") {
		t.Errorf("HUD = %q", row)
	}
}

func TestDrawRunHUDPerMode(t *testing.T) {
	tests := []struct {
		mode config.Mode
		want string
	}{
		{config.Endless, "Endless / Normal"},
		{config.TimeAttack, "TIME 60.0"},
		{config.Checkpoints, "NEXT 5  GOAL 40"},
	}
	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			run, err := game.Start(config.DefaultRules(), tt.mode, config.Normal, nil, 1)
			if err != nil {
				t.Fatalf("Start() failed: %v", err)
			}
			snap := run.Snapshot()
			s := core.NewScreen(60, 12)
			drawRun(s, PaletteFor(config.Classic), &snap, storage.Profile{}, "")
			if row := s.Row(0); !strings.Contains(row, tt.want) {
				t.Errorf("HUD = %q, expected it to contain %q", row, tt.want)
			}
		})
	}
}

func TestDrawGameOver(t *testing.T) {
	snap := nav.Snapshot{
		State:   nav.GameOver,
		Profile: storage.Profile{Slot: 2, HighScore: 10, TotalGames: 5, AverageScore: 5.6},
		Last:    &game.Outcome{Reason: game.TimedOut, Score: 8, Elapsed: 60, Mode: config.TimeAttack},
	}
	s := core.NewScreen(60, 20)
	Draw(s, snap, nil, "")

	text := s.String()
	for _, want := range []string{"TIME UP", "Score     8", "Best      10", "Average   5.60"} {
		if !strings.Contains(text, want) {
			t.Errorf("game over screen missing %q:\n%s", want, text)
		}
	}
	if strings.Contains(text, "New best!") {
		t.Error("8 is not a new best over 10")
	}
}

func TestDrawShowsPersistenceError(t *testing.T) {
	snap := nav.Snapshot{
		State: nav.MainMenu,
		Err:   &storage.PersistenceError{Op: "save", Slot: 1, Err: errDisk},
	}
	s := core.NewScreen(80, 10)
	Draw(s, snap, nil, "")
	if row := s.Row(9); !strings.Contains(row, "Save failed") {
		t.Errorf("bottom row = %q, expected the save error", row)
	}
}

var errDisk = diskError("disk full")

type diskError string

func (e diskError) Error() string { return string(e) }

func newTestModel(t *testing.T) Model {
	t.Helper()
	slots, err := storage.OpenSlots(t.TempDir())
	if err != nil {
		t.Fatalf("OpenSlots() failed: %v", err)
	}
	machine := nav.New(config.DefaultRules(), slots, nav.WithSeed(func() int64 { return 7 }))
	return NewModel(machine, slots, core.RuntimeConfig{ScreenW: 60, ScreenH: 20, TickRate: 60}, nil)
}

func send(m Model, msg tea.Msg) Model {
	next, _ := m.Update(msg)
	return next.(Model)
}

type clock struct{ now time.Time }

func (c *clock) tick(m Model) Model {
	c.now = c.now.Add(16 * time.Millisecond)
	return send(m, TickMsg(c.now))
}

func TestModelNavigatesToRun(t *testing.T) {
	m := newTestModel(t)
	c := &clock{now: time.Unix(1000, 0)}

	m = c.tick(send(m, tea.KeyMsg{Type: tea.KeyEnter}))
	if m.machine.State() != nav.SaveSelect {
		t.Fatalf("state = %s, expected SaveSelect", m.machine.State())
	}
	if view := m.View(); !strings.Contains(view, "SELECT SAVE SLOT") || !strings.Contains(view, "Player 2") {
		t.Errorf("slot picker view:\n%s", view)
	}

	for _, r := range "121" {
		m = c.tick(send(m, runeKey(r)))
	}
	if m.machine.State() != nav.ThemeSelect {
		t.Fatalf("state = %s, expected ThemeSelect", m.machine.State())
	}

	m = c.tick(send(m, runeKey('1')))
	if m.machine.State() != nav.InGame {
		t.Fatalf("state = %s, expected InGame", m.machine.State())
	}
	if view := m.View(); !strings.Contains(view, "SCORE 0") {
		t.Errorf("run view missing HUD:\n%s", view)
	}
}

func TestModelAppliesOneTransitionPerTick(t *testing.T) {
	m := newTestModel(t)
	c := &clock{now: time.Unix(1000, 0)}

	m = c.tick(send(m, tea.KeyMsg{Type: tea.KeyEnter}))
	m = send(m, runeKey('1'))
	m = send(m, runeKey('2'))
	m = c.tick(m)

	if m.machine.State() != nav.ModeSelect {
		t.Errorf("state = %s, expected ModeSelect", m.machine.State())
	}
	if m.machine.Context().Slot != 1 {
		t.Errorf("slot = %d, expected 1", m.machine.Context().Slot)
	}
	if len(m.pending) != 0 {
		t.Errorf("pending intents not drained: %v", m.pending)
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t)
	next, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if view := next.(Model).View(); view != "" {
		t.Errorf("View() after quit = %q", view)
	}
}

func TestModelScreenshot(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	m := newTestModel(t)
	m = send(m, tea.KeyMsg{Type: tea.KeyCtrlS})

	dir, err := storage.ExpandHome(screenshotDir)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(dir, home) {
		t.Fatalf("screenshot dir %s is outside HOME", dir)
	}
	if m.flash != "SCREENSHOT SAVED" {
		t.Errorf("flash = %q", m.flash)
	}
	entries, err := os.ReadDir(dir)
	if err != nil || len(entries) != 1 {
		t.Fatalf("screenshot dir holds %d entries (err %v), expected 1", len(entries), err)
	}
}

func TestModelResizeKeepsHelpRow(t *testing.T) {
	m := newTestModel(t)
	m = send(m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if m.screen.Width() != 100 || m.screen.Height() != 29 {
		t.Errorf("screen = %dx%d, expected 100x29", m.screen.Width(), m.screen.Height())
	}
}

type fakeHistory struct {
	slots []int
	runs  map[int][]storage.RunRecord
}

func (f *fakeHistory) RecentRuns(slot, limit int) ([]storage.RunRecord, error) {
	f.slots = append(f.slots, slot)
	return f.runs[slot], nil
}

func TestBoardCyclesSlots(t *testing.T) {
	h := &fakeHistory{runs: map[int][]storage.RunRecord{
		2: {{Slot: 2, Mode: "Endless", Difficulty: "Hard", Outcome: "Died", Score: 17, Elapsed: 9.5}},
	}}
	b := NewBoardModel(nil, h, 100, 30)
	if !strings.Contains(b.View(), "No runs recorded") {
		t.Error("slot 1 should be empty")
	}

	next, _ := b.Update(tea.KeyMsg{Type: tea.KeyTab})
	b = next.(BoardModel)
	if b.slot != 2 || len(b.runs) != 1 {
		t.Fatalf("after tab: slot %d with %d runs", b.slot, len(b.runs))
	}

	next, _ = b.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	next, _ = next.(BoardModel).Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	b = next.(BoardModel)
	if b.slot != 3 {
		t.Errorf("shift+tab twice from 2 = slot %d, expected 3", b.slot)
	}

	want := []int{1, 2, 1, 3}
	if len(h.slots) != len(want) {
		t.Fatalf("history queried for %v, expected %v", h.slots, want)
	}
	for i := range want {
		if h.slots[i] != want[i] {
			t.Errorf("history queried for %v, expected %v", h.slots, want)
			break
		}
	}
}
