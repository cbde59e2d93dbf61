// Package nav drives the screen flow of the game: menus, slot/mode/difficulty
// /theme selection, the live run and the game-over screen. It owns the only
// run handle and applies finished runs to the active save slot.
package nav

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flap/internal/config"
	"github.com/vovakirdan/tui-flap/internal/core"
	"github.com/vovakirdan/tui-flap/internal/game"
	"github.com/vovakirdan/tui-flap/internal/storage"
)

// State is the current screen.
type State int

const (
	MainMenu State = iota
	SaveSelect
	ModeSelect
	DifficultySelect
	ThemeSelect
	InGame
	GameOver
	// Paused is a valid state with no inbound transition.
	Paused
)

func (s State) String() string {
	switch s {
	case MainMenu:
		return "MainMenu"
	case SaveSelect:
		return "SaveSelect"
	case ModeSelect:
		return "ModeSelect"
	case DifficultySelect:
		return "DifficultySelect"
	case ThemeSelect:
		return "ThemeSelect"
	case InGame:
		return "InGame"
	case GameOver:
		return "GameOver"
	case Paused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// Context is the selection carried from the menus into a run.
type Context struct {
	Slot       int
	Mode       config.Mode
	Difficulty config.Difficulty
	Theme      config.Theme
}

// ProfileStore persists save slots.
type ProfileStore interface {
	Load(slot int) (storage.Profile, error)
	ApplyOutcome(slot int, score uint32, opts ...storage.OutcomeOption) (storage.Profile, error)
	Delete(slot int) error
}

// RunRecorder keeps the run history. Failures are logged, never surfaced.
type RunRecorder interface {
	SaveRun(r storage.RunRecord) (int64, error)
	ClearSlot(slot int) error
}

// lineage identifies a checkpoint chain. A checkpoint only resumes a run of
// the same slot, mode and difficulty.
type lineage struct {
	slot       int
	mode       config.Mode
	difficulty config.Difficulty
}

// Machine is the navigation state machine. It is driven by Tick and is not
// safe for concurrent use.
type Machine struct {
	rules   config.Rules
	store   ProfileStore
	history RunRecorder
	logger  *log.Logger
	seed    func() int64

	state   State
	ctx     Context
	profile storage.Profile
	run     *game.Run
	last    *game.Outcome
	lastErr error
	events  []core.Event

	// checkpoints lives for the session only.
	checkpoints map[lineage]game.SpawnPoint
}

// Option configures a Machine.
type Option func(*Machine)

// WithHistory records finished runs.
func WithHistory(h RunRecorder) Option {
	return func(m *Machine) { m.history = h }
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(m *Machine) { m.logger = l }
}

// WithSeed sets the seed source for new obstacle streams.
func WithSeed(fn func() int64) Option {
	return func(m *Machine) { m.seed = fn }
}

// New returns a machine on the main menu.
func New(rules config.Rules, store ProfileStore, opts ...Option) *Machine {
	m := &Machine{
		rules:       rules,
		store:       store,
		logger:      log.New(io.Discard),
		state:       MainMenu,
		checkpoints: make(map[lineage]game.SpawnPoint),
	}
	m.seed = func() int64 {
		seed, err := core.NewSeed()
		if err != nil {
			m.logger.Warn("seed source failed, using fixed seed", "error", err)
			return 1
		}
		return seed
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// State returns the current screen.
func (m *Machine) State() State { return m.state }

// Context returns the current selection.
func (m *Machine) Context() Context { return m.ctx }

// Events returns the markers raised by the last Tick.
func (m *Machine) Events() []core.Event {
	return append([]core.Event(nil), m.events...)
}

// Tick consumes one batch of intents. Outside a run the first intent that
// causes a transition wins and the rest of the batch is dropped. During a run
// the whole batch goes to the simulator. The returned error is always a
// *storage.PersistenceError and never stops the flow.
func (m *Machine) Tick(dt float32, intents []core.Intent) error {
	m.events = m.events[:0]

	if m.state == InGame {
		return m.tickRun(dt, intents)
	}

	for _, in := range intents {
		moved, err := m.handle(in)
		if moved {
			return err
		}
	}
	return nil
}

// handle applies one intent and reports whether it caused a transition.
func (m *Machine) handle(in core.Intent) (bool, error) {
	switch m.state {
	case MainMenu:
		if in.Kind == core.IntentConfirm {
			m.enter(SaveSelect)
			return true, nil
		}

	case SaveSelect:
		switch in.Kind {
		case core.IntentSelectDigit:
			if in.Digit < 1 || in.Digit > storage.SlotCount {
				return false, nil
			}
			m.ctx.Slot = in.Digit
			err := m.loadProfile()
			m.enter(ModeSelect)
			return true, err
		case core.IntentDeleteSlot:
			if in.Digit < 1 || in.Digit > storage.SlotCount {
				return false, nil
			}
			err := m.deleteSlot(in.Digit)
			m.events = append(m.events, core.EventMenuConfirmed)
			return true, err
		case core.IntentBack:
			m.state = MainMenu
			return true, nil
		}

	case ModeSelect:
		switch in.Kind {
		case core.IntentSelectDigit:
			mode, ok := config.ModeFromDigit(in.Digit)
			if !ok {
				return false, nil
			}
			m.ctx.Mode = mode
			m.enter(DifficultySelect)
			return true, nil
		case core.IntentBack:
			m.state = SaveSelect
			return true, nil
		}

	case DifficultySelect:
		switch in.Kind {
		case core.IntentSelectDigit:
			d, ok := config.DifficultyFromDigit(in.Digit)
			if !ok {
				return false, nil
			}
			m.ctx.Difficulty = d
			m.enter(ThemeSelect)
			return true, nil
		case core.IntentBack:
			m.state = ModeSelect
			return true, nil
		}

	case ThemeSelect:
		switch in.Kind {
		case core.IntentSelectDigit:
			theme, ok := config.ThemeFromDigit(in.Digit)
			if !ok {
				return false, nil
			}
			m.ctx.Theme = theme
			if !m.startRun() {
				return false, nil
			}
			m.enter(InGame)
			return true, nil
		case core.IntentBack:
			m.state = DifficultySelect
			return true, nil
		}

	case GameOver:
		if in.Kind == core.IntentConfirm {
			m.run = nil
			m.enter(MainMenu)
			return true, nil
		}
	}
	return false, nil
}

func (m *Machine) enter(s State) {
	m.state = s
	m.events = append(m.events, core.EventMenuConfirmed)
}

func (m *Machine) loadProfile() error {
	p, err := m.store.Load(m.ctx.Slot)
	if err != nil {
		m.logger.Error("load profile failed", "slot", m.ctx.Slot, "error", err)
		m.profile = storage.DefaultProfile(m.ctx.Slot)
		return m.fail(err)
	}
	m.profile = p
	m.lastErr = nil
	return nil
}

func (m *Machine) deleteSlot(slot int) error {
	for key := range m.checkpoints {
		if key.slot == slot {
			delete(m.checkpoints, key)
		}
	}
	if m.history != nil {
		if err := m.history.ClearSlot(slot); err != nil {
			m.logger.Warn("clear run history failed", "slot", slot, "error", err)
		}
	}
	if err := m.store.Delete(slot); err != nil {
		m.logger.Error("delete slot failed", "slot", slot, "error", err)
		return m.fail(err)
	}
	m.logger.Info("slot deleted", "slot", slot)
	m.lastErr = nil
	return nil
}

func (m *Machine) startRun() bool {
	var cp *game.SpawnPoint
	if m.ctx.Mode == config.Checkpoints {
		if saved, ok := m.checkpoints[lineage{m.ctx.Slot, m.ctx.Mode, m.ctx.Difficulty}]; ok {
			cp = &saved
		}
	}

	run, err := game.Start(m.rules, m.ctx.Mode, m.ctx.Difficulty, cp, m.seed())
	if err != nil {
		m.logger.Error("start run failed", "error", err)
		return false
	}
	m.run = run
	m.last = nil
	m.logger.Info("run started",
		"slot", m.ctx.Slot,
		"mode", m.ctx.Mode,
		"difficulty", m.ctx.Difficulty,
		"theme", m.ctx.Theme,
		"resumed", cp != nil,
	)
	return true
}

func (m *Machine) tickRun(dt float32, intents []core.Intent) error {
	out := m.run.Tick(dt, intents)
	m.events = append(m.events, m.run.Events()...)
	if out == nil {
		return nil
	}
	return m.finishRun(out)
}

func (m *Machine) finishRun(out *game.Outcome) error {
	m.last = out
	m.state = GameOver
	m.trackCheckpoint(out)

	m.logger.Info("run ended",
		"slot", m.ctx.Slot,
		"outcome", out.Reason,
		"score", out.Score,
		"elapsed", out.Elapsed,
	)

	if m.history != nil {
		rec := storage.RunRecord{
			Slot:       m.ctx.Slot,
			Mode:       out.Mode.String(),
			Difficulty: out.Difficulty.String(),
			Theme:      m.ctx.Theme.String(),
			Outcome:    out.Reason.String(),
			Score:      out.Score,
			Elapsed:    float64(out.Elapsed),
		}
		if _, err := m.history.SaveRun(rec); err != nil {
			m.logger.Warn("record run failed", "slot", m.ctx.Slot, "error", err)
		}
	}

	p, err := m.store.ApplyOutcome(m.ctx.Slot, out.Score,
		storage.WithSurvival(float64(out.Elapsed)),
		storage.WithSelection(m.ctx.Mode, m.ctx.Difficulty, m.ctx.Theme),
	)
	if err != nil {
		m.logger.Error("save profile failed", "slot", m.ctx.Slot, "error", err)
		// Keep the in-memory profile current so the game-over screen is right.
		if p.Slot == 0 {
			p = m.profile.Apply(out.Score, storage.WithSurvival(float64(out.Elapsed)))
		}
		m.profile = p
		return m.fail(err)
	}
	m.profile = p
	m.lastErr = nil
	return nil
}

func (m *Machine) trackCheckpoint(out *game.Outcome) {
	if out.Mode != config.Checkpoints {
		return
	}
	key := lineage{m.ctx.Slot, out.Mode, out.Difficulty}
	switch {
	case out.Reason == game.Won:
		delete(m.checkpoints, key)
	case out.Checkpoint != nil:
		m.checkpoints[key] = *out.Checkpoint
	}
}

// fail records err for the snapshot, wrapping foreign errors so callers can
// rely on the PersistenceError type.
func (m *Machine) fail(err error) error {
	var perr *storage.PersistenceError
	if !errors.As(err, &perr) {
		perr = &storage.PersistenceError{Op: "access", Slot: m.ctx.Slot, Err: err}
	}
	m.lastErr = perr
	return perr
}

// Snapshot is a read-only view for rendering.
type Snapshot struct {
	State      State
	Context    Context
	Profile    storage.Profile
	Run        *game.Snapshot
	Last       *game.Outcome
	Checkpoint *game.SpawnPoint // saved lineage for the current slot and difficulty
	Err        error
}

// Snapshot captures the machine state.
func (m *Machine) Snapshot() Snapshot {
	snap := Snapshot{
		State:   m.state,
		Context: m.ctx,
		Profile: m.profile,
		Last:    m.last,
		Err:     m.lastErr,
	}
	if m.run != nil {
		rs := m.run.Snapshot()
		snap.Run = &rs
	}
	if cp, ok := m.checkpoints[lineage{m.ctx.Slot, config.Checkpoints, m.ctx.Difficulty}]; ok {
		snap.Checkpoint = &cp
	}
	return snap
}
