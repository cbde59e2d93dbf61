package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flap/internal/core"
	"github.com/vovakirdan/tui-flap/internal/nav"
	"github.com/vovakirdan/tui-flap/internal/storage"
)

// flashDuration is how long a HUD message stays up, in seconds.
const flashDuration = 1.5

// screenshotDir is where ctrl+s dumps the screen.
const screenshotDir = "~/.flap/screenshots"

// ProfileLister lists the save slots for the slot picker.
type ProfileLister interface {
	List() ([]storage.Profile, error)
}

// Model is the Bubble Tea model hosting the navigation machine. Keys are
// queued as intents and handed over in one batch on the next tick.
type Model struct {
	machine *nav.Machine
	slots   ProfileLister
	keys    KeyMap
	help    help.Model
	screen  *core.Screen
	config  core.RuntimeConfig
	logger  *log.Logger

	pending   []core.Intent
	lastTick  time.Time
	state     nav.State
	profiles  []storage.Profile
	flash     string
	flashLeft float32
	quitting  bool
}

// NewModel creates a model around machine. slots may be nil.
func NewModel(machine *nav.Machine, slots ProfileLister, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	m := Model{
		machine: machine,
		slots:   slots,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		screen:  core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 1)),
		config:  cfg,
		logger:  logger,
		state:   machine.State(),
	}
	m.refreshProfiles()
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	case TickMsg:
		return m.handleTick(time.Time(msg))
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
			m.setFlash("SCREENSHOT SAVED")
		}
		return m, nil
	}

	m.pending = append(m.pending, m.keys.Intents(msg, m.machine.State())...)
	return m, nil
}

func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	// The bottom row belongs to the help line.
	m.screen.Resize(msg.Width, max(msg.Height-1, 1))
	m.help.Width = msg.Width
	return m, nil
}

func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := frameDelta(m.lastTick, now, m.config.TickRate)
	m.lastTick = now

	intents := m.pending
	m.pending = nil
	if err := m.machine.Tick(dt, intents); err != nil {
		m.logger.Debug("tick reported a persistence error", "error", err)
	}

	events := m.machine.Events()
	for _, ev := range events {
		switch ev {
		case core.EventCheckpointReached:
			m.setFlash("CHECKPOINT")
		case core.EventMenuConfirmed:
			m.flash, m.flashLeft = "", 0
		}
	}
	if m.flashLeft > 0 {
		m.flashLeft -= dt
		if m.flashLeft <= 0 {
			m.flash = ""
		}
	}

	state := m.machine.State()
	if state == nav.SaveSelect && (m.state != nav.SaveSelect || len(events) > 0) {
		m.refreshProfiles()
	}
	m.state = state

	return m, tickCmd(m.config.TickRate)
}

func (m *Model) setFlash(text string) {
	m.flash = text
	m.flashLeft = flashDuration
}

func (m *Model) refreshProfiles() {
	if m.slots == nil {
		return
	}
	profiles, err := m.slots.List()
	if err != nil {
		m.logger.Warn("list slots failed", "error", err)
	}
	m.profiles = profiles
}

func (m *Model) saveScreenshot() (string, error) {
	m.draw()

	dir, err := storage.ExpandHome(screenshotDir)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	name := fmt.Sprintf("flap_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	return path, os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// draw renders the current snapshot into the screen buffer.
func (m *Model) draw() nav.Snapshot {
	snap := m.machine.Snapshot()
	m.screen.Clear()
	Draw(m.screen, snap, m.profiles, m.flash)
	return snap
}

// Draw renders a machine snapshot with the palette of its theme.
func Draw(s *core.Screen, snap nav.Snapshot, profiles []storage.Profile, flash string) {
	pal := PaletteFor(snap.Context.Theme)
	switch snap.State {
	case nav.MainMenu:
		drawMainMenu(s, pal, snap)
	case nav.SaveSelect:
		drawSaveSelect(s, pal, snap, profiles)
	case nav.ModeSelect:
		drawModeSelect(s, pal, snap)
	case nav.DifficultySelect:
		drawDifficultySelect(s, pal, snap)
	case nav.ThemeSelect:
		drawThemeSelect(s, pal, snap)
	case nav.InGame:
		drawRun(s, pal, snap.Run, snap.Profile, flash)
	case nav.GameOver:
		drawGameOver(s, pal, snap)
	case nav.Paused:
		s.DrawTextCentered(s.Height()/2, "PAUSED", pal.Accent)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	snap := m.draw()
	pal := PaletteFor(snap.Context.Theme)
	helpLine := lipgloss.NewStyle().Foreground(pal.Help).
		Render(m.help.View(stateHelp{keys: m.keys, state: snap.State}))
	return RenderScreen(m.screen) + "\n" + helpLine
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(machine *nav.Machine, slots ProfileLister, cfg core.RuntimeConfig, logger *log.Logger) error {
	p := tea.NewProgram(
		NewModel(machine, slots, cfg, logger),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
