package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flap/internal/core"
	"github.com/vovakirdan/tui-flap/internal/nav"
)

// KeyMap holds the key bindings of the game screen.
type KeyMap struct {
	Confirm    key.Binding
	Back       key.Binding
	Flap       key.Binding
	Select     key.Binding
	Delete     key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Confirm: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "confirm"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Flap: key.NewBinding(
			key.WithKeys(" ", "up", "w"),
			key.WithHelp("space", "flap"),
		),
		Select: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5"),
			key.WithHelp("1-3", "select"),
		),
		// Shifted digits cover terminals that swallow alt.
		Delete: key.NewBinding(
			key.WithKeys("alt+1", "alt+2", "alt+3", "!", "@", "#"),
			key.WithHelp("alt+1-3", "delete slot"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

var deleteDigits = map[string]int{
	"alt+1": 1, "alt+2": 2, "alt+3": 3,
	"!": 1, "@": 2, "#": 3,
}

// Intents translates a key press into intents for the given screen.
// Space flaps during a run and confirms everywhere else.
func (k KeyMap) Intents(msg tea.KeyMsg, state nav.State) []core.Intent {
	if state == nav.InGame {
		if key.Matches(msg, k.Flap) {
			return []core.Intent{core.Flap()}
		}
		return nil
	}

	switch {
	case key.Matches(msg, k.Delete):
		return []core.Intent{core.DeleteSlot(deleteDigits[msg.String()])}
	case key.Matches(msg, k.Select):
		return []core.Intent{core.SelectDigit(int(msg.String()[0] - '0'))}
	case key.Matches(msg, k.Confirm):
		return []core.Intent{core.Confirm()}
	case key.Matches(msg, k.Back):
		return []core.Intent{core.Back()}
	}
	return nil
}

// stateHelp adapts KeyMap to help.KeyMap for one screen.
type stateHelp struct {
	keys  KeyMap
	state nav.State
}

func (h stateHelp) ShortHelp() []key.Binding {
	k := h.keys
	switch h.state {
	case nav.MainMenu:
		return []key.Binding{k.Confirm, k.Quit}
	case nav.SaveSelect:
		return []key.Binding{k.Select, k.Delete, k.Back, k.Quit}
	case nav.ModeSelect, nav.DifficultySelect, nav.ThemeSelect:
		return []key.Binding{k.Select, k.Back, k.Quit}
	case nav.InGame:
		return []key.Binding{k.Flap, k.Screenshot, k.Quit}
	case nav.GameOver:
		return []key.Binding{k.Confirm, k.Screenshot, k.Quit}
	default:
		return []key.Binding{k.Quit}
	}
}

func (h stateHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp()}
}
