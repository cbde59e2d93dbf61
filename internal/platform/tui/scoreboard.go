package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-flap/internal/storage"
)

const (
	minWidthForSidebar = 80
	sidebarWidth       = 24
	boardRuns          = 50
)

// RunHistory is the part of the history store the board reads.
type RunHistory interface {
	RecentRuns(slot, limit int) ([]storage.RunRecord, error)
}

// BoardKeyMap defines the key bindings of the board.
type BoardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextSlot key.Binding
	PrevSlot key.Binding
	Quit     key.Binding
}

func (k BoardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextSlot, k.PrevSlot, k.Quit}
}

func (k BoardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.NextSlot, k.PrevSlot, k.Quit}}
}

// DefaultBoardKeyMap returns the default board bindings.
func DefaultBoardKeyMap() BoardKeyMap {
	return BoardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextSlot: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next slot"),
		),
		PrevSlot: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev slot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// BoardModel shows the three slots and the recent runs of the selected one.
type BoardModel struct {
	profiles []storage.Profile
	history  RunHistory
	slot     int // 1-based
	runs     []storage.RunRecord
	loadErr  error
	table    table.Model
	help     help.Model
	keys     BoardKeyMap
	width    int
	height   int
	quitting bool
}

// NewBoardModel creates a board. history may be nil, in which case only
// the slot summaries are shown.
func NewBoardModel(profiles []storage.Profile, history RunHistory, width, height int) BoardModel {
	m := BoardModel{
		profiles: profiles,
		history:  history,
		slot:     1,
		help:     help.New(),
		keys:     DefaultBoardKeyMap(),
		width:    width,
		height:   height,
	}
	m.table = m.newTable()
	m.loadRuns()
	return m
}

func (m *BoardModel) showSidebar() bool {
	return m.width >= minWidthForSidebar
}

func (m *BoardModel) newTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Score", Width: 7},
		{Title: "Mode", Width: 12},
		{Title: "Diff", Width: 7},
		{Title: "Outcome", Width: 9},
		{Title: "Time", Width: 7},
		{Title: "Date", Width: 13},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("22")).
		Bold(false)
	t.SetStyles(s)
	return t
}

func (m *BoardModel) loadRuns() {
	m.runs, m.loadErr = nil, nil
	if m.history != nil {
		m.runs, m.loadErr = m.history.RecentRuns(m.slot, boardRuns)
	}

	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", r.Score),
			r.Mode,
			r.Difficulty,
			r.Outcome,
			fmt.Sprintf("%.1fs", r.Elapsed),
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m *BoardModel) profile() storage.Profile {
	if m.slot-1 < len(m.profiles) {
		return m.profiles[m.slot-1]
	}
	return storage.DefaultProfile(m.slot)
}

// Init implements tea.Model.
func (m BoardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the board.
func (m BoardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextSlot):
			m.slot = m.slot%storage.SlotCount + 1
			m.loadRuns()
			return m, nil
		case key.Matches(msg, m.keys.PrevSlot):
			m.slot = (m.slot+storage.SlotCount-2)%storage.SlotCount + 1
			m.loadRuns()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.table = m.newTable()
		m.loadRuns()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the board.
func (m BoardModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render(centerText("FLAP BOARD", m.width)))
	b.WriteString("\n\n")

	panel := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	content := m.summary() + "\n\n" + m.tableContent()
	if m.showSidebar() {
		side := panel.Width(sidebarWidth).Render(m.sidebar())
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, side, "  ", panel.Render(content)))
	} else {
		b.WriteString(centerText(m.tabs(), m.width))
		b.WriteString("\n\n")
		b.WriteString(panel.Render(content))
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render(m.help.View(m.keys)))
	return b.String()
}

func (m BoardModel) sidebar() string {
	var sb strings.Builder
	sb.WriteString("Slots\n")
	sb.WriteString(strings.Repeat("-", sidebarWidth-4))
	sb.WriteString("\n")
	for slot := 1; slot <= storage.SlotCount; slot++ {
		p := storage.DefaultProfile(slot)
		if slot-1 < len(m.profiles) {
			p = m.profiles[slot-1]
		}
		cursor, style := "  ", lipgloss.NewStyle()
		if slot == m.slot {
			cursor, style = "> ", style.Bold(true).Foreground(lipgloss.Color("229"))
		}
		sb.WriteString(style.Render(fmt.Sprintf("%s%d %-10s %5d", cursor, slot, p.Name, p.HighScore)))
		sb.WriteString("\n")
	}
	return sb.String()
}

func (m BoardModel) tabs() string {
	active := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("22")).Padding(0, 1)
	idle := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	tabs := make([]string, storage.SlotCount)
	for i := range tabs {
		label := fmt.Sprintf("Slot %d", i+1)
		if i+1 == m.slot {
			tabs[i] = active.Render(label)
		} else {
			tabs[i] = idle.Render(label)
		}
	}
	return strings.Join(tabs, " ")
}

func (m BoardModel) summary() string {
	p := m.profile()
	if !p.Played() {
		return fmt.Sprintf("%s  (empty)", p.Name)
	}
	return fmt.Sprintf("%s  best %d  games %d  avg %.2f  longest %.1fs\nlast played %s / %s",
		p.Name, p.HighScore, p.TotalGames, p.AverageScore, p.LongestSurvival,
		p.LastMode, p.LastDifficulty)
}

func (m BoardModel) tableContent() string {
	muted := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true)
	switch {
	case m.loadErr != nil:
		return muted.Render("History unavailable: " + m.loadErr.Error())
	case len(m.runs) == 0:
		return muted.Render("No runs recorded for this slot yet.")
	}
	return m.table.View()
}

// RunBoard runs the board screen until the user quits.
func RunBoard(profiles []storage.Profile, history RunHistory, width, height int) error {
	p := tea.NewProgram(NewBoardModel(profiles, history, width, height), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
