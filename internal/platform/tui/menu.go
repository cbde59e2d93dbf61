package tui

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-flap/internal/config"
	"github.com/vovakirdan/tui-flap/internal/core"
	"github.com/vovakirdan/tui-flap/internal/game"
	"github.com/vovakirdan/tui-flap/internal/nav"
	"github.com/vovakirdan/tui-flap/internal/storage"
)

// menuOption is one numbered line of a selection screen.
type menuOption struct {
	label   string
	detail  string
	current bool // last used on this slot
}

var (
	modeDetails = map[config.Mode]string{
		config.Endless:     "fly until you crash",
		config.TimeAttack:  "score all you can before time runs out",
		config.Checkpoints: "progress is kept at every checkpoint",
	}
	difficultyDetails = map[config.Difficulty]string{
		config.Easy:   "wide gaps, gentle gravity",
		config.Normal: "standard tuning",
		config.Hard:   "narrow gaps, heavy gravity",
	}
	themeDetails = map[config.Theme]string{
		config.Classic:      "green columns, starry sky",
		config.HighContrast: "bold white on black",
		config.Minimal:      "plain ascii",
	}
)

// drawMenuScreen draws a title, a subtitle and a numbered option list.
func drawMenuScreen(s *core.Screen, pal Palette, title, subtitle string, opts []menuOption) int {
	row := 2
	if s.Height() < 14 {
		row = 0
	}
	s.DrawTextCentered(row, title, pal.Accent)
	row += 2
	if subtitle != "" {
		s.DrawTextCentered(row, subtitle, pal.Text)
		row += 2
	}

	width := 0
	lines := make([]string, len(opts))
	for i, o := range opts {
		line := fmt.Sprintf("%d  %-13s %s", i+1, o.label, o.detail)
		if o.current {
			line += "  *"
		}
		lines[i] = line
		width = max(width, len([]rune(line)))
	}
	x := max((s.Width()-width)/2, 0)
	for i, line := range lines {
		color := pal.Text
		if opts[i].current {
			color = pal.Accent
		}
		s.DrawText(x, row, line, color)
		row++
	}
	return row
}

func drawMainMenu(s *core.Screen, pal Palette, snap nav.Snapshot) {
	row := drawMenuScreen(s, pal, "F L A P", "Thread the gaps. Don't touch anything.", nil)
	s.DrawTextCentered(row+1, "Press Enter to start", pal.Accent)
	drawStatus(s, pal, snap)
}

func drawSaveSelect(s *core.Screen, pal Palette, snap nav.Snapshot, profiles []storage.Profile) {
	opts := make([]menuOption, 0, storage.SlotCount)
	for slot := 1; slot <= storage.SlotCount; slot++ {
		p := storage.DefaultProfile(slot)
		if slot-1 < len(profiles) {
			p = profiles[slot-1]
		}
		detail := "empty"
		if p.Played() {
			detail = fmt.Sprintf("best %-4d games %-4d avg %.1f", p.HighScore, p.TotalGames, p.AverageScore)
		}
		opts = append(opts, menuOption{label: p.Name, detail: detail})
	}
	row := drawMenuScreen(s, pal, "SELECT SAVE SLOT", "", opts)
	s.DrawTextCentered(row+1, "Alt+digit deletes a slot", pal.Muted)
	drawStatus(s, pal, snap)
}

func drawModeSelect(s *core.Screen, pal Palette, snap nav.Snapshot) {
	opts := make([]menuOption, 0, 3)
	for _, m := range config.AllModes() {
		opts = append(opts, menuOption{
			label:   m.String(),
			detail:  modeDetails[m],
			current: snap.Profile.LastMode == m.String(),
		})
	}
	drawMenuScreen(s, pal, "SELECT MODE", snap.Profile.Name, opts)
	drawStatus(s, pal, snap)
}

func drawDifficultySelect(s *core.Screen, pal Palette, snap nav.Snapshot) {
	opts := make([]menuOption, 0, 3)
	for _, d := range config.AllDifficulties() {
		opts = append(opts, menuOption{
			label:   d.String(),
			detail:  difficultyDetails[d],
			current: snap.Profile.LastDifficulty == d.String(),
		})
	}
	drawMenuScreen(s, pal, "SELECT DIFFICULTY", snap.Context.Mode.String(), opts)
	drawStatus(s, pal, snap)
}

func drawThemeSelect(s *core.Screen, pal Palette, snap nav.Snapshot) {
	opts := make([]menuOption, 0, 3)
	for _, t := range config.AllThemes() {
		opts = append(opts, menuOption{
			label:   t.String(),
			detail:  themeDetails[t],
			current: snap.Profile.LastTheme == t.String(),
		})
	}
	subtitle := fmt.Sprintf("%s / %s", snap.Context.Mode, snap.Context.Difficulty)
	row := drawMenuScreen(s, pal, "SELECT THEME", subtitle, opts)
	if snap.Context.Mode == config.Checkpoints && snap.Checkpoint != nil {
		s.DrawTextCentered(row+1, fmt.Sprintf("Resuming from checkpoint at %d", snap.Checkpoint.Score), pal.Accent)
	}
	drawStatus(s, pal, snap)
}

func drawGameOver(s *core.Screen, pal Palette, snap nav.Snapshot) {
	out := snap.Last
	if out == nil {
		return
	}

	title := "GAME OVER"
	color := pal.Danger
	switch out.Reason {
	case game.TimedOut:
		title, color = "TIME UP", pal.Accent
	case game.Won:
		title, color = "COURSE COMPLETE", pal.Accent
	}

	row := max(s.Height()/2-5, 0)
	s.DrawTextCentered(row, title, color)
	row += 2

	p := snap.Profile
	lines := []string{
		fmt.Sprintf("Score     %d", out.Score),
		fmt.Sprintf("Best      %d", p.HighScore),
		fmt.Sprintf("Games     %d", p.TotalGames),
		fmt.Sprintf("Average   %.2f", p.AverageScore),
		fmt.Sprintf("Survived  %.1fs", out.Elapsed),
	}
	if out.Mode == config.Checkpoints && out.Reason == game.Died && out.Checkpoint != nil {
		lines = append(lines, fmt.Sprintf("Next run resumes at %d", out.Checkpoint.Score))
	}
	if out.Score > 0 && out.Score >= p.HighScore {
		lines = append(lines, "New best!")
	}
	for _, line := range lines {
		s.DrawTextCentered(row, line, pal.Text)
		row++
	}

	s.DrawTextCentered(row+1, "Press Enter to continue", pal.Muted)
	drawStatus(s, pal, snap)
}

// drawStatus shows the last persistence error on the bottom row.
func drawStatus(s *core.Screen, pal Palette, snap nav.Snapshot) {
	if snap.Err == nil {
		return
	}
	msg := "Save failed: " + snap.Err.Error()
	if len(msg) > s.Width() {
		msg = msg[:max(s.Width()-3, 0)] + "..."
	}
	s.DrawTextCentered(s.Height()-1, msg, pal.Danger)
}

// centerText centres text within width.
func centerText(text string, width int) string {
	n := len([]rune(text))
	if n >= width {
		return text
	}
	return strings.Repeat(" ", (width-n)/2) + text
}
