package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-flap/internal/config"
	"github.com/vovakirdan/tui-flap/internal/core"
)

// Palette is the look of one theme: cell colours and glyphs for the
// playfield plus lipgloss colours for the chrome around it.
type Palette struct {
	Name string

	Avatar   core.Color
	Obstacle core.Color
	Ground   core.Color
	Star     core.Color
	Text     core.Color
	Accent   core.Color
	Muted    core.Color
	Danger   core.Color

	AvatarRune   rune
	ObstacleRune rune
	GroundRune   rune
	StarRune     rune // zero disables the background

	Title lipgloss.Color
	Help  lipgloss.Color
}

var (
	paletteClassic = Palette{
		Name:         "classic",
		Avatar:       core.ColorBrightYellow,
		Obstacle:     core.ColorGreen,
		Ground:       core.ColorOrange,
		Star:         core.ColorGray,
		Text:         core.ColorWhite,
		Accent:       core.ColorBrightYellow,
		Muted:        core.ColorGray,
		Danger:       core.ColorRed,
		AvatarRune:   '@',
		ObstacleRune: '█',
		GroundRune:   '▀',
		StarRune:     '.',
		Title:        lipgloss.Color("229"),
		Help:         lipgloss.Color("241"),
	}

	paletteHighContrast = Palette{
		Name:         "high-contrast",
		Avatar:       core.ColorBrightYellow,
		Obstacle:     core.ColorBrightWhite,
		Ground:       core.ColorBrightWhite,
		Text:         core.ColorBrightWhite,
		Accent:       core.ColorBrightYellow,
		Muted:        core.ColorWhite,
		Danger:       core.ColorBrightYellow,
		AvatarRune:   '@',
		ObstacleRune: '█',
		GroundRune:   '=',
		Title:        lipgloss.Color("15"),
		Help:         lipgloss.Color("15"),
	}

	paletteMinimal = Palette{
		Name:         "minimal",
		Avatar:       core.ColorDefault,
		Obstacle:     core.ColorGray,
		Ground:       core.ColorGray,
		Text:         core.ColorDefault,
		Accent:       core.ColorDefault,
		Muted:        core.ColorGray,
		Danger:       core.ColorDefault,
		AvatarRune:   'o',
		ObstacleRune: '|',
		GroundRune:   '-',
		Title:        lipgloss.Color("250"),
		Help:         lipgloss.Color("245"),
	}
)

// PaletteFor returns the palette of a theme. Unknown themes get Classic.
func PaletteFor(t config.Theme) Palette {
	switch t {
	case config.HighContrast:
		return paletteHighContrast
	case config.Minimal:
		return paletteMinimal
	default:
		return paletteClassic
	}
}
