package config

import "strings"

// Difficulty selects a tuning row.
type Difficulty int

const (
	Easy Difficulty = iota
	Normal
	Hard
)

// Mode selects the scoring and termination rules of a run.
type Mode int

const (
	Endless Mode = iota
	TimeAttack
	Checkpoints
)

// Theme is a cosmetic skin chosen before a run.
type Theme int

const (
	Classic Theme = iota
	HighContrast
	Minimal
)

var (
	difficultyNames = []string{"Easy", "Normal", "Hard"}
	modeNames       = []string{"Endless", "TimeAttack", "Checkpoints"}
	themeNames      = []string{"Classic", "HighContrast", "Minimal"}
)

func (d Difficulty) String() string { return nameOf(difficultyNames, int(d)) }
func (m Mode) String() string       { return nameOf(modeNames, int(m)) }
func (t Theme) String() string      { return nameOf(themeNames, int(t)) }

// Valid reports whether d is a known difficulty.
func (d Difficulty) Valid() bool { return d >= Easy && d <= Hard }

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool { return m >= Endless && m <= Checkpoints }

// Valid reports whether t is a known theme.
func (t Theme) Valid() bool { return t >= Classic && t <= Minimal }

// AllDifficulties lists every difficulty in menu order.
func AllDifficulties() []Difficulty { return []Difficulty{Easy, Normal, Hard} }

// AllModes lists every mode in menu order.
func AllModes() []Mode { return []Mode{Endless, TimeAttack, Checkpoints} }

// AllThemes lists every theme in menu order.
func AllThemes() []Theme { return []Theme{Classic, HighContrast, Minimal} }

// ParseDifficulty accepts a difficulty tag in any case, with or without separators.
func ParseDifficulty(s string) (Difficulty, error) {
	i, err := parseTag("difficulty", difficultyNames, s)
	return Difficulty(i), err
}

// ParseMode accepts a mode tag such as "TimeAttack" or "time-attack".
func ParseMode(s string) (Mode, error) {
	i, err := parseTag("mode", modeNames, s)
	return Mode(i), err
}

// ParseTheme accepts a theme tag such as "HighContrast" or "high_contrast".
func ParseTheme(s string) (Theme, error) {
	i, err := parseTag("theme", themeNames, s)
	return Theme(i), err
}

// DifficultyFromDigit maps menu digit 1..3 to a difficulty.
func DifficultyFromDigit(n int) (Difficulty, bool) {
	d := Difficulty(n - 1)
	return d, d.Valid()
}

// ModeFromDigit maps menu digit 1..3 to a mode.
func ModeFromDigit(n int) (Mode, bool) {
	m := Mode(n - 1)
	return m, m.Valid()
}

// ThemeFromDigit maps menu digit 1..3 to a theme.
func ThemeFromDigit(n int) (Theme, bool) {
	t := Theme(n - 1)
	return t, t.Valid()
}

func nameOf(names []string, i int) string {
	if i < 0 || i >= len(names) {
		return "Unknown"
	}
	return names[i]
}

func normalizeTag(s string) string {
	return strings.NewReplacer("_", "", "-", "", " ", "").Replace(strings.ToLower(strings.TrimSpace(s)))
}

func parseTag(field string, names []string, s string) (int, error) {
	want := normalizeTag(s)
	for i, name := range names {
		if normalizeTag(name) == want {
			return i, nil
		}
	}
	return 0, &Error{Field: field, Value: s, Reason: "unknown tag"}
}
