package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultRulesMatchEmbedded(t *testing.T) {
	rules, source, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	// A developer config under ./configs or ~/.flap would shadow the embedded file.
	if source != SourceEmbedded {
		t.Skipf("rules loaded from %s", source)
	}
	if rules != DefaultRules() {
		t.Errorf("embedded rules differ from DefaultRules():\n%+v\n%+v", rules, DefaultRules())
	}
}

func TestModeRulesLiveBesideModeTags(t *testing.T) {
	r := DefaultRules()
	r.TimeAttack = TimeAttackRules{TimeLimit: 30}
	r.Checkpoints = CheckpointRules{Every: 3, WinAt: WinAt{Normal: 9}}
	if err := r.Validate(); err != nil {
		t.Fatalf("Validate() failed: %v", err)
	}
	if TimeAttack.String() != "TimeAttack" || Checkpoints.String() != "Checkpoints" {
		t.Errorf("mode tags = %s, %s", TimeAttack, Checkpoints)
	}
	if r.WinScore(Normal) != 9 {
		t.Errorf("WinScore(Normal) = %d, expected 9", r.WinScore(Normal))
	}
}

func TestDefaultRulesValid(t *testing.T) {
	r := DefaultRules()
	if err := r.Validate(); err != nil {
		t.Fatalf("Validate() failed: %v", err)
	}
	if w := r.Warnings(); len(w) != 0 {
		t.Errorf("Warnings() = %v, expected none", w)
	}
}

func TestDifficultyOrdering(t *testing.T) {
	r := DefaultRules()
	e, n, h := r.Tuning(Easy), r.Tuning(Normal), r.Tuning(Hard)

	if !(e.GapHeight > n.GapHeight && n.GapHeight > h.GapHeight) {
		t.Errorf("gap heights not strictly decreasing: %v %v %v", e.GapHeight, n.GapHeight, h.GapHeight)
	}
	if !(-e.Gravity < -n.Gravity && -n.Gravity < -h.Gravity) {
		t.Errorf("gravity magnitude not strictly increasing: %v %v %v", e.Gravity, n.Gravity, h.Gravity)
	}
	if h.Gravity != -20 {
		t.Errorf("hard gravity = %v, expected -20", h.Gravity)
	}
}

func TestParseTags(t *testing.T) {
	tests := []struct {
		in   string
		want Mode
	}{
		{"Endless", Endless},
		{"timeattack", TimeAttack},
		{"time-attack", TimeAttack},
		{"Time_Attack", TimeAttack},
		{" CHECKPOINTS ", Checkpoints},
	}
	for _, tc := range tests {
		got, err := ParseMode(tc.in)
		if err != nil {
			t.Errorf("ParseMode(%q) failed: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseMode(%q) = %v, expected %v", tc.in, got, tc.want)
		}
	}

	if th, err := ParseTheme("high contrast"); err != nil || th != HighContrast {
		t.Errorf("ParseTheme() = %v, %v", th, err)
	}
	if d, err := ParseDifficulty("HARD"); err != nil || d != Hard {
		t.Errorf("ParseDifficulty() = %v, %v", d, err)
	}
}

func TestParseUnknownTag(t *testing.T) {
	_, err := ParseDifficulty("nightmare")
	var cfgErr *Error
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected *Error, got %v", err)
	}
	if cfgErr.Field != "difficulty" || cfgErr.Value != "nightmare" {
		t.Errorf("unexpected error fields: %+v", cfgErr)
	}
}

func TestFromDigit(t *testing.T) {
	if m, ok := ModeFromDigit(2); !ok || m != TimeAttack {
		t.Errorf("ModeFromDigit(2) = %v, %v", m, ok)
	}
	if th, ok := ThemeFromDigit(3); !ok || th != Minimal {
		t.Errorf("ThemeFromDigit(3) = %v, %v", th, ok)
	}
	for _, n := range []int{0, 4, 5, -1} {
		if _, ok := DifficultyFromDigit(n); ok {
			t.Errorf("DifficultyFromDigit(%d) should be rejected", n)
		}
	}
	if Mode(7).String() != "Unknown" {
		t.Error("out of range mode should print Unknown")
	}
}

func TestLoadCustomPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flap.yaml")
	doc := "time_attack:\n  time_limit: 30\ndifficulty:\n  hard:\n    gravity: -25\n    gap_height: 2.2\n    scroll_speed: 4.5\n    flap_impulse: 6.5\n    gap_offset: 3\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	rules, source, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if source != path {
		t.Errorf("source = %q, expected %q", source, path)
	}
	if rules.TimeAttack.TimeLimit != 30 {
		t.Errorf("time limit = %v, expected 30", rules.TimeAttack.TimeLimit)
	}
	if rules.Tuning(Hard).Gravity != -25 {
		t.Errorf("hard gravity = %v, expected -25", rules.Tuning(Hard).Gravity)
	}
	if rules.Tuning(Easy) != DefaultRules().Tuning(Easy) {
		t.Error("unspecified tuning should keep defaults")
	}
}

func TestLoadInvalid(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name  string
		doc   string
		field string
	}{
		{"upward gravity", "difficulty:\n  normal:\n    gravity: 5\n    gap_height: 3\n    scroll_speed: 3\n    flap_impulse: 5\n", "difficulty.normal.gravity"},
		{"zero gravity", "difficulty:\n  hard:\n    gravity: 0\n", "difficulty.hard.gravity"},
		{"zero checkpoint interval", "checkpoints:\n  every: 0\n", "checkpoints.every"},
		{"gap taller than world", "world:\n  height: 2\n", "difficulty.easy.gap_height"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, tc.name+".yaml")
			if err := os.WriteFile(path, []byte(tc.doc), 0o644); err != nil {
				t.Fatal(err)
			}
			_, _, err := Load(path)
			var cfgErr *Error
			if !errors.As(err, &cfgErr) {
				t.Fatalf("expected *Error, got %v", err)
			}
			if cfgErr.Field != tc.field {
				t.Errorf("field = %q, expected %q", cfgErr.Field, tc.field)
			}
		})
	}
}

func TestLoadMissingCustom(t *testing.T) {
	if _, _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(DefaultRules())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	path := filepath.Join(t.TempDir(), "dump.yaml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	rules, _, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if rules != DefaultRules() {
		t.Error("dumped rules should load back unchanged")
	}
}

func TestParseEnv(t *testing.T) {
	t.Setenv("FLAP_SAVE_DIR", "/tmp/flap-saves")
	t.Setenv("FLAP_FPS", "30")
	t.Setenv("FLAP_SEED", "42")

	e, err := ParseEnv()
	if err != nil {
		t.Fatalf("ParseEnv() failed: %v", err)
	}
	if e.SaveDir != "/tmp/flap-saves" || e.FPS != 30 || e.Seed != 42 {
		t.Errorf("unexpected env: %+v", e)
	}
	if e.LogLevel != "info" {
		t.Errorf("LogLevel = %q, expected default info", e.LogLevel)
	}
}

func TestParseEnvInvalid(t *testing.T) {
	t.Setenv("FLAP_FPS", "fast")
	if _, err := ParseEnv(); err == nil {
		t.Error("expected error for non-numeric FLAP_FPS")
	}

	t.Setenv("FLAP_FPS", "0")
	if _, err := ParseEnv(); err == nil {
		t.Error("expected error for zero FLAP_FPS")
	}
}
