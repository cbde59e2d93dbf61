package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Source names where a rules table came from.
const (
	SourceEmbedded = "embedded"
	SourceBuiltin  = "builtin"
)

// Load reads the rules table and validates it.
// Search order: customPath -> ~/.flap/configs/flap.yaml -> ./configs/flap.yaml -> embedded default.
// The second return value names the file that was used.
func Load(customPath string) (Rules, string, error) {
	if customPath != "" {
		rules, err := loadFile(customPath)
		if err != nil {
			return Rules{}, customPath, err
		}
		return rules, customPath, nil
	}

	candidates := []string{userConfigPath("flap.yaml"), filepath.Join("configs", "flap.yaml")}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err != nil {
			continue
		}
		rules, err := loadFile(path)
		if err != nil {
			return Rules{}, path, err
		}
		return rules, path, nil
	}

	var rules Rules
	if err := yaml.Unmarshal(defaultRulesYAML, &rules); err != nil {
		return DefaultRules(), SourceBuiltin, nil
	}
	if err := rules.Validate(); err != nil {
		return Rules{}, SourceEmbedded, err
	}
	return rules, SourceEmbedded, nil
}

func loadFile(path string) (Rules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Rules{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	// Start from defaults so a partial file only overrides what it names.
	rules := DefaultRules()
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return Rules{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := rules.Validate(); err != nil {
		return Rules{}, fmt.Errorf("config %s: %w", path, err)
	}
	return rules, nil
}

// userConfigPath returns ~/.flap/configs/<filename>, or "" without a home dir.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".flap", "configs", filename)
}

// Marshal renders rules as YAML.
func Marshal(r Rules) ([]byte, error) {
	data, err := yaml.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("config: marshal rules: %w", err)
	}
	return data, nil
}

// Validate checks that every value is usable by the simulator.
func (r Rules) Validate() error {
	switch {
	case r.World.Width <= 0:
		return invalid("world.width", r.World.Width, "must be positive")
	case r.World.Height <= 0:
		return invalid("world.height", r.World.Height, "must be positive")
	case r.Avatar.HalfSize <= 0:
		return invalid("avatar.half_size", r.Avatar.HalfSize, "must be positive")
	case r.Avatar.X-r.Avatar.HalfSize < -r.World.Width/2 || r.Avatar.X+r.Avatar.HalfSize > r.World.Width/2:
		return invalid("avatar.x", r.Avatar.X, "avatar must fit inside the world")
	case r.Obstacles.Width <= 0:
		return invalid("obstacles.width", r.Obstacles.Width, "must be positive")
	case r.Obstacles.Spacing <= r.Obstacles.Width:
		return invalid("obstacles.spacing", r.Obstacles.Spacing, "must exceed the obstacle width")
	case r.Obstacles.EdgeMargin < 0:
		return invalid("obstacles.edge_margin", r.Obstacles.EdgeMargin, "must not be negative")
	case r.TimeAttack.TimeLimit <= 0:
		return invalid("time_attack.time_limit", r.TimeAttack.TimeLimit, "must be positive")
	case r.Checkpoints.Every == 0:
		return invalid("checkpoints.every", r.Checkpoints.Every, "must be positive")
	}

	for _, d := range AllDifficulties() {
		if err := r.validateTuning(d); err != nil {
			return err
		}
	}
	return nil
}

func (r Rules) validateTuning(d Difficulty) error {
	t := r.Tuning(d)
	prefix := "difficulty." + normalizeTag(d.String()) + "."
	switch {
	case t.Gravity >= 0:
		return invalid(prefix+"gravity", t.Gravity, "must pull downward")
	case t.GapHeight <= 2*r.Avatar.HalfSize:
		return invalid(prefix+"gap_height", t.GapHeight, "must fit the avatar")
	case t.GapHeight >= r.World.Height:
		return invalid(prefix+"gap_height", t.GapHeight, "must be smaller than the world")
	case t.ScrollSpeed <= 0:
		return invalid(prefix+"scroll_speed", t.ScrollSpeed, "must be positive")
	case t.FlapImpulse <= 0:
		return invalid(prefix+"flap_impulse", t.FlapImpulse, "must point upward")
	case t.GapOffset < 0:
		return invalid(prefix+"gap_offset", t.GapOffset, "must not be negative")
	}
	return nil
}

// Warnings lists rules that are valid but break the expected ordering
// Easy < Normal < Hard.
func (r Rules) Warnings() []string {
	var out []string
	e, n, h := r.Difficulty.Easy, r.Difficulty.Normal, r.Difficulty.Hard
	if !(e.GapHeight > n.GapHeight && n.GapHeight > h.GapHeight) {
		out = append(out, "gap_height should shrink from easy to hard")
	}
	if !(-e.Gravity < -n.Gravity && -n.Gravity < -h.Gravity) {
		out = append(out, "gravity should strengthen from easy to hard")
	}
	if !(e.ScrollSpeed <= n.ScrollSpeed && n.ScrollSpeed <= h.ScrollSpeed) {
		out = append(out, "scroll_speed should not drop from easy to hard")
	}
	return out
}
