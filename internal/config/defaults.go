package config

import (
	_ "embed"
)

//go:embed defaults/flap.yaml
var defaultRulesYAML []byte

// DefaultYAML returns the embedded default rules document.
func DefaultYAML() []byte {
	return append([]byte(nil), defaultRulesYAML...)
}

// DefaultRules returns the built-in rules table. It matches defaults/flap.yaml
// and is used when the embedded document cannot be parsed.
func DefaultRules() Rules {
	return Rules{
		World:  World{Width: 16, Height: 10},
		Avatar: Avatar{X: -4, HalfSize: 0.3},
		Obstacles: Obstacles{
			Width:      1.2,
			Spacing:    4.5,
			FirstX:     4,
			EdgeMargin: 0.5,
		},
		Difficulty: Difficulties{
			Easy: Tuning{
				Gravity:     -12,
				GapHeight:   3.6,
				ScrollSpeed: 3.0,
				FlapImpulse: 5.0,
				GapOffset:   1.8,
			},
			Normal: Tuning{
				Gravity:     -16,
				GapHeight:   3.0,
				ScrollSpeed: 3.5,
				FlapImpulse: 5.5,
				GapOffset:   2.4,
			},
			Hard: Tuning{
				Gravity:     -20,
				GapHeight:   2.4,
				ScrollSpeed: 4.2,
				FlapImpulse: 6.0,
				GapOffset:   2.8,
			},
		},
		TimeAttack: TimeAttackRules{TimeLimit: 60},
		Checkpoints: CheckpointRules{
			Every: 5,
			WinAt: WinAt{Easy: 20, Normal: 40, Hard: 60},
		},
	}
}
