package config

import (
	_ "embed"
)

//go:embed defaults/bat.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration.
// It mirrors defaults/bat.yaml and is the base every loaded file is merged onto.
func DefaultConfig() Config {
	return Config{
		World: WorldConfig{
			Width:  1250,
			Height: 768,
		},
		Physics: PhysicsConfig{
			Gravity:      981,
			JumpImpulse:  -420,
			MaxFallSpeed: 0,
			MaxFrameTime: 0.1,
		},
		Bird: BirdConfig{
			Radius: 20,
		},
		Obstacle: ObstacleConfig{
			Width:    50,
			Height:   400,
			Velocity: 500,
			Gap:      250,
			MinGap:   180,
		},
		Parallax: ParallaxConfig{
			BaseRate:  40,
			TileWidth: 1250,
		},
		Scoring: ScoringConfig{
			Reference: ScoreByPlaystyle,
		},
		UI: UIConfig{
			PointerRadius: 30,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 50,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.6,
				GapReduction:    70,
			},
		},
	}
}
