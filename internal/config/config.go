// Package config provides YAML-based game configuration loading and
// difficulty management for Bat Adventure.
package config

// Config contains all tunable parameters of the game.
// Distances are world pixels, times are seconds.
type Config struct {
	World      WorldConfig      `yaml:"world"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Bird       BirdConfig       `yaml:"bird"`
	Obstacle   ObstacleConfig   `yaml:"obstacle"`
	Parallax   ParallaxConfig   `yaml:"parallax"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	UI         UIConfig         `yaml:"ui"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// WorldConfig is the size of the simulated play area.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PhysicsConfig defines bird physics.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`
	JumpImpulse  float64 `yaml:"jump_impulse"`   // Negative: upward
	MaxFallSpeed float64 `yaml:"max_fall_speed"` // 0 disables the cap
	MaxFrameTime float64 `yaml:"max_frame_time"` // Upper clamp for dt
}

// BirdConfig defines the bird's collision circle.
type BirdConfig struct {
	Radius float64 `yaml:"radius"`
}

// ObstacleConfig defines the scrolling barrier pair.
type ObstacleConfig struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Velocity float64 `yaml:"velocity"`
	Gap      float64 `yaml:"gap"`
	MinGap   float64 `yaml:"min_gap"`
}

// ParallaxConfig defines the three background layers.
// Layer rates are BaseRate, 2*BaseRate and 4*BaseRate.
type ParallaxConfig struct {
	BaseRate  float64 `yaml:"base_rate"`
	TileWidth float64 `yaml:"tile_width"`
}

// ScoringReference selects which bird an obstacle must pass to score.
type ScoringReference string

const (
	ScoreByPlaystyle ScoringReference = "playstyle" // bird1 in singleplayer, bird2 in multiplayer
	ScoreByBird1     ScoringReference = "bird1"
	ScoreByLeading   ScoringReference = "leading" // alive bird furthest right
)

// ScoringConfig defines how points are counted.
type ScoringConfig struct {
	Reference ScoringReference `yaml:"reference"`
}

// UIConfig defines menu hit-testing.
type UIConfig struct {
	PointerRadius float64 `yaml:"pointer_radius"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a round.
type ProgressionConfig struct {
	Type  string  `yaml:"type"`   // "score", "time", or "none"
	MaxAt float64 `yaml:"max_at"` // Score or seconds at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added to the velocity factor at max difficulty
	GapReduction    float64 `yaml:"gap_reduction"`    // Gap shrink at max difficulty, floored at MinGap
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the accepted preset names.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
