package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file looked up in the search directories.
const FileName = "bat.yaml"

// Load loads the game configuration.
// Search order: customPath -> ~/.batadventure/configs/bat.yaml -> ./configs/bat.yaml -> embedded default.
// Files are decoded on top of DefaultConfig, so a file only needs the keys it changes.
func Load(customPath string) (Config, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return Config{}, fmt.Errorf("loading %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath(FileName), filepath.Join("configs", FileName)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultYAML)
	if err != nil {
		return DefaultConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML onto the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".batadventure", "configs", filename)
}

// ParsePreset converts a flag value into a DifficultyPreset.
func ParsePreset(s string) (DifficultyPreset, error) {
	p := DifficultyPreset(s)
	if !slices.Contains(Presets, p) {
		return "", fmt.Errorf("config: unknown difficulty %q (valid: easy, normal, hard, fixed)", s)
	}
	return p, nil
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
}

// Validate checks that the configuration describes a playable game.
func (c Config) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}

	positive("world.width", c.World.Width)
	positive("world.height", c.World.Height)
	positive("physics.max_frame_time", c.Physics.MaxFrameTime)
	positive("bird.radius", c.Bird.Radius)
	positive("obstacle.width", c.Obstacle.Width)
	positive("obstacle.height", c.Obstacle.Height)
	positive("obstacle.gap", c.Obstacle.Gap)
	positive("parallax.tile_width", c.Parallax.TileWidth)
	positive("ui.pointer_radius", c.UI.PointerRadius)

	if c.Physics.MaxFallSpeed < 0 {
		errs = append(errs, fmt.Errorf("physics.max_fall_speed must not be negative, got %v", c.Physics.MaxFallSpeed))
	}
	if c.Obstacle.Velocity < 0 {
		errs = append(errs, fmt.Errorf("obstacle.velocity must not be negative, got %v", c.Obstacle.Velocity))
	}
	if c.Parallax.BaseRate < 0 {
		errs = append(errs, fmt.Errorf("parallax.base_rate must not be negative, got %v", c.Parallax.BaseRate))
	}
	if c.Obstacle.MinGap < 0 || c.Obstacle.MinGap > c.Obstacle.Gap {
		errs = append(errs, fmt.Errorf("obstacle.min_gap must be in [0, gap], got %v", c.Obstacle.MinGap))
	}
	if c.Obstacle.Gap >= c.World.Height {
		errs = append(errs, errors.New("obstacle.gap must be smaller than world.height"))
	}

	switch c.Scoring.Reference {
	case ScoreByPlaystyle, ScoreByBird1, ScoreByLeading:
	default:
		errs = append(errs, fmt.Errorf("scoring.reference must be playstyle, bird1 or leading, got %q", c.Scoring.Reference))
	}

	switch c.Difficulty.Progression.Type {
	case "score", "time", "none":
	default:
		errs = append(errs, fmt.Errorf("difficulty.progression.type must be score, time or none, got %q", c.Difficulty.Progression.Type))
	}
	if c.Difficulty.InitialLevel < 0 || c.Difficulty.InitialLevel > 1 {
		errs = append(errs, fmt.Errorf("difficulty.initial_level must be in [0, 1], got %v", c.Difficulty.InitialLevel))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid: %w", err)
	}
	return nil
}
