package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file name looked up in the search directories.
const FileName = "flappy.yaml"

// Load loads the game configuration.
// Search order: customPath -> ~/.flappy/flappy.yaml -> ./configs/flappy.yaml -> embedded default.
// Files are decoded on top of the defaults, so a file only needs the keys it changes.
func Load(customPath string) (FlappyConfig, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := LoadFile(customPath)
		if err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	if path := Resolve(""); path != "" {
		if cfg, err := LoadFile(path); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg := DefaultFlappyConfig()
	if err := yaml.Unmarshal(defaultFlappyYAML, &cfg); err != nil {
		return DefaultFlappyConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// LoadFile reads and validates a single config file.
func LoadFile(path string) (FlappyConfig, error) {
	cfg := DefaultFlappyConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Resolve returns the file Load would read, or "" when only the embedded
// default applies.
func Resolve(customPath string) string {
	if customPath != "" {
		return customPath
	}
	candidates := []string{userConfigPath(FileName), filepath.Join("configs", FileName)}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".flappy", filename)
}

// Validate rejects tunings the simulation cannot run with.
func (c FlappyConfig) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.Pipes.Gap <= 0 {
		errs = append(errs, fmt.Errorf("pipes.gap must be positive, got %d", c.Pipes.Gap))
	}
	if c.Pipes.MaxHeight <= c.Pipes.MinHeight {
		errs = append(errs, fmt.Errorf("pipes height range [%d, %d) is empty", c.Pipes.MinHeight, c.Pipes.MaxHeight))
	}
	if c.Pipes.Velocity <= 0 {
		errs = append(errs, fmt.Errorf("pipes.velocity must be positive, got %d", c.Pipes.Velocity))
	}
	if c.Pipes.Count <= 0 {
		errs = append(errs, fmt.Errorf("pipes.count must be positive, got %d", c.Pipes.Count))
	}
	if c.Base.Velocity <= 0 {
		errs = append(errs, fmt.Errorf("base.velocity must be positive, got %d", c.Base.Velocity))
	}
	if c.Bird.MaxDrop <= 0 {
		errs = append(errs, fmt.Errorf("bird.max_drop must be positive, got %v", c.Bird.MaxDrop))
	}
	if c.Bird.AnimationTicks <= 0 {
		errs = append(errs, fmt.Errorf("bird.animation_ticks must be positive, got %d", c.Bird.AnimationTicks))
	}
	if c.Game.FPS <= 0 {
		errs = append(errs, fmt.Errorf("game.fps must be positive, got %d", c.Game.FPS))
	}
	return errors.Join(errs...)
}

// ApplyPreset modifies the config based on a difficulty preset.
// The empty preset leaves the config untouched.
func ApplyPreset(cfg *FlappyConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
}
