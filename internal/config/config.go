// Package config provides YAML-based game configuration loading and
// difficulty management for the game.
package config

// FlappyConfig contains all tuning for one game session.
type FlappyConfig struct {
	Window     WindowConfig     `yaml:"window"`
	Bird       BirdConfig       `yaml:"bird"`
	Pipes      PipesConfig      `yaml:"pipes"`
	Base       BaseConfig       `yaml:"base"`
	Game       GameConfig       `yaml:"game"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// WindowConfig is the size of the simulated world in pixels.
type WindowConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// BirdConfig defines the player sprite's start point and motion.
type BirdConfig struct {
	X                int     `yaml:"x"`
	Y                float64 `yaml:"y"`
	JumpVelocity     float64 `yaml:"jump_velocity"`     // negative = up
	Acceleration     float64 `yaml:"acceleration"`      // t² coefficient of the displacement formula
	MaxDrop          float64 `yaml:"max_drop"`          // displacement cap per tick
	RiseBoost        float64 `yaml:"rise_boost"`        // extra lift added to upward displacement
	MaxRotation      float64 `yaml:"max_rotation"`      // nose-up tilt in degrees
	RotationVelocity float64 `yaml:"rotation_velocity"` // degrees per tick when diving
	MinRotation      float64 `yaml:"min_rotation"`      // steepest dive tilt
	TiltMargin       float64 `yaml:"tilt_margin"`       // stay nose-up until this far below the jump height
	FallingTilt      float64 `yaml:"falling_tilt"`      // at or below this tilt the wings freeze
	AnimationTicks   int     `yaml:"animation_ticks"`   // ticks per wing frame
}

// PipesConfig defines the scrolling obstacles.
type PipesConfig struct {
	SpawnX    int `yaml:"spawn_x"`
	Gap       int `yaml:"gap"`
	Velocity  int `yaml:"velocity"`
	MinHeight int `yaml:"min_height"` // inclusive
	MaxHeight int `yaml:"max_height"` // exclusive
	Count     int `yaml:"count"`      // obstacles in flight
}

// BaseConfig defines the scrolling ground strip.
type BaseConfig struct {
	Y        int `yaml:"y"`
	Velocity int `yaml:"velocity"`
}

// GameConfig holds loop-level settings.
type GameConfig struct {
	FPS         int    `yaml:"fps"`
	ExitDelayMS int    `yaml:"exit_delay_ms"` // pause on the final frame before exiting
	AssetsDir   string `yaml:"assets_dir"`    // empty = generated art
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to speed at max difficulty
	GapReduction    int     `yaml:"gap_reduction"`    // Gap shrink at max difficulty
	MinGap          int     `yaml:"min_gap"`          // Gap never shrinks below this
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ModeClassic names sessions played with the config's own difficulty.
const ModeClassic = "classic"

// ParsePreset validates a preset name. Empty input is allowed and means
// "keep the config as loaded".
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	}
	return "", false
}

// Mode returns the scoreboard mode for a preset.
func (p DifficultyPreset) Mode() string {
	if p == "" {
		return ModeClassic
	}
	return string(p)
}

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
