package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the built-in tuning: a 500x800 world with the
// classic arcade constants and no difficulty progression.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Window: WindowConfig{
			Width:  500,
			Height: 800,
		},
		Bird: BirdConfig{
			X:                230,
			Y:                350,
			JumpVelocity:     -9.5,
			Acceleration:     1.5,
			MaxDrop:          16,
			RiseBoost:        2,
			MaxRotation:      25,
			RotationVelocity: 20,
			MinRotation:      -90,
			TiltMargin:       50,
			FallingTilt:      -80,
			AnimationTicks:   5,
		},
		Pipes: PipesConfig{
			SpawnX:    600,
			Gap:       200,
			Velocity:  5,
			MinHeight: 50,
			MaxHeight: 450,
			Count:     1,
		},
		Base: BaseConfig{
			Y:        730,
			Velocity: 5,
		},
		Game: GameConfig{
			FPS:         30,
			ExitDelayMS: 1000,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 50,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
				GapReduction:    60,
				MinGap:          130,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
