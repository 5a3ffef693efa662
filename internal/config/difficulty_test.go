package config

import "testing"

func TestDifficultyDisabledKeepsTuning(t *testing.T) {
	d := NewDifficultyManager(DefaultFlappyConfig().Difficulty)

	if d.IsEnabled() {
		t.Fatal("default difficulty should be disabled")
	}
	if got := d.Speed(5, 1000, 1000); got != 5 {
		t.Errorf("Speed() = %d, expected base speed 5", got)
	}
	if got := d.GapSize(200, 1000, 1000); got != 200 {
		t.Errorf("GapSize() = %d, expected base gap 200", got)
	}
}

func TestDifficultyScoreProgression(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 50},
		Scaling:      ScalingConfig{SpeedMultiplier: 1.0, GapReduction: 60, MinGap: 150},
	}
	d := NewDifficultyManager(cfg)

	tests := []struct {
		score     int
		wantLevel float64
		wantSpeed int
		wantGap   int
	}{
		{0, 0, 5, 200},
		{25, 0.5, 8, 170}, // 7.5 rounds up
		{50, 1, 10, 150},  // reduction hits the floor
		{500, 1, 10, 150}, // clamped past max_at
	}

	for _, tc := range tests {
		if got := d.Level(tc.score, 0); got != tc.wantLevel {
			t.Errorf("Level(%d) = %v, expected %v", tc.score, got, tc.wantLevel)
		}
		if got := d.Speed(5, tc.score, 0); got != tc.wantSpeed {
			t.Errorf("Speed(score=%d) = %d, expected %d", tc.score, got, tc.wantSpeed)
		}
		if got := d.GapSize(200, tc.score, 0); got != tc.wantGap {
			t.Errorf("GapSize(score=%d) = %d, expected %d", tc.score, got, tc.wantGap)
		}
	}
}

func TestDifficultyTimeProgressionFromInitialLevel(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.5,
		Progression:  ProgressionConfig{Type: "time", MaxAt: 100},
	})

	if got := d.Level(0, 0); got != 0.5 {
		t.Errorf("Level at start = %v, expected 0.5", got)
	}
	if got := d.Level(0, 50); got != 0.75 {
		t.Errorf("Level halfway = %v, expected 0.75", got)
	}
	if got := d.Level(0, 1000); got != 1 {
		t.Errorf("Level past max = %v, expected 1", got)
	}
}
