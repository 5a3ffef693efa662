package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg := DefaultFlappyConfig()
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultFlappyConfig()) {
		t.Errorf("embedded YAML drifted from DefaultFlappyConfig():\n got %+v\nwant %+v", cfg, DefaultFlappyConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadFilePartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flappy.yaml")
	data := "pipes:\n  gap: 150\n  count: 2\nbird:\n  jump_velocity: -8\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Pipes.Gap != 150 || cfg.Pipes.Count != 2 {
		t.Errorf("override not applied: %+v", cfg.Pipes)
	}
	if cfg.Bird.JumpVelocity != -8 {
		t.Errorf("JumpVelocity = %v, expected -8", cfg.Bird.JumpVelocity)
	}
	// Untouched keys keep their defaults
	if cfg.Pipes.SpawnX != 600 || cfg.Base.Y != 730 {
		t.Errorf("defaults lost: spawn_x=%d base.y=%d", cfg.Pipes.SpawnX, cfg.Base.Y)
	}
}

func TestLoadFileErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("pipes: [oops"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil || !strings.Contains(err.Error(), "parse") {
		t.Errorf("expected parse error, got %v", err)
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("pipes:\n  gap: 0\n  min_height: 400\n  max_height: 100\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := Load(invalid)
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{"pipes.gap", "height range"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q should mention %q", err, want)
		}
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset      DifficultyPreset
		wantEnabled bool
		wantLevel   float64
	}{
		{"", false, 0},
		{DifficultyEasy, true, 0},
		{DifficultyNormal, true, 0.3},
		{DifficultyHard, true, 0.7},
		{DifficultyFixed, false, 0},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultFlappyConfig()
			ApplyPreset(&cfg, tc.preset)
			if cfg.Difficulty.Enabled != tc.wantEnabled {
				t.Errorf("Enabled = %v, expected %v", cfg.Difficulty.Enabled, tc.wantEnabled)
			}
			if cfg.Difficulty.InitialLevel != tc.wantLevel {
				t.Errorf("InitialLevel = %v, expected %v", cfg.Difficulty.InitialLevel, tc.wantLevel)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if _, ok := ParsePreset("insane"); ok {
		t.Error("unknown preset should be rejected")
	}
	p, ok := ParsePreset("hard")
	if !ok || p != DifficultyHard {
		t.Errorf("ParsePreset(hard) = %q, %v", p, ok)
	}
	if DifficultyPreset("").Mode() != ModeClassic {
		t.Errorf("empty preset should map to classic mode")
	}
	if DifficultyNormal.Mode() != "normal" {
		t.Errorf("normal preset mode = %q", DifficultyNormal.Mode())
	}
}
