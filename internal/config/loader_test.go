package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	// Run from a directory without configs/ and without a user config
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := LoadPlatformer("")
	if err != nil {
		t.Fatalf("LoadPlatformer() failed: %v", err)
	}

	if cfg != DefaultPlatformerConfig() {
		t.Errorf("embedded YAML differs from hardcoded defaults:\n got %+v\nwant %+v", cfg, DefaultPlatformerConfig())
	}
}

func TestDefaultYAMLRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "platformer.yaml")
	if err := os.WriteFile(path, GetDefaultYAML(), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadPlatformer(path)
	if err != nil {
		t.Fatalf("LoadPlatformer() failed: %v", err)
	}
	if cfg != DefaultPlatformerConfig() {
		t.Errorf("a config file written from the defaults should load as the defaults, got %+v", cfg)
	}
}

func TestLoadCustomPathPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("physics:\n  gravity: 1.2\nscoring:\n  coin: 25\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadPlatformer(path)
	if err != nil {
		t.Fatalf("LoadPlatformer() failed: %v", err)
	}

	if cfg.Physics.Gravity != 1.2 {
		t.Errorf("Gravity = %f, expected 1.2", cfg.Physics.Gravity)
	}
	if cfg.Scoring.Coin != 25 {
		t.Errorf("Coin = %d, expected 25", cfg.Scoring.Coin)
	}
	// Untouched values keep their defaults
	if cfg.Physics.JumpForce != -14 {
		t.Errorf("JumpForce = %f, expected default -14", cfg.Physics.JumpForce)
	}
	if cfg.World.CameraMax != 2200 {
		t.Errorf("CameraMax = %f, expected default 2200", cfg.World.CameraMax)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := LoadPlatformer(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("physics: [oops"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadPlatformer(path); err == nil {
		t.Error("expected error for malformed custom config")
	}
}

func TestLocalConfigDirectory(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)

	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", "platformer.yaml"), []byte("enemy:\n  default_vx: -4\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadPlatformer("")
	if err != nil {
		t.Fatalf("LoadPlatformer() failed: %v", err)
	}
	if cfg.Enemy.DefaultVX != -4 {
		t.Errorf("DefaultVX = %f, expected -4", cfg.Enemy.DefaultVX)
	}
}

func TestApplyPlatformerPreset(t *testing.T) {
	tests := []struct {
		preset  DifficultyPreset
		factor  float64
		rebound float64
	}{
		{DifficultyEasy, 0.5, -9},
		{DifficultyNormal, 1, -7},
		{DifficultyHard, 1.5, -5},
		{"", 1, -7},
	}

	for _, tc := range tests {
		cfg := DefaultPlatformerConfig()
		ApplyPlatformerPreset(&cfg, tc.preset)
		if cfg.Enemy.SpeedFactor != tc.factor {
			t.Errorf("preset %q: SpeedFactor = %f, expected %f", tc.preset, cfg.Enemy.SpeedFactor, tc.factor)
		}
		if cfg.Enemy.StompRebound != tc.rebound {
			t.Errorf("preset %q: StompRebound = %f, expected %f", tc.preset, cfg.Enemy.StompRebound, tc.rebound)
		}
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard {
		t.Error("ParsePreset(hard) should be DifficultyHard")
	}
	if ParsePreset("fixed") != "" {
		t.Error("unknown presets should parse to empty")
	}
}
