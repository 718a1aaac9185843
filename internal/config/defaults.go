package config

import (
	_ "embed"
)

//go:embed defaults/platformer.yaml
var defaultPlatformerYAML []byte

// DefaultPlatformerConfig returns the default platformer configuration.
func DefaultPlatformerConfig() PlatformerConfig {
	return PlatformerConfig{
		Physics: PhysicsConfig{
			Gravity:   0.6,
			Friction:  0.85,
			Speed:     5,
			JumpForce: -14,
		},
		Player: PlayerConfig{
			Width:  30,
			Height: 40,
			SpawnX: 50,
			SpawnY: 400,
		},
		World: WorldConfig{
			ViewportWidth:   800,
			Height:          600,
			CameraMax:       2200,
			CameraSmoothing: 0.1,
		},
		Enemy: EnemyConfig{
			DefaultVX:    -2,
			SpeedFactor:  1,
			StompRebound: -7,
			NeutralizedY: 10000,
		},
		Scoring: ScoringConfig{
			Coin:  10,
			Stomp: 100,
		},
		Input: InputConfig{
			HoldFrames: 9, // ~150ms at 60fps, bridges terminal key auto-repeat
		},
		Render: RenderConfig{
			CellWidth:  10,
			CellHeight: 20,
		},
		Generator: GeneratorConfig{
			Enabled:        true,
			Model:          "gemini-3-flash-preview",
			TimeoutSeconds: 20,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultPlatformerYAML
}
