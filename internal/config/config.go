// Package config provides YAML-based game configuration loading and
// difficulty presets for the platformer.
package config

// PlatformerConfig contains all configuration for the platformer.
type PlatformerConfig struct {
	Physics   PhysicsConfig   `yaml:"physics"`
	Player    PlayerConfig    `yaml:"player"`
	World     WorldConfig     `yaml:"world"`
	Enemy     EnemyConfig     `yaml:"enemy"`
	Scoring   ScoringConfig   `yaml:"scoring"`
	Input     InputConfig     `yaml:"input"`
	Render    RenderConfig    `yaml:"render"`
	Generator GeneratorConfig `yaml:"generator"`
}

// PhysicsConfig defines player movement parameters, in pixels per frame.
type PhysicsConfig struct {
	Gravity   float64 `yaml:"gravity"`
	Friction  float64 `yaml:"friction"`
	Speed     float64 `yaml:"speed"`
	JumpForce float64 `yaml:"jump_force"` // Negative is upward
}

// PlayerConfig defines the player's size and spawn point.
type PlayerConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	SpawnX float64 `yaml:"spawn_x"`
	SpawnY float64 `yaml:"spawn_y"`
}

// WorldConfig defines the viewport and camera limits.
type WorldConfig struct {
	ViewportWidth   float64 `yaml:"viewport_width"`
	Height          float64 `yaml:"height"` // Falling below this loses the round
	CameraMax       float64 `yaml:"camera_max"`
	CameraSmoothing float64 `yaml:"camera_smoothing"`
}

// EnemyConfig defines enemy patrol and stomp parameters.
type EnemyConfig struct {
	DefaultVX    float64 `yaml:"default_vx"`   // Used for enemies created without a velocity
	SpeedFactor  float64 `yaml:"speed_factor"` // Multiplies every enemy's velocity at level start
	StompRebound float64 `yaml:"stomp_rebound"`
	NeutralizedY float64 `yaml:"neutralized_y"`
}

// ScoringConfig defines points awarded.
type ScoringConfig struct {
	Coin  int `yaml:"coin"`
	Stomp int `yaml:"stomp"`
}

// InputConfig defines how terminal key presses become held controls.
type InputConfig struct {
	HoldFrames int `yaml:"hold_frames"` // Frames a control stays held after its last key press
}

// RenderConfig defines the world-pixel size of one terminal cell.
type RenderConfig struct {
	CellWidth  float64 `yaml:"cell_width"`
	CellHeight float64 `yaml:"cell_height"`
}

// GeneratorConfig defines the external level generator.
type GeneratorConfig struct {
	Enabled        bool   `yaml:"enabled"`
	Model          string `yaml:"model"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a CLI value to a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// EnemySpeedFactor returns the enemy speed multiplier for a preset.
func EnemySpeedFactor(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.5
	case DifficultyHard:
		return 1.5
	default:
		return 1.0
	}
}
