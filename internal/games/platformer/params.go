package platformer

import "github.com/vovakirdan/desert-run/internal/config"

// Params are the tunable constants of the simulation.
type Params struct {
	Gravity   float64
	Friction  float64
	Speed     float64
	JumpForce float64

	PlayerW, PlayerH float64
	SpawnX, SpawnY   float64

	ViewportWidth   float64
	WorldHeight     float64
	CameraMax       float64
	CameraSmoothing float64

	EnemyDefaultVX   float64
	EnemySpeedFactor float64
	StompRebound     float64
	NeutralizedY     float64

	CoinValue  int
	StompValue int
}

// ParamsFromConfig extracts simulation parameters from the game config.
func ParamsFromConfig(cfg config.PlatformerConfig) Params {
	return Params{
		Gravity:   cfg.Physics.Gravity,
		Friction:  cfg.Physics.Friction,
		Speed:     cfg.Physics.Speed,
		JumpForce: cfg.Physics.JumpForce,

		PlayerW: cfg.Player.Width,
		PlayerH: cfg.Player.Height,
		SpawnX:  cfg.Player.SpawnX,
		SpawnY:  cfg.Player.SpawnY,

		ViewportWidth:   cfg.World.ViewportWidth,
		WorldHeight:     cfg.World.Height,
		CameraMax:       cfg.World.CameraMax,
		CameraSmoothing: cfg.World.CameraSmoothing,

		EnemyDefaultVX:   cfg.Enemy.DefaultVX,
		EnemySpeedFactor: cfg.Enemy.SpeedFactor,
		StompRebound:     cfg.Enemy.StompRebound,
		NeutralizedY:     cfg.Enemy.NeutralizedY,

		CoinValue:  cfg.Scoring.Coin,
		StompValue: cfg.Scoring.Stomp,
	}
}
