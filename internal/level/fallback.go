package level

// Fallback returns the built-in level used whenever generation is unavailable.
// Every call returns a fresh value.
func Fallback() Level {
	return Level{
		ID:   "fallback",
		Name: "Desert Outpost",
		Platforms: []Platform{
			NewPlatform(0, GroundY, 2000, GroundHeight),
			NewPlatform(300, 450, 100, PlatformHeight),
			NewPlatform(500, 350, 100, PlatformHeight),
			NewPlatform(700, 250, 100, PlatformHeight),
			NewPlatform(900, 450, 100, PlatformHeight),
		},
		Enemies: []Enemy{
			NewEnemy(600, 510),
			NewEnemy(920, 410),
		},
		Coins: []Coin{
			NewCoin(320, 400),
			NewCoin(520, 300),
			NewCoin(720, 200),
			NewCoin(920, 350),
		},
		Flag:       NewFlag(1800, 450),
		ThemeColor: DefaultTheme,
	}
}
