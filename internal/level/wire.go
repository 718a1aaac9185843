package level

// Placement of the synthetic objects added to every generated level.
const (
	GeneratedLength = 3000.0
	GeneratedFlagX  = 2800.0
	GeneratedFlagY  = CanvasHeight - 150
)

// Wire is the JSON shape returned by the level generator.
type Wire struct {
	Platforms []WirePlatform `json:"platforms"`
	Enemies   []WirePoint    `json:"enemies"`
	Coins     []WirePoint    `json:"coins"`
	ThemeHue  string         `json:"themeHue"`
}

// WirePlatform is a generated platform; its height is always PlatformHeight.
type WirePlatform struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Width float64 `json:"width"`
}

// WirePoint is a generated enemy or coin position.
type WirePoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// FromWire converts generator output into a playable level.
// A full-width ground is always prepended and a flag always placed near the end,
// regardless of what the generator returned.
func FromWire(w Wire) Level {
	lvl := Level{
		ID:         "generated",
		Name:       "Generated Dunes",
		Platforms:  make([]Platform, 0, len(w.Platforms)+1),
		Enemies:    make([]Enemy, 0, len(w.Enemies)),
		Coins:      make([]Coin, 0, len(w.Coins)),
		Flag:       NewFlag(GeneratedFlagX, GeneratedFlagY),
		ThemeColor: w.ThemeHue,
	}

	lvl.Platforms = append(lvl.Platforms, NewPlatform(0, GroundY, GeneratedLength, GroundHeight))
	for _, p := range w.Platforms {
		lvl.Platforms = append(lvl.Platforms, NewPlatform(p.X, p.Y, p.Width, PlatformHeight))
	}
	for _, e := range w.Enemies {
		lvl.Enemies = append(lvl.Enemies, NewEnemy(e.X, e.Y))
	}
	for _, c := range w.Coins {
		lvl.Coins = append(lvl.Coins, NewCoin(c.X, c.Y))
	}

	if lvl.ThemeColor == "" {
		lvl.ThemeColor = DefaultTheme
	}
	return lvl
}
