package level

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// YAMLLevel represents the YAML structure for a level file.
// Sizes are optional and default to the standard object sizes.
type YAMLLevel struct {
	ID        string       `yaml:"id"`
	Name      string       `yaml:"name"`
	Theme     string       `yaml:"theme,omitempty"`
	Platforms []YAMLObject `yaml:"platforms"`
	Enemies   []YAMLObject `yaml:"enemies,omitempty"`
	Coins     []YAMLObject `yaml:"coins,omitempty"`
	Flag      YAMLObject   `yaml:"flag"`
}

// YAMLObject is a single positioned object.
type YAMLObject struct {
	X  float64 `yaml:"x"`
	Y  float64 `yaml:"y"`
	W  float64 `yaml:"w,omitempty"`
	H  float64 `yaml:"h,omitempty"`
	VX float64 `yaml:"vx,omitempty"` // Enemies only
}

// ParseYAML parses a YAML level file.
func ParseYAML(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	lvl := Level{
		ID:         yl.ID,
		Name:       yl.Name,
		ThemeColor: yl.Theme,
		Platforms:  make([]Platform, 0, len(yl.Platforms)),
		Enemies:    make([]Enemy, 0, len(yl.Enemies)),
		Coins:      make([]Coin, 0, len(yl.Coins)),
	}
	if lvl.ThemeColor == "" {
		lvl.ThemeColor = DefaultTheme
	}

	for _, p := range yl.Platforms {
		lvl.Platforms = append(lvl.Platforms, NewPlatform(p.X, p.Y, p.W, orDefault(p.H, PlatformHeight)))
	}
	for _, e := range yl.Enemies {
		enemy := NewEnemy(e.X, e.Y)
		enemy.W = orDefault(e.W, EnemySize)
		enemy.H = orDefault(e.H, EnemySize)
		enemy.VX = orDefault(e.VX, DefaultEnemyVX)
		lvl.Enemies = append(lvl.Enemies, enemy)
	}
	for _, c := range yl.Coins {
		coin := NewCoin(c.X, c.Y)
		coin.W = orDefault(c.W, CoinSize)
		coin.H = orDefault(c.H, CoinSize)
		lvl.Coins = append(lvl.Coins, coin)
	}

	lvl.Flag = NewFlag(yl.Flag.X, yl.Flag.Y)
	lvl.Flag.W = orDefault(yl.Flag.W, FlagWidth)
	lvl.Flag.H = orDefault(yl.Flag.H, FlagHeight)

	return lvl, nil
}

// MarshalYAML encodes a level in the level file format.
func MarshalYAML(l Level) ([]byte, error) {
	yl := YAMLLevel{
		ID:    l.ID,
		Name:  l.Name,
		Theme: l.ThemeColor,
		Flag:  YAMLObject{X: l.Flag.X, Y: l.Flag.Y, W: l.Flag.W, H: l.Flag.H},
	}
	for _, p := range l.Platforms {
		yl.Platforms = append(yl.Platforms, YAMLObject{X: p.X, Y: p.Y, W: p.W, H: p.H})
	}
	for _, e := range l.Enemies {
		yl.Enemies = append(yl.Enemies, YAMLObject{X: e.X, Y: e.Y, W: e.W, H: e.H, VX: e.VX})
	}
	for _, c := range l.Coins {
		yl.Coins = append(yl.Coins, YAMLObject{X: c.X, Y: c.Y, W: c.W, H: c.H})
	}

	data, err := yaml.Marshal(yl)
	if err != nil {
		return nil, fmt.Errorf("yaml marshal: %w", err)
	}
	return data, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}

func orDefault(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}
