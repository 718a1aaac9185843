package level

import (
	"errors"
	"fmt"
)

// Standard object sizes and placement used by generated and fallback levels.
const (
	PlatformHeight = 20.0
	EnemySize      = 30.0
	CoinSize       = 20.0
	FlagWidth      = 40.0
	FlagHeight     = 100.0
	DefaultEnemyVX = -2.0

	CanvasHeight = 600.0
	GroundY      = CanvasHeight - 50
	GroundHeight = 50.0

	DefaultTheme = "#3b82f6"
)

// ErrInvalidLevel is returned when a level file describes impossible geometry.
var ErrInvalidLevel = errors.New("invalid level")

// Level is an immutable level template.
type Level struct {
	ID         string
	Name       string
	Platforms  []Platform
	Enemies    []Enemy
	Coins      []Coin
	Flag       Flag
	ThemeColor string
}

// Clone returns a deep copy of the level.
// Mutating the copy never touches the template.
func (l Level) Clone() Level {
	c := l
	c.Platforms = append([]Platform(nil), l.Platforms...)
	c.Enemies = append([]Enemy(nil), l.Enemies...)
	c.Coins = append([]Coin(nil), l.Coins...)
	return c
}

// Objects returns every object of the level in draw order.
func (l Level) Objects() []Object {
	objs := make([]Object, 0, len(l.Platforms)+len(l.Enemies)+len(l.Coins)+1)
	for _, p := range l.Platforms {
		objs = append(objs, p)
	}
	for _, c := range l.Coins {
		objs = append(objs, c)
	}
	for _, e := range l.Enemies {
		objs = append(objs, e)
	}
	objs = append(objs, l.Flag)
	return objs
}

// Width returns the right-most edge of any object in the level.
func (l Level) Width() float64 {
	var w float64
	for _, o := range l.Objects() {
		if r := o.Box().Right(); r > w {
			w = r
		}
	}
	return w
}

// Validate checks that every object has a positive size.
// The simulation never calls this; it guards level files and generated levels.
func Validate(l Level) error {
	for i, o := range l.Objects() {
		b := o.Box()
		if b.W <= 0 || b.H <= 0 {
			return fmt.Errorf("%w: %s #%d has size %gx%g", ErrInvalidLevel, o.Kind(), i, b.W, b.H)
		}
	}
	if len(l.Platforms) == 0 {
		return fmt.Errorf("%w: no platforms", ErrInvalidLevel)
	}
	return nil
}
