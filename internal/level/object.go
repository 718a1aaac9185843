// Package level describes platformer levels: the static geometry, enemies,
// coins and goal flag a round is played on. Levels are immutable templates;
// the simulation plays on a Clone.
package level

import "github.com/vovakirdan/desert-run/internal/core"

// Kind tags the variant of a level object.
type Kind int

const (
	KindPlatform Kind = iota
	KindPlayer
	KindEnemy
	KindCoin
	KindFlag
)

// String returns the lowercase kind name.
func (k Kind) String() string {
	switch k {
	case KindPlatform:
		return "platform"
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	case KindCoin:
		return "coin"
	case KindFlag:
		return "flag"
	default:
		return "unknown"
	}
}

// Body is the position and fixed size shared by every object.
type Body struct {
	X, Y float64 // Top-left corner in world pixels
	W, H float64 // Fixed size
}

// Box returns the collision box for the body.
func (b Body) Box() core.Box {
	return core.NewBox(b.X, b.Y, b.W, b.H)
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Body) Bottom() float64 {
	return b.Y + b.H
}

// Platform is static solid geometry.
type Platform struct {
	Body
}

// Kind implements Object.
func (Platform) Kind() Kind { return KindPlatform }

// Enemy patrols horizontally and can be stomped.
type Enemy struct {
	Body
	VX   float64 // Horizontal velocity in pixels per frame
	Dead bool    // Neutralized by a stomp
}

// Kind implements Object.
func (Enemy) Kind() Kind { return KindEnemy }

// Coin awards points once.
type Coin struct {
	Body
	Collected bool
}

// Kind implements Object.
func (Coin) Kind() Kind { return KindCoin }

// Flag ends the round in victory when touched.
type Flag struct {
	Body
}

// Kind implements Object.
func (Flag) Kind() Kind { return KindFlag }

// Player is the single controllable actor.
type Player struct {
	Body
	VX, VY float64
}

// Kind implements Object.
func (Player) Kind() Kind { return KindPlayer }

// Object is implemented by every level object variant.
type Object interface {
	Kind() Kind
	Box() core.Box
}

var (
	_ Object = Platform{}
	_ Object = Enemy{}
	_ Object = Coin{}
	_ Object = Flag{}
	_ Object = Player{}
)

// NewPlatform creates a platform.
func NewPlatform(x, y, w, h float64) Platform {
	return Platform{Body{X: x, Y: y, W: w, H: h}}
}

// NewEnemy creates an enemy of the standard size with the default patrol velocity.
func NewEnemy(x, y float64) Enemy {
	return Enemy{Body: Body{X: x, Y: y, W: EnemySize, H: EnemySize}, VX: DefaultEnemyVX}
}

// NewCoin creates an uncollected coin of the standard size.
func NewCoin(x, y float64) Coin {
	return Coin{Body: Body{X: x, Y: y, W: CoinSize, H: CoinSize}}
}

// NewFlag creates a goal flag of the standard size.
func NewFlag(x, y float64) Flag {
	return Flag{Body{X: x, Y: y, W: FlagWidth, H: FlagHeight}}
}

// NewPlayer creates a player at rest.
func NewPlayer(x, y, w, h float64) Player {
	return Player{Body: Body{X: x, Y: y, W: w, H: h}}
}
