package platformer

import (
	"fmt"
	"math"

	"github.com/vovakirdan/desert-run/internal/core"
	"github.com/vovakirdan/desert-run/internal/level"
)

// Visual characters for rendering
const (
	SkyChar      = '·'
	GroundChar   = '█'
	GrassChar    = '▀'
	EnemyChar    = '▓'
	CoinChar     = '$'
	PoleChar     = '│'
	PennantChar  = '▶'
	PlayerChar   = '█'
	PlayerHatRow = '▄'
)

// Viewport maps world pixels to screen cells.
type Viewport struct {
	CameraX    float64
	CellWidth  float64
	CellHeight float64
}

// cells converts a world box to the cell rectangle covering it.
// Every visible object covers at least one cell.
func (v Viewport) cells(b core.Box) core.Rect {
	x0 := int(math.Floor((b.X - v.CameraX) / v.CellWidth))
	y0 := int(math.Floor(b.Y / v.CellHeight))
	x1 := int(math.Ceil((b.Right() - v.CameraX) / v.CellWidth))
	y1 := int(math.Ceil(b.Bottom() / v.CellHeight))
	return core.NewRect(x0, y0, core.Max(1, x1-x0), core.Max(1, y1-y0))
}

// RenderWorld draws the world into dst. It never mutates the world.
func RenderWorld(w *World, dst *core.Screen, v Viewport) {
	dst.Clear()
	drawSky(dst, v)

	for _, p := range w.Level.Platforms {
		drawPlatform(dst, v.cells(p.Box()))
	}
	for _, c := range w.Level.Coins {
		if !c.Collected {
			dst.DrawRect(v.cells(c.Box()), CoinChar, core.ColorBrightYellow)
		}
	}
	for _, e := range w.Level.Enemies {
		if !e.Dead {
			dst.DrawRect(v.cells(e.Box()), EnemyChar, core.ColorRed)
		}
	}
	drawFlag(dst, v.cells(w.Level.Flag.Box()))
	drawPlayer(dst, v.cells(w.Player.Box()))

	dst.DrawTextColored(2, 0, fmt.Sprintf(" Score: %d ", w.Score), core.ColorBrightYellow)
	coins := fmt.Sprintf(" Coins: %d/%d ", w.CollectedCoins(), len(w.Level.Coins))
	dst.DrawTextColored(dst.Width()-len(coins)-2, 0, coins, core.ColorYellow)
}

// drawSky scatters theme-colored dots that scroll with the camera.
func drawSky(dst *core.Screen, v Viewport) {
	offset := int(v.CameraX / v.CellWidth)
	for y := 1; y < dst.Height(); y++ {
		for x := 0; x < dst.Width(); x++ {
			if ((x+offset)*7+y*13)%23 == 0 {
				dst.SetColored(x, y, SkyChar, core.ColorTheme)
			}
		}
	}
}

func drawPlatform(dst *core.Screen, r core.Rect) {
	dst.DrawRect(r, GroundChar, core.ColorBrown)
	dst.DrawHLine(r.X, r.Y, r.W, GrassChar, core.ColorGreen)
}

func drawFlag(dst *core.Screen, r core.Rect) {
	dst.DrawVLine(r.X, r.Y, r.H, PoleChar, core.ColorWhite)
	dst.SetColored(r.X+1, r.Y, PennantChar, core.ColorBrightGreen)
}

func drawPlayer(dst *core.Screen, r core.Rect) {
	dst.DrawRect(r, PlayerChar, core.ColorBlue)
	dst.DrawHLine(r.X, r.Y, r.W, PlayerHatRow, core.ColorBrightRed)
}

// ThemeColor returns the level's theme color, or the default theme.
func ThemeColor(l level.Level) string {
	if l.ThemeColor == "" {
		return level.DefaultTheme
	}
	return l.ThemeColor
}
