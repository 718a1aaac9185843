package platformer

import "github.com/vovakirdan/desert-run/internal/core"

// updateCamera eases the camera toward a point one third of the viewport
// behind the player, then clamps it to the level's scroll range.
func (w *World) updateCamera() {
	target := w.Player.X - w.params.ViewportWidth/3
	w.CameraX += (target - w.CameraX) * w.params.CameraSmoothing
	w.CameraX = ClampCamera(w.CameraX, w.params.CameraMax)
}

// ClampCamera restricts a camera offset to [0, max].
func ClampCamera(x, max float64) float64 {
	return core.ClampF(x, 0, max)
}
