package platformer

import (
	"github.com/vovakirdan/desert-run/internal/core"
)

// Step advances the world by one frame and returns the events it produced.
// Order matters: each stage reads the state the previous one mutated.
// Once the round is over Step does nothing.
func (w *World) Step(in core.Controls) []core.Event {
	if w.Over() {
		return nil
	}

	w.events = w.events[:0]
	w.Frame++

	w.applyInput(in)
	w.Player.VY += w.params.Gravity
	w.moveX()
	grounded := w.moveY()

	if grounded && in.Jump {
		w.Player.VY = w.params.JumpForce
		grounded = false
		w.emit(core.EventJump)
	}
	w.Grounded = grounded

	if w.Player.Y > w.params.WorldHeight {
		w.finish(core.OutcomeLost, CauseFell)
		return w.flush()
	}

	w.updateEnemies()
	if w.Over() {
		return w.flush()
	}

	w.collectCoins()
	w.checkFlag()
	if w.Over() {
		return w.flush()
	}

	w.updateCamera()
	return w.flush()
}

func (w *World) flush() []core.Event {
	if len(w.events) == 0 {
		return nil
	}
	out := make([]core.Event, len(w.events))
	copy(out, w.events)
	return out
}

// applyInput ramps horizontal velocity toward the held direction,
// or decays it by friction when nothing is held. Right wins over left.
func (w *World) applyInput(in core.Controls) {
	p := &w.Player
	speed := w.params.Speed

	switch {
	case in.Right:
		if p.VX != 0 && p.VX < speed {
			p.VX++
		} else {
			p.VX = speed
		}
	case in.Left:
		if p.VX != 0 && p.VX > -speed {
			p.VX--
		} else {
			p.VX = -speed
		}
	default:
		p.VX *= w.params.Friction
	}
}

// moveX moves the player horizontally and pushes it out of platforms.
// Platforms are resolved in slice order; the last correction wins.
func (w *World) moveX() {
	p := &w.Player
	p.X += p.VX

	for _, plat := range w.Level.Platforms {
		if !p.Box().Overlaps(plat.Box()) {
			continue
		}
		if p.VX > 0 {
			p.X = plat.X - p.W
		} else if p.VX < 0 {
			p.X = plat.X + plat.W
		}
		p.VX = 0
	}
}

// moveY moves the player vertically and resolves platform overlaps.
// Returns true when a fall was arrested by a platform this frame.
func (w *World) moveY() bool {
	p := &w.Player
	p.Y += p.VY
	grounded := false

	for _, plat := range w.Level.Platforms {
		if !p.Box().Overlaps(plat.Box()) {
			continue
		}
		if p.VY > 0 {
			p.Y = plat.Y - p.H
			grounded = true
		} else if p.VY < 0 {
			p.Y = plat.Y + plat.H
		}
		p.VY = 0
	}

	return grounded
}

// Overlaps reports whether two boxes strictly overlap.
func Overlaps(a, b core.Box) bool {
	return a.Overlaps(b)
}
