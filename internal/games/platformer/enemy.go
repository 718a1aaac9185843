package platformer

import "github.com/vovakirdan/desert-run/internal/core"

// updateEnemies moves each live enemy and resolves its contact with the player.
// Processing stops at the first enemy that kills the player.
func (w *World) updateEnemies() {
	for i := range w.Level.Enemies {
		if w.Level.Enemies[i].Dead {
			continue
		}
		w.patrol(i)
		w.resolvePlayerContact(i)
		if w.Over() {
			return
		}
	}
}

// patrol moves an enemy and turns it around when it touches any platform.
// Enemies have no gravity, so one resting on a platform keeps reversing.
func (w *World) patrol(i int) {
	e := &w.Level.Enemies[i]
	if e.VX == 0 {
		e.VX = w.params.EnemyDefaultVX
	}
	e.X += e.VX

	for _, plat := range w.Level.Platforms {
		if e.Box().Overlaps(plat.Box()) {
			e.VX = -e.VX
			e.X += 2 * e.VX
			return
		}
	}
}

// resolvePlayerContact decides between a stomp and a death.
// A stomp needs the player falling with its previous-frame bottom edge
// at or above the enemy's midpoint.
func (w *World) resolvePlayerContact(i int) {
	e := &w.Level.Enemies[i]
	p := &w.Player

	if !p.Box().Overlaps(e.Box()) {
		return
	}

	prevBottom := p.Bottom() - p.VY
	if prevBottom <= e.Box().MidY() && p.VY > 0 {
		e.Dead = true
		e.Y = w.params.NeutralizedY
		w.Score += w.params.StompValue
		p.VY = w.params.StompRebound
		w.emit(core.EventStomp)
		return
	}

	w.finish(core.OutcomeLost, CauseEnemy)
}
