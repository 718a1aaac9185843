package platformer

import (
	"github.com/vovakirdan/desert-run/internal/core"
	"github.com/vovakirdan/desert-run/internal/level"
)

// Cause records which terminal condition ended a round.
type Cause int

const (
	CauseNone Cause = iota
	CauseFell
	CauseEnemy
	CauseFlag
)

// String returns a human-readable cause.
func (c Cause) String() string {
	switch c {
	case CauseFell:
		return "fell"
	case CauseEnemy:
		return "enemy"
	case CauseFlag:
		return "flag"
	default:
		return "none"
	}
}

// World is the live, mutable state of one round.
// It is owned by whoever calls Step; the renderer only reads it.
type World struct {
	Level    level.Level // Live deep copy of the template
	Player   level.Player
	Grounded bool // Player landed on a platform during the last frame
	CameraX  float64
	Score    int
	Outcome  core.Outcome
	Cause    Cause
	Frame    int

	params Params
	events []core.Event
}

// NewWorld starts a round on a deep copy of tpl.
func NewWorld(tpl level.Level, p Params) *World {
	w := &World{
		Level:  tpl.Clone(),
		Player: level.NewPlayer(p.SpawnX, p.SpawnY, p.PlayerW, p.PlayerH),
		params: p,
	}

	factor := p.EnemySpeedFactor
	if factor == 0 {
		factor = 1
	}
	for i := range w.Level.Enemies {
		e := &w.Level.Enemies[i]
		if e.VX == 0 {
			e.VX = p.EnemyDefaultVX
		}
		e.VX *= factor
	}

	return w
}

// Params returns the parameters the world was created with.
func (w *World) Params() Params {
	return w.params
}

// Over reports whether a terminal outcome has fired.
func (w *World) Over() bool {
	return w.Outcome != core.OutcomeNone
}

// State summarizes the world for the platform.
func (w *World) State() core.GameState {
	return core.GameState{
		Score:    w.Score,
		GameOver: w.Over(),
		Outcome:  w.Outcome,
	}
}

// finish records the terminal outcome. Only the first call has any effect.
func (w *World) finish(o core.Outcome, c Cause) {
	if w.Over() {
		return
	}
	w.Outcome = o
	w.Cause = c
	if o == core.OutcomeWon {
		w.emit(core.EventWon)
	} else {
		w.emit(core.EventLost)
	}
}

func (w *World) emit(e core.Event) {
	w.events = append(w.events, e)
}

// CollectedCoins returns the number of coins collected so far.
func (w *World) CollectedCoins() int {
	n := 0
	for _, c := range w.Level.Coins {
		if c.Collected {
			n++
		}
	}
	return n
}
