package platformer

import "github.com/vovakirdan/desert-run/internal/core"

// collectCoins awards each uncollected coin the player overlaps, exactly once.
func (w *World) collectCoins() {
	pb := w.Player.Box()
	for i := range w.Level.Coins {
		c := &w.Level.Coins[i]
		if c.Collected || !pb.Overlaps(c.Box()) {
			continue
		}
		c.Collected = true
		w.Score += w.params.CoinValue
		w.emit(core.EventCoin)
	}
}

// checkFlag ends the round in victory when the player touches the flag.
func (w *World) checkFlag() {
	if w.Player.Box().Overlaps(w.Level.Flag.Box()) {
		w.finish(core.OutcomeWon, CauseFlag)
	}
}
