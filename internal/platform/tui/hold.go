package tui

import "github.com/vovakirdan/desert-run/internal/core"

// DefaultHoldFrames is used when the config sets no hold duration.
const DefaultHoldFrames = 9

// HoldLatch turns key presses into held controls. Terminals report key
// presses but never releases, so a control stays held for a number of
// frames after its last press; key auto-repeat keeps refreshing it.
type HoldLatch struct {
	frames int
	left   int
	right  int
	jump   int
}

// NewHoldLatch creates a latch that holds each press for frames ticks.
func NewHoldLatch(frames int) HoldLatch {
	if frames <= 0 {
		frames = DefaultHoldFrames
	}
	return HoldLatch{frames: frames}
}

// Press marks a control as held. Pressing one direction releases the other.
func (h *HoldLatch) Press(a core.Action) {
	switch a {
	case core.ActionLeft:
		h.left = h.frames
		h.right = 0
	case core.ActionRight:
		h.right = h.frames
		h.left = 0
	case core.ActionJump:
		h.jump = h.frames
	}
}

// Controls returns the controls held for the current frame.
func (h HoldLatch) Controls() core.Controls {
	return core.Controls{
		Left:  h.left > 0,
		Right: h.right > 0,
		Jump:  h.jump > 0,
	}
}

// Advance ages every held control by one frame.
func (h *HoldLatch) Advance() {
	h.left = decay(h.left)
	h.right = decay(h.right)
	h.jump = decay(h.jump)
}

// Release drops every held control.
func (h *HoldLatch) Release() {
	h.left, h.right, h.jump = 0, 0, 0
}

func decay(n int) int {
	if n > 0 {
		return n - 1
	}
	return 0
}
