package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Simulation ticks per second (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  30,
		TickRate: 60,
	}
}

// Outcome is the terminal result of a round.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeLost
	OutcomeWon
)

// String returns the outcome name as stored with scores.
func (o Outcome) String() string {
	switch o {
	case OutcomeLost:
		return "lost"
	case OutcomeWon:
		return "won"
	default:
		return "none"
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int     // Current score
	GameOver bool    // Whether the round has ended
	Outcome  Outcome // Terminal outcome, OutcomeNone while playing
	Paused   bool    // Whether the game is paused
}

// Won reports whether the round ended in victory.
func (s GameState) Won() bool {
	return s.Outcome == OutcomeWon
}

// Event is something notable that happened during a single tick.
type Event int

const (
	EventJump Event = iota + 1
	EventCoin
	EventStomp
	EventLost
	EventWon
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventJump:
		return "jump"
	case EventCoin:
		return "coin"
	case EventStomp:
		return "stomp"
	case EventLost:
		return "lost"
	case EventWon:
		return "won"
	default:
		return "unknown"
	}
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event
}
