package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second driving Game.Step (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score   int  // Current score
	Length  int  // Current player length
	Running bool // Whether the round is in play
	Paused  bool // Whether the game is paused
}

// EventKind identifies something notable that happened during a step.
type EventKind int

const (
	// EventScored is raised when the player picks up food.
	EventScored EventKind = iota
	// EventRoundOver is raised when a round ends. Score holds the final score
	// of the round, before the game resets it.
	EventRoundOver
)

// String returns a short name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventScored:
		return "scored"
	case EventRoundOver:
		return "round_over"
	default:
		return "unknown"
	}
}

// Event is a platform-visible game event. Frontends use events for sound
// cues and score persistence without knowing the game's internals.
type Event struct {
	Kind   EventKind
	Score  int    // Score after the event (final score for EventRoundOver)
	Length int    // Player length at the time of the event, if meaningful
	Cause  string // Why the round ended (EventRoundOver only)
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Moved  bool    // Whether the simulation advanced this step
	Events []Event // Events in the order they happened
}

// Has reports whether an event of the given kind occurred this step.
func (r StepResult) Has(kind EventKind) bool {
	for _, e := range r.Events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}
