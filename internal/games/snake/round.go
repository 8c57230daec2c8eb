package snake

import "math/rand"

// State is the round lifecycle state.
type State int

const (
	StateRunning State = iota
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Cause says why a round ended.
type Cause int

const (
	CauseWall Cause = iota + 1
	CauseSelf
)

func (c Cause) String() string {
	switch c {
	case CauseWall:
		return "wall"
	case CauseSelf:
		return "self"
	default:
		return "none"
	}
}

// EventKind identifies a round event.
type EventKind int

const (
	EventEaten EventKind = iota
	EventGameOver
)

// Event is raised synchronously from Round.Update.
//
// For EventEaten, Score is the new score and Food the relocated food cell.
// For EventGameOver, Score and Length describe the round that just ended;
// the round itself has already been reset when the handler runs.
type Event struct {
	Kind   EventKind
	Score  int
	Length int
	Food   Cell
	Cause  Cause
}

// Option configures a Round.
type Option func(*Round)

// WithEventHandler registers fn to receive round events.
func WithEventHandler(fn func(Event)) Option {
	return func(r *Round) {
		r.onEvent = fn
	}
}

// Round owns one body and one food cell and runs the per-update rules:
// move, then food, wall, and self collision, in that order.
type Round struct {
	geom    Geometry
	body    *Body
	spawner *FoodSpawner
	food    Cell
	score   int
	state   State
	onEvent func(Event)
}

// NewRound starts a running round with score 0 and food placed off the body.
func NewRound(geom Geometry, rng *rand.Rand, opts ...Option) *Round {
	r := &Round{
		geom:    geom,
		body:    NewBody(),
		spawner: NewFoodSpawner(geom, rng),
		state:   StateRunning,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.food = r.spawner.PlaceAwayFrom(r.body.cells)
	return r
}

// Update advances the round by one move. It does nothing while stopped.
func (r *Round) Update() {
	if r.state != StateRunning {
		return
	}

	r.body.Move()
	head := r.body.Head()

	if head == r.food {
		r.food = r.spawner.PlaceAwayFrom(r.body.cells)
		r.body.RequestGrowth()
		r.score++
		r.emit(Event{Kind: EventEaten, Score: r.score, Length: r.body.Len(), Food: r.food})
	}

	if r.geom.HitsWall(head) {
		r.GameOver(CauseWall)
		return
	}

	if r.body.HitsItself() {
		r.GameOver(CauseSelf)
	}
}

// GameOver ends the round: stops it, resets the body, moves the food off the
// fresh body, and zeroes the score. The next accepted direction resumes play.
func (r *Round) GameOver(cause Cause) {
	final, length := r.score, r.body.Len()

	r.setState(StateStopped)
	r.body.Reset()
	r.food = r.spawner.PlaceAwayFrom(r.body.cells)
	r.score = 0

	r.emit(Event{Kind: EventGameOver, Score: final, Length: length, Food: r.food, Cause: cause})
}

// RequestDirection steers the snake. Requests that would reverse the current
// direction, or are not a unit axis step, are ignored and return false. An
// accepted request also resumes a stopped round.
func (r *Round) RequestDirection(d Direction) bool {
	if !d.Valid() || d == r.body.Direction().Opposite() {
		return false
	}
	r.body.SetDirection(d)
	r.setState(StateRunning)
	return true
}

func (r *Round) setState(s State) {
	r.state = s
}

func (r *Round) emit(e Event) {
	if r.onEvent != nil {
		r.onEvent(e)
	}
}

// State returns the lifecycle state.
func (r *Round) State() State {
	return r.state
}

// Score returns the current score.
func (r *Round) Score() int {
	return r.score
}

// Food returns the food cell.
func (r *Round) Food() Cell {
	return r.food
}

// Body returns the snake. Callers must not mutate it outside the round rules.
func (r *Round) Body() *Body {
	return r.body
}

// Geometry returns the board geometry.
func (r *Round) Geometry() Geometry {
	return r.geom
}
