package snake

// Snapshot captures the observable game state for determinism tests and the
// spectator feed.
type Snapshot struct {
	Frame    uint64    `json:"frame"`
	Moves    uint64    `json:"moves"`
	State    string    `json:"state"`
	Paused   bool      `json:"paused"`
	Score    int       `json:"score"`
	Best     int       `json:"best"`
	Dir      Direction `json:"dir"`
	Body     []Cell    `json:"body"`
	Food     Cell      `json:"food"`
	Board    int       `json:"board"`
	TooSmall bool      `json:"too_small,omitempty"`
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Frame:    g.frame,
		Moves:    g.moves,
		Paused:   g.paused,
		Best:     g.best,
		Board:    g.geom.CellCount,
		TooSmall: g.tooSmall,
		Food:     NoCell,
	}
	if g.round == nil {
		return s
	}
	s.State = g.round.State().String()
	s.Score = g.round.Score()
	s.Dir = g.round.Body().Direction()
	s.Body = g.round.Body().Cells()
	s.Food = g.round.Food()
	return s
}

// Observe returns the snapshot for the spectator feed.
func (g *Game) Observe() any {
	return g.Snapshot()
}
