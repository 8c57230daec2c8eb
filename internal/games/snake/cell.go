package snake

// Cell is a position on the board grid.
type Cell struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// NoCell marks the absence of a cell, e.g. food that could not be placed.
var NoCell = Cell{X: -1, Y: -1}

// Add returns the cell one step from c in direction d.
func (c Cell) Add(d Direction) Cell {
	return Cell{X: c.X + d.DX, Y: c.Y + d.DY}
}

// Direction is a unit step along one axis.
type Direction struct {
	DX int `json:"dx"`
	DY int `json:"dy"`
}

// The four valid directions. Screen coordinates: y grows downward.
var (
	Up    = Direction{DX: 0, DY: -1}
	Down  = Direction{DX: 0, DY: 1}
	Left  = Direction{DX: -1, DY: 0}
	Right = Direction{DX: 1, DY: 0}
)

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	return Direction{DX: -d.DX, DY: -d.DY}
}

// Valid reports whether d is one of Up, Down, Left, Right.
func (d Direction) Valid() bool {
	return d == Up || d == Down || d == Left || d == Right
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "invalid"
	}
}
