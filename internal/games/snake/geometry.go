package snake

// Geometry describes the board: how many cells per side and how they map to
// window pixels. It is immutable configuration handed to every component that
// needs board bounds or pixel positions.
type Geometry struct {
	CellSize  int // Pixels per cell edge
	CellCount int // Cells per board side
	Offset    int // Pixels between the window edge and the board
}

// DefaultGeometry returns the classic 25x25 board of 30px cells with a 75px margin.
func DefaultGeometry() Geometry {
	return Geometry{
		CellSize:  30,
		CellCount: 25,
		Offset:    75,
	}
}

// Area returns the number of cells on the board.
func (g Geometry) Area() int {
	return g.CellCount * g.CellCount
}

// InBounds reports whether c lies on the board.
func (g Geometry) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.CellCount && c.Y >= 0 && c.Y < g.CellCount
}

// HitsWall reports whether c is on the ring of cells just outside the board.
// A head moves one cell per update, so this is where it lands when it leaves.
func (g Geometry) HitsWall(c Cell) bool {
	return c.X == -1 || c.X == g.CellCount || c.Y == -1 || c.Y == g.CellCount
}

// BoardSize returns the board edge length in pixels.
func (g Geometry) BoardSize() int {
	return g.CellSize * g.CellCount
}

// WindowSize returns the edge length of the square window in pixels.
func (g Geometry) WindowSize() int {
	return 2*g.Offset + g.BoardSize()
}

// CellOrigin returns the top-left pixel of c.
func (g Geometry) CellOrigin(c Cell) (x, y int) {
	return g.Offset + c.X*g.CellSize, g.Offset + c.Y*g.CellSize
}
