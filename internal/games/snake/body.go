package snake

import "slices"

// Start position shared by every new round.
var (
	startCells     = []Cell{{X: 6, Y: 9}, {X: 5, Y: 9}, {X: 4, Y: 9}}
	startDirection = Right
)

// Body is the snake: an ordered list of cells with the head at index 0, the
// direction it travels, and whether the next move should keep the tail.
type Body struct {
	cells   []Cell
	dir     Direction
	growing bool
}

// NewBody returns a body in the start position.
func NewBody() *Body {
	b := &Body{}
	b.Reset()
	return b
}

// Reset restores the start position and direction and drops pending growth.
func (b *Body) Reset() {
	b.cells = append(b.cells[:0], startCells...)
	b.dir = startDirection
	b.growing = false
}

// Move pushes a new head one cell along the current direction. The tail is
// dropped unless growth was requested since the last move. Leaving the board
// is allowed; callers check bounds.
func (b *Body) Move() {
	head := b.cells[0].Add(b.dir)
	b.cells = append(b.cells, Cell{})
	copy(b.cells[1:], b.cells[:len(b.cells)-1])
	b.cells[0] = head

	if b.growing {
		b.growing = false
		return
	}
	b.cells = b.cells[:len(b.cells)-1]
}

// RequestGrowth makes the next Move keep the tail. Repeated calls before that
// move still grow the body by a single cell.
func (b *Body) RequestGrowth() {
	b.growing = true
}

// Growing reports whether growth is pending.
func (b *Body) Growing() bool {
	return b.growing
}

// SetDirection changes the travel direction. Reversal checks are the
// caller's job.
func (b *Body) SetDirection(d Direction) {
	b.dir = d
}

// Direction returns the travel direction.
func (b *Body) Direction() Direction {
	return b.dir
}

// Head returns the first cell.
func (b *Body) Head() Cell {
	return b.cells[0]
}

// Len returns the number of cells.
func (b *Body) Len() int {
	return len(b.cells)
}

// Cells returns a copy of the cells, head first.
func (b *Body) Cells() []Cell {
	return slices.Clone(b.cells)
}

// Contains reports whether any cell of the body equals c.
func (b *Body) Contains(c Cell) bool {
	return slices.Contains(b.cells, c)
}

// HitsItself reports whether the head overlaps another cell of the body.
func (b *Body) HitsItself() bool {
	return slices.Contains(b.cells[1:], b.cells[0])
}
