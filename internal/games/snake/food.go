package snake

import (
	"math/rand"
	"slices"
)

// FoodSpawner picks food positions at random.
type FoodSpawner struct {
	rng  *rand.Rand
	geom Geometry
}

// NewFoodSpawner creates a spawner drawing cells of geom from rng.
func NewFoodSpawner(geom Geometry, rng *rand.Rand) *FoodSpawner {
	return &FoodSpawner{rng: rng, geom: geom}
}

// PlaceAwayFrom draws random board cells until one is not in occupied.
// Returns NoCell when occupied covers the whole board.
func (s *FoodSpawner) PlaceAwayFrom(occupied []Cell) Cell {
	if len(occupied) >= s.geom.Area() && s.covers(occupied) {
		return NoCell
	}

	for {
		c := Cell{
			X: s.rng.Intn(s.geom.CellCount),
			Y: s.rng.Intn(s.geom.CellCount),
		}
		if !slices.Contains(occupied, c) {
			return c
		}
	}
}

// covers reports whether every board cell appears in cells.
func (s *FoodSpawner) covers(cells []Cell) bool {
	seen := make(map[Cell]struct{}, s.geom.Area())
	for _, c := range cells {
		if s.geom.InBounds(c) {
			seen[c] = struct{}{}
		}
	}
	return len(seen) == s.geom.Area()
}
