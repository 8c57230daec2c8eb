package snake

import (
	"math/rand"
	"slices"
	"testing"
)

func TestPlaceAwayFromValid(t *testing.T) {
	geom := DefaultGeometry()
	s := NewFoodSpawner(geom, rand.New(rand.NewSource(7)))
	occupied := NewBody().Cells()

	for range 1000 {
		c := s.PlaceAwayFrom(occupied)
		if !geom.InBounds(c) {
			t.Fatalf("Food %v outside the %dx%d board", c, geom.CellCount, geom.CellCount)
		}
		if slices.Contains(occupied, c) {
			t.Fatalf("Food %v placed on the snake", c)
		}
	}
}

func TestPlaceAwayFromCrowdedBoard(t *testing.T) {
	geom := Geometry{CellSize: 10, CellCount: 10}
	s := NewFoodSpawner(geom, rand.New(rand.NewSource(1)))

	// Leave exactly one free cell.
	var occupied []Cell
	for y := range geom.CellCount {
		for x := range geom.CellCount {
			if x == 3 && y == 7 {
				continue
			}
			occupied = append(occupied, Cell{x, y})
		}
	}

	if c := s.PlaceAwayFrom(occupied); c != (Cell{3, 7}) {
		t.Errorf("PlaceAwayFrom = %v, expected the only free cell (3,7)", c)
	}
}

func TestPlaceAwayFromFullBoard(t *testing.T) {
	geom := Geometry{CellSize: 10, CellCount: 10}
	s := NewFoodSpawner(geom, rand.New(rand.NewSource(1)))

	var occupied []Cell
	for y := range geom.CellCount {
		for x := range geom.CellCount {
			occupied = append(occupied, Cell{x, y})
		}
	}
	// Off-board cells must not count toward coverage.
	occupied = append(occupied, Cell{-1, 0})

	if c := s.PlaceAwayFrom(occupied); c != NoCell {
		t.Errorf("PlaceAwayFrom on a full board = %v, expected NoCell", c)
	}
}

func TestPlaceAwayFromDeterministic(t *testing.T) {
	geom := DefaultGeometry()
	a := NewFoodSpawner(geom, rand.New(rand.NewSource(99)))
	b := NewFoodSpawner(geom, rand.New(rand.NewSource(99)))

	for i := range 50 {
		if ca, cb := a.PlaceAwayFrom(nil), b.PlaceAwayFrom(nil); ca != cb {
			t.Fatalf("Draw %d differs: %v vs %v", i, ca, cb)
		}
	}
}
