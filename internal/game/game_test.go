package game

import (
	"math/rand"
	"testing"

	"sonar/internal/config"
	"sonar/internal/core"
)

func testRand() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

func TestNewClampsToBoardArea(t *testing.T) {
	g := New(&config.Config{Width: 2, Height: 2, MaxMoves: 100, ShipCount: 100}, testRand())

	if g.MaxMoves() != 4 {
		t.Errorf("MaxMoves = %d, want 4", g.MaxMoves())
	}
	if g.ShipsRemaining() != 4 {
		t.Errorf("ShipsRemaining = %d, want 4", g.ShipsRemaining())
	}
}

func TestNewPlacesDistinctShips(t *testing.T) {
	g := New(&config.Config{Width: 8, Height: 8, MaxMoves: 64, ShipCount: 10}, testRand())

	if g.ShipsRemaining() != 10 {
		t.Fatalf("ShipsRemaining = %d, want 10", g.ShipsRemaining())
	}
	for p := range g.ships {
		if !g.board.InBounds(p) {
			t.Errorf("ship placed out of bounds at %d, %d", p.X, p.Y)
		}
		if g.board.At(p) != core.TileShip {
			t.Errorf("ship set and board disagree at %d, %d", p.X, p.Y)
		}
	}
}

func TestGuessOutOfBoundsConsumesNoMove(t *testing.T) {
	g, err := NewPlaced(&config.Config{Width: 8, Height: 8, MaxMoves: 20}, core.Point{X: 4, Y: 4})
	if err != nil {
		t.Fatal(err)
	}

	for _, p := range []core.Point{{X: 0, Y: 1}, {X: 1, Y: 0}, {X: 9, Y: 1}, {X: 1, Y: 9}, {X: -3, Y: 2}} {
		if _, _, err := g.Guess(p); err == nil {
			t.Errorf("Guess(%d, %d) succeeded, want out-of-bounds error", p.X, p.Y)
		}
	}
	if g.MovesMade() != 0 {
		t.Errorf("MovesMade = %d after out-of-bounds guesses, want 0", g.MovesMade())
	}
}

func TestGuessAlwaysCostsAMove(t *testing.T) {
	g, err := NewPlaced(&config.Config{Width: 8, Height: 8, MaxMoves: 20}, core.Point{X: 1, Y: 1})
	if err != nil {
		t.Fatal(err)
	}

	first, _, err := g.Guess(core.Point{X: 8, Y: 8})
	if err != nil {
		t.Fatal(err)
	}
	if g.MovesMade() != 1 {
		t.Fatalf("MovesMade = %d after one guess, want 1", g.MovesMade())
	}

	// Repeat guesses still cost a move and the revealed tile is never
	// re-valued.
	second, _, err := g.Guess(core.Point{X: 8, Y: 8})
	if err != nil {
		t.Fatal(err)
	}
	if g.MovesMade() != 2 {
		t.Errorf("MovesMade = %d after repeat guess, want 2", g.MovesMade())
	}
	if second != first {
		t.Errorf("repeat guess returned %s, want original %s", second, first)
	}
}

func TestGuessHitRemovesShip(t *testing.T) {
	g, err := NewPlaced(&config.Config{Width: 8, Height: 8, MaxMoves: 20},
		core.Point{X: 3, Y: 5}, core.Point{X: 7, Y: 2})
	if err != nil {
		t.Fatal(err)
	}

	tile, status, err := g.Guess(core.Point{X: 3, Y: 5})
	if err != nil {
		t.Fatal(err)
	}
	if tile != core.TileHit {
		t.Errorf("tile = %s, want hit", tile)
	}
	if status != core.StatusInProgress {
		t.Errorf("status = %s, want in progress", status)
	}
	if g.ShipsRemaining() != 1 {
		t.Errorf("ShipsRemaining = %d, want 1", g.ShipsRemaining())
	}

	// The same cell cannot be hit twice.
	tile, _, err = g.Guess(core.Point{X: 3, Y: 5})
	if err != nil {
		t.Fatal(err)
	}
	if tile != core.TileHit {
		t.Errorf("repeat tile = %s, want hit (unchanged)", tile)
	}
	if g.ShipsRemaining() != 1 {
		t.Errorf("ShipsRemaining = %d after repeat hit, want 1", g.ShipsRemaining())
	}
}

func TestGuessHeatTiers(t *testing.T) {
	tests := []struct {
		guess core.Point
		want  core.Tile
	}{
		{core.Point{X: 2, Y: 1}, core.TileHot},  // distance 1
		{core.Point{X: 2, Y: 2}, core.TileHot},  // distance 2
		{core.Point{X: 4, Y: 1}, core.TileWarm}, // distance 3
		{core.Point{X: 3, Y: 3}, core.TileWarm}, // distance 4
		{core.Point{X: 6, Y: 1}, core.TileCold}, // distance 5
		{core.Point{X: 9, Y: 9}, core.TileCold}, // distance 16
	}

	for _, tt := range tests {
		g, err := NewPlaced(&config.Config{Width: 9, Height: 9, MaxMoves: 81}, core.Point{X: 1, Y: 1})
		if err != nil {
			t.Fatal(err)
		}
		tile, _, err := g.Guess(tt.guess)
		if err != nil {
			t.Fatal(err)
		}
		if tile != tt.want {
			t.Errorf("Guess(%d, %d) = %s, want %s", tt.guess.X, tt.guess.Y, tile, tt.want)
		}
	}
}

func TestClassifyUsesNearestSurvivingShip(t *testing.T) {
	g, err := NewPlaced(&config.Config{Width: 9, Height: 9, MaxMoves: 81},
		core.Point{X: 1, Y: 1}, core.Point{X: 9, Y: 1})
	if err != nil {
		t.Fatal(err)
	}

	// (7, 1) is distance 2 from the ship at (9, 1).
	tile, _, err := g.Guess(core.Point{X: 7, Y: 1})
	if err != nil {
		t.Fatal(err)
	}
	if tile != core.TileHot {
		t.Fatalf("tile = %s, want hot while (9, 1) survives", tile)
	}

	// After sinking (9, 1), the same distance from the remaining ship
	// at (1, 1) would be cold, but the revealed cell must not change.
	if _, _, err := g.Guess(core.Point{X: 9, Y: 1}); err != nil {
		t.Fatal(err)
	}
	tile, _, err = g.Guess(core.Point{X: 7, Y: 1})
	if err != nil {
		t.Fatal(err)
	}
	if tile != core.TileHot {
		t.Errorf("revealed tile re-valued to %s after ship sunk, want hot", tile)
	}

	// A fresh cell at the same distance now classifies against (1, 1).
	tile, _, err = g.Guess(core.Point{X: 7, Y: 2})
	if err != nil {
		t.Fatal(err)
	}
	if tile != core.TileCold {
		t.Errorf("tile = %s, want cold against remaining ship", tile)
	}
}

func TestStatusDerivation(t *testing.T) {
	tests := []struct {
		name      string
		ships     int
		movesMade int
		maxMoves  int
		want      core.Status
	}{
		{"fresh game", 2, 0, 20, core.StatusInProgress},
		{"mid game", 1, 10, 20, core.StatusInProgress},
		{"all ships sunk", 0, 5, 20, core.StatusVictory},
		{"moves exhausted", 1, 20, 20, core.StatusDefeat},
		{"winning final move", 0, 20, 20, core.StatusVictory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ships := make([]core.Point, tt.ships)
			for i := range ships {
				ships[i] = core.Point{X: i + 1, Y: 1}
			}
			g, err := NewPlaced(&config.Config{Width: 8, Height: 8, MaxMoves: tt.maxMoves}, ships...)
			if err != nil {
				t.Fatal(err)
			}
			g.movesMade = tt.movesMade

			if got := g.Status(); got != tt.want {
				t.Errorf("Status = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestGuessRejectedAfterGameOver(t *testing.T) {
	g, err := NewPlaced(&config.Config{Width: 8, Height: 8, MaxMoves: 1}, core.Point{X: 1, Y: 1})
	if err != nil {
		t.Fatal(err)
	}

	if _, _, err := g.Guess(core.Point{X: 8, Y: 8}); err != nil {
		t.Fatal(err)
	}
	if g.Status() != core.StatusDefeat {
		t.Fatalf("Status = %s, want defeat", g.Status())
	}

	if _, _, err := g.Guess(core.Point{X: 7, Y: 7}); err == nil {
		t.Error("Guess succeeded after defeat, want game-over error")
	}
	if g.MovesMade() != 1 {
		t.Errorf("MovesMade = %d after rejected guess, want 1", g.MovesMade())
	}
}

func TestFoggedBoardHidesShips(t *testing.T) {
	g := New(&config.Config{Width: 8, Height: 8, MaxMoves: 20, ShipCount: 5}, testRand())

	if _, _, err := g.Guess(core.Point{X: 4, Y: 4}); err != nil {
		t.Fatal(err)
	}

	fogged := g.FoggedBoard()
	for x := 1; x <= 8; x++ {
		for y := 1; y <= 8; y++ {
			switch tile := fogged.At(core.Point{X: x, Y: y}); tile {
			case core.TileEmpty, core.TileShip:
				t.Errorf("fogged view exposes %s at %d, %d", tile, x, y)
			}
		}
	}
}

func TestSingleCellInstantWin(t *testing.T) {
	g := New(&config.Config{Width: 1, Height: 1, MaxMoves: 1, ShipCount: 1}, testRand())

	tile, status, err := g.Guess(core.Point{X: 1, Y: 1})
	if err != nil {
		t.Fatal(err)
	}
	if tile != core.TileHit {
		t.Errorf("tile = %s, want hit", tile)
	}
	if status != core.StatusVictory {
		t.Errorf("status = %s, want victory", status)
	}
}

func TestZeroMoveBudgetIsImmediateDefeat(t *testing.T) {
	g := New(&config.Config{Width: 1, Height: 2, MaxMoves: 0, ShipCount: 1}, testRand())

	if g.Status() != core.StatusDefeat {
		t.Errorf("Status = %s, want defeat", g.Status())
	}
}

func TestNewPlacedRejectsBadShips(t *testing.T) {
	cfg := &config.Config{Width: 4, Height: 4, MaxMoves: 16}

	if _, err := NewPlaced(cfg, core.Point{X: 5, Y: 1}); err == nil {
		t.Error("NewPlaced accepted an out-of-bounds ship")
	}
	if _, err := NewPlaced(cfg, core.Point{X: 2, Y: 2}, core.Point{X: 2, Y: 2}); err == nil {
		t.Error("NewPlaced accepted a duplicate ship")
	}
}
