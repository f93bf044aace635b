package game

import (
	"fmt"
	"math/rand"
	"time"

	"sonar/internal/board"
	"sonar/internal/config"
	"sonar/internal/core"

	"github.com/google/uuid"
)

// Game is the state engine for a single session: the board, the set of
// surviving ships, and the move budget. It is mutated only through
// Guess; everything else is a read-only view.
type Game struct {
	id        string
	board     *board.Board
	ships     map[core.Point]struct{}
	movesMade int
	maxMoves  int
}

// New creates a game from cfg, clamping the move budget and ship count
// to the board area, and places the ships at distinct random cells.
// A nil rng falls back to a time-seeded source.
func New(cfg *config.Config, rng *rand.Rand) *Game {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	area := cfg.Width * cfg.Height
	maxMoves := cfg.MaxMoves
	if maxMoves > area {
		maxMoves = area
	}
	shipCount := cfg.ShipCount
	if shipCount > area {
		shipCount = area
	}

	g := &Game{
		id:       uuid.New().String(),
		board:    board.New(cfg.Width, cfg.Height),
		ships:    make(map[core.Point]struct{}, shipCount),
		maxMoves: maxMoves,
	}
	g.placeShips(shipCount, rng)

	return g
}

// NewPlaced creates a game with ships at the given cells instead of
// random ones, for resuming a known position. The configured ship
// count is ignored; the move budget is still clamped to the board area.
func NewPlaced(cfg *config.Config, ships ...core.Point) (*Game, error) {
	area := cfg.Width * cfg.Height
	maxMoves := cfg.MaxMoves
	if maxMoves > area {
		maxMoves = area
	}

	g := &Game{
		id:       uuid.New().String(),
		board:    board.New(cfg.Width, cfg.Height),
		ships:    make(map[core.Point]struct{}, len(ships)),
		maxMoves: maxMoves,
	}
	for _, p := range ships {
		if !g.board.InBounds(p) {
			return nil, fmt.Errorf("ship %d, %d is out of bounds (board is %dx%d)",
				p.X, p.Y, cfg.Width, cfg.Height)
		}
		if _, taken := g.ships[p]; taken {
			return nil, fmt.Errorf("duplicate ship at %d, %d", p.X, p.Y)
		}
		g.ships[p] = struct{}{}
		g.board.Set(p, core.TileShip)
	}

	return g, nil
}

// placeShips picks distinct random cells by rejection sampling; the
// ship count never exceeds the board area, so the loop terminates.
func (g *Game) placeShips(count int, rng *rand.Rand) {
	placed := 0
	for placed < count {
		p := core.Point{
			X: rng.Intn(g.board.Width()) + 1,
			Y: rng.Intn(g.board.Height()) + 1,
		}
		if _, taken := g.ships[p]; taken {
			continue
		}
		g.ships[p] = struct{}{}
		g.board.Set(p, core.TileShip)
		placed++
	}
}

// Guess processes one shot at p. Every in-bounds guess on a live game
// costs a move, including guesses on already revealed cells: probing a
// revealed cell for changed proximity is not free information. Revealed
// cells keep their original tile. Out-of-bounds guesses and guesses
// after the game has ended fail without consuming a move.
func (g *Game) Guess(p core.Point) (core.Tile, core.Status, error) {
	if !g.board.InBounds(p) {
		return core.TileEmpty, g.Status(), fmt.Errorf(
			"guess %d, %d is out of bounds (board is %dx%d)",
			p.X, p.Y, g.board.Width(), g.board.Height())
	}
	if status := g.Status(); status != core.StatusInProgress {
		return core.TileEmpty, status, fmt.Errorf("game is over: %s", status)
	}

	g.movesMade++

	tile := g.board.At(p)
	switch {
	case tile.Revealed():
		// Keep the existing tile.
	case tile == core.TileShip:
		tile = core.TileHit
		delete(g.ships, p)
		g.board.Set(p, tile)
	default:
		tile = g.classify(p)
		g.board.Set(p, tile)
	}

	return tile, g.Status(), nil
}

// classify maps the Manhattan distance from p to the nearest surviving
// ship onto a heat tier. Only reachable while ships remain: a live game
// has at least one ship, since zero ships is victory.
func (g *Game) classify(p core.Point) core.Tile {
	nearest := -1
	for ship := range g.ships {
		d := p.Manhattan(ship)
		if nearest < 0 || d < nearest {
			nearest = d
		}
	}

	switch {
	case nearest <= 2:
		return core.TileHot
	case nearest <= 4:
		return core.TileWarm
	default:
		return core.TileCold
	}
}

// Status derives the game state from the counters on every call rather
// than storing it. Victory is checked before defeat so a winning guess
// that exactly exhausts the move budget still wins.
func (g *Game) Status() core.Status {
	if len(g.ships) == 0 {
		return core.StatusVictory
	}
	if g.movesMade >= g.maxMoves {
		return core.StatusDefeat
	}
	return core.StatusInProgress
}

func (g *Game) ID() string {
	return g.id
}

func (g *Game) MovesMade() int {
	return g.movesMade
}

func (g *Game) MaxMoves() int {
	return g.maxMoves
}

func (g *Game) MovesRemaining() int {
	return g.maxMoves - g.movesMade
}

func (g *Game) ShipsRemaining() int {
	return len(g.ships)
}

func (g *Game) BoardSize() (width, height int) {
	return g.board.Width(), g.board.Height()
}

// FoggedBoard is the only board view exposed outside the engine; the
// raw grid would reveal ship positions.
func (g *Game) FoggedBoard() *board.Board {
	return g.board.Fogged()
}
