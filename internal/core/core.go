package core

// Tile is the state of a single board cell. TileEmpty and TileShip are
// internal to the engine; every other value may be shown to the player.
type Tile int

const (
	TileEmpty Tile = iota
	TileShip
	TileFogged
	TileHit
	TileHot
	TileWarm
	TileCold
)

func (t Tile) String() string {
	switch t {
	case TileEmpty:
		return "empty"
	case TileShip:
		return "ship"
	case TileFogged:
		return "fogged"
	case TileHit:
		return "hit"
	case TileHot:
		return "hot"
	case TileWarm:
		return "warm"
	case TileCold:
		return "cold"
	default:
		return "unknown"
	}
}

// Symbol returns the single-character board glyph for a tile. Internal
// states render as fogged so they can never leak through a display path.
func (t Tile) Symbol() byte {
	switch t {
	case TileHit:
		return 'X'
	case TileHot:
		return 'h'
	case TileWarm:
		return 'w'
	case TileCold:
		return 'c'
	default:
		return '.'
	}
}

// Revealed reports whether the tile has been shown to the player. A
// revealed tile keeps its value for the rest of the game.
func (t Tile) Revealed() bool {
	switch t {
	case TileHit, TileHot, TileWarm, TileCold:
		return true
	default:
		return false
	}
}

type Status int

const (
	StatusInProgress Status = iota
	StatusVictory
	StatusDefeat
)

func (s Status) String() string {
	switch s {
	case StatusVictory:
		return "victory"
	case StatusDefeat:
		return "defeat"
	default:
		return "in progress"
	}
}

// Point is a 1-based board coordinate.
type Point struct {
	X int
	Y int
}

// Manhattan returns the Manhattan distance between two points.
func (p Point) Manhattan(q Point) int {
	return abs(p.X-q.X) + abs(p.Y-q.Y)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
