package adapter

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"sonar/internal/core"
	"sonar/internal/game"

	"github.com/rs/zerolog/log"
)

// OutputFunc receives one line of player-facing text.
type OutputFunc func(line string)

var guessPattern = regexp.MustCompile(`^\s*([0-9]+)\s*,\s*([0-9]+)\s*$`)

// Adapter translates raw text into validated guesses for one game and
// narrates the results. Input that fails validation is reported to the
// output sink and never reaches the engine, so it costs no move.
type Adapter struct {
	game  *game.Game
	out   OutputFunc
	theme ColorTheme
	ended bool
}

// New binds an adapter to a game and emits the welcome banner, the
// initial board, and the first prompt.
func New(g *game.Game, out OutputFunc) *Adapter {
	a := &Adapter{
		game:  g,
		out:   out,
		theme: ThemeOff,
	}

	a.showWelcome()
	if g.Status() == core.StatusInProgress {
		a.showBoard()
		a.showPrompt()
	} else {
		// A zero-move or zero-ship configuration is over before the
		// first guess.
		a.showGameOver(g.Status())
	}

	return a
}

// Ended reports whether the bound game has reached a terminal state.
func (a *Adapter) Ended() bool {
	return a.ended
}

// HandleInput processes one line of player input: syntax check, bounds
// check, repeat-guess check, then delegation to the engine. The three
// checks fail distinctly and in that order.
func (a *Adapter) HandleInput(raw string) {
	if a.ended {
		a.out("The game is over.")
		return
	}

	p, err := a.parseGuess(raw)
	if err != nil {
		a.out(fmt.Sprintf("Error: %v", err))
		return
	}

	if a.game.FoggedBoard().At(p) != core.TileFogged {
		a.out(fmt.Sprintf("Error: %d, %d was already bombed, pick an unexplored cell", p.X, p.Y))
		return
	}

	tile, status, err := a.game.Guess(p)
	if err != nil {
		// Unreachable through this path: bounds and game state were
		// checked above.
		a.out(fmt.Sprintf("Error: %v", err))
		return
	}

	log.Debug().
		Str("game_id", a.game.ID()).
		Int("x", p.X).
		Int("y", p.Y).
		Str("tile", tile.String()).
		Str("status", status.String()).
		Msg("guess handled")

	a.out(fmt.Sprintf("%d, %d was a %s", p.X, p.Y, resultText(tile)))
	a.out(fmt.Sprintf("Ships remaining: %d", a.game.ShipsRemaining()))
	a.out(fmt.Sprintf("Moves remaining: %d", a.game.MovesRemaining()))

	if status != core.StatusInProgress {
		a.showGameOver(status)
		return
	}

	a.showBoard()
	a.showPrompt()
}

// parseGuess runs the syntax and bounds checks. Zero passes syntax but
// fails bounds: coordinates are 1-based.
func (a *Adapter) parseGuess(raw string) (core.Point, error) {
	m := guessPattern.FindStringSubmatch(raw)
	if m == nil {
		return core.Point{}, fmt.Errorf("could not read %q, enter a guess as: x, y", strings.TrimSpace(raw))
	}

	width, height := a.game.BoardSize()
	x, errX := strconv.Atoi(m[1])
	y, errY := strconv.Atoi(m[2])
	if errX != nil || errY != nil || x < 1 || x > width || y < 1 || y > height {
		return core.Point{}, fmt.Errorf("guess is off the board, x must be 1-%d and y must be 1-%d", width, height)
	}

	return core.Point{X: x, Y: y}, nil
}

func resultText(t core.Tile) string {
	switch t {
	case core.TileHit:
		return "hit!"
	case core.TileHot:
		return "miss, but hot!"
	case core.TileWarm:
		return "miss, but warm!"
	case core.TileCold:
		return "miss, cold. try again"
	default:
		return t.String()
	}
}

func (a *Adapter) showWelcome() {
	width, height := a.game.BoardSize()
	a.out("Welcome to Sonar!")
	a.out(fmt.Sprintf("%d ships are hiding in a %dx%d grid. You have %d moves to sink them all.",
		a.game.ShipsRemaining(), width, height, a.game.MaxMoves()))
	a.out("Each miss reports the heat of the nearest ship:")
	a.out("  h hot (within 2)   w warm (within 4)   c cold   X hit   . unexplored")
}

func (a *Adapter) showPrompt() {
	a.out("Enter your target as: x, y")
}

func (a *Adapter) showGameOver(status core.Status) {
	a.ended = true
	if status == core.StatusVictory {
		a.showBoard()
		a.out(fmt.Sprintf("All ships sunk in %d moves. Victory!", a.game.MovesMade()))
		return
	}
	a.out(fmt.Sprintf("Out of moves with %d ships still afloat. Defeat.", a.game.ShipsRemaining()))
}
