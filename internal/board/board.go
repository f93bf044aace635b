package board

import (
	"fmt"
	"strings"

	"sonar/internal/core"
)

// Board is a fixed-size grid of tiles. Cells are stored column-major
// (cells[x][y]); coordinates on the public surface are 1-based.
type Board struct {
	width  int
	height int
	cells  [][]core.Tile
}

func New(width, height int) *Board {
	cells := make([][]core.Tile, width)
	for x := 0; x < width; x++ {
		cells[x] = make([]core.Tile, height)
	}
	return &Board{
		width:  width,
		height: height,
		cells:  cells,
	}
}

func (b *Board) Width() int {
	return b.width
}

func (b *Board) Height() int {
	return b.height
}

func (b *Board) InBounds(p core.Point) bool {
	return p.X >= 1 && p.X <= b.width && p.Y >= 1 && p.Y <= b.height
}

// At returns the tile at p. Callers guarantee p is in bounds.
func (b *Board) At(p core.Point) core.Tile {
	return b.cells[p.X-1][p.Y-1]
}

// Set stores t at p. Callers guarantee p is in bounds.
func (b *Board) Set(p core.Point, t core.Tile) {
	b.cells[p.X-1][p.Y-1] = t
}

// Fogged returns a player-visible copy of the board: empty and ship
// cells become fogged, revealed cells pass through unchanged.
func (b *Board) Fogged() *Board {
	f := New(b.width, b.height)
	for x := 0; x < b.width; x++ {
		for y := 0; y < b.height; y++ {
			t := b.cells[x][y]
			if !t.Revealed() {
				t = core.TileFogged
			}
			f.cells[x][y] = t
		}
	}
	return f
}

// ToASCII creates an ASCII representation of the board: column headers
// across the top, row headers down the left, one glyph per cell.
func (b *Board) ToASCII() string {
	var sb strings.Builder

	sb.WriteString("   ")
	for x := 1; x <= b.width; x++ {
		sb.WriteString(fmt.Sprintf("%2d ", x))
	}
	sb.WriteString("\n")

	for y := 1; y <= b.height; y++ {
		sb.WriteString(fmt.Sprintf("%2d ", y))
		for x := 1; x <= b.width; x++ {
			sb.WriteString(fmt.Sprintf(" %c ", b.cells[x-1][y-1].Symbol()))
		}
		if y < b.height {
			sb.WriteString("\n")
		}
	}

	return sb.String()
}
