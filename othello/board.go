// Package othello implements the rules of Othello on a square board of any
// even size: move legality, tile flipping and the computer's move search.
package othello

import (
	"errors"
	"fmt"
	"strings"
)

// MinDimension is the smallest board that has room for the opening layout.
const MinDimension = 4

// Color is one of the two players. It has exactly two values, so the
// opposite of a color is always defined.
type Color bool

const (
	Black Color = false
	White Color = true
)

// Opposite returns the other player's color.
func (c Color) Opposite() Color {
	return !c
}

// Cell returns the cell state holding a tile of this color.
func (c Color) Cell() Cell {
	if c == White {
		return WhiteCell
	}
	return BlackCell
}

// Letter returns 'B' or 'W'.
func (c Color) Letter() byte {
	if c == White {
		return 'W'
	}
	return 'B'
}

func (c Color) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// ParseColor accepts "B", "W", "black" or "white" in any case.
func ParseColor(s string) (Color, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "b", "black":
		return Black, nil
	case "w", "white":
		return White, nil
	}
	return Black, fmt.Errorf("unknown color %q", s)
}

// Cell is the state of a single board square.
type Cell uint8

const (
	Empty Cell = iota
	BlackCell
	WhiteCell
)

// Color reports the color of the tile in the cell. ok is false for Empty.
func (c Cell) Color() (color Color, ok bool) {
	switch c {
	case BlackCell:
		return Black, true
	case WhiteCell:
		return White, true
	}
	return Black, false
}

func (c Cell) String() string {
	switch c {
	case BlackCell:
		return "B"
	case WhiteCell:
		return "W"
	default:
		return "U"
	}
}

// Position is a zero-based (row, col) board coordinate.
type Position struct {
	Row int
	Col int
}

// Move is a tile of Color placed at Pos.
type Move struct {
	Color Color
	Pos   Position
}

// DimensionError reports a board size that cannot hold a game.
type DimensionError struct {
	n int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("board dimension %d is invalid: must be even and at least %d", e.n, MinDimension)
}

// ErrRaggedBoard is returned by ParseBoard when rows differ in length.
var ErrRaggedBoard = errors.New("board rows must form a square")

// Board is a square grid of cells stored row-major.
type Board struct {
	size  int
	cells []Cell
}

// NewBoard creates an n×n board with the four centre tiles placed.
func NewBoard(n int) (*Board, error) {
	if n < MinDimension || n%2 != 0 {
		return nil, &DimensionError{n: n}
	}
	b := &Board{size: n, cells: make([]Cell, n*n)}
	h := n / 2
	b.set(h-1, h-1, WhiteCell)
	b.set(h-1, h, BlackCell)
	b.set(h, h-1, BlackCell)
	b.set(h, h, WhiteCell)
	return b, nil
}

// ParseBoard builds a board from rows of 'B', 'W' and 'U' (or '.') runes.
// Any square size is accepted so that arbitrary positions can be set up.
func ParseBoard(rows []string) (*Board, error) {
	n := len(rows)
	if n == 0 {
		return nil, &DimensionError{n: 0}
	}
	b := &Board{size: n, cells: make([]Cell, n*n)}
	for r, line := range rows {
		if len(line) != n {
			return nil, ErrRaggedBoard
		}
		for c := 0; c < n; c++ {
			switch line[c] {
			case 'B', 'b':
				b.set(r, c, BlackCell)
			case 'W', 'w':
				b.set(r, c, WhiteCell)
			case 'U', 'u', '.':
			default:
				return nil, fmt.Errorf("row %d: unexpected %q", r, line[c])
			}
		}
	}
	return b, nil
}

// Size returns the board dimension.
func (b *Board) Size() int {
	return b.size
}

// At returns the cell at (row, col). The coordinate must be in bounds.
func (b *Board) At(row, col int) Cell {
	return b.cells[b.index(row, col)]
}

// InBounds reports whether (row, col) lies on the board.
func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && col >= 0 && row < b.size && col < b.size
}

// IsFull reports whether no empty cell remains.
func (b *Board) IsFull() bool {
	for _, cell := range b.cells {
		if cell == Empty {
			return false
		}
	}
	return true
}

// TileCount returns the number of tiles of the given color.
func (b *Board) TileCount(color Color) int {
	want := color.Cell()
	count := 0
	for _, cell := range b.cells {
		if cell == want {
			count++
		}
	}
	return count
}

// EmptyCount returns the number of empty cells.
func (b *Board) EmptyCount() int {
	count := 0
	for _, cell := range b.cells {
		if cell == Empty {
			count++
		}
	}
	return count
}

// Clone returns a deep copy that shares no storage with b.
func (b *Board) Clone() *Board {
	clone := &Board{size: b.size, cells: make([]Cell, len(b.cells))}
	copy(clone.cells, b.cells)
	return clone
}

// Rows returns a copy of the board as rows of cells.
func (b *Board) Rows() [][]Cell {
	rows := make([][]Cell, b.size)
	for r := range rows {
		rows[r] = make([]Cell, b.size)
		copy(rows[r], b.cells[r*b.size:(r+1)*b.size])
	}
	return rows
}

func (b *Board) String() string {
	var sb strings.Builder
	for r := 0; r < b.size; r++ {
		for c := 0; c < b.size; c++ {
			sb.WriteString(b.At(r, c).String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (b *Board) set(row, col int, cell Cell) {
	b.cells[b.index(row, col)] = cell
}

func (b *Board) index(row, col int) int {
	return row*b.size + col
}
