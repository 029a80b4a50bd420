package othello

import "errors"

// ErrIllegalMove is returned by Apply when the move captures nothing or the
// target square is unavailable.
var ErrIllegalMove = errors.New("illegal move")

// Direction is a unit step on the board.
type Direction struct {
	DRow int
	DCol int
}

// Directions holds the eight neighbours in row-then-column ascending order.
var Directions = [8]Direction{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// CaptureResult is the outcome of scanning one direction from a square.
type CaptureResult struct {
	Legal     bool
	RunLength int
}

// Scan walks from the square next to (row, col) in direction d, counting
// tiles of the opposite color. The direction captures when that run is
// non-empty and ends on a tile of color. Scan does not read (row, col) itself.
func Scan(b *Board, row, col int, color Color, d Direction) CaptureResult {
	own, opp := color.Cell(), color.Opposite().Cell()
	r, c := row+d.DRow, col+d.DCol
	run := 0
	for b.InBounds(r, c) && b.At(r, c) == opp {
		run++
		r += d.DRow
		c += d.DCol
	}
	if !b.InBounds(r, c) || b.At(r, c) != own || run == 0 {
		return CaptureResult{}
	}
	return CaptureResult{Legal: true, RunLength: run}
}

// IsLegal reports whether m targets an empty square and captures in at least
// one direction. Off-board positions are illegal.
func IsLegal(b *Board, m Move) bool {
	if !b.InBounds(m.Pos.Row, m.Pos.Col) || b.At(m.Pos.Row, m.Pos.Col) != Empty {
		return false
	}
	return capturesAny(b, m.Pos.Row, m.Pos.Col, m.Color)
}

// MovesExist reports whether color has any legal move. It stops at the first
// capturing direction found.
func MovesExist(b *Board, color Color) bool {
	for r := 0; r < b.size; r++ {
		for c := 0; c < b.size; c++ {
			if b.At(r, c) == Empty && capturesAny(b, r, c, color) {
				return true
			}
		}
	}
	return false
}

// LegalMoves lists every legal target for color in row-major order.
func LegalMoves(b *Board, color Color) []Position {
	var moves []Position
	for r := 0; r < b.size; r++ {
		for c := 0; c < b.size; c++ {
			if b.At(r, c) == Empty && capturesAny(b, r, c, color) {
				moves = append(moves, Position{Row: r, Col: c})
			}
		}
	}
	return moves
}

// CaptureScore returns how many tiles color would flip by playing at pos.
// The target square's own state is not checked.
func CaptureScore(b *Board, pos Position, color Color) int {
	score := 0
	for _, d := range Directions {
		if res := Scan(b, pos.Row, pos.Col, color, d); res.Legal {
			score += res.RunLength
		}
	}
	return score
}

// Apply places m and flips every captured run. An illegal move leaves the
// board untouched and returns ErrIllegalMove.
func Apply(b *Board, m Move) error {
	if !IsLegal(b, m) {
		return ErrIllegalMove
	}
	row, col := m.Pos.Row, m.Pos.Col

	// Judge every direction against the pre-move board before flipping.
	var capturing [len(Directions)]bool
	for i, d := range Directions {
		capturing[i] = Scan(b, row, col, m.Color, d).Legal
	}

	own := m.Color.Cell()
	b.set(row, col, own)
	for i, d := range Directions {
		if !capturing[i] {
			continue
		}
		r, c := row+d.DRow, col+d.DCol
		for b.At(r, c) != own {
			b.set(r, c, own)
			r += d.DRow
			c += d.DCol
		}
	}
	return nil
}

func capturesAny(b *Board, row, col int, color Color) bool {
	for _, d := range Directions {
		if Scan(b, row, col, color, d).Legal {
			return true
		}
	}
	return false
}
