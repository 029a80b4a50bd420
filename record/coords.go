// Package record converts between board positions and the letter notation
// used by players, and keeps game records.
package record

import (
	"fmt"
	"strings"

	"termflip/othello"
)

// Coordinate system:
// - Rows and columns are single lowercase letters, a=0, b=1, ... z=25.
// - A token is the row letter followed by the column letter.
// - Example: "cd" is row 2, column 3.

// MaxDimension is the largest board the letter alphabet can address.
const MaxDimension = 26

// TokenError reports input that does not name a board square.
type TokenError struct {
	token string
}

func (e *TokenError) Error() string {
	return fmt.Sprintf("invalid coordinate %q", e.token)
}

// Letter returns the label for row or column index i.
func Letter(i int) byte {
	return byte('a' + i)
}

// Token converts a position to its RowCol letter pair.
// (0, 0) -> "aa", (2, 3) -> "cd".
func Token(pos othello.Position) string {
	return string([]byte{Letter(pos.Row), Letter(pos.Col)})
}

// ParseToken converts a RowCol letter pair to a position. The result is not
// checked against any board size; callers test legality on the board.
func ParseToken(token string) (othello.Position, error) {
	t := strings.TrimSpace(token)
	if len(t) != 2 {
		return othello.Position{}, &TokenError{token: token}
	}
	row, ok := letterIndex(t[0])
	if !ok {
		return othello.Position{}, &TokenError{token: token}
	}
	col, ok := letterIndex(t[1])
	if !ok {
		return othello.Position{}, &TokenError{token: token}
	}
	return othello.Position{Row: row, Col: col}, nil
}

// FormatMove writes a move as color letter plus token, e.g. "Bcd".
func FormatMove(m othello.Move) string {
	return string(m.Color.Letter()) + Token(m.Pos)
}

// ParseMove reads a move written by FormatMove.
func ParseMove(s string) (othello.Move, error) {
	s = strings.TrimSpace(s)
	if len(s) != 3 {
		return othello.Move{}, fmt.Errorf("invalid move %q", s)
	}
	color, err := othello.ParseColor(s[:1])
	if err != nil {
		return othello.Move{}, fmt.Errorf("invalid move %q: %w", s, err)
	}
	pos, err := ParseToken(s[1:])
	if err != nil {
		return othello.Move{}, fmt.Errorf("invalid move %q: %w", s, err)
	}
	return othello.Move{Color: color, Pos: pos}, nil
}

func letterIndex(ch byte) (int, bool) {
	if ch < 'a' || ch > 'z' {
		return 0, false
	}
	return int(ch - 'a'), true
}
