package record

import (
	"fmt"
	"strings"

	"termflip/othello"
)

// ParseOpening reads a sequence of moves such as "Bcd Wce, Bfe".
// Moves may be separated by spaces, commas or semicolons.
func ParseOpening(s string) ([]othello.Move, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == ';' || r == '\t' || r == '\n'
	})
	moves := make([]othello.Move, 0, len(fields))
	for i, f := range fields {
		m, err := ParseMove(f)
		if err != nil {
			return nil, fmt.Errorf("opening move %d: %w", i+1, err)
		}
		moves = append(moves, m)
	}
	return moves, nil
}

// Replay applies moves in order to board. It stops at the first illegal move
// and reports it; earlier moves stay applied.
func Replay(board *othello.Board, moves []othello.Move) error {
	for i, m := range moves {
		if err := othello.Apply(board, m); err != nil {
			return fmt.Errorf("opening move %d (%s): %w", i+1, FormatMove(m), err)
		}
	}
	return nil
}

// PlayOpening parses s and replays it on board. It returns the moves and the
// color to move next: the opposite of the last mover, or Black when s holds no
// moves.
func PlayOpening(board *othello.Board, s string) ([]othello.Move, othello.Color, error) {
	moves, err := ParseOpening(s)
	if err != nil {
		return nil, othello.Black, err
	}
	if err := Replay(board, moves); err != nil {
		return nil, othello.Black, err
	}
	if len(moves) == 0 {
		return moves, othello.Black, nil
	}
	return moves, moves[len(moves)-1].Color.Opposite(), nil
}
