// Package types contains shared data structures for termflip.
package types

import (
	"encoding/json"
	"fmt"
)

// BoardState is a read-only snapshot of an Othello game for renderers.
// Board is indexed as Board[y][x] where 0=empty, 1=black, 2=white.
type BoardState struct {
	GameID       string     `json:"game_id"`
	MoveNumber   int        `json:"move_number"`
	PlayerToMove int        `json:"player_to_move"` // 1=black, 2=white
	Phase        string     `json:"phase"`          // "playing", "finished"
	Board        [][]int    `json:"board"`
	Outcome      string     `json:"outcome"`
	BlackCount   int        `json:"black_count"`
	WhiteCount   int        `json:"white_count"`
	LegalMoves   []BoardPos `json:"legal_moves"`
	LastMove     struct {
		X int `json:"x"`
		Y int `json:"y"`
	} `json:"last_move"`
}

// Finished returns true if the game is over.
func (b *BoardState) Finished() bool {
	return b.Phase == "finished"
}

// Height returns the board height.
func (b *BoardState) Height() int {
	return len(b.Board)
}

// Width returns the board width.
func (b *BoardState) Width() int {
	if b.Height() == 0 {
		return 0
	}
	return len(b.Board[0])
}

// IsLegal reports whether (x, y) is among the human's legal moves.
func (b *BoardState) IsLegal(x, y int) bool {
	for _, p := range b.LegalMoves {
		if p.X == x && p.Y == y {
			return true
		}
	}
	return false
}

// BoardPos represents a position on the board.
type BoardPos struct {
	X int
	Y int
}

// MarshalJSON writes a BoardPos as a JSON array [x, y].
func (p BoardPos) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{p.X, p.Y})
}

// UnmarshalJSON allows BoardPos to be unmarshaled from a JSON array [x, y].
func (p *BoardPos) UnmarshalJSON(data []byte) error {
	var v []float64
	err := json.Unmarshal(data, &v)
	if err != nil {
		return err
	}
	if len(v) != 2 {
		return fmt.Errorf("board position needs 2 coordinates, got %d", len(v))
	}
	p.X = int(v[0])
	p.Y = int(v[1])
	return nil
}

// NewBoardState creates a new empty board of the given size.
func NewBoardState(size int) *BoardState {
	board := make([][]int, size)
	for i := range board {
		board[i] = make([]int, size)
	}
	return &BoardState{
		MoveNumber:   0,
		PlayerToMove: 1, // Black plays first
		Phase:        "playing",
		Board:        board,
		LastMove: struct {
			X int `json:"x"`
			Y int `json:"y"`
		}{X: -1, Y: -1},
	}
}
