// Package engine defines the interface for game engines.
package engine

import (
	"errors"

	"termflip/othello"
	"termflip/types"
)

// ErrGameOver is returned by PlayMove once the game has ended.
var ErrGameOver = errors.New("game is over")

// GameEngine defines the interface for playing Othello against an engine.
type GameEngine interface {
	// Connect initializes the game. If the engine moves first, its opening
	// move is played before Connect returns.
	Connect() error

	// GetBoardState returns the current board state.
	GetBoardState() *types.BoardState

	// PlayMove plays the human's move at the given coordinates, then the
	// engine's replies. An illegal move ends the game as a loss and is
	// reported as an error.
	PlayMove(x, y int) error

	// IsMyTurn returns true if it's the human player's turn.
	IsMyTurn() bool

	// GetPlayerColor returns the human player's color (1=black, 2=white).
	GetPlayerColor() int

	// OnMove registers a callback for when a move is played (by either player).
	// x, y are -1, -1 for a pass. boardState is a snapshot taken after the move.
	OnMove(func(x, y, color int, boardState *types.BoardState))

	// OnGameEnd registers a callback for when the game ends.
	OnGameEnd(func(outcome string))

	// Close shuts down the engine.
	Close()
}

// GameConfig holds configuration for starting a new game.
type GameConfig struct {
	BoardSize   int    // even, 4-26
	PlayerColor int    // 1=black, 2=white
	Depth       int    // lookahead rounds for the computer
	Opening     string // moves played before the game starts, e.g. "Bcd Wce"
}

// DefaultConfig returns a reasonable default configuration.
func DefaultConfig() GameConfig {
	return GameConfig{
		BoardSize:   8,
		PlayerColor: 1, // Human plays black
		Depth:       othello.DefaultDepth,
	}
}

// ColorValue converts a color to the 1=black, 2=white convention.
func ColorValue(c othello.Color) int {
	if c == othello.White {
		return 2
	}
	return 1
}

// ColorFromValue converts 1=black, 2=white to a color. Any value other than
// 2 is black.
func ColorFromValue(v int) othello.Color {
	if v == 2 {
		return othello.White
	}
	return othello.Black
}
