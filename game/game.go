// Package game runs a match between a human and the computer: whose turn it
// is, passes, and when the game is over.
package game

import (
	"errors"
	"fmt"

	"termflip/othello"
)

// ErrNotHumanTurn is returned when human input arrives while the game is not
// waiting for it.
var ErrNotHumanTurn = errors.New("not the human player's turn")

// Side identifies who takes a turn.
type Side int

const (
	Human Side = iota
	Computer
)

func (s Side) String() string {
	if s == Computer {
		return "Computer"
	}
	return "Human"
}

// Config holds the parameters of a match.
type Config struct {
	Dimension     int
	ComputerColor othello.Color
	Depth         int
	// FirstColor moves first in every round. The zero value is Black.
	FirstColor othello.Color
}

// Turn is what happened when one side acted.
type Turn struct {
	Side  Side
	Color othello.Color
	Pos   othello.Position
	// Played is false for a pass or a forfeit.
	Played bool
	// Forfeit is set when the human entered an illegal or malformed move.
	Forfeit bool
	// Announce is set for a pass the players should be told about: the
	// board is not full and the other side can still move.
	Announce bool
}

// Result is the final state of a finished game.
type Result struct {
	Black   int
	White   int
	Forfeit bool
	Draw    bool
	Winner  othello.Color
}

// Session owns the live board and alternates turns in rounds. Each round
// the side playing FirstColor acts first. Both sides' "moves available"
// flags are reset to true at the start of a round; the game ends after a
// round in which both flags were cleared, when the board fills, or when the
// human forfeits.
type Session struct {
	board    *othello.Board
	cfg      Config
	order    [2]Side
	step     int
	movesFor [2]bool
	over     bool
	forfeit  bool
}

// New starts a match on a fresh board.
func New(cfg Config) (*Session, error) {
	board, err := othello.NewBoard(cfg.Dimension)
	if err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}
	return NewFromBoard(board, cfg), nil
}

// NewFromBoard starts a match on an existing position. The session takes
// ownership of board.
func NewFromBoard(board *othello.Board, cfg Config) *Session {
	cfg.Dimension = board.Size()
	s := &Session{
		board:    board,
		cfg:      cfg,
		order:    [2]Side{Human, Computer},
		movesFor: [2]bool{true, true},
	}
	if cfg.ComputerColor == cfg.FirstColor {
		s.order = [2]Side{Computer, Human}
	}
	s.over = board.IsFull()
	return s
}

// Config returns the match parameters.
func (s *Session) Config() Config {
	return s.cfg
}

// ColorOf returns the color played by side.
func (s *Session) ColorOf(side Side) othello.Color {
	if side == Computer {
		return s.cfg.ComputerColor
	}
	return s.cfg.ComputerColor.Opposite()
}

// Board returns a copy of the current position.
func (s *Session) Board() *othello.Board {
	return s.board.Clone()
}

// Next returns the side whose turn executes next.
func (s *Session) Next() Side {
	return s.order[s.step]
}

// Over reports whether the game has ended.
func (s *Session) Over() bool {
	return s.over
}

// NeedsInput reports whether the game is waiting for the human's move.
func (s *Session) NeedsInput() bool {
	return !s.over && s.Next() == Human && othello.MovesExist(s.board, s.ColorOf(Human))
}

// Advance executes every turn that needs no human input: computer turns and
// human passes. It stops when input is needed or the game is over.
func (s *Session) Advance() []Turn {
	var turns []Turn
	for !s.over && !s.NeedsInput() {
		if s.Next() == Computer {
			turns = append(turns, s.computerTurn())
		} else {
			turns = append(turns, s.humanPass())
		}
	}
	return turns
}

// PlayHuman executes the human's turn at pos. An illegal position, including
// one off the board, forfeits the game.
func (s *Session) PlayHuman(pos othello.Position) (Turn, error) {
	if !s.NeedsInput() {
		return Turn{}, ErrNotHumanTurn
	}
	human := s.ColorOf(Human)
	s.movesFor[Computer] = othello.MovesExist(s.board, s.ColorOf(Computer))
	s.movesFor[Human] = true

	turn := Turn{Side: Human, Color: human, Pos: pos}
	if err := othello.Apply(s.board, othello.Move{Color: human, Pos: pos}); err != nil {
		return s.forfeitTurn(turn), nil
	}
	turn.Played = true
	s.endTurn()
	return turn, nil
}

// RejectInput ends the human's turn with a forfeit, for input that could not
// be read as a position at all.
func (s *Session) RejectInput() (Turn, error) {
	if !s.NeedsInput() {
		return Turn{}, ErrNotHumanTurn
	}
	s.movesFor[Computer] = othello.MovesExist(s.board, s.ColorOf(Computer))
	s.movesFor[Human] = true
	return s.forfeitTurn(Turn{Side: Human, Color: s.ColorOf(Human), Pos: othello.Position{Row: -1, Col: -1}}), nil
}

// Result returns the tile counts and winner. It is meaningful once Over
// reports true.
func (s *Session) Result() Result {
	res := Result{
		Black:   s.board.TileCount(othello.Black),
		White:   s.board.TileCount(othello.White),
		Forfeit: s.forfeit,
	}
	switch {
	case s.forfeit:
		res.Winner = s.ColorOf(Computer)
	case res.Black > res.White:
		res.Winner = othello.Black
	case res.White > res.Black:
		res.Winner = othello.White
	default:
		res.Draw = true
	}
	return res
}

func (s *Session) computerTurn() Turn {
	comp := s.ColorOf(Computer)
	turn := Turn{Side: Computer, Color: comp}

	best, ok := othello.BestFutureMove(s.board, comp, s.cfg.Depth)
	s.movesFor[Human] = othello.MovesExist(s.board, s.ColorOf(Human))
	if !ok {
		s.movesFor[Computer] = false
		turn.Announce = s.announcePass()
		s.endTurn()
		return turn
	}

	s.movesFor[Computer] = true
	// The search only proposes legal moves.
	_ = othello.Apply(s.board, othello.Move{Color: comp, Pos: best})
	turn.Pos = best
	turn.Played = true
	s.endTurn()
	return turn
}

func (s *Session) humanPass() Turn {
	s.movesFor[Computer] = othello.MovesExist(s.board, s.ColorOf(Computer))
	s.movesFor[Human] = false
	turn := Turn{Side: Human, Color: s.ColorOf(Human), Announce: s.announcePass()}
	s.endTurn()
	return turn
}

func (s *Session) forfeitTurn(turn Turn) Turn {
	turn.Forfeit = true
	s.forfeit = true
	s.over = true
	return turn
}

func (s *Session) announcePass() bool {
	return !s.board.IsFull() && (s.movesFor[Human] || s.movesFor[Computer])
}

// endTurn moves to the next turn and closes the round after the second one.
func (s *Session) endTurn() {
	s.step++
	if s.step < len(s.order) {
		return
	}
	s.step = 0
	if s.board.IsFull() || (!s.movesFor[Human] && !s.movesFor[Computer]) {
		s.over = true
		return
	}
	s.movesFor = [2]bool{true, true}
}
