// Package local provides an in-process engine that plays Othello with the
// lookahead search.
package local

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"termflip/engine"
	"termflip/game"
	"termflip/othello"
	"termflip/record"
	"termflip/types"
)

var _ engine.GameEngine = (*LocalEngine)(nil)

var debugLog *log.Logger

func init() {
	var w io.Writer = io.Discard
	if f, err := os.Create(filepath.Join(os.TempDir(), "termflip-debug.log")); err == nil {
		w = f
	}
	debugLog = log.New(w, "", log.Ltime|log.Lmicroseconds)
}

// LocalEngine implements the GameEngine interface on top of a game.Session.
// Every call runs to completion before returning; the engine's replies are
// computed inside PlayMove.
type LocalEngine struct {
	config  engine.GameConfig
	gameID  string
	session *game.Session
	rec     *record.GameRecord

	moveNumber int
	lastMove   othello.Position
	outcome    string

	moveCallback func(x, y, color int, boardState *types.BoardState)
	endCallback  func(outcome string)
}

// NewLocalEngine creates a new engine with the given configuration.
func NewLocalEngine(cfg engine.GameConfig) *LocalEngine {
	return &LocalEngine{
		config:   cfg,
		gameID:   uuid.NewString(),
		lastMove: othello.Position{Row: -1, Col: -1},
	}
}

// GameID returns the identifier used in logs and the game record.
func (e *LocalEngine) GameID() string {
	return e.gameID
}

// Connect sets up the board, plays the opening and, when the engine has
// Black, its first move.
func (e *LocalEngine) Connect() error {
	debugLog.Printf("[%s] Connect: size=%d player=%d depth=%d", e.gameID, e.config.BoardSize, e.config.PlayerColor, e.config.Depth)

	board, err := othello.NewBoard(e.config.BoardSize)
	if err != nil {
		return fmt.Errorf("failed to create board: %w", err)
	}
	if e.config.BoardSize > record.MaxDimension {
		return fmt.Errorf("board size %d exceeds the coordinate alphabet (max %d)", e.config.BoardSize, record.MaxDimension)
	}

	computer := engine.ColorFromValue(e.config.PlayerColor).Opposite()
	e.rec = record.NewGameRecord(e.gameID, e.config.BoardSize, computer, e.config.Depth)

	moves, first, err := record.PlayOpening(board, e.config.Opening)
	if err != nil {
		return fmt.Errorf("failed to play opening: %w", err)
	}
	for _, m := range moves {
		e.rec.AddSetup(m)
	}
	if len(moves) > 0 {
		e.lastMove = moves[len(moves)-1].Pos
		debugLog.Printf("[%s] Connect: opening of %d moves applied", e.gameID, len(moves))
	}

	e.session = game.NewFromBoard(board, game.Config{
		ComputerColor: computer,
		Depth:         e.config.Depth,
		FirstColor:    first,
	})
	e.advance()
	return nil
}

// GetBoardState returns a snapshot of the current position.
func (e *LocalEngine) GetBoardState() *types.BoardState {
	if e.session == nil {
		return types.NewBoardState(e.config.BoardSize)
	}
	return e.snapshot()
}

// PlayMove plays the human's move at column x, row y and then the engine's
// replies. An illegal move loses the game.
func (e *LocalEngine) PlayMove(x, y int) error {
	debugLog.Printf("[%s] PlayMove: x=%d y=%d", e.gameID, x, y)
	if e.session == nil || e.session.Over() {
		return engine.ErrGameOver
	}
	if !e.session.NeedsInput() {
		return fmt.Errorf("not your turn")
	}

	pos := othello.Position{Row: y, Col: x}
	turn, err := e.session.PlayHuman(pos)
	if err != nil {
		return err
	}
	if turn.Forfeit {
		debugLog.Printf("[%s] PlayMove: illegal move %s, human forfeits", e.gameID, record.Token(pos))
		e.finish()
		return fmt.Errorf("move %s forfeits the game: %w", record.Token(pos), othello.ErrIllegalMove)
	}
	e.recordTurn(turn)
	e.advance()
	return nil
}

// IsMyTurn returns true if it's the human player's turn.
func (e *LocalEngine) IsMyTurn() bool {
	return e.session != nil && e.session.NeedsInput()
}

// GetPlayerColor returns the human player's color (1=black, 2=white).
func (e *LocalEngine) GetPlayerColor() int {
	return e.config.PlayerColor
}

// OnMove registers a callback for when a move is played.
func (e *LocalEngine) OnMove(callback func(x, y, color int, boardState *types.BoardState)) {
	e.moveCallback = callback
}

// OnGameEnd registers a callback for when the game ends.
func (e *LocalEngine) OnGameEnd(callback func(outcome string)) {
	e.endCallback = callback
}

// Record returns the game record so far.
func (e *LocalEngine) Record() *record.GameRecord {
	return e.rec
}

// Close releases the engine. The local engine holds no external resources.
func (e *LocalEngine) Close() {
	debugLog.Printf("[%s] Close", e.gameID)
}

// advance runs the turns that need no human input and ends the game when
// the session is over.
func (e *LocalEngine) advance() {
	for _, turn := range e.session.Advance() {
		e.recordTurn(turn)
	}
	if e.session.Over() {
		e.finish()
	}
}

func (e *LocalEngine) recordTurn(turn game.Turn) {
	e.moveNumber++
	x, y := -1, -1
	if turn.Played {
		e.rec.AddMove(othello.Move{Color: turn.Color, Pos: turn.Pos})
		e.lastMove = turn.Pos
		x, y = turn.Pos.Col, turn.Pos.Row
		debugLog.Printf("[%s] %s plays %s", e.gameID, turn.Color, record.Token(turn.Pos))
	} else {
		e.rec.AddPass(turn.Color)
		debugLog.Printf("[%s] %s passes", e.gameID, turn.Color)
	}

	if e.moveCallback != nil {
		e.moveCallback(x, y, engine.ColorValue(turn.Color), e.snapshot())
	}
}

// finish records the result and notifies the end callback.
func (e *LocalEngine) finish() {
	res := e.session.Result()
	if res.Forfeit {
		e.rec.SetForfeit(res.Winner)
	} else {
		e.rec.SetScore(res.Black, res.White)
	}
	e.outcome = FormatOutcome(res)
	debugLog.Printf("[%s] game over: %s (%s)", e.gameID, e.outcome, e.rec.Result)
	debugLog.Printf("[%s] record: %s", e.gameID, e.rec)

	if e.endCallback != nil {
		e.endCallback(e.outcome)
	}
}

// snapshot builds a BoardState from the live session.
func (e *LocalEngine) snapshot() *types.BoardState {
	board := e.session.Board()
	state := types.NewBoardState(board.Size())
	state.GameID = e.gameID
	state.MoveNumber = e.moveNumber
	for y, row := range board.Rows() {
		for x, cell := range row {
			state.Board[y][x] = cellValue(cell)
		}
	}
	state.BlackCount = board.TileCount(othello.Black)
	state.WhiteCount = board.TileCount(othello.White)
	state.LastMove.X = e.lastMove.Col
	state.LastMove.Y = e.lastMove.Row

	human := e.session.ColorOf(game.Human)
	if e.session.Over() {
		state.Phase = "finished"
		state.Outcome = e.outcome
	} else if e.session.NeedsInput() {
		state.PlayerToMove = engine.ColorValue(human)
		for _, p := range othello.LegalMoves(board, human) {
			state.LegalMoves = append(state.LegalMoves, types.BoardPos{X: p.Col, Y: p.Row})
		}
	} else {
		state.PlayerToMove = engine.ColorValue(human.Opposite())
	}
	return state
}

func cellValue(c othello.Cell) int {
	switch c {
	case othello.BlackCell:
		return 1
	case othello.WhiteCell:
		return 2
	}
	return 0
}

// FormatOutcome describes a finished game, e.g. "Black wins 40-24".
func FormatOutcome(res game.Result) string {
	switch {
	case res.Forfeit:
		return fmt.Sprintf("%s wins by forfeit", res.Winner)
	case res.Draw:
		return fmt.Sprintf("Draw %d-%d", res.Black, res.White)
	case res.Winner == othello.Black:
		return fmt.Sprintf("Black wins %d-%d", res.Black, res.White)
	default:
		return fmt.Sprintf("White wins %d-%d", res.White, res.Black)
	}
}
