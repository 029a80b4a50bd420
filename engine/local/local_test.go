package local

import (
	"errors"
	"strings"
	"testing"

	"termflip/engine"
	"termflip/game"
	"termflip/othello"
	"termflip/types"
)

type moveEvent struct {
	x, y, color int
}

func connect(t *testing.T, cfg engine.GameConfig) (*LocalEngine, *[]moveEvent, *[]string) {
	t.Helper()
	var moves []moveEvent
	var outcomes []string
	e := NewLocalEngine(cfg)
	e.OnMove(func(x, y, color int, _ *types.BoardState) {
		moves = append(moves, moveEvent{x, y, color})
	})
	e.OnGameEnd(func(outcome string) {
		outcomes = append(outcomes, outcome)
	})
	if err := e.Connect(); err != nil {
		t.Fatalf("Connect: %v", err)
	}
	return e, &moves, &outcomes
}

func TestConnectHumanBlack(t *testing.T) {
	e, moves, _ := connect(t, engine.DefaultConfig())
	if !e.IsMyTurn() {
		t.Fatal("black human should move first")
	}
	if len(*moves) != 0 {
		t.Fatalf("expected no moves yet, got %v", *moves)
	}
	state := e.GetBoardState()
	if state.Width() != 8 || state.BlackCount != 2 || state.WhiteCount != 2 {
		t.Fatalf("unexpected initial state %+v", state)
	}
	if len(state.LegalMoves) != 4 || !state.IsLegal(3, 2) {
		t.Fatalf("expected 4 legal moves including (3,2), got %v", state.LegalMoves)
	}
	if state.GameID != e.GameID() || state.GameID == "" {
		t.Fatalf("expected game id %q, got %q", e.GameID(), state.GameID)
	}
}

func TestPlayMoveRunsReply(t *testing.T) {
	e, moves, _ := connect(t, engine.DefaultConfig())
	if err := e.PlayMove(3, 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(*moves) != 2 {
		t.Fatalf("expected human and engine moves, got %v", *moves)
	}
	if (*moves)[0] != (moveEvent{3, 2, 1}) {
		t.Fatalf("unexpected first move %v", (*moves)[0])
	}
	if (*moves)[1].color != 2 {
		t.Fatalf("expected white reply, got %v", (*moves)[1])
	}
	if !e.IsMyTurn() {
		t.Fatal("expected human turn after the reply")
	}
	state := e.GetBoardState()
	if state.MoveNumber != 2 || state.LastMove.X != (*moves)[1].x || state.LastMove.Y != (*moves)[1].y {
		t.Fatalf("unexpected state %+v", state)
	}
	if got := len(e.Record().Moves()); got != 2 {
		t.Fatalf("expected 2 recorded moves, got %d", got)
	}
}

func TestEngineMovesFirstAsBlack(t *testing.T) {
	cfg := engine.DefaultConfig()
	cfg.PlayerColor = 2
	e, moves, _ := connect(t, cfg)
	if len(*moves) != 1 || (*moves)[0].color != 1 {
		t.Fatalf("expected one black engine move, got %v", *moves)
	}
	if !e.IsMyTurn() || e.GetPlayerColor() != 2 {
		t.Fatal("expected white human to move")
	}
}

func TestIllegalMoveLoses(t *testing.T) {
	e, _, outcomes := connect(t, engine.DefaultConfig())
	err := e.PlayMove(0, 0)
	if !errors.Is(err, othello.ErrIllegalMove) {
		t.Fatalf("expected ErrIllegalMove, got %v", err)
	}
	if len(*outcomes) != 1 || (*outcomes)[0] != "White wins by forfeit" {
		t.Fatalf("unexpected outcomes %v", *outcomes)
	}
	if !e.GetBoardState().Finished() {
		t.Fatal("expected finished state")
	}
	if e.Record().Result != "W+F" {
		t.Fatalf("expected W+F, got %q", e.Record().Result)
	}
	if err := e.PlayMove(3, 2); !errors.Is(err, engine.ErrGameOver) {
		t.Fatalf("expected ErrGameOver, got %v", err)
	}
}

func TestOpeningSetsSideToMove(t *testing.T) {
	cfg := engine.DefaultConfig()
	cfg.PlayerColor = 2
	cfg.Opening = "Bcd"
	e, moves, _ := connect(t, cfg)
	if len(*moves) != 0 {
		t.Fatalf("white human should move after the opening, got engine moves %v", *moves)
	}
	state := e.GetBoardState()
	if state.BlackCount != 4 || state.WhiteCount != 1 {
		t.Fatalf("expected 4/1 after opening, got %d/%d", state.BlackCount, state.WhiteCount)
	}
	if !strings.Contains(e.Record().String(), ";B[dc]") {
		t.Fatalf("expected opening in record, got %q", e.Record().String())
	}
}

func TestConnectErrors(t *testing.T) {
	for _, cfg := range []engine.GameConfig{
		{BoardSize: 7, PlayerColor: 1, Depth: 1},
		{BoardSize: 28, PlayerColor: 1, Depth: 1},
		{BoardSize: 8, PlayerColor: 1, Depth: 1, Opening: "Baa"},
		{BoardSize: 8, PlayerColor: 1, Depth: 1, Opening: "Bzz9"},
	} {
		if err := NewLocalEngine(cfg).Connect(); err == nil {
			t.Errorf("expected error for %+v", cfg)
		}
	}
}

func TestFormatOutcome(t *testing.T) {
	tests := []struct {
		res  game.Result
		want string
	}{
		{game.Result{Black: 40, White: 24, Winner: othello.Black}, "Black wins 40-24"},
		{game.Result{Black: 20, White: 44, Winner: othello.White}, "White wins 44-20"},
		{game.Result{Black: 32, White: 32, Draw: true}, "Draw 32-32"},
		{game.Result{Black: 2, White: 2, Forfeit: true, Winner: othello.Black}, "Black wins by forfeit"},
	}
	for _, tt := range tests {
		if got := FormatOutcome(tt.res); got != tt.want {
			t.Errorf("FormatOutcome(%+v) = %q, want %q", tt.res, got, tt.want)
		}
	}
}
