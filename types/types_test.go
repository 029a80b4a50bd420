package types

import (
	"encoding/json"
	"testing"
)

func TestBoardStateJSON(t *testing.T) {
	state := NewBoardState(4)
	state.Board[1][2] = 1
	state.LegalMoves = []BoardPos{{X: 0, Y: 1}, {X: 3, Y: 2}}

	data, err := json.Marshal(state)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var got BoardState
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got.Width() != 4 || got.Board[1][2] != 1 || got.LastMove.X != -1 {
		t.Fatalf("unexpected state %+v", got)
	}
	if !got.IsLegal(3, 2) || got.IsLegal(2, 3) {
		t.Fatalf("unexpected legal moves %v", got.LegalMoves)
	}
}

func TestBoardPosRejectsShortArray(t *testing.T) {
	var p BoardPos
	if err := json.Unmarshal([]byte("[1]"), &p); err == nil {
		t.Fatal("expected error for a single coordinate")
	}
}
