package ui

import (
	"fmt"
	"strings"
	"testing"

	"termflip/engine"
	"termflip/types"
)

func TestPanelTextEmpty(t *testing.T) {
	if got := panelText(nil, engine.DefaultConfig(), nil); got != "" {
		t.Fatalf("expected empty text, got %q", got)
	}
}

func TestPanelTextMoves(t *testing.T) {
	state := types.NewBoardState(8)
	state.BlackCount, state.WhiteCount, state.MoveNumber = 4, 1, 1
	moves := []MoveEntry{{X: 3, Y: 2, Color: 1}, {X: -1, Y: -1, Color: 2}}

	got := panelText(state, engine.DefaultConfig(), moves)
	for _, want := range []string{"8x8", "Depth:[-:-:-] 4", "Black:[-:-:-] 4", "B[-] cd", "W[-] pass"} {
		if !strings.Contains(got, want) {
			t.Errorf("expected %q in panel text:\n%s", want, got)
		}
	}
}

func TestPanelTextScrolls(t *testing.T) {
	state := types.NewBoardState(8)
	var moves []MoveEntry
	for i := 0; i < 20; i++ {
		moves = append(moves, MoveEntry{X: i % 8, Y: i / 8, Color: 1 + i%2})
	}
	got := panelText(state, engine.DefaultConfig(), moves)
	if !strings.Contains(got, "8 earlier") {
		t.Fatalf("expected scroll marker, got:\n%s", got)
	}
	if strings.Contains(got, fmt.Sprintf("%3d.", 8)) {
		t.Fatalf("expected move 8 to be scrolled out, got:\n%s", got)
	}
}
