package othello

import (
	"errors"
	"testing"
)

func mustBoard(t *testing.T, rows ...string) *Board {
	t.Helper()
	b, err := ParseBoard(rows)
	if err != nil {
		t.Fatalf("ParseBoard: %v", err)
	}
	return b
}

func TestNewBoardLayout(t *testing.T) {
	b, err := NewBoard(8)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Size() != 8 {
		t.Fatalf("expected size 8, got %d", b.Size())
	}
	want := map[Position]Cell{
		{3, 3}: WhiteCell,
		{3, 4}: BlackCell,
		{4, 3}: BlackCell,
		{4, 4}: WhiteCell,
	}
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			exp, ok := want[Position{r, c}]
			if !ok {
				exp = Empty
			}
			if got := b.At(r, c); got != exp {
				t.Fatalf("cell (%d,%d): expected %v, got %v", r, c, exp, got)
			}
		}
	}
	if b.TileCount(Black) != 2 || b.TileCount(White) != 2 {
		t.Fatalf("expected 2/2 tiles, got %d/%d", b.TileCount(Black), b.TileCount(White))
	}
	if b.EmptyCount() != 60 {
		t.Fatalf("expected 60 empty cells, got %d", b.EmptyCount())
	}
	if b.IsFull() {
		t.Fatal("new board should not be full")
	}
}

func TestNewBoardRejectsBadDimensions(t *testing.T) {
	for _, n := range []int{-2, 0, 2, 3, 5, 9} {
		_, err := NewBoard(n)
		var dimErr *DimensionError
		if !errors.As(err, &dimErr) {
			t.Fatalf("NewBoard(%d): expected DimensionError, got %v", n, err)
		}
	}
	if _, err := NewBoard(30); err != nil {
		t.Fatalf("large even boards should be accepted, got %v", err)
	}
}

func TestParseBoard(t *testing.T) {
	b := mustBoard(t,
		"BW",
		"U.",
	)
	if b.At(0, 0) != BlackCell || b.At(0, 1) != WhiteCell || b.At(1, 0) != Empty || b.At(1, 1) != Empty {
		t.Fatalf("unexpected board:\n%s", b)
	}
	if _, err := ParseBoard([]string{"BW", "U"}); !errors.Is(err, ErrRaggedBoard) {
		t.Fatalf("expected ErrRaggedBoard, got %v", err)
	}
	if _, err := ParseBoard([]string{"BX", "UU"}); err == nil {
		t.Fatal("expected error for unknown cell rune")
	}
}

func TestColorOpposite(t *testing.T) {
	if Black.Opposite() != White || White.Opposite() != Black {
		t.Fatal("opposite should swap colors")
	}
	if Black.Letter() != 'B' || White.Letter() != 'W' {
		t.Fatal("unexpected color letters")
	}
	for _, s := range []string{"B", "b", "black", " Black "} {
		if c, err := ParseColor(s); err != nil || c != Black {
			t.Fatalf("ParseColor(%q) = %v, %v", s, c, err)
		}
	}
	if _, err := ParseColor("red"); err == nil {
		t.Fatal("expected error for unknown color")
	}
}

func TestCloneDoesNotAlias(t *testing.T) {
	b, _ := NewBoard(4)
	clone := b.Clone()
	if err := Apply(clone, Move{Color: Black, Pos: Position{0, 1}}); err != nil {
		t.Fatalf("apply on clone: %v", err)
	}
	if b.At(0, 1) != Empty || b.At(1, 1) != WhiteCell {
		t.Fatalf("mutating the clone changed the original:\n%s", b)
	}
}

func TestIsFull(t *testing.T) {
	b := mustBoard(t,
		"BWBW",
		"WBWB",
		"BBBB",
		"WWWW",
	)
	if !b.IsFull() {
		t.Fatal("expected full board")
	}
	if b.EmptyCount() != 0 {
		t.Fatalf("expected 0 empty, got %d", b.EmptyCount())
	}
}
