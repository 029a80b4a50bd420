package othello

import (
	"errors"
	"reflect"
	"testing"
)

func TestScan(t *testing.T) {
	b, _ := NewBoard(8)
	tests := []struct {
		name     string
		row, col int
		color    Color
		dir      Direction
		want     CaptureResult
	}{
		{"captures one", 2, 3, Black, Direction{1, 0}, CaptureResult{Legal: true, RunLength: 1}},
		{"empty neighbour", 2, 3, Black, Direction{0, 1}, CaptureResult{}},
		{"adjacent own tile", 2, 4, Black, Direction{1, 0}, CaptureResult{}},
		{"off the board", 0, 0, Black, Direction{-1, -1}, CaptureResult{}},
		{"white diagonal", 2, 2, White, Direction{1, 1}, CaptureResult{}},
	}
	for _, tt := range tests {
		if got := Scan(b, tt.row, tt.col, tt.color, tt.dir); got != tt.want {
			t.Errorf("%s: expected %+v, got %+v", tt.name, tt.want, got)
		}
	}
}

func TestScanRunOffEdge(t *testing.T) {
	b := mustBoard(t,
		"WWWU",
		"UUUU",
		"UUUU",
		"UUUU",
	)
	if res := Scan(b, 0, 3, Black, Direction{0, -1}); res.Legal {
		t.Fatalf("run reaching the edge must not capture, got %+v", res)
	}
}

func TestScanLongRun(t *testing.T) {
	b := mustBoard(t,
		"UWWWWB",
		"UUUUUU",
		"UUUUUU",
		"UUUUUU",
		"UUUUUU",
		"UUUUUU",
	)
	want := CaptureResult{Legal: true, RunLength: 4}
	if got := Scan(b, 0, 0, Black, Direction{0, 1}); got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestOpeningLegalMoves(t *testing.T) {
	b, _ := NewBoard(8)
	want := []Position{{2, 3}, {3, 2}, {4, 5}, {5, 4}}
	if got := LegalMoves(b, Black); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for _, pos := range want {
		if !IsLegal(b, Move{Color: Black, Pos: pos}) {
			t.Fatalf("expected %v to be legal", pos)
		}
	}
	if IsLegal(b, Move{Color: Black, Pos: Position{3, 3}}) {
		t.Fatal("occupied square must be illegal")
	}
	if IsLegal(b, Move{Color: Black, Pos: Position{-1, 0}}) {
		t.Fatal("off-board square must be illegal")
	}
	if IsLegal(b, Move{Color: Black, Pos: Position{0, 0}}) {
		t.Fatal("non-capturing square must be illegal")
	}
}

func TestApplyOpeningMove(t *testing.T) {
	b, _ := NewBoard(8)
	if err := Apply(b, Move{Color: Black, Pos: Position{2, 3}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.At(2, 3) != BlackCell || b.At(3, 3) != BlackCell {
		t.Fatalf("expected placed and flipped tiles to be black:\n%s", b)
	}
	if b.TileCount(Black) != 4 || b.TileCount(White) != 1 {
		t.Fatalf("expected 4 black and 1 white, got %d and %d", b.TileCount(Black), b.TileCount(White))
	}
}

func TestApplyFlipsOnlyCapturedRuns(t *testing.T) {
	b := mustBoard(t,
		"UWBU",
		"WWUU",
		"BUUU",
		"UUUU",
	)
	if err := Apply(b, Move{Color: Black, Pos: Position{0, 0}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := mustBoard(t,
		"BBBU",
		"BWUU",
		"BUUU",
		"UUUU",
	)
	if b.String() != want.String() {
		t.Fatalf("expected\n%s\ngot\n%s", want, b)
	}
}

func TestApplyIllegalLeavesBoard(t *testing.T) {
	b, _ := NewBoard(8)
	before := b.String()
	err := Apply(b, Move{Color: Black, Pos: Position{0, 0}})
	if !errors.Is(err, ErrIllegalMove) {
		t.Fatalf("expected ErrIllegalMove, got %v", err)
	}
	if b.String() != before {
		t.Fatal("illegal move must not change the board")
	}
}

func TestMovesExistNone(t *testing.T) {
	b := mustBoard(t,
		"BBUU",
		"BBUU",
		"UUUU",
		"UUWW",
	)
	if MovesExist(b, Black) || MovesExist(b, White) {
		t.Fatal("separated groups should leave no moves")
	}
	if len(LegalMoves(b, Black)) != 0 {
		t.Fatal("expected no legal moves")
	}
}

// Plays greedy moves for both sides to the end and checks the board
// invariants after every move.
func TestGreedySelfPlayInvariants(t *testing.T) {
	for _, n := range []int{4, 6, 8} {
		b, _ := NewBoard(n)
		color := Black
		passes := 0
		for passes < 2 {
			checkMovesExistConsistent(t, b, Black)
			checkMovesExistConsistent(t, b, White)
			pos, ok := BestGreedyMove(b, color)
			if !ok {
				passes++
				color = color.Opposite()
				continue
			}
			passes = 0
			if err := Apply(b, Move{Color: color, Pos: pos}); err != nil {
				t.Fatalf("n=%d: greedy proposed illegal move %v: %v", n, pos, err)
			}
			if b.At(pos.Row, pos.Col) == Empty {
				t.Fatalf("n=%d: played square %v is still empty", n, pos)
			}
			if total := b.TileCount(Black) + b.TileCount(White) + b.EmptyCount(); total != n*n {
				t.Fatalf("n=%d: tile count %d does not add up to %d", n, total, n*n)
			}
			color = color.Opposite()
		}
	}
}

func checkMovesExistConsistent(t *testing.T, b *Board, color Color) {
	t.Helper()
	found := false
	for r := 0; r < b.Size(); r++ {
		for c := 0; c < b.Size(); c++ {
			if IsLegal(b, Move{Color: color, Pos: Position{r, c}}) {
				found = true
			}
		}
	}
	if got := MovesExist(b, color); got != found {
		t.Fatalf("MovesExist(%v) = %v, IsLegal scan found a move: %v\n%s", color, got, found, b)
	}
}
