package othello

// DefaultDepth is the number of simulated rounds the computer looks ahead.
const DefaultDepth = 4

// preferred reports whether a candidate at pos with score should replace the
// held best. Higher scores win; equal scores go to the lower row, then the
// lower column.
func preferred(score int, pos Position, bestScore int, best Position) bool {
	if score != bestScore {
		return score > bestScore
	}
	if pos.Row != best.Row {
		return pos.Row < best.Row
	}
	return pos.Col < best.Col
}

// BestGreedyMove returns the empty square where color flips the most tiles.
// ok is false when no square flips anything.
func BestGreedyMove(b *Board, color Color) (best Position, ok bool) {
	bestScore := 0
	for r := 0; r < b.size; r++ {
		for c := 0; c < b.size; c++ {
			if b.At(r, c) != Empty {
				continue
			}
			pos := Position{Row: r, Col: c}
			score := CaptureScore(b, pos, color)
			if score == 0 {
				continue
			}
			if !ok || preferred(score, pos, bestScore, best) {
				best, bestScore, ok = pos, score, true
			}
		}
	}
	return best, ok
}

// BestFutureMove evaluates every legal move for color with FutureScore and
// returns the one leaving color with the most tiles. ok is false when color
// has no legal move.
func BestFutureMove(b *Board, color Color, depth int) (best Position, ok bool) {
	bestScore := 0
	for r := 0; r < b.size; r++ {
		for c := 0; c < b.size; c++ {
			pos := Position{Row: r, Col: c}
			if !IsLegal(b, Move{Color: color, Pos: pos}) {
				continue
			}
			score := FutureScore(b, color, pos, depth)
			if !ok || preferred(score, pos, bestScore, best) {
				best, bestScore, ok = pos, score, true
			}
		}
	}
	return best, ok
}

// FutureScore plays color at pos on a scratch copy of b and simulates the
// following rounds with greedy play. Round 0 is only the opponent's reply;
// each later round is a move by color then a reply. Sides without a capturing
// move skip their ply. The result is color's tile count afterwards. A depth
// below 1 still simulates round 0.
//
// The move at pos must be legal.
func FutureScore(b *Board, color Color, pos Position, depth int) int {
	future := b.Clone()
	if err := Apply(future, Move{Color: color, Pos: pos}); err != nil {
		return future.TileCount(color)
	}
	opp := color.Opposite()
	playGreedy(future, opp)
	for i := 1; i < depth; i++ {
		playGreedy(future, color)
		playGreedy(future, opp)
	}
	return future.TileCount(color)
}

func playGreedy(b *Board, color Color) {
	if pos, ok := BestGreedyMove(b, color); ok {
		// A square with a positive capture score is always legal.
		_ = Apply(b, Move{Color: color, Pos: pos})
	}
}
