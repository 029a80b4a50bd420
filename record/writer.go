package record

import (
	"fmt"
	"io"
	"strings"
	"time"

	"termflip/othello"
)

// Entry is one turn of a game: a move, or a pass when Pass is set.
type Entry struct {
	Color othello.Color
	Pos   othello.Position
	Pass  bool
}

// String renders the entry in move notation, or "Bpass" style for a pass.
func (e Entry) String() string {
	if e.Pass {
		return string(e.Color.Letter()) + "pass"
	}
	return FormatMove(othello.Move{Color: e.Color, Pos: e.Pos})
}

// GameRecord tracks a game in progress and renders it as SGF (GM[2]).
type GameRecord struct {
	GameID      string
	BoardSize   int
	PlayerBlack string
	PlayerWhite string
	Date        string
	Result      string
	setup       []othello.Move
	moves       []Entry
}

// NewGameRecord starts an empty record. computer is the color played by the
// search at the given depth; the other color is the human.
func NewGameRecord(gameID string, boardSize int, computer othello.Color, depth int) *GameRecord {
	human := "Player"
	engine := fmt.Sprintf("Computer depth %d", depth)

	pb, pw := human, engine
	if computer == othello.Black {
		pb, pw = engine, human
	}

	return &GameRecord{
		GameID:      gameID,
		BoardSize:   boardSize,
		PlayerBlack: pb,
		PlayerWhite: pw,
		Date:        time.Now().Format("2006-01-02"),
		Result:      "?",
	}
}

// sgfCoord converts a position to an SGF point: column letter then row letter.
// (0,0) -> "aa", row 2 col 3 -> "dc".
func sgfCoord(pos othello.Position) string {
	return string([]byte{Letter(pos.Col), Letter(pos.Row)})
}

// AddSetup records an opening move played before the game proper began.
func (r *GameRecord) AddSetup(m othello.Move) {
	r.setup = append(r.setup, m)
}

// AddMove appends a played move.
func (r *GameRecord) AddMove(m othello.Move) {
	r.moves = append(r.moves, Entry{Color: m.Color, Pos: m.Pos})
}

// AddPass appends a pass for color.
func (r *GameRecord) AddPass(color othello.Color) {
	r.moves = append(r.moves, Entry{Color: color, Pass: true})
}

// Moves returns the recorded turns in order.
func (r *GameRecord) Moves() []Entry {
	out := make([]Entry, len(r.moves))
	copy(out, r.moves)
	return out
}

// SetScore records a result decided by tile counts: "B+n", "W+n" or "0".
func (r *GameRecord) SetScore(black, white int) {
	switch {
	case black > white:
		r.Result = fmt.Sprintf("B+%d", black-white)
	case white > black:
		r.Result = fmt.Sprintf("W+%d", white-black)
	default:
		r.Result = "0"
	}
}

// SetForfeit records a win for winner because the opponent made an illegal move.
func (r *GameRecord) SetForfeit(winner othello.Color) {
	r.Result = string(winner.Letter()) + "+F"
}

// String renders the complete record.
func (r *GameRecord) String() string {
	var b strings.Builder

	// Root node
	b.WriteString("(;GM[2]FF[4]CA[UTF-8]")
	b.WriteString("AP[termflip:1.0]")
	if r.GameID != "" {
		b.WriteString(fmt.Sprintf("GN[%s]", r.GameID))
	}
	b.WriteString(fmt.Sprintf("SZ[%d]", r.BoardSize))
	b.WriteString(fmt.Sprintf("PB[%s]", r.PlayerBlack))
	b.WriteString(fmt.Sprintf("PW[%s]", r.PlayerWhite))
	b.WriteString(fmt.Sprintf("DT[%s]", r.Date))
	b.WriteString(fmt.Sprintf("RE[%s]", r.Result))
	b.WriteString("\n")

	for _, m := range r.setup {
		b.WriteString(fmt.Sprintf(";%c[%s]", m.Color.Letter(), sgfCoord(m.Pos)))
	}
	if len(r.setup) > 0 {
		b.WriteString("\n")
	}

	for _, e := range r.moves {
		if e.Pass {
			b.WriteString(fmt.Sprintf(";%c[]", e.Color.Letter()))
			continue
		}
		b.WriteString(fmt.Sprintf(";%c[%s]", e.Color.Letter(), sgfCoord(e.Pos)))
	}

	b.WriteString(")\n")
	return b.String()
}

// WriteTo writes the rendered record to w.
func (r *GameRecord) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, r.String())
	return int64(n), err
}
