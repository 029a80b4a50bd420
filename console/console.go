// Package console plays a game over plain text streams: the board is printed
// with letter labels and moves are read as RowCol tokens.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"termflip/game"
	"termflip/othello"
	"termflip/record"
)

// Options preset parts of the dialogue. Zero values are asked for.
type Options struct {
	Dimension     int
	ComputerColor string
	Depth         int
	Opening       string
	// Record prints the game record in SGF after the result.
	Record bool
	// GameID names the game in the record.
	GameID string
}

// Run plays one game reading from in and writing to out.
func Run(in io.Reader, out io.Writer, opts Options) error {
	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)
	c := &console{in: scanner, out: out}
	return c.run(opts)
}

type console struct {
	in  *bufio.Scanner
	out io.Writer
}

func (c *console) run(opts Options) error {
	n := opts.Dimension
	if n == 0 {
		fmt.Fprint(c.out, "Enter the board dimension: ")
		word, err := c.word()
		if err != nil {
			return fmt.Errorf("read board dimension: %w", err)
		}
		if n, err = strconv.Atoi(word); err != nil {
			return fmt.Errorf("read board dimension: %w", err)
		}
	}
	if n > record.MaxDimension {
		return fmt.Errorf("board dimension %d exceeds the coordinate alphabet (max %d)", n, record.MaxDimension)
	}

	colorText := opts.ComputerColor
	if colorText == "" {
		fmt.Fprint(c.out, "Computer plays (B/W) : ")
		word, err := c.word()
		if err != nil {
			return fmt.Errorf("read computer color: %w", err)
		}
		colorText = word[:1]
	}
	computer, err := othello.ParseColor(colorText)
	if err != nil {
		return err
	}

	board, err := othello.NewBoard(n)
	if err != nil {
		return err
	}
	rec := record.NewGameRecord(opts.GameID, n, computer, opts.Depth)
	opening, first, err := record.PlayOpening(board, opts.Opening)
	if err != nil {
		return err
	}
	for _, m := range opening {
		rec.AddSetup(m)
	}

	s := game.NewFromBoard(board, game.Config{ComputerColor: computer, Depth: opts.Depth, FirstColor: first})
	c.printBoard(s.Board())

	for !s.Over() {
		for _, turn := range s.Advance() {
			c.report(s, turn, rec)
		}
		if !s.NeedsInput() {
			continue
		}

		human := s.ColorOf(game.Human)
		fmt.Fprintf(c.out, "Enter move for colour %c (RowCol): ", human.Letter())
		word, err := c.word()
		if err != nil {
			return fmt.Errorf("read move: %w", err)
		}
		var turn game.Turn
		if pos, perr := record.ParseToken(word); perr != nil {
			turn, err = s.RejectInput()
		} else {
			turn, err = s.PlayHuman(pos)
		}
		if err != nil {
			return err
		}
		if turn.Forfeit {
			fmt.Fprintln(c.out, "Invalid move.")
			continue
		}
		rec.AddMove(othello.Move{Color: turn.Color, Pos: turn.Pos})
		c.printBoard(s.Board())
	}

	res := s.Result()
	switch {
	case res.Forfeit:
		rec.SetForfeit(res.Winner)
		fmt.Fprintf(c.out, "%c player wins.\n", res.Winner.Letter())
	case res.Draw:
		rec.SetScore(res.Black, res.White)
		fmt.Fprintln(c.out, "Draw!")
	default:
		rec.SetScore(res.Black, res.White)
		fmt.Fprintf(c.out, "%c player wins.\n", res.Winner.Letter())
	}

	if opts.Record {
		if _, err := rec.WriteTo(c.out); err != nil {
			return fmt.Errorf("write record: %w", err)
		}
	}
	return nil
}

// report prints a turn taken without input.
func (c *console) report(s *game.Session, turn game.Turn, rec *record.GameRecord) {
	if !turn.Played {
		rec.AddPass(turn.Color)
		if turn.Announce {
			fmt.Fprintf(c.out, "%c player has no valid move.\n", turn.Color.Letter())
		}
		return
	}
	rec.AddMove(othello.Move{Color: turn.Color, Pos: turn.Pos})
	fmt.Fprintf(c.out, "Computer places %c at %s.\n", turn.Color.Letter(), record.Token(turn.Pos))
	c.printBoard(s.Board())
}

func (c *console) word() (string, error) {
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", err
		}
		return "", io.ErrUnexpectedEOF
	}
	return c.in.Text(), nil
}

// printBoard writes the board with letter labels along the top and left.
func (c *console) printBoard(b *othello.Board) {
	fmt.Fprint(c.out, FormatBoard(b))
}

// FormatBoard renders b as rows of B, W and U under a column header.
func FormatBoard(b *othello.Board) string {
	var sb strings.Builder
	sb.WriteString("  ")
	for col := 0; col < b.Size(); col++ {
		sb.WriteByte(record.Letter(col))
	}
	sb.WriteByte('\n')
	for row := 0; row < b.Size(); row++ {
		sb.WriteByte(record.Letter(row))
		sb.WriteByte(' ')
		for col := 0; col < b.Size(); col++ {
			sb.WriteString(b.At(row, col).String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
