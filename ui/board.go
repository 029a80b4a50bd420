// Package ui specifies custom controls for tview to assist in playing Othello in the terminal.
package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"termflip/config"
	"termflip/engine"
	"termflip/types"
)

// style indexes
const (
	styleBoard = iota
	styleBoardAlt
	styleBlack
	styleWhite
	styleGrid
	styleHint
	styleCursorFG
	styleCursorBG
	styleLastPlayed
)

type BoardUI struct {
	Box          *tview.Box
	BoardState   *types.BoardState
	hint         *tview.TextView
	cfg          *config.Config
	finished     bool
	selX         int
	selY         int
	lastTurnPass bool
	passColor    int
	lastError    string
	app          *tview.Application
	eng          engine.GameEngine
	gameConfig   engine.GameConfig
	styles       []tcell.Color
	infoPanel    *GameInfoPanel
	focusMode    bool
	moveHistory  []MoveEntry
}

// ToggleFocusMode toggles focus mode and returns the new state.
func (g *BoardUI) ToggleFocusMode() bool {
	g.focusMode = !g.focusMode
	g.refreshHint()
	return g.focusMode
}

// SetFocusMode sets focus mode to the given state.
func (g *BoardUI) SetFocusMode(enabled bool) {
	g.focusMode = enabled
	g.refreshHint()
}

// IsFocusMode returns true if focus mode is enabled.
func (g *BoardUI) IsFocusMode() bool {
	return g.focusMode
}

func (g *BoardUI) SelectedTile() *types.BoardPos {
	if g.selX == -1 && g.selY == -1 {
		return nil
	}
	return &types.BoardPos{X: g.selX, Y: g.selY}
}

func (g *BoardUI) MoveSelection(h, v int) {
	if g.BoardState.Finished() {
		g.ResetSelection()
		return
	}
	if g.SelectedTile() == nil {
		g.selX = g.BoardState.LastMove.X
		g.selY = g.BoardState.LastMove.Y
		if g.SelectedTile() == nil {
			g.selX = g.BoardState.Width()/2 - 1
			g.selY = g.BoardState.Height()/2 - 1
		}
		return
	}
	if g.selX+h < 0 || g.selX+h >= g.BoardState.Width() {
		return
	}
	if g.selY+v < 0 || g.selY+v >= g.BoardState.Height() {
		return
	}
	g.selX += h
	g.selY += v
}

func (g *BoardUI) ResetSelection() {
	g.selX = -1
	g.selY = -1
}

func NewBoardUI(app *tview.Application, c *config.Config, hint *tview.TextView) *BoardUI {
	board := &BoardUI{
		Box:        tview.NewBox(),
		BoardState: &types.BoardState{},
		hint:       hint,
		app:        app,
		selX:       -1,
		selY:       -1,
	}
	board.SetConfig(c)
	board.Box.SetDrawFunc(func(screen tcell.Screen, x int, y int, width int, height int) (int, int, int, int) {
		state := board.BoardState
		if state == nil || state.Width() == 0 {
			return x, y, 1, 1
		}
		// 2 characters per cell for square appearance
		boardW, boardH := state.Width()*2, state.Height()

		for row := 0; row < state.Height(); row++ {
			for col := 0; col < state.Width(); col++ {
				r, style := board.cellStyle(col, row)
				drawCell(screen, style, r, col, row, x+3, y+1)
			}
		}
		drawCoordinates(screen, x, y, board)
		return x, y, boardW + 3, boardH + 1
	})
	return board
}

// cellStyle picks the rune and style for the square at column x, row y.
func (g *BoardUI) cellStyle(x, y int) (rune, tcell.Style) {
	theme := g.cfg.Theme
	bg := g.styles[styleBoard]
	if theme.Checkered && (x+y)%2 == 1 {
		bg = g.styles[styleBoardAlt]
	}

	var r rune
	var fg tcell.Color
	switch g.BoardState.Board[y][x] {
	case 1:
		r, fg = theme.Symbols.BlackTile, g.styles[styleBlack]
	case 2:
		r, fg = theme.Symbols.WhiteTile, g.styles[styleWhite]
	default:
		r, fg = theme.Symbols.EmptySquare, g.styles[styleGrid]
		if theme.ShowLegalMoves && g.BoardState.IsLegal(x, y) {
			r, fg = theme.Symbols.LegalHint, g.styles[styleHint]
		}
	}

	if x == g.selX && y == g.selY {
		if theme.DrawCursorBackground {
			bg = g.styles[styleCursorBG]
		} else if g.BoardState.Board[y][x] == 0 {
			r, fg = theme.Symbols.Cursor, g.styles[styleCursorFG]
		}
	} else if x == g.BoardState.LastMove.X && y == g.BoardState.LastMove.Y && theme.DrawLastPlayedBackground {
		bg = g.styles[styleLastPlayed]
	}
	return r, tcell.StyleDefault.Background(bg).Foreground(fg)
}

// ConnectEngine connects the board to a game engine.
func (g *BoardUI) ConnectEngine(e engine.GameEngine, cfg engine.GameConfig) error {
	g.finished = false
	g.eng = e
	g.gameConfig = cfg
	g.moveHistory = nil
	g.lastTurnPass = false
	g.lastError = ""
	g.ResetSelection()

	e.OnMove(func(x, y, color int, boardState *types.BoardState) {
		g.lastTurnPass = x == -1 && y == -1
		g.passColor = color
		g.moveHistory = append(g.moveHistory, MoveEntry{X: x, Y: y, Color: color})
		g.BoardState = boardState
		g.refreshHint()
		// Spawn goroutine to avoid deadlock when called from main thread
		go func() {
			g.app.QueueUpdateDraw(func() {})
		}()
	})

	e.OnGameEnd(func(outcome string) {
		g.finished = true
		g.ResetSelection()
		go func() {
			g.app.QueueUpdateDraw(func() {})
		}()
	})

	if g.infoPanel != nil {
		g.infoPanel.SetGameConfig(cfg)
		g.infoPanel.SetMoveHistory(&g.moveHistory)
	}
	if err := e.Connect(); err != nil {
		return err
	}

	g.BoardState = e.GetBoardState()
	g.refreshHint()
	return nil
}

// PlayMove plays a move at the given coordinates. An illegal move loses the
// game; the hint line says so.
func (g *BoardUI) PlayMove(x, y int) {
	if g.finished {
		return
	}
	if g.eng == nil {
		return
	}
	if !g.eng.IsMyTurn() {
		return
	}
	if err := g.eng.PlayMove(x, y); err != nil {
		g.lastError = err.Error()
	}
	g.BoardState = g.eng.GetBoardState()
	g.refreshHint()
}

// Close disconnects the engine.
func (g *BoardUI) Close() {
	if g.eng == nil {
		return
	}
	g.eng.Close()
}

func (g *BoardUI) SetConfig(c *config.Config) {
	g.styles = []tcell.Color{
		tcell.PaletteColor(c.Theme.Colors.BoardColor),        // styleBoard
		tcell.PaletteColor(c.Theme.Colors.BoardColorAlt),     // styleBoardAlt
		tcell.PaletteColor(c.Theme.Colors.BlackColor),        // styleBlack
		tcell.PaletteColor(c.Theme.Colors.WhiteColor),        // styleWhite
		tcell.PaletteColor(c.Theme.Colors.GridColor),         // styleGrid
		tcell.PaletteColor(c.Theme.Colors.HintColor),         // styleHint
		tcell.PaletteColor(c.Theme.Colors.CursorColorFG),     // styleCursorFG
		tcell.PaletteColor(c.Theme.Colors.CursorColorBG),     // styleCursorBG
		tcell.PaletteColor(c.Theme.Colors.LastPlayedColorBG), // styleLastPlayed
	}
	g.cfg = c
}

func (g *BoardUI) refreshHint() {
	if g.infoPanel != nil {
		g.infoPanel.SetBoardState(g.BoardState)
	}

	if g.focusMode {
		g.hint.SetText("  f to toggle")
		return
	}
	g.hint.SetText(g.hintText())
}

func (g *BoardUI) hintText() string {
	var statusLine, turnLine, controlsLine string

	if g.finished || g.BoardState.Finished() {
		statusLine = "───────── Game Complete ─────────\n\n"
		if g.lastError != "" {
			statusLine += fmt.Sprintf("  %s\n", g.lastError)
		}
		turnLine = fmt.Sprintf("  Result: %s\n", g.BoardState.Outcome)
		controlsLine = "\n  q · return to menu"
		return statusLine + turnLine + controlsLine
	}

	if g.lastTurnPass {
		if g.eng != nil && g.passColor == g.eng.GetPlayerColor() {
			statusLine = "  ○ You had no legal move\n\n"
		} else {
			statusLine = "  ○ Opponent passed\n\n"
		}
	}

	if g.eng != nil && g.eng.IsMyTurn() {
		tile := "●"
		color := "Black"
		if g.eng.GetPlayerColor() == 2 {
			tile = "○"
			color = "White"
		}
		turnLine = fmt.Sprintf("  %s Your move (%s)   %d-%d\n", tile, color, g.BoardState.BlackCount, g.BoardState.WhiteCount)
	} else {
		turnLine = "  ◌ Thinking...\n"
	}

	controlsLine = `
  hjkl/↑↓←→ move   ⏎ play
         f focus   q quit`
	return statusLine + turnLine + controlsLine
}

// IsFinished returns true if the game is over.
func (g *BoardUI) IsFinished() bool {
	return g.finished
}

// drawCell draws one square, 2 characters wide.
func drawCell(s tcell.Screen, c tcell.Style, r rune, x, y, l, t int) {
	s.SetContent(l+x*2, t+y, r, nil, c)
	s.SetContent(l+x*2+1, t+y, ' ', nil, c)
}

// drawCoordinates labels columns along the top and rows down the left with
// the letters used to enter moves.
func drawCoordinates(s tcell.Screen, x, y int, ui *BoardUI) {
	w, h := ui.BoardState.Width(), ui.BoardState.Height()

	style := tcell.StyleDefault
	highlight := tcell.StyleDefault.Background(ui.styles[styleCursorBG])
	lpHighlight := tcell.StyleDefault.Background(ui.styles[styleLastPlayed])

	for ix := 0; ix < w; ix++ {
		_style := style
		if ix == ui.selX {
			_style = highlight
		} else if ix == ui.BoardState.LastMove.X {
			_style = lpHighlight
		}
		s.SetContent(x+3+(ix*2), y, rune('a'+ix), nil, _style)
		s.SetContent(x+3+(ix*2)+1, y, ' ', nil, _style)
	}

	for iy := 0; iy < h; iy++ {
		_style := style
		if iy == ui.selY {
			_style = highlight
		} else if iy == ui.BoardState.LastMove.Y {
			_style = lpHighlight
		}
		s.SetContent(x+1, y+1+iy, rune('a'+iy), nil, _style)
	}
	s.Show()
}
