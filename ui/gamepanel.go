package ui

import (
	"fmt"

	"github.com/rivo/tview"

	"termflip/engine"
	"termflip/othello"
	"termflip/record"
	"termflip/types"
)

// MoveEntry is one turn shown in the move list. X and Y are -1 for a pass.
type MoveEntry struct {
	X     int
	Y     int
	Color int
}

// GameInfoPanel displays game information and move history alongside the board.
type GameInfoPanel struct {
	box         *tview.TextView
	boardState  *types.BoardState
	gameConfig  engine.GameConfig
	moveHistory *[]MoveEntry
}

// NewGameInfoPanel creates a new game info panel.
func NewGameInfoPanel() *GameInfoPanel {
	panel := &GameInfoPanel{
		box: tview.NewTextView(),
	}

	panel.box.SetDynamicColors(true)
	panel.box.SetBorder(false)
	panel.box.SetTextAlign(tview.AlignLeft)

	return panel
}

// Box returns the underlying tview component.
func (p *GameInfoPanel) Box() *tview.TextView {
	return p.box
}

// SetBoardState updates the panel with current board state.
func (p *GameInfoPanel) SetBoardState(state *types.BoardState) {
	p.boardState = state
	p.refresh()
}

// SetGameConfig sets the parameters shown in the header.
func (p *GameInfoPanel) SetGameConfig(cfg engine.GameConfig) {
	p.gameConfig = cfg
}

// SetMoveHistory sets a pointer to the move history slice.
func (p *GameInfoPanel) SetMoveHistory(history *[]MoveEntry) {
	p.moveHistory = history
}

func (p *GameInfoPanel) refresh() {
	var moves []MoveEntry
	if p.moveHistory != nil {
		moves = *p.moveHistory
	}
	p.box.SetText(panelText(p.boardState, p.gameConfig, moves))
}

// panelText renders the game info and the tail of the move list.
func panelText(state *types.BoardState, cfg engine.GameConfig, moves []MoveEntry) string {
	if state == nil || state.Width() == 0 {
		return ""
	}

	var text string

	text += "[white::b]Game Info[-:-:-]\n"
	text += "[dimgray]──────────────────────[-:-:-]\n"
	text += fmt.Sprintf("[white]Board:[-:-:-] %dx%d\n", state.Width(), state.Height())
	text += fmt.Sprintf("[white]Depth:[-:-:-] %d\n", cfg.Depth)
	text += fmt.Sprintf("[white]Black:[-:-:-] %d\n", state.BlackCount)
	text += fmt.Sprintf("[white]White:[-:-:-] %d\n", state.WhiteCount)
	text += fmt.Sprintf("[white]Move:[-:-:-] %d\n", state.MoveNumber)

	if len(moves) == 0 {
		return text
	}

	text += "\n[white::b]Moves[-:-:-]\n"
	text += "[dimgray]──────────────────────[-:-:-]\n"

	maxVisible := 12
	start := 0
	if len(moves) > maxVisible {
		start = len(moves) - maxVisible
	}

	for i := start; i < len(moves); i++ {
		m := moves[i]

		colorStr := "[white]B[-]"
		if m.Color == 2 {
			colorStr = "[dimgray]W[-]"
		}

		coord := "pass"
		if m.X >= 0 && m.Y >= 0 {
			coord = record.Token(othello.Position{Row: m.Y, Col: m.X})
		}

		marker := " "
		if i == len(moves)-1 {
			marker = "[white]>[-]"
		}

		text += fmt.Sprintf("%s[dimgray]%3d.[-] %s %s\n", marker, i+1, colorStr, coord)
	}

	if start > 0 {
		text += fmt.Sprintf("[dimgray]  ··· %d earlier[-]\n", start)
	}
	return text
}

// CreateGameLayout creates the main game layout with board and side panel.
func CreateGameLayout(board *BoardUI, hint *tview.TextView) *tview.Flex {
	mainFlex := tview.NewFlex()
	RebuildNormalLayout(mainFlex, board, hint)
	return mainFlex
}

// CreateCenteredForm creates a centered form container for the setup screen.
func CreateCenteredForm(form *tview.Flex, maxWidth int) *tview.Flex {
	centered := tview.NewFlex().SetDirection(tview.FlexColumn)
	centered.AddItem(nil, 0, 1, false)
	centered.AddItem(form, maxWidth, 0, true)
	centered.AddItem(nil, 0, 1, false)

	return centered
}

// RebuildNormalLayout restores the normal game layout with board, info panel, and hint.
func RebuildNormalLayout(gameFrame *tview.Flex, board *BoardUI, hint *tview.TextView) {
	gameFrame.Clear()

	infoPanel := NewGameInfoPanel()
	board.infoPanel = infoPanel
	infoPanel.SetGameConfig(board.gameConfig)
	infoPanel.SetMoveHistory(&board.moveHistory)
	if board.BoardState != nil {
		infoPanel.SetBoardState(board.BoardState)
	}

	// board | info panel
	boardRow := tview.NewFlex().SetDirection(tview.FlexColumn)
	boardRow.AddItem(board.Box, 0, 1, true)
	boardRow.AddItem(infoPanel.Box(), 26, 0, false)

	gameFrame.SetDirection(tview.FlexRow)
	gameFrame.AddItem(boardRow, 0, 1, true)
	gameFrame.AddItem(hint, 5, 0, false)
}

// BuildFocusLayout builds the focus mode layout with just the centered board.
func BuildFocusLayout(gameFrame *tview.Flex, board *BoardUI) {
	gameFrame.Clear()

	boardWidth := 19 // 8x8
	boardHeight := 9
	if board.BoardState != nil && board.BoardState.Width() > 0 {
		boardWidth = board.BoardState.Width()*2 + 3
		boardHeight = board.BoardState.Height() + 1
	}

	gameFrame.SetDirection(tview.FlexRow)
	gameFrame.AddItem(nil, 0, 1, false)

	centerRow := tview.NewFlex().SetDirection(tview.FlexColumn)
	centerRow.AddItem(nil, 0, 1, false)
	centerRow.AddItem(board.Box, boardWidth, 0, true)
	centerRow.AddItem(nil, 0, 1, false)

	gameFrame.AddItem(centerRow, boardHeight, 0, true)
	gameFrame.AddItem(nil, 0, 1, false)
}
