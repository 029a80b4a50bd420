package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"termflip/config"
)

// ColorConfigUI provides a color configuration screen with live preview.
type ColorConfigUI struct {
	flex      *tview.Flex
	colorList *tview.List
	preview   *tview.Box
	status    *tview.TextView
	cfg       *config.Config
	onDone    func()

	selectedBoardColor int
	selectedGridColor  int
	editingGrid        bool
}

type namedColor struct {
	code int
	name string
}

// Felt-like tones for the board.
var boardColors = []namedColor{
	{28, "Green"},
	{22, "Dark Green"},
	{29, "Sea Green"},
	{34, "Bright Green"},
	{35, "Jade"},
	{64, "Olive"},
	{65, "Moss"},
	{23, "Teal"},
	{24, "Dark Cyan"},
	{17, "Navy Blue"},
	{94, "Saddle Brown"},
	{180, "Tan"},
	{244, "Dark Gray"},
	{236, "Charcoal"},
}

// Colors for empty squares, chosen to stay visible on the board.
var gridColors = []namedColor{
	{22, "Dark Green"},
	{28, "Green"},
	{65, "Moss"},
	{108, "Pale Green"},
	{94, "Saddle Brown"},
	{136, "Dark Brown"},
	{240, "Gray"},
	{244, "Medium Gray"},
	{250, "Light Gray"},
	{16, "True Black"},
}

// NewColorConfig creates a new color configuration screen.
func NewColorConfig(cfg *config.Config, onDone func()) *ColorConfigUI {
	cc := &ColorConfigUI{
		cfg:                cfg,
		onDone:             onDone,
		selectedBoardColor: cfg.Theme.Colors.BoardColor,
		selectedGridColor:  cfg.Theme.Colors.GridColor,
	}

	cc.colorList = tview.NewList()
	cc.colorList.SetBorder(true)
	cc.colorList.SetBorderColor(MenuColors.Border)
	cc.colorList.ShowSecondaryText(false)
	cc.populateColorList()

	// Moving through the list previews the color.
	cc.colorList.SetChangedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		colors := cc.colors()
		if index < 0 || index >= len(colors) {
			return
		}
		if cc.editingGrid {
			cc.selectedGridColor = colors[index].code
		} else {
			cc.selectedBoardColor = colors[index].code
		}
	})

	// Enter applies and saves it.
	cc.colorList.SetSelectedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		if index < 0 || index >= len(cc.colors()) {
			return
		}
		if cc.editingGrid {
			cc.cfg.Theme.Colors.GridColor = cc.selectedGridColor
		} else {
			cc.cfg.Theme.Colors.BoardColor = cc.selectedBoardColor
			cc.cfg.Theme.Colors.BoardColorAlt = cc.selectedBoardColor
		}
		if err := cc.cfg.Save(); err != nil {
			cc.status.SetText(fmt.Sprintf("[red]%s[-]", err))
			return
		}
		if cc.editingGrid {
			cc.editingGrid = false
			cc.populateColorList()
			return
		}
		onDone()
	})

	cc.preview = tview.NewBox()
	cc.preview.SetBorder(true)
	cc.preview.SetBorderColor(MenuColors.Border)
	cc.preview.SetTitle(" Board Preview ")
	cc.preview.SetDrawFunc(cc.drawPreview)

	cc.status = tview.NewTextView().SetDynamicColors(true)

	right := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(cc.preview, 0, 1, false).
		AddItem(cc.status, 1, 0, false)

	cc.flex = tview.NewFlex().
		AddItem(cc.colorList, 30, 0, true).
		AddItem(right, 0, 1, false)

	return cc
}

func (cc *ColorConfigUI) colors() []namedColor {
	if cc.editingGrid {
		return gridColors
	}
	return boardColors
}

// populateColorList fills the list with the colors for the current mode.
func (cc *ColorConfigUI) populateColorList() {
	cc.colorList.Clear()

	selected := cc.selectedBoardColor
	if cc.editingGrid {
		cc.colorList.SetTitle(" Select Grid Color (Tab: switch to board) ")
		selected = cc.selectedGridColor
	} else {
		cc.colorList.SetTitle(" Select Board Color (Tab: switch to grid) ")
	}

	for i, c := range cc.colors() {
		cc.colorList.AddItem(fmt.Sprintf("[#%06x]████[-] %s (%d)",
			tcell.PaletteColor(c.code).Hex(), c.name, c.code),
			"", rune('a'+i), nil)
	}
	for i, c := range cc.colors() {
		if c.code == selected {
			cc.colorList.SetCurrentItem(i)
			break
		}
	}
}

func (cc *ColorConfigUI) drawPreview(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	const size = 6
	if width < 20 || height < size+4 {
		return x, y, width, height
	}

	boardColor := tcell.PaletteColor(cc.selectedBoardColor)
	symbols := cc.cfg.Theme.Symbols
	emptyStyle := tcell.StyleDefault.Background(boardColor).Foreground(tcell.PaletteColor(cc.selectedGridColor))
	blackStyle := tcell.StyleDefault.Background(boardColor).Foreground(tcell.PaletteColor(cc.cfg.Theme.Colors.BlackColor))
	whiteStyle := tcell.StyleDefault.Background(boardColor).Foreground(tcell.PaletteColor(cc.cfg.Theme.Colors.WhiteColor))
	hintStyle := tcell.StyleDefault.Background(boardColor).Foreground(tcell.PaletteColor(cc.cfg.Theme.Colors.HintColor))

	// A position a few moves into a 6x6 game.
	tiles := map[[2]int]int{
		{2, 1}: 1,
		{2, 2}: 1,
		{3, 2}: 1,
		{2, 3}: 2,
		{3, 3}: 2,
		{4, 3}: 2,
	}
	hints := map[[2]int]bool{
		{1, 3}: true,
		{4, 4}: true,
		{5, 3}: true,
	}

	startX := x + 2
	startY := y + 1
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			r, style := symbols.EmptySquare, emptyStyle
			switch tiles[[2]int{col, row}] {
			case 1:
				r, style = symbols.BlackTile, blackStyle
			case 2:
				r, style = symbols.WhiteTile, whiteStyle
			default:
				if hints[[2]int{col, row}] {
					r, style = symbols.LegalHint, hintStyle
				}
			}
			drawCell(screen, style, r, col, row, startX, startY)
		}
	}

	info := fmt.Sprintf("Board: %d  Grid: %d", cc.selectedBoardColor, cc.selectedGridColor)
	for i, ch := range info {
		if startX+i < x+width-1 {
			screen.SetContent(startX+i, startY+size+1, ch, nil, tcell.StyleDefault)
		}
	}

	return x, y, width, height
}

// Flex returns the flex container for this UI.
func (cc *ColorConfigUI) Flex() *tview.Flex {
	return cc.flex
}

// SetInputCapture sets the input capture for the color list.
func (cc *ColorConfigUI) SetInputCapture(capture func(event *tcell.EventKey) *tcell.EventKey) {
	cc.colorList.SetInputCapture(capture)
}

// ToggleMode switches between board color and grid color editing.
func (cc *ColorConfigUI) ToggleMode() {
	cc.editingGrid = !cc.editingGrid
	cc.populateColorList()
}
