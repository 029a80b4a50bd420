package ui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"termflip/engine"
)

// Board sizes offered by the setup form: every even size the move
// notation can address.
var boardSizes = func() []int {
	var sizes []int
	for n := 4; n <= 26; n += 2 {
		sizes = append(sizes, n)
	}
	return sizes
}()

const maxSetupDepth = 8

// GameSetupUI provides a form for configuring a new game.
type GameSetupUI struct {
	form     *tview.Form
	flex     *tview.Flex
	onStart  func(engine.GameConfig)
	onCancel func()
	onColors func()

	config engine.GameConfig
}

// NewGameSetup creates a new game setup form, preset to defaults.
func NewGameSetup(defaults engine.GameConfig, onStart func(engine.GameConfig), onCancel func(), onColors func()) *GameSetupUI {
	setup := &GameSetupUI{
		onStart:  onStart,
		onCancel: onCancel,
		onColors: onColors,
		config:   defaults,
	}

	sizeOptions := make([]string, len(boardSizes))
	sizeIndex := 0
	for i, n := range boardSizes {
		sizeOptions[i] = fmt.Sprintf("%dx%d", n, n)
		if n == defaults.BoardSize {
			sizeIndex = i
		}
	}
	colors := []string{"Black (play first)", "White (play second)"}
	depths := make([]string, maxSetupDepth+1)
	for d := range depths {
		depths[d] = fmt.Sprintf("%d", d)
	}
	depths[0] = "0 (greedy reply only)"
	depthIndex := defaults.Depth
	if depthIndex > maxSetupDepth {
		depthIndex = maxSetupDepth
	}

	form := tview.NewForm()

	form.AddDropDown("Board Size", sizeOptions, sizeIndex, func(option string, index int) {
		setup.config.BoardSize = boardSizes[index]
	})

	form.AddDropDown("Your Color", colors, defaults.PlayerColor-1, func(option string, index int) {
		setup.config.PlayerColor = index + 1 // 1=black, 2=white
	})

	form.AddDropDown("Lookahead", depths, depthIndex, func(option string, index int) {
		setup.config.Depth = index
	})

	form.AddInputField("Opening", defaults.Opening, 24, nil, func(text string) {
		setup.config.Opening = strings.TrimSpace(text)
	})

	form.AddButton("Start Game", func() {
		onStart(setup.config)
	})

	form.AddButton("Board Color", func() {
		if onColors != nil {
			onColors()
		}
	})

	form.AddButton("Quit", func() {
		onCancel()
	})

	form.SetBorder(true)
	form.SetTitle(" New Game ")
	form.SetTitleAlign(tview.AlignCenter)
	form.SetBorderColor(MenuColors.Border)
	form.SetTitleColor(MenuColors.Title)
	form.SetLabelColor(MenuColors.Label)
	form.SetButtonBackgroundColor(MenuColors.ButtonBG)
	form.SetButtonTextColor(MenuColors.ButtonText)

	helpText := tview.NewTextView().
		SetText("Tab/Shift+Tab: navigate fields  |  Arrow keys: change dropdown  |  Enter: confirm").
		SetTextAlign(tview.AlignCenter)
	helpText.SetTextColor(MenuColors.Hint)

	flex := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(form, 0, 1, true).
		AddItem(helpText, 1, 0, false)

	setup.form = form
	setup.flex = flex
	return setup
}

// Form returns the flex container with form and help text.
func (s *GameSetupUI) Form() *tview.Flex {
	return s.flex
}

// Config returns the settings currently chosen in the form.
func (s *GameSetupUI) Config() engine.GameConfig {
	return s.config
}

// SetInputCapture sets the input capture function for the form.
func (s *GameSetupUI) SetInputCapture(capture func(event *tcell.EventKey) *tcell.EventKey) {
	s.form.SetInputCapture(capture)
}
