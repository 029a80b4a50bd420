// termflip is a terminal application to play Othello against the computer.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"github.com/rivo/tview"

	"termflip/config"
	"termflip/console"
	"termflip/engine"
	"termflip/engine/local"
	"termflip/othello"
	"termflip/ui"
)

// Version is set at build time via ldflags
var Version = "dev"

// Command-line flags
var (
	flagBoardSize  = flag.Int("size", 0, "Board size (even, 4-26)")
	flagColor      = flag.String("color", "", "Color the computer plays (B or W)")
	flagDepth      = flag.Int("depth", -1, "Lookahead rounds for the computer")
	flagOpening    = flag.String("opening", "", "Moves to play before the game, e.g. \"Bcd Wce\"")
	flagText       = flag.Bool("text", false, "Play in plain text on stdin/stdout")
	flagRecord     = flag.Bool("record", false, "Print the SGF game record after a text game")
	flagQuickStart = flag.Bool("play", false, "Start game immediately with defaults")
	flagFocus      = flag.Bool("focus", false, "Start in focus mode (fullscreen board)")
	flagVersion    = flag.Bool("version", false, "Print version and exit")
)

var app *tview.Application
var rootPage *tview.Pages
var gameBoard *ui.BoardUI
var gameFrame *tview.Flex
var gameHint *tview.TextView
var cfg *config.Config

func main() {
	flag.Parse()

	if *flagVersion {
		fmt.Printf("termflip %s\n", Version)
		return
	}

	var err error
	cfg, err = config.InitConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if *flagText {
		if err := runText(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	gameCfg, err := buildGameConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	quickStart := *flagQuickStart || *flagBoardSize > 0 || *flagColor != "" || *flagDepth >= 0 || *flagOpening != "" || *flagFocus

	app = tview.NewApplication()
	rootPage = tview.NewPages()
	rootPage.SetBorder(true).SetTitle(" ◐ termflip ")

	gameHint = tview.NewTextView()
	gameHint.SetBorder(true)
	gameHint.SetBorderPadding(0, 0, 1, 1)
	gameHint.SetTitle(" Status ")
	gameHint.SetTitleAlign(tview.AlignLeft)
	gameBoard = ui.NewBoardUI(app, cfg, gameHint)

	gameFrame = ui.CreateGameLayout(gameBoard, gameHint)

	gameBoard.Box.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyRune && event.Rune() == 'q' {
			if gameBoard.SelectedTile() != nil {
				gameBoard.ResetSelection()
			} else {
				gameBoard.Close()
				rootPage.SwitchToPage("setup")
			}
			return nil
		}
		switch event.Key() {
		case tcell.KeyUp:
			gameBoard.MoveSelection(0, -1)
		case tcell.KeyDown:
			gameBoard.MoveSelection(0, 1)
		case tcell.KeyLeft:
			gameBoard.MoveSelection(-1, 0)
		case tcell.KeyRight:
			gameBoard.MoveSelection(1, 0)
		case tcell.KeyEnter:
			selTile := gameBoard.SelectedTile()
			if selTile == nil {
				return nil
			}
			gameBoard.PlayMove(selTile.X, selTile.Y)
		case tcell.KeyRune:
			switch event.Rune() {
			case 'h':
				gameBoard.MoveSelection(-1, 0)
			case 'j':
				gameBoard.MoveSelection(0, 1)
			case 'k':
				gameBoard.MoveSelection(0, -1)
			case 'l':
				gameBoard.MoveSelection(1, 0)
			case 'f':
				if gameBoard.ToggleFocusMode() {
					ui.BuildFocusLayout(gameFrame, gameBoard)
				} else {
					ui.RebuildNormalLayout(gameFrame, gameBoard, gameHint)
				}
			}
		}
		return event
	})

	setupUI := ui.NewGameSetup(
		gameCfg,
		func(gameCfg engine.GameConfig) {
			startGame(gameCfg)
		},
		func() {
			app.Stop()
		},
		func() {
			rootPage.SwitchToPage("colors")
		},
	)

	colorConfig := ui.NewColorConfig(cfg, func() {
		gameBoard.SetConfig(cfg)
		rootPage.SwitchToPage("setup")
	})
	colorConfig.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEsc || (event.Key() == tcell.KeyRune && event.Rune() == 'q') {
			rootPage.SwitchToPage("setup")
			return nil
		}
		if event.Key() == tcell.KeyTab {
			colorConfig.ToggleMode()
			return nil
		}
		return event
	})

	rootPage.AddPage("setup", ui.CreateCenteredForm(setupUI.Form(), 60), true, !quickStart)
	rootPage.AddPage("gameview", gameFrame, true, quickStart)
	rootPage.AddPage("colors", colorConfig.Flex(), true, false)

	if quickStart {
		startGame(gameCfg)
		if *flagFocus {
			gameBoard.SetFocusMode(true)
			ui.BuildFocusLayout(gameFrame, gameBoard)
		}
	}

	if err := app.SetRoot(rootPage, true).Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// startGame starts a game with the given configuration.
func startGame(gameCfg engine.GameConfig) {
	eng := local.NewLocalEngine(gameCfg)
	if err := gameBoard.ConnectEngine(eng, gameCfg); err != nil {
		modal := tview.NewModal().
			SetText(fmt.Sprintf("Failed to start game:\n%s", err.Error())).
			AddButtons([]string{"OK"}).
			SetDoneFunc(func(buttonIndex int, buttonLabel string) {
				rootPage.RemovePage("error")
				rootPage.SwitchToPage("setup")
			})
		rootPage.AddPage("error", modal, true, true)
		return
	}
	rootPage.SwitchToPage("gameview")
}

// buildGameConfig creates a GameConfig from the config file defaults and
// command-line flags.
func buildGameConfig() (engine.GameConfig, error) {
	gameCfg := engine.GameConfig{
		BoardSize: cfg.Game.BoardSize,
		Depth:     cfg.Game.Depth,
		Opening:   *flagOpening,
	}

	computer, err := othello.ParseColor(cfg.Game.ComputerColor)
	if err != nil {
		return gameCfg, err
	}
	if *flagColor != "" {
		if computer, err = othello.ParseColor(*flagColor); err != nil {
			return gameCfg, fmt.Errorf("-color: %w", err)
		}
	}
	gameCfg.PlayerColor = engine.ColorValue(computer.Opposite())

	if *flagBoardSize > 0 {
		gameCfg.BoardSize = *flagBoardSize
	}
	if *flagDepth >= 0 {
		gameCfg.Depth = *flagDepth
	}
	return gameCfg, nil
}

// runText plays one game on stdin/stdout. Size and color not given as flags
// are asked for.
func runText() error {
	depth := cfg.Game.Depth
	if *flagDepth >= 0 {
		depth = *flagDepth
	}
	return console.Run(os.Stdin, os.Stdout, console.Options{
		Dimension:     *flagBoardSize,
		ComputerColor: strings.TrimSpace(*flagColor),
		Depth:         depth,
		Opening:       *flagOpening,
		Record:        *flagRecord,
		GameID:        uuid.NewString(),
	})
}
