package config

var DefaultConfig Config
var DefaultTheme Theme

func init() {
	DefaultTheme = Theme{
		DrawCursorBackground:     true,
		DrawLastPlayedBackground: true,
		ShowLegalMoves:           true,
		Checkered:                false,
		Colors: ConfigColors{
			BoardColor:        28,
			BoardColorAlt:     22,
			BlackColor:        232,
			WhiteColor:        255,
			GridColor:         22,
			HintColor:         120,
			CursorColorFG:     2,
			CursorColorBG:     4,
			LastPlayedColorBG: 3,
		},
		Symbols: ConfigSymbols{
			BlackTile:   '●',
			WhiteTile:   '●',
			EmptySquare: '·',
			LegalHint:   '∘',
			Cursor:      '·',
		},
	}

	DefaultConfig = Config{
		Theme: DefaultTheme,
		Game: GameDefaults{
			BoardSize:     8,
			Depth:         4,
			ComputerColor: "W",
		},
	}
}
