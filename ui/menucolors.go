package ui

import "github.com/gdamore/tcell/v2"

// MenuColors defines the palette for the setup and color screens.
var MenuColors = struct {
	Border     tcell.Color
	Title      tcell.Color
	Label      tcell.Color
	Hint       tcell.Color
	ButtonBG   tcell.Color
	ButtonText tcell.Color
}{
	Border:     tcell.PaletteColor(65),  // muted green
	Title:      tcell.PaletteColor(255), // bright white
	Label:      tcell.PaletteColor(250), // light gray
	Hint:       tcell.PaletteColor(245), // dim gray
	ButtonBG:   tcell.PaletteColor(29),  // sea green
	ButtonText: tcell.PaletteColor(255),
}
