// Package config loads the user's theme and game defaults from the XDG
// config directory.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

var (
	cfgFile = "termflip/config.json"
)

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("Config error: %s", e.err)
}

type ConfigColors struct {
	BoardColor        int `json:"board"`
	BoardColorAlt     int `json:"board_alt"`
	BlackColor        int `json:"black"`
	WhiteColor        int `json:"white"`
	GridColor         int `json:"grid"`
	HintColor         int `json:"hint"`
	CursorColorFG     int `json:"cursor_fg"`
	CursorColorBG     int `json:"cursor_bg"`
	LastPlayedColorBG int `json:"last_played_bg"`
}

type ConfigSymbols struct {
	BlackTile   rune `json:"black"`
	WhiteTile   rune `json:"white"`
	EmptySquare rune `json:"empty"`
	LegalHint   rune `json:"hint"`
	Cursor      rune `json:"cursor"`
}

type Theme struct {
	DrawCursorBackground     bool          `json:"draw_cursor_bg"`
	DrawLastPlayedBackground bool          `json:"draw_last_played_bg"`
	ShowLegalMoves           bool          `json:"show_legal_moves"`
	Checkered                bool          `json:"checkered"`
	Colors                   ConfigColors  `json:"colors"`
	Symbols                  ConfigSymbols `json:"symbols"`
}

// GameDefaults holds the settings used when a game is started without the
// setup screen.
type GameDefaults struct {
	BoardSize     int    `json:"default_board_size"`
	Depth         int    `json:"default_depth"`
	ComputerColor string `json:"computer_color"`
}

type Config struct {
	Theme Theme        `json:"theme"`
	Game  GameDefaults `json:"game"`
}

// InitConfig returns the defaults overlaid with the user's config file, if
// there is one.
func InitConfig() (*Config, error) {
	config := DefaultConfig
	absPath, err := xdg.SearchConfigFile(cfgFile)
	if err == nil {
		if err := readCfgFile(absPath, &config); err != nil {
			return nil, err
		}
	}
	if err = config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) Validate() error {
	for _, r := range []rune{c.Theme.Symbols.BlackTile, c.Theme.Symbols.WhiteTile, c.Theme.Symbols.EmptySquare, c.Theme.Symbols.LegalHint} {
		if r < 32 || (r >= 127 && r <= 159) {
			return &InvalidConfig{"Unicode characters 1-31 and 127-159 are not allowed"}
		}
	}
	if n := c.Game.BoardSize; n < 4 || n > 26 || n%2 != 0 {
		return &InvalidConfig{fmt.Sprintf("board size must be even and between 4 and 26, got %d", n)}
	}
	if c.Game.Depth < 0 {
		return &InvalidConfig{fmt.Sprintf("depth must not be negative, got %d", c.Game.Depth)}
	}
	switch strings.ToUpper(c.Game.ComputerColor) {
	case "B", "W":
	default:
		return &InvalidConfig{fmt.Sprintf("computer color must be B or W, got %q", c.Game.ComputerColor)}
	}
	return nil
}

// Save writes the config to the user's config directory.
func (c *Config) Save() error {
	absPath, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to locate config file: %w", err)
	}
	return saveCfgFile(absPath, c, 0664)
}

func saveCfgFile(filePath string, a interface{}, perm fs.FileMode) error {
	jsonData, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(filePath, jsonData, perm); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func readCfgFile(filePath string, a interface{}) error {
	data, err := os.ReadFile(filePath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}
	if err := json.Unmarshal(data, a); err != nil {
		return &InvalidConfig{fmt.Sprintf("%s: %v", filePath, err)}
	}
	return nil
}
