package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
)

func useConfigHome(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("XDG_CONFIG_DIRS", filepath.Join(dir, "none"))
	xdg.Reload()
	t.Cleanup(xdg.Reload)
	return dir
}

func writeConfig(t *testing.T, dir, data string) {
	t.Helper()
	path := filepath.Join(dir, "termflip", "config.json")
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}

func TestInitConfigDefaults(t *testing.T) {
	useConfigHome(t)
	cfg, err := InitConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Game != DefaultConfig.Game {
		t.Fatalf("expected defaults %+v, got %+v", DefaultConfig.Game, cfg.Game)
	}
}

func TestInitConfigOverrides(t *testing.T) {
	dir := useConfigHome(t)
	writeConfig(t, dir, `{"game": {"default_board_size": 10, "default_depth": 2, "computer_color": "B"}}`)
	cfg, err := InitConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Game.BoardSize != 10 || cfg.Game.Depth != 2 || cfg.Game.ComputerColor != "B" {
		t.Fatalf("unexpected game defaults %+v", cfg.Game)
	}
	if cfg.Theme.Symbols != DefaultTheme.Symbols {
		t.Fatal("expected theme defaults to survive a partial file")
	}
}

func TestInitConfigRejectsBadFile(t *testing.T) {
	for _, data := range []string{
		`{"game": `,
		`{"game": {"default_board_size": 9}}`,
		`{"game": {"default_board_size": 28}}`,
		`{"game": {"default_depth": -1}}`,
		`{"game": {"computer_color": "red"}}`,
		`{"theme": {"symbols": {"black": 7}}}`,
	} {
		dir := useConfigHome(t)
		writeConfig(t, dir, data)
		_, err := InitConfig()
		var invalid *InvalidConfig
		if !errors.As(err, &invalid) {
			t.Errorf("expected InvalidConfig for %s, got %v", data, err)
		}
	}
}

func TestSaveRoundTrip(t *testing.T) {
	useConfigHome(t)
	cfg := DefaultConfig
	cfg.Game.BoardSize = 6
	cfg.Theme.Colors.BoardColor = 94
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, err := InitConfig()
	if err != nil {
		t.Fatalf("InitConfig: %v", err)
	}
	if loaded.Game.BoardSize != 6 || loaded.Theme.Colors.BoardColor != 94 {
		t.Fatalf("expected saved values, got %+v", loaded)
	}
}
