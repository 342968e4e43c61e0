package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool { return &b }

func TestLoadTheme(t *testing.T) {
	themeData := []byte(`
title = { fg = "blue", bold = true }
selected = { fg = "white", bg = "blue" }
error = "red"
`)

	theme, err := loadTheme(themeData, nil)
	require.NoError(t, err)

	expected := map[string]Color{
		"title":    {Fg: "blue", Bold: boolPtr(true)},
		"selected": {Fg: "white", Bg: "blue"},
		"error":    {Fg: "red"},
	}

	assert.EqualExportedValues(t, expected, theme)
}

func TestLoadThemeWithBase(t *testing.T) {
	baseTheme := map[string]Color{
		"title":    {Fg: "green", Bold: boolPtr(true)},
		"selected": {Fg: "cyan", Bg: "black"},
		"error":    {Fg: "red"},
		"border":   {Fg: "white"},
	}

	partialOverride := []byte(`
title = { fg = "magenta", bold = true }
selected = { fg = "yellow", bg = "blue" }
`)

	theme, err := loadTheme(partialOverride, baseTheme)
	require.NoError(t, err)

	expected := map[string]Color{
		"title":    {Fg: "magenta", Bold: boolPtr(true)},
		"selected": {Fg: "yellow", Bg: "blue"},
		"error":    {Fg: "red"},
		"border":   {Fg: "white"},
	}

	assert.EqualExportedValues(t, expected, theme)
	assert.Equal(t, "green", baseTheme["title"].Fg, "base is not modified")
}

func TestLoad_MergesWindowsByName(t *testing.T) {
	cfg := &Config{
		Playground: PlaygroundConfig{
			Windows: []WindowConfig{
				{Name: "first", Title: "one", Width: 10, Height: 5},
				{Name: "second", Title: "two", Width: 10, Height: 5},
			},
		},
	}

	content := `
[[playground.windows]]
name = "first"
title = "override"
width = 20
height = 6

[[playground.windows]]
name = "third"
title = "three"
width = 8
height = 4
`

	_, err := cfg.Load(content)
	require.NoError(t, err)
	require.Len(t, cfg.Playground.Windows, 3)
	assert.Equal(t, WindowConfig{Name: "first", Title: "override", Width: 20, Height: 6}, cfg.Playground.Windows[0])
	assert.Equal(t, "second", cfg.Playground.Windows[1].Name)
	assert.Equal(t, "third", cfg.Playground.Windows[2].Name)
}

func TestLoad_KeepsWindowsWhenNotMentioned(t *testing.T) {
	cfg := Default()
	before := append([]WindowConfig(nil), cfg.Playground.Windows...)

	_, err := cfg.Load("[log]\nlevel = \"debug\"")
	require.NoError(t, err)
	assert.Equal(t, before, cfg.Playground.Windows)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HITKIT_CONFIG_DIR", dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(`
[interaction]
interact_radius = 3.0
colour = "red"
`), 0o644))

	cfg := Default()
	warnings, err := cfg.LoadFile()
	require.NoError(t, err)
	assert.Equal(t, float32(3), cfg.Interaction.InteractRadius)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "interaction.colour")
	assert.Equal(t, dir, GetConfigDir())
}

func TestLoadFile_Missing(t *testing.T) {
	t.Setenv("HITKIT_CONFIG_DIR", t.TempDir())

	cfg := Default()
	warnings, err := cfg.LoadFile()
	require.NoError(t, err)
	assert.Empty(t, warnings)
}

func TestLoadTheme_FromConfigDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HITKIT_CONFIG_DIR", dir)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "themes"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "themes", "mono.toml"), []byte(`button = { fg = "15", reverse = true }`), 0o644))

	colors, err := LoadTheme("mono", map[string]Color{"label": {Fg: "7"}})
	require.NoError(t, err)
	assert.Equal(t, "7", colors["label"].Fg)
	if assert.NotNil(t, colors["button"].Reverse) {
		assert.True(t, *colors["button"].Reverse)
	}

	_, err = LoadTheme("../escape", nil)
	assert.ErrorIs(t, err, ErrInvalid)
}
