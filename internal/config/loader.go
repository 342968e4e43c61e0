package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"
)

type mergeOverlay struct {
	Playground struct {
		Windows []WindowConfig `toml:"windows"`
	} `toml:"playground"`
}

func getConfigFilePath() string {
	var configDirs []string

	// useful during development or other non-standard setups.
	if dir := os.Getenv("HITKIT_CONFIG_DIR"); dir != "" {
		if s, err := os.Stat(dir); err == nil && s.IsDir() {
			return filepath.Join(dir, "config.toml")
		}
	}

	// os.UserConfigDir() already does this for linux leaving darwin to handle
	if runtime.GOOS == "darwin" {
		configDirs = append(configDirs, path.Join(os.Getenv("HOME"), ".config"))
		if xdgConfigDir := os.Getenv("XDG_CONFIG_HOME"); xdgConfigDir != "" {
			configDirs = append(configDirs, xdgConfigDir)
		}
	}

	if configDir, err := os.UserConfigDir(); err == nil {
		configDirs = append(configDirs, configDir)
	}

	for _, dir := range configDirs {
		configPath := filepath.Join(dir, "hitkit", "config.toml")
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
	}

	if len(configDirs) > 0 {
		return filepath.Join(configDirs[0], "hitkit", "config.toml")
	}
	return ""
}

func GetConfigDir() string {
	configFile := getConfigFilePath()
	if configFile == "" {
		return ""
	}
	return filepath.Dir(configFile)
}

// Default returns the embedded configuration.
func Default() *Config {
	data, err := configFS.ReadFile("default/config.toml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Fatal: no embedded default config found: %v\n", err)
		os.Exit(1)
	}

	config := &Config{}
	if _, err := config.Load(string(data)); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal: failed to load embedded default config: %v\n", err)
		os.Exit(1)
	}
	return config
}

// Load decodes data on top of c. Windows are merged by name, colours by key;
// everything else is overwritten when present. It returns the keys it did
// not recognise.
func (c *Config) Load(data string) ([]string, error) {
	baseWindows := append([]WindowConfig(nil), c.Playground.Windows...)

	metadata, err := toml.Decode(data, c)
	if err != nil {
		return nil, err
	}

	// Decode merge-managed arrays into a fresh struct so they are always read
	// from this file's content only.
	overlay := &mergeOverlay{}
	if _, err := toml.Decode(data, overlay); err != nil {
		return nil, err
	}
	if metadata.IsDefined("playground", "windows") {
		c.Playground.Windows = mergeWindows(baseWindows, overlay.Playground.Windows)
	} else {
		c.Playground.Windows = baseWindows
	}

	var unknown []string
	for _, key := range metadata.Undecoded() {
		unknown = append(unknown, key.String())
	}
	return unknown, c.Validate()
}

// LoadFile applies the user config file, if there is one, on top of c.
// Unknown keys come back as warnings.
func (c *Config) LoadFile() ([]string, error) {
	data, err := LoadConfigFile()
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	unknown, err := c.Load(string(data))
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", getConfigFilePath(), err)
	}
	var warnings []string
	for _, key := range unknown {
		warnings = append(warnings, fmt.Sprintf("unknown config key %q is ignored", key))
	}
	return warnings, nil
}

func LoadConfigFile() ([]byte, error) {
	configFile := getConfigFilePath()
	if configFile == "" {
		return nil, fs.ErrNotExist
	}
	return os.ReadFile(configFile)
}

func loadTheme(data []byte, base map[string]Color) (map[string]Color, error) {
	colors := make(map[string]Color, len(base))
	for key, color := range base {
		colors[key] = color
	}
	if err := toml.Unmarshal(data, &colors); err != nil {
		return nil, err
	}
	return colors, nil
}

// LoadTheme reads themes/<name>.toml next to the config file and lays it
// over base.
func LoadTheme(name string, base map[string]Color) (map[string]Color, error) {
	if strings.ContainsAny(name, `/\`) {
		return nil, fmt.Errorf("%w: ui.theme %q must be a plain name", ErrInvalid, name)
	}
	themeFile := filepath.Join(GetConfigDir(), "themes", name+".toml")
	data, err := os.ReadFile(themeFile)
	if err != nil {
		return nil, fmt.Errorf("loading theme %q: %w", name, err)
	}
	return loadTheme(data, base)
}
