package config

import (
	"embed"
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

//go:embed default
var configFS embed.FS

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid config")

type Config struct {
	Interaction InteractionConfig `toml:"interaction"`
	Log         LogConfig         `toml:"log"`
	UI          UIConfig          `toml:"ui"`
	Playground  PlaygroundConfig  `toml:"playground"`
}

type InteractionConfig struct {
	// InteractRadius is how far from a widget the pointer may be and still
	// reach it.
	InteractRadius      float32 `toml:"interact_radius"`
	MaxClickDist        float32 `toml:"max_click_dist"`
	MaxClickDuration    float64 `toml:"max_click_duration"`
	MaxDoubleClickDelay float64 `toml:"max_double_click_delay"`
}

type LogConfig struct {
	Level string `toml:"level"`
	// File is where logs go. Empty discards them.
	File string `toml:"file"`
}

type UIConfig struct {
	Theme  string           `toml:"theme"`
	Colors map[string]Color `toml:"colors"`
}

type PlaygroundConfig struct {
	InspectorPercent float64        `toml:"inspector_percent"`
	Windows          []WindowConfig `toml:"windows"`
}

type WindowConfig struct {
	Name   string `toml:"name"`
	Title  string `toml:"title"`
	X      int    `toml:"x"`
	Y      int    `toml:"y"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
}

// Color is either a bare colour name or a table of attributes. Unset
// attributes are nil so that an explicit false survives merging.
type Color struct {
	Fg        string `toml:"fg"`
	Bg        string `toml:"bg"`
	Bold      *bool  `toml:"bold"`
	Underline *bool  `toml:"underline"`
	Reverse   *bool  `toml:"reverse"`
}

func (c *Color) UnmarshalTOML(value any) error {
	switch v := value.(type) {
	case string:
		*c = Color{Fg: v}
		return nil
	case map[string]any:
		*c = Color{}
		for key, raw := range v {
			var err error
			switch key {
			case "fg":
				c.Fg, err = asString(key, raw)
			case "bg":
				c.Bg, err = asString(key, raw)
			case "bold":
				c.Bold, err = asBool(key, raw)
			case "underline":
				c.Underline, err = asBool(key, raw)
			case "reverse":
				c.Reverse, err = asBool(key, raw)
			default:
				err = fmt.Errorf("unknown color attribute %q", key)
			}
			if err != nil {
				return err
			}
		}
		return nil
	}
	return fmt.Errorf("color must be a string or a table, got %T", value)
}

func asString(key string, v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("color attribute %q must be a string", key)
	}
	return s, nil
}

func asBool(key string, v any) (*bool, error) {
	b, ok := v.(bool)
	if !ok {
		return nil, fmt.Errorf("color attribute %q must be a boolean", key)
	}
	return &b, nil
}

// Validate checks value ranges. Errors name the offending key.
func (c *Config) Validate() error {
	var errs []error
	nonNegative := func(key string, v float64) {
		if v < 0 {
			errs = append(errs, fmt.Errorf("%w: %s must not be negative, got %g", ErrInvalid, key, v))
		}
	}
	nonNegative("interaction.interact_radius", float64(c.Interaction.InteractRadius))
	nonNegative("interaction.max_click_dist", float64(c.Interaction.MaxClickDist))
	nonNegative("interaction.max_click_duration", c.Interaction.MaxClickDuration)
	nonNegative("interaction.max_double_click_delay", c.Interaction.MaxDoubleClickDelay)

	if c.Log.Level != "" {
		var level slog.Level
		if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
			errs = append(errs, fmt.Errorf("%w: log.level %q is not one of debug, info, warn, error", ErrInvalid, c.Log.Level))
		}
	}

	if p := c.Playground.InspectorPercent; p < 0 || p > 100 {
		errs = append(errs, fmt.Errorf("%w: playground.inspector_percent must be within 0 and 100, got %g", ErrInvalid, p))
	}
	seen := make(map[string]bool, len(c.Playground.Windows))
	for i, w := range c.Playground.Windows {
		name := strings.TrimSpace(w.Name)
		switch {
		case name == "":
			errs = append(errs, fmt.Errorf("%w: playground.windows[%d].name must be set", ErrInvalid, i))
		case seen[name]:
			errs = append(errs, fmt.Errorf("%w: playground.windows[%d].name %q is used twice", ErrInvalid, i, name))
		}
		seen[name] = true
		if w.Width < 3 || w.Height < 3 {
			errs = append(errs, fmt.Errorf("%w: playground.windows[%d] must be at least 3x3", ErrInvalid, i))
		}
	}
	return errors.Join(errs...)
}
