package sttt

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned by Config.Validate.
var ErrInvalidConfig = errors.New("sttt: invalid config")

// Config describes the board grid, its sizing in world units, and the
// colors of every layer. Zero values are not usable; start from
// DefaultConfig.
type Config struct {
	GamesPerRow int `yaml:"games_per_row"`
	GameRows    int `yaml:"game_rows"`
	N           int `yaml:"n"`

	CellSize          float64 `yaml:"cell_size"`
	CellGap           float64 `yaml:"cell_gap"`
	GamePadding       float64 `yaml:"game_padding"`
	ActiveBorderWidth float64 `yaml:"active_border_width"`
	GameGap           float64 `yaml:"game_gap"`

	// Colors used while a region's board is the active board.
	CellColor            Color `yaml:"cell_color"`
	CellHoverColor       Color `yaml:"cell_hover_color"`
	BackgroundColor      Color `yaml:"background_color"`
	HoverBackgroundColor Color `yaml:"hover_background_color"`
	ActiveBorderColor    Color `yaml:"active_border_color"`

	// Colors used for regions on every other board.
	InactiveCellHoverColor       Color `yaml:"inactive_cell_hover_color"`
	InactiveHoverBackgroundColor Color `yaml:"inactive_hover_background_color"`

	// ClearColor fills the window behind the boards.
	ClearColor Color `yaml:"clear_color"`

	// FadeSeconds fades revealed highlights in. Zero shows them at once.
	FadeSeconds float32 `yaml:"fade_seconds"`

	// Debug prints every transition and navigation step to stderr.
	Debug bool `yaml:"debug"`
}

// DefaultConfig returns a 5x3 grid of 3x3 boards.
func DefaultConfig() Config {
	return Config{
		GamesPerRow: 5,
		GameRows:    3,
		N:           3,

		CellSize:          50,
		CellGap:           3,
		GamePadding:       15,
		ActiveBorderWidth: 3,
		GameGap:           5,

		CellColor:            ColorWhite,
		CellHoverColor:       Color{R: 0.3, G: 0.8, B: 0.14, A: 1},
		BackgroundColor:      ColorBlack,
		HoverBackgroundColor: Color{R: 0.2, G: 0.28, B: 0.18, A: 1},
		ActiveBorderColor:    ColorWhite,

		InactiveCellHoverColor:       Color{R: 0.9, G: 0, B: 0, A: 1},
		InactiveHoverBackgroundColor: Color{R: 0.32, G: 0.22, B: 0.24, A: 1},

		ClearColor: Color{R: 0.15, G: 0.15, B: 0.15, A: 1},
	}
}

// Validate checks grid extents and sizes.
func (c *Config) Validate() error {
	if c.GamesPerRow < 1 {
		return fmt.Errorf("%w: games_per_row must be at least 1, got %d", ErrInvalidConfig, c.GamesPerRow)
	}
	if c.GameRows < 1 {
		return fmt.Errorf("%w: game_rows must be at least 1, got %d", ErrInvalidConfig, c.GameRows)
	}
	if c.N < 1 || c.N > 255 {
		return fmt.Errorf("%w: n must be in [1, 255], got %d", ErrInvalidConfig, c.N)
	}
	if c.CellSize <= 0 {
		return fmt.Errorf("%w: cell_size must be positive, got %v", ErrInvalidConfig, c.CellSize)
	}
	if c.CellGap < 0 || c.GamePadding < 0 || c.ActiveBorderWidth < 0 || c.GameGap < 0 {
		return fmt.Errorf("%w: gaps, padding and border width must not be negative", ErrInvalidConfig)
	}
	if c.FadeSeconds < 0 {
		return fmt.Errorf("%w: fade_seconds must not be negative, got %v", ErrInvalidConfig, c.FadeSeconds)
	}
	return nil
}

// ParseConfig decodes YAML over DefaultConfig, so a file only needs the
// fields it changes, and validates the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads and parses a YAML config file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return ParseConfig(data)
}
