// Package config provides YAML-based configuration loading for the game.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Config contains all user-tunable settings.
type Config struct {
	Board Board `yaml:"board"`
	Snake Snake `yaml:"snake"`
	Tick  Tick  `yaml:"tick"`
	Audio Audio `yaml:"audio"`
	Theme Theme `yaml:"theme"`
}

// Board defines the playfield size in board units.
type Board struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Unit   int `yaml:"unit"` // cell size
}

// Snake defines the snake at the start of every game.
type Snake struct {
	InitialLength int `yaml:"initial_length"`
}

// Tick defines the game speed.
type Tick struct {
	Period time.Duration `yaml:"period"`
}

// Audio defines sound settings.
type Audio struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 0.0 = silent, 1.0 = full
}

// Theme holds lipgloss colour strings (ANSI numbers or "#rrggbb").
type Theme struct {
	Head    string `yaml:"head"`
	Body    string `yaml:"body"`
	Border  string `yaml:"border"`
	HUD     string `yaml:"hud"`
	Overlay string `yaml:"overlay"`
	Apple   string `yaml:"apple"`
	Banana  string `yaml:"banana"`
	Orange  string `yaml:"orange"`
	Pear    string `yaml:"pear"`
}

// Grid builds the board geometry.
func (c Config) Grid() (core.Grid, error) {
	return core.NewGrid(c.Board.Width, c.Board.Height, c.Board.Unit)
}

// Validate checks that the settings describe a playable game.
func (c Config) Validate() error {
	grid, err := c.Grid()
	if err != nil {
		return fmt.Errorf("%w: board: %w", ErrInvalidConfig, err)
	}
	if c.Snake.InitialLength < 1 || c.Snake.InitialLength > grid.Cols() {
		return fmt.Errorf("%w: snake.initial_length %d must be between 1 and %d",
			ErrInvalidConfig, c.Snake.InitialLength, grid.Cols())
	}
	if cells := grid.Cols() * grid.Rows(); c.Snake.InitialLength >= cells {
		return fmt.Errorf("%w: snake.initial_length %d leaves no free cell on a %dx%d board",
			ErrInvalidConfig, c.Snake.InitialLength, grid.Cols(), grid.Rows())
	}
	if c.Tick.Period <= 0 {
		return fmt.Errorf("%w: tick.period %v must be positive", ErrInvalidConfig, c.Tick.Period)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("%w: audio.volume %v must be within [0, 1]", ErrInvalidConfig, c.Audio.Volume)
	}
	return nil
}

// Runtime converts the settings into the game's runtime configuration.
func (c Config) Runtime(seed int64) (core.RuntimeConfig, error) {
	if err := c.Validate(); err != nil {
		return core.RuntimeConfig{}, err
	}
	grid, _ := c.Grid()
	return core.RuntimeConfig{
		Grid:          grid,
		InitialLength: c.Snake.InitialLength,
		TickPeriod:    c.Tick.Period,
		Seed:          seed,
	}, nil
}
