package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-snake/internal/core"
)

//go:embed defaults/snake.yaml
var defaultYAML []byte

// Default returns the built-in configuration. It matches the embedded
// defaults/snake.yaml.
func Default() Config {
	return Config{
		Board: Board{
			Width:  500,
			Height: 500,
			Unit:   25,
		},
		Snake: Snake{
			InitialLength: 5,
		},
		Tick: Tick{
			Period: core.DefaultTickPeriod,
		},
		Audio: Audio{
			Enabled: true,
			Volume:  0.5,
		},
		Theme: Theme{
			Head:    "226",
			Body:    "34",
			Border:  "240",
			HUD:     "252",
			Overlay: "226",
			Apple:   "196",
			Banana:  "220",
			Orange:  "208",
			Pear:    "148",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
