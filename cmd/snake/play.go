package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/audio"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var (
	flagMute bool
	flagTick time.Duration
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play snake",
	Long: `Start a game in the terminal.

Controls:
  Arrows/hjkl  - Steer
  Enter/S      - Start or resume
  P/Space      - Pause
  R            - Reset
  Ctrl+S       - Save a text screenshot to ~/.snake/screenshots
  ?            - Show all keys
  Q/Ctrl+C     - Quit

Examples:
  snake play
  snake play --mute
  snake play --tick 90ms
  snake play --config ./my-snake.yaml`,
	RunE: runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	cmd.Flags().DurationVar(&flagTick, "tick", 0, "Tick period override, e.g. 90ms")
}

func runPlay(_ *cobra.Command, _ []string) error {
	if _, _, err := term.GetSize(int(os.Stdout.Fd())); err != nil {
		return fmt.Errorf("play needs a terminal: %w", err)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if flagTick > 0 {
		cfg.Tick.Period = flagTick
	}
	rc, err := cfg.Runtime(flagSeed)
	if err != nil {
		return err
	}

	opts := tui.Options{
		Runtime: rc,
		Theme:   cfg.Theme,
		Logger:  logger,
	}

	if cfg.Audio.Enabled && !flagMute {
		player := audio.NewPlayer(cfg.Audio.Volume, logger)
		if err := player.Init(); err != nil {
			// Continue without sound - game still works
			logger.Warn("audio disabled", "err", err)
		}
		defer player.Close()
		opts.Audio = player
	}

	return tui.Run(opts)
}
