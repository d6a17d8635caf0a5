// snake is the classic snake game for the terminal.
//
// Usage:
//
//	snake                    - Play (same as snake play)
//	snake play               - Play in the terminal
//	snake simulate           - Run a scripted game headlessly and print the result
//	snake config             - Print the effective configuration as YAML
//
// Global flags:
//
//	--config <path>   - Config file (default search: ~/.snake/config.yaml, ./configs/snake.yaml)
//	--seed <value>    - Set RNG seed for reproducible food placement
//	--log-file <path> - Write logs to a file (the game owns the terminal)
//	--debug           - Enable debug logging
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
)

var (
	// Global flags
	flagConfig  string
	flagSeed    int64
	flagLogFile string
	flagDebug   bool
)

var (
	logger   = log.New(io.Discard)
	logClose = func() {}
)

func main() {
	err := rootCmd.Execute()
	logClose()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic grid game in your terminal",
	Long: `Snake is the classic grid game: steer the snake to the food, grow
longer with every bite and avoid the walls and your own tail.

Available commands:
  play      - Play the game (default)
  simulate  - Run a scripted game without a terminal
  config    - Show the effective configuration

Examples:
  snake
  snake play --seed 42 --mute
  snake simulate --seed 42 --moves RRDDLL --ticks 10
  snake config > ~/.snake/config.yaml`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupLogger,
	RunE:              runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	addPlayFlags(rootCmd)

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(configCmd)
}

// setupLogger opens the log file, if any. Without one logs are discarded.
func setupLogger(_ *cobra.Command, _ []string) error {
	if flagLogFile == "" {
		return nil
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	logger = log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	logClose = func() { f.Close() }
	return nil
}

// loadConfig loads the configuration named by --config or found on the
// search path.
func loadConfig() (config.Config, error) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	logger.Debug("config loaded", "source", source)
	return cfg, nil
}
