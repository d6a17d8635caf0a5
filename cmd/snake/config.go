package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the game would use, as YAML.

The output is a valid config file and can be saved and edited.

Examples:
  snake config
  snake config --defaults > ~/.snake/config.yaml
  snake config --config ./my-snake.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults with comments")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	if flagDefaults {
		_, err := out.Write(config.DefaultYAML())
		return err
	}

	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "# source: %s\n", source)
	_, err = out.Write(data)
	return err
}
