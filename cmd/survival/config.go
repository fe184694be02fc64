package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/school-survival/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a run would use as YAML, after the search path
and the difficulty preset are applied.

The output is a valid config file: save it to
~/.survival/configs/survival.yaml or ./configs/survival.yaml and edit it.

Examples:
  survival config
  survival config --difficulty easy
  survival config --defaults > configs/survival.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	addGameFlags(configCmd)
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults with comments")
}

func runConfig(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if flagDefaults {
		_, err := out.Write(config.DefaultYAML())
		return err
	}

	cfg, _, err := loadGameConfig()
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	_, err = out.Write(data)
	return err
}
