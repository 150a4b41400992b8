package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-dino/internal/config"
)

var flagEffective bool

var configCmd = &cobra.Command{
	Use:   "config [path]",
	Short: "Print the game config",
	Long: `Print the built-in default config, ready to be copied to
~/.arcade/configs/dino.yaml or ./configs/dino.yaml and edited.

With --effective, prints the config a run would use after searching the
usual locations (or the given path), with validation applied.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagEffective, "effective", false, "Print the resolved config instead of the defaults")
}

func runConfig(_ *cobra.Command, args []string) error {
	if !flagEffective {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	}

	var path string
	if len(args) == 1 {
		path = args[0]
	}
	cfg, err := config.LoadDino(path)
	if err != nil {
		return err
	}

	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	_, err = os.Stdout.Write(out)
	return err
}
