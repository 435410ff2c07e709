package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/bastiangx/typehint/pkg/config"
)

var rebuildConfig bool

func init() {
	configCmd.Flags().BoolVar(&rebuildConfig, "rebuild", false, "Overwrite the default config file with defaults")
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the active config and where it was loaded from",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if rebuildConfig {
			if err := config.RebuildConfigFile(); err != nil {
				return err
			}
		}
		cfg, path, err := config.LoadConfigWithPriority(configPath)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "# %s\n", config.GetActiveConfigPath(path))
		return toml.NewEncoder(out).Encode(cfg)
	},
}
