package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dusklight/pixelpipe/pkg/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as TOML",
	Long: `Config renders the fully resolved configuration — embedded defaults, the
user file and PIXELPIPE_* environment overrides — in the same TOML layout the
user file uses.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := cfg.Generate()
		if err != nil {
			return err
		}
		fmt.Printf("# %s\n", config.UserConfigPath())
		fmt.Print(string(data))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
