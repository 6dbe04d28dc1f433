package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/dusklight/pixelpipe/pkg/config"
	"github.com/dusklight/pixelpipe/pkg/datastore"
	"github.com/dusklight/pixelpipe/pkg/logging"
	"github.com/dusklight/pixelpipe/pkg/output"
	"github.com/dusklight/pixelpipe/pkg/pipeline"
	"github.com/dusklight/pixelpipe/pkg/types"
)

var (
	verbosity  int
	configPath string

	cfg *config.Config

	rootCmd = &cobra.Command{
		Use:   "pixelpipe",
		Short: "Manage the processing order of image pipelines",
		Long: `pixelpipe manages the order in which processing modules are applied to an
image: inspecting the resolved pipeline, moving modules under rule and fence
constraints, reconciling multi-instance layouts and auditing consistency.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if configPath != "" {
				cfg, err = config.LoadFrom(configPath)
			} else {
				cfg, err = config.Load()
			}
			if err != nil {
				return err
			}

			if verbosity == 0 {
				verbosity = cfg.Log.Verbosity
			}
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Config file (default is $XDG_CONFIG_HOME/pixelpipe/pixelpipe.toml)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(completionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("pixelpipe version %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built:  %s\n", date)
	},
}

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Args:  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{
		"bash", "zsh", "fish", "powershell",
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletion(os.Stdout)
		case "zsh":
			return rootCmd.GenZshCompletion(os.Stdout)
		case "fish":
			return rootCmd.GenFishCompletion(os.Stdout, true)
		case "powershell":
			return rootCmd.GenPowerShellCompletionWithDesc(os.Stdout)
		}
		return nil
	},
}

// openStore opens the configured order database.
func openStore() (*datastore.SQLiteStore, error) {
	return datastore.OpenSQLite(cfg.Storage.Path)
}

// loadDocument resolves an image's order and builds its document context.
func loadDocument(store *datastore.SQLiteStore, imageID int64) (*pipeline.Document, types.Version) {
	list, resolved := pipeline.LoadOrder(store, imageID, cfg.DefaultVersion())
	return pipeline.NewDocument(imageID, list), resolved
}

// newRenderer builds the terminal renderer from the configured color mode.
func newRenderer() *output.Renderer {
	return output.NewRenderer(cfg.Output.Color)
}

// parseImageID parses the image identifier argument.
func parseImageID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid image id %q", arg)
	}
	return id, nil
}

// parseModuleSpec parses "operation" or "operation,instance".
func parseModuleSpec(spec string) (string, int, error) {
	parts := strings.SplitN(spec, ",", 2)
	if parts[0] == "" {
		return "", 0, fmt.Errorf("invalid module spec %q", spec)
	}
	if len(parts) == 1 {
		return parts[0], types.BaseInstance, nil
	}
	instance, err := strconv.Atoi(parts[1])
	if err != nil || instance < 0 {
		return "", 0, fmt.Errorf("invalid instance in module spec %q", spec)
	}
	return parts[0], instance, nil
}
