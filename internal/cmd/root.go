// Package cmd implements the shenv CLI commands.
package cmd

import (
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/unrss/shenv/internal/config"
)

// Assets holds embedded files passed from main.
type Assets struct {
	Version string
}

// cfg holds the loaded configuration, available to all commands.
var cfg *config.Config

// logger writes diagnostics to stderr at the configured level.
var logger = slog.New(slog.DiscardHandler)

// Execute runs the root command with the provided assets.
func Execute(assets Assets) error {
	root := newRootCmd(assets)
	return root.Execute()
}

func newRootCmd(assets Assets) *cobra.Command {
	var verbose bool

	version := resolveVersion(assets.Version)

	cmd := &cobra.Command{
		Use:   "shenv",
		Short: "Typed view of environment variables",
		Long: `shenv snapshots the environment and reports each variable as a typed value
(bool, int, ip, url, path or string), inferred from its text.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := initConfig(); err != nil {
				return err
			}
			level := cfg.Level()
			if verbose {
				level = slog.LevelDebug
			}
			logger = newLogger(cmd.ErrOrStderr(), level)
			logger.Debug("config loaded", "file", config.ConfigFile(), "format", cfg.Format, "raw", cfg.Raw)
			return nil
		},
	}

	cmd.SetVersionTemplate("{{.Version}}\n")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log diagnostics to stderr")

	// Add subcommands
	cmd.AddCommand(
		newGetCmd(),
		newListCmd(),
		newDocCmd(),
		newCategoriesCmd(),
		newDiffCmd(),
		newDumpCmd(),
		newPlatformCmd(),
		newConfigCmd(),
		newVersionCmd(version),
		newPackageCmd(version),
		newPrefixCmd(version),
	)

	return cmd
}

func initConfig() error {
	var err error
	cfg, err = config.Load()
	return err
}

func resolveVersion(embedded string) string {
	if v := strings.TrimSpace(embedded); v != "" {
		return v
	}
	return buildVersion()
}
