package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/unrss/shenv/internal/config"
)

// ConfigOutput is the JSON representation of shenv configuration.
type ConfigOutput struct {
	ConfigFile  string   `json:"config_file,omitempty"`
	Raw         bool     `json:"raw"`
	Format      string   `json:"format"`
	EnvFiles    []string `json:"env_files,omitempty"`
	IgnoreShell bool     `json:"ignore_shell"`
	Redact      bool     `json:"redact"`
	LogLevel    string   `json:"log_level"`
}

func newConfigCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show current configuration",
		Long: `Display the current shenv configuration including values from
the config file, environment variables, and defaults.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfig(cmd.OutOrStdout(), jsonOutput)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runConfig(w io.Writer, jsonOutput bool) error {
	output := ConfigOutput{
		ConfigFile:  config.ConfigFile(),
		Raw:         cfg.Raw,
		Format:      cfg.Format,
		EnvFiles:    cfg.EnvFiles,
		IgnoreShell: cfg.IgnoreShell,
		Redact:      cfg.Redact,
		LogLevel:    cfg.LogLevel,
	}

	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(output)
	}

	return outputConfigHuman(w, output)
}

func outputConfigHuman(w io.Writer, output ConfigOutput) error {
	c := newColorizer(w)

	fmt.Fprintf(w, "%s\n\n", c.bold("shenv Configuration"))

	// Config file
	if output.ConfigFile != "" {
		fmt.Fprintf(w, "  %s %s\n", c.cyan("Config file:"), output.ConfigFile)
	} else {
		fmt.Fprintf(w, "  %s %s\n", c.cyan("Config file:"), c.dim("(none)"))
	}

	fmt.Fprintf(w, "  %s %s\n", c.cyan("Format:"), output.Format)
	fmt.Fprintf(w, "  %s %s\n", c.cyan("Raw values:"), c.flag(output.Raw))

	// Env files
	fmt.Fprintf(w, "  %s", c.cyan("Env files:"))
	if len(output.EnvFiles) == 0 {
		fmt.Fprintf(w, " %s\n", c.dim("(none)"))
	} else {
		fmt.Fprintln(w)
		for _, path := range output.EnvFiles {
			fmt.Fprintf(w, "    - %s\n", path)
		}
	}

	fmt.Fprintf(w, "  %s %s\n", c.cyan("Ignore shell vars:"), c.flag(output.IgnoreShell))
	fmt.Fprintf(w, "  %s %s\n", c.cyan("Redact secrets:"), c.flag(output.Redact))
	fmt.Fprintf(w, "  %s %s\n", c.cyan("Log level:"), output.LogLevel)

	return nil
}
