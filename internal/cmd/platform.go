package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/unrss/shenv/internal/env"
)

// PlatformOutput is the JSON representation of the platform flags.
type PlatformOutput struct {
	Linux bool `json:"linux"`
	MacOS bool `json:"macos"`
}

func newPlatformCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "platform",
		Short: "Print the operating system flags",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlatform(cmd.OutOrStdout(), jsonOutput)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runPlatform(w io.Writer, jsonOutput bool) error {
	output := PlatformOutput{Linux: env.Linux, MacOS: env.MacOS}

	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(output)
	}

	fmt.Fprintf(w, "linux: %t\n", output.Linux)
	fmt.Fprintf(w, "macos: %t\n", output.MacOS)
	return nil
}
