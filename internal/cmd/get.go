package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/unrss/shenv/internal/env"
	"github.com/unrss/shenv/internal/value"
)

// GetOutput is the JSON representation of a single variable.
type GetOutput struct {
	Name    string `json:"name"`
	Kind    string `json:"kind"`
	Value   any    `json:"value"`
	Present bool   `json:"present"`
}

type getOptions struct {
	raw        bool
	kindOnly   bool
	jsonOutput bool
	envFiles   []string
}

func newGetCmd() *cobra.Command {
	var opts getOptions

	cmd := &cobra.Command{
		Use:   "get [NAME]",
		Short: "Print one variable as a typed value",
		Long: `Print the value of a single environment variable after classification.
With no NAME, USER is read. Unset and empty variables print nothing.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) > 0 {
				name = args[0]
			}
			return runGet(cmd.OutOrStdout(), name, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.raw, "raw", false, "Do not classify the value")
	cmd.Flags().BoolVar(&opts.kindOnly, "kind", false, "Print the kind instead of the value")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")
	cmd.Flags().StringArrayVar(&opts.envFiles, "env-file", nil, "Dotenv file layered over the environment (repeatable)")

	return cmd
}

func runGet(w io.Writer, name string, opts getOptions) error {
	if name == "" {
		name = env.DefaultName
	}

	snap, err := loadSnapshot(snapshotOptions{raw: opts.raw, envFiles: opts.envFiles})
	if err != nil {
		return err
	}

	var v value.Value
	if snap.IsRaw() {
		if raw, ok := snap.Raw(name); ok && raw != "" {
			v = value.Text(raw)
		}
	} else {
		v = env.LookupOneIn(snap.Env(), name)
	}
	logger.Debug("get", "name", name, "kind", v.Kind())

	if opts.jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(GetOutput{
			Name:    name,
			Kind:    v.Kind().String(),
			Value:   v.Scalar(),
			Present: snap.Has(name),
		})
	}

	if opts.kindOnly {
		fmt.Fprintln(w, v.Kind())
		return nil
	}

	if v.IsAbsent() {
		return nil
	}
	fmt.Fprintln(w, v.String())
	return nil
}
