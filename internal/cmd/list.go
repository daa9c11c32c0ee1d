package cmd

import (
	"fmt"
	"io"
	"slices"

	"github.com/spf13/cobra"

	"github.com/unrss/shenv/internal/catalog"
	"github.com/unrss/shenv/internal/export"
)

type listOptions struct {
	raw        bool
	clean      bool
	documented bool
	category   string
	where      string
	format     string
	envFiles   []string
}

func newListCmd() *cobra.Command {
	var opts listOptions

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the environment as typed values",
		Long: `List every environment variable with its inferred kind.

Documented variables are marked with "*" in text output. Values of secrets
are masked unless redaction is turned off in the configuration.

The --where expression is evaluated for each variable with these fields:
  name, kind, value, raw, documented, categories
For example:
  shenv list --where 'kind == "path" && documented'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("format") {
				opts.format = cfg.Format
			}
			return runList(cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().BoolVar(&opts.raw, "raw", false, "Do not classify values")
	cmd.Flags().BoolVar(&opts.clean, "clean", false, "Ignore the process environment; use only env files")
	cmd.Flags().BoolVar(&opts.documented, "documented", false, "Only variables declared in the catalogue")
	cmd.Flags().StringVar(&opts.category, "category", "", "Only variables declared by this category")
	cmd.Flags().StringVar(&opts.where, "where", "", "Boolean filter expression")
	cmd.Flags().StringVarP(&opts.format, "format", "o", "text", "Output format: text, json, yaml or toml")
	cmd.Flags().StringArrayVar(&opts.envFiles, "env-file", nil, "Dotenv file layered over the environment (repeatable)")

	return cmd
}

func runList(w io.Writer, opts listOptions) error {
	exporter, err := export.New(opts.format)
	if err != nil {
		return err
	}

	if opts.category != "" && !slices.Contains(catalog.Order, opts.category) {
		return fmt.Errorf("unknown category %q", opts.category)
	}

	program, err := compileFilter(opts.where)
	if err != nil {
		return err
	}

	snap, err := loadSnapshot(snapshotOptions{
		raw:      opts.raw,
		clean:    opts.clean,
		envFiles: opts.envFiles,
	})
	if err != nil {
		return err
	}

	schema := fullSchema()
	var records []export.Record
	for _, e := range snap.Entries() {
		r := newRecord(schema, e)
		if opts.documented && !r.Documented() {
			continue
		}
		if opts.category != "" && !slices.Contains(r.Categories, opts.category) {
			continue
		}
		ok, err := matchFilter(program, r)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		records = append(records, r)
	}
	logger.Debug("list", "total", snap.Len(), "shown", len(records), "format", exporter.Name())

	out, err := exporter.Export(records)
	if err != nil {
		return fmt.Errorf("export %s: %w", exporter.Name(), err)
	}
	_, err = w.Write(out)
	return err
}
