package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/unrss/shenv/internal/catalog"
	"github.com/unrss/shenv/internal/value"
)

// DocOutput is the JSON representation of one catalogue declaration.
type DocOutput struct {
	Category string `json:"category"`
	Name     string `json:"name"`
	Kind     string `json:"kind,omitempty"`
	Doc      string `json:"doc,omitempty"`
}

func newDocCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "doc NAME",
		Short: "Show catalogue documentation for a variable",
		Long: `Show every catalogue declaration of NAME. A variable may be declared by
more than one category; each declaration is listed in catalogue order.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDoc(cmd.OutOrStdout(), args[0], jsonOutput)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runDoc(w io.Writer, name string, jsonOutput bool) error {
	schema, err := catalog.Full()
	if err != nil {
		return fmt.Errorf("load catalogue: %w", err)
	}

	entries := schema.Lookup(name)
	if len(entries) == 0 {
		return fmt.Errorf("%s is not documented", name)
	}

	if jsonOutput {
		out := make([]DocOutput, 0, len(entries))
		for _, e := range entries {
			d := DocOutput{Category: e.Category, Name: e.Name, Doc: e.Doc}
			if e.Kind != value.Absent {
				d.Kind = e.Kind.String()
			}
			out = append(out, d)
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	c := newColorizer(w)
	for i, e := range entries {
		if i > 0 {
			fmt.Fprintln(w)
		}
		header := c.bold(e.Name) + " " + c.dim("("+e.Category+")")
		if e.Kind != value.Absent {
			header += " " + c.cyan(e.Kind.String())
		}
		fmt.Fprintln(w, header)
		if e.Doc == "" {
			fmt.Fprintf(w, "  %s\n", c.dim("(no documentation)"))
			continue
		}
		for _, line := range strings.Split(strings.TrimRight(e.Doc, "\n"), "\n") {
			fmt.Fprintf(w, "  %s\n", line)
		}
	}
	return nil
}
