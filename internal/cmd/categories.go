package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/unrss/shenv/internal/catalog"
)

// CategoryOutput is the JSON representation of a catalogue category.
type CategoryOutput struct {
	Name   string   `json:"name"`
	Title  string   `json:"title"`
	Source string   `json:"source,omitempty"`
	Count  int      `json:"count"`
	Vars   []string `json:"vars,omitempty"`
}

func newCategoriesCmd() *cobra.Command {
	var (
		jsonOutput bool
		withVars   bool
	)

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List catalogue categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCategories(cmd.OutOrStdout(), jsonOutput, withVars)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	cmd.Flags().BoolVar(&withVars, "vars", false, "Include the variable names of each category")

	return cmd
}

func runCategories(w io.Writer, jsonOutput, withVars bool) error {
	all, err := catalog.Categories()
	if err != nil {
		return fmt.Errorf("load catalogue: %w", err)
	}

	out := make([]CategoryOutput, 0, len(all))
	for _, c := range all {
		o := CategoryOutput{Name: c.Name, Title: c.Title, Source: c.Source, Count: len(c.Vars)}
		if withVars {
			for _, v := range c.Vars {
				o.Vars = append(o.Vars, v.Name)
			}
		}
		out = append(out, o)
	}

	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, o := range out {
		fmt.Fprintf(tw, "%s\t%d\t%s\n", o.Name, o.Count, o.Title)
		for _, name := range o.Vars {
			fmt.Fprintf(tw, "\t\t  %s\n", name)
		}
	}
	return tw.Flush()
}
