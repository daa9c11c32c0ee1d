package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/unrss/shenv/internal/env"
	"github.com/unrss/shenv/internal/shell"
	"github.com/unrss/shenv/internal/value"
)

// DiffOutput is the JSON representation of one changed variable.
type DiffOutput struct {
	Name       string `json:"name"`
	Change     string `json:"change"`
	BeforeKind string `json:"before_kind,omitempty"`
	Before     any    `json:"before,omitempty"`
	AfterKind  string `json:"after_kind,omitempty"`
	After      any    `json:"after,omitempty"`
}

type diffOptions struct {
	raw        bool
	all        bool
	jsonOutput bool
	shell      string
}

func newDiffCmd() *cobra.Command {
	var opts diffOptions

	cmd := &cobra.Command{
		Use:   "diff FILE1 FILE2",
		Short: "Compare two environment files as typed values",
		Long: `Compare the variables defined by two environment files. Files ending in
.json are read as a JSON object (see "shenv dump"); others as dotenv.

Lines are prefixed with + (added), - (removed) or ~ (modified). A modified
variable whose kind changed is reported with both kinds. Shell-managed
variables are skipped unless --all is given or ignore_shell is off.

With --shell, the commands that turn FILE1 into FILE2 are printed instead:
  eval "$(shenv diff --shell bash before.json after.env)"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(cmd.OutOrStdout(), args[0], args[1], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.raw, "raw", false, "Do not classify values")
	cmd.Flags().BoolVar(&opts.all, "all", false, "Include shell-managed variables")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")
	cmd.Flags().StringVar(&opts.shell, "shell", "", "Print the changes as commands for this shell (bash, zsh, fish)")

	return cmd
}

func runDiff(w io.Writer, before, after string, opts diffOptions) error {
	var sh shell.Shell
	if opts.shell != "" {
		if sh = shell.Get(opts.shell); sh == nil {
			return fmt.Errorf("unsupported shell %q: must be one of %s", opts.shell, strings.Join(shell.Supported(), ", "))
		}
	}

	e1, err := env.ReadFile(before)
	if err != nil {
		return err
	}
	e2, err := env.ReadFile(after)
	if err != nil {
		return err
	}

	raw := opts.raw || cfg.Raw
	changes := env.Diff(
		env.New(e1, env.WithRawMode(raw)),
		env.New(e2, env.WithRawMode(raw)),
		env.DiffOptions{IgnoreShell: cfg.IgnoreShell && !opts.all},
	)
	logger.Debug("diff", "before", before, "after", after, "changes", len(changes))

	if sh != nil {
		exports := make(shell.Exports, len(changes))
		for _, ch := range changes {
			if ch.Type == env.Removed {
				exports.Unset(ch.Name)
			} else {
				exports.Set(ch.Name, e2[ch.Name])
			}
		}
		_, err := io.WriteString(w, sh.Export(exports))
		return err
	}

	schema := fullSchema()
	display := func(name string, v value.Value) (string, any) {
		if v.IsAbsent() {
			return "", nil
		}
		r := newRecord(schema, env.Entry{Name: name, Raw: v.Raw(), Value: v})
		return v.Kind().String(), r.Display()
	}

	if opts.jsonOutput {
		out := make([]DiffOutput, 0, len(changes))
		for _, ch := range changes {
			d := DiffOutput{Name: ch.Name, Change: ch.Type.String()}
			d.BeforeKind, d.Before = display(ch.Name, ch.Before)
			d.AfterKind, d.After = display(ch.Name, ch.After)
			out = append(out, d)
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	c := newColorizer(w)
	for _, ch := range changes {
		beforeKind, beforeVal := display(ch.Name, ch.Before)
		afterKind, afterVal := display(ch.Name, ch.After)
		switch ch.Type {
		case env.Added:
			fmt.Fprintf(w, "%s %s=%v %s\n", c.green(ch.Type.Symbol()), ch.Name, orEmpty(afterVal), c.dim(afterKind))
		case env.Removed:
			fmt.Fprintf(w, "%s %s=%v %s\n", c.red(ch.Type.Symbol()), ch.Name, orEmpty(beforeVal), c.dim(beforeKind))
		case env.Modified:
			kinds := c.dim(afterKind)
			if ch.KindChanged() {
				kinds = c.yellow(kindLabel(beforeKind) + " -> " + kindLabel(afterKind))
			}
			fmt.Fprintf(w, "%s %s=%v -> %v %s\n", c.yellow(ch.Type.Symbol()), ch.Name, orEmpty(beforeVal), orEmpty(afterVal), kinds)
		}
	}
	return nil
}

func orEmpty(v any) any {
	if v == nil {
		return ""
	}
	return v
}

func kindLabel(kind string) string {
	if kind == "" {
		return value.Absent.String()
	}
	return kind
}
