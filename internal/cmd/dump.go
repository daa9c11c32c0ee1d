package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/unrss/shenv/internal/env"
	"github.com/unrss/shenv/internal/shell"
)

type dumpOptions struct {
	clean    bool
	shell    string
	envFiles []string
}

func newDumpCmd() *cobra.Command {
	var opts dumpOptions

	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Dump the raw environment",
		Long: `Output the environment unclassified, as a JSON object by default or as
shell commands with --shell. The JSON form can be read back by "shenv diff"
and --env-file:
  shenv dump > before.json
  ...
  shenv diff before.json <(shenv dump)`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().BoolVar(&opts.clean, "clean", false, "Ignore the process environment; use only env files")
	cmd.Flags().StringVar(&opts.shell, "shell", "", "Output commands for this shell (bash, zsh, fish)")
	cmd.Flags().StringArrayVar(&opts.envFiles, "env-file", nil, "Env file layered over the environment (repeatable)")

	return cmd
}

func runDump(w io.Writer, opts dumpOptions) error {
	snap, err := loadSnapshot(snapshotOptions{raw: true, clean: opts.clean, envFiles: opts.envFiles})
	if err != nil {
		return err
	}
	e := snap.Env()

	if opts.shell == "" {
		if err := env.WriteJSON(e, w); err != nil {
			return fmt.Errorf("dump json: %w", err)
		}
		return nil
	}

	sh := shell.Get(opts.shell)
	if sh == nil {
		return fmt.Errorf("unsupported shell %q: must be one of %s", opts.shell, strings.Join(shell.Supported(), ", "))
	}
	_, err = io.WriteString(w, sh.Dump(e))
	return err
}
