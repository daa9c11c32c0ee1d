package cmd

import (
	"os"

	"github.com/unrss/shenv/internal/catalog"
	"github.com/unrss/shenv/internal/env"
	"github.com/unrss/shenv/internal/export"
)

// snapshotOptions selects the environment a command reports on.
type snapshotOptions struct {
	raw      bool
	clean    bool
	envFiles []string
}

// loadSnapshot layers the configured and requested dotenv files over the
// process environment (or over nothing, when clean) and snapshots it.
func loadSnapshot(opts snapshotOptions) (*env.Snapshot, error) {
	base := env.FromGoEnv(os.Environ())
	if opts.clean {
		base = env.Env{}
	}

	files := append([]string{}, cfg.EnvFiles...)
	files = append(files, opts.envFiles...)
	if len(files) > 0 {
		logger.Debug("loading dotenv files", "files", files)
		merged, err := env.LoadDotenv(base, files...)
		if err != nil {
			return nil, err
		}
		base = merged
	}

	raw := opts.raw || cfg.Raw
	logger.Debug("snapshot", "vars", len(base), "raw", raw)
	return env.New(base, env.WithRawMode(raw)), nil
}

// fullSchema returns the composed catalogue, or nil (documents nothing)
// after logging a load failure.
func fullSchema() *catalog.Schema {
	schema, err := catalog.Full()
	if err != nil {
		logger.Warn("catalogue unavailable", "error", err)
		return nil
	}
	return schema
}

// newRecord prepares one snapshot entry for output.
func newRecord(schema *catalog.Schema, e env.Entry) export.Record {
	categories := schema.Categories(e.Name)
	return export.Record{
		Name:       e.Name,
		Value:      e.Value,
		Categories: categories,
		Masked:     cfg.Redact && e.Raw != "" && export.Sensitive(e.Name, categories),
	}
}
