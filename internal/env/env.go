// Package env snapshots environment variables as typed values.
package env

import (
	"maps"
	"slices"
	"strings"
)

// Env represents raw environment variables as a map.
type Env map[string]string

// FromGoEnv creates an Env from os.Environ() format ([]string{"KEY=value"}).
// Entries without an "=" are ignored. Empty values are preserved.
func FromGoEnv(environ []string) Env {
	env := make(Env, len(environ))
	for _, entry := range environ {
		key, value, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		env[key] = value
	}
	return env
}

// ToGoEnv converts to os.Environ() format for exec.Cmd.Env.
// Keys are sorted for deterministic output.
func (e Env) ToGoEnv() []string {
	if e == nil {
		return nil
	}
	result := make([]string, 0, len(e))
	for key, value := range e {
		result = append(result, key+"="+value)
	}
	slices.Sort(result)
	return result
}

// Copy returns a deep copy of the environment.
func (e Env) Copy() Env {
	if e == nil {
		return nil
	}
	return maps.Clone(e)
}

// Filtered returns a copy with shell-managed keys removed.
func (e Env) Filtered() Env {
	if e == nil {
		return nil
	}
	filtered := make(Env, len(e))
	for k, v := range e {
		if !IgnoredEnv(k) {
			filtered[k] = v
		}
	}
	return filtered
}

// Merge returns a copy of e with every layer applied on top, in order.
// Later layers win.
func (e Env) Merge(layers ...Env) Env {
	merged := make(Env, len(e))
	maps.Copy(merged, e)
	for _, layer := range layers {
		maps.Copy(merged, layer)
	}
	return merged
}

// Keys returns the variable names in sorted order.
func (e Env) Keys() []string {
	return slices.Sorted(maps.Keys(e))
}
