// Package shell renders environment changes as shell commands, so a
// snapshot or a diff can be applied with eval.
package shell

import (
	"maps"
	"slices"
)

// Exports represents environment changes to apply.
// Key present with non-nil value = set variable.
// Key present with nil value = unset variable.
type Exports map[string]*string

// Set marks a variable to be set to the given value.
func (e Exports) Set(key, value string) {
	e[key] = &value
}

// Unset marks a variable to be unset.
func (e Exports) Unset(key string) {
	e[key] = nil
}

// Keys returns the variable names in sorted order.
func (e Exports) Keys() []string {
	return slices.Sorted(maps.Keys(e))
}

// Shell defines the interface for shell-specific output.
type Shell interface {
	// Name returns the shell name (bash, zsh, fish).
	Name() string

	// Export formats environment changes as shell commands.
	Export(e Exports) string

	// Dump formats a complete environment as shell commands.
	Dump(env map[string]string) string
}

// shells is the registry of supported shell implementations.
var shells = map[string]Shell{
	"bash": Bash,
	"fish": Fish,
	"zsh":  Zsh,
}

// Get returns the Shell implementation for the given name.
// Returns nil if shell is not supported.
func Get(name string) Shell {
	return shells[name]
}

// Supported returns the sorted list of supported shell names.
func Supported() []string {
	return slices.Sorted(maps.Keys(shells))
}

// ValidName reports whether key can be assigned by every supported shell:
// a letter or underscore followed by letters, digits or underscores.
// Dotenv files accept names that shells reject; those are skipped.
func ValidName(key string) bool {
	if key == "" {
		return false
	}
	for i, r := range key {
		switch {
		case r == '_', r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z':
		case i > 0 && r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return true
}

// dumpExports converts a complete environment into set-only Exports.
func dumpExports(env map[string]string) Exports {
	e := make(Exports, len(env))
	for k, v := range env {
		e.Set(k, v)
	}
	return e
}
