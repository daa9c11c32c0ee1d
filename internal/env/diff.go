package env

import (
	"slices"
	"strings"

	"github.com/unrss/shenv/internal/value"
)

// ChangeType describes how a variable differs between two snapshots.
type ChangeType int

const (
	Added ChangeType = iota
	Removed
	Modified
)

func (c ChangeType) String() string {
	switch c {
	case Added:
		return "added"
	case Removed:
		return "removed"
	case Modified:
		return "modified"
	default:
		return "unknown"
	}
}

// Symbol returns the one-character marker used in human output.
func (c ChangeType) Symbol() string {
	switch c {
	case Added:
		return "+"
	case Removed:
		return "-"
	default:
		return "~"
	}
}

// Change is one differing variable. Before is Absent for added variables and
// After is Absent for removed ones.
type Change struct {
	Name   string
	Type   ChangeType
	Before value.Value
	After  value.Value
}

// KindChanged reports whether a modified variable now classifies differently.
func (c Change) KindChanged() bool {
	return c.Type == Modified && c.Before.Kind() != c.After.Kind()
}

// DiffOptions controls Diff.
type DiffOptions struct {
	// IgnoreShell drops shell-managed variables (see IgnoredEnv).
	IgnoreShell bool
}

// Diff computes the changes from before to after, sorted by name.
// Variables compare by their raw text.
func Diff(before, after *Snapshot, opts DiffOptions) []Change {
	e1, e2 := before.Env(), after.Env()
	if opts.IgnoreShell {
		e1, e2 = e1.Filtered(), e2.Filtered()
	}

	var changes []Change

	// Find keys in e1 that changed or were removed
	for key, v1 := range e1 {
		if v2, exists := e2[key]; exists {
			if v1 != v2 {
				changes = append(changes, Change{
					Name:   key,
					Type:   Modified,
					Before: before.Get(key),
					After:  after.Get(key),
				})
			}
		} else {
			changes = append(changes, Change{
				Name:   key,
				Type:   Removed,
				Before: before.Get(key),
			})
		}
	}

	// Find keys added in e2
	for key := range e2 {
		if _, exists := e1[key]; !exists {
			changes = append(changes, Change{
				Name:  key,
				Type:  Added,
				After: after.Get(key),
			})
		}
	}

	slices.SortFunc(changes, func(a, b Change) int {
		return strings.Compare(a.Name, b.Name)
	})
	return changes
}
