package catalog

import (
	"slices"

	"github.com/unrss/shenv/internal/value"
)

// Entry is a declaration of a variable inside a named category.
type Entry struct {
	Category string
	Var
}

// Schema is the union of several categories. A name may be declared by more
// than one category; every declaration is kept, in composition order.
type Schema struct {
	entries []Entry
	index   map[string][]int
}

// Compose concatenates categories into a Schema, in the order given.
func Compose(categories ...Category) *Schema {
	s := &Schema{index: make(map[string][]int)}
	for _, c := range categories {
		for _, v := range c.Vars {
			s.index[v.Name] = append(s.index[v.Name], len(s.entries))
			s.entries = append(s.entries, Entry{Category: c.Name, Var: v})
		}
	}
	return s
}

// Full composes every category in Order.
func Full() (*Schema, error) {
	all, err := Categories()
	if err != nil {
		return nil, err
	}
	return Compose(all...), nil
}

// Lookup returns every declaration of name.
func (s *Schema) Lookup(name string) []Entry {
	if s == nil {
		return nil
	}
	idx := s.index[name]
	out := make([]Entry, 0, len(idx))
	for _, i := range idx {
		out = append(out, s.entries[i])
	}
	return out
}

// Documented reports whether any category declares name.
func (s *Schema) Documented(name string) bool {
	return s != nil && len(s.index[name]) > 0
}

// Doc returns the first non-empty documentation for name.
func (s *Schema) Doc(name string) string {
	for _, e := range s.Lookup(name) {
		if e.Doc != "" {
			return e.Doc
		}
	}
	return ""
}

// Kind returns the first declared kind for name, or Absent.
func (s *Schema) Kind(name string) value.Kind {
	for _, e := range s.Lookup(name) {
		if e.Kind != value.Absent {
			return e.Kind
		}
	}
	return value.Absent
}

// Categories returns the names of the categories declaring name.
func (s *Schema) Categories(name string) []string {
	var out []string
	for _, e := range s.Lookup(name) {
		if !slices.Contains(out, e.Category) {
			out = append(out, e.Category)
		}
	}
	return out
}

// Names returns every declared name, sorted and without duplicates.
func (s *Schema) Names() []string {
	if s == nil {
		return nil
	}
	names := make([]string, 0, len(s.index))
	for name := range s.index {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Len returns the number of declarations, counting duplicates.
func (s *Schema) Len() int {
	if s == nil {
		return 0
	}
	return len(s.entries)
}
